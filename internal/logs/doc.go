// Package logs reads the recetin log file for the `recetin logs` command.
//
// Last returns the final lines of the file together with the byte offset
// where reading stopped; Follow polls from that offset and hands each new
// line to a callback until its context ends. A file that shrinks is treated
// as rotated and read again from the start.
package logs
