// Package main hosts the recetin CLI entrypoint and command graph.
//
// Commands list, show, create, import, export, edit and remove recipes kept
// in the local SQLite database. Recipes travel in and out as sigil-tagged
// plain text through files, pipes and the clipboard. The doctor, logs and
// config commands cover setup and troubleshooting.
//
// The codec lives in internal/recipe and persistence in internal/store;
// commands here resolve arguments, render output, and wire logging and
// notifications around those calls.
package main
