// Package logging assembles structured slog loggers and formatting helpers used
// across Recetin.
//
// It owns the configurable console/JSON handlers, writes to the log file named
// by the configuration, and can tee warnings to the terminal. Context helpers
// tag log lines with the running command and the recipe being touched. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
package logging
