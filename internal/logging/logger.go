package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"recetin/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	// OutputPaths lists files or the names "stdout" and "stderr". Empty means stderr.
	OutputPaths []string
	// Console, when set, additionally receives console-formatted records at
	// ConsoleLevel or above.
	Console      io.Writer
	ConsoleLevel slog.Level
}

// New constructs a slog logger using the provided options.
func New(opts Options) (*slog.Logger, error) {
	level := parseLevel(opts.Level)
	addSource := level <= slog.LevelDebug

	var build func(io.Writer, slog.Leveler, bool) slog.Handler
	switch format := strings.ToLower(strings.TrimSpace(opts.Format)); format {
	case "", "console":
		build = func(w io.Writer, l slog.Leveler, src bool) slog.Handler { return newConsoleHandler(w, l, src) }
	case "json":
		build = newJSONHandler
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	sink, err := openSinks(opts.OutputPaths)
	if err != nil {
		return nil, err
	}
	handler := build(sink, level, addSource)

	if opts.Console != nil {
		terminal := minLevelHandler{Handler: newConsoleHandler(opts.Console, slog.LevelDebug, false), min: opts.ConsoleLevel}
		handler = tee(handler, terminal)
	}
	return slog.New(handler), nil
}

// NewFromConfig creates a logger writing to the configured log file. When
// console is non-nil, warnings and errors are echoed there as well.
func NewFromConfig(cfg *config.Config, console io.Writer) (*slog.Logger, error) {
	opts := Options{Level: "info", Console: console, ConsoleLevel: slog.LevelWarn}
	if cfg != nil {
		opts.Level = cfg.Logging.Level
		opts.Format = cfg.Logging.Format
		opts.OutputPaths = []string{cfg.LogFilePath()}
	}
	return New(opts)
}

func parseLevel(level string) slog.Level {
	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return parsed
}

func openSinks(paths []string) (io.Writer, error) {
	var writers []io.Writer
	var seen []string
	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" || slices.Contains(seen, path) {
			continue
		}
		seen = append(seen, path)

		switch path {
		case "stdout":
			writers = append(writers, os.Stdout)
		case "stderr":
			writers = append(writers, os.Stderr)
		default:
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, fmt.Errorf("ensure log directory: %w", err)
			}
			file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
			if err != nil {
				return nil, fmt.Errorf("open log file %s: %w", path, err)
			}
			writers = append(writers, file)
		}
	}

	switch len(writers) {
	case 0:
		return os.Stderr, nil
	case 1:
		return writers[0], nil
	}
	return io.MultiWriter(writers...), nil
}
