package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldCommand names the CLI command that produced the log line.
	FieldCommand = "command"
	// FieldRecipeID is the standardized structured logging key for recipe document identifiers.
	FieldRecipeID = "recipe_id"
	// FieldRevision carries the document revision involved in a write.
	FieldRevision = "rev"
	// FieldTitle carries the recipe title.
	FieldTitle = "title"
	// FieldEventType classifies warnings and errors for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint tells the reader what to do next.
	FieldErrorHint = "error_hint"
	// FieldError holds the error value.
	FieldError = "error"
)

type contextKey int

const (
	commandKey contextKey = iota
	recipeIDKey
)

// WithCommand records the running command name on ctx.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, commandKey, command)
}

// WithRecipeID records the recipe being operated on.
func WithRecipeID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, recipeIDKey, id)
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	var fields []slog.Attr
	if command, ok := ctx.Value(commandKey).(string); ok && command != "" {
		fields = append(fields, slog.String(FieldCommand, command))
	}
	if id, ok := ctx.Value(recipeIDKey).(string); ok && id != "" {
		fields = append(fields, slog.String(FieldRecipeID, id))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
