package context

import (
	"context"
	"log/slog"
)

// KeyLogger is the key for storing the scoped logger in context.
const KeyLogger ContextKey = "logger"

// GetLogger returns the logger scoped to the current request or fixture run, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the scoped logger. Without one, fallback is
// tagged with whatever request ID and run ID ctx carries.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}
	if fallback == nil {
		return nil
	}

	var attrs []any
	if id := GetRequestIDFromContext(ctx); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	if id, ok := GetRunID(ctx); ok {
		attrs = append(attrs, slog.String("runID", id.String()))
	}
	if len(attrs) == 0 {
		return fallback
	}

	return fallback.With(attrs...)
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
