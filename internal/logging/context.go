package logging

import (
	"context"
	"log/slog"
)

type contextKey int

const loggerKey contextKey = iota

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger from the context, or the global logger if not found
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return GetGlobalLogger()
}

// WithComponent tags every record logged through ctx with component.
func WithComponent(ctx context.Context, component string) context.Context {
	return WithLogger(ctx, FromContext(ctx).With("component", component))
}

// WithShape records the model shape a request was decoded into.
func WithShape(ctx context.Context, shape string) context.Context {
	return WithLogger(ctx, FromContext(ctx).With("shape", shape))
}

// WithSource records where a payload was read from.
func WithSource(ctx context.Context, path string) context.Context {
	return WithLogger(ctx, FromContext(ctx).With("source", path))
}
