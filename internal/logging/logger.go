// Package logging provides the process-wide slog logger used by gluemodel.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	// global logger instance
	globalLogger *slog.Logger
	globalMu     sync.RWMutex

	defaultTextOptions = &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
)

func init() {
	globalLogger = slog.New(slog.NewTextHandler(os.Stderr, defaultTextOptions))
}

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger *slog.Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() *slog.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	GetGlobalLogger().Debug(msg, args...)
}

// With returns a logger with the given attributes
func With(args ...any) *slog.Logger {
	return GetGlobalLogger().With(args...)
}

// NewJSONLogger creates a new JSON format logger
func NewJSONLogger(w io.Writer, opts *slog.HandlerOptions) *slog.Logger {
	if opts == nil {
		opts = defaultTextOptions
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Component returns a logger with a component field
func Component(name string) *slog.Logger {
	return With("component", name)
}
