package strvec

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with strvec-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogGrow logs a capacity increase.
func (l *Logger) LogGrow(oldCapacity, newCapacity, length int) {
	l.Debug("vector grown",
		"old_capacity", oldCapacity,
		"new_capacity", newCapacity,
		"length", length,
	)
}

// LogShrink logs a capacity decrease. dropped is the number of
// elements released by a destructive shrink.
func (l *Logger) LogShrink(oldCapacity, newCapacity, dropped int) {
	if dropped > 0 {
		l.Debug("vector truncated",
			"old_capacity", oldCapacity,
			"new_capacity", newCapacity,
			"dropped", dropped,
		)
	} else {
		l.Debug("vector trimmed",
			"old_capacity", oldCapacity,
			"new_capacity", newCapacity,
		)
	}
}

// LogAllocationFailure logs a refused allocation.
func (l *Logger) LogAllocationFailure(op string, bytes int64, err error) {
	l.Warn("allocation failed",
		"op", op,
		"bytes", bytes,
		"error", err,
	)
}

// LogClose logs the release of a vector.
func (l *Logger) LogClose(released int, bytes int64) {
	l.Debug("vector closed",
		"released", released,
		"bytes", bytes,
	)
}
