package sievego

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with sieve-specific helpers.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithBound adds a bound field to the logger.
func (l *Logger) WithBound(bound uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("bound", bound),
	}
}

// LogExtend logs an extension operation.
func (l *Logger) LogExtend(bound uint64, newPrimes int, err error) {
	if err != nil {
		l.Error("extend failed",
			"bound", bound,
			"error", err,
		)
	} else {
		l.Debug("extend completed",
			"bound", bound,
			"new_primes", newPrimes,
		)
	}
}

// LogClear logs a reset operation.
func (l *Logger) LogClear() {
	l.Debug("sieve cleared")
}
