package bisect

import (
	"context"
	"errors"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bisect-specific context.
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

// WithSize adds a set-size field to the logger.
func (l *Logger) WithSize(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", n),
	}
}

// WithBudget adds a probe-budget field to the logger.
func (l *Logger) WithBudget(budget int) *Logger {
	return &Logger{
		Logger: l.Logger.With("budget", budget),
	}
}

// LogSearch logs a bisection search. A miss is a defined outcome and stays
// at debug level; only non-membership errors are logged as errors.
func (l *Logger) LogSearch(ctx context.Context, probes int, err error) {
	switch {
	case err == nil:
		l.DebugContext(ctx, "search completed",
			"probes", probes,
		)
	case errors.Is(err, ErrNotFound):
		l.DebugContext(ctx, "search missed",
			"probes", probes,
			"error", err,
		)
	default:
		l.ErrorContext(ctx, "search failed",
			"probes", probes,
			"error", err,
		)
	}
}

// LogScan logs a linear scan.
func (l *Logger) LogScan(ctx context.Context, probes int, err error) {
	switch {
	case err == nil:
		l.DebugContext(ctx, "scan completed",
			"probes", probes,
		)
	case errors.Is(err, ErrNotFound):
		l.DebugContext(ctx, "scan missed",
			"probes", probes,
			"error", err,
		)
	default:
		l.ErrorContext(ctx, "scan failed",
			"probes", probes,
			"error", err,
		)
	}
}

// LogBatch logs a batch lookup.
func (l *Logger) LogBatch(ctx context.Context, count, missed int) {
	if missed > 0 {
		l.DebugContext(ctx, "batch lookup completed with misses",
			"total", count,
			"missed", missed,
			"found", count-missed,
		)
	} else {
		l.DebugContext(ctx, "batch lookup completed",
			"count", count,
		)
	}
}
