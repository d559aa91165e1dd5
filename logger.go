package kmergo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with pipeline-specific helpers and consistent
// field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. A nil handler falls
// back to a text handler on stderr at Info level.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithK adds the k-mer length field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithBackend adds a backend name field to the logger.
func (l *Logger) WithBackend(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("backend", name),
	}
}

// LogBuild logs the outcome of one Build run.
func (l *Logger) LogBuild(ctx context.Context, stats *BuildStats, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index build failed",
			"records", stats.Records,
			"kmers", stats.Kmers,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "index build completed",
			"records", stats.Records,
			"bases", stats.Bases,
			"kmers", stats.Kmers,
			"distinct", stats.Distinct,
			"elapsed", stats.Elapsed,
		)
	}
}
