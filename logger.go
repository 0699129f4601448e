package entindex

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with entindex-specific context.
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

// WithIndex adds an index name field to the logger. Pass the result's
// embedded *slog.Logger to sortedmap.WithLogger or bitset.WithLogger to tag
// a structure's debug events.
func (l *Logger) WithIndex(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("index", name),
	}
}

// WithEntity adds an entity id field to the logger.
func (l *Logger) WithEntity(id uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("entity", id),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogValidate logs the outcome of a structural self-check.
func (l *Logger) LogValidate(ctx context.Context, index string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index validation failed",
			"index", index,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "index validated",
			"index", index,
		)
	}
}

// LogQuery logs a presence query that combined several indices.
func (l *Logger) LogQuery(ctx context.Context, op string, operands, matches int) {
	l.DebugContext(ctx, "query evaluated",
		"op", op,
		"operands", operands,
		"matches", matches,
	)
}
