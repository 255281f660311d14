package geopattern

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/geopattern/siatechf"
)

// Logger wraps slog.Logger with geopattern-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithPoints adds a points (onset count) field to the logger.
func (l *Logger) WithPoints(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("points", n),
	}
}

// WithRatio adds a min_ratio field to the logger.
func (l *Logger) WithRatio(r float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("min_ratio", r),
	}
}

// LogDiscover logs a discovery run.
func (l *Logger) LogDiscover(ctx context.Context, stats siatechf.Stats, groups int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "discover failed",
			"points", stats.Points,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "discover completed",
		"points", stats.Points,
		"pairs", stats.Pairs,
		"candidates", stats.Candidates,
		"shapes", stats.DistinctShapes,
		"pruned", stats.Pruned,
		"rejected", stats.Rejected,
		"groups", groups,
	)
}

// LogSearch logs a search operation.
func (l *Logger) LogSearch(ctx context.Context, queryPoints, matches int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"query_points", queryPoints,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "search completed",
		"query_points", queryPoints,
		"matches", matches,
	)
}
