package quadtree

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with quadtree-specific events.
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
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that outputs human-readable text logs to
// stderr at the given level.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// LogDivide logs a leaf becoming an internal node.
func (l *Logger) LogDivide(depth, items int, bounds Rect) {
	l.Debug("node divided",
		"depth", depth,
		"items", items,
		"x", bounds.X,
		"y", bounds.Y,
		"w", bounds.W,
		"h", bounds.H,
	)
}

// LogInsert logs a rejected insert. Successful inserts are too frequent to log
// individually.
func (l *Logger) LogInsert(err error) {
	if err != nil {
		l.Warn("insert rejected", "error", err)
	}
}

// LogBatchInsert logs an InsertAll call.
func (l *Logger) LogBatchInsert(count int, err error) {
	if err != nil {
		l.Warn("batch insert rejected",
			"count", count,
			"error", err,
		)
		return
	}
	l.Debug("batch insert completed", "count", count)
}

// LogClear logs a tree being emptied.
func (l *Logger) LogClear(items int) {
	l.Debug("tree cleared", "items", items)
}
