package byteops

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with byteops-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithBatch adds batch fields to the logger.
func (l *Logger) WithBatch(b Batch) *Logger {
	return &Logger{
		Logger: l.Logger.With("batch", b.String(), "batch_size", b.Size()),
	}
}

// LogScannerInit logs the configuration a Scanner was built with.
func (l *Logger) LogScannerInit(ctx context.Context, b Batch, pinned bool) {
	l.DebugContext(ctx, "scanner initialized",
		"batch", b.String(),
		"batch_size", b.Size(),
		"pinned", pinned,
		"isa", ActiveISA(),
	)
}
