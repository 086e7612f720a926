// Package logger implements a logging adapter using log/slog.
package logger

import (
	"log/slog"
	"os"

	"go.trai.ch/repin/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
}

// New creates a new Logger writing human-readable text to stderr.
func New() ports.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{
		logger: slog.New(handler),
	}
}

// NewWithHandler creates a Logger with a custom slog handler. Used in tests.
func NewWithHandler(h slog.Handler) ports.Logger {
	return &Logger{logger: slog.New(h)}
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.logger.Info(msg)
}

// Error logs an error.
func (l *Logger) Error(err error) {
	l.logger.Error("operation failed", "error", err)
}
