// Package logger provides structured logging using log/slog.
// It sets up a JSON handler with the service name embedded.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Init creates a structured logger for the given service, writing JSON to
// stderr, and sets it as the default logger.
//
// stdout belongs to the interactive session, logs never go there.
func Init(service string, level slog.Level) *slog.Logger {
	logger := New(os.Stderr, service, level)
	slog.SetDefault(logger)
	return logger
}

// New creates a JSON logger for the given service writing to w.
func New(w io.Writer, service string, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler).With(
		slog.String("service", service),
	)
}
