// Package logger provides structured logging functionality for the
// application, plus helpers for carrying a request- or run-scoped logger
// through a context.Context.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/taskmgmt/notify-api/internal/config"
)

// contextKey is an unexported type to avoid context key collisions.
type contextKey struct{}

var loggerKey = contextKey{}

// Setup initializes the application's logging system based on the provided
// configuration. It creates a structured JSON logger with the configured
// level, sets it as the process default, and returns it.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		// Config validation normally rejects unknown levels; fall back to
		// info if Setup is called with an unvalidated config.
		level = slog.LevelInfo

		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(os.Stdout, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)

	return logger, nil
}

// WithLogger returns a new context carrying the given logger. Components
// further down the call chain retrieve it with FromContext, so per-run
// attributes (run_id, task_id) attach to every log line without threading
// a logger argument through every signature.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in the context, or the process
// default logger when the context carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
