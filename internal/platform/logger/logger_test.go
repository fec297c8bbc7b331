package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmgmt/notify-api/internal/config"
)

func TestSetup(t *testing.T) {
	t.Run("valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: level})
			require.NoError(t, err, "Setup should accept level %q", level)
			require.NotNil(t, logger)
		}
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: "verbose"})
		require.NoError(t, err)
		require.NotNil(t, logger)
		assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
		assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
	})
}

func TestContextCarrying(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		ctx := WithLogger(context.Background(), logger)
		assert.Same(t, logger, FromContext(ctx))
	})

	t.Run("missing logger yields default", func(t *testing.T) {
		got := FromContext(context.Background())
		require.NotNil(t, got)
		assert.Same(t, slog.Default(), got)
	})
}
