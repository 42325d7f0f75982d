package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/brandforge/brandforge-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "WARN"} {
		logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: level})
		require.NoError(t, err, "level %q should be accepted", level)
		require.NotNil(t, logger)
	}
}

func TestSetupInvalidLevel(t *testing.T) {
	_, err := Setup(config.ServerConfig{Port: 8080, LogLevel: "verbose"})
	assert.Error(t, err)
}

func TestFromContextOrDefault(t *testing.T) {
	t.Parallel()

	defaultLogger := slog.Default()
	stored := slog.Default().With(slog.String("component", "test"))

	ctx := WithLogger(context.Background(), stored)
	assert.Same(t, stored, FromContextOrDefault(ctx, defaultLogger))

	assert.Same(t, defaultLogger, FromContextOrDefault(context.Background(), defaultLogger))
	assert.NotNil(t, FromContextOrDefault(context.Background(), nil))
}
