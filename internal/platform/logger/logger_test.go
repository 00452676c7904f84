package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard-api/internal/config"
)

func TestSetup(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "INFO"} {
		log, err := Setup(config.ServerConfig{Port: 8080, LogLevel: level})
		require.NoError(t, err, "level %q", level)
		assert.NotNil(t, log)
	}

	_, err := Setup(config.ServerConfig{Port: 8080, LogLevel: "verbose"})
	assert.Error(t, err)
}

func TestContextRoundTrip(t *testing.T) {
	base := slog.Default()
	attached := base.With("component", "test")

	ctx := WithContext(context.Background(), attached)
	assert.Same(t, attached, FromContext(ctx))

	// No logger attached falls back to the default.
	assert.Same(t, slog.Default(), FromContext(context.Background()))

	fallback := base.With("component", "fallback")
	assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))
	assert.Same(t, attached, FromContextOrDefault(ctx, fallback))
}
