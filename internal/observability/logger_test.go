package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_Levels(t *testing.T) {
	logger, err := NewLogger(false, false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))

	debugLogger, err := NewLogger(true, true)
	require.NoError(t, err)
	assert.True(t, debugLogger.Core().Enabled(zapcore.DebugLevel))
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithFields(zap.New(core), zap.String("component", "server")).Info("started")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "server", entries[0].ContextMap()["component"])

	// Nil loggers fall back to a no-op logger.
	assert.NotPanics(t, func() {
		WithFields(nil, zap.String("k", "v")).Info("ignored")
	})
}
