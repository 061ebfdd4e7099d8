package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	_, err := New("loud", false)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "sweep.log")
	logger, err := New("warn", false, path)
	require.NoError(t, err)
	logger.Info("dropped")
	logger.Warn("kept", zap.Float64("m", 0.5))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), `"message":"kept"`)
	assert.Contains(t, string(data), `"m":0.5`)
	assert.Contains(t, string(data), `"timestamp":`)
}

func TestDevelopment(t *testing.T) {
	dev, err := New("debug", true)
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zap.DebugLevel))

	prod, err := New("info", false)
	require.NoError(t, err)
	assert.False(t, prod.Core().Enabled(zap.DebugLevel))
}
