package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "log.json")
	logger, err := New(Config{Level: "debug", OutputPaths: []string{out}})
	require.NoError(t, err)

	logger.Named("iomanager").Debug("loaded", zap.String("suffix", ".csv"))
	_ = logger.Sync()

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"loaded"`)
	assert.Contains(t, string(data), `"logger":"iomanager"`)
	assert.Contains(t, string(data), `"suffix":".csv"`)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestLevelFiltering(t *testing.T) {
	out := filepath.Join(t.TempDir(), "log.json")
	logger, err := New(Config{Level: "warn", OutputPaths: []string{out}})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	_ = logger.Sync()

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestFallbacks(t *testing.T) {
	assert.NotNil(t, NewDefault())
	NewNop().Info("discarded")
}
