package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
	assert.Empty(t, cfg.IO.Dirs)
	assert.True(t, cfg.IO.Mkdir)
}

func TestLoadOrDefault(t *testing.T) {
	// Should return defaults when no env vars set
	cfg := LoadOrDefault()

	assert.NotNil(t, cfg)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.IO.Mkdir)
	assert.NotNil(t, cfg.IO.Dirs)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DEV", "true")
	t.Setenv("PPLIO_DIRS", "raw:/data/raw,output:/data/output")
	t.Setenv("PPLIO_MKDIR", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, map[string]string{
		"raw":    "/data/raw",
		"output": "/data/output",
	}, cfg.IO.Dirs)
	assert.False(t, cfg.IO.Mkdir)
}

func TestLoadWithPartialEnvironmentVariables(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
	assert.True(t, cfg.IO.Mkdir)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad bool", "PPLIO_MKDIR", "maybe"},
		{"bad map", "PPLIO_DIRS", "raw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)

			// LoadOrDefault falls back instead of failing
			cfg := LoadOrDefault()
			assert.True(t, cfg.IO.Mkdir)
		})
	}
}
