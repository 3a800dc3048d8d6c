package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Logging LogConfig
	IO      IOConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// IOConfig holds data directory configuration.
type IOConfig struct {
	// Dirs maps directory keys to paths, e.g. "raw:/data/raw,output:/data/out".
	Dirs  map[string]string `envconfig:"PPLIO_DIRS"`
	Mkdir bool              `envconfig:"PPLIO_MKDIR" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.IO.Dirs == nil {
		cfg.IO.Dirs = map[string]string{}
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		IO: IOConfig{
			Dirs:  map[string]string{},
			Mkdir: true,
		},
	}
}
