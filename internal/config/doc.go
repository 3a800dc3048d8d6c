// Package config provides 12-factor configuration for pplio.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags can override environment variables.
//
// Configuration Sections:
//   - Logging: log level and output format
//   - IO: named data directories and dump behavior
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	mgr, err := iomanager.New(nil, iomanager.WithDirs(cfg.IO.Dirs))
//
// Environment Variables:
//   - LOG_LEVEL, LOG_DEV
//   - PPLIO_DIRS (key:dir pairs separated by commas), PPLIO_MKDIR
package config
