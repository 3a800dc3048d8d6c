// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON output for machine parsing
//   - Development: colored console output for humans
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("Dumped file", zap.String("path", path))
//	logger.Error("Load failed", zap.Error(err))
package logging
