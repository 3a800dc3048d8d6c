// Package codecs provides the built-in loaders and dumpers and registers them
// into a registry.Builder.
//
// Formats:
//   - .csv, .parquet: *table.Frame
//   - .json, .yaml (alias .yml): any value (catch-all)
//   - .toml: map[string]any
//   - .pkl (alias .pickle): any CBOR-encodable value
//
// Loaders read the file directly, so filesystem errors such as a missing
// file reach the caller unchanged. Dumpers write through fsutil.WriteFile.
//
// Example Usage:
//
//	reg := codecs.Default()
//	load, _ := reg.Loader(".yml", nil)
//	cfg, err := load("settings.yml", nil)
package codecs
