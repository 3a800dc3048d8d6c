// Package registry maps file suffixes and in-memory object types to codecs.
//
// A registry holds two handler tables, one for loaders (file → object) and
// one for dumpers (object → file), plus a suffix alias map shared by both.
// Lookups resolve the suffix through the alias map, then pick the registered
// object type for that suffix:
//   - no requested type: the catch-all (last) entry
//   - exact match: that entry
//   - otherwise: the first registered interface the requested type implements,
//     most recently registered concrete types first
//
// Registration happens on a Builder during startup. Build snapshots it into
// an immutable Registry that is safe for concurrent lookups.
//
// Example Usage:
//
//	b := registry.NewBuilder()
//	b.RegisterLoader(".json", registry.AnyType, loadJSON)
//	b.RegisterAlias(".yaml", ".yml")
//	reg := b.Build()
//
//	load, err := reg.Loader(".json", nil)
//	obj, err := load("data.json", nil)
package registry
