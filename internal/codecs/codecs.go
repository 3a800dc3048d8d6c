package codecs

import (
	"errors"
	"sync"

	"github.com/GriffinCanCode/pplio/internal/registry"
	"github.com/GriffinCanCode/pplio/internal/table"
)

var (
	// FrameType is the object type of tabular payloads.
	FrameType = registry.TypeOf[*table.Frame]()

	// MappingType is the object type of string-keyed documents.
	MappingType = registry.TypeOf[map[string]any]()
)

var errNilFrame = errors.New("cannot write a nil *table.Frame")

var (
	defaultRegistry *registry.Registry
	once            sync.Once
)

// Register adds the built-in codecs and suffix aliases to b.
func Register(b *registry.Builder) *registry.Builder {
	b.RegisterLoader(".csv", FrameType, loadCSV)
	b.RegisterDumper(".csv", FrameType, dumpCSV)

	b.RegisterLoader(".parquet", FrameType, loadParquet)
	b.RegisterDumper(".parquet", FrameType, dumpParquet)

	b.RegisterLoader(".json", registry.AnyType, loadJSON)
	b.RegisterDumper(".json", registry.AnyType, dumpJSON)

	b.RegisterLoader(".yaml", registry.AnyType, loadYAML)
	b.RegisterDumper(".yaml", registry.AnyType, dumpYAML)

	b.RegisterLoader(".toml", MappingType, loadTOML)
	b.RegisterDumper(".toml", MappingType, dumpTOML)

	b.RegisterLoader(".pkl", registry.AnyType, loadObject)
	b.RegisterDumper(".pkl", registry.AnyType, dumpObject)

	b.RegisterAlias(".pkl", ".pickle")
	b.RegisterAlias(".yaml", ".yml")
	return b
}

// NewRegistry builds a fresh registry holding only the built-in codecs.
func NewRegistry() *registry.Registry {
	return Register(registry.NewBuilder()).Build()
}

// Default returns the process-wide registry of built-in codecs. It is built
// on first use and never changes afterwards.
func Default() *registry.Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}
