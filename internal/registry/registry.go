package registry

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// Loader reads the file at path and returns the decoded object.
type Loader func(path string, opts Options) (any, error)

// Dumper writes obj to the file at path.
type Dumper func(obj any, path string, opts Options) error

// Builder collects alias, loader and dumper registrations. It is not safe
// for concurrent use; register everything during startup, then call Build.
type Builder struct {
	aliases *suffixResolver
	loaders *handlerTable[Loader]
	dumpers *handlerTable[Dumper]
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		aliases: newSuffixResolver(),
		loaders: newHandlerTable[Loader](),
		dumpers: newHandlerTable[Dumper](),
	}
}

// RegisterAlias maps alias onto the canonical suffix for both loaders and
// dumpers.
func (b *Builder) RegisterAlias(canonical, alias string) *Builder {
	b.aliases.register(canonical, alias)
	return b
}

// RegisterLoader registers fn as the loader for (suffix, typ). Use AnyType
// for the catch-all loader.
func (b *Builder) RegisterLoader(suffix string, typ reflect.Type, fn Loader) *Builder {
	mustRegistrable(suffix, typ, fn == nil)
	b.loaders.register(suffix, typ, fn)
	return b
}

// RegisterDumper registers fn as the dumper for (suffix, typ). Use AnyType
// for the catch-all dumper.
func (b *Builder) RegisterDumper(suffix string, typ reflect.Type, fn Dumper) *Builder {
	mustRegistrable(suffix, typ, fn == nil)
	b.dumpers.register(suffix, typ, fn)
	return b
}

// Build returns an immutable snapshot of the registrations. The builder
// may keep being used afterwards without affecting the snapshot.
func (b *Builder) Build() *Registry {
	return &Registry{
		aliases: b.aliases.clone(),
		loaders: b.loaders.clone(),
		dumpers: b.dumpers.clone(),
	}
}

func mustRegistrable(suffix string, typ reflect.Type, nilHandler bool) {
	switch {
	case suffix == "":
		panic("registry: empty suffix")
	case typ == nil:
		panic(fmt.Sprintf("registry: nil object type for suffix %q", suffix))
	case nilHandler:
		panic(fmt.Sprintf("registry: nil handler for suffix %q", suffix))
	}
}

// Registry is a read-only set of loaders and dumpers keyed by suffix and
// object type. It is safe for concurrent use.
type Registry struct {
	aliases *suffixResolver
	loaders *handlerTable[Loader]
	dumpers *handlerTable[Dumper]
}

// Loader returns the loader for suffix. A nil typ selects the default
// (catch-all) loader.
func (r *Registry) Loader(suffix string, typ reflect.Type) (Loader, error) {
	return r.loaders.get(r.aliases, suffix, typ)
}

// Dumper returns the dumper for suffix that accepts values of typ.
func (r *Registry) Dumper(suffix string, typ reflect.Type) (Dumper, error) {
	return r.dumpers.get(r.aliases, suffix, typ)
}

// ResolveSuffix returns the canonical form of suffix.
func (r *Registry) ResolveSuffix(suffix string) string {
	return r.aliases.resolve(suffix)
}

// LoaderTypes returns the loader types for suffix, most specific first.
func (r *Registry) LoaderTypes(suffix string) []reflect.Type {
	return r.loaders.index.list(r.aliases.resolve(suffix))
}

// DumperTypes returns the dumper types for suffix, most specific first.
func (r *Registry) DumperTypes(suffix string) []reflect.Type {
	return r.dumpers.index.list(r.aliases.resolve(suffix))
}

// Suffixes returns every canonical suffix with a loader or dumper, sorted.
func (r *Registry) Suffixes() []string {
	all := append(r.loaders.suffixes(), r.dumpers.suffixes()...)
	slices.Sort(all)
	return slices.Compact(all)
}

// Aliases returns a copy of the alias → canonical map.
func (r *Registry) Aliases() map[string]string {
	return maps.Clone(r.aliases.aliases)
}

// Extend returns a builder seeded with this registry's registrations.
func (r *Registry) Extend() *Builder {
	return &Builder{
		aliases: r.aliases.clone(),
		loaders: r.loaders.clone(),
		dumpers: r.dumpers.clone(),
	}
}

// LoadAs loads path with the loader registered for T (or an interface T
// implements) and asserts the result to T.
func LoadAs[T any](r *Registry, suffix, path string, opts Options) (T, error) {
	var zero T
	load, err := r.Loader(suffix, TypeOf[T]())
	if err != nil {
		return zero, err
	}
	obj, err := load(path, opts)
	if err != nil {
		return zero, err
	}
	v, ok := obj.(T)
	if !ok {
		return zero, fmt.Errorf("loader for %q returned %T, not %s", suffix, obj, typeName(TypeOf[T]()))
	}
	return v, nil
}
