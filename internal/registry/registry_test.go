package registry

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadText(path string, _ Options) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func dumpText(obj any, path string, _ Options) error {
	return os.WriteFile(path, []byte(obj.(string)), 0o644)
}

func loadUpper(path string, opts Options) (any, error) {
	s, err := loadText(path, opts)
	if err != nil {
		return nil, err
	}
	return strings.ToUpper(s.(string)), nil
}

func newTextRegistry() *Registry {
	return NewBuilder().
		RegisterLoader(".txt", AnyType, loadText).
		RegisterLoader(".txt", TypeOf[string](), loadUpper).
		RegisterDumper(".txt", AnyType, dumpText).
		RegisterAlias(".txt", ".text").
		Build()
}

func TestRegistryLoaderDefault(t *testing.T) {
	reg := newTextRegistry()
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	load, err := reg.Loader(".txt", nil)
	require.NoError(t, err)
	got, err := load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	load, err = reg.Loader(".txt", TypeOf[string]())
	require.NoError(t, err)
	got, err = load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "HELLO", got)
}

func TestRegistryAliasRoundTrip(t *testing.T) {
	reg := newTextRegistry()
	dir := t.TempDir()

	for _, name := range []string{"data.txt", "data.text"} {
		path := filepath.Join(dir, name)
		dump, err := reg.Dumper(filepath.Ext(name), TypeOf[string]())
		require.NoError(t, err)
		require.NoError(t, dump("payload", path, nil))

		load, err := reg.Loader(filepath.Ext(name), nil)
		require.NoError(t, err)
		got, err := load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "payload", got, name)
	}
	assert.Equal(t, ".txt", reg.ResolveSuffix(".text"))
	assert.Equal(t, map[string]string{".text": ".txt"}, reg.Aliases())
}

func TestRegistryDumperNoMatch(t *testing.T) {
	reg := NewBuilder().
		RegisterDumper(".csv", TypeOf[*table](), func(any, string, Options) error { return nil }).
		Build()

	_, err := reg.Dumper(".csv", TypeOf[int]())
	var re *ResolutionError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, ".csv", re.Suffix)
	assert.Equal(t, []reflect.Type{TypeOf[*table]()}, re.Candidates)
}

func TestRegistryUnknownSuffix(t *testing.T) {
	reg := newTextRegistry()

	_, err := reg.Loader(".parquet", nil)
	assert.ErrorIs(t, err, ErrUnsupportedSuffix)
	_, err = reg.Dumper(".parquet", AnyType)
	assert.ErrorIs(t, err, ErrUnsupportedSuffix)
}

func TestRegistryLookupError(t *testing.T) {
	tbl := newHandlerTable[Loader]()
	// index entry without a handler, which register never produces
	tbl.index.register(".txt", AnyType)

	_, err := tbl.get(newSuffixResolver(), ".txt", nil)
	var le *LookupError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, ".txt", le.Suffix)
	assert.Equal(t, AnyType, le.Type)
	assert.Contains(t, err.Error(), "any")
}

func TestRegistryOverwrite(t *testing.T) {
	b := NewBuilder()
	b.RegisterLoader(".txt", AnyType, loadText)
	b.RegisterLoader(".txt", AnyType, loadUpper)
	reg := b.Build()

	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	load, err := reg.Loader(".txt", nil)
	require.NoError(t, err)
	got, err := load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "ABC", got)
	assert.Equal(t, []reflect.Type{AnyType}, reg.LoaderTypes(".txt"))
}

func TestRegistrySnapshotIsolation(t *testing.T) {
	b := NewBuilder().RegisterLoader(".txt", AnyType, loadText)
	reg := b.Build()
	b.RegisterLoader(".md", AnyType, loadText)
	b.RegisterAlias(".txt", ".text")

	_, err := reg.Loader(".md", nil)
	assert.ErrorIs(t, err, ErrUnsupportedSuffix)
	assert.Empty(t, reg.Aliases())

	ext := reg.Extend().RegisterLoader(".log", AnyType, loadText).Build()
	assert.Equal(t, []string{".log", ".txt"}, ext.Suffixes())
	assert.Equal(t, []string{".txt"}, reg.Suffixes())
}

func TestRegistryTypesListing(t *testing.T) {
	reg := newTextRegistry()

	assert.Equal(t, []reflect.Type{TypeOf[string](), AnyType}, reg.LoaderTypes(".text"))
	assert.Equal(t, []reflect.Type{AnyType}, reg.DumperTypes(".txt"))
	assert.Empty(t, reg.LoaderTypes(".none"))
}

func TestRegistryMissingFilePropagates(t *testing.T) {
	reg := newTextRegistry()
	load, err := reg.Loader(".txt", nil)
	require.NoError(t, err)

	_, err = load(filepath.Join(t.TempDir(), "missing.txt"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadAs(t *testing.T) {
	reg := newTextRegistry()
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("typed"), 0o644))

	s, err := LoadAs[string](reg, ".txt", path, nil)
	require.NoError(t, err)
	assert.Equal(t, "TYPED", s)

	_, err = LoadAs[int](reg, ".txt", path, nil)
	assert.ErrorContains(t, err, "returned string, not int")
}

func TestRegisterPanics(t *testing.T) {
	assert.Panics(t, func() { NewBuilder().RegisterLoader("", AnyType, loadText) })
	assert.Panics(t, func() { NewBuilder().RegisterLoader(".txt", nil, loadText) })
	assert.Panics(t, func() { NewBuilder().RegisterDumper(".txt", AnyType, nil) })
}
