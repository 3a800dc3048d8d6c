package iomanager

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/GriffinCanCode/pplio/internal/codecs"
	"github.com/GriffinCanCode/pplio/internal/logging"
	"github.com/GriffinCanCode/pplio/internal/monitoring"
	"github.com/GriffinCanCode/pplio/internal/registry"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

var (
	// ErrUnknownKey is returned for a directory key that was never set.
	ErrUnknownKey = errors.New("unknown directory key")
	// ErrInvalidKey is returned when setting an empty directory key.
	ErrInvalidKey = errors.New("directory key cannot be empty")
	// ErrNilObject is returned when dumping a nil value.
	ErrNilObject = errors.New("cannot dump nil object")
)

// Manager maps directory keys to paths and dispatches loads and dumps to
// the codec registry.
type Manager struct {
	reg     *registry.Registry
	logger  *logging.Logger
	metrics *monitoring.Metrics
	mkdir   bool

	mu    sync.RWMutex
	dirs  map[string]string
	order []string
}

// New creates a manager over reg. A nil reg uses codecs.Default().
func New(reg *registry.Registry, opts ...ManagerOption) (*Manager, error) {
	if reg == nil {
		reg = codecs.Default()
	}
	m := &Manager{
		reg:    reg,
		logger: logging.NewNop(),
		mkdir:  true,
		dirs:   make(map[string]string),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Registry returns the codec registry in use.
func (m *Manager) Registry() *registry.Registry {
	return m.reg
}

// Set registers or replaces the directory for key.
func (m *Manager) Set(key, dir string) error {
	if key == "" {
		return ErrInvalidKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.dirs[key]; !exists {
		m.order = append(m.order, key)
	}
	m.dirs[key] = filepath.Clean(dir)
	return nil
}

// Dir returns the directory for key. The empty key maps to the empty path
// so that Load and Dump can take full paths without a registered directory.
func (m *Manager) Dir(key string) (string, error) {
	if key == "" {
		return "", nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	dir, ok := m.dirs[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return dir, nil
}

// Delete removes the directory for key.
func (m *Manager) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.dirs[key]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	delete(m.dirs, key)
	m.order = slices.DeleteFunc(m.order, func(k string) bool { return k == key })
	return nil
}

// Keys returns the registered keys in insertion order.
func (m *Manager) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.order)
}

// Len returns the number of registered directories.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.dirs)
}

// String renders the manager as Manager(key='dir', ...).
func (m *Manager) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := make([]string, len(m.order))
	for i, key := range m.order {
		items[i] = fmt.Sprintf("%s='%s'", key, m.dirs[key])
	}
	return "Manager(" + strings.Join(items, ", ") + ")"
}

// Path joins the directory for key with subPath.
func (m *Manager) Path(key, subPath string) (string, error) {
	dir, err := m.Dir(key)
	if err != nil {
		return "", err
	}
	if dir == "" {
		return subPath, nil
	}
	return filepath.Join(dir, subPath), nil
}

// Load reads subPath under the key directory. Codec errors, including a
// missing file, are returned unchanged.
func (m *Manager) Load(key, subPath string, opts ...Option) (any, error) {
	req := newRequest(opts)
	path, err := m.Path(key, subPath)
	if err != nil {
		return nil, err
	}
	suffix, err := m.loadSuffix(path, req.suffix)
	if err != nil {
		return nil, err
	}
	load, err := m.reg.Loader(suffix, req.typ)
	if err != nil {
		return nil, err
	}

	timer := monitoring.NewTimer(m.metrics, monitoring.OpLoad, m.reg.ResolveSuffix(suffix))
	obj, err := load(path, req.format)
	elapsed := timer.Stop(err)
	m.logger.Debug("load",
		zap.String("path", path),
		zap.String("suffix", suffix),
		zap.Duration("elapsed", elapsed),
		zap.Error(err),
	)
	return obj, err
}

// Dump writes obj to subPath under the key directory, creating parent
// directories unless disabled.
func (m *Manager) Dump(obj any, key, subPath string, opts ...Option) error {
	if obj == nil {
		return ErrNilObject
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Pointer && v.IsNil() {
		return fmt.Errorf("%w: %T", ErrNilObject, obj)
	}
	req := newRequest(opts)
	path, err := m.Path(key, subPath)
	if err != nil {
		return err
	}
	suffix := req.suffix
	if suffix == "" {
		suffix = filepath.Ext(path)
	}
	if suffix == "" {
		return fmt.Errorf("cannot infer format of %q: %w", path, registry.ErrUnsupportedSuffix)
	}
	typ := req.typ
	if typ == nil {
		typ = reflect.TypeOf(obj)
	}
	dump, err := m.reg.Dumper(suffix, typ)
	if err != nil {
		return err
	}

	mkdir := m.mkdir
	if req.mkdir != nil {
		mkdir = *req.mkdir
	}
	if mkdir {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
	}

	timer := monitoring.NewTimer(m.metrics, monitoring.OpDump, m.reg.ResolveSuffix(suffix))
	err = dump(obj, path, req.format)
	elapsed := timer.Stop(err)
	m.logger.Debug("dump",
		zap.String("path", path),
		zap.String("suffix", suffix),
		zap.Stringer("type", typ),
		zap.Duration("elapsed", elapsed),
		zap.Error(err),
	)
	return err
}

// LoadAs loads subPath with the loader for T and asserts the result to T.
func LoadAs[T any](m *Manager, key, subPath string, opts ...Option) (T, error) {
	var zero T
	opts = append(slices.Clone(opts), WithType(registry.TypeOf[T]()))
	obj, err := m.Load(key, subPath, opts...)
	if err != nil {
		return zero, err
	}
	v, ok := obj.(T)
	if !ok {
		return zero, fmt.Errorf("loaded %T from %q, not %s", obj, subPath, registry.TypeOf[T]())
	}
	return v, nil
}

// loadSuffix picks the suffix from the override, the extension, or the
// detected content type.
func (m *Manager) loadSuffix(path, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if ext := filepath.Ext(path); ext != "" {
		return ext, nil
	}
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}
	if ext := mtype.Extension(); ext != "" {
		return ext, nil
	}
	return "", fmt.Errorf("cannot infer format of %q (%s): %w", path, mtype.String(), registry.ErrUnsupportedSuffix)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
