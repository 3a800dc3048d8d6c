package iomanager

import (
	"reflect"

	"github.com/GriffinCanCode/pplio/internal/logging"
	"github.com/GriffinCanCode/pplio/internal/monitoring"
	"github.com/GriffinCanCode/pplio/internal/registry"
)

// ManagerOption configures a Manager.
type ManagerOption func(*Manager) error

// WithLogger sets the logger. Operations are logged at debug level.
func WithLogger(logger *logging.Logger) ManagerOption {
	return func(m *Manager) error {
		m.logger = logger.Named("iomanager")
		return nil
	}
}

// WithMetrics records every load and dump.
func WithMetrics(metrics *monitoring.Metrics) ManagerOption {
	return func(m *Manager) error {
		m.metrics = metrics
		return nil
	}
}

// WithDirs registers directories, in key order.
func WithDirs(dirs map[string]string) ManagerOption {
	return func(m *Manager) error {
		for _, key := range sortedKeys(dirs) {
			if err := m.Set(key, dirs[key]); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithAutoMkdir sets whether Dump creates missing parent directories by
// default. It is on unless disabled.
func WithAutoMkdir(enabled bool) ManagerOption {
	return func(m *Manager) error {
		m.mkdir = enabled
		return nil
	}
}

// Option tunes a single Load or Dump call.
type Option func(*request)

type request struct {
	typ    reflect.Type
	suffix string
	format registry.Options
	mkdir  *bool
}

// WithType selects the codec by object type. For loads it is the desired
// result type; for dumps it overrides the type of the value.
func WithType(typ reflect.Type) Option {
	return func(r *request) { r.typ = typ }
}

// WithSuffix overrides the suffix used for format resolution.
func WithSuffix(suffix string) Option {
	return func(r *request) { r.suffix = suffix }
}

// WithFormatOptions passes options through to the codec.
func WithFormatOptions(opts registry.Options) Option {
	return func(r *request) { r.format = opts }
}

// WithoutMkdir stops Dump from creating parent directories.
func WithoutMkdir() Option {
	return func(r *request) {
		off := false
		r.mkdir = &off
	}
}

func newRequest(opts []Option) *request {
	r := &request{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
