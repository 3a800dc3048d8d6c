// Package testutil provides shared fixtures and assertions for round-trip tests.
package testutil

import (
	"testing"

	"github.com/GriffinCanCode/pplio/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Columns returns the sample data used by the round-trip tests.
func Columns() map[string][]any {
	return map[string][]any{
		"a": {1, 2, 3},
		"b": {4, 5, 6},
	}
}

// Mapping returns Columns as a generic string-keyed document.
func Mapping() map[string]any {
	m := make(map[string]any)
	for k, v := range Columns() {
		m[k] = v
	}
	return m
}

// Frame returns Columns as a frame.
func Frame(t *testing.T) *table.Frame {
	t.Helper()
	f, err := table.FromMap(Columns())
	require.NoError(t, err)
	return f
}

// AssertColumnsClose checks that got, a frame or a decoded document, holds
// numerically equal columns for every key of want.
func AssertColumnsClose(t *testing.T, want map[string][]any, got any) {
	t.Helper()
	for name, values := range want {
		col, ok := column(got, name)
		if !assert.True(t, ok, "column %q missing from %T", name, got) {
			continue
		}
		assert.InDeltaSlice(t, values, col, 1e-9, "column %q", name)
	}
}

func column(v any, name string) ([]any, bool) {
	switch doc := v.(type) {
	case *table.Frame:
		return doc.Column(name)
	case map[string]any:
		col, ok := doc[name].([]any)
		return col, ok
	case map[string][]any:
		col, ok := doc[name]
		return col, ok
	default:
		return nil, false
	}
}
