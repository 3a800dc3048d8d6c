package table

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	f, err := New(
		Column{Name: "n", Values: []any{int64(1), 2.0, nil, int64(3)}},
		Column{Name: "label", Values: []any{"x", "y", "z", "w"}},
		Column{Name: "empty", Values: []any{nil, nil, nil, nil}},
		Column{Name: "one", Values: []any{nil, nil, nil, 5}},
	)
	require.NoError(t, err)

	got := f.Describe()
	require.Len(t, got, 2)

	n := got[0]
	assert.Equal(t, "n", n.Name)
	assert.Equal(t, 3, n.Count)
	assert.Equal(t, 1, n.Nulls)
	assert.InDelta(t, 2.0, n.Mean, 1e-12)
	assert.InDelta(t, 1.0, n.StdDev, 1e-12)
	assert.Equal(t, 1.0, n.Min)
	assert.Equal(t, 2.0, n.Median)
	assert.Equal(t, 3.0, n.Max)

	one := got[1]
	assert.Equal(t, "one", one.Name)
	assert.Equal(t, 1, one.Count)
	assert.True(t, math.IsNaN(one.StdDev))
}
