package registry

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shape interface{ Area() float64 }

type square struct{ side float64 }

func (s square) Area() float64 { return s.side * s.side }

type table struct{ rows int }

type mapping map[string]any

var (
	shapeType   = TypeOf[shape]()
	squareType  = TypeOf[square]()
	tableType   = TypeOf[*table]()
	mappingType = TypeOf[mapping]()
	stringerTyp = TypeOf[fmt.Stringer]()
)

func TestSpecificityOrder(t *testing.T) {
	x := newSpecificityIndex()
	x.register(".csv", tableType)
	x.register(".csv", mappingType)
	x.register(".csv", AnyType)

	assert.Equal(t, []reflect.Type{mappingType, tableType, AnyType}, x.list(".csv"))
}

func TestSpecificityCatchAllStaysLast(t *testing.T) {
	x := newSpecificityIndex()
	x.register(".csv", AnyType)
	x.register(".csv", tableType)
	x.register(".csv", mappingType)
	// duplicates are ignored
	x.register(".csv", tableType)
	x.register(".csv", AnyType)

	assert.Equal(t, []reflect.Type{mappingType, tableType, AnyType}, x.list(".csv"))
}

func TestSpecificityResolve(t *testing.T) {
	x := newSpecificityIndex()
	x.register(".bin", shapeType)
	x.register(".bin", tableType)
	x.register(".bin", AnyType)
	x.register(".csv", tableType)

	tests := []struct {
		name      string
		suffix    string
		requested reflect.Type
		want      reflect.Type
	}{
		{"default is catch-all", ".bin", nil, AnyType},
		{"default without catch-all is last registered", ".csv", nil, tableType},
		{"exact match", ".bin", tableType, tableType},
		{"exact catch-all", ".bin", AnyType, AnyType},
		{"interface subtype", ".bin", squareType, shapeType},
		{"falls back to catch-all", ".bin", mappingType, AnyType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := x.resolve(tt.suffix, tt.requested)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpecificityResolveNoMatch(t *testing.T) {
	x := newSpecificityIndex()
	x.register(".csv", tableType)
	x.register(".csv", stringerTyp)

	_, err := x.resolve(".csv", TypeOf[int]())
	require.Error(t, err)

	var re *ResolutionError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, TypeOf[int](), re.Requested)
	assert.Equal(t, []reflect.Type{stringerTyp, tableType}, re.Candidates)
	assert.Contains(t, err.Error(), "cannot resolve int")
	assert.Contains(t, err.Error(), "fmt.Stringer")
	assert.Contains(t, err.Error(), "*registry.table")
	assert.False(t, errors.Is(err, ErrUnsupportedSuffix))
}

func TestSpecificityResolveUnknownSuffix(t *testing.T) {
	x := newSpecificityIndex()

	_, err := x.resolve(".nope", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedSuffix))
	assert.Contains(t, err.Error(), `".nope"`)
}
