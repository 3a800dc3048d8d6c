package registry

import (
	"reflect"
	"slices"
)

// AnyType is the catch-all object type. Handlers registered for it are the
// default for their suffix and accept every value.
var AnyType = reflect.TypeOf((*any)(nil)).Elem()

// TypeOf returns the reflect.Type of T, including interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// specificityIndex keeps, per suffix, the registered object types ordered
// from most to least specific. The catch-all type is always last.
type specificityIndex struct {
	types map[string][]reflect.Type
}

func newSpecificityIndex() *specificityIndex {
	return &specificityIndex{types: make(map[string][]reflect.Type)}
}

func (x *specificityIndex) register(suffix string, typ reflect.Type) {
	registered := x.types[suffix]
	if slices.Contains(registered, typ) {
		return
	}
	if typ == AnyType {
		registered = append(registered, typ)
	} else {
		registered = slices.Insert(registered, 0, typ)
	}
	x.types[suffix] = registered
}

func (x *specificityIndex) resolve(suffix string, requested reflect.Type) (reflect.Type, error) {
	registered := x.types[suffix]
	if len(registered) == 0 {
		return nil, &ResolutionError{Suffix: suffix, Requested: requested}
	}
	if requested == nil {
		return registered[len(registered)-1], nil
	}
	if slices.Contains(registered, requested) {
		return requested, nil
	}
	for _, typ := range registered {
		if isA(requested, typ) {
			return typ, nil
		}
	}
	return nil, &ResolutionError{
		Suffix:     suffix,
		Requested:  requested,
		Candidates: slices.Clone(registered),
	}
}

// list returns a copy of the ordered types for suffix.
func (x *specificityIndex) list(suffix string) []reflect.Type {
	return slices.Clone(x.types[suffix])
}

func (x *specificityIndex) clone() *specificityIndex {
	c := newSpecificityIndex()
	for suffix, registered := range x.types {
		c.types[suffix] = slices.Clone(registered)
	}
	return c
}

// isA reports whether values of requested can be handled by a handler
// registered for registered. Only interface types admit subtypes.
func isA(requested, registered reflect.Type) bool {
	if requested == registered {
		return true
	}
	return registered.Kind() == reflect.Interface && requested.Implements(registered)
}
