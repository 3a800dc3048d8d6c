package registry

import (
	"maps"
	"reflect"
)

type handlerKey struct {
	suffix string
	typ    reflect.Type
}

// handlerTable stores handlers by (suffix, type) and keeps the specificity
// index in step with it.
type handlerTable[H any] struct {
	handlers map[handlerKey]H
	index    *specificityIndex
}

func newHandlerTable[H any]() *handlerTable[H] {
	return &handlerTable[H]{
		handlers: make(map[handlerKey]H),
		index:    newSpecificityIndex(),
	}
}

// register stores h for (suffix, typ), overwriting any previous handler.
// The handler and its index entry are always written together.
func (t *handlerTable[H]) register(suffix string, typ reflect.Type, h H) {
	t.handlers[handlerKey{suffix: suffix, typ: typ}] = h
	t.index.register(suffix, typ)
}

func (t *handlerTable[H]) get(aliases *suffixResolver, suffix string, typ reflect.Type) (H, error) {
	var zero H
	suffix = aliases.resolve(suffix)
	resolved, err := t.index.resolve(suffix, typ)
	if err != nil {
		return zero, err
	}
	h, ok := t.handlers[handlerKey{suffix: suffix, typ: resolved}]
	if !ok {
		return zero, &LookupError{Suffix: suffix, Type: resolved}
	}
	return h, nil
}

func (t *handlerTable[H]) suffixes() []string {
	out := make([]string, 0, len(t.index.types))
	for suffix := range t.index.types {
		out = append(out, suffix)
	}
	return out
}

func (t *handlerTable[H]) clone() *handlerTable[H] {
	return &handlerTable[H]{
		handlers: maps.Clone(t.handlers),
		index:    t.index.clone(),
	}
}
