package registry

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Options carries format-specific settings from the caller to a codec. The
// registry never inspects them.
type Options map[string]any

// String returns the string option key, or def when unset.
func (o Options) String(key, def string) (string, error) {
	v, ok := o[key]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return def, fmt.Errorf("option %q: expected string, got %T", key, v)
	}
	return s, nil
}

// Indent returns an indentation string given either literally or as a
// number of spaces, or def when unset.
func (o Options) Indent(key, def string) (string, error) {
	v, ok := o[key]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case string:
		return n, nil
	case int, int64:
		width, _ := o.Int(key, 0)
		if width < 0 {
			return def, fmt.Errorf("option %q: negative indent %d", key, width)
		}
		return strings.Repeat(" ", width), nil
	default:
		return def, fmt.Errorf("option %q: expected string or int, got %T", key, v)
	}
}

// Bool returns the bool option key, or def when unset.
func (o Options) Bool(key string, def bool) (bool, error) {
	v, ok := o[key]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return def, fmt.Errorf("option %q: expected bool, got %T", key, v)
	}
	return b, nil
}

// Int returns the int option key, or def when unset.
func (o Options) Int(key string, def int) (int, error) {
	v, ok := o[key]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	default:
		return def, fmt.Errorf("option %q: expected int, got %T", key, v)
	}
}

// Rune returns a single-character option given as a rune or a string.
func (o Options) Rune(key string, def rune) (rune, error) {
	v, ok := o[key]
	if !ok {
		return def, nil
	}
	switch r := v.(type) {
	case rune:
		return r, nil
	case string:
		if utf8.RuneCountInString(r) != 1 {
			return def, fmt.Errorf("option %q: expected a single character, got %q", key, r)
		}
		c, _ := utf8.DecodeRuneInString(r)
		return c, nil
	default:
		return def, fmt.Errorf("option %q: expected rune, got %T", key, v)
	}
}
