package registry

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrUnsupportedSuffix matches a ResolutionError for a suffix that has no
// registered handlers at all.
var ErrUnsupportedSuffix = errors.New("unsupported suffix")

// ResolutionError reports that the requested object type matches none of the
// types registered for a suffix, neither exactly nor through an interface.
type ResolutionError struct {
	Suffix     string
	Requested  reflect.Type
	Candidates []reflect.Type
}

func (e *ResolutionError) Error() string {
	if len(e.Candidates) == 0 {
		return fmt.Sprintf("no handlers registered for suffix %q", e.Suffix)
	}
	names := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		names[i] = typeName(c)
	}
	return fmt.Sprintf("cannot resolve %s for suffix %q from [%s]",
		typeName(e.Requested), e.Suffix, strings.Join(names, ", "))
}

// Is lets errors.Is(err, ErrUnsupportedSuffix) detect an unknown suffix.
func (e *ResolutionError) Is(target error) bool {
	return target == ErrUnsupportedSuffix && len(e.Candidates) == 0
}

// LookupError reports a resolved (suffix, type) pair with no handler. It
// means the specificity index and the handler table disagree.
type LookupError struct {
	Suffix string
	Type   reflect.Type
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no handler for suffix %q and type %s", e.Suffix, typeName(e.Type))
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t == AnyType {
		return "any"
	}
	return t.String()
}
