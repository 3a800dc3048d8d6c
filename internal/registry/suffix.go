package registry

import "maps"

// suffixResolver maps alias suffixes onto canonical ones. Every alias
// resolves in a single hop.
type suffixResolver struct {
	aliases map[string]string
}

func newSuffixResolver() *suffixResolver {
	return &suffixResolver{aliases: make(map[string]string)}
}

// register stores alias → canonical. A canonical that is itself an alias
// collapses to its target, and aliases that pointed at the new alias are
// rewritten so no chain forms.
func (s *suffixResolver) register(canonical, alias string) {
	canonical = s.resolve(canonical)
	if alias == canonical {
		return
	}
	for a, c := range s.aliases {
		if c == alias {
			s.aliases[a] = canonical
		}
	}
	s.aliases[alias] = canonical
}

// resolve returns the canonical suffix for a known alias. Unknown suffixes
// are treated as already canonical.
func (s *suffixResolver) resolve(suffix string) string {
	if canonical, ok := s.aliases[suffix]; ok {
		return canonical
	}
	return suffix
}

func (s *suffixResolver) clone() *suffixResolver {
	return &suffixResolver{aliases: maps.Clone(s.aliases)}
}
