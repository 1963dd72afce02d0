package schema

import (
	"cmp"
	"slices"
	"sync"
)

// Registry maps type identities to definitions, so serialized payloads
// can name their class and be rebuilt from it.
type Registry struct {
	mu   sync.RWMutex
	defs map[TypeID]*Definition
}

func NewRegistry() *Registry {
	return &Registry{defs: make(map[TypeID]*Definition)}
}

// DefaultRegistry receives every definition built by Define.
var DefaultRegistry = NewRegistry()

// Add registers a definition. Two distinct classes cannot share a type
// identity.
func (r *Registry) Add(d *Definition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.defs[d.id]; dup {
		return defErr(d.id.Name, "type %s is already registered", d.id)
	}

	r.defs[d.id] = d
	return nil
}

// Lookup resolves a type identity.
func (r *Registry) Lookup(namespace, name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.defs[TypeID{Namespace: namespace, Name: name}]
	return d, ok
}

// IDs returns the registered identities sorted by namespace then name.
func (r *Registry) IDs() []TypeID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]TypeID, 0, len(r.defs))
	for id := range r.defs {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b TypeID) int {
		if c := cmp.Compare(a.Namespace, b.Namespace); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})
	return ids
}
