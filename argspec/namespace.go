package argspec

import (
	"github.com/caryan/paranormal/internal/common"
)

// Namespace holds one parse result: every flag's effective value under
// its flat name, plus the raw positional tokens left for matching.
// Unset flags carry their declared default, which may be nil.
type Namespace struct {
	values map[string]any
	order  []string
	args   []string
}

// NewNamespace builds a namespace directly from values, mainly for
// reconstructing outside a command line parse. Iteration order is the
// sorted key order.
func NewNamespace(values map[string]any, args ...string) *Namespace {
	ns := &Namespace{
		values: make(map[string]any, len(values)),
		order:  common.SortedKeys(values),
		args:   args,
	}
	for k, v := range values {
		ns.values[k] = v
	}
	return ns
}

// Value looks up a flag value by flat name.
func (ns *Namespace) Value(name string) (any, bool) {
	v, ok := ns.values[name]
	return v, ok
}

// Set stores a flag value under a flat name.
func (ns *Namespace) Set(name string, value any) {
	if _, ok := ns.values[name]; !ok {
		ns.order = append(ns.order, name)
	}

	ns.values[name] = value
}

// Names returns the flag names in namespace order.
func (ns *Namespace) Names() []string {
	return append([]string(nil), ns.order...)
}

// Args returns the raw positional tokens.
func (ns *Namespace) Args() []string {
	return append([]string(nil), ns.args...)
}

// Map copies the flag values into a plain map.
func (ns *Namespace) Map() map[string]any {
	out := make(map[string]any, len(ns.values))
	for k, v := range ns.values {
		out[k] = v
	}
	return out
}
