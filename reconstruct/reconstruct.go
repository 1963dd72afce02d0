package reconstruct

import (
	"slices"
	"strings"

	"github.com/caryan/paranormal/argspec"
	"github.com/caryan/paranormal/flatten"
	"github.com/caryan/paranormal/schema"
)

// Instances rebuilds one instance per definition from a parsed flat
// namespace. The definitions are flattened again with the same rules
// that produced the command line, so every flat name maps back to the
// field it came from, at any nesting depth. Values missing from the
// namespace keep their declared defaults and expanded ranges are
// reassembled from their slot arguments.
//
// Instances panics with a *ContractError when the namespace carries a
// value under the reserved base name of an expanded range.
func Instances(ns *argspec.Namespace, defs ...*schema.Definition) ([]*schema.Instance, error) {
	set, err := flatten.Fields(defs...)
	if err != nil {
		return nil, err
	}

	matched, err := matchPositionals(set.Positionals, ns.Args())
	if err != nil {
		return nil, err
	}

	idx := indexFields(set)

	out := make([]*schema.Instance, len(defs))
	for i, d := range defs {
		in, err := build(i, d, nil, idx, ns, matched)
		if err != nil {
			return nil, err
		}

		out[i] = in
	}

	return out, nil
}

// One rebuilds a single definition, a convenience over Instances.
func One(ns *argspec.Namespace, def *schema.Definition) (*schema.Instance, error) {
	list, err := Instances(ns, def)
	if err != nil {
		return nil, err
	}

	return list[0], nil
}

// fieldKey identifies a declared field across the flattened set: which
// root definition it belongs to, the nesting path down to its owner and
// its name within the owner. Slots and guards of one expanded range
// share a key.
type fieldKey struct {
	root int
	path string
	name string
}

// fieldGroup collects the flat fields derived from one declared field.
// A plain parameter fills single, an expanded range fills the three
// slots and the guard.
type fieldGroup struct {
	single *flatten.Field
	slots  [3]*flatten.Field
	guard  *flatten.Field
}

func indexFields(set *flatten.Set) map[fieldKey]*fieldGroup {
	idx := make(map[fieldKey]*fieldGroup)

	add := func(f flatten.Field) {
		k := fieldKey{root: f.Root, path: strings.Join(f.OwnerPath, "."), name: f.Name}
		g := idx[k]
		if g == nil {
			g = &fieldGroup{}
			idx[k] = g
		}

		cp := f
		switch {
		default:
			g.single = &cp
		case f.Guard:
			g.guard = &cp
		case f.Slot >= 0:
			g.slots[f.Slot] = &cp
		}
	}

	for _, f := range set.Flags {
		add(f)
	}
	for _, f := range set.Positionals {
		add(f)
	}

	return idx
}

func build(root int, d *schema.Definition, path []string, idx map[fieldKey]*fieldGroup, ns *argspec.Namespace, matched map[string]any) (*schema.Instance, error) {
	values := schema.Values{}

	for _, f := range d.Fields() {
		if f.IsNested() {
			sub, err := build(root, f.Nested, append(slices.Clone(path), f.Name), idx, ns, matched)
			if err != nil {
				return nil, err
			}

			values[f.Name] = sub
			continue
		}

		if f.Spec.Hidden {
			continue
		}

		g := idx[fieldKey{root: root, path: strings.Join(path, "."), name: f.Name}]
		if g == nil {
			continue
		}

		if f.Spec.Expand {
			if v, ok := ns.Value(g.guard.FlatName); ok && v != nil {
				panic(&ContractError{Name: g.guard.FlatName, Slots: slotNames(g)})
			}

			triple := make([]any, 3)
			every := true
			for s := range triple {
				triple[s] = lookup(g.slots[s], ns, matched)
				if triple[s] != nil {
					every = false
				}
			}

			// All three slots unset means the declared default was nil,
			// leave the field alone so it stays nil.
			if every {
				continue
			}

			values[f.Name] = triple
			continue
		}

		if v := lookup(g.single, ns, matched); v != nil {
			values[f.Name] = v
		}
	}

	return d.New(values)
}

func lookup(f *flatten.Field, ns *argspec.Namespace, matched map[string]any) any {
	if f.Positional {
		return matched[f.FlatName]
	}

	v, _ := ns.Value(f.FlatName)
	return v
}

func slotNames(g *fieldGroup) []string {
	names := make([]string, 0, 3)
	for _, s := range g.slots {
		if s != nil {
			names = append(names, s.FlatName)
		}
	}

	return names
}
