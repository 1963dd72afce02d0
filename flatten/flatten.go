package flatten

import (
	"fmt"
	"strings"

	"github.com/caryan/paranormal/internal/common"
	"github.com/caryan/paranormal/params"
	"github.com/caryan/paranormal/schema"
)

// entry is the atomic naming unit: a single parameter, or the slots and
// guard of one expanded range. Qualification always moves a whole
// entry, so an expanded range's pieces stay findable under one
// consistent prefix.
type entry struct {
	fields []Field
}

// unit tags an entry with the nested field it arrived through at the
// current level, "" for the level's own parameters.
type unit struct {
	child string
	e     entry
}

// Fields flattens definitions into one conflict-free namespace. Within
// a class, nested names colliding with sibling or enclosing names are
// qualified with their nested field's name. Across classes no
// qualification applies, a collision is an error.
func Fields(defs ...*schema.Definition) (*Set, error) {
	set := &Set{Roots: defs, byName: make(map[string]int)}
	claimed := make(map[string]bool)
	var variadics []string
	for i, d := range defs {
		entries, err := flattenDef(i, d)
		if err != nil {
			return nil, err
		}

		for _, e := range entries {
			for _, f := range e.fields {
				if claimed[f.FlatName] {
					return nil, &ConflictError{Definition: d.Name(), Name: f.FlatName}
				}

				claimed[f.FlatName] = true
				if f.Positional {
					if f.Variadic() {
						variadics = append(variadics, f.FlatName)
					}

					set.Positionals = append(set.Positionals, f)
					continue
				}

				set.byName[f.FlatName] = len(set.Flags)
				set.Flags = append(set.Flags, f)
			}
		}
	}

	if common.IsMultiple(variadics) {
		return nil, fmt.Errorf("cannot flatten multiple variadic positional arguments: %s",
			strings.Join(variadics, ", "))
	}

	return set, nil
}

func flattenDef(root int, d *schema.Definition) ([]entry, error) {
	var units []unit
	for _, f := range d.Fields() {
		if f.IsNested() {
			sub, err := flattenDef(root, f.Nested)
			if err != nil {
				return nil, err
			}

			for _, e := range sub {
				for j := range e.fields {
					e.fields[j].OwnerPath = append([]string{f.Name}, e.fields[j].OwnerPath...)
				}
				units = append(units, unit{child: f.Name, e: e})
			}
			continue
		}

		if f.Spec.Hidden {
			continue
		}

		if f.Spec.Expand {
			units = append(units, unit{e: familyEntry(root, f.Spec)})
		} else {
			units = append(units, unit{e: singleEntry(root, f.Spec)})
		}
	}

	// the level's own names must be unique among themselves, there is
	// no qualification that could save them
	direct := make(map[string]bool)
	for _, u := range units {
		if u.child != "" {
			continue
		}

		for _, f := range u.e.fields {
			if direct[f.FlatName] {
				return nil, &ConflictError{Definition: d.Name(), Name: f.FlatName}
			}

			direct[f.FlatName] = true
		}
	}

	owners := ownersByName(units)
	out := make([]entry, 0, len(units))
	for _, u := range units {
		if u.child != "" && conflicted(u, owners) {
			for j := range u.e.fields {
				u.e.fields[j].FlatName = u.child + "_" + u.e.fields[j].FlatName
			}
		}

		out = append(out, u.e)
	}

	// qualification must have left every name unique
	seen := make(map[string]bool)
	for _, e := range out {
		for _, f := range e.fields {
			if seen[f.FlatName] {
				return nil, &ConflictError{Definition: d.Name(), Name: f.FlatName}
			}

			seen[f.FlatName] = true
		}
	}
	return out, nil
}

// ownersByName maps each name to the set of units claiming it, keyed by
// the nested field it came through.
func ownersByName(units []unit) map[string]map[string]bool {
	owners := make(map[string]map[string]bool)
	for _, u := range units {
		for _, f := range u.e.fields {
			m := owners[f.FlatName]
			if m == nil {
				m = make(map[string]bool)
				owners[f.FlatName] = m
			}

			m[u.child] = true
		}
	}
	return owners
}

// conflicted reports whether any of the unit's names is also claimed
// outside its own nested field.
func conflicted(u unit, owners map[string]map[string]bool) bool {
	for _, f := range u.e.fields {
		for owner := range owners[f.FlatName] {
			if owner != u.child {
				return true
			}
		}
	}
	return false
}

func singleEntry(root int, sp params.Spec) entry {
	return entry{fields: []Field{{
		FlatName:   sp.Name,
		Root:       root,
		Name:       sp.Name,
		Slot:       -1,
		Kind:       sp.Kind,
		Subtype:    sp.Subtype,
		EnumType:   sp.EnumType,
		RangeKind:  sp.RangeKind,
		Default:    sp.Default,
		Required:   sp.Required,
		Positional: sp.Positional,
		Help:       sp.Help,
		Unit:       sp.Unit,
		Choices:    sp.Choices,
	}}}
}

// familyEntry splits an expanded range into its three slot fields plus
// the guard reserving the base name.
func familyEntry(root int, sp params.Spec) entry {
	names := sp.RangeKind.Slots()
	kinds := sp.RangeKind.SlotKinds()
	units := sp.RangeKind.SlotUnits(sp.Unit)

	var def params.Range
	if r, ok := sp.Default.(params.Range); ok {
		def = r
	}

	fields := make([]Field, 0, 4)
	for i := 0; i < 3; i++ {
		fields = append(fields, Field{
			FlatName: sp.Prefix + names[i],
			Root:     root,
			Name:     sp.Name,
			Slot:     i,
			Kind:     kinds[i],
			Default:  slotDefault(def[i], kinds[i]),
			Required: sp.Required,
			Help:     slotHelp(sp.Help),
			Unit:     units[i],
			Choices:  slotChoices(sp, i),
		})
	}
	fields = append(fields, Field{
		FlatName:  sp.Name,
		Root:      root,
		Name:      sp.Name,
		Slot:      -1,
		Guard:     true,
		Kind:      params.KindRange,
		RangeKind: sp.RangeKind,
	})
	return entry{fields: fields}
}

func slotDefault(v *float64, kind params.Kind) any {
	if v == nil {
		return nil
	}

	if kind == params.KindInt {
		return int(*v)
	}

	return *v
}

func slotHelp(help string) string {
	return strings.TrimSpace(help + " (expanded into three arguments)")
}

// slotChoices transposes whole-range choices onto a single slot.
func slotChoices(sp params.Spec, slot int) []any {
	if len(sp.Choices) == 0 {
		return nil
	}

	bare := sp
	bare.Choices = nil
	out := make([]any, 0, len(sp.Choices))
	for _, c := range sp.Choices {
		v, err := bare.Coerce(c)
		if err != nil {
			continue
		}

		r, ok := v.(params.Range)
		if !ok || r[slot] == nil {
			continue
		}

		out = append(out, *r[slot])
	}
	return out
}
