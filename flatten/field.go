package flatten

import (
	"github.com/caryan/paranormal/params"
	"github.com/caryan/paranormal/schema"
)

// Field is one flat argument derived from a definition tree: a plain
// parameter, one slot of an expanded range, or the guard that keeps an
// expanded range's base name reserved.
type Field struct {
	// FlatName is the conflict-free name in the merged namespace,
	// qualified with enclosing field names where needed.
	FlatName string

	// Root indexes the definition this field came from in the flatten
	// call's argument order.
	Root int

	// OwnerPath is the chain of nested field names from the root down
	// to the owning class, empty for direct fields.
	OwnerPath []string

	// Name is the declaring field's name within its owner.
	Name string

	// Slot is the slot index for an expanded range's pieces, -1
	// otherwise.
	Slot int

	// Guard marks the reserved base name of an expanded range. A guard
	// never carries a value, it exists so a stray use of the original
	// name is caught instead of silently ignored.
	Guard bool

	Kind      params.Kind
	Subtype   params.Kind
	EnumType  *params.Enum
	RangeKind params.RangeKind

	Default    any
	Required   bool
	Positional bool
	Help       string
	Unit       string
	Choices    []any
}

// Variadic reports whether the field consumes an unbounded number of
// positional tokens.
func (f Field) Variadic() bool {
	return f.Positional && f.Kind == params.KindList
}

// Arity returns the number of positional tokens the field consumes, or
// -1 for variadic fields.
func (f Field) Arity() int {
	switch {
	default:
		return 1
	case f.Variadic():
		return -1
	case f.Kind == params.KindRange:
		return 3
	}
}

// Set is a flattened view over one or more definitions: every flag and
// positional under its final conflict-free name.
type Set struct {
	Flags       []Field
	Positionals []Field
	Roots       []*schema.Definition

	byName map[string]int
}

// Flag looks up a flag field by flat name.
func (s *Set) Flag(name string) (Field, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Field{}, false
	}

	return s.Flags[i], true
}

// Names returns every flat name, flags first, in flattening order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.Flags)+len(s.Positionals))
	for _, f := range s.Flags {
		names = append(names, f.FlatName)
	}
	for _, f := range s.Positionals {
		names = append(names, f.FlatName)
	}
	return names
}
