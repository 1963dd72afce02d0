package params

import (
	"fmt"
	"slices"
)

// Enum is an explicit enumeration: a named, ordered set of member names.
// Declare one per logical enum type and share it between the specs that
// use it. Member resolution is by name only, there is no reflection over
// user types.
type Enum struct {
	name    string
	members []string
	index   map[string]int
}

// NewEnum builds an enumeration from an ordered member name list.
func NewEnum(name string, members ...string) (*Enum, error) {
	if name == "" {
		return nil, fmt.Errorf("enum needs a non-empty name")
	}

	if len(members) == 0 {
		return nil, fmt.Errorf("enum %q needs at least one member", name)
	}

	e := &Enum{
		name:    name,
		members: slices.Clone(members),
		index:   make(map[string]int, len(members)),
	}
	for i, m := range members {
		if m == "" {
			return nil, fmt.Errorf("enum %q: member %d has an empty name", name, i)
		}

		if _, dup := e.index[m]; dup {
			return nil, fmt.Errorf("enum %q: duplicate member %q", name, m)
		}

		e.index[m] = i
	}
	return e, nil
}

// MustEnum is NewEnum that panics on error, for package-level declarations.
func MustEnum(name string, members ...string) *Enum {
	e, err := NewEnum(name, members...)
	if err != nil {
		panic(err)
	}

	return e
}

func (e *Enum) Name() string { return e.name }

// Members returns the member names in declaration order.
func (e *Enum) Members() []string { return slices.Clone(e.members) }

func (e *Enum) Has(name string) bool {
	_, ok := e.index[name]
	return ok
}

// Member resolves a member by name.
func (e *Enum) Member(name string) (Member, error) {
	if _, ok := e.index[name]; !ok {
		return Member{}, fmt.Errorf("enum %q has no member %q", e.name, name)
	}

	return Member{enum: e, name: name}, nil
}

// MustMember is Member that panics on an unknown name.
func (e *Enum) MustMember(name string) Member {
	m, err := e.Member(name)
	if err != nil {
		panic(err)
	}

	return m
}

// Member is one resolved value of an Enum. The zero Member belongs to no
// enum. Members of the same enum compare equal iff their names match.
type Member struct {
	enum *Enum
	name string
}

func (m Member) Name() string { return m.name }

func (m Member) Enum() *Enum { return m.enum }

func (m Member) IsZero() bool { return m.enum == nil }

// Index returns the member's position in the enum's declaration order.
func (m Member) Index() int {
	if m.enum == nil {
		return -1
	}

	return m.enum.index[m.name]
}

// String returns the qualified form, such as "Colors.BLUE".
func (m Member) String() string {
	if m.enum == nil {
		return ""
	}

	return m.enum.name + "." + m.name
}
