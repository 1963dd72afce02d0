package params

import (
	"fmt"
)

// Spec declares a single named parameter: its value kind, declared
// default, and the knobs that shape how it surfaces on a command line
// (positional placement, expansion of ranges into slot arguments,
// hiding). Specs are plain data; construct them with the kind helpers
// and functional options, then hand them to a schema definition.
type Spec struct {
	Name     string
	Kind     Kind
	Default  any
	Required bool
	Help     string
	Unit     string

	// Positional marks the parameter as consumed from the positional
	// argument stream instead of a named flag.
	Positional bool

	// Hidden keeps the parameter out of generated argument specs and
	// default serialization output.
	Hidden bool

	// Choices restricts accepted values to a fixed set, compared after
	// coercion with loose numeric equality.
	Choices []any

	// EnumType carries the member table for KindEnum specs.
	EnumType *Enum

	// Subtype is the element kind for KindList specs.
	Subtype Kind

	// RangeKind selects the materialization rule for KindRange specs.
	RangeKind RangeKind

	// Expand splits a range parameter into its three slot arguments,
	// named by Prefix plus the slot suffixes for its RangeKind.
	Expand bool
	Prefix string
}

// Option mutates a Spec under construction.
type Option func(*Spec)

// Default sets the declared default value. A nil default is legal and
// means the parameter starts out unset.
func Default(v any) Option { return func(s *Spec) { s.Default = v } }

// Required marks the parameter mandatory. Required parameters cannot
// carry a default.
func Required() Option { return func(s *Spec) { s.Required = true } }

// Help attaches usage text.
func Help(text string) Option { return func(s *Spec) { s.Help = text } }

// Unit attaches a unit label, shown next to defaults in help output and
// on each slot of an expanded range.
func Unit(unit string) Option { return func(s *Spec) { s.Unit = unit } }

// Positional places the parameter in the positional argument stream.
func Positional() Option { return func(s *Spec) { s.Positional = true } }

// Hidden removes the parameter from argument specs and from default
// serialization output.
func Hidden() Option { return func(s *Spec) { s.Hidden = true } }

// Choices restricts the accepted values.
func Choices(values ...any) Option { return func(s *Spec) { s.Choices = values } }

// Expand splits a range parameter into slot arguments.
func Expand() Option { return func(s *Spec) { s.Expand = true } }

// Prefix sets the slot name prefix for an expanded range. Only valid
// together with Expand.
func Prefix(prefix string) Option { return func(s *Spec) { s.Prefix = prefix } }

func build(name string, kind Kind, opts []Option) Spec {
	s := Spec{Name: name, Kind: kind}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Bool declares a boolean parameter.
func Bool(name string, opts ...Option) Spec { return build(name, KindBool, opts) }

// Int declares an integer parameter.
func Int(name string, opts ...Option) Spec { return build(name, KindInt, opts) }

// Float declares a floating point parameter.
func Float(name string, opts ...Option) Spec { return build(name, KindFloat, opts) }

// String declares a string parameter.
func String(name string, opts ...Option) Spec { return build(name, KindString, opts) }

// EnumOf declares a parameter whose values are members of enum.
func EnumOf(name string, enum *Enum, opts ...Option) Spec {
	s := build(name, KindEnum, opts)
	s.EnumType = enum
	return s
}

// ListOf declares a list parameter with elements of elem kind.
func ListOf(name string, elem Kind, opts ...Option) Spec {
	s := build(name, KindList, opts)
	s.Subtype = elem
	return s
}

func rangeSpec(name string, kind RangeKind, opts []Option) Spec {
	s := build(name, KindRange, opts)
	s.RangeKind = kind
	return s
}

// Arange declares a range parameter materialized as stop-exclusive
// stepping from start.
func Arange(name string, opts ...Option) Spec { return rangeSpec(name, RangeArange, opts) }

// Linspace declares a range parameter materialized as num evenly spaced
// points over [start, stop].
func Linspace(name string, opts ...Option) Spec { return rangeSpec(name, RangeLinspace, opts) }

// Geomspace declares a range parameter materialized as num
// geometrically spaced points over [start, stop].
func Geomspace(name string, opts ...Option) Spec { return rangeSpec(name, RangeGeomspace, opts) }

// SpanArange declares a range parameter materialized as stop-exclusive
// stepping across a width centered on a midpoint.
func SpanArange(name string, opts ...Option) Spec { return rangeSpec(name, RangeSpanArange, opts) }

// Validate checks the internal consistency of the spec declaration
// itself, independent of any value.
func (s Spec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("parameter must have a name")
	}

	if s.Kind <= 0 || int(s.Kind) > KindTotal {
		return fmt.Errorf("parameter %q has no kind", s.Name)
	}

	if s.Required && s.Default != nil {
		return fmt.Errorf("required parameter %q cannot carry a default", s.Name)
	}

	if s.Kind == KindEnum && s.EnumType == nil {
		return fmt.Errorf("enum parameter %q has no enum type", s.Name)
	}

	if s.Kind == KindList && !validSubtype(s.Subtype) {
		return fmt.Errorf("list parameter %q needs an element kind of bool, int, float or string", s.Name)
	}

	if s.Kind == KindRange && s.RangeKind == RangeNone {
		return fmt.Errorf("range parameter %q has no range kind", s.Name)
	}

	if s.Expand && s.Kind != KindRange {
		return fmt.Errorf("parameter %q is not a range and cannot be expanded", s.Name)
	}

	if s.Prefix != "" && !s.Expand {
		return fmt.Errorf("parameter %q has a prefix but is not expanded", s.Name)
	}

	if s.Expand && s.Positional {
		return fmt.Errorf("parameter %q cannot be both expanded and positional", s.Name)
	}

	if s.Positional && s.Kind == KindBool {
		return fmt.Errorf("bool parameter %q cannot be positional", s.Name)
	}

	return nil
}

func validSubtype(k Kind) bool {
	switch k {
	default:
		return false
	case KindBool, KindInt, KindFloat, KindString:
		return true
	}
}
