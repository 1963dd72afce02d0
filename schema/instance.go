package schema

import (
	"fmt"
	"slices"

	"github.com/caryan/paranormal/internal/common"
	"github.com/caryan/paranormal/params"
)

// Values keys explicit field values by name when building an instance.
// A nil value is an explicit unset, distinct from leaving the key out.
type Values map[string]any

// Instance is one concrete configuration of a definition. It tracks
// which fields were set explicitly, so unset fields follow the declared
// defaults and serialization can tell the two apart.
type Instance struct {
	def    *Definition
	values map[string]any
}

// New builds an instance with the given explicit values. Every value is
// coerced into its field's canonical form, unknown names are rejected
// with a closest-name suggestion, and missing required parameters are
// all reported at once. Nested fields start from a clone of their
// declared default unless overridden with another instance.
func (d *Definition) New(values Values) (*Instance, error) {
	for _, k := range common.SortedKeys(values) {
		if _, ok := d.index[k]; !ok {
			return nil, d.unknown(k)
		}
	}

	in := &Instance{def: d, values: make(map[string]any, len(values))}
	for _, f := range d.fields {
		v, set := values[f.Name]
		if f.IsNested() {
			base := f.Default
			if set {
				nested, ok := v.(*Instance)
				if !ok {
					return nil, fmt.Errorf("field %q of %s wants a %s instance, got %T",
						f.Name, d.id.Name, f.Nested.id.Name, v)
				}

				if nested.def != f.Nested {
					return nil, fmt.Errorf("field %q of %s wants a %s instance, got %s",
						f.Name, d.id.Name, f.Nested.id.Name, nested.def.id.Name)
				}

				base = nested
			}

			in.values[f.Name] = base.Clone()
			continue
		}

		if !set {
			continue
		}

		cv, err := f.Spec.Coerce(v)
		if err != nil {
			return nil, err
		}

		in.values[f.Name] = cv
	}

	var missing []string
	for _, f := range d.fields {
		if f.IsNested() || !f.Spec.Required {
			continue
		}

		if _, ok := in.values[f.Name]; !ok {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Definition: d.id.Name, Fields: missing}
	}

	return in, nil
}

// MustNew is New that panics on error, for declaring nested defaults.
func (d *Definition) MustNew(values Values) *Instance {
	in, err := d.New(values)
	if err != nil {
		panic(err)
	}

	return in
}

func (in *Instance) Definition() *Definition { return in.def }

// IsSet reports whether the field holds an explicit value. Nested
// fields always do.
func (in *Instance) IsSet(name string) bool {
	_, ok := in.values[name]
	return ok
}

// Raw returns the stored value without materialization: the explicit
// value if one was set, the declared default otherwise. Range fields
// come back as their slot triple.
func (in *Instance) Raw(name string) (any, error) {
	f, ok := in.def.Field(name)
	if !ok {
		return nil, in.def.unknown(name)
	}

	if v, set := in.values[name]; set {
		return v, nil
	}

	if f.IsNested() {
		// unreachable in practice, nested fields are always populated
		return f.Default.Clone(), nil
	}

	return f.Spec.Default, nil
}

// Value returns the effective value of a field. A complete range
// materializes into its point sequence; a partial one stays a raw slot
// triple.
func (in *Instance) Value(name string) (any, error) {
	v, err := in.Raw(name)
	if err != nil {
		return nil, err
	}

	f, _ := in.def.Field(name)
	if f.IsNested() || f.Spec.Kind != params.KindRange {
		return v, nil
	}

	r, ok := v.(params.Range)
	if !ok || !r.Complete() {
		return v, nil
	}

	return r.Materialize(f.Spec.RangeKind)
}

// MustValue is Value that panics on error.
func (in *Instance) MustValue(name string) any {
	v, err := in.Value(name)
	if err != nil {
		panic(err)
	}

	return v
}

// Set stores an explicit value, coerced like at construction.
func (in *Instance) Set(name string, value any) error {
	f, ok := in.def.Field(name)
	if !ok {
		return in.def.unknown(name)
	}

	if f.IsNested() {
		nested, ok := value.(*Instance)
		if !ok || nested.def != f.Nested {
			return fmt.Errorf("field %q of %s wants a %s instance",
				name, in.def.id.Name, f.Nested.id.Name)
		}

		in.values[name] = nested.Clone()
		return nil
	}

	v, err := f.Spec.Coerce(value)
	if err != nil {
		return err
	}

	in.values[name] = v
	return nil
}

// IsDefault reports whether the field's value matches its declared
// default.
func (in *Instance) IsDefault(name string) (bool, error) {
	f, ok := in.def.Field(name)
	if !ok {
		return false, in.def.unknown(name)
	}

	v, err := in.Raw(name)
	if err != nil {
		return false, err
	}

	if f.IsNested() {
		nested := v.(*Instance)
		return nested.Equal(f.Default), nil
	}

	return params.Equal(v, f.Spec.Default), nil
}

// Item is one named effective value.
type Item struct {
	Name  string
	Value any
}

// Items returns the visible fields with their effective values, in
// declaration order. Hidden parameters are skipped.
func (in *Instance) Items() []Item {
	items := make([]Item, 0, len(in.def.fields))
	for _, f := range in.def.fields {
		if !f.IsNested() && f.Spec.Hidden {
			continue
		}

		v, err := in.Value(f.Name)
		if err != nil {
			continue
		}

		items = append(items, Item{Name: f.Name, Value: v})
	}
	return items
}

// Clone deep-copies the instance. Mutating the copy never touches the
// original, including nested instances and slice values.
func (in *Instance) Clone() *Instance {
	out := &Instance{def: in.def, values: make(map[string]any, len(in.values))}
	for k, v := range in.values {
		out.values[k] = cloneValue(v)
	}
	return out
}

// Equal compares two instances structurally: same definition, and every
// field's effective value equal under loose numeric comparison, nested
// instances recursively.
func (in *Instance) Equal(other *Instance) bool {
	if in == nil || other == nil {
		return in == other
	}

	if in.def != other.def {
		return false
	}

	for _, f := range in.def.fields {
		a, err := in.Raw(f.Name)
		if err != nil {
			return false
		}

		b, err := other.Raw(f.Name)
		if err != nil {
			return false
		}

		if !valueEqual(a, b) {
			return false
		}
	}
	return true
}

func cloneValue(v any) any {
	switch t := v.(type) {
	default:
		return v
	case *Instance:
		return t.Clone()
	case params.Range:
		var r params.Range
		for i, p := range t {
			if p != nil {
				r[i] = params.Num(*p)
			}
		}
		return r
	case []any:
		return slices.Clone(t)
	case []int:
		return slices.Clone(t)
	case []float64:
		return slices.Clone(t)
	case []string:
		return slices.Clone(t)
	case []bool:
		return slices.Clone(t)
	}
}
