package schema

import (
	"github.com/caryan/paranormal/params"
)

// Field is one slot of a definition: either a parameter declared by a
// spec, or a nested params class carried under a name.
type Field struct {
	Name string

	// Spec declares a parameter field. Zero when the field nests a
	// class.
	Spec params.Spec

	// Nested is the class of a nested field, nil for parameter fields.
	Nested *Definition

	// Default is the instance a fresh enclosing instance starts from
	// for a nested field. It may carry overrides on top of the nested
	// class's own defaults.
	Default *Instance
}

// IsNested reports whether the field carries a nested class.
func (f Field) IsNested() bool { return f.Nested != nil }

// Param declares a parameter field from its spec. The field takes the
// spec's name.
func Param(spec params.Spec) Field {
	return Field{Name: spec.Name, Spec: spec}
}

// Nested declares a nested class field. The default instance supplies
// both the class and the starting state for fresh enclosing instances.
func Nested(name string, defaultInstance *Instance) Field {
	f := Field{Name: name, Default: defaultInstance}
	if defaultInstance != nil {
		f.Nested = defaultInstance.Definition()
	}
	return f
}
