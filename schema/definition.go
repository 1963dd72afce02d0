package schema

import (
	"slices"

	"github.com/caryan/paranormal/internal/match"
)

// TypeID identifies a definition across serialization boundaries: the
// namespace it was declared in plus its class name.
type TypeID struct {
	Namespace string
	Name      string
}

func (id TypeID) String() string { return id.Namespace + "." + id.Name }

// Definition is a declared params class: an ordered set of parameter
// and nested-class fields under a registered type identity. Definitions
// are immutable once built and safe for concurrent use.
type Definition struct {
	id     TypeID
	help   string
	fields []Field
	index  map[string]int
}

// Define declares a params class and registers it in DefaultRegistry
// under its namespace and name. Field declaration order is preserved
// and significant everywhere downstream.
func Define(namespace, name string, fields ...Field) (*Definition, error) {
	if name == "" || namespace == "" {
		return nil, defErr(name, "needs a non-empty namespace and name")
	}

	d := &Definition{
		id:     TypeID{Namespace: namespace, Name: name},
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if f.Name == "" {
			return nil, defErr(name, "field needs a name")
		}

		if _, dup := d.index[f.Name]; dup {
			return nil, defErr(name, "duplicate field %q", f.Name)
		}

		if f.IsNested() {
			if f.Default == nil {
				return nil, defErr(name, "nested field %q needs a default instance", f.Name)
			}
		} else {
			if err := f.Spec.Validate(); err != nil {
				return nil, &DefinitionError{Definition: name, Err: err}
			}

			// canonicalize the declared default up front, so 60 and
			// 60.0 read back identically
			v, err := f.Spec.Coerce(f.Spec.Default)
			if err != nil {
				return nil, &DefinitionError{Definition: name, Err: err}
			}

			f.Spec.Default = v
		}

		d.index[f.Name] = len(d.fields)
		d.fields = append(d.fields, f)
	}

	if err := DefaultRegistry.Add(d); err != nil {
		return nil, err
	}

	return d, nil
}

// MustDefine is Define that panics on error, for package-level class
// declarations.
func MustDefine(namespace, name string, fields ...Field) *Definition {
	d, err := Define(namespace, name, fields...)
	if err != nil {
		panic(err)
	}

	return d
}

// WithHelp attaches descriptive text, surfaced as the program
// description when the class heads a command line. Returns the
// definition for use in declarations.
func (d *Definition) WithHelp(text string) *Definition {
	d.help = text
	return d
}

// ID returns the registered type identity.
func (d *Definition) ID() TypeID { return d.id }

func (d *Definition) Namespace() string { return d.id.Namespace }

func (d *Definition) Name() string { return d.id.Name }

func (d *Definition) Help() string { return d.help }

// Fields returns the fields in declaration order.
func (d *Definition) Fields() []Field {
	return slices.Clone(d.fields)
}

// Names returns the field names in declaration order.
func (d *Definition) Names() []string {
	names := make([]string, len(d.fields))
	for i, f := range d.fields {
		names[i] = f.Name
	}
	return names
}

// Field looks up a field by name.
func (d *Definition) Field(name string) (Field, bool) {
	i, ok := d.index[name]
	if !ok {
		return Field{}, false
	}

	return d.fields[i], true
}

// Unit returns the unit label of a parameter field, or "".
func (d *Definition) Unit(name string) string {
	f, ok := d.Field(name)
	if !ok || f.IsNested() {
		return ""
	}

	return f.Spec.Unit
}

// unknown builds the error for a name this definition does not declare.
func (d *Definition) unknown(field string) *UnknownFieldError {
	e := &UnknownFieldError{Definition: d.id.Name, Field: field}
	if s, ok := match.Closest(field, d.Names()); ok {
		e.Suggestion = s
	}
	return e
}
