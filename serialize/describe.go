package serialize

import (
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/caryan/paranormal/params"
	"github.com/caryan/paranormal/schema"
)

// Describe builds a JSON schema for the serialized form of a
// definition: one property per visible field plus the two reserved
// identity keys pinned to the definition's type and namespace. The
// result documents the mapping that ToMap produces and FromMap accepts.
func Describe(def *schema.Definition) *jsonschema.Schema {
	props := jsonschema.NewProperties()
	required := []string{}

	for _, f := range def.Fields() {
		if f.IsNested() {
			props.Set(f.Name, Describe(f.Nested))
			continue
		}

		if f.Spec.Hidden {
			continue
		}

		props.Set(f.Name, specSchema(f.Spec))
		if f.Spec.Required {
			required = append(required, f.Name)
		}
	}

	props.Set(TypeKey, &jsonschema.Schema{Const: def.Name()})
	props.Set(NamespaceKey, &jsonschema.Schema{Const: def.Namespace()})

	return &jsonschema.Schema{
		Type:        "object",
		Title:       def.ID().String(),
		Description: def.Help(),
		Properties:  props,
		Required:    append(required, TypeKey, NamespaceKey),
	}
}

func specSchema(sp params.Spec) *jsonschema.Schema {
	s := scalarSchema(sp.Kind, sp)
	s.Description = helpText(sp)

	if sp.Default != nil {
		s.Default = plain(sp.Default)
	}
	if len(sp.Choices) > 0 {
		enum := make([]any, len(sp.Choices))
		for i, c := range sp.Choices {
			enum[i] = plain(c)
		}

		s.Enum = enum
	}

	return s
}

func scalarSchema(kind params.Kind, sp params.Spec) *jsonschema.Schema {
	three := uint64(3)

	switch kind {
	default:
		return &jsonschema.Schema{Type: "string"}
	case params.KindBool:
		return &jsonschema.Schema{Type: "boolean"}
	case params.KindInt:
		return &jsonschema.Schema{Type: "integer"}
	case params.KindFloat:
		return &jsonschema.Schema{Type: "number"}
	case params.KindEnum:
		s := &jsonschema.Schema{Type: "string"}
		if sp.EnumType != nil {
			for _, name := range sp.EnumType.Members() {
				s.Enum = append(s.Enum, name)
			}
		}
		return s
	case params.KindList:
		return &jsonschema.Schema{
			Type:  "array",
			Items: scalarSchema(sp.Subtype, params.Spec{}),
		}
	case params.KindRange:
		return &jsonschema.Schema{
			Type: "array",
			Items: &jsonschema.Schema{OneOf: []*jsonschema.Schema{
				{Type: "number"},
				{Type: "null"},
			}},
			MinItems: &three,
			MaxItems: &three,
		}
	}
}

func helpText(sp params.Spec) string {
	if sp.Unit == "" {
		return sp.Help
	}
	if sp.Help == "" {
		return fmt.Sprintf("[%s]", sp.Unit)
	}

	return fmt.Sprintf("%s [%s]", sp.Help, sp.Unit)
}
