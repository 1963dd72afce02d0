package schema

import (
	"fmt"
	"strings"
)

// DefinitionError reports an invalid parameter class declaration.
type DefinitionError struct {
	Definition string
	Err        error
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("params class %q: %v", e.Definition, e.Err)
}

func (e *DefinitionError) Unwrap() error { return e.Err }

func defErr(definition string, format string, args ...any) error {
	return &DefinitionError{Definition: definition, Err: fmt.Errorf(format, args...)}
}

// UnknownFieldError reports a value keyed by a name the definition does
// not declare. Suggestion carries the closest declared name when one is
// plausibly a misspelling.
type UnknownFieldError struct {
	Definition string
	Field      string
	Suggestion string
}

func (e *UnknownFieldError) Error() string {
	msg := fmt.Sprintf("params class %q has no parameter %q", e.Definition, e.Field)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(", did you mean %q", e.Suggestion)
	}
	return msg
}

// MissingFieldsError reports required parameters left unset, all of
// them at once.
type MissingFieldsError struct {
	Definition string
	Fields     []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("params class %q: missing required parameters: %s",
		e.Definition, strings.Join(e.Fields, ", "))
}
