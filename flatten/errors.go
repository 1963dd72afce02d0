package flatten

import (
	"fmt"
)

// ConflictError reports two parameters claiming the same flat name
// after qualification has been applied.
type ConflictError struct {
	Definition string
	Name       string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("flattening %q: name %q is claimed twice, provide prefixes or distinct names",
		e.Definition, e.Name)
}
