package serialize

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedFormat reports a mapping without the two reserved type
// identity keys, nothing to resolve a definition from.
var ErrUnrecognizedFormat = errors.New("mapping format not recognized")

// UnknownTypeError reports identity keys naming a definition that the
// registry has never seen.
type UnknownTypeError struct {
	Namespace string
	Name      string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("no definition registered for %s.%s", e.Namespace, e.Name)
}
