package reconstruct

import (
	"fmt"
	"strings"
)

// ContractError reports a value passed under the base name of an
// expanded range. The base name only exists to catch this misuse, the
// value must arrive through the slot arguments instead. It is delivered
// by panic, the caller broke the expansion contract rather than hitting
// a runtime condition.
type ContractError struct {
	Name  string
	Slots []string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("parameter %q was expanded, pass %s instead",
		e.Name, strings.Join(e.Slots, ", "))
}
