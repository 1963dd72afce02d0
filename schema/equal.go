package schema

import (
	"github.com/caryan/paranormal/params"
)

// valueEqual extends loose parameter equality to nested instances.
func valueEqual(a, b any) bool {
	ia, aok := a.(*Instance)
	ib, bok := b.(*Instance)
	if aok || bok {
		return aok && bok && ia.Equal(ib)
	}

	return params.Equal(a, b)
}
