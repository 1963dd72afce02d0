package common

import (
	"cmp"
	"slices"
)

// SortedKeys returns the map's keys in ascending order, for
// deterministic iteration.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
