// Package maputil provides small helpers for working with string-keyed maps.
package maputil

import "slices"

// SortedKeys returns the keys of m in ascending order. The result is never
// nil, so callers can range over it or compare against an empty slice
// without a nil check.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
