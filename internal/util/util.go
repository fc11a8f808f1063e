// Package util contains small generic helpers used across the Minnow server.
package util

import "sort"

// SortBy returns a copy of items sorted with the given less function. The
// original slice is not modified.
func SortBy[T any](items []T, less func(l, r T) bool) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	sort.Slice(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	return sorted
}
