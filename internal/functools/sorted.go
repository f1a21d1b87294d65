package functools

import (
	"cmp"
	"slices"
)

// SortedBy returns a copy of items stably ordered by key
func SortedBy[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	return sorted
}

// Reverse returns s spelled backwards, rune by rune
func Reverse(s string) string {
	runes := []rune(s)
	slices.Reverse(runes)
	return string(runes)
}

// Len returns the length of s in bytes. It exists so it can be passed as a key.
func Len(s string) int {
	return len(s)
}
