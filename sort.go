package coitrees

import "sort"

// sortSlice is a thin generic wrapper around sort.Slice, kept as its own
// function for the same reason the teacher package keeps a standalone
// Sort helper in interval.go: every sort in this package needs the same
// shape (less func over a slice index pair) and spelling it out inline
// at each call site would obscure which field is actually being sorted.
func sortSlice[T any](s []T, less func(a, b T) bool) {
	sort.Slice(s, func(i, j int) bool { return less(s[i], s[j]) })
}
