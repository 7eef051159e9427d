package dfa

import "slices"

// grow extends s with zero values until it holds size elements.
func grow[T any](s []T, size int) []T {
	n := len(s)
	if n >= size {
		return s
	}
	s = slices.Grow(s, size-n)[:size]
	// the spare capacity may hold values from before a truncation
	clear(s[n:])
	return s
}
