package bitutil

import "golang.org/x/exp/constraints"

// Clamp restricts v to the closed range [lo, hi].
func Clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
