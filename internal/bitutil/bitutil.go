// Package bitutil holds small bit-manipulation helpers shared by bitgrid's
// word-generic grids. Kept separate from bitgrid so the popcount/mask
// helpers can be unit tested independently of any grid semantics.
package bitutil

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// PopCount returns the number of set bits in v.
func PopCount[T constraints.Unsigned](v T) int {
	return bits.OnesCount64(uint64(v))
}

// Mask returns a value with the low n bits set (n must be <= 64).
func Mask[T constraints.Unsigned](n int) T {
	if n <= 0 {
		return 0
	}
	if n >= 64 {
		return ^T(0)
	}
	return T(uint64(1)<<uint(n) - 1)
}
