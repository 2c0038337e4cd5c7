// Package conv provides checked narrowing conversions between the int
// indices Go slices use and the uint32 ids the automaton stores.
//
// The checks guard against silent truncation; a failure means an index
// escaped the state-count limits enforced at construction time, so the
// helpers panic rather than return an error.
package conv

import "math"

// IntToUint32 converts an int to uint32, panicking when the value is
// negative or exceeds math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Compare as uint so the bound works on 32-bit platforms, where int
	// cannot hold math.MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}

// Uint32ToInt converts a uint32 to int, panicking when the value does not
// fit. That is only possible on 32-bit platforms.
//
//go:inline
func Uint32ToInt(n uint32) int {
	if uint64(n) > uint64(math.MaxInt) {
		panic("integer overflow: uint32 value out of int range")
	}
	return int(n)
}
