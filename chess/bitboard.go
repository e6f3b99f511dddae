package chess

import "math/bits"

// popcnt counts the number of set bits in v.
func popcnt(v uint64) int {
	return bits.OnesCount64(v)
}

// trailingZeros returns the index of the least significant set bit of v.
// The result is undefined for v == 0.
func trailingZeros(v uint64) int {
	return bits.TrailingZeros64(v)
}
