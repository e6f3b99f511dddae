// Package bitpack provides the small arithmetic and bit-stream helpers the
// binpack wire format is built on: zig-zag signed/unsigned mapping,
// nth-set-bit lookup, the minimum bit width needed to index a fixed-size
// set, and an MSB-first bit reader/writer with variable-length groups.
package bitpack

import "math/bits"

// ZigZagEncode maps a signed 16-bit score delta to an unsigned value so
// that small magnitudes (positive or negative) stay small: 0->0, -1->1,
// 1->2, -2->3, 2->4, ...
func ZigZagEncode(x int16) uint16 {
	return uint16(x<<1) ^ uint16(x>>15)
}

// ZigZagDecode is the exact inverse of ZigZagEncode.
func ZigZagDecode(u uint16) int16 {
	return int16(u>>1) ^ -int16(u&1)
}

// NthSetBitIndex returns the bit position of the n-th set bit of v
// (0-indexed, ascending by position). The result is undefined if v has
// fewer than n+1 set bits.
func NthSetBitIndex(v uint64, n int) int {
	for i := 0; i < n; i++ {
		v &= v - 1
	}
	return bits.TrailingZeros64(v)
}

// UsedBits returns the number of bits needed to encode an index into a
// set of n candidates (values 0..n-1). A set of 0 or 1 candidates needs
// no bits at all, since there is nothing to disambiguate.
func UsedBits(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}
