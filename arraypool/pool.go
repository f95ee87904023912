// SPDX-License-Identifier: MIT

package arraypool

import "math/bits"

// MaxTier is the largest pooled tier: arrays up to 1<<MaxTier elements are recycled,
// bigger ones are allocated on demand and left to the GC on Return.
const MaxTier = 24

// MaxLen is the largest power-of-two int. RoundUp(n) is only defined for n ≤ MaxLen.
const MaxLen = 1 << (bits.UintSize - 2)

const panicNegativeLen = "arraypool: Rent: negative length"

// Pool leases arrays of T.
//
// Rent returns an array whose length is RoundUp(minLen); Rent(0) returns nil.
// Return gives the array back. Arrays whose length is not a power of two,
// or that exceed the pool's largest tier, are silently dropped.
type Pool[T any] interface {
	Rent(minLen int) []T
	Return(arr []T)
}

// RoundUp returns the smallest power of two ≥ n. RoundUp(0) == 0.
// The result overflows for n > MaxLen.
//
// Complexity: O(1).
func RoundUp(n int) int {
	if n <= 0 {
		return 0
	}
	return 1 << bits.Len(uint(n-1))
}

// isTierSize reports whether n is a non-zero power of two.
func isTierSize(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// tierOf maps a power-of-two length to its tier index (1 -> 0, 2 -> 1, 4 -> 2, ...).
func tierOf(size int) int {
	return bits.TrailingZeros(uint(size))
}
