// SPDX-License-Identifier: MIT

package seqbuf

import "github.com/AmidBits/Flux-sub032/arraypool"

// checkIndex validates 0 ≤ i < Len().
func (b *Buffer[T]) checkIndex(i int) error {
	if i < 0 || i >= b.Len() {
		return ErrOutOfRange
	}
	return nil
}

// checkInsert validates an insertion point 0 ≤ at ≤ Len().
func (b *Buffer[T]) checkInsert(at int) error {
	if at < 0 || at > b.Len() {
		return ErrOutOfRange
	}
	return nil
}

// checkRange validates that [start, start+count) lies inside the window.
// Written as start > Len()-count to stay overflow-free.
func (b *Buffer[T]) checkRange(start, count int) error {
	if start < 0 || count < 0 || start > b.Len()-count {
		return ErrOutOfRange
	}
	return nil
}

// growthLimit is the largest n any reserve bias can satisfy while its
// capacity arithmetic, RoundUp included, stays within arraypool.MaxLen.
func (b *Buffer[T]) growthLimit() int {
	return (arraypool.MaxLen - len(b.storage)) / 2
}

// checkGrowth validates that n more elements can be reserved.
func (b *Buffer[T]) checkGrowth(n int) error {
	if n > b.growthLimit() {
		return ErrOutOfRange
	}
	return nil
}
