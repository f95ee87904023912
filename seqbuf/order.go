// SPDX-License-Identifier: MIT

package seqbuf

import "math/rand"

// Reverse reverses the elements between logical indices start and end, both
// inclusive. Fails with ErrOutOfRange unless 0 ≤ start ≤ end < Len().
func (b *Buffer[T]) Reverse(start, end int) error {
	if err := b.checkIndex(start); err != nil {
		return bufErrorf(methodReverse, err, start, end)
	}
	if err := b.checkIndex(end); err != nil || end < start {
		return bufErrorf(methodReverse, ErrOutOfRange, start, end)
	}
	s := b.storage[b.head+start : b.head+end+1]
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	b.touch()
	return nil
}

// Swap exchanges the elements at logical indices i and j.
func (b *Buffer[T]) Swap(i, j int) error {
	if b.checkIndex(i) != nil || b.checkIndex(j) != nil {
		return bufErrorf(methodSwap, ErrOutOfRange, i, j)
	}
	if i == j {
		return nil
	}
	s := b.storage[b.head:b.tail]
	s[i], s[j] = s[j], s[i]
	b.touch()
	return nil
}

// Shuffle permutes the content with a Fisher–Yates shuffle drawn from r.
// A nil r uses the buffer's configured RNG (WithSeed/WithRand), or the
// deterministic default seed when none was configured.
func (b *Buffer[T]) Shuffle(r *rand.Rand) *Buffer[T] {
	if r == nil {
		if b.rng == nil {
			b.rng = seededRand(0)
		}
		r = b.rng
	}
	permute(b.storage[b.head:b.tail], r)
	b.touch()
	return b
}

// Repeat appends count further copies of the current content. The source is
// read from the buffer after the single up-front reservation, so growth can
// never tear it. count == 0 is a no-op; negative counts and counts whose
// total length cannot be leased fail.
func (b *Buffer[T]) Repeat(count int) error {
	if count < 0 {
		return bufErrorf(methodRepeat, ErrOutOfRange, count)
	}
	n := b.Len()
	if count == 0 || n == 0 {
		return nil
	}
	if count > b.growthLimit()/n {
		return bufErrorf(methodRepeat, ErrOutOfRange, count)
	}
	b.reserve(biasTail, n*count)
	src := b.storage[b.head : b.head+n]
	for k := 0; k < count; k++ {
		copy(b.storage[b.tail:b.tail+n], src)
		b.tail += n
	}
	b.touch()
	return nil
}

// CopyOver copies count elements from logical index from to logical index to
// within the buffer. Ranges may overlap: the copy runs element by element in
// the direction that never reads an already overwritten slot.
func (b *Buffer[T]) CopyOver(from, to, count int) error {
	if b.checkRange(from, count) != nil || b.checkRange(to, count) != nil {
		return bufErrorf(methodCopyOver, ErrOutOfRange, from, to, count)
	}
	if count == 0 || from == to {
		return nil
	}
	s := b.storage[b.head:b.tail]
	if to < from {
		for i := 0; i < count; i++ {
			s[to+i] = s[from+i]
		}
	} else {
		for i := count - 1; i >= 0; i-- {
			s[to+i] = s[from+i]
		}
	}
	b.touch()
	return nil
}
