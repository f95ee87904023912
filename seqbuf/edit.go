// SPDX-License-Identifier: MIT

package seqbuf

import (
	"iter"
	"slices"
)

// Append adds v after the last element.
func (b *Buffer[T]) Append(v T) *Buffer[T] {
	b.reserve(biasTail, 1)
	b.storage[b.tail] = v
	b.tail++
	b.touch()
	return b
}

// AppendN adds count copies of v after the last element. count ≤ 0 is a no-op.
func (b *Buffer[T]) AppendN(v T, count int) *Buffer[T] {
	if count <= 0 {
		return b
	}
	b.reserve(biasTail, count)
	fill(b.storage[b.tail:b.tail+count], v)
	b.tail += count
	b.touch()
	return b
}

// AppendSlice adds vals, in order, after the last element.
// vals may alias the buffer's own content.
func (b *Buffer[T]) AppendSlice(vals ...T) *Buffer[T] {
	n := len(vals)
	if n == 0 {
		return b
	}
	if b.overlaps(vals) {
		staged, lease := b.stage(vals)
		defer b.pool.Return(lease)
		vals = staged
	}
	b.reserve(biasTail, n)
	copy(b.storage[b.tail:b.tail+n], vals)
	b.tail += n
	b.touch()
	return b
}

// AppendSeq adds every element produced by seq. A nil seq is a no-op.
func (b *Buffer[T]) AppendSeq(seq iter.Seq[T]) *Buffer[T] {
	if seq == nil {
		return b
	}
	for v := range seq {
		b.Append(v)
	}
	return b
}

// Prepend adds v before the first element.
func (b *Buffer[T]) Prepend(v T) *Buffer[T] {
	b.reserve(biasHead, 1)
	b.head--
	b.storage[b.head] = v
	b.touch()
	return b
}

// PrependN adds count copies of v before the first element. count ≤ 0 is a no-op.
func (b *Buffer[T]) PrependN(v T, count int) *Buffer[T] {
	if count <= 0 {
		return b
	}
	b.reserve(biasHead, count)
	b.head -= count
	fill(b.storage[b.head:b.head+count], v)
	b.touch()
	return b
}

// PrependSlice adds vals before the first element, keeping their order:
// prepending [a b] to [c] yields [a b c]. vals may alias the buffer's content.
func (b *Buffer[T]) PrependSlice(vals ...T) *Buffer[T] {
	n := len(vals)
	if n == 0 {
		return b
	}
	if b.overlaps(vals) {
		staged, lease := b.stage(vals)
		defer b.pool.Return(lease)
		vals = staged
	}
	b.reserve(biasHead, n)
	b.head -= n
	copy(b.storage[b.head:b.head+n], vals)
	b.touch()
	return b
}

// Insert places v at logical index at, shifting later elements right.
// Valid positions are 0..Len(); at == Len() appends.
func (b *Buffer[T]) Insert(at int, v T) error {
	return b.InsertN(at, v, 1)
}

// InsertN places count copies of v at logical index at.
func (b *Buffer[T]) InsertN(at int, v T, count int) error {
	if err := b.checkInsert(at); err != nil {
		return bufErrorf(methodInsert, err, at, count)
	}
	if count < 0 || b.checkGrowth(count) != nil {
		return bufErrorf(methodInsert, ErrOutOfRange, at, count)
	}
	if count == 0 {
		return nil
	}
	pos := b.openGap(at, count)
	fill(b.storage[pos:pos+count], v)
	b.touch()
	return nil
}

// InsertSlice places vals, in order, at logical index at.
// vals may alias the buffer's content.
func (b *Buffer[T]) InsertSlice(at int, vals ...T) error {
	if err := b.checkInsert(at); err != nil {
		return bufErrorf(methodInsert, err, at, len(vals))
	}
	n := len(vals)
	if n == 0 {
		return nil
	}
	if err := b.checkGrowth(n); err != nil {
		return bufErrorf(methodInsert, err, at, n)
	}
	if b.overlaps(vals) {
		staged, lease := b.stage(vals)
		defer b.pool.Return(lease)
		vals = staged
	}
	pos := b.openGap(at, n)
	copy(b.storage[pos:pos+n], vals)
	b.touch()
	return nil
}

// InsertSeq places every element produced by seq at logical index at.
func (b *Buffer[T]) InsertSeq(at int, seq iter.Seq[T]) error {
	if err := b.checkInsert(at); err != nil {
		return bufErrorf(methodInsert, err, at)
	}
	if seq == nil {
		return nil
	}
	return b.InsertSlice(at, slices.Collect(seq)...)
}

// openGap makes n uninitialized slots at logical index at and returns their
// physical start. It moves whichever side holds fewer elements, falls back to
// the side that already has slack, and grows with biasCenter only when
// neither side can absorb n slots.
func (b *Buffer[T]) openGap(at, n int) int {
	length := b.tail - b.head
	moveHead := at < length-at
	headFits := b.head >= n
	tailFits := len(b.storage)-b.tail >= n

	switch {
	case moveHead && !headFits && tailFits:
		moveHead = false
	case !moveHead && !tailFits && headFits:
		moveHead = true
	case !headFits && !tailFits:
		b.reserve(biasCenter, n)
	}

	if moveHead {
		copy(b.storage[b.head-n:b.head-n+at], b.storage[b.head:b.head+at])
		b.head -= n
	} else {
		copy(b.storage[b.head+at+n:b.tail+n], b.storage[b.head+at:b.tail])
		b.tail += n
	}
	return b.head + at
}

// Remove deletes count elements starting at logical index at. The shorter
// side is shifted inward and the vacated slots are zeroed.
func (b *Buffer[T]) Remove(at, count int) error {
	if err := b.checkRange(at, count); err != nil {
		return bufErrorf(methodRemove, err, at, count)
	}
	if count == 0 {
		return nil
	}
	length := b.tail - b.head
	if at < length-at-count {
		copy(b.storage[b.head+count:b.head+count+at], b.storage[b.head:b.head+at])
		clear(b.storage[b.head : b.head+count])
		b.head += count
	} else {
		copy(b.storage[b.head+at:b.tail-count], b.storage[b.head+at+count:b.tail])
		clear(b.storage[b.tail-count : b.tail])
		b.tail -= count
	}
	b.touch()
	return nil
}

// fill sets every element of s to v.
func fill[T any](s []T, v T) {
	for i := range s {
		s[i] = v
	}
}
