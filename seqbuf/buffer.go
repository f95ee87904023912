// SPDX-License-Identifier: MIT

package seqbuf

import (
	"fmt"
	"iter"
	"math/rand"
	"strings"

	"github.com/AmidBits/Flux-sub032/arraypool"
)

// DefaultCapacity is the initial capacity used when the final size is unknown.
const DefaultCapacity = 16

// Buffer is a growable double-ended sequence of T.
//
//   - storage is leased from pool and owned exclusively by the buffer.
//   - content is storage[head:tail]; 0 ≤ head ≤ tail ≤ len(storage) always holds.
//   - version increases on every mutation and invalidates outstanding Views.
//     Predicate edits that match nothing are not mutations.
type Buffer[T any] struct {
	pool    arraypool.Pool[T]
	rng     *rand.Rand // lazily defaulted by Shuffle(nil)
	storage []T
	head    int
	tail    int
	version uint64
}

var _ fmt.Stringer = (*Buffer[rune])(nil)

// New returns an empty buffer with capacity rounded up to a power of two and
// the content window centered, leaving equal slack for Prepend and Append.
// A negative capacity is treated as zero.
func New[T any](capacity int, opts ...Option[T]) *Buffer[T] {
	cfg := newConfig(opts...)
	if capacity < 0 {
		capacity = 0
	}
	b := &Buffer[T]{pool: cfg.pool, rng: cfg.rng}
	b.storage = b.pool.Rent(arraypool.RoundUp(capacity))
	b.head = len(b.storage) / 2
	b.tail = b.head
	return b
}

// FromValue returns a buffer holding the single element v.
func FromValue[T any](v T, opts ...Option[T]) *Buffer[T] {
	return New(1, opts...).Append(v)
}

// FromSlice returns a buffer holding a copy of vals.
// Capacity is sized so that vals fits in the tail half without growing.
func FromSlice[T any](vals []T, opts ...Option[T]) *Buffer[T] {
	return New(2*len(vals), opts...).AppendSlice(vals...)
}

// FromSeq returns a buffer holding every element produced by seq.
func FromSeq[T any](seq iter.Seq[T], opts ...Option[T]) *Buffer[T] {
	return New(DefaultCapacity, opts...).AppendSeq(seq)
}

// Len returns the number of elements in the content window.
func (b *Buffer[T]) Len() int { return b.tail - b.head }

// Cap returns the physical capacity of the leased array.
func (b *Buffer[T]) Cap() int { return len(b.storage) }

// Version returns the mutation counter. It changes on every call that alters
// the content; predicate edits that match nothing leave it alone.
func (b *Buffer[T]) Version() uint64 { return b.version }

// touch records a mutation.
func (b *Buffer[T]) touch() { b.version++ }

// Slice returns the live content window storage[head:tail].
// The result's capacity is clipped, so appending to it never writes into the
// buffer's slack. It is invalidated by the next mutating call.
func (b *Buffer[T]) Slice() []T {
	return b.storage[b.head:b.tail:b.tail]
}

// At returns the element at logical index i.
func (b *Buffer[T]) At(i int) (T, error) {
	if err := b.checkIndex(i); err != nil {
		var zero T
		return zero, bufErrorf(methodAt, err, i)
	}
	return b.storage[b.head+i], nil
}

// Set overwrites the element at logical index i.
func (b *Buffer[T]) Set(i int, v T) error {
	if err := b.checkIndex(i); err != nil {
		return bufErrorf(methodSet, err, i)
	}
	b.storage[b.head+i] = v
	b.touch()
	return nil
}

// Clear removes all elements, keeping the leased array and re-centering the window.
func (b *Buffer[T]) Clear() *Buffer[T] {
	clear(b.storage[b.head:b.tail])
	b.head = len(b.storage) / 2
	b.tail = b.head
	b.touch()
	return b
}

// Clone returns an independent buffer with the same content, leased from the same pool.
// The clone gets its own default RNG; RNGs are never shared.
func (b *Buffer[T]) Clone() *Buffer[T] {
	return FromSlice(b.Slice(), WithPool(b.pool))
}

// Release returns the leased array to the pool and leaves b empty with zero
// capacity. The buffer stays usable: the next growth leases a new array.
// Calling Release more than once is harmless.
func (b *Buffer[T]) Release() {
	if b.storage != nil {
		b.pool.Return(b.storage)
	}
	b.storage = nil
	b.head, b.tail = 0, 0
	b.touch()
}

// String renders the content. Rune, byte and string elements are
// concatenated as text; any other element type is formatted with fmt.
func (b *Buffer[T]) String() string {
	return render(b.storage[b.head:b.tail])
}

// StringRange renders count elements starting at logical index start.
func (b *Buffer[T]) StringRange(start, count int) (string, error) {
	if err := b.checkRange(start, count); err != nil {
		return "", bufErrorf(methodString, err, start, count)
	}
	return render(b.storage[b.head+start : b.head+start+count]), nil
}

// render formats s as text for character-like element types.
func render[T any](s []T) string {
	switch v := any(s).(type) {
	case []rune:
		return string(v)
	case []byte:
		return string(v)
	case []string:
		return strings.Join(v, "")
	default:
		return fmt.Sprint(s)
	}
}
