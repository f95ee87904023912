// SPDX-License-Identifier: MIT

package seqbuf

// View is a read-only borrow of a Buffer's content window.
//
// It remembers the buffer version it was taken at; once the buffer mutates,
// every accessor reports ErrStaleView instead of reading memory that may have
// been shifted, reallocated or returned to the pool. The zero View is stale.
type View[T any] struct {
	buf     *Buffer[T]
	version uint64
}

// View borrows the current content window.
func (b *Buffer[T]) View() View[T] {
	return View[T]{buf: b, version: b.version}
}

// Valid reports whether the borrowed buffer is unchanged since the view was taken.
func (v View[T]) Valid() bool {
	return v.buf != nil && v.buf.version == v.version
}

// Len returns the length of the borrowed window, or 0 for a stale view.
func (v View[T]) Len() int {
	if !v.Valid() {
		return 0
	}
	return v.buf.Len()
}

// At returns the element at logical index i.
func (v View[T]) At(i int) (T, error) {
	if !v.Valid() {
		var zero T
		return zero, ErrStaleView
	}
	return v.buf.At(i)
}

// Slice returns the borrowed window with clipped capacity. The slice itself is
// unchecked: do not keep it past the next mutation of the buffer.
func (v View[T]) Slice() ([]T, error) {
	if !v.Valid() {
		return nil, ErrStaleView
	}
	return v.buf.Slice(), nil
}

// String renders the borrowed window, or "" for a stale view.
func (v View[T]) String() string {
	if !v.Valid() {
		return ""
	}
	return v.buf.String()
}
