package seqbuf

// White-box bridge for seqbuf_test: exposes window bounds and the growth
// primitive without widening the production API.

// Bounds returns head, tail and the physical capacity.
func (b *Buffer[T]) Bounds() (head, tail, capacity int) {
	return b.head, b.tail, len(b.storage)
}

// Storage returns the whole leased array, slack included.
func (b *Buffer[T]) Storage() []T { return b.storage }

// ReserveHead runs the head-biased growth policy.
func (b *Buffer[T]) ReserveHead(n int) { b.reserve(biasHead, n) }

// ReserveTail runs the tail-biased growth policy.
func (b *Buffer[T]) ReserveTail(n int) { b.reserve(biasTail, n) }

// ReserveCenter runs the uniform growth policy.
func (b *Buffer[T]) ReserveCenter(n int) { b.reserve(biasCenter, n) }
