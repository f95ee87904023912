// SPDX-License-Identifier: MIT

package seqbuf

import (
	"unsafe"

	"github.com/AmidBits/Flux-sub032/arraypool"
)

// bias selects which side of the content window a reservation must free up.
type bias uint8

const (
	// biasCenter frees slack on BOTH sides (interior Insert).
	biasCenter bias = iota
	// biasHead frees slack before head (Prepend).
	biasHead
	// biasTail frees slack after tail (Append).
	biasTail
)

// reserve guarantees at least n free slots on the side(s) selected by side.
// It is a no-op when the slack already suffices.
//
// Policy per bias:
//   - biasTail:   reallocate to cap+RoundUp(n), keeping head where it is.
//   - biasHead:   re-center in place when free ≥ 2n, else reallocate to
//     cap+RoundUp(n) keeping the tail-side slack and adding the space before head.
//   - biasCenter: re-center in place when free ≥ 2n, else reallocate to
//     RoundUp(cap+2n) with the content centered.
//
// Reallocation returns the replaced array to the pool immediately after copying.
func (b *Buffer[T]) reserve(side bias, n int) {
	if n <= 0 {
		return
	}
	capacity := len(b.storage)
	length := b.tail - b.head
	free := capacity - length
	headRoom, tailRoom := b.head, capacity-b.tail

	switch side {
	case biasTail:
		if tailRoom >= n {
			return
		}
		head := b.head
		b.relocate(capacity+arraypool.RoundUp(n), func(int) int { return head })

	case biasHead:
		if headRoom >= n {
			return
		}
		if free >= 2*n {
			b.shift(free / 2)
			return
		}
		b.relocate(capacity+arraypool.RoundUp(n), func(newCap int) int {
			return newCap - tailRoom - length
		})

	default:
		if headRoom >= n && tailRoom >= n {
			return
		}
		if free >= 2*n {
			b.shift(free / 2)
			return
		}
		b.relocate(arraypool.RoundUp(capacity+2*n), func(newCap int) int {
			return (newCap - length) / 2
		})
	}
}

// shift moves the content window in place so it starts at newHead and zeroes
// the slots it no longer covers.
func (b *Buffer[T]) shift(newHead int) {
	length := b.tail - b.head
	if newHead == b.head {
		return
	}
	copy(b.storage[newHead:newHead+length], b.storage[b.head:b.tail])
	if newHead > b.head {
		clear(b.storage[b.head:min(newHead, b.tail)])
	} else {
		clear(b.storage[max(newHead+length, b.head):b.tail])
	}
	b.head, b.tail = newHead, newHead+length
}

// relocate leases an array of at least minCap elements, copies the content to
// the head offset chosen by place (given the leased length), and returns the
// old array to the pool.
func (b *Buffer[T]) relocate(minCap int, place func(newCap int) int) {
	fresh := b.pool.Rent(minCap)
	length := b.tail - b.head
	head := place(len(fresh))
	copy(fresh[head:head+length], b.storage[b.head:b.tail])

	old := b.storage
	b.storage, b.head, b.tail = fresh, head, head+length
	if old != nil {
		b.pool.Return(old)
	}
}

// overlaps reports whether vals shares memory with the leased array. Such
// input must be staged before any shift or relocation moves or clears it.
func (b *Buffer[T]) overlaps(vals []T) bool {
	if len(vals) == 0 || len(b.storage) == 0 {
		return false
	}
	size := unsafe.Sizeof(vals[0])
	if size == 0 {
		return false
	}
	lo := uintptr(unsafe.Pointer(unsafe.SliceData(b.storage)))
	hi := lo + uintptr(len(b.storage))*size
	p := uintptr(unsafe.Pointer(unsafe.SliceData(vals)))
	q := p + uintptr(len(vals))*size
	return p < hi && lo < q
}

// stage copies vals into scratch storage leased from the pool. The caller
// must hand the returned lease back with b.pool.Return once done.
func (b *Buffer[T]) stage(vals []T) (staged, lease []T) {
	lease = b.pool.Rent(len(vals))
	staged = lease[:len(vals)]
	copy(staged, vals)
	return staged, lease
}
