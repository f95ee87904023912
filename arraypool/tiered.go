// SPDX-License-Identifier: MIT

package arraypool

import (
	"reflect"
	"sync"
)

// Tiered is a lock-free Pool backed by one sync.Pool per power-of-two tier.
// Pooled arrays may be reclaimed by the GC at any time, so Tiered never
// guarantees reuse; it only makes reuse likely in steady state.
type Tiered[T any] struct {
	tiers [MaxTier + 1]sync.Pool
}

var _ Pool[int] = (*Tiered[int])(nil)

// NewTiered returns an empty Tiered pool.
func NewTiered[T any]() *Tiered[T] {
	return &Tiered[T]{}
}

// shared holds one *Tiered[T] per element type.
var shared sync.Map // reflect.Type -> *Tiered[T]

// Shared returns the process-wide Tiered pool for T.
// It is the default collaborator for containers that were not given a pool.
func Shared[T any]() *Tiered[T] {
	key := reflect.TypeFor[T]()
	if p, ok := shared.Load(key); ok {
		return p.(*Tiered[T])
	}
	p, _ := shared.LoadOrStore(key, NewTiered[T]())
	return p.(*Tiered[T])
}

// Rent returns a zero-filled array of RoundUp(minLen) elements.
// Panics if minLen < 0.
func (p *Tiered[T]) Rent(minLen int) []T {
	if minLen < 0 {
		panic(panicNegativeLen)
	}
	size := RoundUp(minLen)
	if size == 0 {
		return nil
	}
	t := tierOf(size)
	if t > MaxTier {
		return make([]T, size)
	}
	if v := p.tiers[t].Get(); v != nil {
		return *(v.(*[]T))
	}
	return make([]T, size)
}

// Return clears arr and stores it in its tier.
func (p *Tiered[T]) Return(arr []T) {
	n := len(arr)
	if !isTierSize(n) || tierOf(n) > MaxTier {
		return
	}
	// Clear so pooled arrays never pin values the caller has dropped.
	clear(arr)
	p.tiers[tierOf(n)].Put(&arr)
}
