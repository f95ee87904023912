// SPDX-License-Identifier: MIT

package arraypool

import (
	"sync"

	"github.com/eapache/queue"
)

// Stats is a snapshot of Bucketed pool counters.
//
//   - Rented   : successful Rent calls that returned a non-nil array.
//   - Allocated: rents that had to allocate because the tier was empty.
//   - Returned : Return calls with a non-empty array (kept or dropped).
//   - Dropped  : returned arrays that were not retained (full tier, odd size, too large).
//   - InUse    : Rented - Returned; zero when every lease has been paid back.
type Stats struct {
	Rented    int64
	Allocated int64
	Returned  int64
	Dropped   int64
	InUse     int64
}

// Bucketed is a bounded Pool with one FIFO free list per power-of-two tier.
// Unlike Tiered it never loses arrays to the GC, which makes reuse and
// lease/return balance observable through Stats.
type Bucketed[T any] struct {
	mu      sync.Mutex
	cfg     bucketConfig
	buckets []*queue.Queue // index = tier; elements are []T
	stats   Stats
}

var _ Pool[int] = (*Bucketed[int])(nil)

// NewBucketed returns an empty Bucketed pool configured by opts.
func NewBucketed[T any](opts ...Option) *Bucketed[T] {
	cfg := newBucketConfig(opts...)
	buckets := make([]*queue.Queue, cfg.maxTier+1)
	for i := range buckets {
		buckets[i] = queue.New()
	}
	return &Bucketed[T]{cfg: cfg, buckets: buckets}
}

// Rent returns a zero-filled array of RoundUp(minLen) elements, reusing the
// oldest idle array of that tier when one exists. Panics if minLen < 0.
func (p *Bucketed[T]) Rent(minLen int) []T {
	if minLen < 0 {
		panic(panicNegativeLen)
	}
	size := RoundUp(minLen)
	if size == 0 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stats.Rented++
	t := tierOf(size)
	if t <= p.cfg.maxTier && p.buckets[t].Length() > 0 {
		return p.buckets[t].Remove().([]T)
	}
	p.stats.Allocated++
	return make([]T, size)
}

// Return clears arr and queues it for reuse, or drops it when its tier is
// full, its length is not a tier size, or it exceeds the configured max tier.
func (p *Bucketed[T]) Return(arr []T) {
	n := len(arr)
	if n == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stats.Returned++
	if !isTierSize(n) || tierOf(n) > p.cfg.maxTier {
		p.stats.Dropped++
		return
	}
	b := p.buckets[tierOf(n)]
	if b.Length() >= p.cfg.maxPerBucket {
		p.stats.Dropped++
		return
	}
	clear(arr)
	b.Add(arr)
}

// Idle reports how many arrays of exactly size elements are waiting for reuse.
func (p *Bucketed[T]) Idle(size int) int {
	if !isTierSize(size) {
		return 0
	}
	t := tierOf(size)

	p.mu.Lock()
	defer p.mu.Unlock()

	if t > p.cfg.maxTier {
		return 0
	}
	return p.buckets[t].Length()
}

// Stats returns a consistent snapshot of the pool counters.
func (p *Bucketed[T]) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.stats
	s.InUse = s.Rented - s.Returned
	return s
}
