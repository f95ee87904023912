// SPDX-License-Identifier: MIT
// Package: seqbuf
//
// options.go: functional options for Buffer construction.
//
// Contract (strict):
//   • Options are functional (type Option[T] func(*config[T])).
//   • Option constructors VALIDATE and PANIC on meaningless inputs; buffer
//     methods themselves never panic on user-triggered conditions.
//   • Determinism is explicit: Shuffle(nil) draws from the configured RNG,
//     which is seeded by WithSeed / WithRand or by the fixed default seed.
//
// Deterministic defaults:
//   • pool = arraypool.Shared[T]()
//   • rng  = seededRand(0)  (lazily, on first Shuffle(nil))

package seqbuf

import (
	"math/rand"

	"github.com/AmidBits/Flux-sub032/arraypool"
)

// Option customizes a Buffer at construction time.
type Option[T any] func(*config[T])

// config is the resolved construction state of a Buffer.
type config[T any] struct {
	pool arraypool.Pool[T]
	rng  *rand.Rand
}

// WithPool injects the array pool the buffer leases storage from.
// Panics on nil.
func WithPool[T any](p arraypool.Pool[T]) Option[T] {
	if p == nil {
		panic("seqbuf: WithPool(nil)")
	}
	return func(c *config[T]) { c.pool = p }
}

// WithRand sets the RNG used by Shuffle(nil). Panics on nil.
// The buffer takes the RNG over; do not share it across goroutines.
func WithRand[T any](r *rand.Rand) Option[T] {
	if r == nil {
		panic("seqbuf: WithRand(nil)")
	}
	return func(c *config[T]) { c.rng = r }
}

// WithSeed seeds the RNG used by Shuffle(nil). Seed 0 selects the default seed.
func WithSeed[T any](seed int64) Option[T] {
	return func(c *config[T]) { c.rng = seededRand(seed) }
}

// newConfig applies opts in order over the defaults (last wins).
func newConfig[T any](opts ...Option[T]) config[T] {
	var cfg config[T]
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.pool == nil {
		cfg.pool = arraypool.Shared[T]()
	}
	return cfg
}
