// SPDX-License-Identifier: MIT
// Package: arraypool
//
// options.go: functional options for Bucketed pools.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless values.
//   • Options apply in order over deterministic defaults (last wins).

package arraypool

// Defaults for NewBucketed.
const (
	// DefaultMaxPerBucket bounds how many idle arrays a single tier retains.
	DefaultMaxPerBucket = 32

	// DefaultMaxTier is the largest tier a Bucketed pool recycles.
	DefaultMaxTier = MaxTier
)

const (
	panicMaxPerBucket = "arraypool: WithMaxPerBucket(n<1)"
	panicMaxTier      = "arraypool: WithMaxTier(k out of [0,MaxTier])"
)

// Option customizes a Bucketed pool.
type Option func(*bucketConfig)

// bucketConfig is the resolved configuration of a Bucketed pool.
type bucketConfig struct {
	maxPerBucket int // > 0
	maxTier      int // 0..MaxTier
}

// WithMaxPerBucket caps the number of idle arrays kept per tier.
// Arrays returned to a full tier are dropped and counted in Stats.Dropped.
// Panics if n < 1.
func WithMaxPerBucket(n int) Option {
	if n < 1 {
		panic(panicMaxPerBucket)
	}
	return func(c *bucketConfig) { c.maxPerBucket = n }
}

// WithMaxTier sets the largest recycled tier (arrays of 1<<k elements).
// Larger rents are allocated exactly and dropped on return.
// Panics if k is outside [0, MaxTier].
func WithMaxTier(k int) Option {
	if k < 0 || k > MaxTier {
		panic(panicMaxTier)
	}
	return func(c *bucketConfig) { c.maxTier = k }
}

// newBucketConfig applies opts over the defaults.
func newBucketConfig(opts ...Option) bucketConfig {
	cfg := bucketConfig{
		maxPerBucket: DefaultMaxPerBucket,
		maxTier:      DefaultMaxTier,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
