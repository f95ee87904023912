// SPDX-License-Identifier: MIT

package dtw

import "math"

// Unlimited disables the Sakoe–Chiba band.
const Unlimited = -1

// Option customizes a DTW run.
type Option func(*config)

// config is the resolved run configuration.
type config struct {
	window   int
	penalty  float64
	mode     MemoryMode
	wantPath bool
}

// WithWindow bounds alignments to |i-j| ≤ w. Unlimited (-1) removes the
// bound; 0 allows the diagonal only. The band is never widened to the length
// difference, so a too-narrow window yields an infinite distance.
func WithWindow(w int) Option {
	return func(c *config) { c.window = w }
}

// WithSlopePenalty adds p to every insertion or deletion step.
func WithSlopePenalty(p float64) Option {
	return func(c *config) { c.penalty = p }
}

// WithMemoryMode selects how the cost table is stored.
func WithMemoryMode(m MemoryMode) Option {
	return func(c *config) { c.mode = m }
}

// WithPath requests the optimal alignment path. Needs FullMatrix.
func WithPath() Option {
	return func(c *config) { c.wantPath = true }
}

// newConfig applies opts over the defaults: unlimited window, no penalty,
// FullMatrix, no path.
func newConfig(opts ...Option) config {
	cfg := config{window: Unlimited, mode: FullMatrix}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// validate reports the first invalid setting.
func (c config) validate() error {
	switch {
	case c.window < Unlimited:
		return ErrBadInput
	case c.penalty < 0 || math.IsNaN(c.penalty):
		return ErrBadInput
	case c.mode < FullMatrix || c.mode > NoMemory:
		return ErrBadInput
	case c.wantPath && c.mode != FullMatrix:
		return ErrPathNeedsMatrix
	}
	return nil
}
