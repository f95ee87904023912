// SPDX-License-Identifier: MIT

package seqbuf

import "math/rand"

// fallbackSeed stands in for seed 0, so Shuffle(nil) on an unconfigured
// buffer gives the same order on every run.
const fallbackSeed int64 = 1

// seededRand builds the RNG behind WithSeed and the lazy Shuffle(nil) default.
func seededRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = fallbackSeed
	}
	return rand.New(rand.NewSource(seed))
}

// permute walks s backwards, swapping each slot with a random one at or
// below it.
func permute[T any](s []T, r *rand.Rand) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
