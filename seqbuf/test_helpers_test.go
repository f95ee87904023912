// Package seqbuf_test contains shared fixtures for Buffer tests.
package seqbuf_test

import (
	"testing"

	"github.com/AmidBits/Flux-sub032/arraypool"
	"github.com/AmidBits/Flux-sub032/seqbuf"
	"github.com/stretchr/testify/require"
)

// seedDet is the fixed seed used by every randomized test.
const seedDet int64 = 20240613

// runes builds a rune buffer from s on a private bucketed pool, so capacities
// and reuse are deterministic.
func runes(t *testing.T, s string) *seqbuf.Buffer[rune] {
	t.Helper()
	return seqbuf.FromSlice([]rune(s), seqbuf.WithPool[rune](arraypool.NewBucketed[rune]()))
}

// requireWindow fails the test unless 0 ≤ head ≤ tail ≤ capacity and Len
// agrees with the window.
func requireWindow[T any](t *testing.T, b *seqbuf.Buffer[T]) {
	t.Helper()
	head, tail, capacity := b.Bounds()
	require.GreaterOrEqual(t, head, 0, "head must be non-negative")
	require.LessOrEqual(t, head, tail, "head must not pass tail")
	require.LessOrEqual(t, tail, capacity, "tail must stay within capacity")
	require.Equal(t, tail-head, b.Len(), "Len must equal tail-head")
	require.Equal(t, capacity, b.Cap())
}
