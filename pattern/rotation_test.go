package pattern_test

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/AmidBits/Flux-sub032/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteMinRotation returns the smallest index of the least rotation.
func bruteMinRotation[T cmp.Ordered](s []T) int {
	best := 0
	for k := 1; k < len(s); k++ {
		if slices.Compare(pattern.Rotate(s, k), pattern.Rotate(s, best)) < 0 {
			best = k
		}
	}
	return best
}

// TestMinimalRotation_Known checks the classical samples.
func TestMinimalRotation_Known(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"bbaaccaadd", 2},
		{"GEEKSQUIZ", 1},
		{"a", 0},
		{"aaaa", 0},
		{"abab", 0},
		{"cba", 2},
	}
	for _, c := range cases {
		got, err := pattern.MinimalRotation([]rune(c.in))
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "MinimalRotation(%q)", c.in)
	}
}

// TestMinimalRotation_Empty reports the shape error.
func TestMinimalRotation_Empty(t *testing.T) {
	_, err := pattern.MinimalRotation([]int{})
	assert.ErrorIs(t, err, pattern.ErrEmptySequence)
}

// TestMinimalRotation_AgainstBrute checks minimality and least index on random input.
func TestMinimalRotation_AgainstBrute(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for round := 0; round < 2000; round++ {
		s := randomRunes(rng, rng.Intn(12)+1, "abc")
		got, err := pattern.MinimalRotation(s)
		require.NoError(t, err)
		assert.Equal(t, bruteMinRotation(s), got, "MinimalRotation(%q)", string(s))
	}
}

// TestMinimalRotationFunc orders by a custom comparison (reverse order).
func TestMinimalRotationFunc(t *testing.T) {
	desc := func(a, b int) int { return cmp.Compare(b, a) }
	got, err := pattern.MinimalRotationFunc([]int{1, 3, 2}, desc)
	require.NoError(t, err)
	assert.Equal(t, 1, got, "largest-first rotation starts at 3")

	_, err = pattern.MinimalRotationFunc([]int{1, 2}, nil)
	assert.ErrorIs(t, err, pattern.ErrNilFunc)
}

// TestRotate covers positive, negative and oversized shifts.
func TestRotate(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{3, 4, 5, 1, 2}, pattern.Rotate(s, 2))
	assert.Equal(t, []int{5, 1, 2, 3, 4}, pattern.Rotate(s, -1))
	assert.Equal(t, []int{2, 3, 4, 5, 1}, pattern.Rotate(s, 11))
	assert.Equal(t, s, pattern.Rotate(s, 0))
	assert.Empty(t, pattern.Rotate([]int{}, 3))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s, "input untouched")
}
