package seqbuf_test

import (
	"slices"
	"testing"

	"github.com/AmidBits/Flux-sub032/arraypool"
	"github.com/AmidBits/Flux-sub032/seqbuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_CentersWindow verifies power-of-two rounding and the centered window.
func TestNew_CentersWindow(t *testing.T) {
	b := seqbuf.New[int](10, seqbuf.WithPool[int](arraypool.NewBucketed[int]()))
	head, tail, capacity := b.Bounds()
	assert.Equal(t, 16, capacity)
	assert.Equal(t, 8, head)
	assert.Equal(t, 8, tail)
	assert.Zero(t, b.Len())
}

// TestNew_ZeroAndNegativeCapacity checks that empty buffers still grow on demand.
func TestNew_ZeroAndNegativeCapacity(t *testing.T) {
	for _, c := range []int{0, -5} {
		b := seqbuf.New[int](c)
		assert.Zero(t, b.Cap())
		b.Append(1).Prepend(0)
		requireWindow(t, b)
		assert.Equal(t, []int{0, 1}, b.Slice())
	}
}

// TestConstructors covers the single-value, slice and sequence entry points.
func TestConstructors(t *testing.T) {
	assert.Equal(t, []string{"x"}, seqbuf.FromValue("x").Slice())

	src := []int{3, 1, 4, 1, 5}
	fromSlice := seqbuf.FromSlice(src)
	assert.Equal(t, src, fromSlice.Slice())
	_, tail, capacity := fromSlice.Bounds()
	assert.LessOrEqual(t, tail, capacity, "FromSlice must not need to grow")

	src[0] = 99
	assert.Equal(t, 3, fromSlice.Slice()[0], "FromSlice copies its input")

	fromSeq := seqbuf.FromSeq(slices.Values([]int{9, 8, 7}))
	assert.Equal(t, []int{9, 8, 7}, fromSeq.Slice())
	assert.Zero(t, seqbuf.FromSeq[int](nil).Len())
}

// TestAppend_RoundTrip checks that the view equals the concatenation of everything appended.
func TestAppend_RoundTrip(t *testing.T) {
	b := seqbuf.New[int](1)
	var want []int
	for i := 0; i < 200; i++ {
		switch i % 3 {
		case 0:
			b.Append(i)
			want = append(want, i)
		case 1:
			b.AppendSlice(i, i+1, i+2)
			want = append(want, i, i+1, i+2)
		default:
			b.AppendN(-i, 2)
			want = append(want, -i, -i)
		}
		requireWindow(t, b)
	}
	assert.Equal(t, want, b.Slice())
}

// TestPrepend_Order verifies that prepended slices keep their internal order.
func TestPrepend_Order(t *testing.T) {
	b := runes(t, "c")
	b.PrependSlice('a', 'b').Prepend('_').PrependN('>', 2)
	requireWindow(t, b)
	assert.Equal(t, ">>_abc", b.String())
}

// TestAtSet covers the checked element accessors.
func TestAtSet(t *testing.T) {
	b := seqbuf.FromSlice([]int{10, 20, 30})

	v, err := b.At(1)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	_, err = b.At(3)
	assert.ErrorIs(t, err, seqbuf.ErrOutOfRange)
	_, err = b.At(-1)
	assert.ErrorIs(t, err, seqbuf.ErrOutOfRange)

	before := b.Version()
	require.NoError(t, b.Set(2, 33))
	assert.Equal(t, []int{10, 20, 33}, b.Slice())
	assert.Greater(t, b.Version(), before, "Set is a mutation")

	assert.ErrorIs(t, b.Set(3, 0), seqbuf.ErrOutOfRange)
}

// TestClearAndClone checks that Clear keeps capacity and Clone is independent.
func TestClearAndClone(t *testing.T) {
	b := seqbuf.FromSlice([]int{1, 2, 3})
	c := b.Clone()
	capacity := b.Cap()

	b.Clear()
	requireWindow(t, b)
	assert.Zero(t, b.Len())
	assert.Equal(t, capacity, b.Cap(), "Clear keeps the leased array")
	assert.Equal(t, []int{1, 2, 3}, c.Slice(), "Clone must not share storage")
}

// TestRelease_BalancesPool verifies every lease is paid back after growth and Release.
func TestRelease_BalancesPool(t *testing.T) {
	pool := arraypool.NewBucketed[int]()
	b := seqbuf.New[int](2, seqbuf.WithPool[int](pool))
	for i := 0; i < 100; i++ {
		b.Append(i)
		b.Prepend(-i)
		require.NoError(t, b.Insert(b.Len()/2, i))
	}
	assert.Equal(t, int64(1), pool.Stats().InUse, "exactly the live array is leased")

	b.Release()
	assert.Zero(t, pool.Stats().InUse, "Release returns the final array")
	assert.Zero(t, b.Cap())

	b.Release() // idempotent
	assert.Zero(t, pool.Stats().InUse)

	b.Append(7) // released buffers re-lease on demand
	assert.Equal(t, []int{7}, b.Slice())
	assert.Equal(t, int64(1), pool.Stats().InUse)
}

// TestString renders character-like and generic element types.
func TestString(t *testing.T) {
	assert.Equal(t, "héllo", runes(t, "héllo").String())
	assert.Equal(t, "abc", seqbuf.FromSlice([]byte("abc")).String())
	assert.Equal(t, "foobar", seqbuf.FromSlice([]string{"foo", "bar"}).String())
	assert.Equal(t, "[1 2 3]", seqbuf.FromSlice([]int{1, 2, 3}).String())
}

// TestStringRange checks sub-range rendering and its bounds.
func TestStringRange(t *testing.T) {
	b := runes(t, "sequence")

	s, err := b.StringRange(2, 4)
	require.NoError(t, err)
	assert.Equal(t, "quen", s)

	s, err = b.StringRange(8, 0)
	require.NoError(t, err)
	assert.Empty(t, s)

	_, err = b.StringRange(5, 4)
	assert.ErrorIs(t, err, seqbuf.ErrOutOfRange)
}

// TestOptions_Panics ensures option constructors reject nil collaborators.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { seqbuf.WithPool[int](nil) })
	assert.Panics(t, func() { seqbuf.WithRand[int](nil) })
}
