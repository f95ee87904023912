package arraypool_test

import (
	"sync"
	"testing"

	"github.com/AmidBits/Flux-sub032/arraypool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoundUp checks the power-of-two rounding table, including the zero case.
func TestRoundUp(t *testing.T) {
	cases := []struct{ in, want int }{
		{-3, 0}, {0, 0}, {1, 1}, {2, 2}, {3, 4}, {5, 8}, {8, 8}, {9, 16}, {1000, 1024}, {1 << 20, 1 << 20},
		{arraypool.MaxLen/2 + 1, arraypool.MaxLen}, {arraypool.MaxLen, arraypool.MaxLen},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, arraypool.RoundUp(c.in), "RoundUp(%d)", c.in)
	}
}

// TestTiered_RentShape verifies length rounding, zero-fill and the Rent(0) policy.
func TestTiered_RentShape(t *testing.T) {
	p := arraypool.NewTiered[int]()

	assert.Nil(t, p.Rent(0), "Rent(0) must return nil")

	arr := p.Rent(5)
	require.Len(t, arr, 8)
	for i := range arr {
		arr[i] = i + 1
	}
	p.Return(arr)

	// Whatever comes back (reused or fresh) must be zeroed.
	again := p.Rent(8)
	require.Len(t, again, 8)
	assert.Equal(t, make([]int, 8), again, "rented arrays must be zero-filled")
}

// TestTiered_NegativePanics ensures a negative length is treated as programmer error.
func TestTiered_NegativePanics(t *testing.T) {
	assert.Panics(t, func() { arraypool.NewTiered[byte]().Rent(-1) })
	assert.Panics(t, func() { arraypool.NewBucketed[byte]().Rent(-1) })
}

// TestShared_SingletonPerType checks that Shared hands out one pool per element type.
func TestShared_SingletonPerType(t *testing.T) {
	assert.Same(t, arraypool.Shared[string](), arraypool.Shared[string]())
	// rune is an alias of int32, so both names resolve to one pool.
	assert.Same(t, arraypool.Shared[rune](), arraypool.Shared[int32]())
}

// TestShared_Concurrent exercises the shared pool from several goroutines.
func TestShared_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			p := arraypool.Shared[uint64]()
			for i := 1; i < 200; i++ {
				arr := p.Rent(i + seed)
				arr[0] = uint64(i)
				p.Return(arr)
			}
		}(g)
	}
	wg.Wait()
}
