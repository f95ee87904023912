package seqbuf_test

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/AmidBits/Flux-sub032/arraypool"
	"github.com/AmidBits/Flux-sub032/pattern"
	"github.com/AmidBits/Flux-sub032/seqbuf"
)

// ExampleBuffer_PadEven centers a value inside a fixed width.
func ExampleBuffer_PadEven() {
	b := seqbuf.FromSlice([]rune("101"))
	fmt.Println(b.PadEven(10, '-', '-', false))
	// Output: ---101----
}

// ExampleBuffer_NormalizeAll cleans whitespace runs, then searches the result.
func ExampleBuffer_NormalizeAll() {
	b := seqbuf.FromSlice([]rune("  to  be or\tnot  to be "))
	_ = b.NormalizeAll(' ', unicode.IsSpace)

	fmt.Printf("%q\n", b.String())
	fmt.Println(pattern.IndexAll(b.Slice(), []rune("be")))
	// Output:
	// "to be or not to be"
	// [3 16]
}

// ExampleBuffer_Release pairs every lease with a return on an observable pool.
func ExampleBuffer_Release() {
	pool := arraypool.NewBucketed[int]()
	b := seqbuf.New[int](4, seqbuf.WithPool[int](pool))
	for i := 0; i < 100; i++ {
		b.Append(i)
	}
	fmt.Println("in use before release:", pool.Stats().InUse)
	b.Release()
	fmt.Println("in use after release:", pool.Stats().InUse)
	// Output:
	// in use before release: 1
	// in use after release: 0
}

// ExampleView shows how a borrowed view detects a later mutation.
func ExampleView() {
	b := seqbuf.FromSlice([]int{1, 2, 3})
	v := b.View()
	b.Append(4)

	_, err := v.Slice()
	fmt.Println(errors.Is(err, seqbuf.ErrStaleView))
	// Output: true
}
