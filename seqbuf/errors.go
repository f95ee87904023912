// SPDX-License-Identifier: MIT
// Package: seqbuf
//
// errors.go: sentinel errors for the seqbuf package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Every check runs BEFORE the buffer is touched: a failed call leaves
//     content, head/tail and version exactly as they were.
//   • Methods attach context with bufErrorf; the sentinel survives via %w.

package seqbuf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNilFunc indicates that a required predicate, selector or comparer is nil.
	ErrNilFunc = errors.New("seqbuf: nil function argument")

	// ErrOutOfRange indicates an index, count or range outside the content window.
	ErrOutOfRange = errors.New("seqbuf: index out of range")

	// ErrStaleView indicates a View was used after the buffer it borrows from was mutated.
	ErrStaleView = errors.New("seqbuf: view invalidated by mutation")
)

// Method tags used in error context.
const (
	methodInsert    = "Insert"
	methodRemove    = "Remove"
	methodRemoveAll = "RemoveAll"
	methodReplace   = "ReplaceAll"
	methodNormalize = "Normalize"
	methodReverse   = "Reverse"
	methodSwap      = "Swap"
	methodRepeat    = "Repeat"
	methodCopyOver  = "CopyOver"
	methodAt        = "At"
	methodSet       = "Set"
	methodString    = "StringRange"
)

// bufErrorf wraps err as "Buffer.<method>(a,b,...): err".
func bufErrorf(method string, err error, args ...int) error {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = strconv.Itoa(a)
	}
	return fmt.Errorf("Buffer.%s(%s): %w", method, strings.Join(parts, ","), err)
}
