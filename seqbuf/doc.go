// SPDX-License-Identifier: MIT

// Package seqbuf implements Buffer[T], a growable double-ended sequence
// builder over one contiguous array leased from an arraypool.Pool.
//
// 🚀 What is a Buffer?
//
//	A single array with a logical [head, tail) content window inside it:
//
//	    storage:  [ . . . . a b c d e . . . . . . ]
//	                      ^head     ^tail
//
//	Slack on both sides makes Append AND Prepend amortized O(1); interior
//	Insert/Remove shift whichever side moves fewer elements.
//
// ✨ Key features:
//   - pooled storage: every reallocation returns the replaced array to the pool,
//     Release returns the last one
//   - three growth biases (head, tail, center) behind one reserve operation
//   - in-place editing: RemoveAllFunc, ReplaceAllFunc, NormalizeAdjacent, NormalizeAll,
//     PadLeft/PadRight/PadEven, Reverse, Swap, Shuffle, Repeat, CopyOver
//   - checked views: View() detects mutation through a version counter
//
// ⚙️ Usage:
//
//	b := seqbuf.FromSlice([]rune("101"))
//	defer b.Release()
//	b.PadEven(10, '-', '-', false)
//	fmt.Println(b) // ---101----
//
//	idx := pattern.IndexAll(b.Slice(), []rune("-1"))
//
// ⚠️ Aliasing:
//
//	Slice() returns the live window. Any later mutating call may move or
//	reallocate it; the old slice then silently points at stale (possibly
//	pooled and cleared) memory. Use View() when a borrow must outlive edits
//	and you want that misuse reported as ErrStaleView.
//
// Concurrency:
//
//	A Buffer is NOT safe for concurrent use. Serialize access externally.
//
// Performance:
//   - Append/Prepend: amortized O(1)
//   - Insert/Remove at i: O(min(i, n-i))
//   - RemoveAll/Normalize*/ReplaceAll/Shuffle: O(n)
package seqbuf
