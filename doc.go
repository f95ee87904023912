// SPDX-License-Identifier: MIT

// Package flux is a pooled sequence-editing toolkit: a growable double-ended
// buffer over leased arrays, plus classical algorithms over its contents.
//
// 🚀 What is in here?
//
//	arraypool/: Pool[T] contract, sync.Pool tiers (Shared) and bounded FIFO buckets with Stats
//	seqbuf/   : Buffer[T]: Append/Prepend/Insert/Remove, in-place normalization, padding,
//	             reversal, shuffle, repetition, checked Views and explicit Release
//	pattern/  : Horspool and KMP search, prefix and Z tables, Booth least rotation, isomorphism
//	dtw/      : generic Dynamic Time Warping over two numeric sequences
//	examples/ : runnable end-to-end demonstrations
//
// ✨ Design rules:
//   - no hidden global state except the per-type Shared pool
//   - sentinel errors per package, matched with errors.Is
//   - functional options with deterministic defaults (seeded RNG)
//   - pure Go, no cgo
//
// ⚙️ Usage:
//
//	b := seqbuf.FromSlice([]rune("  to  be or not  to be "))
//	defer b.Release()
//	_ = b.NormalizeAll(' ', unicode.IsSpace)
//	hits := pattern.IndexAll(b.Slice(), []rune("be")) // [3 16]
package flux
