// SPDX-License-Identifier: MIT

// Package arraypool leases and recycles power-of-two sized arrays so that
// growable containers can replace their backing storage without feeding the GC.
//
// 🚀 What is in here?
//
//	A tiny Pool[T] contract plus two implementations:
//	  • Tiered  : one sync.Pool per power-of-two tier, shared process-wide via Shared[T]().
//	  • Bucketed: bounded FIFO free lists per tier with exact Stats(), for tests and quotas.
//
// ✨ Contract:
//   - Rent(n) returns an array with len ≥ n, len a power of two, zero-filled.
//   - Return(arr) hands ownership back; the caller MUST NOT touch arr afterwards.
//   - Every Rent is paired with exactly one Return (lease/return balance).
//
// ⚙️ Usage:
//
//	p := arraypool.NewBucketed[rune](arraypool.WithMaxPerBucket(8))
//	arr := p.Rent(100) // len(arr) == 128
//	defer p.Return(arr)
//
// Concurrency:
//
//	Both implementations are safe for concurrent use. The arrays they hand out are not.
package arraypool
