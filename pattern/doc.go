// SPDX-License-Identifier: MIT

// Package pattern provides classical sequence algorithms over plain slices:
// substring search, border and Z tables, least rotation and isomorphism.
//
// Every function is pure and generic. Inputs are read, never retained or
// modified, so a seqbuf.Buffer's Slice() (or a checked View) can be passed
// directly.
//
// 🚀 Algorithms:
//
//	IndexBadChar        Horspool bad-character skip search      O(n·m) worst, sublinear typical
//	IndexAll            Knuth–Morris–Pratt, all overlapping hits  O(n + m)
//	PrefixFunction      border lengths of every prefix            O(n)
//	ZFunction           longest common prefix with s at every i   O(n)
//	MinimalRotation     Booth's least rotation                    O(n)
//	IsIsomorphic        bijective element mapping                 O(n)
//
// Empty inputs:
//   - an empty text or an empty pattern never matches (-1 / nil);
//   - tables of an empty sequence are empty;
//   - MinimalRotation of an empty sequence fails with ErrEmptySequence;
//   - two empty sequences are isomorphic.
//
// The *Func variants take an equality or three-way comparison and return
// ErrNilFunc when it is nil.
package pattern
