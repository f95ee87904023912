// SPDX-License-Identifier: MIT

// Package dtw computes Dynamic Time Warping (DTW) distances between two
// numeric sequences of any integer or floating-point element type, with an
// optional alignment path and memory-saving modes.
//
// 🚀 What is DTW?
//
//	DTW finds the cheapest monotone alignment of two sequences by warping
//	their index axes. Typical uses for buffer contents:
//	  • comparing sampled signals recorded at different speeds
//	  • fuzzy matching of numeric runs that drift in length
//	  • clustering sequences by shape rather than by position
//
// ✨ Key features:
//   - generic over Number: []int, []int16, []float32, []float64, ...
//   - FullMatrix mode: O(N·M) memory, supports the alignment path
//   - TwoRows / NoMemory modes: O(min(N,M)) memory, distance only
//   - optional Sakoe–Chiba band (|i−j| ≤ w)
//   - slope penalty on non-diagonal steps
//
// ⚙️ Usage:
//
//	res, err := dtw.DTW(a.Slice(), b.Slice(),
//	    dtw.WithWindow(10),
//	    dtw.WithSlopePenalty(0.5),
//	    dtw.WithPath(),
//	)
//
// Performance:
//   - Time:   O(N·M), O(N·w) cells are finite under a band of width w
//   - Memory: O(N·M) (FullMatrix) or O(min(N,M)) (TwoRows, NoMemory)
package dtw
