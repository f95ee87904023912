// SPDX-License-Identifier: MIT

package pattern

import "slices"

// NormalizeAdjacent returns a copy of s in which every run of consecutive
// equal elements is reduced to its first element. With candidates, only runs
// of those elements collapse. s is not modified.
//
//	NormalizeAdjacent([]rune("aabbbcdd"))      → "abcd"
//	NormalizeAdjacent([]rune("aabbbcdd"), 'b') → "aabcdd"
func NormalizeAdjacent[T comparable](s []T, candidates ...T) []T {
	out := make([]T, 0, len(s))
	for i, v := range s {
		if i > 0 && v == s[i-1] && (len(candidates) == 0 || slices.Contains(candidates, v)) {
			continue
		}
		out = append(out, v)
	}
	return out
}
