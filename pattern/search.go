// SPDX-License-Identifier: MIT

package pattern

// IndexBadChar returns the index of the first occurrence of pat in text, or
// -1. It uses the Horspool bad-character rule: after a mismatch the window
// slides by the distance from the last occurrence (excluding the final
// position) of the text element aligned with the pattern's end.
func IndexBadChar[T comparable](text, pat []T) int {
	n, m := len(text), len(pat)
	if m == 0 || m > n {
		return -1
	}

	skip := make(map[T]int, m)
	for i := 0; i < m-1; i++ {
		skip[pat[i]] = m - 1 - i
	}

	for i := 0; i <= n-m; {
		j := m - 1
		for j >= 0 && text[i+j] == pat[j] {
			j--
		}
		if j < 0 {
			return i
		}
		if s, ok := skip[text[i+m-1]]; ok {
			i += s
		} else {
			i += m
		}
	}
	return -1
}

// IndexAll returns the ascending start indices of every occurrence of pat in
// text, overlapping ones included, or nil when there is none.
func IndexAll[T comparable](text, pat []T) []int {
	return indexAll(text, pat, equal[T])
}

// IndexAllFunc is IndexAll with a custom equality.
// Returns ErrNilFunc when eq is nil.
func IndexAllFunc[T any](text, pat []T, eq func(a, b T) bool) ([]int, error) {
	if eq == nil {
		return nil, ErrNilFunc
	}
	return indexAll(text, pat, eq), nil
}

// indexAll runs Knuth–Morris–Pratt over the failure function of pat.
func indexAll[T any](text, pat []T, eq func(a, b T) bool) []int {
	m := len(pat)
	if m == 0 || m > len(text) {
		return nil
	}

	fail := prefixFunction(pat, eq)
	var hits []int
	k := 0
	for i, v := range text {
		for k > 0 && !eq(v, pat[k]) {
			k = fail[k-1]
		}
		if eq(v, pat[k]) {
			k++
		}
		if k == m {
			hits = append(hits, i-m+1)
			k = fail[k-1]
		}
	}
	return hits
}

func equal[T comparable](a, b T) bool { return a == b }
