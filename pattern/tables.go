// SPDX-License-Identifier: MIT

package pattern

// PrefixFunction returns pi where pi[i] is the length of the longest proper
// prefix of s[:i+1] that is also its suffix (the border, or failure link).
func PrefixFunction[T comparable](s []T) []int {
	return prefixFunction(s, equal[T])
}

// PrefixFunctionFunc is PrefixFunction with a custom equality.
// Returns ErrNilFunc when eq is nil.
func PrefixFunctionFunc[T any](s []T, eq func(a, b T) bool) ([]int, error) {
	if eq == nil {
		return nil, ErrNilFunc
	}
	return prefixFunction(s, eq), nil
}

func prefixFunction[T any](s []T, eq func(a, b T) bool) []int {
	pi := make([]int, len(s))
	for i := 1; i < len(s); i++ {
		k := pi[i-1]
		for k > 0 && !eq(s[i], s[k]) {
			k = pi[k-1]
		}
		if eq(s[i], s[k]) {
			k++
		}
		pi[i] = k
	}
	return pi
}

// ZFunction returns z where z[i] is the length of the longest common prefix
// of s and s[i:]. z[0] is 0 by convention.
func ZFunction[T comparable](s []T) []int {
	return zFunction(s, equal[T])
}

// ZFunctionFunc is ZFunction with a custom equality.
// Returns ErrNilFunc when eq is nil.
func ZFunctionFunc[T any](s []T, eq func(a, b T) bool) ([]int, error) {
	if eq == nil {
		return nil, ErrNilFunc
	}
	return zFunction(s, eq), nil
}

func zFunction[T any](s []T, eq func(a, b T) bool) []int {
	n := len(s)
	z := make([]int, n)
	// [l, r) is the rightmost segment known to match a prefix of s.
	l, r := 0, 0
	for i := 1; i < n; i++ {
		if i < r {
			z[i] = min(r-i, z[i-l])
		}
		for i+z[i] < n && eq(s[z[i]], s[i+z[i]]) {
			z[i]++
		}
		if i+z[i] > r {
			l, r = i, i+z[i]
		}
	}
	return z
}
