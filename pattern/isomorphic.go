// SPDX-License-Identifier: MIT

package pattern

// IsIsomorphic reports whether a and b have the same length and a one-to-one
// mapping sends a[i] to b[i] for every i ("egg" and "add", but not "foo" and
// "bar"). The element types may differ.
func IsIsomorphic[T, U comparable](a []T, b []U) bool {
	if len(a) != len(b) {
		return false
	}
	fwd := make(map[T]U, len(a))
	inv := make(map[U]T, len(b))
	for i, x := range a {
		y := b[i]
		if m, ok := fwd[x]; ok && m != y {
			return false
		}
		if m, ok := inv[y]; ok && m != x {
			return false
		}
		fwd[x], inv[y] = y, x
	}
	return true
}
