// SPDX-License-Identifier: MIT

package pattern

import "cmp"

// MinimalRotation returns the smallest k such that s[k:]+s[:k] is the
// lexicographically least rotation of s (Booth's algorithm).
// Returns ErrEmptySequence when s is empty.
//
//	MinimalRotation([]rune("bbaaccaadd")) == 2  // "aaccaaddbb"
func MinimalRotation[T cmp.Ordered](s []T) (int, error) {
	return MinimalRotationFunc(s, cmp.Compare[T])
}

// MinimalRotationFunc is MinimalRotation with a three-way comparison that
// returns a negative number, zero or a positive number.
// Returns ErrNilFunc when compare is nil.
func MinimalRotationFunc[T any](s []T, compare func(a, b T) int) (int, error) {
	if compare == nil {
		return 0, ErrNilFunc
	}
	n := len(s)
	if n == 0 {
		return 0, ErrEmptySequence
	}

	// f is the failure function of the doubled sequence, relative to the
	// current candidate start k. Indices wrap modulo n instead of
	// materializing s+s.
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		sj := s[j%n]
		i := f[j-k-1]
		for i != -1 {
			c := compare(sj, s[(k+i+1)%n])
			if c == 0 {
				break
			}
			if c < 0 {
				k = j - i - 1
			}
			i = f[i]
		}
		if i == -1 {
			if c := compare(sj, s[k%n]); c != 0 {
				if c < 0 {
					k = j
				}
				f[j-k] = -1
				continue
			}
		}
		f[j-k] = i + 1
	}
	return k, nil
}

// Rotate returns a new slice holding s rotated left by k positions:
// Rotate(s, k) == s[k:]+s[:k]. k is taken modulo len(s) and may be negative.
func Rotate[T any](s []T, k int) []T {
	n := len(s)
	out := make([]T, n)
	if n == 0 {
		return out
	}
	k %= n
	if k < 0 {
		k += n
	}
	copy(out, s[k:])
	copy(out[n-k:], s[:k])
	return out
}
