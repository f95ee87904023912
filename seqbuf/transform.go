// SPDX-License-Identifier: MIT

package seqbuf

import "slices"

// RemoveAllFunc deletes every element for which pred returns true, keeping the
// relative order of the survivors. Returns ErrNilFunc when pred is nil.
// Views stay valid when nothing matched.
func (b *Buffer[T]) RemoveAllFunc(pred func(T) bool) error {
	if pred == nil {
		return bufErrorf(methodRemoveAll, ErrNilFunc)
	}
	if b.compact(func(v T) bool { return !pred(v) }) {
		b.touch()
	}
	return nil
}

// RemoveValuesFunc deletes every element equal (under eq) to any of values.
// Returns ErrNilFunc when eq is nil.
func (b *Buffer[T]) RemoveValuesFunc(values []T, eq func(a, b T) bool) error {
	if eq == nil {
		return bufErrorf(methodRemoveAll, ErrNilFunc)
	}
	if len(values) == 0 {
		return nil
	}
	if b.compact(func(v T) bool { return !containsFunc(values, v, eq) }) {
		b.touch()
	}
	return nil
}

// RemoveValues deletes every element equal to any of values.
func RemoveValues[T comparable](b *Buffer[T], values ...T) *Buffer[T] {
	if len(values) == 0 {
		return b
	}
	set := setOf(values)
	if b.compact(func(v T) bool {
		_, hit := set[v]
		return !hit
	}) {
		b.touch()
	}
	return b
}

// ReplaceAllFunc replaces every element v with selector(v). No resizing.
// It always counts as a mutation of a non-empty buffer.
func (b *Buffer[T]) ReplaceAllFunc(selector func(T) T) error {
	if selector == nil {
		return bufErrorf(methodReplace, ErrNilFunc)
	}
	if b.tail == b.head {
		return nil
	}
	for i := b.head; i < b.tail; i++ {
		b.storage[i] = selector(b.storage[i])
	}
	b.touch()
	return nil
}

// ReplaceIf overwrites every element satisfying pred with replacement.
// Views stay valid when nothing matched.
func (b *Buffer[T]) ReplaceIf(replacement T, pred func(T) bool) error {
	if pred == nil {
		return bufErrorf(methodReplace, ErrNilFunc)
	}
	hit := false
	for i := b.head; i < b.tail; i++ {
		if pred(b.storage[i]) {
			b.storage[i] = replacement
			hit = true
		}
	}
	if hit {
		b.touch()
	}
	return nil
}

// NormalizeAdjacentFunc collapses every run of consecutive equal elements to
// its first instance. With a non-empty candidates list only runs of elements
// found in candidates collapse; other runs are kept verbatim.
func (b *Buffer[T]) NormalizeAdjacentFunc(candidates []T, eq func(a, b T) bool) error {
	if eq == nil {
		return bufErrorf(methodNormalize, ErrNilFunc)
	}
	if b.collapseRuns(func(prev, v T) bool {
		return eq(prev, v) && (len(candidates) == 0 || containsFunc(candidates, v, eq))
	}) {
		b.touch()
	}
	return nil
}

// NormalizeAdjacent is NormalizeAdjacentFunc with == as equality.
func NormalizeAdjacent[T comparable](b *Buffer[T], candidates ...T) *Buffer[T] {
	set := setOf(candidates)
	if b.collapseRuns(func(prev, v T) bool {
		if prev != v {
			return false
		}
		_, hit := set[v]
		return len(set) == 0 || hit
	}) {
		b.touch()
	}
	return b
}

// NormalizeAll trims leading and trailing runs of elements satisfying pred and
// replaces every interior run with a single replacement. Views stay valid
// when no element satisfied pred.
//
//	"  a  b " with pred=isSpace, replacement='_'  →  "a_b"
func (b *Buffer[T]) NormalizeAll(replacement T, pred func(T) bool) error {
	if pred == nil {
		return bufErrorf(methodNormalize, ErrNilFunc)
	}
	start, end := b.head, b.tail
	for start < end && pred(b.storage[start]) {
		start++
	}
	for end > start && pred(b.storage[end-1]) {
		end--
	}
	changed := start != b.head || end != b.tail
	clear(b.storage[b.head:start])
	clear(b.storage[end:b.tail])
	b.head, b.tail = start, end

	w, inRun := b.head, false
	for r := b.head; r < b.tail; r++ {
		v := b.storage[r]
		if pred(v) {
			changed = true
			if !inRun {
				b.storage[w] = replacement
				w++
				inRun = true
			}
			continue
		}
		b.storage[w] = v
		w++
		inRun = false
	}
	clear(b.storage[w:b.tail])
	b.tail = w
	if changed {
		b.touch()
	}
	return nil
}

// PadLeft prepends pad until Len() reaches width. No-op when Len() ≥ width.
func (b *Buffer[T]) PadLeft(width int, pad T) *Buffer[T] {
	return b.PrependN(pad, width-b.Len())
}

// PadRight appends pad until Len() reaches width. No-op when Len() ≥ width.
func (b *Buffer[T]) PadRight(width int, pad T) *Buffer[T] {
	return b.AppendN(pad, width-b.Len())
}

// PadEven pads both sides until Len() reaches width, splitting the deficit as
// evenly as possible. leftBias decides which side takes an odd remainder.
//
//	"101".PadEven(10, '-', '-', false) → "---101----"
func (b *Buffer[T]) PadEven(width int, padLeft, padRight T, leftBias bool) *Buffer[T] {
	deficit := width - b.Len()
	if deficit <= 0 {
		return b
	}
	left := deficit / 2
	if leftBias && deficit%2 == 1 {
		left++
	}
	return b.PrependN(padLeft, left).AppendN(padRight, deficit-left)
}

// compact keeps the elements for which keep returns true, in order, and
// zeroes the vacated tail. It reports whether anything was dropped.
func (b *Buffer[T]) compact(keep func(T) bool) bool {
	w := b.head
	for r := b.head; r < b.tail; r++ {
		if v := b.storage[r]; keep(v) {
			b.storage[w] = v
			w++
		}
	}
	dropped := w != b.tail
	clear(b.storage[w:b.tail])
	b.tail = w
	return dropped
}

// collapseRuns drops every element for which dup(lastKept, v) is true and
// reports whether anything was dropped.
func (b *Buffer[T]) collapseRuns(dup func(prev, v T) bool) bool {
	if b.tail-b.head < 2 {
		return false
	}
	w := b.head + 1
	for r := b.head + 1; r < b.tail; r++ {
		v := b.storage[r]
		if dup(b.storage[w-1], v) {
			continue
		}
		b.storage[w] = v
		w++
	}
	dropped := w != b.tail
	clear(b.storage[w:b.tail])
	b.tail = w
	return dropped
}

// containsFunc reports whether values holds an element equal to v under eq.
func containsFunc[T any](values []T, v T, eq func(a, b T) bool) bool {
	return slices.ContainsFunc(values, func(x T) bool { return eq(x, v) })
}

// setOf builds a lookup set from values.
func setOf[T comparable](values []T) map[T]struct{} {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
