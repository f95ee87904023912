// SPDX-License-Identifier: MIT

package dtw

import "fmt"

// Number is any element type DTW can measure.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// MemoryMode controls how DTW stores its cost table.
//
//   - FullMatrix: the whole (n+1)×(m+1) table; required for the path.
//   - TwoRows   : the previous and current row only.
//   - NoMemory  : a single row plus one carried diagonal cell.
type MemoryMode int

const (
	// FullMatrix keeps every row, enabling backtracking. Memory O(N·M).
	FullMatrix MemoryMode = iota

	// TwoRows keeps two rolling rows. Memory O(min(N,M)).
	TwoRows

	// NoMemory keeps one row updated in place. Memory O(min(N,M)).
	NoMemory
)

// String implements fmt.Stringer.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "FullMatrix"
	case TwoRows:
		return "TwoRows"
	case NoMemory:
		return "NoMemory"
	default:
		return fmt.Sprintf("MemoryMode(%d)", int(m))
	}
}

// Coord is one aligned pair of indices: a[I] is matched with b[J].
type Coord struct {
	I, J int
}

// Result holds the outcome of a DTW run.
//
// Distance is +Inf when the window admits no alignment. Path is nil unless
// WithPath was given; when set it runs from {0 0} to {n-1 m-1} and both
// coordinates are non-decreasing.
type Result struct {
	Distance float64
	Path     []Coord
}
