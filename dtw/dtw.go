// SPDX-License-Identifier: MIT

package dtw

import (
	"math"
	"slices"
)

// DTW computes the Dynamic Time Warping distance between a and b.
//
// Recurrence over the (n+1)×(m+1) table D, with D[0][0] = 0 and the rest of
// row 0 and column 0 at +Inf:
//
//	D[i][j] = |a[i-1] - b[j-1]| + min(D[i-1][j-1], D[i-1][j]+p, D[i][j-1]+p)
//
// Cells outside the window stay +Inf. The distance is D[n][m].
//
// Errors: ErrEmptyInput, ErrBadInput, ErrPathNeedsMatrix. Validation runs
// before any allocation.
func DTW[T Number](a, b []T, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	if len(a) == 0 || len(b) == 0 {
		return Result{}, ErrEmptyInput
	}
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}

	switch cfg.mode {
	case TwoRows:
		a, b = shorterSecond(a, b)
		return Result{Distance: twoRows(a, b, cfg)}, nil
	case NoMemory:
		a, b = shorterSecond(a, b)
		return Result{Distance: oneRow(a, b, cfg)}, nil
	}

	table := fullMatrix(a, b, cfg)
	res := Result{Distance: table[len(a)][len(b)]}
	if cfg.wantPath && !math.IsInf(res.Distance, 1) {
		res.Path = backtrack(table, cfg.penalty)
	}
	return res, nil
}

// shorterSecond orders the inputs so rows are sized by the shorter one.
// DTW is symmetric under transposition, so the distance is unchanged.
func shorterSecond[T Number](a, b []T) ([]T, []T) {
	if len(b) > len(a) {
		return b, a
	}
	return a, b
}

// outside reports whether (i, j) lies outside the configured band.
func (c config) outside(i, j int) bool {
	if c.window == Unlimited {
		return false
	}
	d := i - j
	if d < 0 {
		d = -d
	}
	return d > c.window
}

func cost[T Number](x, y T) float64 {
	return math.Abs(float64(x) - float64(y))
}

// fullMatrix fills and returns the whole table.
func fullMatrix[T Number](a, b []T, cfg config) [][]float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	table := make([][]float64, n+1)
	for i := range table {
		table[i] = make([]float64, m+1)
	}
	for j := 1; j <= m; j++ {
		table[0][j] = inf
	}

	for i := 1; i <= n; i++ {
		prev, curr := table[i-1], table[i]
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if cfg.outside(i, j) {
				curr[j] = inf
				continue
			}
			curr[j] = cost(a[i-1], b[j-1]) + min(prev[j-1], prev[j]+cfg.penalty, curr[j-1]+cfg.penalty)
		}
	}
	return table
}

// twoRows computes the distance keeping the previous and current row.
func twoRows[T Number](a, b []T, cfg config) float64 {
	m := len(b)
	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if cfg.outside(i, j) {
				curr[j] = inf
				continue
			}
			curr[j] = cost(a[i-1], b[j-1]) + min(prev[j-1], prev[j]+cfg.penalty, curr[j-1]+cfg.penalty)
		}
		prev, curr = curr, prev
	}
	return prev[m]
}

// oneRow computes the distance in a single row. Before cell j is overwritten
// it still holds D[i-1][j]; diag carries D[i-1][j-1] across the update.
func oneRow[T Number](a, b []T, cfg config) float64 {
	m := len(b)
	inf := math.Inf(1)
	row := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		row[j] = inf
	}

	for i := 1; i <= len(a); i++ {
		diag := row[0]
		row[0] = inf
		for j := 1; j <= m; j++ {
			up := row[j]
			if cfg.outside(i, j) {
				row[j] = inf
			} else {
				row[j] = cost(a[i-1], b[j-1]) + min(diag, up+cfg.penalty, row[j-1]+cfg.penalty)
			}
			diag = up
		}
	}
	return row[m]
}

// backtrack walks from (n, m) to (1, 1) choosing the predecessor that
// produced each cell's minimum; ties prefer the diagonal, then a step in a,
// then a step in b.
func backtrack(table [][]float64, penalty float64) []Coord {
	i, j := len(table)-1, len(table[0])-1
	path := make([]Coord, 0, i+j)
	for i > 1 || j > 1 {
		path = append(path, Coord{I: i - 1, J: j - 1})
		match := table[i-1][j-1]
		up := table[i-1][j] + penalty
		left := table[i][j-1] + penalty
		switch {
		case match <= up && match <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	path = append(path, Coord{I: 0, J: 0})
	slices.Reverse(path)
	return path
}
