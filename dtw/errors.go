// SPDX-License-Identifier: MIT

package dtw

import "errors"

var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates an invalid option value (window < -1, negative or
	// NaN slope penalty, unknown memory mode).
	ErrBadInput = errors.New("dtw: invalid option")

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("dtw: path requires MemoryMode=FullMatrix")
)
