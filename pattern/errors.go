// SPDX-License-Identifier: MIT

package pattern

import "errors"

var (
	// ErrEmptySequence is returned when an operation needs at least one element.
	ErrEmptySequence = errors.New("pattern: empty sequence")

	// ErrNilFunc is returned by the *Func variants when the equality or
	// comparison function is nil.
	ErrNilFunc = errors.New("pattern: nil function argument")
)
