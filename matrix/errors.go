// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors return these sentinels (directly or wrapped with context)
// and tests match them via errors.Is. Construction-time validation fails fast:
// it runs before any solver state exists.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
var (
	// ErrBadShape is returned when the rows do not describe an n×(n+1)
	// augmented system (empty input or a row of the wrong length).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrInvalidEntry signals a raw cell that does not parse as a real number.
	ErrInvalidEntry = errors.New("matrix: invalid entry")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)

// EntryError reports the offending cell of a raw augmented matrix.
// Row and Col are 1-indexed; Col == n+1 designates the right-hand side b.
type EntryError struct {
	Row, Col int
	RHS      bool
	Raw      string
}

func (e *EntryError) Error() string {
	if e.RHS {
		return fmt.Sprintf("matrix: invalid value %q in b%d", e.Raw, e.Row)
	}

	return fmt.Sprintf("matrix: invalid value %q at position (%d,%d)", e.Raw, e.Row, e.Col)
}

// Is lets errors.Is(err, ErrInvalidEntry) match any *EntryError.
func (e *EntryError) Is(target error) bool { return target == ErrInvalidEntry }
