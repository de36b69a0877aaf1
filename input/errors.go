package input

import (
	"errors"
	"fmt"
)

var (
	// ErrNotNumeric indicates a field that does not hold a valid number.
	ErrNotNumeric = errors.New("input: not a valid number")

	// ErrPrecision indicates a precision that is not greater than zero.
	ErrPrecision = errors.New("input: precision must be greater than zero")

	// ErrIterations indicates an iteration cap outside [MinIterations, MaxIterations].
	ErrIterations = errors.New("input: iterations out of range")

	// ErrSize indicates a system size outside [matrix.MinSize, matrix.MaxSize].
	ErrSize = errors.New("input: system size out of range")
)

// FieldError names the form field that failed validation.
type FieldError struct {
	Field string
	Raw   string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("input: field %s (%q): %v", e.Field, e.Raw, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
