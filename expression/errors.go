package expression

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyFormula is returned for a formula that is blank after trimming.
	ErrEmptyFormula = errors.New("expression: empty formula")

	// ErrCompile matches any *CompileError: syntax errors, unknown
	// identifiers and formulas that do not yield a number.
	ErrCompile = errors.New("expression: invalid formula")

	// ErrRuntime wraps failures raised while running a compiled formula.
	ErrRuntime = errors.New("expression: evaluation failed")

	// ErrNotFinite is returned when a formula yields NaN or ±Inf.
	ErrNotFinite = errors.New("expression: result is not a finite number")

	// ErrNotNumeric is returned when a formula does not yield a number.
	ErrNotNumeric = errors.New("expression: result is not a number")
)

// CompileError carries the compiler diagnostic for a normalized formula.
type CompileError struct {
	Formula string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("expression: invalid formula %q: %v", e.Formula, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrCompile) match any *CompileError.
func (e *CompileError) Is(target error) bool { return target == ErrCompile }
