package bisection

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBracket indicates that the lower bound is not strictly less
	// than the upper bound (or that one of them is not finite).
	ErrInvalidBracket = errors.New("bisection: lower bound must be strictly less than upper bound")

	// ErrBracketOverflow accompanies ErrInvalidBracket when b-a is not
	// representable as a float64.
	ErrBracketOverflow = errors.New("bisection: bracket width overflows float64")

	// ErrEvaluation matches any *EvaluationError.
	ErrEvaluation = errors.New("bisection: function evaluation failed")

	// ErrNoSignChange matches any *NoSignChangeError.
	ErrNoSignChange = errors.New("bisection: function does not change sign on the bracket")

	// ErrNonFinite is the cause recorded when f returns NaN or ±Inf without an error.
	ErrNonFinite = errors.New("bisection: non-finite function value")

	// ErrBadOptions indicates a non-positive precision or a negative iteration cap.
	ErrBadOptions = errors.New("bisection: invalid options")
)

// Evaluation points reported by EvaluationError.
const (
	PointA  = "a"
	PointB  = "b"
	PointXA = "xa"
	PointXB = "xb"
	PointXN = "xn"
)

// EvaluationError reports which point f could not be evaluated at.
// Iteration is 0 for the initial endpoint checks and the 1-based loop pass
// otherwise.
type EvaluationError struct {
	Point     string
	X         float64
	Iteration int
	Err       error
}

func (e *EvaluationError) Error() string {
	if e.Iteration > 0 {
		return fmt.Sprintf("bisection: iteration %d: cannot evaluate f(%s=%g): %v", e.Iteration, e.Point, e.X, e.Err)
	}

	return fmt.Sprintf("bisection: cannot evaluate f(%s=%g): %v", e.Point, e.X, e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }

func (e *EvaluationError) Is(target error) bool { return target == ErrEvaluation }

// NoSignChangeError carries both endpoint values for diagnostics: Bolzano's
// precondition f(a)·f(b) ≤ 0 was not met.
type NoSignChangeError struct {
	A, B   float64
	FA, FB float64
}

func (e *NoSignChangeError) Error() string {
	return fmt.Sprintf("bisection: no sign change on [%g, %g]: f(a)=%g, f(b)=%g", e.A, e.B, e.FA, e.FB)
}

func (e *NoSignChangeError) Is(target error) bool { return target == ErrNoSignChange }
