package report

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vcm/bisection"
	"github.com/katalvlaran/vcm/chart"
	"github.com/katalvlaran/vcm/expression"
	"github.com/katalvlaran/vcm/format"
	"github.com/katalvlaran/vcm/gauss"
	"github.com/katalvlaran/vcm/input"
	"github.com/katalvlaran/vcm/matrix"
)

// Message maps a failure to the sentence shown to the user. Unknown errors
// fall back to err.Error(); a nil error yields "".
func Message(err error) string {
	if err == nil {
		return ""
	}

	var (
		evalErr    *bisection.EvaluationError
		signErr    *bisection.NoSignChangeError
		singular   *gauss.SingularMatrixError
		entryErr   *matrix.EntryError
		fieldErr   *input.FieldError
		compileErr *expression.CompileError
	)
	switch {
	case errors.As(err, &evalErr):
		if evalErr.Iteration > 0 {
			return fmt.Sprintf("Cannot evaluate f(%s = %g) in iteration %d: %v",
				evalErr.Point, evalErr.X, evalErr.Iteration, evalErr.Err)
		}
		return fmt.Sprintf("Cannot evaluate f(%s = %g): %v", evalErr.Point, evalErr.X, evalErr.Err)

	case errors.As(err, &signErr):
		return fmt.Sprintf("f(a) and f(b) must have opposite signs. f(a) = %s, f(b) = %s",
			format.Scientific(signErr.FA, 4), format.Scientific(signErr.FB, 4))

	case errors.Is(err, bisection.ErrBracketOverflow):
		return "The interval [a, b] is too wide: b - a exceeds the floating-point range"

	case errors.Is(err, bisection.ErrInvalidBracket):
		return "The lower bound a must be less than the upper bound b"

	case errors.As(err, &singular):
		return fmt.Sprintf("Singular system: zero pivot at position (%d,%d)", singular.Row, singular.Col)

	case errors.As(err, &entryErr):
		if entryErr.RHS {
			return fmt.Sprintf("Invalid value in b%d", entryErr.Row)
		}
		return fmt.Sprintf("Invalid value at position (%d,%d)", entryErr.Row, entryErr.Col)

	case errors.Is(err, expression.ErrEmptyFormula):
		return "The function cannot be empty"

	case errors.As(err, &compileErr):
		return fmt.Sprintf("Invalid function %q: %v", compileErr.Formula, compileErr.Err)

	case errors.Is(err, input.ErrPrecision):
		return "Precision must be greater than zero"

	case errors.Is(err, input.ErrIterations):
		return fmt.Sprintf("The number of iterations must be between %d and %d", input.MinIterations, input.MaxIterations)

	case errors.Is(err, input.ErrNotNumeric):
		if errors.As(err, &fieldErr) {
			return fmt.Sprintf("Please enter a valid number for %s", fieldErr.Field)
		}
		return "Please enter valid numeric values"

	case errors.Is(err, input.ErrSize):
		return fmt.Sprintf("The system size must be between %d and %d", matrix.MinSize, matrix.MaxSize)

	case errors.Is(err, matrix.ErrBadShape):
		return "The system must have n rows of n+1 values"

	case errors.Is(err, chart.ErrUnsupportedFormat):
		return "The chart file must end in .html, .png or .svg"
	}

	return err.Error()
}
