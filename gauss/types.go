// SPDX-License-Identifier: MIT

package gauss

// Epsilon is the absolute magnitude under which a pivot counts as zero and an
// eliminated entry is snapped to 0. It is not scaled by the matrix norm.
const Epsilon = 1e-10

// Options configures Solve.
type Options struct {
	// TraceSteps records a snapshot for every structural transformation.
	TraceSteps bool
}

// DefaultOptions returns Options with step tracing enabled.
func DefaultOptions() Options {
	return Options{TraceSteps: true}
}

// StepKind classifies a recorded snapshot.
type StepKind int

const (
	// StepInitial is the untouched augmented matrix.
	StepInitial StepKind = iota
	// StepSwap follows a partial-pivoting row exchange.
	StepSwap
	// StepElimination follows the elimination of one pivot column.
	StepElimination
	// StepFinal is the upper triangular form handed to back-substitution.
	StepFinal
)

// String implements fmt.Stringer.
func (k StepKind) String() string {
	switch k {
	case StepInitial:
		return "initial"
	case StepSwap:
		return "swap"
	case StepElimination:
		return "elimination"
	case StepFinal:
		return "final"
	default:
		return "unknown"
	}
}

// Step is one immutable snapshot of the working matrix.
// Matrix is a deep copy owned by the Step; Pivot is empty except for
// StepElimination, where it reads "a_{k,k} = <value>" with 4 decimals.
type Step struct {
	Stage       int
	Kind        StepKind
	Title       string
	Description string
	Matrix      [][]float64
	Pivot       string
}

// Result is the outcome of Solve.
//
// On a *SingularMatrixError, Solution is nil, HasDeterminant is false and
// Steps holds the snapshots recorded before the failure.
type Result struct {
	Solution       []float64
	Steps          []Step
	Determinant    float64
	HasDeterminant bool
	Consistent     bool
}
