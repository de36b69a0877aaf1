// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vcm/matrix"
)

// Solve solves the n×n system held in m by Gaussian elimination with partial
// pivoting followed by back-substitution.
//
// Algorithm Outline:
//  1. Copy [A|b] into a working Dense matrix; m itself is never mutated.
//  2. For each pivot column k = 0 … n-2:
//     a. pick the row p ≥ k with the largest |A[p][k]| (first one on ties);
//     b. swap rows k and p when they differ;
//     c. fail with *SingularMatrixError at (k+1,k+1) when |A[k][k]| < Epsilon;
//     d. for every row i > k subtract (A[i][k]/A[k][k])·row k over columns
//     k … n, then snap entries of row i with magnitude < Epsilon to 0.
//  3. Back-substitute from the last row upward.
//  4. Compute the determinant in an independent pass (see Determinant).
//
// Snapshots are recorded only when opts.TraceSteps is set and never influence
// the arithmetic.
//
// Errors:
//   - ErrNilMatrix         - m is nil.
//   - *SingularMatrixError - a pivot below Epsilon, or a zero diagonal reached
//     during back-substitution (errors.Is ErrSingular). Steps recorded so far
//     are returned alongside it.
//
// Complexity: O(n³) time; O(n²) memory, plus O(n²) per recorded snapshot.
func Solve(m *matrix.Augmented, opts Options) (Result, error) {
	if m == nil {
		return Result{}, ErrNilMatrix
	}

	// Stage 1: working copy
	n := m.Size()
	work := m.Dense()
	t := tracer{enabled: opts.TraceSteps}
	t.record(0, StepInitial,
		"Initial augmented matrix [A|b]",
		"Linear system in augmented matrix form",
		work, "")

	// Stage 2: forward elimination with partial pivoting
	for k := 0; k < n-1; k++ {
		p, err := pivotRow(work, k)
		if err != nil {
			return Result{Steps: t.steps}, err
		}
		if p != k {
			if err = work.SwapRows(k, p); err != nil {
				return Result{Steps: t.steps}, fmt.Errorf("gauss: %w", err)
			}
			t.record(k+1, StepSwap,
				fmt.Sprintf("Swap rows R%d ↔ R%d", k+1, p+1),
				fmt.Sprintf("Partial pivoting: moving the largest element to position (%d,%d)", k+1, k+1),
				work, "")
		}

		pivot, err := work.At(k, k)
		if err != nil {
			return Result{Steps: t.steps}, fmt.Errorf("gauss: %w", err)
		}
		if math.Abs(pivot) < Epsilon {
			return Result{Steps: t.steps}, &SingularMatrixError{Row: k + 1, Col: k + 1}
		}

		if err = eliminateBelow(work, k); err != nil {
			return Result{Steps: t.steps}, err
		}

		t.record(k+1, StepElimination,
			fmt.Sprintf("Stage k=%d complete", k+1),
			fmt.Sprintf("Elimination of column %d: zeros below a_{%d,%d}", k+1, k+1, k+1),
			work, fmt.Sprintf("a_{%d,%d} = %.4f", k+1, k+1, pivot))
	}

	t.record(n, StepFinal,
		"Final upper triangular matrix",
		"System in upper triangular form, ready for back-substitution",
		work, "")

	// Stage 3: back-substitution
	solution, err := backSubstitute(work.ToRows())
	if err != nil {
		return Result{Steps: t.steps}, err
	}

	// Stage 4: determinant, independent of the pivoted pass; an overflowed
	// product is not reported
	det := Determinant(m)

	return Result{
		Solution:       solution,
		Steps:          t.steps,
		Determinant:    det,
		HasDeterminant: !math.IsInf(det, 0) && !math.IsNaN(det),
		Consistent:     true,
	}, nil
}

// pivotRow returns the row index in k … n-1 holding the largest |A[i][k]|.
// The earliest row wins on ties so an already maximal pivot is not swapped.
func pivotRow(work *matrix.Dense, k int) (int, error) {
	p := k
	best, err := work.At(k, k)
	if err != nil {
		return 0, fmt.Errorf("gauss: %w", err)
	}
	for i := k + 1; i < work.Rows(); i++ {
		v, err := work.At(i, k)
		if err != nil {
			return 0, fmt.Errorf("gauss: %w", err)
		}
		if math.Abs(v) > math.Abs(best) {
			p, best = i, v
		}
	}

	return p, nil
}

// eliminateBelow zeroes column k under the pivot A[k][k] and snaps every
// entry of the updated rows with magnitude below Epsilon to 0.
func eliminateBelow(work *matrix.Dense, k int) error {
	n := work.Rows()
	pivot, err := work.Row(k)
	if err != nil {
		return fmt.Errorf("gauss: %w", err)
	}
	for i := k + 1; i < n; i++ {
		row, err := work.Row(i)
		if err != nil {
			return fmt.Errorf("gauss: %w", err)
		}
		factor := row[k] / pivot[k]
		for j := k; j <= n; j++ {
			row[j] -= factor * pivot[j]
		}
		// whole row, not only the updated columns
		for j, v := range row {
			if math.Abs(v) < Epsilon {
				v = 0
			}
			if err = work.Set(i, j, v); err != nil {
				return fmt.Errorf("gauss: %w", err)
			}
		}
	}

	return nil
}

// backSubstitute solves the upper triangular system in work.
// Epsilon is not re-applied here; only a diagonal that would turn the
// solution non-finite is rejected.
func backSubstitute(work [][]float64) ([]float64, error) {
	n := len(work)
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := work[i][n]
		for j := i + 1; j < n; j++ {
			sum -= work[i][j] * x[j]
		}
		x[i] = sum / work[i][i]
		if work[i][i] == 0 || math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return nil, &SingularMatrixError{Row: i + 1, Col: i + 1}
		}
	}

	return x, nil
}

// tracer collects snapshots when enabled and is a no-op otherwise.
type tracer struct {
	enabled bool
	steps   []Step
}

func (t *tracer) record(stage int, kind StepKind, title, description string, work *matrix.Dense, pivot string) {
	if !t.enabled {
		return
	}
	t.steps = append(t.steps, Step{
		Stage:       stage,
		Kind:        kind,
		Title:       title,
		Description: description,
		Matrix:      work.ToRows(),
		Pivot:       pivot,
	})
}
