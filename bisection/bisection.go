// SPDX-License-Identifier: MIT

package bisection

import (
	"fmt"
	"math"
	"time"
)

// Solve finds a root of f inside [a, b] by repeated interval halving.
//
// Algorithm Outline:
//  1. Validate options and the bracket (a < b, both finite, b-a finite).
//  2. Evaluate f(a), f(b); fail on evaluation errors or f(a)·f(b) > 0.
//  3. Fast path: if |f(a)| or |f(b)| is already below Precision, return that
//     endpoint with a single zero-error record (Index 0).
//  4. Loop while err > Precision and iteration < MaxIterations:
//     xn = xa/2 + xb/2, record (xa, f(xa), xb, f(xb), xn, f(xn), err),
//     stop on |f(xn)| < Precision (err = 0), otherwise keep the half whose
//     endpoints have opposite signs; a zero product moves xa.
//  5. Root = midpoint of [xa, xb]. Converged when err ≤ Precision or |f(Root)| < Precision.
//
// Partial results:
//
//	An evaluation failure inside the loop stops it. The returned Result still
//	carries the root of the current bracket, the iterations recorded so far
//	and the stats, alongside an *EvaluationError naming the failing pass.
//
// Errors:
//   - ErrBadOptions: Precision ≤ 0 / non-finite, MaxIterations < 0, nil f.
//   - ErrInvalidBracket: a ≥ b, a non-finite bound, or b-a beyond the
//     float64 range (then also errors.Is ErrBracketOverflow).
//   - *EvaluationError: f failed at a required point (errors.Is ErrEvaluation).
//   - *NoSignChangeError: f(a)·f(b) > 0 (errors.Is ErrNoSignChange).
//
// Complexity: O(MaxIterations) evaluations of f, O(MaxIterations) memory for the trace.
func Solve(f Func, a, b float64, opts Options) (Result, error) {
	start := time.Now()

	// Stage 1: validate inputs
	if err := validate(f, opts); err != nil {
		return Result{}, err
	}
	if !isFinite(a) || !isFinite(b) || a >= b {
		return Result{}, ErrInvalidBracket
	}
	if math.IsInf(b-a, 0) {
		return Result{}, fmt.Errorf("[%g, %g]: %w: %w", a, b, ErrInvalidBracket, ErrBracketOverflow)
	}

	// Stage 2: Bolzano precondition on the initial bracket
	fa, err := evaluate(f, a)
	if err != nil {
		return Result{}, &EvaluationError{Point: PointA, X: a, Err: err}
	}
	fb, err := evaluate(f, b)
	if err != nil {
		return Result{}, &EvaluationError{Point: PointB, X: b, Err: err}
	}
	if fa*fb > 0 {
		return Result{}, &NoSignChangeError{A: a, B: b, FA: fa, FB: fb}
	}

	precision := opts.Precision

	// Stage 3: an endpoint may already be a root
	if math.Abs(fa) < precision {
		return endpointRoot(start, a, fa, b, fb, a, fa), nil
	}
	if math.Abs(fb) < precision {
		return endpointRoot(start, a, fa, b, fb, b, fb), nil
	}

	// Stage 4: bisection loop
	var (
		xa, xb     = a, b
		width      = math.Abs(b - a)
		iteration  int
		iterations = make([]Iteration, 0, estimateIterations(width, precision, opts.MaxIterations))
		loopErr    error
	)
	for width > precision && iteration < opts.MaxIterations {
		iteration++
		xn := midpoint(xa, xb)

		fxa, fxb, fxn, perr := evaluateTriple(f, xa, xb, xn, iteration)
		if perr != nil {
			loopErr = perr
			break
		}

		iterations = append(iterations, Iteration{
			Index: iteration,
			XA:    xa,
			FXA:   fxa,
			XB:    xb,
			FXB:   fxb,
			XN:    xn,
			FXN:   fxn,
			Error: width,
		})

		if math.Abs(fxn) < precision {
			width = 0
			break
		}
		if fxa*fxn < 0 {
			xb = xn
		} else {
			xa = xn
		}

		width = math.Abs(xb - xa)
	}

	// Stage 5: finalize; converged by bracket width or by |f(root)|
	root := midpoint(xa, xb)
	converged := width <= precision
	if !converged {
		if fr, ferr := evaluate(f, root); ferr == nil && math.Abs(fr) < precision {
			converged = true
		}
	}

	return Result{
		Root:       root,
		HasRoot:    isFinite(root),
		Iterations: iterations,
		Stats: Stats{
			Elapsed:         time.Since(start),
			Converged:       converged,
			FinalError:      width,
			TotalIterations: iteration,
		},
	}, loopErr
}

// endpointRoot builds the fast-path result for a bracket endpoint that is
// already within tolerance.
func endpointRoot(start time.Time, a, fa, b, fb, x, fx float64) Result {
	return Result{
		Root:    x,
		HasRoot: true,
		Iterations: []Iteration{{
			Index: 0,
			XA:    a,
			FXA:   fa,
			XB:    b,
			FXB:   fb,
			XN:    x,
			FXN:   fx,
			Error: 0,
		}},
		Stats: Stats{
			Elapsed:         time.Since(start),
			Converged:       true,
			FinalError:      0,
			TotalIterations: 0,
		},
	}
}

// evaluateTriple evaluates f at the bracket ends and the midpoint of one pass.
func evaluateTriple(f Func, xa, xb, xn float64, iteration int) (fxa, fxb, fxn float64, err error) {
	if fxa, err = evaluate(f, xa); err != nil {
		return 0, 0, 0, &EvaluationError{Point: PointXA, X: xa, Iteration: iteration, Err: err}
	}
	if fxb, err = evaluate(f, xb); err != nil {
		return 0, 0, 0, &EvaluationError{Point: PointXB, X: xb, Iteration: iteration, Err: err}
	}
	if fxn, err = evaluate(f, xn); err != nil {
		return 0, 0, 0, &EvaluationError{Point: PointXN, X: xn, Iteration: iteration, Err: err}
	}

	return fxa, fxb, fxn, nil
}

// evaluate calls f and converts a non-finite value into ErrNonFinite.
func evaluate(f Func, x float64) (float64, error) {
	y, err := f(x)
	if err != nil {
		return 0, err
	}
	if !isFinite(y) {
		return 0, fmt.Errorf("f(%g) = %g: %w", x, y, ErrNonFinite)
	}

	return y, nil
}

func validate(f Func, opts Options) error {
	if f == nil {
		return fmt.Errorf("nil function: %w", ErrBadOptions)
	}
	if !isFinite(opts.Precision) || opts.Precision <= 0 {
		return fmt.Errorf("precision %g must be finite and > 0: %w", opts.Precision, ErrBadOptions)
	}
	if opts.MaxIterations < 0 {
		return fmt.Errorf("max iterations %d must be >= 0: %w", opts.MaxIterations, ErrBadOptions)
	}

	return nil
}

// estimateIterations bounds the trace capacity by ⌈log2(width/precision)⌉.
func estimateIterations(width, precision float64, limit int) int {
	steps := math.Ceil(math.Log2(width / precision))
	if math.IsInf(steps, 0) || math.IsNaN(steps) || steps+1 > float64(limit) {
		return limit
	}
	n := int(steps) + 1
	if n < 0 {
		return 0
	}

	return n
}

// midpoint returns the center of [xa, xb] without overflowing near ±MaxFloat64.
func midpoint(xa, xb float64) float64 { return xa/2 + xb/2 }

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
