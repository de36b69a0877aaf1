// SPDX-License-Identifier: MIT

package bisection

import "time"

// Default solver parameters, matching the initial values of the input form.
const (
	DefaultPrecision     = 1e-4
	DefaultMaxIterations = 100
)

// Func is a real-valued function of one variable. Evaluation may fail at any
// given point; a returned error or a non-finite value is a failure for that
// call only, never for the function as a whole.
type Func func(x float64) (float64, error)

// Options configures Solve.
//
// Fields:
//   - Precision: tolerance applied to both the bracket width and |f(x)|.
//     Must be finite and > 0.
//   - MaxIterations: cap on loop passes. Must be ≥ 0; 0 skips the loop.
type Options struct {
	Precision     float64
	MaxIterations int
}

// DefaultOptions returns Options{Precision: 1e-4, MaxIterations: 100}.
func DefaultOptions() Options {
	return Options{Precision: DefaultPrecision, MaxIterations: DefaultMaxIterations}
}

// Iteration records one pass of the bisection loop.
// Error is the bracket width |xb-xa| before this pass updated the bracket.
type Iteration struct {
	Index int
	XA    float64
	FXA   float64
	XB    float64
	FXB   float64
	XN    float64
	FXN   float64
	Error float64
}

// Stats summarizes a run.
type Stats struct {
	Elapsed         time.Duration
	Converged       bool
	FinalError      float64
	TotalIterations int
}

// Result is the outcome of Solve.
//
// HasRoot is false when the solver failed before any bracket work could
// start (invalid bracket, endpoint evaluation failure, no sign change); Root
// and Stats are then zero. Iterations are in loop order and never contain a
// partially filled record.
type Result struct {
	Root       float64
	HasRoot    bool
	Iterations []Iteration
	Stats      Stats
}
