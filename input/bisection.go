// SPDX-License-Identifier: MIT

package input

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/vcm/bisection"
	"github.com/katalvlaran/vcm/expression"
)

// Bounds for the iteration cap accepted from a form.
const (
	MinIterations = 1
	MaxIterations = 1000
)

// Field names reported by FieldError.
const (
	FieldFormula       = "function"
	FieldA             = "a"
	FieldB             = "b"
	FieldPrecision     = "precision"
	FieldMaxIterations = "max-iterations"
)

// BisectionForm holds the raw text of the bisection form.
type BisectionForm struct {
	Formula       string
	A             string
	B             string
	Precision     string
	MaxIterations string
}

// DefaultBisectionForm returns the initial form content.
func DefaultBisectionForm() BisectionForm {
	return BisectionForm{
		Formula:       bisection.Presets()[0].Formula,
		A:             "0",
		B:             "3",
		Precision:     strconv.FormatFloat(bisection.DefaultPrecision, 'g', -1, 64),
		MaxIterations: strconv.Itoa(bisection.DefaultMaxIterations),
	}
}

// BisectionParams is a validated bisection request.
type BisectionParams struct {
	Function *expression.Function
	A, B     float64
	Options  bisection.Options
}

// Bisection validates form.
//
// Order:
//  1. a, b, precision and max-iterations must parse (ErrNotNumeric).
//  2. precision > 0 (ErrPrecision).
//  3. MinIterations ≤ max-iterations ≤ MaxIterations (ErrIterations).
//  4. the formula compiles (expression.ErrEmptyFormula, expression.ErrCompile).
//
// The bracket order is not checked here; the solver reports it.
func Bisection(form BisectionForm) (BisectionParams, error) {
	a, err := parseFloat(FieldA, form.A)
	if err != nil {
		return BisectionParams{}, err
	}
	b, err := parseFloat(FieldB, form.B)
	if err != nil {
		return BisectionParams{}, err
	}
	precision, err := parseFloat(FieldPrecision, form.Precision)
	if err != nil {
		return BisectionParams{}, err
	}
	maxIter, err := strconv.Atoi(strings.TrimSpace(form.MaxIterations))
	if err != nil {
		return BisectionParams{}, &FieldError{Field: FieldMaxIterations, Raw: form.MaxIterations, Err: ErrNotNumeric}
	}

	if precision <= 0 {
		return BisectionParams{}, &FieldError{Field: FieldPrecision, Raw: form.Precision, Err: ErrPrecision}
	}
	if maxIter < MinIterations || maxIter > MaxIterations {
		return BisectionParams{}, &FieldError{Field: FieldMaxIterations, Raw: form.MaxIterations, Err: ErrIterations}
	}

	fn, err := expression.Compile(form.Formula)
	if err != nil {
		return BisectionParams{}, &FieldError{Field: FieldFormula, Raw: form.Formula, Err: err}
	}

	return BisectionParams{
		Function: fn,
		A:        a,
		B:        b,
		Options:  bisection.Options{Precision: precision, MaxIterations: maxIter},
	}, nil
}

// parseFloat accepts finite decimal or exponent notation, ignoring blanks.
func parseFloat(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &FieldError{Field: field, Raw: raw, Err: ErrNotNumeric}
	}

	return v, nil
}
