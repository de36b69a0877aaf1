package input_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vcm/bisection"
	"github.com/katalvlaran/vcm/expression"
	"github.com/katalvlaran/vcm/input"
	"github.com/katalvlaran/vcm/matrix"
)

// TestBisection_Default validates the initial form content.
func TestBisection_Default(t *testing.T) {
	p, err := input.Bisection(input.DefaultBisectionForm())
	require.NoError(t, err)
	assert.Equal(t, "x^2 - 4", p.Function.String())
	assert.Equal(t, 0.0, p.A)
	assert.Equal(t, 3.0, p.B)
	assert.Equal(t, bisection.DefaultOptions(), p.Options)
}

// TestBisection_Errors walks through the validation order.
func TestBisection_Errors(t *testing.T) {
	base := input.DefaultBisectionForm()
	cases := []struct {
		name   string
		mutate func(*input.BisectionForm)
		field  string
		want   error
	}{
		{"a not numeric", func(f *input.BisectionForm) { f.A = "abc" }, input.FieldA, input.ErrNotNumeric},
		{"b empty", func(f *input.BisectionForm) { f.B = " " }, input.FieldB, input.ErrNotNumeric},
		{"b infinite", func(f *input.BisectionForm) { f.B = "inf" }, input.FieldB, input.ErrNotNumeric},
		{"precision not numeric", func(f *input.BisectionForm) { f.Precision = "tiny" }, input.FieldPrecision, input.ErrNotNumeric},
		{"iterations not numeric", func(f *input.BisectionForm) { f.MaxIterations = "ten" }, input.FieldMaxIterations, input.ErrNotNumeric},
		{"precision zero", func(f *input.BisectionForm) { f.Precision = "0" }, input.FieldPrecision, input.ErrPrecision},
		{"precision negative", func(f *input.BisectionForm) { f.Precision = "-1e-3" }, input.FieldPrecision, input.ErrPrecision},
		{"iterations zero", func(f *input.BisectionForm) { f.MaxIterations = "0" }, input.FieldMaxIterations, input.ErrIterations},
		{"iterations too many", func(f *input.BisectionForm) { f.MaxIterations = "1001" }, input.FieldMaxIterations, input.ErrIterations},
		{"empty formula", func(f *input.BisectionForm) { f.Formula = "   " }, input.FieldFormula, expression.ErrEmptyFormula},
		{"bad formula", func(f *input.BisectionForm) { f.Formula = "x^^2" }, input.FieldFormula, expression.ErrCompile},
		// numeric checks run before range checks
		{"order", func(f *input.BisectionForm) { f.Precision = "0"; f.A = "?" }, input.FieldA, input.ErrNotNumeric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := base
			tc.mutate(&form)

			_, err := input.Bisection(form)
			require.ErrorIs(t, err, tc.want)

			var fe *input.FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tc.field, fe.Field)
		})
	}
}

// TestBisection_Bounds accepts the iteration range limits.
func TestBisection_Bounds(t *testing.T) {
	form := input.DefaultBisectionForm()
	for _, v := range []string{"1", " 1000 "} {
		form.MaxIterations = v
		_, err := input.Bisection(form)
		assert.NoError(t, err, v)
	}
}

// TestBisection_ReversedBracketPassesThrough leaves bracket order to the solver.
func TestBisection_ReversedBracketPassesThrough(t *testing.T) {
	form := input.DefaultBisectionForm()
	form.A, form.B = "3", "0"
	p, err := input.Bisection(form)
	require.NoError(t, err)

	_, err = bisection.Solve(p.Function.Func(), p.A, p.B, p.Options)
	assert.ErrorIs(t, err, bisection.ErrInvalidBracket)
}

// TestMatrix validates size, shape and cells.
func TestMatrix(t *testing.T) {
	form := input.DefaultMatrixForm(3)
	m, err := input.Matrix(form)
	require.NoError(t, err)
	want, _ := matrix.DefaultAugmented(3)
	assert.Equal(t, want.ToRows(), m.ToRows())

	_, err = input.Matrix(input.DefaultMatrixForm(1))
	assert.ErrorIs(t, err, input.ErrSize)
	_, err = input.Matrix(input.DefaultMatrixForm(11))
	assert.ErrorIs(t, err, input.ErrSize)

	short := input.DefaultMatrixForm(3)
	short.Cells = short.Cells[:2]
	_, err = input.Matrix(short)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	bad := input.DefaultMatrixForm(2)
	bad.Cells[1][2] = "x"
	_, err = input.Matrix(bad)
	var ee *matrix.EntryError
	require.True(t, errors.As(err, &ee))
	assert.True(t, ee.RHS)
	assert.Equal(t, 2, ee.Row)
}
