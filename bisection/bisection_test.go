package bisection_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vcm/bisection"
)

// pure adapts an infallible float function to bisection.Func.
func pure(f func(float64) float64) bisection.Func {
	return func(x float64) (float64, error) { return f(x), nil }
}

func opts(precision float64, maxIter int) bisection.Options {
	return bisection.Options{Precision: precision, MaxIterations: maxIter}
}

// TestSolve_Quadratic verifies convergence of x²−4 on [0,3] to the root 2.
func TestSolve_Quadratic(t *testing.T) {
	res, err := bisection.Solve(pure(func(x float64) float64 { return x*x - 4 }), 0, 3, opts(1e-4, 100))
	require.NoError(t, err)
	require.True(t, res.HasRoot)

	assert.InDelta(t, 2.0, res.Root, 1e-4, "root must be within tolerance of 2")
	assert.True(t, res.Stats.Converged)
	assert.LessOrEqual(t, res.Stats.TotalIterations, 15, "3/2^15 < 1e-4")
	assert.Len(t, res.Iterations, res.Stats.TotalIterations)
	assert.LessOrEqual(t, res.Stats.FinalError, 1e-4)
}

// TestSolve_TraceRecordsPreUpdateError checks the error column holds the
// bracket width before each pass updated it.
func TestSolve_TraceRecordsPreUpdateError(t *testing.T) {
	f := pure(func(x float64) float64 { return x*x - 4 })
	res, err := bisection.Solve(f, 0, 3, opts(1e-4, 100))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(res.Iterations), 3)

	first := res.Iterations[0]
	assert.Equal(t, 1, first.Index)
	assert.Equal(t, 0.0, first.XA)
	assert.Equal(t, 3.0, first.XB)
	assert.Equal(t, 1.5, first.XN)
	assert.Equal(t, -4.0, first.FXA)
	assert.Equal(t, 5.0, first.FXB)
	assert.Equal(t, -1.75, first.FXN)
	assert.Equal(t, 3.0, first.Error)

	// f(0)·f(1.5) > 0 ⇒ the root lies right of 1.5.
	second := res.Iterations[1]
	assert.Equal(t, 2, second.Index)
	assert.Equal(t, 1.5, second.XA)
	assert.Equal(t, 3.0, second.XB)
	assert.Equal(t, 1.5, second.Error)

	for i, it := range res.Iterations {
		assert.Equal(t, i+1, it.Index, "indices are consecutive")
		assert.Equal(t, (it.XA+it.XB)/2, it.XN)
	}
}

// TestSolve_NoRealRoot ensures x²+1 always fails the Bolzano precondition.
func TestSolve_NoRealRoot(t *testing.T) {
	f := pure(func(x float64) float64 { return x*x + 1 })
	for _, br := range [][2]float64{{-10, 10}, {0, 1}, {-3, -1}, {-1e6, 1e6}} {
		res, err := bisection.Solve(f, br[0], br[1], bisection.DefaultOptions())
		require.ErrorIs(t, err, bisection.ErrNoSignChange)
		assert.False(t, res.HasRoot)
		assert.Empty(t, res.Iterations)

		var nsc *bisection.NoSignChangeError
		require.True(t, errors.As(err, &nsc))
		assert.Equal(t, br[0], nsc.A)
		assert.Equal(t, br[1], nsc.B)
		assert.Equal(t, br[0]*br[0]+1, nsc.FA)
		assert.Equal(t, br[1]*br[1]+1, nsc.FB)
	}
}

// TestSolve_InvalidBracket covers reversed, empty and non-finite brackets.
func TestSolve_InvalidBracket(t *testing.T) {
	calls := 0
	f := func(x float64) (float64, error) { calls++; return x, nil }

	cases := [][2]float64{{3, 0}, {1, 1}, {math.NaN(), 1}, {0, math.Inf(1)}}
	for _, c := range cases {
		res, err := bisection.Solve(f, c[0], c[1], bisection.DefaultOptions())
		assert.ErrorIs(t, err, bisection.ErrInvalidBracket, "bracket %v", c)
		assert.False(t, res.HasRoot)
	}
	assert.Zero(t, calls, "f must not be evaluated for an invalid bracket")
}

// TestSolve_BracketWidthOverflow rejects finite bounds whose distance is not
// representable, before f is evaluated.
func TestSolve_BracketWidthOverflow(t *testing.T) {
	calls := 0
	f := func(x float64) (float64, error) { calls++; return x, nil }

	res, err := bisection.Solve(f, -1.7e308, 1.7e308, opts(1e-4, 3))
	assert.ErrorIs(t, err, bisection.ErrInvalidBracket)
	assert.ErrorIs(t, err, bisection.ErrBracketOverflow)
	assert.False(t, res.HasRoot)
	assert.Empty(t, res.Iterations)
	assert.Zero(t, calls)
}

// TestSolve_HugeBracketStaysFinite bisects a bracket whose bounds sum past
// MaxFloat64; midpoints, widths and the root must all stay finite.
func TestSolve_HugeBracketStaysFinite(t *testing.T) {
	f := pure(func(x float64) float64 { return x - 1.5e308 })
	res, err := bisection.Solve(f, 1e308, 1.7e308, opts(1e-4, 100))
	require.NoError(t, err)
	require.True(t, res.HasRoot)

	assert.False(t, math.IsInf(res.Root, 0) || math.IsNaN(res.Root), "root %g", res.Root)
	assert.InEpsilon(t, 1.5e308, res.Root, 1e-9)
	assert.Equal(t, 1.35e308, res.Iterations[0].XN, "first midpoint")
	for _, it := range res.Iterations {
		assert.False(t, math.IsInf(it.XN, 0), "iteration %d midpoint", it.Index)
		assert.False(t, math.IsInf(it.Error, 0), "iteration %d error", it.Index)
	}
	assert.False(t, math.IsInf(res.Stats.FinalError, 0))
}

// TestSolve_BadOptions verifies option validation.
func TestSolve_BadOptions(t *testing.T) {
	f := pure(func(x float64) float64 { return x })

	_, err := bisection.Solve(f, -1, 1, opts(0, 10))
	assert.ErrorIs(t, err, bisection.ErrBadOptions)
	_, err = bisection.Solve(f, -1, 1, opts(math.NaN(), 10))
	assert.ErrorIs(t, err, bisection.ErrBadOptions)
	_, err = bisection.Solve(f, -1, 1, opts(1e-3, -1))
	assert.ErrorIs(t, err, bisection.ErrBadOptions)
	_, err = bisection.Solve(nil, -1, 1, bisection.DefaultOptions())
	assert.ErrorIs(t, err, bisection.ErrBadOptions)
}

// TestSolve_EndpointFastPath checks that an endpoint within tolerance is
// returned immediately with a single zero-error record.
func TestSolve_EndpointFastPath(t *testing.T) {
	t.Run("lower", func(t *testing.T) {
		res, err := bisection.Solve(pure(func(x float64) float64 { return x }), 0, 1, bisection.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.Root)
		require.Len(t, res.Iterations, 1)
		assert.Equal(t, bisection.Iteration{Index: 0, XA: 0, FXA: 0, XB: 1, FXB: 1, XN: 0, FXN: 0, Error: 0}, res.Iterations[0])
		assert.True(t, res.Stats.Converged)
		assert.Zero(t, res.Stats.TotalIterations)
		assert.Zero(t, res.Stats.FinalError)
	})
	t.Run("upper", func(t *testing.T) {
		res, err := bisection.Solve(pure(func(x float64) float64 { return x - 1 }), 0, 1, bisection.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, 1.0, res.Root)
		require.Len(t, res.Iterations, 1)
		assert.Equal(t, 1.0, res.Iterations[0].XN)
		assert.True(t, res.Stats.Converged)
	})
}

// TestSolve_ExactMidpoint stops as soon as f(xn) is within tolerance.
func TestSolve_ExactMidpoint(t *testing.T) {
	res, err := bisection.Solve(pure(func(x float64) float64 { return x - 1.5 }), 0, 3, bisection.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1.5, res.Root)
	assert.Equal(t, 1, res.Stats.TotalIterations)
	assert.Zero(t, res.Stats.FinalError)
	assert.True(t, res.Stats.Converged)
}

// TestSolve_IterationCap exhausts the budget without meeting the tolerance.
func TestSolve_IterationCap(t *testing.T) {
	res, err := bisection.Solve(pure(func(x float64) float64 { return x*x - 2 }), 0, 3, opts(1e-12, 5))
	require.NoError(t, err)
	assert.Equal(t, 5, res.Stats.TotalIterations)
	assert.Len(t, res.Iterations, 5)
	assert.Equal(t, 3.0/32, res.Stats.FinalError)
	assert.False(t, res.Stats.Converged)
}

// TestSolve_ZeroIterations returns the midpoint of the untouched bracket.
func TestSolve_ZeroIterations(t *testing.T) {
	res, err := bisection.Solve(pure(func(x float64) float64 { return x - 0.3 }), 0, 1, opts(1e-6, 0))
	require.NoError(t, err)
	assert.Equal(t, 0.5, res.Root)
	assert.Empty(t, res.Iterations)
	assert.Equal(t, 1.0, res.Stats.FinalError)
	assert.False(t, res.Stats.Converged)
}

// TestSolve_FunctionValueConvergence shows the second convergence criterion:
// the bracket is still wide but f(root) is already within tolerance.
func TestSolve_FunctionValueConvergence(t *testing.T) {
	res, err := bisection.Solve(pure(func(x float64) float64 { return x - 0.75 }), 0, 1, opts(1e-4, 1))
	require.NoError(t, err)
	assert.Equal(t, 0.75, res.Root)
	assert.Equal(t, 0.5, res.Stats.FinalError, "width criterion alone is not met")
	assert.True(t, res.Stats.Converged, "|f(root)| < precision must count as convergence")
}

// TestSolve_ZeroProductMovesLowerBound documents the tie-break: when
// f(xa)·f(xn) is not strictly negative (here it underflows to −0) the lower
// bound moves, even though the root lies in the left half.
func TestSolve_ZeroProductMovesLowerBound(t *testing.T) {
	f := pure(func(x float64) float64 { return 1e-200 * (x - 0.25) })
	res, err := bisection.Solve(f, 0, 1, opts(1e-300, 2))
	require.NoError(t, err)
	require.Len(t, res.Iterations, 2)
	assert.Equal(t, 0.5, res.Iterations[1].XA, "xa := xn on a zero product")
	assert.Equal(t, 1.0, res.Iterations[1].XB)
}

// TestSolve_EndpointEvaluationError reports the failing endpoint.
func TestSolve_EndpointEvaluationError(t *testing.T) {
	cause := errors.New("domain error")
	f := func(x float64) (float64, error) {
		if x == 2 {
			return 0, cause
		}
		return x - 1, nil
	}

	res, err := bisection.Solve(f, 0, 2, bisection.DefaultOptions())
	require.ErrorIs(t, err, bisection.ErrEvaluation)
	require.ErrorIs(t, err, cause)
	assert.False(t, res.HasRoot)

	var ee *bisection.EvaluationError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, bisection.PointB, ee.Point)
	assert.Equal(t, 2.0, ee.X)
	assert.Zero(t, ee.Iteration)
}

// TestSolve_NonFiniteEndpoint converts ±Inf into an evaluation failure.
func TestSolve_NonFiniteEndpoint(t *testing.T) {
	res, err := bisection.Solve(pure(func(x float64) float64 { return 1 / x }), 0, 1, bisection.DefaultOptions())
	require.ErrorIs(t, err, bisection.ErrEvaluation)
	assert.ErrorIs(t, err, bisection.ErrNonFinite)
	assert.False(t, res.HasRoot)

	var ee *bisection.EvaluationError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, bisection.PointA, ee.Point)
}

// TestSolve_PartialResultOnLoopFailure keeps the gathered trace when a
// midpoint evaluation fails.
func TestSolve_PartialResultOnLoopFailure(t *testing.T) {
	f := func(x float64) (float64, error) {
		if x == 0.75 {
			return math.NaN(), nil
		}
		return x - 0.9, nil
	}

	res, err := bisection.Solve(f, 0, 1, bisection.DefaultOptions())
	require.ErrorIs(t, err, bisection.ErrEvaluation)

	var ee *bisection.EvaluationError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, bisection.PointXN, ee.Point)
	assert.Equal(t, 0.75, ee.X)
	assert.Equal(t, 2, ee.Iteration)

	assert.True(t, res.HasRoot, "partial result must still carry the bracket midpoint")
	assert.Equal(t, 0.75, res.Root)
	assert.Len(t, res.Iterations, 1)
	assert.Equal(t, 2, res.Stats.TotalIterations)
	assert.Equal(t, 0.5, res.Stats.FinalError)
	assert.False(t, res.Stats.Converged)
}

// TestSolve_ConvergesOrExhausts checks the core property on several functions:
// either |f(root)| < precision or the iteration budget was spent, unless the
// bracket width criterion stopped the loop.
func TestSolve_ConvergesOrExhausts(t *testing.T) {
	fns := []struct {
		name string
		f    func(float64) float64
		a, b float64
	}{
		{"cubic", func(x float64) float64 { return x*x*x - x - 2 }, 1, 2},
		{"cosine", func(x float64) float64 { return math.Cos(x) - x }, 0, 1},
		{"exp", func(x float64) float64 { return math.Exp(x/10) - 3 }, 0, 40},
		{"sine", math.Sin, 3, 4},
	}
	for _, tc := range fns {
		for _, maxIter := range []int{1, 5, 50, 1000} {
			o := opts(1e-6, maxIter)
			res, err := bisection.Solve(pure(tc.f), tc.a, tc.b, o)
			require.NoError(t, err, tc.name)
			ok := math.Abs(tc.f(res.Root)) < o.Precision ||
				res.Stats.TotalIterations == maxIter ||
				res.Stats.FinalError <= o.Precision
			assert.True(t, ok, "%s/%d: stopped early without meeting a criterion", tc.name, maxIter)
			assert.GreaterOrEqual(t, res.Root, tc.a)
			assert.LessOrEqual(t, res.Root, tc.b)
		}
	}
}

// TestSolve_Idempotent runs the solver twice and compares everything but time.
func TestSolve_Idempotent(t *testing.T) {
	f := pure(func(x float64) float64 { return math.Exp(x/10) - 3 })
	r1, err1 := bisection.Solve(f, 0, 40, bisection.DefaultOptions())
	r2, err2 := bisection.Solve(f, 0, 40, bisection.DefaultOptions())
	require.NoError(t, err1)
	require.NoError(t, err2)

	r1.Stats.Elapsed, r2.Stats.Elapsed = 0, 0
	assert.Equal(t, r1, r2)
	assert.InDelta(t, 10*math.Log(3), r1.Root, 1e-3)
}

// TestPresets verifies every preset brackets a sign change.
func TestPresets(t *testing.T) {
	fns := map[string]func(float64) float64{
		"quadratic":   func(x float64) float64 { return x*x - 4 },
		"exponential": func(x float64) float64 { return math.Exp(x/10) - 3 },
		"cubic":       func(x float64) float64 { return x*x*x - x - 2 },
		"fixed-point": func(x float64) float64 { return math.Cos(x) - x },
		"sine":        math.Sin,
	}
	presets := bisection.Presets()
	require.Len(t, presets, len(fns))
	assert.Equal(t, "x^2 - 4", presets[0].Formula, "first preset is the form default")

	for _, p := range presets {
		f, ok := fns[p.Name]
		require.True(t, ok, p.Name)
		_, err := bisection.Solve(pure(f), p.A, p.B, bisection.DefaultOptions())
		assert.NoError(t, err, p.Name)
	}

	got, ok := bisection.LookupPreset("cubic")
	assert.True(t, ok)
	assert.Equal(t, "x^3 - x - 2", got.Formula)
	_, ok = bisection.LookupPreset("missing")
	assert.False(t, ok)
}
