// Package bisection finds a root of a real function of one variable by
// interval halving, recording every pass for later display.
//
// What is bisection?
//
//	Given f continuous on [a, b] with f(a)·f(b) < 0, Bolzano's theorem
//	guarantees a root inside the bracket. Each pass evaluates the midpoint
//	and keeps the half on which f still changes sign, halving the bracket
//	width until it falls below the requested precision.
//
// Key features:
//   - per-iteration trace (xa, f(xa), xb, f(xb), xn, f(xn), error)
//   - endpoint fast path when f(a) or f(b) is already within tolerance
//   - double convergence check: bracket width OR |f(root)|
//   - partial results: an evaluation failure mid-loop keeps what was gathered
//   - structured failures (ErrInvalidBracket, *EvaluationError,
//     *NoSignChangeError); the package never prints or logs
//
// Usage:
//
//	f := func(x float64) (float64, error) { return x*x - 4, nil }
//	res, err := bisection.Solve(f, 0, 3, bisection.DefaultOptions())
//	if err != nil {
//	  // handle; res may still hold a partial trace
//	}
//	fmt.Println(res.Root, res.Stats.Converged)
//
// Complexity:
//
//   - Time:   O(min(MaxIterations, log2((b−a)/Precision))) evaluations of f
//   - Memory: one Iteration record per pass
package bisection
