// Package vcm is a small numerical-methods workbench: it finds roots of
// real functions by bisection and solves linear systems by Gaussian
// elimination, recording every step so the methods can be followed by hand.
//
// 🚀 What is in vcm?
//
//	• Bisection: bracket validation, Bolzano check, full iteration trace
//	• Gaussian elimination: partial pivoting, step snapshots, determinant
//	• Expressions: f(x) formulas such as "exp(x/10) - 3" compiled once
//	• Reports: iteration tables, matrices, user-facing error messages
//	• Charts: f(x) with the bracket and root as HTML, PNG or SVG
//
// Everything is organized under these packages:
//
//	bisection/  the root finder, its options, trace and presets
//	gauss/      elimination, determinant, residual and example systems
//	matrix/     Dense storage and the validated augmented system [A|b]
//	expression/ formula normalization and compilation
//	input/      raw form text to validated solver parameters
//	format/     number formatting shared by reports
//	report/     text rendering of results and errors
//	chart/      function sampling and chart rendering
//	cli/        the vcm command (cmd/vcm)
//
// Quick start:
//
//	f := expression.MustCompile("x^2 - 4")
//	res, err := bisection.Solve(f.Func(), 0, 3, bisection.DefaultOptions())
//
//	sys, _ := matrix.NewAugmented([][]float64{{2, 1, 5}, {1, -1, 1}})
//	out, err := gauss.Solve(sys, gauss.DefaultOptions())
package vcm
