// Package gauss solves square linear systems A·x = b by Gaussian elimination
// with partial pivoting and records every structural transformation as an
// immutable snapshot.
//
// What:
//
//   - Solve reduces an augmented matrix [A|b] to upper triangular form and
//     recovers x by back-substitution.
//   - Each pivot column k = 0 … n-2 selects the row with the largest |A[i][k]|
//     among rows k … n-1, swaps it into place, rejects pivots with
//     |A[k][k]| < Epsilon and eliminates the entries below it. Entries whose
//     magnitude falls under Epsilon after an update are snapped to 0.
//   - Determinant runs a second, independent elimination pass without
//     pivoting on the coefficient sub-matrix only, so no swap parity needs
//     tracking. A pivot below Epsilon reports a determinant of exactly 0.
//   - Residual measures ‖A·x − b‖∞ with gonum.
//
// Steps:
//
//	Stage 0        initial [A|b]
//	Stage k+1      row swap (when the pivot row moved), then the column's
//	               post-elimination state with its pivot annotation
//	Stage n        final upper triangular form
//
// Tracing is observational only: Options.TraceSteps never changes Solution.
//
// Back-substitution does not re-apply the Epsilon threshold. The last
// diagonal entry is never inspected by the elimination loop; when it is
// exactly zero the division would produce Inf or NaN, which Solve reports as
// a *SingularMatrixError at that position instead.
//
// Complexity: O(n³) time, O(n²) memory per snapshot.
package gauss
