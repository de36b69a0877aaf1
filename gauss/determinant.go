// SPDX-License-Identifier: MIT

package gauss

import (
	"math"

	"github.com/katalvlaran/vcm/matrix"
)

// Determinant returns det(A) for the coefficient part of m.
//
// It runs its own elimination without pivoting on a copy of A, so the sign
// needs no swap-parity bookkeeping. If a pivot A[k][k] (k < n-1) has
// magnitude below Epsilon when a row beneath it is about to be reduced, the
// determinant is reported as exactly 0; this never fails. The result is the
// product of the remaining diagonal.
//
// The product is not range-checked and may overflow to ±Inf; Solve then
// leaves Result.HasDeterminant unset.
//
// A nil m yields 0.
//
// Complexity: O(n³) time, O(n²) memory.
func Determinant(m *matrix.Augmented) float64 {
	if m == nil {
		return 0
	}
	a := m.Coefficients()
	n := len(a)

	for k := 0; k < n-1; k++ {
		for i := k + 1; i < n; i++ {
			if math.Abs(a[k][k]) < Epsilon {
				return 0
			}
			factor := a[i][k] / a[k][k]
			for j := k; j < n; j++ {
				a[i][j] -= factor * a[k][j]
			}
		}
	}

	det := 1.0
	for i := 0; i < n; i++ {
		det *= a[i][i]
	}

	return det
}
