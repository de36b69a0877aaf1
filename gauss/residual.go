package gauss

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vcm/matrix"
)

// Residual returns ‖A·x − b‖∞ for the system m and a candidate solution x.
// It is a quality measure for a computed solution and is independent of the
// elimination code path.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(x) != n.
func Residual(m *matrix.Augmented, x []float64) (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	n := m.Size()
	if len(x) != n {
		return 0, fmt.Errorf("Residual: solution has %d entries, want %d: %w", len(x), n, ErrDimensionMismatch)
	}

	a := mat.NewDense(n, n, flatten(m.Coefficients()))
	xv := mat.NewVecDense(n, append([]float64(nil), x...))

	var r mat.VecDense
	r.MulVec(a, xv)
	r.SubVec(&r, mat.NewVecDense(n, m.RHS()))

	return mat.Norm(&r, math.Inf(1)), nil
}

func flatten(rows [][]float64) []float64 {
	out := make([]float64, 0, len(rows)*len(rows))
	for _, row := range rows {
		out = append(out, row...)
	}

	return out
}
