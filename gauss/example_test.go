package gauss_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vcm/gauss"
	"github.com/katalvlaran/vcm/matrix"
)

// ExampleSolve solves the classic 3×3 textbook system.
//
// Scenario:
//
//	 2x +  y −  z =   8
//	−3x −  y + 2z = −11
//	−2x +  y + 2z =  −3
//
// Partial pivoting swaps twice before the triangular form is reached.
func ExampleSolve() {
	m, _ := matrix.NewAugmented([][]float64{
		{2, 1, -1, 8},
		{-3, -1, 2, -11},
		{-2, 1, 2, -3},
	})

	res, err := gauss.Solve(m, gauss.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, st := range res.Steps {
		if st.Pivot != "" {
			fmt.Printf("%d %s %s\n", st.Stage, st.Kind, st.Pivot)
			continue
		}
		fmt.Printf("%d %s\n", st.Stage, st.Kind)
	}
	for i, x := range res.Solution {
		fmt.Printf("x%d = %.6f\n", i+1, x)
	}
	fmt.Printf("det = %.6f\n", res.Determinant)
	// Output:
	// 0 initial
	// 1 swap
	// 1 elimination a_{1,1} = -3.0000
	// 2 swap
	// 2 elimination a_{2,2} = 1.6667
	// 3 final
	// x1 = 2.000000
	// x2 = 3.000000
	// x3 = -1.000000
	// det = -1.000000
}

// ExampleSolve_singular shows the failure for a zero pivot column.
func ExampleSolve_singular() {
	m, _ := matrix.NewAugmented([][]float64{{0, 0, 1}, {0, 0, 2}})

	_, err := gauss.Solve(m, gauss.Options{})
	var se *gauss.SingularMatrixError
	if errors.As(err, &se) {
		fmt.Println(se.Row, se.Col, errors.Is(err, gauss.ErrSingular))
	}
	fmt.Println(gauss.Determinant(m))
	// Output:
	// 1 1 true
	// 0
}
