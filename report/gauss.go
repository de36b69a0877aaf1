// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/katalvlaran/vcm/format"
	"github.com/katalvlaran/vcm/gauss"
)

// Gauss is everything WriteGauss needs about one run.
// Residual is shown when non-nil.
type Gauss struct {
	Result    gauss.Result
	Err       error
	ShowSteps bool
	Residual  *float64
}

// WriteGauss prints the elimination steps (when requested), then either the
// solution and determinant or the error message. Steps recorded before a
// failure are still printed.
func WriteGauss(w io.Writer, g Gauss) {
	if g.ShowSteps {
		for _, st := range g.Result.Steps {
			WriteStep(w, st)
		}
	}

	if g.Err != nil {
		fmt.Fprintf(w, "Error: %s\n", Message(g.Err))

		return
	}

	fmt.Fprintln(w, "Solution:")
	rows := make([][]string, 0, len(g.Result.Solution)+2)
	for i, x := range g.Result.Solution {
		rows = append(rows, []string{fmt.Sprintf("x%d =", i+1), format.Number(x, 6)})
	}
	if g.Result.HasDeterminant {
		rows = append(rows, []string{"Determinant:", format.Number(g.Result.Determinant, 6)})
	}
	if g.Residual != nil {
		rows = append(rows, []string{"Residual ‖Ax−b‖∞:", format.Scientific(*g.Residual, 2)})
	}
	t := NewDetailsTable(w)
	t.AppendBulk(rows)
	t.Render()
}

// WriteStep prints one snapshot: title, description, the matrix with a "|"
// before the right-hand side and the pivot annotation when present.
func WriteStep(w io.Writer, st gauss.Step) {
	fmt.Fprintf(w, "[%d] %s\n%s\n", st.Stage, st.Title, st.Description)
	WriteMatrix(w, st.Matrix)
	if st.Pivot != "" {
		fmt.Fprintf(w, "Pivot: %s\n", st.Pivot)
	}
	fmt.Fprintln(w)
}

// WriteMatrix prints an augmented matrix, one row per line.
func WriteMatrix(w io.Writer, rows [][]float64) {
	t := NewMatrixTable(w)
	for _, cells := range format.Matrix(rows) {
		if len(cells) == 0 {
			continue
		}
		last := len(cells) - 1
		line := make([]string, 0, len(cells)+1)
		line = append(line, cells[:last]...)
		line = append(line, "|", cells[last])
		t.Append(line)
	}
	t.Render()
}
