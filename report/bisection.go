// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/vcm/bisection"
	"github.com/katalvlaran/vcm/format"
)

// Bisection is everything WriteBisection needs about one run.
// F is used to show f(root); it may be nil.
type Bisection struct {
	Formula string
	Result  bisection.Result
	Err     error
	F       func(float64) (float64, error)
}

// Column headers of the iteration table.
var iterationHeader = []string{"n", "xa", "f(xa)", "xb", "f(xb)", "xn", "f(xn)", "error"}

// WriteBisection prints the iteration table, the root summary and, when the
// run failed, the error message. A partial result is shown before its error.
func WriteBisection(w io.Writer, r Bisection) {
	if r.Formula != "" {
		fmt.Fprintf(w, "f(x) = %s\n\n", r.Formula)
	}

	if r.Result.HasRoot || r.Err == nil {
		WriteIterations(w, r.Result.Iterations)
		fmt.Fprintln(w)
	}

	if r.Result.HasRoot {
		writeRoot(w, r)
	}

	if r.Err != nil {
		fmt.Fprintf(w, "Error: %s\n", Message(r.Err))
	}
}

// WriteIterations prints one table row per iteration: x values with 6
// decimals, function values and the error in scientific notation.
func WriteIterations(w io.Writer, its []bisection.Iteration) {
	if len(its) == 0 {
		fmt.Fprintln(w, "No iterations performed")

		return
	}

	t := NewListTable(w)
	t.SetHeader(iterationHeader)
	for _, it := range its {
		t.Append([]string{
			strconv.Itoa(it.Index),
			format.Number(it.XA, 6),
			format.Scientific(it.FXA, 4),
			format.Number(it.XB, 6),
			format.Scientific(it.FXB, 4),
			format.Number(it.XN, 6),
			format.Scientific(it.FXN, 4),
			format.Scientific(it.Error, 4),
		})
	}
	t.Render()
}

func writeRoot(w io.Writer, r Bisection) {
	root := r.Result.Root
	stats := r.Result.Stats

	value := "cannot evaluate f(root)"
	if r.F != nil {
		if y, err := r.F(root); err == nil {
			value = fmt.Sprintf("f(%s) = %s", format.Number(root, 6), format.Scientific(y, 8))
		}
	}

	status := "converged"
	if !stats.Converged {
		status = "not converged"
	}

	t := NewDetailsTable(w)
	t.AppendBulk([][]string{
		{"Root:", format.Number(root, 10)},
		{"Value:", value},
		{"Time:", format.Duration(stats.Elapsed)},
		{"Iterations:", strconv.Itoa(stats.TotalIterations)},
		{"Status:", status},
		{"Final error:", format.Scientific(stats.FinalError, 4)},
	})
	t.Render()
}
