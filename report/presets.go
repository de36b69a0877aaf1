package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/vcm/bisection"
	"github.com/katalvlaran/vcm/format"
	"github.com/katalvlaran/vcm/gauss"
)

// WritePresets lists the built-in functions with their brackets and the
// example systems in the compact row syntax accepted by --matrix.
func WritePresets(w io.Writer, fns []bisection.Preset, systems []gauss.Preset) {
	fmt.Fprintln(w, "Functions:")
	t := NewListTable(w)
	t.SetHeader([]string{"name", "f(x)", "a", "b"})
	for _, p := range fns {
		t.Append([]string{p.Name, p.Formula, format.Number(p.A, 0), format.Number(p.B, 0)})
	}
	t.Render()

	fmt.Fprintln(w, "\nSystems:")
	t = NewListTable(w)
	t.SetHeader([]string{"name", "[A|b]"})
	for _, p := range systems {
		rows := make([]string, len(p.Rows))
		for i, row := range p.Rows {
			cells := make([]string, len(row))
			for j, v := range row {
				cells[j] = fmt.Sprintf("%g", v)
			}
			rows[i] = strings.Join(cells, ",")
		}
		t.Append([]string{p.Name, strings.Join(rows, "; ")})
	}
	t.Render()
}
