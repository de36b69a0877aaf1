package input

import (
	"fmt"

	"github.com/katalvlaran/vcm/matrix"
)

// MatrixForm holds the raw cells of an n×(n+1) input grid.
type MatrixForm struct {
	Size  int
	Cells [][]string
}

// DefaultMatrixForm returns a grid of the given size filled the way a fresh
// form is: identity coefficients and b = 1.
func DefaultMatrixForm(size int) MatrixForm {
	cells := make([][]string, size)
	for i := range cells {
		cells[i] = make([]string, size+1)
		for j := range cells[i] {
			cells[i][j] = "0"
		}
		if size > 0 {
			cells[i][i] = "1"
			cells[i][size] = "1"
		}
	}

	return MatrixForm{Size: size, Cells: cells}
}

// Matrix validates form into an augmented system.
//
// Errors: ErrSize, matrix.ErrBadShape when the grid does not match Size,
// *matrix.EntryError for the first cell that is not a number.
func Matrix(form MatrixForm) (*matrix.Augmented, error) {
	if form.Size < matrix.MinSize || form.Size > matrix.MaxSize {
		return nil, fmt.Errorf("size %d not in [%d, %d]: %w", form.Size, matrix.MinSize, matrix.MaxSize, ErrSize)
	}
	if len(form.Cells) != form.Size {
		return nil, fmt.Errorf("grid has %d rows, size is %d: %w", len(form.Cells), form.Size, matrix.ErrBadShape)
	}

	return matrix.ParseAugmented(form.Cells)
}
