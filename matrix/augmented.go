// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Size bounds accepted by the presentation layer for hand-entered systems.
const (
	MinSize = 2
	MaxSize = 10
)

// Augmented is an n×(n+1) matrix [A|b] describing n linear equations in
// n unknowns. It is immutable once constructed: every accessor returns a copy,
// so solvers may mutate what they receive without touching the caller's data.
type Augmented struct {
	n     int
	dense *Dense
}

// NewAugmented builds an augmented system from plain rows.
//
// Implementation:
//   - Stage 1: validate the n×(n+1) shape (ErrBadShape).
//   - Stage 2: validate finiteness (ErrNaNInf).
//   - Stage 3: copy rows into row-major storage; rows is never aliased.
//
// Complexity: O(n²) time and memory.
func NewAugmented(rows [][]float64) (*Augmented, error) {
	if err := ValidateAugmentedShape(rows); err != nil {
		return nil, err
	}
	if err := ValidateFinite(rows); err != nil {
		return nil, err
	}

	n := len(rows)
	d, err := NewDense(n, n+1)
	if err != nil {
		return nil, fmt.Errorf("NewAugmented: %w", err)
	}
	for i, row := range rows {
		copy(d.data[i*d.c:(i+1)*d.c], row)
	}

	return &Augmented{n: n, dense: d}, nil
}

// DefaultAugmented returns the n×n identity system with every b_i = 1,
// the initial content of a freshly generated input grid.
func DefaultAugmented(n int) (*Augmented, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n+1)
		rows[i][i] = 1
		rows[i][n] = 1
	}

	return NewAugmented(rows)
}

// Size returns n, the number of equations (and unknowns).
func (a *Augmented) Size() int { return a.n }

// ToRows returns a deep copy of [A|b] as n rows of n+1 values.
func (a *Augmented) ToRows() [][]float64 { return a.dense.ToRows() }

// Dense returns a deep copy of the underlying storage.
func (a *Augmented) Dense() *Dense { return a.dense.Clone() }

// Coefficients returns a copy of the n×n coefficient sub-matrix A.
func (a *Augmented) Coefficients() [][]float64 {
	rows := a.dense.ToRows()
	for i := range rows {
		rows[i] = rows[i][:a.n:a.n]
	}

	return rows
}

// RHS returns a copy of the right-hand side vector b.
func (a *Augmented) RHS() []float64 {
	b := make([]float64, a.n)
	for i := 0; i < a.n; i++ {
		b[i] = a.dense.data[i*a.dense.c+a.n]
	}

	return b
}

// String implements fmt.Stringer.
func (a *Augmented) String() string { return a.dense.String() }
