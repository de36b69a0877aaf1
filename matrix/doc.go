// Package matrix offers the augmented-matrix representation consumed by the
// Gaussian elimination solver.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set, row
//     swaps and deep cloning.
//   - Augmented, an immutable n×(n+1) system [A|b] whose shape and
//     finiteness are validated at construction time.
//   - ParseAugmented / ParseRows / LoadYAML for building systems from raw
//     text fields, compact strings or YAML documents. A non-numeric cell is
//     reported as *EntryError with its 1-indexed position.
//
// Construction errors are returned immediately, before any solver state
// exists; the solvers themselves never see a malformed matrix.
package matrix
