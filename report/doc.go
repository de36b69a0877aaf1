// Package report is the presentation layer of vcm. It turns solver results
// and failures into the text a user reads: iteration tables, elimination
// step blocks, the solution summary and one-sentence error messages.
//
// Solvers never print. Everything user-visible is produced here from plain
// result values.
package report
