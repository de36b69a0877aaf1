// Package input validates raw text fields, as typed into a form or passed as
// command-line flags, into the typed parameters the solvers accept.
//
// Validation happens before any solver runs. Numeric fields are checked
// first, then their ranges, then the formula is compiled; the first failure
// is returned. Field-level failures are reported as *FieldError naming the
// field.
package input
