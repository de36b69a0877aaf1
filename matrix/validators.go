// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the shape and finiteness checks
//    applied while an augmented system is constructed.
//  - Return plain sentinel errors wrapped with a validator tag so call sites
//    can still match them with errors.Is.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateAugmentedShape ensures rows describe n equations with n+1 columns each.
//
// Returns ErrBadShape for empty input or any row whose length is not n+1.
// Complexity: O(n).
func ValidateAugmentedShape(rows [][]float64) error {
	n := len(rows)
	if n == 0 {
		return validatorErrorf("ValidateAugmentedShape", ErrBadShape)
	}
	for i, row := range rows {
		if len(row) != n+1 {
			return validatorErrorf("ValidateAugmentedShape",
				fmt.Errorf("row %d has %d columns, want %d: %w", i+1, len(row), n+1, ErrBadShape))
		}
	}

	return nil
}

// ValidateFinite ensures every entry is neither NaN nor ±Inf.
// Complexity: O(n·m).
func ValidateFinite(rows [][]float64) error {
	for i, row := range rows {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite",
					fmt.Errorf("entry (%d,%d): %w", i+1, j+1, ErrNaNInf))
			}
		}
	}

	return nil
}
