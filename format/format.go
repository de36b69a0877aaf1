// SPDX-License-Identifier: MIT

package format

import (
	"math"
	"strconv"
	"time"
)

// NotAvailable is printed in place of NaN and ±Inf.
const NotAvailable = "N/A"

// CellEpsilon is the magnitude below which a matrix cell prints as "0".
const CellEpsilon = 1e-10

// Number formats v in fixed notation with the given number of decimals.
func Number(v float64, decimals int) string {
	if !finite(v) {
		return NotAvailable
	}

	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// Scientific formats v in exponential notation with the given number of
// decimals, e.g. Scientific(1234.5, 4) == "1.2345e+03".
func Scientific(v float64, decimals int) string {
	if !finite(v) {
		return NotAvailable
	}

	return strconv.FormatFloat(v, 'e', decimals, 64)
}

// Cell formats a matrix entry: "0" for |v| < CellEpsilon, else 4 decimals.
func Cell(v float64) string {
	if finite(v) && math.Abs(v) < CellEpsilon {
		return "0"
	}

	return Number(v, 4)
}

// Matrix formats every entry of rows with Cell.
func Matrix(rows [][]float64) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = Cell(v)
		}
	}

	return out
}

// Duration formats d in milliseconds with two decimals.
func Duration(d time.Duration) string {
	return Number(float64(d)/float64(time.Millisecond), 2) + " ms"
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
