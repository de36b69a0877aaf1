// SPDX-License-Identifier: MIT

package chart

import "math"

// Sampling parameters of the plotted range.
const (
	// Samples is the number of equal steps across the range; Samples+1
	// abscissae are evaluated.
	Samples = 200
	// PaddingRatio extends the range on both sides by this share of |b−a|.
	PaddingRatio = 0.2
)

// Point is a point of the plane.
type Point struct {
	X, Y float64
}

// Data is everything needed to draw one chart.
//
// Curve holds the evaluable samples in increasing x. Bracket holds the
// evaluable endpoints among a and b. Root is nil when no root was given or
// f could not be evaluated there.
type Data struct {
	Min, Max float64
	Curve    []Point
	Bracket  []Point
	Root     *Point
}

// Sample evaluates f across [min(a,b,root)−pad, max(a,b,root)+pad] where
// pad = PaddingRatio·|b−a|. Points where f fails or returns a non-finite
// value are skipped. A nil or non-finite root is ignored.
func Sample(f func(float64) (float64, error), a, b float64, root *float64) Data {
	var r *float64
	if root != nil && finite(*root) {
		r = root
	}

	pad := math.Abs(b-a) * PaddingRatio
	lo, hi := math.Min(a, b), math.Max(a, b)
	if r != nil {
		lo, hi = math.Min(lo, *r), math.Max(hi, *r)
	}
	d := Data{Min: lo - pad, Max: hi + pad}

	step := (d.Max - d.Min) / Samples
	d.Curve = make([]Point, 0, Samples+1)
	for i := 0; i <= Samples; i++ {
		x := d.Min + float64(i)*step
		if y, ok := eval(f, x); ok {
			d.Curve = append(d.Curve, Point{X: x, Y: y})
		}
	}

	for _, x := range []float64{a, b} {
		if y, ok := eval(f, x); ok {
			d.Bracket = append(d.Bracket, Point{X: x, Y: y})
		}
	}

	if r != nil {
		if y, ok := eval(f, *r); ok {
			d.Root = &Point{X: *r, Y: y}
		}
	}

	return d
}

func eval(f func(float64) (float64, error), x float64) (float64, bool) {
	y, err := f(x)
	if err != nil || !finite(y) {
		return 0, false
	}

	return y, true
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
