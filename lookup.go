package gears

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// lut is a 1D lookup table with linear interpolation between samples and
// constant extrapolation beyond the first and last sample.
type lut struct {
	pl       interp.PiecewiseLinear
	min, max float64
	yLo, yHi float64
}

// newLUT fits a table to (xs, ys) sample pairs. xs must be monotonic in
// one direction; duplicate or backtracking entries are dropped.
func newLUT(xs, ys []float64) (lut, error) {
	if len(xs) != len(ys) || len(xs) < 2 {
		return lut{}, fmt.Errorf("%w: lookup table needs at least 2 sample pairs", ErrInvalidInput)
	}
	if xs[0] > xs[len(xs)-1] {
		xs = reversed(xs)
		ys = reversed(ys)
	}
	// interp.PiecewiseLinear wants strictly increasing abscissae.
	fx := make([]float64, 1, len(xs))
	fy := make([]float64, 1, len(ys))
	fx[0], fy[0] = xs[0], ys[0]
	for i := 1; i < len(xs); i++ {
		if xs[i] > fx[len(fx)-1]+1e-12 {
			fx = append(fx, xs[i])
			fy = append(fy, ys[i])
		}
	}
	if len(fx) < 2 {
		return lut{}, fmt.Errorf("%w: lookup table abscissae are degenerate", ErrInvalidInput)
	}
	var t lut
	if err := t.pl.Fit(fx, fy); err != nil {
		return lut{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	t.min, t.max = fx[0], fx[len(fx)-1]
	t.yLo, t.yHi = fy[0], fy[len(fy)-1]
	return t, nil
}

// at evaluates the table, clamping x to the sampled range.
func (t lut) at(x float64) float64 {
	if x <= t.min {
		return t.yLo
	}
	if x >= t.max {
		return t.yHi
	}
	return t.pl.Predict(x)
}

// covers reports whether x lies within the sampled range.
func (t lut) covers(x float64) bool { return x >= t.min && x <= t.max }

func reversed(s []float64) []float64 {
	r := make([]float64, len(s))
	for i, v := range s {
		r[len(s)-1-i] = v
	}
	return r
}
