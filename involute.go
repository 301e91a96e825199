package gears

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// involuteXY returns the point on the involute of a circle of the given
// base radius at unwinding parameter u [radians]. u=0 is on the circle
// at angle 0 and the curve spirals counterclockwise outward.
func involuteXY(base, u float64) r2.Vec {
	s, c := math.Sincos(u)
	return r2.Vec{X: base * (c + u*s), Y: base * (s - u*c)}
}

// involuteFunc is the involute function inv(x) = tan(x) - x, x in radians.
func involuteFunc(x float64) float64 { return math.Tan(x) - x }

// involuteTables samples the involute of the base circle out past the
// outer radius and returns two lookup tables over the samples:
// fwd maps radius to 90°-minus-polar-angle of the curve (degrees), inv
// is its inverse. Radii below the base circle clamp to 90°, which
// profile generation uses as the radial wall under the involute.
func involuteTables(base, outer float64) (fwd, inv lut, err error) {
	var radii, angs []float64
	for i := 0; ; i += 5 {
		u := d2r(float64(i))
		p := involuteXY(base, u)
		r := r2.Norm(p)
		radii = append(radii, r)
		angs = append(angs, 90-r2d(math.Atan2(p.Y, p.X)))
		if r > 1.1*outer && len(radii) >= 2 {
			break
		}
		if i > 3600 {
			return fwd, inv, fmt.Errorf("%w: involute never reached radius %.4g from base %.4g", ErrConvergence, outer, base)
		}
	}
	fwd, err = newLUT(radii, angs)
	if err != nil {
		return fwd, inv, err
	}
	inv, err = newLUT(angs, radii)
	return fwd, inv, err
}

// rackUndercutTable sweeps the tip corner of the generating rack cutter
// through the gear frame and tabulates the resulting trochoid as radius
// to angle [degrees] pairs, oriented for the tooth half at angles ≥ 90°.
// Only the outward-going branch past the point of closest approach is
// kept; where this table lies below the involute the flank is undercut.
// cpT and mT are the transverse circular pitch and module, paT the
// transverse pressure angle.
func rackUndercutTable(prad, rrad, clear, outer, paT, cpT, mT float64, teeth int) (lut, bool) {
	// Corner of the cutter tip in rack coordinates: x at the end of the
	// straight flank, y on the root line plus clearance.
	ax := cpT/4 - math.Tan(d2r(paT))*mT
	yc := rrad + clear
	if yc <= tolerance {
		return lut{}, false
	}
	a0 := r2d(math.Atan2(ax, yc))
	var radii, angs []float64
	minIdx, minR := 0, math.Inf(1)
	for a := a0; a >= -90; a -= 1 {
		// The rack translates by arc length as the gear blank rolls.
		bx := -d2r(a) * prad
		p := r2.Vec{X: ax + bx, Y: yc}
		r := r2.Norm(p)
		radii = append(radii, r)
		angs = append(angs, r2d(math.Atan2(p.Y, p.X))-a+180/float64(teeth))
		if r < minR {
			minR, minIdx = r, len(radii)-1
		}
		if r > 1.05*outer && a < a0 {
			break
		}
	}
	if len(radii)-minIdx < 2 {
		return lut{}, false
	}
	t, err := newLUT(radii[minIdx:], angs[minIdx:])
	if err != nil {
		return lut{}, false
	}
	return t, true
}
