// Package gears computes parametric involute gear geometry for
// 3D-printable mechanical parts: tooth profiles, governing circle radii,
// profile-shift and undercut corrections, and center-distance/meshing
// calculations for spur, helical, internal and rack gearing.
//
// The package is purely computational. Every function takes explicit
// inputs and returns values without touching shared state, so it is safe
// to call from any number of goroutines concurrently. 2D geometry is
// expressed with gonum's spatial/r2 vectors. Profiles are returned as
// ordered closed polygons with the gear centered at the origin and the
// reference tooth pointing along +Y; the form2 and form3 packages turn
// them into 2D regions and extruded solids.
package gears

import "math"

const (
	// MillimetresPerInch is millimetres per inch (25.4).
	// Diametral pitch is defined in inches; all other quantities
	// in this package are millimetres.
	MillimetresPerInch = 25.4
)

const (
	pi        = math.Pi
	tolerance = 1e-9
)

func d2r(degrees float64) float64 { return degrees * math.Pi / 180. }
func r2d(radians float64) float64 { return radians / math.Pi * 180. }
