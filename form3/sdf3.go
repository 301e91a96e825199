// Package form3 extrudes form2 gear outlines into printable solids.
package form3

import (
	"fmt"
	"math"

	"github.com/soypat/gears"
	"github.com/soypat/gears/form2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// SDF3 is a 3D signed distance field: negative inside, positive
// outside, zero on the surface.
type SDF3 interface {
	Evaluate(p r3.Vec) float64
	Bounds() r3.Box
}

// ExtrudeFunc maps a 3D point to the 2D plane of the profile being
// extruded. Varying the mapping with Z produces twisted or folded
// extrusions from the same 2D profile.
type ExtrudeFunc func(p r3.Vec) r2.Vec

// NormalExtrude projects straight down the Z axis.
func NormalExtrude(p r3.Vec) r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// TwistExtrude rotates the profile by twist [radians] over the full
// height, the mapping behind helical gear teeth.
func TwistExtrude(height, twist float64) ExtrudeFunc {
	k := twist / height
	return func(p r3.Vec) r2.Vec {
		return rotate2(r2.Vec{X: p.X, Y: p.Y}, -p.Z*k)
	}
}

// FoldExtrude twists by twist/2 at each face and back to zero at mid
// height, mirroring the twist about z=0. This is the herringbone tooth
// mapping: two opposed helices meeting in a vee.
func FoldExtrude(height, twist float64) ExtrudeFunc {
	k := twist / height
	return func(p r3.Vec) r2.Vec {
		return rotate2(r2.Vec{X: p.X, Y: p.Y}, -math.Abs(p.Z)*k)
	}
}

func rotate2(v r2.Vec, theta float64) r2.Vec {
	sn, cs := math.Sincos(theta)
	return r2.Vec{X: cs*v.X - sn*v.Y, Y: sn*v.X + cs*v.Y}
}

// extrude3 is an SDF2 swept along Z through an ExtrudeFunc.
type extrude3 struct {
	sdf     form2.SDF2
	half    float64
	extrude ExtrudeFunc
	bb      r3.Box
}

// Extrude3D returns the linear extrusion of an SDF2 to the given
// height, centered on z=0.
func Extrude3D(sdf form2.SDF2, height float64) (SDF3, error) {
	return extrudeWith(sdf, height, NormalExtrude)
}

// TwistExtrude3D returns the extrusion of an SDF2 with a total twist
// [radians] over the height.
func TwistExtrude3D(sdf form2.SDF2, height, twist float64) (SDF3, error) {
	return extrudeWith(sdf, height, TwistExtrude(height, twist))
}

// FoldExtrude3D returns the mirrored-twist extrusion of an SDF2, used
// for herringbone teeth.
func FoldExtrude3D(sdf form2.SDF2, height, twist float64) (SDF3, error) {
	return extrudeWith(sdf, height, FoldExtrude(height, twist))
}

func extrudeWith(sdf form2.SDF2, height float64, f ExtrudeFunc) (SDF3, error) {
	if sdf == nil {
		return nil, fmt.Errorf("%w: extrusion of nil profile", gears.ErrInvalidInput)
	}
	if height <= 0 || math.IsNaN(height) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("%w: extrusion height must be positive and finite, got %g", gears.ErrInvalidInput, height)
	}
	s := extrude3{sdf: sdf, half: height / 2, extrude: f}
	// Twisting sweeps the profile around the Z axis, so bound with the
	// largest corner radius rather than the raw 2D box.
	b := sdf.Bounds()
	rmax := 0.0
	for _, c := range []r2.Vec{b.Min, {X: b.Min.X, Y: b.Max.Y}, b.Max, {X: b.Max.X, Y: b.Min.Y}} {
		rmax = math.Max(rmax, r2.Norm(c))
	}
	s.bb = r3.Box{
		Min: r3.Vec{X: -rmax, Y: -rmax, Z: -s.half},
		Max: r3.Vec{X: rmax, Y: rmax, Z: s.half},
	}
	return &s, nil
}

// Evaluate intersects the extruded profile distance with the Z slab.
func (s *extrude3) Evaluate(p r3.Vec) float64 {
	a := s.sdf.Evaluate(s.extrude(p))
	b := math.Abs(p.Z) - s.half
	return math.Max(a, b)
}

func (s *extrude3) Bounds() r3.Box { return s.bb }
