// Package sdfxgear bridges gear outlines into the github.com/deadsy/sdfx
// CAD kernel so they can be meshed and exported through its render
// pipeline.
package sdfxgear

import (
	"fmt"
	"math"

	sdfx "github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/soypat/gears"
	"github.com/soypat/gears/form2"
)

// GearProfile returns the full gear outline as an sdfx 2D polygon.
func GearProfile(g gears.Gear) (sdfx.SDF2, error) {
	outline, _, err := form2.GearPolygon(g)
	if err != nil {
		return nil, err
	}
	verts := make([]v2.Vec, len(outline))
	for i, p := range outline {
		verts[i] = v2.Vec{X: p.X, Y: p.Y}
	}
	return sdfx.Polygon2D(verts)
}

// Gear returns an sdfx solid of the gear with the given face width and
// optional shaft bore. A nonzero helix angle twists the extrusion.
func Gear(g gears.Gear, height, shaftDiameter float64) (sdfx.SDF3, error) {
	profile, err := GearProfile(g)
	if err != nil {
		return nil, err
	}
	if shaftDiameter > 0 {
		root, err := g.RootRadius()
		if err != nil {
			return nil, err
		}
		if shaftDiameter/2 >= root {
			return nil, fmt.Errorf("%w: shaft diameter %.4g reaches into the teeth", gears.ErrInfeasibleGeometry, shaftDiameter)
		}
		bore, err := sdfx.Circle2D(shaftDiameter / 2)
		if err != nil {
			return nil, err
		}
		profile = sdfx.Difference2D(profile, bore)
	}
	if g.Helical != 0 {
		twist := height * math.Tan(g.Helical*math.Pi/180) / g.PitchRadius()
		return sdfx.TwistExtrude3D(profile, height, twist), nil
	}
	return sdfx.Extrude3D(profile, height), nil
}

// RingGear returns an sdfx solid of an internal ring gear with the
// given face width and rim wall thickness.
func RingGear(g gears.Gear, height, rimWidth float64) (sdfx.SDF3, error) {
	if !g.Internal {
		return nil, fmt.Errorf("%w: ring gears must set Internal", gears.ErrInvalidInput)
	}
	if rimWidth <= 0 {
		return nil, fmt.Errorf("%w: rim width must be positive, got %g", gears.ErrInvalidInput, rimWidth)
	}
	cut, err := GearProfile(g)
	if err != nil {
		return nil, err
	}
	rim, err := sdfx.Circle2D(g.OuterRadius() + rimWidth)
	if err != nil {
		return nil, err
	}
	return sdfx.Extrude3D(sdfx.Difference2D(rim, cut), height), nil
}
