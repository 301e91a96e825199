package form2

import (
	"fmt"
	"log"
	"math"

	"github.com/soypat/gears"
	"github.com/soypat/gears/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// GearPolygon returns the closed outline of the whole gear as one
// counterclockwise polygon, along with the tooth diagnostic. Degraded
// geometry (clipping, stripped samples) is logged but still returned.
func GearPolygon(g gears.Gear) ([]r2.Vec, *gears.ToothDiagnostic, error) {
	out, diag, err := replicateTeeth(g, g.Teeth)
	if err != nil {
		return nil, nil, err
	}
	// the last tooth closes onto the first
	if n := len(out); n > 1 && d2.EqualWithin(out[0], out[n-1], 1e-9) {
		out = out[:n-1]
	}
	return out, diag, nil
}

// PartialGearPolygon returns the outline of a gear sector with hidden
// teeth omitted: the remaining teeth joined to a vertex at the gear
// center, closing the wedge. hidden 0 gives the full gear outline.
func PartialGearPolygon(g gears.Gear, hidden int) ([]r2.Vec, *gears.ToothDiagnostic, error) {
	if hidden == 0 {
		return GearPolygon(g)
	}
	if hidden < 0 || hidden >= g.Teeth {
		return nil, nil, fmt.Errorf("%w: hidden teeth must be in [0,%d), got %d", gears.ErrInvalidInput, g.Teeth, hidden)
	}
	if g.Internal {
		return nil, nil, fmt.Errorf("%w: internal gears cannot be partial", gears.ErrInvalidInput)
	}
	out, diag, err := replicateTeeth(g, g.Teeth-hidden)
	if err != nil {
		return nil, nil, err
	}
	out = append(out, r2.Vec{})
	return out, diag, nil
}

func replicateTeeth(g gears.Gear, count int) ([]r2.Vec, *gears.ToothDiagnostic, error) {
	tooth, diag, err := g.ToothProfile(false)
	if err != nil {
		return nil, nil, err
	}
	if diag.Clipped || diag.StrippedPoints > 0 {
		log.Printf("form2: degraded tooth profile (teeth=%d clipped=%v stripped=%d): geometry was cut back to stay valid",
			g.Teeth, diag.Clipped, diag.StrippedPoints)
	}
	out := make([]r2.Vec, 0, len(tooth)*count)
	for i := 0; i < count; i++ {
		th := 2 * math.Pi * float64(i) / float64(g.Teeth)
		sn, cs := math.Sincos(th)
		for _, p := range tooth {
			q := r2.Vec{X: cs*p.X - sn*p.Y, Y: sn*p.X + cs*p.Y}
			if n := len(out); n > 0 && d2.EqualWithin(q, out[n-1], 1e-9) {
				continue
			}
			out = append(out, q)
		}
	}
	return out, diag, nil
}

// Gear2D returns the SDF2 of a full external or internal gear outline
// with an optional round shaft bore (shaftDiameter 0 means solid).
func Gear2D(g gears.Gear, shaftDiameter float64) (SDF2, error) {
	outline, _, err := GearPolygon(g)
	if err != nil {
		return nil, err
	}
	body, err := Polygon(outline)
	if err != nil {
		return nil, err
	}
	if shaftDiameter <= 0 {
		return body, nil
	}
	root, err := g.RootRadius()
	if err != nil {
		return nil, err
	}
	if shaftDiameter/2 >= root {
		return nil, fmt.Errorf("%w: shaft diameter %.4g reaches into the teeth (root radius %.4g)", gears.ErrInfeasibleGeometry, shaftDiameter, root)
	}
	bore, err := Circle(shaftDiameter / 2)
	if err != nil {
		return nil, err
	}
	return Difference2D(body, bore)
}

// RingGear2D returns the SDF2 of an internal ring gear: an annulus with
// the tooth outline cut from its inside. rimWidth is the radial wall
// thickness beyond the deepest tooth cut.
func RingGear2D(g gears.Gear, rimWidth float64) (SDF2, error) {
	if !g.Internal {
		return nil, fmt.Errorf("%w: ring gears must set Internal", gears.ErrInvalidInput)
	}
	if rimWidth <= 0 {
		return nil, fmt.Errorf("%w: rim width must be positive, got %g", gears.ErrInvalidInput, rimWidth)
	}
	inner, _, err := GearPolygon(g)
	if err != nil {
		return nil, err
	}
	cut, err := Polygon(inner)
	if err != nil {
		return nil, err
	}
	rim, err := Circle(g.OuterRadius() + rimWidth)
	if err != nil {
		return nil, err
	}
	return Difference2D(rim, cut)
}

// RackPolygon returns the closed outline of a straight rack with the
// given number of teeth, counterclockwise. The pitch line lies on y=0
// and teeth point along +Y; baseDepth is the solid material kept below
// the root line. Helical gears give a rack with the transverse tooth
// form, matching the transverse gear profile it meshes with.
func RackPolygon(g gears.Gear, teeth int, baseDepth float64) ([]r2.Vec, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if teeth < 1 {
		return nil, fmt.Errorf("%w: rack needs at least 1 tooth, got %d", gears.ErrInvalidInput, teeth)
	}
	if baseDepth <= 0 {
		return nil, fmt.Errorf("%w: rack base depth must be positive, got %g", gears.ErrInvalidInput, baseDepth)
	}
	m := g.Module()
	cosb := math.Cos(g.Helical * math.Pi / 180)
	cpT := g.CircPitch / cosb
	paT := math.Atan2(math.Tan(g.NormalPressureAngle()*math.Pi/180), cosb)
	tn := math.Tan(paT)
	add := m
	ded := m + g.RootClearance()
	halfTop := cpT/4 - g.Backlash/2

	// tooth boundary left to right, one circular pitch per tooth
	top := make([]r2.Vec, 0, 6*teeth+2)
	x0 := -cpT * float64(teeth) / 2
	top = append(top, r2.Vec{X: x0, Y: -ded})
	for i := 0; i < teeth; i++ {
		cx := x0 + cpT*(float64(i)+0.5)
		top = append(top,
			r2.Vec{X: cx - halfTop - ded*tn, Y: -ded},
			r2.Vec{X: cx - halfTop + add*tn, Y: add},
			r2.Vec{X: cx + halfTop - add*tn, Y: add},
			r2.Vec{X: cx + halfTop + ded*tn, Y: -ded},
		)
	}
	top = append(top, r2.Vec{X: -x0, Y: -ded})

	yBase := -ded - baseDepth
	out := make([]r2.Vec, 0, len(top)+2)
	out = append(out, r2.Vec{X: -x0, Y: yBase})
	for i := len(top) - 1; i >= 0; i-- {
		out = append(out, top[i])
	}
	out = append(out, r2.Vec{X: x0, Y: yBase})
	return out, nil
}

// Rack2D returns the SDF2 of a straight rack outline.
func Rack2D(g gears.Gear, teeth int, baseDepth float64) (SDF2, error) {
	outline, err := RackPolygon(g, teeth, baseDepth)
	if err != nil {
		return nil, err
	}
	return Polygon(outline)
}
