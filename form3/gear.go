package form3

import (
	"fmt"
	"math"

	"github.com/soypat/gears"
	"github.com/soypat/gears/form2"
)

// helicalTwist returns the total extrusion twist [radians] that gives
// the gear's teeth their helix angle over the given face width.
func helicalTwist(g gears.Gear, height float64) float64 {
	return height * math.Tan(g.Helical*math.Pi/180) / g.PitchRadius()
}

// Spur returns the solid of a straight-cut gear with the given face
// width and an optional shaft bore. The helix angle of g is ignored for
// the extrusion; use Helical to realize it.
func Spur(g gears.Gear, height, shaftDiameter float64) (SDF3, error) {
	profile, err := form2.Gear2D(g, shaftDiameter)
	if err != nil {
		return nil, err
	}
	return Extrude3D(profile, height)
}

// Helical returns the solid of a helical gear: the transverse profile
// of g twisted along the face width to match its helix angle.
func Helical(g gears.Gear, height, shaftDiameter float64) (SDF3, error) {
	profile, err := form2.Gear2D(g, shaftDiameter)
	if err != nil {
		return nil, err
	}
	return TwistExtrude3D(profile, height, helicalTwist(g, height))
}

// Herringbone returns the solid of a double-helical gear: the two
// halves of the face width twist in opposite directions and meet in a
// vee at mid height, cancelling the axial thrust a plain helix causes.
func Herringbone(g gears.Gear, height, shaftDiameter float64) (SDF3, error) {
	if g.Helical == 0 {
		return nil, fmt.Errorf("%w: herringbone gears need a nonzero helix angle", gears.ErrInvalidInput)
	}
	profile, err := form2.Gear2D(g, shaftDiameter)
	if err != nil {
		return nil, err
	}
	return FoldExtrude3D(profile, height, helicalTwist(g, height))
}

// Ring returns the solid of an internal ring gear with the given face
// width and rim wall thickness. Helix angle, if any, twists the teeth.
func Ring(g gears.Gear, height, rimWidth float64) (SDF3, error) {
	profile, err := form2.RingGear2D(g, rimWidth)
	if err != nil {
		return nil, err
	}
	if g.Helical != 0 {
		return TwistExtrude3D(profile, height, helicalTwist(g, height))
	}
	return Extrude3D(profile, height)
}

// Rack returns the solid of a straight rack with the given number of
// teeth, face width and base material depth.
func Rack(g gears.Gear, teeth int, height, baseDepth float64) (SDF3, error) {
	profile, err := form2.Rack2D(g, teeth, baseDepth)
	if err != nil {
		return nil, err
	}
	return Extrude3D(profile, height)
}
