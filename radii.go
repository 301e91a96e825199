package gears

import "math"

// PitchRadius returns the pitch radius [mm] of a gear with the given
// circular pitch [mm], tooth count and helix angle [degrees]. The helix
// angle grows the radius by 1/cos(helical) because the circular pitch is
// measured in the normal plane.
func PitchRadius(circPitch float64, teeth int, helical float64) float64 {
	return circPitch * float64(teeth) / (2 * math.Pi * math.Cos(d2r(helical)))
}

// transversePressureAngle converts a normal pressure angle to the
// transverse plane of a helical gear. Both angles in degrees.
func transversePressureAngle(pressureAngle, helical float64) float64 {
	return r2d(math.Atan2(math.Tan(d2r(pressureAngle)), math.Cos(d2r(helical))))
}

// PitchRadius returns the radius of the pitch circle, where tooth
// thickness and gap are nominally equal.
func (g Gear) PitchRadius() float64 {
	return PitchRadius(g.CircPitch, g.Teeth, g.Helical)
}

// BaseRadius returns the radius of the base circle from which the
// involute flanks unwind.
func (g Gear) BaseRadius() float64 {
	paT := transversePressureAngle(g.pressureAngle(), g.Helical)
	return g.PitchRadius() * math.Cos(d2r(paT))
}

func (g Gear) addendum() float64 {
	return g.Module() * (1 + g.shift() - g.Shorten)
}

func (g Gear) dedendum() float64 {
	return g.Module()*(1-g.shift()) + g.clearance()
}

// OuterRadius returns the tip radius. For internal gears the tip points
// inward, so the dedendum extent governs instead and the profile shift
// acts with opposite sign.
func (g Gear) OuterRadius() float64 {
	if g.Internal {
		return g.PitchRadius() + g.swapped().dedendum()
	}
	return g.PitchRadius() + g.addendum()
}

// rootRadiusNominal is the root circle radius before any root rounding
// or undercut trimming. RootRadius measures the generated profile.
func (g Gear) rootRadiusNominal() float64 {
	if g.Internal {
		return g.PitchRadius() - g.swapped().addendum()
	}
	return g.PitchRadius() - g.dedendum()
}

// swapped returns the external counterpart of an internal gear: same
// size, negated profile shift. Internal tooth spaces are the external
// teeth of this gear.
func (g Gear) swapped() Gear {
	gi := g
	gi.Internal = false
	gi.AutoShift = false
	gi.ProfileShift = -g.shift()
	return gi
}
