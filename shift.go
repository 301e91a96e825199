package gears

import "math"

// MinimumTeeth returns the fewest teeth a gear can have at the given
// normal pressure angle [degrees] without undercutting when cut with no
// profile shift.
func MinimumTeeth(pressureAngle float64) float64 {
	s := math.Sin(d2r(pressureAngle))
	return 2 / (s * s)
}

// AutoProfileShift returns the profile shift in module units that avoids
// undercutting for the given tooth count, or 0 when the count is at or
// above the undercut threshold. Pressure angle and helix in degrees;
// pressureAngle 0 selects 20°.
func AutoProfileShift(teeth int, pressureAngle, helical float64) float64 {
	if pressureAngle == 0 {
		pressureAngle = 20
	}
	if float64(teeth) > MinimumTeeth(pressureAngle) {
		return 0
	}
	return MinimumProfileShift(teeth, pressureAngle, helical)
}

// MinimumProfileShift returns the smallest profile shift that keeps the
// rack cutter from undercutting the flank. Negative for tooth counts
// above the undercut threshold: the magnitude is how much negative shift
// such a gear tolerates before undercutting. Unlike AutoProfileShift it
// applies no clamping and no zero-value defaulting to the pressure angle.
func MinimumProfileShift(teeth int, pressureAngle, helical float64) float64 {
	return (1 - float64(teeth)/MinimumTeeth(pressureAngle)) / math.Cos(d2r(helical))
}
