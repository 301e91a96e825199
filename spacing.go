package gears

import (
	"fmt"
	"math"
)

// MeshParams describes a pair of meshing gears on parallel axes for the
// center-distance calculations. Tooth counts of 0 stand for a rack.
type MeshParams struct {
	// CircPitch is the shared circular pitch [mm].
	CircPitch float64
	Teeth1    int
	Teeth2    int
	// Helical is the helix angle magnitude in degrees; parallel-axis
	// mates carry opposite hands, which this calculation does not need
	// to distinguish.
	Helical float64
	// Shift1, Shift2 are profile shifts in module units. With Auto1 or
	// Auto2 set the corresponding shift is computed by AutoProfileShift.
	Shift1, Shift2 float64
	Auto1, Auto2   bool
	// PressureAngle is the normal pressure angle in degrees, 0 meaning 20°.
	PressureAngle float64
	// Internal2 marks gear 2 as a ring gear enclosing gear 1.
	Internal2 bool
	// Backlash is the desired circumferential play [mm], obtained by
	// moving the centers apart (or together, for a ring).
	Backlash float64
}

func (p MeshParams) pressureAngle() float64 {
	if p.PressureAngle == 0 {
		return 20
	}
	return p.PressureAngle
}

func (p MeshParams) shifts() (x1, x2 float64) {
	pa := p.pressureAngle()
	x1, x2 = p.Shift1, p.Shift2
	if p.Auto1 && p.Teeth1 > 0 {
		x1 = AutoProfileShift(p.Teeth1, pa, p.Helical)
	}
	if p.Auto2 && p.Teeth2 > 0 {
		x2 = AutoProfileShift(p.Teeth2, pa, p.Helical)
	}
	return x1, x2
}

func (p MeshParams) validate() error {
	switch {
	case math.IsNaN(p.CircPitch) || math.IsInf(p.CircPitch, 0) || p.CircPitch <= 0:
		return fmt.Errorf("%w: circular pitch must be positive and finite", ErrInvalidInput)
	case p.Teeth1 < 0 || p.Teeth2 < 0:
		return fmt.Errorf("%w: tooth counts must be non-negative", ErrInvalidInput)
	case p.Teeth1 == 0 && p.Teeth2 == 0:
		return fmt.Errorf("%w: two racks do not mesh on fixed centers", ErrInvalidInput)
	case math.Abs(p.Helical) >= 90:
		return fmt.Errorf("%w: helix angle must be in (-90,90)", ErrInvalidInput)
	case p.PressureAngle < 0 || p.PressureAngle >= 90:
		return fmt.Errorf("%w: pressure angle must be in [0,90)", ErrInvalidInput)
	case p.Internal2 && (p.Teeth1 == 0 || p.Teeth2 == 0):
		return fmt.Errorf("%w: a rack cannot be part of an internal mesh", ErrInvalidInput)
	}
	return nil
}

// solveWorkingPressureAngle inverts the involute function: it returns
// the angle pa [radians] in (0, 75°) with inv(pa) = rhs, by bisection.
// The involute function is strictly increasing on the bracket.
func solveWorkingPressureAngle(rhs float64) (float64, error) {
	const maxIter = 100
	lo, hi := 0.0, d2r(75)
	if rhs <= 0 {
		return 0, fmt.Errorf("%w: working pressure angle collapsed to zero (combined profile shift too negative)", ErrInfeasibleGeometry)
	}
	if involuteFunc(hi) < rhs {
		return 0, fmt.Errorf("%w: working pressure angle above 75° (combined profile shift too large)", ErrInfeasibleGeometry)
	}
	var mid float64
	for i := 0; i < maxIter; i++ {
		mid = 0.5 * (lo + hi)
		if involuteFunc(mid) < rhs {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo < 1e-14 {
			return mid, nil
		}
	}
	return 0, fmt.Errorf("%w: bisection for the working pressure angle stalled at [%.17g, %.17g]", ErrConvergence, lo, hi)
}

// GearDistance returns the center distance [mm] at which the two gears
// of p mesh without interference. Profile shifts change the distance
// through the working pressure angle; with zero combined shift the
// result is exactly the sum (or difference, for a ring) of the pitch
// radii.
func (p MeshParams) GearDistance() (float64, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}
	pa := p.pressureAngle()
	x1, x2 := p.shifts()
	m := ModuleValue(p.CircPitch)
	cosb := math.Cos(d2r(p.Helical))
	paT := transversePressureAngle(pa, p.Helical)

	if p.Teeth1 == 0 || p.Teeth2 == 0 {
		// Rack and pinion: the rack datum line offsets linearly with
		// the combined shift, no pressure-angle rebalancing involved.
		teeth := p.Teeth1 + p.Teeth2
		return PitchRadius(p.CircPitch, teeth, p.Helical) + (x1+x2)*m, nil
	}

	// Sum of teeth and shifts; an internal mesh uses the differences,
	// ring minus pinion.
	sumT := p.Teeth1 + p.Teeth2
	sumX := x1 + x2
	if p.Internal2 {
		sumT = p.Teeth2 - p.Teeth1
		sumX = x2 - x1
		if sumT <= 0 {
			return 0, fmt.Errorf("%w: ring gear must have more teeth than its pinion (%d vs %d)", ErrInfeasibleGeometry, p.Teeth2, p.Teeth1)
		}
		if sumX < 0 {
			return 0, fmt.Errorf("%w: ring profile shift %.4g must be at least the pinion's %.4g", ErrInfeasibleGeometry, x2, x1)
		}
	}

	paEff := d2r(paT)
	if sumX != 0 {
		rhs := involuteFunc(d2r(paT)) + 2*sumX/float64(sumT)*cosb*math.Tan(d2r(pa))
		var err error
		paEff, err = solveWorkingPressureAngle(rhs)
		if err != nil {
			return 0, err
		}
	}
	d := m * float64(sumT) * math.Cos(d2r(paT)) / (2 * cosb * math.Cos(paEff))
	if p.Backlash != 0 {
		spread := p.Backlash / (2 * math.Tan(d2r(pa)))
		if p.Internal2 {
			d -= spread
		} else {
			d += spread
		}
	}
	return d, nil
}

// ProfileShiftForDistance returns the combined profile shift x1+x2 that
// makes two external gears mesh at the desired center distance [mm].
func ProfileShiftForDistance(desired, circPitch float64, teeth1, teeth2 int, helical, pressureAngle float64) (float64, error) {
	if pressureAngle == 0 {
		pressureAngle = 20
	}
	if desired <= 0 || circPitch <= 0 || teeth1 <= 0 || teeth2 <= 0 {
		return 0, fmt.Errorf("%w: distance, pitch and tooth counts must be positive", ErrInvalidInput)
	}
	m := ModuleValue(circPitch)
	cosb := math.Cos(d2r(helical))
	paT := d2r(transversePressureAngle(pressureAngle, helical))
	cosEff := m * float64(teeth1+teeth2) * math.Cos(paT) / (2 * desired * cosb)
	if cosEff >= 1 || cosEff <= 0 {
		return 0, fmt.Errorf("%w: no working pressure angle reaches center distance %.4g", ErrInfeasibleGeometry, desired)
	}
	paEff := math.Acos(cosEff)
	return (involuteFunc(paEff) - involuteFunc(paT)) * float64(teeth1+teeth2) / (2 * cosb * math.Tan(d2r(pressureAngle))), nil
}

// GearShorten returns the addendum shortening in module units needed to
// restore tip clearance when profile-shifted gears are mounted at their
// working center distance. Zero when no shortening is needed.
func GearShorten(teeth1, teeth2 int, helical, shift1, shift2, pressureAngle float64) (float64, error) {
	p := MeshParams{
		CircPitch:     math.Pi, // module 1; the result is in module units
		Teeth1:        teeth1,
		Teeth2:        teeth2,
		Helical:       helical,
		Shift1:        shift1,
		Shift2:        shift2,
		PressureAngle: pressureAngle,
	}
	a, err := p.GearDistance()
	if err != nil {
		return 0, err
	}
	y := a - float64(teeth1+teeth2)/(2*math.Cos(d2r(helical)))
	return math.Max(0, shift1+shift2-y), nil
}

// WormCenterDistance returns the center distance [mm] between a
// cylindrical worm of the given outer diameter and its wheel. starts is
// the worm thread count.
func WormCenterDistance(circPitch, wormDiameter float64, starts, teeth int, profileShift float64) (float64, error) {
	if circPitch <= 0 || wormDiameter <= 0 || starts <= 0 || teeth <= 0 {
		return 0, fmt.Errorf("%w: pitch, worm diameter, starts and teeth must be positive", ErrInvalidInput)
	}
	m := ModuleValue(circPitch)
	return wormDiameter/2 + m*float64(teeth)/2 + profileShift*m, nil
}
