package gears

import (
	"fmt"
	"math"
)

// PlanetaryRatio selects which element of a planetary (epicyclic) train
// is held fixed and therefore which transmission ratio is being asked
// for. Ratios are output speed over input speed.
type PlanetaryRatio int

const (
	// RingFixed: sun input, carrier output. Ratio = sun/carrier = 1 + R/S.
	RingFixed PlanetaryRatio = iota
	// SunFixed: ring input, carrier output. Ratio = ring/carrier = 1 + S/R.
	SunFixed
	// CarrierFixed: sun input, ring output, reversing.
	// Ratio = sun/ring = -R/S.
	CarrierFixed
)

// PlanetaryLayout is a concrete tooth-count solution for a planetary
// train together with the profile shifts and planet placement angles
// needed to build it.
type PlanetaryLayout struct {
	SunTeeth, PlanetTeeth, RingTeeth int
	// Ratio is the transmission ratio actually achieved; tooth counts
	// are integers so it rarely equals the request exactly.
	Ratio float64
	// SunShift, PlanetShift are undercut-avoiding profile shifts for
	// the external gears; RingShift matches PlanetShift so the ring
	// mesh stays geometrically consistent.
	SunShift, PlanetShift, RingShift float64
	// PlanetAngles are the carrier angles of each planet in degrees.
	PlanetAngles []float64
}

// SolvePlanetary searches tooth counts for a planetary train with
// nPlanets equally spaced planets whose transmission ratio, for the
// given fixed element, comes closest to want. Tooth counts are bounded
// by maxRingTeeth and constrained by the geometric closure condition
// ring = sun + 2·planet and by the assembly condition that sun+ring be
// divisible by the planet count.
func SolvePlanetary(nPlanets, maxRingTeeth int, fixed PlanetaryRatio, want float64, pressureAngle float64) (PlanetaryLayout, error) {
	const minTeeth = 4
	if nPlanets < 1 {
		return PlanetaryLayout{}, fmt.Errorf("%w: need at least one planet", ErrInvalidInput)
	}
	if maxRingTeeth < minTeeth*3 {
		return PlanetaryLayout{}, fmt.Errorf("%w: max ring teeth %d leaves no room for a train", ErrInvalidInput, maxRingTeeth)
	}
	if pressureAngle == 0 {
		pressureAngle = 20
	}
	switch fixed {
	case RingFixed, SunFixed:
		if want <= 1 {
			return PlanetaryLayout{}, fmt.Errorf("%w: a carrier-output ratio is always above 1, got %g", ErrInfeasibleGeometry, want)
		}
	case CarrierFixed:
		if want >= 0 {
			return PlanetaryLayout{}, fmt.Errorf("%w: a fixed-carrier ratio is reversing (negative), got %g", ErrInfeasibleGeometry, want)
		}
	default:
		return PlanetaryLayout{}, fmt.Errorf("%w: unknown ratio selector %d", ErrInvalidInput, fixed)
	}

	best := PlanetaryLayout{}
	bestErr := math.Inf(1)
	for sun := minTeeth; sun < maxRingTeeth; sun++ {
		for planet := minTeeth; ; planet++ {
			ring := sun + 2*planet
			if ring > maxRingTeeth {
				break
			}
			if (sun+ring)%nPlanets != 0 {
				continue
			}
			var ratio float64
			switch fixed {
			case RingFixed:
				ratio = 1 + float64(ring)/float64(sun)
			case SunFixed:
				ratio = 1 + float64(sun)/float64(ring)
			case CarrierFixed:
				ratio = -float64(ring) / float64(sun)
			}
			if e := math.Abs(ratio - want); e < bestErr {
				bestErr = e
				best.SunTeeth, best.PlanetTeeth, best.RingTeeth = sun, planet, ring
				best.Ratio = ratio
			}
		}
	}
	if math.IsInf(bestErr, 1) {
		return PlanetaryLayout{}, fmt.Errorf("%w: no assemblable tooth counts under %d ring teeth with %d planets", ErrInfeasibleGeometry, maxRingTeeth, nPlanets)
	}

	best.SunShift = AutoProfileShift(best.SunTeeth, pressureAngle, 0)
	best.PlanetShift = AutoProfileShift(best.PlanetTeeth, pressureAngle, 0)
	best.RingShift = best.PlanetShift
	best.PlanetAngles = make([]float64, nPlanets)
	for i := range best.PlanetAngles {
		best.PlanetAngles[i] = 360 * float64(i) / float64(nPlanets)
	}
	return best, nil
}

// CarrierRadius returns the sun-to-planet center distance [mm] for the
// layout at the given circular pitch, honoring the profile shifts.
func (l PlanetaryLayout) CarrierRadius(circPitch float64) (float64, error) {
	p := MeshParams{
		CircPitch: circPitch,
		Teeth1:    l.SunTeeth,
		Teeth2:    l.PlanetTeeth,
		Shift1:    l.SunShift,
		Shift2:    l.PlanetShift,
	}
	return p.GearDistance()
}
