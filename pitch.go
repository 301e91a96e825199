package gears

import (
	"fmt"
	"math"
)

// PitchSpec selects a tooth size in exactly one of the three conventional
// units. Exactly one field must be set to a positive finite value.
type PitchSpec struct {
	// CircularPitch is the arc length along the pitch circle occupied by
	// one tooth and one gap [mm].
	CircularPitch float64
	// Module is pitch diameter per tooth, CircularPitch/π [mm].
	Module float64
	// DiametralPitch is teeth per inch of pitch diameter.
	DiametralPitch float64
}

// Normalize returns the canonical circular pitch in millimetres.
func (p PitchSpec) Normalize() (float64, error) {
	var cp float64
	n := 0
	if p.CircularPitch != 0 {
		n++
		cp = p.CircularPitch
	}
	if p.Module != 0 {
		n++
		cp = CircularPitchFromModule(p.Module)
	}
	if p.DiametralPitch != 0 {
		n++
		cp = CircularPitchFromDiametral(p.DiametralPitch)
	}
	if n != 1 {
		return 0, fmt.Errorf("%w: exactly one of circular pitch, module or diametral pitch must be set, got %d", ErrInvalidInput, n)
	}
	if math.IsNaN(cp) || math.IsInf(cp, 0) || cp <= 0 {
		return 0, fmt.Errorf("%w: pitch must be positive and finite", ErrInvalidInput)
	}
	return cp, nil
}

// CircularPitchFromModule converts a metric module to circular pitch.
func CircularPitchFromModule(module float64) float64 {
	return module * math.Pi
}

// CircularPitchFromDiametral converts an inch-based diametral pitch to a
// circular pitch in millimetres.
func CircularPitchFromDiametral(diametralPitch float64) float64 {
	return math.Pi / diametralPitch * MillimetresPerInch
}

// ModuleValue returns the module for a circular pitch.
func ModuleValue(circPitch float64) float64 {
	return circPitch / math.Pi
}

// DiametralPitch returns the inch-based diametral pitch for a circular
// pitch in millimetres.
func DiametralPitch(circPitch float64) float64 {
	return math.Pi * MillimetresPerInch / circPitch
}
