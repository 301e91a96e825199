package gears

import (
	"fmt"
	"math"
)

// SkewParams describes a pair of helical gears on crossed
// (non-parallel) axes. Helix angles are independent per gear and the
// shaft crossing angle is their sum.
type SkewParams struct {
	// CircPitch is the shared normal circular pitch [mm].
	CircPitch float64
	Teeth1    int
	Teeth2    int
	// Helical1, Helical2 are the helix angles in degrees.
	Helical1, Helical2 float64
	// Shift1, Shift2 are profile shifts in module units.
	Shift1, Shift2 float64
	// PressureAngle is the normal pressure angle in degrees, 0 meaning 20°.
	PressureAngle float64
	// Backlash is the desired circumferential play [mm].
	Backlash float64
}

func (p SkewParams) pressureAngle() float64 {
	if p.PressureAngle == 0 {
		return 20
	}
	return p.PressureAngle
}

func (p SkewParams) validate() error {
	switch {
	case math.IsNaN(p.CircPitch) || math.IsInf(p.CircPitch, 0) || p.CircPitch <= 0:
		return fmt.Errorf("%w: circular pitch must be positive and finite", ErrInvalidInput)
	case p.Teeth1 <= 0 || p.Teeth2 <= 0:
		return fmt.Errorf("%w: crossed-axis meshes need positive tooth counts", ErrInvalidInput)
	case math.Abs(p.Helical1) >= 90 || math.Abs(p.Helical2) >= 90:
		return fmt.Errorf("%w: helix angles must be in (-90,90)", ErrInvalidInput)
	case p.PressureAngle < 0 || p.PressureAngle >= 90:
		return fmt.Errorf("%w: pressure angle must be in [0,90)", ErrInvalidInput)
	}
	return nil
}

// workingPressureAngle solves the normal-plane working pressure angle
// for a crossed mesh. Tooth counts are weighted by 1/cos³(helix), the
// virtual spur tooth count of each helical gear.
func (p SkewParams) workingPressureAngle() (float64, error) {
	pa := d2r(p.pressureAngle())
	sumX := p.Shift1 + p.Shift2
	if sumX == 0 {
		return pa, nil
	}
	c1 := math.Cos(d2r(p.Helical1))
	c2 := math.Cos(d2r(p.Helical2))
	teff := float64(p.Teeth1)/(c1*c1*c1) + float64(p.Teeth2)/(c2*c2*c2)
	rhs := involuteFunc(pa) + 2*sumX*math.Tan(pa)/teff
	return solveWorkingPressureAngle(rhs)
}

// GearDistance returns the center distance [mm] between the crossed
// axes.
func (p SkewParams) GearDistance() (float64, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}
	pa := d2r(p.pressureAngle())
	paEff, err := p.workingPressureAngle()
	if err != nil {
		return 0, err
	}
	m := ModuleValue(p.CircPitch)
	sumR := float64(p.Teeth1)/math.Cos(d2r(p.Helical1)) + float64(p.Teeth2)/math.Cos(d2r(p.Helical2))
	d := m / 2 * sumR * math.Cos(pa) / math.Cos(paEff)
	if p.Backlash != 0 {
		d += p.Backlash / (2 * math.Tan(pa))
	}
	return d, nil
}

// MeshAngle returns the angle in degrees between the two shafts at the
// working center distance. With no profile shift it is simply the sum
// of the helix angles; shifts steepen the working helix of each gear.
// The shifted form follows the base-helix relation and is approximate
// for large combined shifts.
func (p SkewParams) MeshAngle() (float64, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}
	if p.Shift1+p.Shift2 == 0 {
		return p.Helical1 + p.Helical2, nil
	}
	pa := d2r(p.pressureAngle())
	paEff, err := p.workingPressureAngle()
	if err != nil {
		return 0, err
	}
	h1 := math.Atan(math.Tan(d2r(p.Helical1)) * math.Cos(pa) / math.Cos(paEff))
	h2 := math.Atan(math.Tan(d2r(p.Helical2)) * math.Cos(pa) / math.Cos(paEff))
	return r2d(h1 + h2), nil
}

// Shorten returns the addendum shortening in module units for the
// crossed mesh, zero when none is needed.
func (p SkewParams) Shorten() (float64, error) {
	q := p
	q.CircPitch = math.Pi // module 1; the result is in module units
	q.Backlash = 0
	a, err := q.GearDistance()
	if err != nil {
		return 0, err
	}
	y := a - (float64(p.Teeth1)/math.Cos(d2r(p.Helical1))+float64(p.Teeth2)/math.Cos(d2r(p.Helical2)))/2
	return math.Max(0, p.Shift1+p.Shift2-y), nil
}
