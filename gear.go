package gears

import (
	"fmt"
	"math"
)

// Gear describes a single involute gear. The zero value is not usable;
// CircPitch and Teeth must be set. Remaining fields default to common
// engineering values: 20° pressure angle, clearance of a quarter module,
// no helix, no backlash.
type Gear struct {
	// CircPitch is the circular pitch [mm]. Use PitchSpec.Normalize or
	// the CircularPitchFrom* conversions to obtain it from module or
	// diametral pitch.
	CircPitch float64
	// Teeth is the tooth count. Profile generation requires at least 4.
	Teeth int
	// PressureAngle is the normal pressure angle in degrees.
	// Zero selects 20°.
	PressureAngle float64
	// Helical is the helix angle in degrees. Zero means a spur gear.
	Helical float64
	// ProfileShift is the profile shift in module units. Ignored when
	// AutoShift is set.
	ProfileShift float64
	// AutoShift computes the profile shift that avoids undercutting
	// (see AutoProfileShift) instead of using ProfileShift.
	AutoShift bool
	// Clearance is the extra radial depth cut below the dedendum [mm].
	// Zero selects module/4. Set a small negative value to reduce the
	// root depth; this is allowed but can degrade the root geometry.
	Clearance float64
	// Backlash is the circumferential play added between mating
	// flanks [mm], split evenly by thinning each tooth.
	Backlash float64
	// Internal inverts the gear for use as a ring: teeth point inward,
	// addendum and dedendum swap roles and the profile shift acts with
	// opposite sign.
	Internal bool
	// Shorten reduces the addendum in module units. Used to regain tip
	// clearance when meshed gears are mounted closer than the sum of
	// their pitch radii.
	Shorten float64
}

// Module returns the gear's module [mm].
func (g Gear) Module() float64 { return ModuleValue(g.CircPitch) }

// NormalPressureAngle returns the normal pressure angle in degrees with
// the 20° default applied.
func (g Gear) NormalPressureAngle() float64 { return g.pressureAngle() }

// RootClearance returns the clearance in millimetres with the module/4
// default applied.
func (g Gear) RootClearance() float64 { return g.clearance() }

// Shift returns the effective profile shift in module units, computed
// by AutoProfileShift when AutoShift is set.
func (g Gear) Shift() float64 { return g.shift() }

func (g Gear) pressureAngle() float64 {
	if g.PressureAngle == 0 {
		return 20
	}
	return g.PressureAngle
}

func (g Gear) clearance() float64 {
	if g.Clearance == 0 {
		return g.Module() / 4
	}
	return g.Clearance
}

func (g Gear) shift() float64 {
	if g.AutoShift {
		return AutoProfileShift(g.Teeth, g.pressureAngle(), g.Helical)
	}
	return g.ProfileShift
}

// Validate checks the gear parameters. It is called by every method that
// builds geometry; callers constructing gears from user input may call it
// directly for early feedback.
func (g Gear) Validate() error {
	switch {
	case math.IsNaN(g.CircPitch) || math.IsInf(g.CircPitch, 0) || g.CircPitch <= 0:
		return fmt.Errorf("%w: circular pitch must be positive and finite, got %g", ErrInvalidInput, g.CircPitch)
	case g.Teeth <= 3:
		return fmt.Errorf("%w: need at least 4 teeth, got %d", ErrInvalidInput, g.Teeth)
	case g.PressureAngle < 0 || g.PressureAngle >= 90:
		return fmt.Errorf("%w: pressure angle must be in [0,90), got %g", ErrInvalidInput, g.PressureAngle)
	case math.Abs(g.Helical) >= 90:
		return fmt.Errorf("%w: helix angle must be in (-90,90), got %g", ErrInvalidInput, g.Helical)
	case !g.AutoShift && math.Abs(g.ProfileShift) >= 1:
		return fmt.Errorf("%w: profile shift must be in (-1,1) modules, got %g", ErrInvalidInput, g.ProfileShift)
	case g.Backlash < 0:
		return fmt.Errorf("%w: backlash must be non-negative, got %g", ErrInvalidInput, g.Backlash)
	case g.Shorten < 0:
		return fmt.Errorf("%w: shorten must be non-negative, got %g", ErrInvalidInput, g.Shorten)
	case math.IsNaN(g.Clearance) || math.Abs(g.Clearance) > g.Module():
		return fmt.Errorf("%w: clearance magnitude must not exceed one module", ErrInvalidInput)
	}
	return nil
}
