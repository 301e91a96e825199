package gears

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestPitchConversions(t *testing.T) {
	const tol = 1e-12
	if got := CircularPitchFromModule(2); !scalar.EqualWithinAbs(got, 2*math.Pi, tol) {
		t.Errorf("module 2: got cp %v", got)
	}
	if got := ModuleValue(CircularPitchFromModule(1.25)); !scalar.EqualWithinAbs(got, 1.25, tol) {
		t.Errorf("module round trip: got %v", got)
	}
	if got := DiametralPitch(CircularPitchFromDiametral(24)); !scalar.EqualWithinAbs(got, 24, tol) {
		t.Errorf("diametral round trip: got %v", got)
	}
	// 1 diametral pitch is a 25.4 mm module
	if got := ModuleValue(CircularPitchFromDiametral(1)); !scalar.EqualWithinAbs(got, MillimetresPerInch, tol) {
		t.Errorf("dp 1: got module %v", got)
	}
}

func TestPitchSpecNormalize(t *testing.T) {
	cp, err := PitchSpec{Module: 3}.Normalize()
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(cp, 3*math.Pi, 1e-12) {
		t.Errorf("got %v", cp)
	}
	for _, spec := range []PitchSpec{
		{},
		{Module: 2, CircularPitch: 5},
		{Module: 2, DiametralPitch: 24},
		{Module: -1},
		{CircularPitch: math.Inf(1)},
		{DiametralPitch: math.NaN()},
	} {
		if _, err := spec.Normalize(); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%+v: want ErrInvalidInput, got %v", spec, err)
		}
	}
}

func TestGearValidate(t *testing.T) {
	cp := CircularPitchFromModule(2)
	good := Gear{CircPitch: cp, Teeth: 20}
	if err := good.Validate(); err != nil {
		t.Fatal(err)
	}
	for _, g := range []Gear{
		{CircPitch: 0, Teeth: 20},
		{CircPitch: -cp, Teeth: 20},
		{CircPitch: cp, Teeth: 3},
		{CircPitch: cp, Teeth: 20, PressureAngle: 90},
		{CircPitch: cp, Teeth: 20, PressureAngle: -5},
		{CircPitch: cp, Teeth: 20, Helical: 90},
		{CircPitch: cp, Teeth: 20, ProfileShift: 1.5},
		{CircPitch: cp, Teeth: 20, Backlash: -0.1},
		{CircPitch: cp, Teeth: 20, Shorten: -0.1},
		{CircPitch: cp, Teeth: 20, Clearance: 5},
	} {
		if err := g.Validate(); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%+v: want ErrInvalidInput, got %v", g, err)
		}
	}
}

func TestRadii(t *testing.T) {
	cp := CircularPitchFromModule(2)
	g := Gear{CircPitch: cp, Teeth: 20}
	const tol = 1e-9
	if got := g.PitchRadius(); !scalar.EqualWithinAbs(got, 20, tol) {
		t.Errorf("pitch radius: got %v", got)
	}
	if got := g.OuterRadius(); !scalar.EqualWithinAbs(got, 22, tol) {
		t.Errorf("outer radius: got %v", got)
	}
	if got := g.rootRadiusNominal(); !scalar.EqualWithinAbs(got, 17.5, tol) {
		t.Errorf("root radius: got %v", got)
	}
	if got := g.BaseRadius(); !scalar.EqualWithinAbs(got, 20*math.Cos(d2r(20)), tol) {
		t.Errorf("base radius: got %v", got)
	}
	// helix angle grows the pitch radius by 1/cos(beta)
	h := Gear{CircPitch: cp, Teeth: 20, Helical: 30}
	if got := h.PitchRadius(); !scalar.EqualWithinAbs(got, 20/math.Cos(d2r(30)), tol) {
		t.Errorf("helical pitch radius: got %v", got)
	}
	// transverse pressure angle reduces to the normal one for spur gears
	if got := transversePressureAngle(20, 0); !scalar.EqualWithinAbs(got, 20, tol) {
		t.Errorf("transverse PA at 0 helix: got %v", got)
	}
	if got := transversePressureAngle(20, 30); got <= 20 {
		t.Errorf("transverse PA should exceed normal PA for helical gears, got %v", got)
	}
}

func TestRadiiOrdering(t *testing.T) {
	for _, teeth := range []int{5, 8, 13, 21, 34, 55} {
		for _, shift := range []float64{-0.3, 0, 0.4} {
			g := Gear{CircPitch: CircularPitchFromModule(1.5), Teeth: teeth, ProfileShift: shift}
			prad, arad, rrad, brad := g.PitchRadius(), g.OuterRadius(), g.rootRadiusNominal(), g.BaseRadius()
			if !(rrad < prad && prad < arad) {
				t.Errorf("z=%d x=%v: want root < pitch < outer, got %v %v %v", teeth, shift, rrad, prad, arad)
			}
			if brad >= prad {
				t.Errorf("z=%d: base radius %v should be below pitch radius %v", teeth, brad, prad)
			}
		}
	}
}

func TestInternalRadiiSwap(t *testing.T) {
	cp := CircularPitchFromModule(2)
	g := Gear{CircPitch: cp, Teeth: 36, Internal: true}
	const tol = 1e-9
	// outer extent is the dedendum region, inner the addendum region
	if got := g.OuterRadius(); !scalar.EqualWithinAbs(got, 36+2+0.5, tol) {
		t.Errorf("internal outer radius: got %v", got)
	}
	if got := g.rootRadiusNominal(); !scalar.EqualWithinAbs(got, 36-2, tol) {
		t.Errorf("internal root radius: got %v", got)
	}
	// profile shift acts with opposite sign
	s := Gear{CircPitch: cp, Teeth: 36, Internal: true, ProfileShift: 0.3}
	if s.OuterRadius() <= g.OuterRadius() {
		t.Error("positive shift should deepen an internal gear's outer extent")
	}
}
