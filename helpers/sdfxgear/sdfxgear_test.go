package sdfxgear

import (
	"errors"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/soypat/gears"
)

func TestGearSolid(t *testing.T) {
	g := gears.Gear{CircPitch: gears.CircularPitchFromModule(2), Teeth: 20}
	s, err := Gear(g, 8, 5)
	if err != nil {
		t.Fatal(err)
	}
	bb := s.BoundingBox()
	if got := bb.Max.Z - bb.Min.Z; got < 8-1e-9 {
		t.Errorf("face width %v, want at least 8", got)
	}
	if d := s.Evaluate(v3.Vec{Y: 20}); d >= 0 {
		t.Errorf("tooth should be solid, got %v", d)
	}
	if d := s.Evaluate(v3.Vec{}); d <= 0 {
		t.Errorf("bore should be empty, got %v", d)
	}
	if _, err := Gear(g, 8, 40); !errors.Is(err, gears.ErrInfeasibleGeometry) {
		t.Errorf("oversized shaft: got %v", err)
	}
}

func TestRingGearSolid(t *testing.T) {
	g := gears.Gear{CircPitch: gears.CircularPitchFromModule(2), Teeth: 36, Internal: true}
	s, err := RingGear(g, 8, 3)
	if err != nil {
		t.Fatal(err)
	}
	if d := s.Evaluate(v3.Vec{}); d <= 0 {
		t.Errorf("ring center should be empty, got %v", d)
	}
	if d := s.Evaluate(v3.Vec{X: g.OuterRadius() + 1.5}); d >= 0 {
		t.Errorf("rim should be solid, got %v", d)
	}
	external := gears.Gear{CircPitch: g.CircPitch, Teeth: 36}
	if _, err := RingGear(external, 8, 3); !errors.Is(err, gears.ErrInvalidInput) {
		t.Errorf("external gear as ring: got %v", err)
	}
}
