package gears

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestSkewReducesToParallel(t *testing.T) {
	cp := CircularPitchFromModule(2)
	skew := SkewParams{CircPitch: cp, Teeth1: 20, Teeth2: 30}
	d, err := skew.GearDistance()
	if err != nil {
		t.Fatal(err)
	}
	parallel := MeshParams{CircPitch: cp, Teeth1: 20, Teeth2: 30}
	want, err := parallel.GearDistance()
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(d, want, 1e-9) {
		t.Errorf("zero-helix crossed mesh %v should equal the parallel one %v", d, want)
	}
	ang, err := skew.MeshAngle()
	if err != nil {
		t.Fatal(err)
	}
	if ang != 0 {
		t.Errorf("zero-helix mesh angle %v, want 0", ang)
	}
}

func TestSkewMeshAngle(t *testing.T) {
	p := SkewParams{CircPitch: CircularPitchFromModule(2), Teeth1: 15, Teeth2: 24, Helical1: 35, Helical2: 20}
	ang, err := p.MeshAngle()
	if err != nil {
		t.Fatal(err)
	}
	if ang != 55 {
		t.Errorf("unshifted mesh angle %v, want the helix sum 55", ang)
	}
	p.Shift1, p.Shift2 = 0.2, 0.1
	shifted, err := p.MeshAngle()
	if err != nil {
		t.Fatal(err)
	}
	// positive shifts enlarge the working cylinders and steepen the
	// working helix slightly
	if shifted <= 55 || shifted > 60 {
		t.Errorf("shifted mesh angle out of range: %v", shifted)
	}
}

func TestSkewDistanceShifted(t *testing.T) {
	p := SkewParams{CircPitch: CircularPitchFromModule(2), Teeth1: 15, Teeth2: 24, Helical1: 35, Helical2: 20}
	d0, err := p.GearDistance()
	if err != nil {
		t.Fatal(err)
	}
	p.Shift1, p.Shift2 = 0.2, 0.1
	d1, err := p.GearDistance()
	if err != nil {
		t.Fatal(err)
	}
	if d1 <= d0 {
		t.Errorf("positive shifts must spread crossed centers: %v <= %v", d1, d0)
	}
	s, err := p.Shorten()
	if err != nil {
		t.Fatal(err)
	}
	if s <= 0 || s >= 0.3 {
		t.Errorf("crossed-mesh shortening out of range: %v", s)
	}
}

func TestSkewValidate(t *testing.T) {
	for _, p := range []SkewParams{
		{CircPitch: 0, Teeth1: 10, Teeth2: 10},
		{CircPitch: 5, Teeth1: 0, Teeth2: 10},
		{CircPitch: 5, Teeth1: 10, Teeth2: 10, Helical1: 90},
	} {
		if _, err := p.GearDistance(); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%+v: want ErrInvalidInput, got %v", p, err)
		}
	}
}
