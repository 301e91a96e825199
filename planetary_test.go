package gears

import (
	"errors"
	"math"
	"testing"
)

func TestSolvePlanetaryExact(t *testing.T) {
	// ratio 5 with the ring fixed has exact solutions such as S=6, P=9, R=24
	l, err := SolvePlanetary(3, 90, RingFixed, 5, 0)
	if err != nil {
		t.Fatal(err)
	}
	if l.Ratio != 5 {
		t.Errorf("achieved ratio %v, want exactly 5", l.Ratio)
	}
	if l.RingTeeth != l.SunTeeth+2*l.PlanetTeeth {
		t.Errorf("closure violated: R=%d S=%d P=%d", l.RingTeeth, l.SunTeeth, l.PlanetTeeth)
	}
	if (l.SunTeeth+l.RingTeeth)%3 != 0 {
		t.Error("assembly condition violated for 3 planets")
	}
	if len(l.PlanetAngles) != 3 || l.PlanetAngles[1] != 120 {
		t.Errorf("planet angles %v", l.PlanetAngles)
	}
	if l.RingShift != l.PlanetShift {
		t.Error("ring shift should match the planet's")
	}
}

func TestSolvePlanetaryApproximate(t *testing.T) {
	l, err := SolvePlanetary(4, 72, RingFixed, 3.7, 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(l.Ratio-3.7) > 0.5 {
		t.Errorf("achieved ratio %v too far from 3.7", l.Ratio)
	}
	if l.RingTeeth > 72 {
		t.Errorf("ring %d exceeds the bound", l.RingTeeth)
	}
	if (l.SunTeeth+l.RingTeeth)%4 != 0 {
		t.Error("assembly condition violated for 4 planets")
	}
	// small suns need a profile shift
	if l.SunTeeth < 17 && l.SunShift == 0 {
		t.Errorf("sun with %d teeth should be shifted", l.SunTeeth)
	}
}

func TestSolvePlanetaryRatioKinds(t *testing.T) {
	sf, err := SolvePlanetary(3, 90, SunFixed, 1.3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if sf.Ratio <= 1 || sf.Ratio >= 2 {
		t.Errorf("sun-fixed ratio %v outside (1,2)", sf.Ratio)
	}
	cf, err := SolvePlanetary(3, 90, CarrierFixed, -4, 0)
	if err != nil {
		t.Fatal(err)
	}
	if cf.Ratio >= 0 {
		t.Errorf("carrier-fixed ratio %v should be reversing", cf.Ratio)
	}
}

func TestSolvePlanetaryErrors(t *testing.T) {
	if _, err := SolvePlanetary(0, 90, RingFixed, 5, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero planets: got %v", err)
	}
	if _, err := SolvePlanetary(3, 90, RingFixed, 0.5, 0); !errors.Is(err, ErrInfeasibleGeometry) {
		t.Errorf("carrier-output ratio below 1: got %v", err)
	}
	if _, err := SolvePlanetary(3, 90, CarrierFixed, 4, 0); !errors.Is(err, ErrInfeasibleGeometry) {
		t.Errorf("positive fixed-carrier ratio: got %v", err)
	}
	if _, err := SolvePlanetary(3, 90, PlanetaryRatio(99), 5, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown selector: got %v", err)
	}
}

func TestPlanetaryCarrierRadius(t *testing.T) {
	l, err := SolvePlanetary(3, 90, RingFixed, 5, 0)
	if err != nil {
		t.Fatal(err)
	}
	cp := CircularPitchFromModule(1.5)
	r, err := l.CarrierRadius(cp)
	if err != nil {
		t.Fatal(err)
	}
	nominal := 1.5 * float64(l.SunTeeth+l.PlanetTeeth) / 2
	if r < nominal-1e-9 {
		t.Errorf("carrier radius %v below the nominal %v", r, nominal)
	}
}
