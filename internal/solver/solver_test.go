package solver

import (
	"math"
	"testing"
)

func TestFindCrossingLinear(t *testing.T) {
	// Angle rising 1°/day from 350°, wrapping through 0°.
	f := func(jd float64) float64 {
		return math.Mod(350.0+jd, 360.0)
	}

	r := FindCrossing(f, 0.0, 30.0, 15.0, Increasing, 64, 1e-8)
	if !r.OK {
		t.Fatal("no crossing found")
	}
	if math.Abs(r.JD-25.0) > 1e-6 {
		t.Errorf("crossing at jd %v, want 25.0", r.JD)
	}
}

func TestFindCrossingThroughWrap(t *testing.T) {
	// Target 0° sits exactly on the wrap boundary.
	f := func(jd float64) float64 {
		return math.Mod(350.0+jd, 360.0)
	}

	r := FindCrossing(f, 0.0, 30.0, 0.0, Increasing, 64, 1e-8)
	if !r.OK {
		t.Fatal("no crossing found")
	}
	if math.Abs(r.JD-10.0) > 1e-6 {
		t.Errorf("crossing at jd %v, want 10.0", r.JD)
	}
}

func TestFindCrossingDecreasing(t *testing.T) {
	f := func(jd float64) float64 {
		return math.Mod(100.0-2.0*jd+720.0, 360.0)
	}

	r := FindCrossing(f, 0.0, 40.0, 40.0, Decreasing, 128, 1e-8)
	if !r.OK {
		t.Fatal("no crossing found")
	}
	if math.Abs(r.JD-30.0) > 1e-6 {
		t.Errorf("crossing at jd %v, want 30.0", r.JD)
	}
}

func TestFindCrossingNone(t *testing.T) {
	f := func(jd float64) float64 { return 10.0 }

	if r := FindCrossing(f, 0.0, 10.0, 200.0, Either, 32, 1e-8); r.OK {
		t.Errorf("unexpected crossing at %v", r.JD)
	}
	if r := FindCrossing(f, 10.0, 0.0, 10.0, Either, 32, 1e-8); r.OK {
		t.Error("inverted interval must not report a crossing")
	}
}
