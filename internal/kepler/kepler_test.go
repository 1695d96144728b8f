package kepler

import (
	"math"
	"testing"
)

// The solver must satisfy Kepler's equation to 1e-10 for every
// eccentricity the engine feeds it (always below 0.25).
func TestSolveSatisfiesEquation(t *testing.T) {
	for _, e := range []float64{0.0, 0.01, 0.0934, 0.2056, 0.2488, 0.249} {
		for m := -6.0; m <= 6.0; m += 0.37 {
			ea := Solve(m, e)
			residual := ea - e*math.Sin(ea) - m
			if math.Abs(residual) > 1e-10 {
				t.Errorf("Solve(M=%v, e=%v): residual %v", m, e, residual)
			}
		}
	}
}

func TestSolveCircularOrbit(t *testing.T) {
	// With e=0 the eccentric anomaly equals the mean anomaly.
	for _, m := range []float64{0.0, 0.5, 2.0, -1.3} {
		if ea := Solve(m, 0.0); math.Abs(ea-m) > 1e-15 {
			t.Errorf("Solve(%v, 0) = %v, want %v", m, ea, m)
		}
	}
}

func TestSolveKnownValue(t *testing.T) {
	// M=0.5, e=0.1: check against the defining relation.
	ea := Solve(0.5, 0.1)
	if check := ea - 0.1*math.Sin(ea); math.Abs(check-0.5) > 1e-10 {
		t.Errorf("Solve(0.5, 0.1): E - e sin E = %v, want 0.5", check)
	}
}
