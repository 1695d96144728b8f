package frame

import (
	"math"
	"testing"
)

func TestDeltaTJ2000(t *testing.T) {
	// Around 2000, delta-T is about 63.8 seconds.
	dt := DeltaT(J2000) * 86400.0
	if math.Abs(dt-63.8) > 1.0 {
		t.Errorf("DeltaT(J2000) = %v s, want 63.8 ± 1", dt)
	}
}

func TestDeltaTMonotonicRecent(t *testing.T) {
	// Delta-T grows through the 2005-2050 branch.
	prev := DeltaT(J2000 + 6*365.25)
	for y := 7; y < 40; y++ {
		cur := DeltaT(J2000 + float64(y)*365.25)
		if cur < prev {
			t.Errorf("DeltaT decreased between year offsets %d and %d", y-1, y)
		}
		prev = cur
	}
}

func TestDeltaTDeepPastPositiveAndLarge(t *testing.T) {
	// Around -1000 the parabola gives a few hours' worth of seconds.
	jd := J2000 - 3000*365.25
	dt := DeltaT(jd) * 86400.0
	if dt < 3600 {
		t.Errorf("DeltaT at -1000 = %v s, expected over an hour", dt)
	}
}
