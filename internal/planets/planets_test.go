package planets

import (
	"math"
	"testing"

	"github.com/recallfx/tailored-ephemeris/internal/frame"
)

func TestSunAtJ2000(t *testing.T) {
	pos := Sun(frame.J2000, true)

	// Sun longitude at J2000 is ~280.4° (geocentric, of date epoch
	// differences stay well under a degree here).
	if math.Abs(frame.AngleDiff(pos.Longitude, 280.4)) > 1.0 {
		t.Errorf("Sun longitude = %v, want ~280.4", pos.Longitude)
	}
	if pos.Latitude != 0 {
		t.Errorf("Sun latitude = %v, want 0", pos.Latitude)
	}
	// Early January: Earth near perihelion.
	if pos.Distance < 0.98 || pos.Distance > 0.99 {
		t.Errorf("Sun distance = %v AU, want ~0.983", pos.Distance)
	}
	// Sun moves ~1°/day prograde.
	if pos.SpeedLongitude < 0.95 || pos.SpeedLongitude > 1.05 {
		t.Errorf("Sun speed = %v °/day, want ~1.02", pos.SpeedLongitude)
	}
}

func TestGeocentricReturnsValidPositions(t *testing.T) {
	for idx := Mercury; idx <= Pluto; idx++ {
		pos := Geocentric(frame.J2000, idx, true)
		if pos.Longitude < 0 || pos.Longitude >= 360 {
			t.Errorf("planet %d: longitude %v outside [0,360)", idx, pos.Longitude)
		}
		if pos.Distance <= 0 {
			t.Errorf("planet %d: non-positive distance %v", idx, pos.Distance)
		}
		if math.Abs(pos.Latitude) > 20 {
			t.Errorf("planet %d: implausible latitude %v", idx, pos.Latitude)
		}
	}
}

func TestEarthHeliocentricOppositeSun(t *testing.T) {
	// The Earth seen from the Sun is 180° from the Sun seen from the
	// Earth, to within the truncation of the two models.
	for _, jd := range []float64{frame.J2000, 2460310.0, 2440587.5} {
		sun := Sun(jd, false)
		earth := EarthHeliocentric(jd, false)

		diff := math.Abs(frame.AngleDiff(earth.Longitude, sun.Longitude))
		if math.Abs(diff-180.0) > 1.0 {
			t.Errorf("jd %v: Earth helio %v vs Sun geo %v, separation %v want ~180",
				jd, earth.Longitude, sun.Longitude, diff)
		}
	}
}

func TestEarthHeliocentricDistance(t *testing.T) {
	// Perihelion 0.983 AU, aphelion 1.017 AU.
	for jd := frame.J2000; jd < frame.J2000+366; jd += 30.0 {
		earth := EarthHeliocentric(jd, false)
		if earth.Distance < 0.983 || earth.Distance > 1.017 {
			t.Errorf("jd %v: Earth distance %v outside [0.983, 1.017]", jd, earth.Distance)
		}
	}
}

func TestHeliocentricSpeedsPositiveAndOrdered(t *testing.T) {
	jd := 2460310.5 // 2024-01-01 12:00

	speeds := make([]float64, 0, 8)
	for idx := Mercury; idx <= Pluto; idx++ {
		pos := Heliocentric(jd, idx, true)
		if pos.SpeedLongitude <= 0 {
			t.Errorf("planet %d: heliocentric speed %v, want > 0", idx, pos.SpeedLongitude)
		}
		speeds = append(speeds, pos.SpeedLongitude)
	}

	// Kepler's third law: outer planets move slower.
	for i := 1; i < len(speeds); i++ {
		if speeds[i] >= speeds[i-1] {
			t.Errorf("planet %d (%v °/day) not slower than planet %d (%v °/day)",
				i, speeds[i], i-1, speeds[i-1])
		}
	}
}

func TestHeliocentricDistanceBands(t *testing.T) {
	jd := 2460310.5
	cases := []struct {
		idx      Index
		min, max float64
	}{
		{Mercury, 0.30, 0.47},
		{Venus, 0.71, 0.74},
		{Jupiter, 4.9, 5.5},
		{Neptune, 29.7, 30.5},
	}
	for _, c := range cases {
		pos := Heliocentric(jd, c.idx, false)
		if pos.Distance < c.min || pos.Distance > c.max {
			t.Errorf("planet %d: distance %v outside [%v, %v]", c.idx, pos.Distance, c.min, c.max)
		}
	}
}
