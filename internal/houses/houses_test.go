package houses

import (
	"math"
	"testing"

	"github.com/recallfx/tailored-ephemeris/internal/frame"
)

func angleGap(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180.0 {
		d = 360.0 - d
	}
	return d
}

func TestAnglesMirrorCusps(t *testing.T) {
	r := Placidus(frame.J2000, 47.38, 8.54)

	// The exported angles are the same values as their cusps, not
	// recomputed.
	if r.Ascendant != r.Cusps[1] {
		t.Errorf("Ascendant %v != Cusps[1] %v", r.Ascendant, r.Cusps[1])
	}
	if r.MC != r.Cusps[10] {
		t.Errorf("MC %v != Cusps[10] %v", r.MC, r.Cusps[10])
	}
}

func TestOppositeCusps(t *testing.T) {
	for _, loc := range []struct{ lat, lon float64 }{
		{47.38, 8.54},   // Zurich
		{51.5074, -0.1278}, // London
		{-33.87, 151.21},   // Sydney
		{0.0, 0.0},
	} {
		r := Placidus(frame.J2000, loc.lat, loc.lon)
		for i := 1; i <= 6; i++ {
			opp := frame.DegNorm(r.Cusps[i] + 180.0)
			if angleGap(opp, r.Cusps[i+6]) > 0.01 {
				t.Errorf("lat %v: cusp %d (%v) and cusp %d (%v) not opposite",
					loc.lat, i, r.Cusps[i], i+6, r.Cusps[i+6])
			}
		}
	}
}

func TestLondonJ2000Reference(t *testing.T) {
	// Swiss Ephemeris reference for London, 2000-01-01 12:00 UT:
	// ASC = 24.01°, MC = 280.47°.
	r := Placidus(frame.J2000, 51.5074, -0.1278)

	if angleGap(r.Ascendant, 24.01) > 0.5 {
		t.Errorf("Ascendant = %v, want ~24.01 (rising, not setting, intersection)", r.Ascendant)
	}
	if angleGap(r.MC, 280.47) > 1.0 {
		t.Errorf("MC = %v, want ~280.47", r.MC)
	}
}

func TestCuspsNormalizedAndMonotonic(t *testing.T) {
	for _, loc := range []struct{ lat, lon float64 }{
		{47.38, 8.54},
		{51.5074, -0.1278},
		{33.45, -112.07},
		{-23.55, -46.63},
	} {
		r := Placidus(2460310.5, loc.lat, loc.lon)

		for i := 1; i <= 12; i++ {
			if r.Cusps[i] < 0 || r.Cusps[i] >= 360 {
				t.Errorf("lat %v: cusp %d = %v outside [0,360)", loc.lat, i, r.Cusps[i])
			}
		}

		// Cusps progress monotonically around the circle; for these
		// mid-latitudes each house spans well within (5°, 80°).
		for i := 1; i <= 12; i++ {
			next := i%12 + 1
			span := frame.DegNorm(r.Cusps[next] - r.Cusps[i])
			if span < 5.0 || span > 80.0 {
				t.Errorf("lat %v: house %d span %v° outside (5,80)", loc.lat, i, span)
			}
		}
	}
}

func TestMCAtAriesPoint(t *testing.T) {
	// With ARMC = 0 the MC is the Aries point.
	eps := frame.Obliquity(frame.J2000)
	mc := calcMC(0.0, eps)
	if mc > 0.01 && mc < frame.TwoPi-0.01 {
		t.Errorf("calcMC(0) = %v rad, want ~0", mc)
	}
}

func TestVertexInWesternHalf(t *testing.T) {
	// For mid-northern latitudes the Vertex sits in the western
	// hemisphere of the chart (houses 5-8 side), roughly opposite the
	// Ascendant half. Just pin that it is normalized and distinct.
	r := Placidus(frame.J2000, 51.5074, -0.1278)
	if r.Vertex < 0 || r.Vertex >= 360 {
		t.Errorf("Vertex = %v outside [0,360)", r.Vertex)
	}
	if angleGap(r.Vertex, r.Ascendant) < 1.0 {
		t.Errorf("Vertex %v suspiciously equal to Ascendant %v", r.Vertex, r.Ascendant)
	}
}

func TestEquatorObserver(t *testing.T) {
	// On the equator tan(lat)=0: the ascensional difference vanishes
	// and the iteration still converges to a valid wheel.
	r := Placidus(frame.J2000, 0.0, 0.0)
	for i := 1; i <= 12; i++ {
		if math.IsNaN(r.Cusps[i]) {
			t.Fatalf("cusp %d is NaN at the equator", i)
		}
	}
}

func TestCircumpolarFallback(t *testing.T) {
	// At 75°N in winter the Placidus condition fails for some cusps;
	// they must fall back to the raw right ascension instead of
	// diverging or NaN-ing.
	r := Placidus(2451910.3, 75.0, 20.0)
	for i := 1; i <= 12; i++ {
		if math.IsNaN(r.Cusps[i]) || r.Cusps[i] < 0 || r.Cusps[i] >= 360 {
			t.Errorf("cusp %d = %v at 75°N, want a defined fallback in [0,360)", i, r.Cusps[i])
		}
	}
}

func TestAsc1QuadrantBoundaries(t *testing.T) {
	eps := frame.Obliquity(frame.J2000)
	sinEps, cosEps := math.Sin(eps), math.Cos(eps)

	// RA 0/90/180/270 map onto the quadrant structure without drift.
	for _, ra := range []float64{0.0, 90.0, 180.0, 270.0} {
		got := asc1(ra, 0.0, sinEps, cosEps)
		if got < 0 || got >= 360 {
			t.Errorf("asc1(%v) = %v outside [0,360)", ra, got)
		}
	}

	// At pole height 0, RA 90° converts to ecliptic longitude 90°.
	if got := asc1(90.0, 0.0, sinEps, cosEps); math.Abs(got-90.0) > 1e-9 {
		t.Errorf("asc1(90, 0) = %v, want 90", got)
	}
}

func TestAsc1PolarPoleHeights(t *testing.T) {
	eps := frame.Obliquity(frame.J2000)
	sinEps, cosEps := math.Sin(eps), math.Cos(eps)

	if got := asc1(123.0, 90.0, sinEps, cosEps); got != 180.0 {
		t.Errorf("asc1 at f=+90 = %v, want 180", got)
	}
	if got := asc1(123.0, -90.0, sinEps, cosEps); got != 0.0 {
		t.Errorf("asc1 at f=-90 = %v, want 0", got)
	}
}
