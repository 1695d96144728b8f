package moon

import (
	"math"
	"testing"

	"github.com/recallfx/tailored-ephemeris/internal/frame"
)

func TestCalcAtJ2000(t *testing.T) {
	pos := Calc(frame.J2000, true)

	// Swiss Ephemeris (Moshier) gives 223.32° for 2000-01-01 12:00 ET;
	// the reduced series stays within a couple arcminutes of that.
	if math.Abs(frame.AngleDiff(pos.Longitude, 223.32)) > 0.05 {
		t.Errorf("Moon longitude = %v, want ~223.32", pos.Longitude)
	}
	if pos.Latitude < -6.0 || pos.Latitude > 6.0 {
		t.Errorf("Moon latitude = %v, outside ±6°", pos.Latitude)
	}
	// Lunar distance is ~0.0026 AU
	if pos.Distance < 0.002 || pos.Distance > 0.003 {
		t.Errorf("Moon distance = %v AU, want ~0.0026", pos.Distance)
	}
}

func TestCalcSpeed(t *testing.T) {
	// The Moon covers roughly 12-15 degrees per day.
	for _, jd := range []float64{frame.J2000, 2460325.0, 2440600.25} {
		pos := Calc(jd, true)
		if pos.SpeedLongitude < 10.0 || pos.SpeedLongitude > 16.0 {
			t.Errorf("jd %v: Moon speed = %v °/day, want 10..16", jd, pos.SpeedLongitude)
		}
	}
}

func TestSeriesTableSanity(t *testing.T) {
	// The coefficient tables drive everything; pin their shape and a
	// few anchor amplitudes against the published theory.
	if len(lonTerms) != 59 {
		t.Errorf("longitude table has %d terms, want 59", len(lonTerms))
	}
	if len(latTerms) != 60 {
		t.Errorf("latitude table has %d terms, want 60", len(latTerms))
	}
	if len(distTerms) != 31 {
		t.Errorf("distance table has %d terms, want 31", len(distTerms))
	}

	if lonTerms[0].amp != 6288774 || lonTerms[0].mp != 1 {
		t.Errorf("leading longitude term is %+v, want 6288774·sin(Mp)", lonTerms[0])
	}
	if latTerms[0].amp != 5128122 || latTerms[0].f != 1 {
		t.Errorf("leading latitude term is %+v, want 5128122·sin(F)", latTerms[0])
	}
	if distTerms[0].amp != -20905355 || distTerms[0].mp != 1 {
		t.Errorf("leading distance term is %+v, want -20905355·cos(Mp)", distTerms[0])
	}

	// Every term scaled by e or e² must involve the Sun's anomaly.
	for _, tbl := range [][]term{lonTerms, latTerms, distTerms} {
		for _, tm := range tbl {
			if tm.ePow > 0 && tm.m == 0 {
				t.Errorf("term %+v has eccentricity power but no M argument", tm)
			}
		}
	}
}

func TestLongitudeNormalized(t *testing.T) {
	for jd := 2451500.0; jd < 2451560.0; jd += 3.7 {
		pos := Calc(jd, false)
		if pos.Longitude < 0 || pos.Longitude >= 360 {
			t.Errorf("jd %v: longitude %v outside [0,360)", jd, pos.Longitude)
		}
	}
}
