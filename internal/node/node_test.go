package node

import (
	"math"
	"testing"

	"github.com/recallfx/tailored-ephemeris/internal/frame"
)

func TestTrueNodeJ2000(t *testing.T) {
	pos := True(frame.J2000, false)

	// Swiss Ephemeris: 123.95° at 2000-01-01 12:00. The 5-term
	// perturbation series lands within a few arcminutes.
	if math.Abs(frame.AngleDiff(pos.Longitude, 123.95)) > 0.1 {
		t.Errorf("true node = %v, want ~123.95", pos.Longitude)
	}
	if pos.Latitude != 0 || pos.Distance != 0 {
		t.Errorf("node latitude/distance must be 0, got %v / %v", pos.Latitude, pos.Distance)
	}
}

func TestMeanNodeJ2000(t *testing.T) {
	if got := Mean(frame.J2000); math.Abs(got-125.0445479) > 1e-9 {
		t.Errorf("mean node at J2000 = %v, want 125.0445479", got)
	}
}

func TestDefaultSpeedIsMeanMotion(t *testing.T) {
	pos := True(frame.J2000, false)
	if pos.SpeedLongitude != MeanDailyMotion {
		t.Errorf("default speed = %v, want the constant %v", pos.SpeedLongitude, MeanDailyMotion)
	}
}

func TestExactSpeedRetrogradeOnAverage(t *testing.T) {
	// The true node wobbles but regresses on average; sample a month
	// and require the mean exact speed to be negative.
	var sum float64
	n := 0
	for jd := frame.J2000; jd < frame.J2000+30; jd += 1.0 {
		sum += True(jd, true).SpeedLongitude
		n++
	}
	if avg := sum / float64(n); avg >= 0 {
		t.Errorf("average node speed over a month = %v, want < 0", avg)
	}
}

func TestMeanNodeRegression(t *testing.T) {
	// ~18.6-year cycle: the mean node loses about 19.34°/year.
	year := Mean(frame.J2000+365.25) - Mean(frame.J2000)
	year = frame.DegNorm180(year)
	if math.Abs(year+19.34) > 0.05 {
		t.Errorf("mean node moved %v° in a year, want ~-19.34", year)
	}
}
