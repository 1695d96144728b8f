package astro

import (
	"errors"

	ephemeris "github.com/recallfx/tailored-ephemeris"
	"github.com/recallfx/tailored-ephemeris/internal/solver"
)

// ErrNoPhaseFound is returned when no phase instant falls inside the
// search window, which only happens near the supported range limits.
var ErrNoPhaseFound = errors.New("no phase instant in search window")

// phaseSearchDays is slightly more than one synodic month, so any
// phase occurs at least once in the window.
const phaseSearchDays = 32.0

// NextNewMoon returns the Julian Day (UT) of the first new moon at or
// after jd: the instant the Moon's elongation from the Sun passes
// through 0°.
func NextNewMoon(jd float64) (float64, error) {
	return nextElongation(jd, 0.0)
}

// NextFullMoon returns the Julian Day (UT) of the first full moon at
// or after jd: elongation passing through 180°.
func NextFullMoon(jd float64) (float64, error) {
	return nextElongation(jd, 180.0)
}

func nextElongation(jd, targetDeg float64) (float64, error) {
	var calcErr error

	elongation := func(t float64) float64 {
		sun, err := ephemeris.CalcUT(t, ephemeris.Sun, false)
		if err != nil {
			calcErr = err
			return 0.0
		}
		moon, err := ephemeris.CalcUT(t, ephemeris.Moon, false)
		if err != nil {
			calcErr = err
			return 0.0
		}
		return normLon(moon.Longitude - sun.Longitude)
	}

	// Elongation grows ~12.2°/day; 256 samples over the window keep
	// consecutive offsets well under the wrap-detection threshold.
	r := solver.FindCrossing(elongation, jd, jd+phaseSearchDays, targetDeg, solver.Increasing, 256, 1e-6)
	if calcErr != nil {
		return 0, calcErr
	}
	if !r.OK {
		return 0, ErrNoPhaseFound
	}
	return r.JD, nil
}
