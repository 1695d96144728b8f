package solver

import "math"

// AngleFunc returns an angle in degrees at Julian day jd. The angle is
// treated as circular: crossings are detected on the wrapped signed
// difference from the target, so a function sweeping through 360° to 0°
// still brackets correctly.
type AngleFunc func(jd float64) float64

// Direction describes which way the angle moves through the target.
type Direction int

const (
	// Increasing means the wrapped offset rises through zero.
	Increasing Direction = iota
	// Decreasing means the wrapped offset falls through zero.
	Decreasing
	// Either accepts any sign change.
	Either
)

// Result holds the output of an angle crossing search.
type Result struct {
	JD float64 // Julian day of the crossing
	OK bool    // true if a crossing was found
}

// wrapDiff maps angle-target onto (-180, 180].
func wrapDiff(angle, target float64) float64 {
	d := math.Mod(angle-target, 360.0)
	if d <= -180.0 {
		d += 360.0
	} else if d > 180.0 {
		d -= 360.0
	}
	return d
}

// FindCrossing searches [startJD, endJD] for a Julian day where f
// passes through targetDeg in the given direction. It samples the
// interval to bracket a sign change in the wrapped offset, then
// bisects to tolDays.
func FindCrossing(f AngleFunc, startJD, endJD, targetDeg float64, dir Direction, steps int, tolDays float64) Result {
	if startJD >= endJD {
		return Result{OK: false}
	}
	if steps < 2 {
		steps = 2
	}

	interval := (endJD - startJD) / float64(steps-1)

	prevJD := startJD
	prevOff := wrapDiff(f(prevJD), targetDeg)

	for i := 1; i < steps; i++ {
		jd := startJD + float64(i)*interval
		off := wrapDiff(f(jd), targetDeg)

		if hasCrossing(prevOff, off, dir) {
			return bisect(f, prevJD, jd, targetDeg, dir, tolDays)
		}

		prevJD, prevOff = jd, off
	}

	return Result{OK: false}
}

func hasCrossing(o1, o2 float64, dir Direction) bool {
	// A jump bigger than half a turn means the wrap boundary moved
	// between samples, not the target.
	if math.Abs(o2-o1) > 180.0 {
		return false
	}
	switch dir {
	case Increasing:
		return o1 < 0 && o2 >= 0
	case Decreasing:
		return o1 > 0 && o2 <= 0
	default:
		return o1*o2 <= 0
	}
}

func bisect(f AngleFunc, a, b, targetDeg float64, dir Direction, tolDays float64) Result {
	offA := wrapDiff(f(a), targetDeg)
	offB := wrapDiff(f(b), targetDeg)

	if !hasCrossing(offA, offB, dir) {
		return Result{OK: false}
	}

	for b-a > tolDays {
		mid := a + (b-a)/2.0
		offM := wrapDiff(f(mid), targetDeg)

		if hasCrossing(offA, offM, dir) {
			b = mid
			offB = offM
		} else {
			a = mid
			offA = offM
		}
	}

	return Result{
		JD: a + (b-a)/2.0,
		OK: true,
	}
}
