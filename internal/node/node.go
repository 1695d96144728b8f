// Package node computes the longitude of the Moon's ascending node.
//
// The node is a geometric line, not a body: latitude and distance are
// 0 by convention.
package node

import (
	"math"

	"github.com/recallfx/tailored-ephemeris/internal/frame"
)

// MeanDailyMotion is the mean retrograde motion of the node in
// degrees/day, returned as a cheap speed approximation when the exact
// instantaneous speed is not requested.
const MeanDailyMotion = -0.0529539

// Position is the node's position. Latitude and distance are always 0.
type Position struct {
	Longitude      float64
	Latitude       float64
	Distance       float64
	SpeedLongitude float64
}

// True returns the true (osculating) ascending node at the given
// ephemeris time: the mean node corrected by the dominant periodic
// perturbations.
//
// When calcSpeed is false the speed field carries the constant mean
// retrograde motion; callers needing the exact instantaneous speed
// must ask for it.
func True(jdET float64, calcSpeed bool) Position {
	t := (jdET - frame.J2000) / frame.DaysPerCentury

	omegaMean := Mean(jdET)

	// Fundamental arguments for the perturbation series
	d := frame.DegNorm(297.8501921+445267.1114034*t-
		0.0018819*t*t) * frame.DegToRad
	m := frame.DegNorm(357.5291092+35999.0502909*t) * frame.DegToRad
	mp := frame.DegNorm(134.9633964+477198.8675055*t) * frame.DegToRad
	f := frame.DegNorm(93.2720950+483202.0175233*t) * frame.DegToRad

	deltaOmega := -1.4979*math.Sin(2.0*(d-f)) -
		0.1500*math.Sin(m) -
		0.1226*math.Sin(2.0*d) +
		0.1176*math.Sin(2.0*f) -
		0.0801*math.Sin(2.0*(mp-f))

	omega := frame.DegNorm(omegaMean + deltaOmega)

	speed := MeanDailyMotion
	if calcSpeed {
		const dt = 0.1
		pos2 := True(jdET+dt, false)
		speed = frame.AngleDiff(pos2.Longitude, omega) / dt
	}

	return Position{
		Longitude:      omega,
		SpeedLongitude: speed,
	}
}

// Mean returns the mean ascending-node longitude in degrees.
func Mean(jdET float64) float64 {
	t := (jdET - frame.J2000) / frame.DaysPerCentury

	return frame.DegNorm(125.0445479 - 1934.1362891*t +
		0.0020754*t*t +
		t*t*t/467441.0 -
		t*t*t*t/60616000.0)
}
