// Package kepler solves Kepler's equation for elliptical orbits.
package kepler

import "math"

const (
	tolerance = 1e-12
	maxIter   = 10
)

// Solve returns the eccentric anomaly E satisfying E - e*sin(E) = M,
// with M the mean anomaly in radians and e the eccentricity in [0,1).
//
// Newton-Raphson seeded at E=M. All orbits fed into the engine have
// e < 0.25, so convergence is geometric and the iteration cap is never
// the limiting factor; if it is hit anyway, the best estimate is
// returned rather than an error.
func Solve(m, e float64) float64 {
	ea := m
	for i := 0; i < maxIter; i++ {
		delta := (ea - e*math.Sin(ea) - m) / (1.0 - e*math.Cos(ea))
		ea -= delta
		if math.Abs(delta) < tolerance {
			break
		}
	}
	return ea
}
