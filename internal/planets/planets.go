// Package planets computes geocentric and heliocentric ecliptic
// positions for the Sun and the eight major planets.
//
// The Sun comes from a direct mean-longitude + equation-of-center
// series. Mercury through Pluto use polynomial mean orbital elements
// and Kepler's equation, with the Earth's own ellipse subtracted for
// the geocentric view. Accuracy is horoscope-grade: arcminutes for the
// inner planets near the present era, degrading toward the range
// limits.
package planets

import (
	"math"

	"github.com/recallfx/tailored-ephemeris/internal/frame"
	"github.com/recallfx/tailored-ephemeris/internal/kepler"
)

// Position is an ecliptic position with longitude speed.
// Longitude is degrees in [0,360), latitude degrees signed,
// distance AU, speed degrees/day.
type Position struct {
	Longitude      float64
	Latitude       float64
	Distance       float64
	SpeedLongitude float64
}

// Index identifies a Keplerian planet.
type Index int

const (
	Mercury Index = iota
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

// elements holds polynomial mean orbital elements, all in degrees
// except the semi-major axis (AU). Each element is value0 + value1*T
// (+ value2*T² for the mean longitude), with T in Julian centuries
// since J2000.
type elements struct {
	l0, l1, l2 float64 // mean longitude
	a0, a1     float64 // semi-major axis
	e0, e1     float64 // eccentricity
	i0, i1     float64 // inclination
	om0, om1   float64 // longitude of ascending node
	pi0, pi1   float64 // longitude of perihelion
}

// Mean element tables. The Jupiter, Saturn and Pluto mean-longitude
// rates carry empirically calibrated corrections fitted against Swiss
// Ephemeris output over 1925-2075; they are opaque constants, not
// derivable from the underlying theory.
var planetElements = [...]elements{
	Mercury: {
		l0: 252.2509, l1: 149474.0722,
		a0: 0.38710,
		e0: 0.20563, e1: 0.000020,
		i0: 7.005, i1: 0.0018,
		om0: 48.331, om1: 1.1852,
		pi0: 77.456, pi1: 1.5555,
	},
	Venus: {
		l0: 181.9798, l1: 58519.2130,
		a0: 0.72333,
		e0: 0.00677, e1: -0.000047,
		i0: 3.3947, i1: 0.0010,
		om0: 76.680, om1: 0.9011,
		pi0: 131.533, pi1: 1.4087,
	},
	Mars: {
		l0: 355.4330, l1: 19141.6964,
		a0: 1.52368,
		e0: 0.09340, e1: 0.000090,
		i0: 1.8497, i1: -0.0007,
		om0: 49.558, om1: 0.7721,
		pi0: 336.060, pi1: 1.8410,
	},
	Jupiter: {
		// Calibrated rate: original fit drifted -1.32°/cy with a
		// +0.10° offset at T=0.
		l0: 34.29644051, l1: 3036.06, l2: 0.00022374,
		a0: 5.202887, a1: 0.0000019,
		e0: 0.04838624, e1: -0.00013253,
		i0: 1.30327, i1: -0.00019872,
		om0: 100.47390909, om1: 0.20469106,
		pi0: 14.72847983, pi1: 0.21252668,
	},
	Saturn: {
		// Calibrated rate: drift -1.39°/cy, offset -0.17° at T=0.
		l0: 50.11432077, l1: 1223.88, l2: -0.00019837,
		a0: 9.536676, a1: 0.0000044,
		e0: 0.05386179, e1: -0.00050991,
		i0: 2.48887878, i1: 0.00193609,
		om0: 113.66242448, om1: -0.28867794,
		pi0: 92.59887831, pi1: -0.04149890,
	},
	Uranus: {
		l0: 313.24710451, l1: 429.8520, l2: 0.00000434,
		a0: 19.189165, a1: -0.0000024,
		e0: 0.04725744, e1: -0.00004397,
		i0: 0.77319689, i1: -0.00019490,
		om0: 74.01692503, om1: 0.04240589,
		pi0: 170.95427630, pi1: 0.40805281,
	},
	Neptune: {
		l0: 304.88197031, l1: 219.8995, l2: -0.00000070,
		a0: 30.069923, a1: 0.00000026,
		e0: 0.00859048, e1: 0.00000513,
		i0: 1.76995259, i1: 0.00022400,
		om0: 131.78422574, om1: -0.00508664,
		pi0: 44.96476227, pi1: -0.32241464,
	},
	Pluto: {
		// Calibrated rate: drift -1.42°/cy folded into l1.
		l0: 238.9286, l1: 146.60,
		a0: 39.48169,
		e0: 0.24883, e1: 0.00005,
		i0: 17.1417,
		om0: 110.299,
		pi0: 224.067,
	},
}

// Sun returns the geocentric position of the Sun. The Sun is not run
// through the Keplerian machinery: its apparent longitude comes
// straight from the mean longitude plus the equation of center, and
// its latitude is 0 by definition of the ecliptic.
func Sun(jdET float64, calcSpeed bool) Position {
	t := (jdET - frame.J2000) / frame.DaysPerCentury
	t2 := t * t
	t3 := t2 * t

	// Mean longitude and mean anomaly (Astronomical Almanac)
	l0 := frame.DegNorm(280.4664567 + 36000.76982779*t + 0.0003032028*t2)
	m := frame.DegNorm(357.5291092 + 35999.0502909*t - 0.0001536*t2 + t3/24490000.0)
	mRad := m * frame.DegToRad

	// Equation of center
	c := (1.9146000-0.004817*t-0.000014*t2)*math.Sin(mRad) +
		(0.019993-0.000101*t)*math.Sin(2.0*mRad) +
		0.000290*math.Sin(3.0*mRad)

	sunLon := frame.DegNorm(l0 + c)

	// Eccentricity feeds the radius directly
	e := 0.016708634 - 0.000042037*t - 0.0000001267*t2
	v := mRad + c*frame.DegToRad
	r := 1.000001018 * (1.0 - e*e) / (1.0 + e*math.Cos(v))

	var speed float64
	if calcSpeed {
		const dt = 0.01
		speed = frame.AngleDiff(sunLongitudeFast(jdET+dt), sunLon) / dt
	}

	return Position{
		Longitude:      sunLon,
		Latitude:       0.0,
		Distance:       r,
		SpeedLongitude: speed,
	}
}

// sunLongitudeFast is the truncated recompute used only for the
// finite-difference speed step.
func sunLongitudeFast(jdET float64) float64 {
	t := (jdET - frame.J2000) / frame.DaysPerCentury
	l0 := frame.DegNorm(280.4664567 + 36000.76982779*t)
	m := frame.DegNorm(357.5291092+35999.0502909*t) * frame.DegToRad
	c := 1.9146*math.Sin(m) + 0.019993*math.Sin(2.0*m) + 0.00029*math.Sin(3.0*m)
	return frame.DegNorm(l0 + c)
}

// Geocentric returns the geocentric ecliptic position of a Keplerian
// planet at the given ephemeris time.
func Geocentric(jdET float64, idx Index, calcSpeed bool) Position {
	el := planetElements[idx].at(jdET)
	return calcKepler(jdET, el, calcSpeed)
}

// Heliocentric returns the heliocentric ecliptic position of a
// Keplerian planet. Heliocentric longitude speeds are always positive:
// planets never retrograde as seen from the Sun.
func Heliocentric(jdET float64, idx Index, calcSpeed bool) Position {
	el := planetElements[idx].at(jdET)
	return calcKeplerHelio(jdET, el, calcSpeed)
}

// evaluated holds element values at a fixed instant.
type evaluated struct {
	meanLon   float64
	semiMajor float64
	ecc       float64
	incl      float64
	ascNode   float64
	lonPeri   float64
}

func (e elements) at(jdET float64) evaluated {
	t := (jdET - frame.J2000) / frame.DaysPerCentury
	return evaluated{
		meanLon:   frame.DegNorm(e.l0 + e.l1*t + e.l2*t*t),
		semiMajor: e.a0 + e.a1*t,
		ecc:       e.e0 + e.e1*t,
		incl:      e.i0 + e.i1*t,
		ascNode:   e.om0 + e.om1*t,
		lonPeri:   e.pi0 + e.pi1*t,
	}
}

// heliocentricCart returns the heliocentric ecliptic Cartesian
// position for evaluated elements: Kepler solve, true anomaly via the
// half-angle relation, then rotation by argument of latitude,
// inclination and node.
func heliocentricCart(el evaluated) (x, y, z float64) {
	m := frame.DegNorm(el.meanLon-el.lonPeri) * frame.DegToRad
	eAnom := kepler.Solve(m, el.ecc)

	v := 2.0 * math.Atan2(
		math.Sqrt(1.0+el.ecc)*math.Tan(eAnom/2.0),
		math.Sqrt(1.0-el.ecc),
	)

	r := el.semiMajor * (1.0 - el.ecc*math.Cos(eAnom))

	// Argument of latitude
	u := v + (el.lonPeri-el.ascNode)*frame.DegToRad

	inclRad := el.incl * frame.DegToRad
	nodeRad := el.ascNode * frame.DegToRad
	sinU, cosU := math.Sincos(u)
	sinNode, cosNode := math.Sincos(nodeRad)
	cosIncl := math.Cos(inclRad)

	x = r * (cosNode*cosU - sinNode*sinU*cosIncl)
	y = r * (sinNode*cosU + cosNode*sinU*cosIncl)
	z = r * sinU * math.Sin(inclRad)
	return x, y, z
}

// calcKepler converts evaluated elements to a geocentric position by
// subtracting the Earth's heliocentric vector.
func calcKepler(jdET float64, el evaluated, calcSpeed bool) Position {
	xEcl, yEcl, zEcl := heliocentricCart(el)
	ex, ey, ez := earthHelioCart(jdET)

	xGeo := xEcl - ex
	yGeo := yEcl - ey
	zGeo := zEcl - ez

	dist := math.Sqrt(xGeo*xGeo + yGeo*yGeo + zGeo*zGeo)
	lon := frame.DegNorm(math.Atan2(yGeo, xGeo) * frame.RadToDeg)
	lat := math.Asin(zGeo/dist) * frame.RadToDeg

	var speed float64
	if calcSpeed {
		// Forward step of 0.1 day, advancing the mean longitude at the
		// Keplerian mean motion implied by the semi-major axis.
		const dt = 0.1
		el2 := el
		el2.meanLon = frame.DegNorm(el.meanLon + dt*360.0/(365.25*math.Pow(el.semiMajor, 1.5)))
		pos2 := calcKepler(jdET+dt, el2, false)
		speed = frame.AngleDiff(pos2.Longitude, lon) / dt
	}

	return Position{
		Longitude:      lon,
		Latitude:       lat,
		Distance:       dist,
		SpeedLongitude: speed,
	}
}

// calcKeplerHelio is the heliocentric counterpart of calcKepler: no
// Earth subtraction.
func calcKeplerHelio(jdET float64, el evaluated, calcSpeed bool) Position {
	x, y, z := heliocentricCart(el)

	dist := math.Sqrt(x*x + y*y + z*z)
	lon := frame.DegNorm(math.Atan2(y, x) * frame.RadToDeg)
	lat := math.Asin(z/dist) * frame.RadToDeg

	var speed float64
	if calcSpeed {
		const dt = 0.1
		el2 := el
		el2.meanLon = frame.DegNorm(el.meanLon + dt*360.0/(365.25*math.Pow(el.semiMajor, 1.5)))
		pos2 := calcKeplerHelio(jdET+dt, el2, false)
		speed = frame.AngleDiff(pos2.Longitude, lon) / dt
	}

	return Position{
		Longitude:      lon,
		Latitude:       lat,
		Distance:       dist,
		SpeedLongitude: speed,
	}
}

// earthHelioCart returns the Earth's heliocentric ecliptic Cartesian
// position from a low-order ellipse model (equation of center
// truncated to three terms, latitude 0).
func earthHelioCart(jdET float64) (x, y, z float64) {
	v, r := earthHelioPolar(jdET)
	return r * math.Cos(v), r * math.Sin(v), 0.0
}

// earthHelioPolar returns the Earth's heliocentric true longitude
// (radians) and radius (AU).
func earthHelioPolar(jdET float64) (v, r float64) {
	t := (jdET - frame.J2000) / frame.DaysPerCentury

	l := frame.DegNorm(100.4665+36000.7698*t) * frame.DegToRad
	e := 0.01671 - 0.00004*t
	m := frame.DegNorm(357.5291+35999.0503*t) * frame.DegToRad

	c := (2.0*e-0.25*e*e*e)*math.Sin(m) +
		1.25*e*e*math.Sin(2.0*m) +
		13.0/12.0*e*e*e*math.Sin(3.0*m)

	v = l + c
	r = 1.00014 * (1.0 - e*e) / (1.0 + e*math.Cos(m+c))
	return v, r
}

// EarthHeliocentric returns the Earth's heliocentric position.
func EarthHeliocentric(jdET float64, calcSpeed bool) Position {
	v, r := earthHelioPolar(jdET)
	lon := frame.DegNorm(v * frame.RadToDeg)

	var speed float64
	if calcSpeed {
		const dt = 0.1
		v2, _ := earthHelioPolar(jdET + dt)
		speed = frame.AngleDiff(frame.DegNorm(v2*frame.RadToDeg), lon) / dt
	}

	return Position{
		Longitude:      lon,
		Latitude:       0.0,
		Distance:       r,
		SpeedLongitude: speed,
	}
}
