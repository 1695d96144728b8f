// Package frame holds the math/frame kernel shared by every position
// model: angle normalization, polar/Cartesian conversion, the
// ecliptic/equatorial rotation, obliquity, and sidereal time.
package frame

import "math"

// Shared astronomical constants.
const (
	// J2000 is the J2000.0 epoch as a Julian Day (2000-01-01 12:00 TT).
	J2000 = 2451545.0

	// DaysPerCentury is the length of a Julian century in days.
	DaysPerCentury = 36525.0

	// AUKilometers is one astronomical unit in km.
	AUKilometers = 149597870.7

	DegToRad    = math.Pi / 180.0
	RadToDeg    = 180.0 / math.Pi
	ArcsecToRad = math.Pi / (180.0 * 3600.0)
	TwoPi       = 2.0 * math.Pi

	// RangeStart and RangeEnd bound the supported ephemeris interval
	// (approx years -3000 to +3000). Positions outside it are refused
	// rather than silently extrapolated.
	RangeStart = 625307.5
	RangeEnd   = 2817057.5
)

// DegNorm normalizes an angle to [0, 360) degrees.
func DegNorm(x float64) float64 {
	y := math.Mod(x, 360.0)
	if math.Abs(y) < 1e-13 {
		y = 0.0
	}
	if y < 0 {
		y += 360.0
	}
	return y
}

// DegNorm180 normalizes an angle to (-180, 180] degrees.
func DegNorm180(x float64) float64 {
	y := DegNorm(x)
	if y > 180.0 {
		y -= 360.0
	}
	return y
}

// RadNorm normalizes an angle to [0, 2π) radians.
func RadNorm(x float64) float64 {
	y := math.Mod(x, TwoPi)
	if y < 0 {
		y += TwoPi
	}
	return y
}

// AngleDiff returns the shortest signed difference a1-a2 in degrees,
// in (-180, 180].
func AngleDiff(a1, a2 float64) float64 {
	return DegNorm180(a1 - a2)
}

// PolToCart converts polar coordinates [lon rad, lat rad, dist] to
// Cartesian [x, y, z].
func PolToCart(pol [3]float64) [3]float64 {
	sinLon, cosLon := math.Sincos(pol[0])
	sinLat, cosLat := math.Sincos(pol[1])
	return [3]float64{
		pol[2] * cosLat * cosLon,
		pol[2] * cosLat * sinLon,
		pol[2] * sinLat,
	}
}

// CartToPol converts Cartesian [x, y, z] to polar
// [lon rad in 0..2π, lat rad, dist]. The zero vector maps to
// lon=lat=0.
func CartToPol(cart [3]float64) [3]float64 {
	rxy := math.Sqrt(cart[0]*cart[0] + cart[1]*cart[1])
	var lon, lat float64

	if rxy > 1e-16 || math.Abs(cart[2]) > 1e-16 {
		lon = math.Atan2(cart[1], cart[0])
		if lon < 0 {
			lon += TwoPi
		}
		lat = math.Atan2(cart[2], rxy)
	}

	dist := math.Sqrt(cart[0]*cart[0] + cart[1]*cart[1] + cart[2]*cart[2])
	return [3]float64{lon, lat, dist}
}

// CoordTrans rotates a vector around the X axis by eps radians.
// eps > 0 converts equatorial to ecliptic, eps < 0 the reverse.
func CoordTrans(in [3]float64, eps float64) [3]float64 {
	sinEps, cosEps := math.Sincos(eps)
	return [3]float64{
		in[0],
		in[1]*cosEps + in[2]*sinEps,
		-in[1]*sinEps + in[2]*cosEps,
	}
}

// Obliquity returns the mean obliquity of the ecliptic in radians
// for the given Julian Day in ephemeris time (IAU 2006 polynomial).
func Obliquity(jdET float64) float64 {
	t := (jdET - J2000) / DaysPerCentury

	// IAU 2006, arcseconds
	eps := 84381.406 -
		46.836769*t -
		0.0001831*t*t +
		0.00200340*t*t*t -
		0.000000576*t*t*t*t -
		0.0000000434*t*t*t*t*t

	return eps * ArcsecToRad
}

// SiderealTime returns Greenwich mean sidereal time in hours [0, 24)
// for the given Julian Day in UT.
func SiderealTime(jdUT float64) float64 {
	// Centuries from J2000 at 0h UT of the same day
	jd0 := math.Floor(jdUT-0.5) + 0.5
	t := (jd0 - J2000) / DaysPerCentury
	ut := (jdUT - jd0) * 24.0

	gmst0 := 6.697374558 +
		2400.051336*t +
		0.000025862*t*t -
		0.0000000017*t*t*t

	// Day fraction advances at the sidereal rate
	gmst := gmst0 + ut*1.00273790935

	result := math.Mod(gmst, 24.0)
	if result < 0 {
		result += 24.0
	}
	return result
}

// LocalSiderealTime returns local mean sidereal time in hours [0, 24)
// for an east-positive geographic longitude in degrees.
func LocalSiderealTime(jdUT, longitude float64) float64 {
	lst := SiderealTime(jdUT) + longitude/15.0
	result := math.Mod(lst, 24.0)
	if result < 0 {
		result += 24.0
	}
	return result
}

// ARMC returns the local sidereal time expressed in degrees.
func ARMC(jdUT, longitude float64) float64 {
	return LocalSiderealTime(jdUT, longitude) * 15.0
}
