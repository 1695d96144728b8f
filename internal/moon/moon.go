// Package moon computes the geocentric ecliptic position of the Moon
// from a reduced ELP2000-class periodic series.
//
// The series keeps the dominant terms only (~10 arcsecond accuracy),
// which is plenty for horoscope work while staying self-contained.
package moon

import (
	"math"

	"github.com/recallfx/tailored-ephemeris/internal/frame"
)

// Position is the Moon's geocentric ecliptic position. Longitude in
// [0,360) degrees, latitude degrees signed, distance AU, speed
// degrees/day.
type Position struct {
	Longitude      float64
	Latitude       float64
	Distance       float64
	SpeedLongitude float64
}

// term is one periodic term: amplitude times sin or cos of the
// integer combination d*D + m*M + mp*Mp + f*F of the fundamental
// arguments, scaled by the eccentricity factor raised to ePow.
//
// Amplitudes are 1e-6 degrees for longitude/latitude and meters for
// distance, exactly as tabulated in the lunar theory.
type term struct {
	d, m, mp, f float64
	amp         float64
	ePow        int
}

// Longitude series (sine terms).
var lonTerms = []term{
	{0, 0, 1, 0, 6288774, 0},
	{2, 0, -1, 0, 1274027, 0},
	{2, 0, 0, 0, 658314, 0},
	{0, 0, 2, 0, 213618, 0},
	{0, 1, 0, 0, -185116, 1},
	{0, 0, 0, 2, -114332, 0},
	{2, 0, -2, 0, 58793, 0},
	{2, -1, -1, 0, 57066, 1},
	{2, 0, 1, 0, 53322, 0},
	{2, -1, 0, 0, 45758, 1},
	{0, 1, -1, 0, -40923, 1},
	{1, 0, 0, 0, -34720, 0},
	{0, 1, 1, 0, -30383, 1},
	{2, 0, 0, -2, 15327, 0},
	{0, 0, 1, 2, -12528, 0},
	{0, 0, 1, -2, 10980, 0},
	{4, 0, -1, 0, 10675, 0},
	{0, 0, 3, 0, 10034, 0},
	{4, 0, -2, 0, 8548, 0},
	{2, 1, -1, 0, -7888, 1},
	{2, 1, 0, 0, -6766, 1},
	{1, 0, -1, 0, -5163, 0},
	{1, 1, 0, 0, 4987, 1},
	{2, -1, 1, 0, 4036, 1},
	{2, 0, 2, 0, 3994, 0},
	{4, 0, 0, 0, 3861, 0},
	{2, 0, -3, 0, 3665, 0},
	{0, 1, -2, 0, -2689, 1},
	{2, 0, -1, 2, -2602, 0},
	{2, -1, -2, 0, 2390, 1},
	{1, 0, 1, 0, -2348, 0},
	{2, -2, 0, 0, 2236, 2},
	{0, 1, 2, 0, -2120, 1},
	{0, 2, 0, 0, -2069, 2},
	{2, -2, -1, 0, 2048, 2},
	{2, 0, 1, -2, -1773, 0},
	{2, 0, 0, 2, -1595, 0},
	{4, -1, -1, 0, 1215, 1},
	{0, 0, 2, 2, -1110, 0},
	{3, 0, -1, 0, -892, 0},
	{2, 1, 1, 0, -810, 1},
	{4, -1, -2, 0, 759, 1},
	{0, 2, -1, 0, -713, 2},
	{2, 2, -1, 0, -700, 2},
	{2, 1, -2, 0, 691, 1},
	{2, -1, 0, -2, 596, 1},
	{4, 0, 1, 0, 549, 0},
	{0, 0, 4, 0, 537, 0},
	{4, -1, 0, 0, 520, 1},
	{1, 0, -2, 0, -487, 0},
	{2, 1, 0, -2, -399, 1},
	{0, 0, 2, -2, -381, 0},
	{1, 1, 1, 0, 351, 1},
	{3, 0, -2, 0, -340, 0},
	{4, 0, -3, 0, 330, 0},
	{2, -1, 2, 0, 327, 1},
	{0, 2, 1, 0, -323, 2},
	{1, 1, -1, 0, 299, 1},
	{2, 0, 3, 0, 294, 0},
}

// Latitude series (sine terms).
var latTerms = []term{
	{0, 0, 0, 1, 5128122, 0},
	{0, 0, 1, 1, 280602, 0},
	{0, 0, 1, -1, 277693, 0},
	{2, 0, 0, -1, 173237, 0},
	{2, 0, -1, 1, 55413, 0},
	{2, 0, -1, -1, 46271, 0},
	{2, 0, 0, 1, 32573, 0},
	{0, 0, 2, 1, 17198, 0},
	{2, 0, 1, -1, 9266, 0},
	{0, 0, 2, -1, 8822, 0},
	{2, -1, 0, -1, 8216, 1},
	{2, 0, -2, -1, 4324, 0},
	{2, 0, 1, 1, 4200, 0},
	{2, 1, 0, -1, -3359, 1},
	{2, -1, -1, 1, 2463, 1},
	{2, -1, 0, 1, 2211, 1},
	{2, -1, -1, -1, 2065, 1},
	{0, 1, -1, -1, -1870, 1},
	{4, 0, -1, -1, 1828, 0},
	{0, 1, 0, 1, -1794, 1},
	{0, 0, 0, 3, -1749, 0},
	{0, 1, -1, 1, -1565, 1},
	{1, 0, 0, 1, -1491, 0},
	{0, 1, 1, 1, -1475, 1},
	{0, 1, 1, -1, -1410, 1},
	{0, 1, 0, -1, -1344, 1},
	{1, 0, 0, -1, -1335, 0},
	{0, 0, 3, 1, 1107, 0},
	{4, 0, 0, -1, 1021, 0},
	{4, 0, -1, 1, 833, 0},
	{0, 0, 1, -3, 777, 0},
	{4, 0, -2, 1, 671, 0},
	{2, 0, 0, -3, 607, 0},
	{2, 0, 2, -1, 596, 0},
	{2, -1, 1, -1, 491, 1},
	{2, 0, -2, 1, -451, 0},
	{0, 0, 3, -1, 439, 0},
	{2, 0, 2, 1, 422, 0},
	{2, 0, -3, -1, 421, 0},
	{2, 1, -1, 1, -366, 1},
	{2, 1, 0, 1, -351, 1},
	{4, 0, 0, 1, 331, 0},
	{2, -1, 1, 1, 315, 1},
	{2, -2, 0, -1, 302, 2},
	{0, 0, 1, 3, -283, 0},
	{2, 1, 1, -1, -229, 1},
	{1, 1, 0, -1, 223, 1},
	{1, 1, 0, 1, 223, 1},
	{0, 1, -2, -1, -220, 1},
	{2, 1, -1, -1, -220, 1},
	{1, 0, 1, 1, -185, 0},
	{2, -1, -2, -1, 181, 1},
	{0, 1, 2, 1, -177, 1},
	{4, 0, -2, -1, 176, 0},
	{4, -1, -1, -1, 166, 1},
	{1, 0, 1, -1, -164, 0},
	{4, 0, 1, -1, 132, 0},
	{1, 0, -1, -1, -119, 0},
	{4, -1, 0, -1, 115, 1},
	{2, -2, 0, 1, 107, 2},
}

// Distance series (cosine terms).
var distTerms = []term{
	{0, 0, 1, 0, -20905355, 0},
	{2, 0, -1, 0, -3699111, 0},
	{2, 0, 0, 0, -2955968, 0},
	{0, 0, 2, 0, -569925, 0},
	{0, 1, 0, 0, 48888, 1},
	{0, 0, 0, 2, -3149, 0},
	{2, 0, -2, 0, 246158, 0},
	{2, -1, -1, 0, -152138, 1},
	{2, 0, 1, 0, -170733, 0},
	{2, -1, 0, 0, -204586, 1},
	{0, 1, -1, 0, -129620, 1},
	{1, 0, 0, 0, 108743, 0},
	{0, 1, 1, 0, 104755, 1},
	{2, 0, 0, -2, 10321, 0},
	{0, 0, 1, -2, 79661, 0},
	{4, 0, -1, 0, -34782, 0},
	{0, 0, 3, 0, -23210, 0},
	{4, 0, -2, 0, -21636, 0},
	{2, 1, -1, 0, 24208, 1},
	{2, 1, 0, 0, 30824, 1},
	{1, 0, -1, 0, -8379, 0},
	{1, 1, 0, 0, -16675, 1},
	{2, -1, 1, 0, -12831, 1},
	{2, 0, 2, 0, -10445, 0},
	{4, 0, 0, 0, -11650, 0},
	{2, 0, -3, 0, 14403, 0},
	{0, 1, -2, 0, -7003, 1},
	{2, -1, -2, 0, 10056, 1},
	{1, 0, 1, 0, 6322, 0},
	{2, -2, 0, 0, -9884, 2},
	{0, 1, 2, 0, 5751, 1},
}

// sumSeries folds a term table into an accumulator. trig is math.Sin
// or math.Cos; e is the eccentricity correction factor applied once or
// twice to terms involving the Sun's anomaly.
func sumSeries(terms []term, d, m, mp, f, e float64, trig func(float64) float64) float64 {
	e2 := e * e
	var sum float64
	for _, t := range terms {
		v := t.amp * trig(t.d*d+t.m*m+t.mp*mp+t.f*f)
		switch t.ePow {
		case 1:
			v *= e
		case 2:
			v *= e2
		}
		sum += v
	}
	return sum
}

// Calc returns the Moon's geocentric ecliptic position at the given
// ephemeris time.
func Calc(jdET float64, calcSpeed bool) Position {
	t := (jdET - frame.J2000) / frame.DaysPerCentury

	// Fundamental arguments (degrees)
	lp := frame.DegNorm(218.3164477 + 481267.88123421*t -
		0.0015786*t*t + t*t*t/538841.0) // mean longitude
	d := frame.DegNorm(297.8501921 + 445267.1114034*t -
		0.0018819*t*t + t*t*t/545868.0) // mean elongation from Sun
	m := frame.DegNorm(357.5291092 + 35999.0502909*t -
		0.0001536*t*t) // Sun's mean anomaly
	mp := frame.DegNorm(134.9633964 + 477198.8675055*t +
		0.0087414*t*t + t*t*t/69699.0) // Moon's mean anomaly
	f := frame.DegNorm(93.2720950 + 483202.0175233*t -
		0.0036539*t*t) // argument of latitude

	lpR := lp * frame.DegToRad
	dR := d * frame.DegToRad
	mR := m * frame.DegToRad
	mpR := mp * frame.DegToRad
	fR := f * frame.DegToRad

	// Auxiliary arguments for the empirical corrections
	a1 := frame.DegNorm(119.75+131.849*t) * frame.DegToRad
	a2 := frame.DegNorm(53.09+479264.290*t) * frame.DegToRad
	a3 := frame.DegNorm(313.45+481266.484*t) * frame.DegToRad

	// Eccentricity correction factor for terms carrying M
	e := 1.0 - 0.002516*t - 0.0000074*t*t

	sumL := sumSeries(lonTerms, dR, mR, mpR, fR, e, math.Sin)
	sumB := sumSeries(latTerms, dR, mR, mpR, fR, e, math.Sin)
	sumR := sumSeries(distTerms, dR, mR, mpR, fR, e, math.Cos)

	// Additive corrections (Venus, Jupiter, flattening)
	addL := 3958.0*math.Sin(a1) + 1962.0*math.Sin(lpR-fR) + 318.0*math.Sin(a2)
	addB := -2235.0*math.Sin(lpR) +
		382.0*math.Sin(a3) +
		175.0*math.Sin(a1-fR) +
		175.0*math.Sin(a1+fR) +
		127.0*math.Sin(lpR-mpR) -
		115.0*math.Sin(lpR+mpR)

	longitude := frame.DegNorm(lp + (sumL+addL)/1000000.0)
	latitude := (sumB + addB) / 1000000.0
	distance := (385000.56 + sumR/1000.0) / frame.AUKilometers

	var speed float64
	if calcSpeed {
		const dt = 0.01
		pos2 := Calc(jdET+dt, false)
		speed = frame.AngleDiff(pos2.Longitude, longitude) / dt
	}

	return Position{
		Longitude:      longitude,
		Latitude:       latitude,
		Distance:       distance,
		SpeedLongitude: speed,
	}
}
