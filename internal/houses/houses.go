// Package houses computes Placidus house cusps.
//
// The four angles (Ascendant, MC and their reflections) have closed
// forms; the intermediate cusps need the Placidus proportional
// semi-arc condition, solved by pole-height iteration. High latitudes
// and cusps on the celestial equator have no Placidus solution and
// fall back to the raw right ascension; those branches are part of the
// house-system semantics, not error paths.
package houses

import (
	"math"

	"github.com/recallfx/tailored-ephemeris/internal/frame"
)

// Result holds the twelve cusps and derived angles, all in degrees
// normalized to [0,360). Cusps[0] is unused; Cusps[1] and Cusps[10]
// are the same values as Ascendant and MC.
type Result struct {
	Cusps     [13]float64
	Ascendant float64
	MC        float64
	ARMC      float64
	Vertex    float64
}

const (
	verySmall = 1e-15

	// convergence is ~0.01 arcsecond on the cusp longitude.
	convergence = 1.0 / 360000.0

	maxIter = 100
)

// Placidus computes the Placidus cusps for a UT instant and an
// observer at geographic latitude/longitude in degrees (north and
// east positive). Behavior at the exact poles is undefined: tan(lat)
// diverges and no guard is applied.
func Placidus(jdUT, lat, lon float64) Result {
	jdET := jdUT + frame.DeltaT(jdUT)
	eps := frame.Obliquity(jdET)

	armcDeg := frame.ARMC(jdUT, lon)
	armcRad := armcDeg * frame.DegToRad
	latRad := lat * frame.DegToRad

	mc := calcMC(armcRad, eps)
	asc := calcAscendant(armcRad, latRad, eps)
	vertex := calcVertex(armcRad, latRad, eps)

	cusps := placidusCusps(armcDeg, latRad, eps, mc, asc)

	return Result{
		Cusps:     cusps,
		Ascendant: cusps[1],
		MC:        cusps[10],
		ARMC:      armcDeg,
		Vertex:    frame.DegNorm(vertex * frame.RadToDeg),
	}
}

// calcMC returns the Midheaven in radians [0, 2π).
//
// atan2 already lands in the right quadrant here: cos(ε) is always
// positive, so the sign of cos(ARMC)·cos(ε) matches cos(ARMC). Only
// wraparound normalization is needed.
func calcMC(armc, eps float64) float64 {
	sinArmc, cosArmc := math.Sincos(armc)
	return frame.RadNorm(math.Atan2(sinArmc, cosArmc*math.Cos(eps)))
}

// calcAscendant returns the Ascendant in radians [0, 2π).
//
// atan2 gives the horizon/ecliptic intersection modulo π; adding π
// selects the rising intersection (Ascendant) instead of the setting
// one (Descendant). The whole quadrant decision lives here, in one
// place, rather than inline at each call site.
func calcAscendant(armc, lat, eps float64) float64 {
	sinEps, cosEps := math.Sincos(eps)
	sinArmc, cosArmc := math.Sincos(armc)

	y := -cosArmc
	x := sinArmc*cosEps + math.Tan(lat)*sinEps

	return frame.RadNorm(math.Atan2(y, x) + math.Pi)
}

// calcVertex returns the Vertex: the Ascendant evaluated at the
// co-latitude with ARMC shifted half a turn.
func calcVertex(armc, lat, eps float64) float64 {
	return calcAscendant(armc+math.Pi, math.Pi/2.0-lat, eps)
}

// placidusCusps fills the 13-slot cusp array. Cusps 1/4/7/10 come
// from the angles; 11/12/2/3 are iterated; 5/6/8/9 are reflections.
func placidusCusps(armcDeg, lat, eps, mc, asc float64) [13]float64 {
	var cusps [13]float64

	cusps[1] = frame.DegNorm(asc * frame.RadToDeg)
	cusps[10] = frame.DegNorm(mc * frame.RadToDeg)
	cusps[4] = frame.DegNorm((mc + math.Pi) * frame.RadToDeg)
	cusps[7] = frame.DegNorm((asc + math.Pi) * frame.RadToDeg)

	sinEps, cosEps := math.Sincos(eps)
	tanLat := math.Tan(lat)
	tanEps := math.Tan(eps)

	// Seed pole heights from the ascensional difference at the
	// obliquity circle, split at one-third and two-thirds.
	aArg := tanLat * tanEps
	if aArg > 1.0 {
		aArg = 1.0
	} else if aArg < -1.0 {
		aArg = -1.0
	}
	a := math.Asin(aArg)
	var fh1, fh2 float64
	if math.Abs(tanEps) > verySmall {
		fh1 = math.Atan(math.Sin(a/3.0)/tanEps) * frame.RadToDeg
		fh2 = math.Atan(math.Sin(a*2.0/3.0)/tanEps) * frame.RadToDeg
	}

	// RA offsets from ARMC per cusp, with the semi-arc divisor:
	// 3.0 encodes the 1/3 fraction, 1.5 the 2/3 fraction.
	params := []struct {
		cusp     int
		offset   float64
		divisor  float64
		initialF float64
	}{
		{11, 30.0, 3.0, fh1},
		{12, 60.0, 1.5, fh2},
		{2, 120.0, 1.5, fh2},
		{3, 150.0, 3.0, fh1},
	}

	for _, p := range params {
		rectasc := frame.DegNorm(armcDeg + p.offset)
		cusps[p.cusp] = placidusCusp(rectasc, tanLat, sinEps, cosEps, p.divisor, p.initialF)
	}

	cusps[5] = frame.DegNorm(cusps[11] + 180.0)
	cusps[6] = frame.DegNorm(cusps[12] + 180.0)
	cusps[8] = frame.DegNorm(cusps[2] + 180.0)
	cusps[9] = frame.DegNorm(cusps[3] + 180.0)

	return cusps
}

// placidusCusp runs the pole-height iteration for one intermediate
// cusp: declination of the current estimate, ascensional difference,
// refined pole height from the proportional semi-arc condition, new
// cusp via asc1. Degenerate geometry falls back to the raw right
// ascension (an equal-style cusp).
func placidusCusp(rectasc, tanLat, sinEps, cosEps, divisor, initialF float64) float64 {
	cusp := asc1(rectasc, initialF, sinEps, cosEps)

	var prev float64
	for i := 0; i < maxIter; i++ {
		sinCusp := math.Sin(cusp * frame.DegToRad)
		decl := math.Asin(sinEps * sinCusp)
		tanDecl := math.Tan(decl)

		if math.Abs(tanDecl) < verySmall {
			// Cusp sits on the celestial equator
			cusp = rectasc
			break
		}

		adArg := tanLat * tanDecl
		if math.Abs(adArg) > 1.0 {
			// Circumpolar: the Placidus condition has no solution
			cusp = rectasc
			break
		}
		ad := math.Asin(adArg)

		f := math.Atan(math.Sin(ad/divisor)/tanDecl) * frame.RadToDeg
		cusp = asc1(rectasc, f, sinEps, cosEps)

		if i > 0 {
			diff := math.Abs(cusp - prev)
			if diff > 180.0 {
				diff = 360.0 - diff
			}
			if diff < convergence {
				break
			}
		}
		prev = cusp
	}

	return cusp
}

// asc1 converts a right ascension in [0°,360°) to ecliptic longitude
// at pole height f, reflecting into the first quadrant and back.
func asc1(x1, f, sinEps, cosEps float64) float64 {
	x1 = frame.DegNorm(x1)
	n := int(x1/90.0) + 1

	// Pole height at ±90° pins the result to a solstice point.
	if math.Abs(90.0-f) < verySmall {
		return 180.0
	}
	if math.Abs(90.0+f) < verySmall {
		return 0.0
	}

	var ass float64
	switch n {
	case 1:
		ass = asc2(x1, f, sinEps, cosEps)
	case 2:
		ass = 180.0 - asc2(180.0-x1, -f, sinEps, cosEps)
	case 3:
		ass = 180.0 + asc2(x1-180.0, -f, sinEps, cosEps)
	default:
		ass = 360.0 - asc2(360.0-x1, f, sinEps, cosEps)
	}

	ass = frame.DegNorm(ass)

	// Snap to exact quadrant boundaries against floating-point drift
	switch {
	case math.Abs(ass-90.0) < verySmall:
		ass = 90.0
	case math.Abs(ass-180.0) < verySmall:
		ass = 180.0
	case math.Abs(ass-270.0) < verySmall:
		ass = 270.0
	case math.Abs(ass-360.0) < verySmall:
		ass = 0.0
	}

	return ass
}

// asc2 handles the first-quadrant case for asc1: RA in [0°,90°],
// result in [0°,180°), with explicit zero numerator/denominator
// policy.
func asc2(x, f, sinEps, cosEps float64) float64 {
	xRad := x * frame.DegToRad
	fRad := f * frame.DegToRad

	denom := -math.Tan(fRad)*sinEps + cosEps*math.Cos(xRad)
	numer := math.Sin(xRad)

	if math.Abs(denom) < verySmall {
		denom = 0.0
	}
	if math.Abs(numer) < verySmall {
		numer = 0.0
	}

	var ass float64
	switch {
	case numer == 0.0:
		if denom < 0.0 {
			ass = -verySmall
		} else {
			ass = verySmall
		}
	case denom == 0.0:
		if numer < 0.0 {
			ass = -90.0
		} else {
			ass = 90.0
		}
	default:
		ass = math.Atan(numer/denom) * frame.RadToDeg
	}

	// Negative atan means the denominator was negative: map (-90°,0°)
	// to (90°,180°).
	if ass < 0.0 {
		ass += 180.0
	}

	return ass
}
