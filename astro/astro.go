// Package astro derives astrological readings from ephemeris output:
// zodiac signs, moon phases, aspects, planetary hours, void-of-course
// detection, and assembled natal charts. It consumes only Position and
// Houses values from the ephemeris package.
package astro

import (
	"math"

	ephemeris "github.com/recallfx/tailored-ephemeris"
)

// ZodiacSigns lists the sign keys in order (0 = Aries, 11 = Pisces).
var ZodiacSigns = [12]string{
	"aries", "taurus", "gemini", "cancer", "leo", "virgo",
	"libra", "scorpio", "sagittarius", "capricorn", "aquarius", "pisces",
}

// SignFromLongitude returns the zodiac sign key for an ecliptic
// longitude in degrees. Negative longitudes are accepted.
func SignFromLongitude(longitude float64) string {
	lon := normLon(longitude)
	return ZodiacSigns[int(lon/30.0)%12]
}

// SignDegree returns the degree within the sign, [0,30).
func SignDegree(longitude float64) float64 {
	lon := normLon(longitude)
	for lon >= 30.0 {
		lon -= 30.0
	}
	return lon
}

func normLon(lon float64) float64 {
	for lon < 0.0 {
		lon += 360.0
	}
	for lon >= 360.0 {
		lon -= 360.0
	}
	return lon
}

// MoonPhase is one of the eight conventional lunar phases.
type MoonPhase int

const (
	NewMoon MoonPhase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

var moonPhaseKeys = [...]string{
	"new_moon", "waxing_crescent", "first_quarter", "waxing_gibbous",
	"full_moon", "waning_gibbous", "last_quarter", "waning_crescent",
}

func (p MoonPhase) String() string {
	if p < NewMoon || p > WaningCrescent {
		return "unknown"
	}
	return moonPhaseKeys[p]
}

// PhaseFromLongitudes classifies the lunar phase from the Sun and
// Moon ecliptic longitudes. Each phase covers a 45° band of
// elongation, with the new moon band starting at 0°.
func PhaseFromLongitudes(sunLon, moonLon float64) MoonPhase {
	diff := normLon(moonLon - sunLon)
	return MoonPhase(int(diff / 45.0) % 8)
}

// MoonPhaseAt computes the lunar phase for a Julian Day (UT).
func MoonPhaseAt(jd float64) (MoonPhase, error) {
	sun, err := ephemeris.CalcUT(jd, ephemeris.Sun, false)
	if err != nil {
		return NewMoon, err
	}
	moon, err := ephemeris.CalcUT(jd, ephemeris.Moon, false)
	if err != nil {
		return NewMoon, err
	}
	return PhaseFromLongitudes(sun.Longitude, moon.Longitude), nil
}

// chaldeanOrder cycles the planetary-hour rulers from slowest to
// fastest.
var chaldeanOrder = [7]string{
	"saturn", "jupiter", "mars", "sun", "venus", "mercury", "moon",
}

// dayRulers maps weekday (0 = Sunday) to its ruling planet.
var dayRulers = [7]string{
	"sun", "moon", "mars", "mercury", "jupiter", "venus", "saturn",
}

// HourRulerFor returns the planetary-hour ruler for a Gregorian
// calendar date and hour of day (0-23). Hour 0 of a day is ruled by
// the day's own ruler, and rulers then follow the Chaldean order.
func HourRulerFor(year, month, day, hour int) string {
	// Zeller's congruence for the day of the week.
	y, m := year, month
	if m < 3 {
		m += 12
		y--
	}
	q := day
	k := y % 100
	j := y / 100
	h := (q + (13*(m+1))/5 + k + k/4 + j/4 - 2*j) % 7
	if h < 0 {
		h += 7
	}
	dayOfWeek := (h + 6) % 7 // 0 = Sunday

	dayRuler := dayRulers[dayOfWeek]
	start := 0
	for i, p := range chaldeanOrder {
		if p == dayRuler {
			start = i
			break
		}
	}
	return chaldeanOrder[(start+hour)%7]
}

// VoidOfCourseMoon reports whether the Moon makes no major aspect
// before leaving its current sign. This is the common almanac
// heuristic, not a search over exact future aspect times.
func VoidOfCourseMoon(jd float64) (bool, error) {
	positions, err := AllPositions(jd)
	if err != nil {
		return false, err
	}

	var moon PlanetPosition
	for _, p := range positions {
		if p.Planet == ephemeris.Moon {
			moon = p
			break
		}
	}

	untilSignChange := 30.0 - moon.SignDegree

	if untilSignChange < 2.0 && math.Abs(moon.Speed) < 0.4 {
		return true, nil
	}

	majorAngles := []float64{0.0, 60.0, 90.0, 120.0, 180.0}
	const orb = 8.0

	for _, p := range positions {
		if p.Planet == ephemeris.Moon {
			continue
		}
		angle := math.Abs(moon.Longitude - p.Longitude)
		if angle > 180.0 {
			angle = 360.0 - angle
		}
		for _, a := range majorAngles {
			if math.Abs(angle-a) < orb {
				return false, nil
			}
		}
	}

	return untilSignChange < 5.0, nil
}

// HouseOf returns the house (1-12) containing an ecliptic longitude.
func HouseOf(longitude float64, houses ephemeris.Houses) int {
	lon := normLon(longitude)
	for i := 1; i <= 12; i++ {
		cur := houses.Cusps[i]
		next := houses.Cusps[i%12+1]

		if cur < next {
			if lon >= cur && lon < next {
				return i
			}
		} else {
			// House straddles the Aries point
			if lon >= cur || lon < next {
				return i
			}
		}
	}
	return 1
}
