package ephemeris

import (
	"math"

	"github.com/recallfx/tailored-ephemeris/internal/frame"
)

// Calendar selects the calendar system for Julian Day conversion.
type Calendar int

const (
	// JulianCal is the proleptic Julian calendar.
	JulianCal Calendar = iota
	// GregorianCal is the proleptic Gregorian calendar.
	GregorianCal
)

// JulDay converts a calendar date to a Julian Day number. Years are
// astronomical (1 BC is year 0, 2 BC is year -1); hour is a decimal
// clock time in [0,24).
func JulDay(year, month, day int, hour float64, cal Calendar) float64 {
	u := float64(year)
	if month < 3 {
		u -= 1.0
	}
	u0 := u + 4712.0
	u1 := float64(month) + 1.0
	if u1 < 4.0 {
		u1 += 12.0
	}

	jd := math.Floor(u0*365.25) +
		math.Floor(30.6*u1+0.000001) +
		float64(day) + hour/24.0 - 63.5

	if cal == GregorianCal {
		u2 := math.Floor(math.Abs(u)/100.0) - math.Floor(math.Abs(u)/400.0)
		if u < 0.0 {
			u2 = -u2
		}
		jd = jd - u2 + 2.0
		if u < 0.0 && u/100.0 == math.Floor(u/100.0) && u/400.0 != math.Floor(u/400.0) {
			jd -= 1.0
		}
	}

	return jd
}

// JulDayGregorian converts a Gregorian calendar date to a Julian Day.
func JulDayGregorian(year, month, day int, hour float64) float64 {
	return JulDay(year, month, day, hour, GregorianCal)
}

// RevJul converts a Julian Day back to a calendar date. The returned
// hour is a decimal clock time.
func RevJul(jd float64, cal Calendar) (year, month, day int, hour float64) {
	u0 := jd + 32082.5

	if cal == GregorianCal {
		u1 := u0 + math.Floor(u0/36525.0) - math.Floor(u0/146100.0) - 38.0
		if jd >= 1830691.5 {
			u1 += 1.0
		}
		u0 = u0 + math.Floor(u1/36525.0) - math.Floor(u1/146100.0) - 38.0
	}

	u2 := math.Floor(u0 + 123.0)
	u3 := math.Floor((u2 - 122.2) / 365.25)
	u4 := math.Floor((u2 - math.Floor(365.25*u3)) / 30.6001)

	month = int(u4 - 1.0)
	if month > 12 {
		month -= 12
	}

	day = int(u2 - math.Floor(365.25*u3) - math.Floor(30.6001*u4))
	year = int(u3 + math.Floor((u4-2.0)/12.0) - 4800.0)
	hour = (jd - math.Floor(jd+0.5) + 0.5) * 24.0

	return year, month, day, hour
}

// JDToYear returns the approximate decimal calendar year of a Julian
// Day, counted in mean years from J2000.0.
func JDToYear(jd float64) float64 {
	return 2000.0 + (jd-frame.J2000)/365.25
}

// YearToJD returns the approximate Julian Day of a decimal calendar
// year.
func YearToJD(year float64) float64 {
	return frame.J2000 + (year-2000.0)*365.25
}
