package ephemeris

import (
	"math"
	"testing"
)

func TestJulDayKnownEpochs(t *testing.T) {
	cases := []struct {
		year, month, day int
		hour             float64
		cal              Calendar
		want             float64
	}{
		{2000, 1, 1, 12.0, GregorianCal, 2451545.0}, // J2000.0
		{1970, 1, 1, 0.0, GregorianCal, 2440587.5},  // Unix epoch
		{1999, 12, 31, 12.0, GregorianCal, 2451544.0},
		{1582, 10, 15, 0.0, GregorianCal, 2299160.5}, // Gregorian reform
		{1582, 10, 4, 0.0, JulianCal, 2299159.5},     // day before the reform
		{-4712, 1, 1, 12.0, JulianCal, 0.0},          // Julian day zero
	}

	for _, c := range cases {
		got := JulDay(c.year, c.month, c.day, c.hour, c.cal)
		if math.Abs(got-c.want) > 1e-6 {
			t.Errorf("JulDay(%d,%d,%d,%v,%v) = %v, want %v",
				c.year, c.month, c.day, c.hour, c.cal, got, c.want)
		}
	}
}

func TestJulDayGregorian(t *testing.T) {
	if got := JulDayGregorian(2000, 1, 1, 12.0); math.Abs(got-2451545.0) > 1e-9 {
		t.Errorf("JulDayGregorian(2000,1,1,12) = %v", got)
	}
}

func TestRevJulRoundTrip(t *testing.T) {
	cases := []struct {
		year, month, day int
		hour             float64
		cal              Calendar
	}{
		{2000, 1, 1, 12.0, GregorianCal},
		{2024, 2, 29, 6.5, GregorianCal},
		{1969, 7, 20, 20.0, GregorianCal},
		{1582, 10, 15, 0.0, GregorianCal},
		{1000, 3, 1, 18.0, JulianCal},
		{-584, 5, 28, 12.0, JulianCal}, // Thales eclipse era
		{-1500, 7, 15, 0.0, GregorianCal},
	}

	for _, c := range cases {
		jd := JulDay(c.year, c.month, c.day, c.hour, c.cal)
		year, month, day, hour := RevJul(jd, c.cal)
		if year != c.year || month != c.month || day != c.day {
			t.Errorf("RevJul(JulDay(%d-%02d-%02d, cal %v)) = %d-%02d-%02d",
				c.year, c.month, c.day, c.cal, year, month, day)
		}
		if math.Abs(hour-c.hour) > 1e-6 {
			t.Errorf("%d-%02d-%02d: hour = %v, want %v", c.year, c.month, c.day, hour, c.hour)
		}
	}
}

func TestJulianGregorianOffset(t *testing.T) {
	// In the 20th-21st centuries the Julian calendar runs 13 days
	// behind the Gregorian.
	greg := JulDay(2000, 1, 1, 12.0, GregorianCal)
	jul := JulDay(2000, 1, 1, 12.0, JulianCal)
	if math.Abs(jul-greg-13.0) > 1e-9 {
		t.Errorf("Julian - Gregorian = %v days, want 13", jul-greg)
	}
}

func TestDecimalYearHelpers(t *testing.T) {
	if got := YearToJD(2000.0); math.Abs(got-2451545.0) > 1e-9 {
		t.Errorf("YearToJD(2000) = %v", got)
	}
	if got := JDToYear(2451545.0); math.Abs(got-2000.0) > 1e-9 {
		t.Errorf("JDToYear(J2000) = %v", got)
	}

	for _, year := range []float64{1925.0, 1987.5, 2050.25} {
		back := JDToYear(YearToJD(year))
		if math.Abs(back-year) > 1e-9 {
			t.Errorf("JDToYear(YearToJD(%v)) = %v", year, back)
		}
	}
}
