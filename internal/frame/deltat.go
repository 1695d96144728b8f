package frame

// DeltaT returns an approximation of TT - UT in days for the given
// Julian Day in UT. Piecewise polynomials in the calendar year, good
// to about a second over the engine's supported range, which is well
// inside the accuracy contract of the position models.
func DeltaT(jdUT float64) float64 {
	year := 2000.0 + (jdUT-J2000)/365.25

	var dtSeconds float64
	switch {
	case year < 1900.0:
		t := (year - 1820.0) / 100.0
		dtSeconds = -20.0 + 32.0*t*t
	case year < 1950.0:
		t := year - 1900.0
		dtSeconds = -2.79 + 1.494119*t - 0.0598939*t*t + 0.0061966*t*t*t
	case year < 2005.0:
		t := year - 2000.0
		dtSeconds = 63.86 + 0.3345*t - 0.060374*t*t + 0.0017275*t*t*t
	case year < 2050.0:
		t := year - 2000.0
		dtSeconds = 62.92 + 0.32217*t + 0.005589*t*t
	default:
		// Long-range extrapolation, same parabola as the deep past
		t := (year - 1820.0) / 100.0
		dtSeconds = -20.0 + 32.0*t*t
	}

	return dtSeconds / 86400.0
}
