package astro

import "math"

// AspectType identifies an angular relationship between two bodies.
type AspectType int

const (
	Conjunction AspectType = iota
	SemiSextile
	SemiSquare
	Sextile
	Quintile
	Square
	Trine
	Sesquiquadrate
	Quincunx
	Opposition
)

var aspectAngles = [...]float64{0, 30, 45, 60, 72, 90, 120, 135, 150, 180}

var aspectNames = [...]string{
	"conjunction", "semi-sextile", "semi-square", "sextile", "quintile",
	"square", "trine", "sesquiquadrate", "quincunx", "opposition",
}

// Angle returns the exact aspect angle in degrees.
func (a AspectType) Angle() float64 {
	return aspectAngles[a]
}

func (a AspectType) String() string {
	return aspectNames[a]
}

// AllAspects lists every supported aspect type.
func AllAspects() []AspectType {
	return []AspectType{
		Conjunction, Sextile, Square, Trine, Opposition,
		Quincunx, SemiSextile, SemiSquare, Sesquiquadrate, Quintile,
	}
}

// OrbConfig sets the allowed deviation from exactness, in degrees,
// per aspect type.
type OrbConfig struct {
	Conjunction    float64
	Opposition     float64
	Square         float64
	Trine          float64
	Sextile        float64
	Quincunx       float64
	SemiSextile    float64
	SemiSquare     float64
	Sesquiquadrate float64
	Quintile       float64
}

// DefaultOrbs returns the conventional orb allowances: 8° for the
// major aspects, narrower for the minor ones.
func DefaultOrbs() OrbConfig {
	return OrbConfig{
		Conjunction:    8.0,
		Opposition:     8.0,
		Square:         8.0,
		Trine:          8.0,
		Sextile:        6.0,
		Quincunx:       5.0,
		SemiSextile:    4.0,
		SemiSquare:     4.0,
		Sesquiquadrate: 4.0,
		Quintile:       4.0,
	}
}

// Orb returns the configured orb for an aspect type.
func (c OrbConfig) Orb(a AspectType) float64 {
	switch a {
	case Conjunction:
		return c.Conjunction
	case Opposition:
		return c.Opposition
	case Square:
		return c.Square
	case Trine:
		return c.Trine
	case Sextile:
		return c.Sextile
	case Quincunx:
		return c.Quincunx
	case SemiSextile:
		return c.SemiSextile
	case SemiSquare:
		return c.SemiSquare
	case Sesquiquadrate:
		return c.Sesquiquadrate
	default:
		return c.Quintile
	}
}

// Aspect is a detected angular relationship between two planets.
type Aspect struct {
	Planet1  string
	Planet2  string
	Type     AspectType
	Orb      float64 // deviation from exact, degrees
	Applying bool    // true if the aspect is tightening
}

// checkAspect returns the deviation from exactness if the two
// longitudes form the aspect within orb.
func checkAspect(lon1, lon2 float64, a AspectType, orb float64) (float64, bool) {
	diff := math.Abs(lon1 - lon2)
	if diff > 180.0 {
		diff = 360.0 - diff
	}
	actual := math.Abs(diff - a.Angle())
	return actual, actual <= orb
}

// applying reports whether the separation is moving toward the exact
// aspect angle given the relative longitude speed.
func applying(lon1, lon2, relativeSpeed float64, a AspectType) bool {
	diff := math.Abs(lon1 - lon2)
	if diff > 180.0 {
		diff = 360.0 - diff
	}
	return (diff > a.Angle() && relativeSpeed < 0.0) ||
		(diff < a.Angle() && relativeSpeed > 0.0)
}

// ChartAspects finds all aspects among the planets of one chart,
// each pair reported once. The applying flag uses the pair's relative
// speed.
func ChartAspects(chart []PlanetPosition, orbs OrbConfig) []Aspect {
	var aspects []Aspect
	for i := range chart {
		for j := i + 1; j < len(chart); j++ {
			p1, p2 := chart[i], chart[j]
			for _, at := range AllAspects() {
				actual, ok := checkAspect(p1.Longitude, p2.Longitude, at, orbs.Orb(at))
				if !ok {
					continue
				}
				aspects = append(aspects, Aspect{
					Planet1:  p1.Key,
					Planet2:  p2.Key,
					Type:     at,
					Orb:      actual,
					Applying: applying(p1.Longitude, p2.Longitude, p1.Speed-p2.Speed, at),
				})
			}
		}
	}
	return aspects
}

// AspectsBetween finds aspects from each planet of the first chart to
// each planet of the second (transits to natal, synastry). The
// applying flag uses only the first chart's speeds, since the second
// chart is treated as fixed.
func AspectsBetween(chart1, chart2 []PlanetPosition, orbs OrbConfig) []Aspect {
	var aspects []Aspect
	for _, p1 := range chart1 {
		for _, p2 := range chart2 {
			for _, at := range AllAspects() {
				actual, ok := checkAspect(p1.Longitude, p2.Longitude, at, orbs.Orb(at))
				if !ok {
					continue
				}
				aspects = append(aspects, Aspect{
					Planet1:  p1.Key,
					Planet2:  p2.Key,
					Type:     at,
					Orb:      actual,
					Applying: applying(p1.Longitude, p2.Longitude, p1.Speed, at),
				})
			}
		}
	}
	return aspects
}
