// Package ephemeris computes geocentric ecliptic positions of the Sun,
// Moon, the eight major planets, and the true lunar node, plus Placidus
// house cusps, for an arbitrary instant given as a Julian Day.
//
// The engine is self-contained: a reduced planetary theory for the
// Sun and Kepler-element planets, a truncated periodic-series lunar
// theory, and an iterative Placidus cusp solver. Accuracy is
// horoscope-grade (arcminutes near the present, up to ~2 degrees at
// the edges of the supported era), not a replacement for a full
// numerical ephemeris.
//
// All entry points accept Universal Time Julian Days and convert to
// ephemeris time internally. Every function is a pure mapping from
// numeric inputs to numeric outputs; concurrent calls need no
// synchronization.
package ephemeris

import (
	"errors"
	"fmt"
	"math"

	"github.com/recallfx/tailored-ephemeris/internal/frame"
	"github.com/recallfx/tailored-ephemeris/internal/houses"
	"github.com/recallfx/tailored-ephemeris/internal/moon"
	"github.com/recallfx/tailored-ephemeris/internal/node"
	"github.com/recallfx/tailored-ephemeris/internal/planets"
)

// Planet identifies a celestial body. The numbering follows the Swiss
// Ephemeris convention; 10 is reserved for the mean node.
type Planet int

const (
	Sun Planet = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	_ // mean node, reserved
	TrueNode

	// Earth is only meaningful for heliocentric calculations.
	Earth Planet = 14
)

var planetNames = map[Planet]string{
	Sun:      "Sun",
	Moon:     "Moon",
	Mercury:  "Mercury",
	Venus:    "Venus",
	Mars:     "Mars",
	Jupiter:  "Jupiter",
	Saturn:   "Saturn",
	Uranus:   "Uranus",
	Neptune:  "Neptune",
	Pluto:    "Pluto",
	TrueNode: "True Node",
	Earth:    "Earth",
}

// String returns the body's display name, or a numeric fallback for
// unmapped identifiers.
func (p Planet) String() string {
	if name, ok := planetNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Planet(%d)", int(p))
}

// AllPlanets lists the bodies CalcUT supports, in chart order.
func AllPlanets() []Planet {
	return []Planet{
		Sun, Moon, Mercury, Venus, Mars,
		Jupiter, Saturn, Uranus, Neptune, Pluto, TrueNode,
	}
}

// HeliocentricPlanets lists the bodies CalcHeliocentricUT supports.
func HeliocentricPlanets() []Planet {
	return []Planet{
		Earth, Mercury, Venus, Mars,
		Jupiter, Saturn, Uranus, Neptune, Pluto,
	}
}

// Position is an ecliptic position with optional speed components.
// Speed fields are zero unless the calculation was asked for them.
type Position struct {
	Longitude      float64 // ecliptic longitude, degrees [0,360)
	Latitude       float64 // ecliptic latitude, degrees, signed
	Distance       float64 // AU (0 for the node)
	SpeedLongitude float64 // degrees/day
	SpeedLatitude  float64 // degrees/day
	SpeedDistance  float64 // AU/day
}

// Sign returns the zodiac sign index (0 = Aries .. 11 = Pisces).
func (p Position) Sign() int {
	return int(p.Longitude/30.0) % 12
}

// SignDegree returns the degree within the sign, [0,30).
func (p Position) SignDegree() float64 {
	return math.Mod(p.Longitude, 30.0)
}

// IsRetrograde reports whether the body's longitude is decreasing.
func (p Position) IsRetrograde() bool {
	return p.SpeedLongitude < 0
}

// Houses holds the twelve Placidus cusps and the chart angles.
// Ascendant and MC carry the same values as Cusps[1] and Cusps[10].
type Houses struct {
	Cusps     [13]float64 // index 1..12, slot 0 unused
	Ascendant float64
	MC        float64
	ARMC      float64 // local sidereal time in degrees
	Vertex    float64
}

var (
	// ErrOutOfRange is returned when the requested instant falls
	// outside the supported interval (about years -3000 to +3000).
	ErrOutOfRange = errors.New("julian day out of supported range")

	// ErrInvalidPlanet is returned for a body identifier the engine
	// does not compute.
	ErrInvalidPlanet = errors.New("invalid planet")
)

// CalcUT returns the geocentric position of a body at the given
// Julian Day (Universal Time). With speed true the longitude speed is
// computed by numerical differentiation; otherwise speed fields are
// zero, except the true node which always carries at least its mean
// daily motion.
func CalcUT(jdUT float64, planet Planet, speed bool) (Position, error) {
	jdET := jdUT + frame.DeltaT(jdUT)
	if jdET < frame.RangeStart || jdET > frame.RangeEnd {
		return Position{}, fmt.Errorf("%w: jd %.1f", ErrOutOfRange, jdUT)
	}

	switch planet {
	case Sun:
		return fromPlanets(planets.Sun(jdET, speed)), nil
	case Moon:
		return fromMoon(moon.Calc(jdET, speed)), nil
	case TrueNode:
		return fromNode(node.True(jdET, speed)), nil
	case Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto:
		return fromPlanets(planets.Geocentric(jdET, keplerIndex(planet), speed)), nil
	default:
		return Position{}, fmt.Errorf("%w: %d", ErrInvalidPlanet, int(planet))
	}
}

// CalcHeliocentricUT returns the heliocentric position of a planet at
// the given Julian Day (Universal Time). The Sun, Moon, and node have
// no heliocentric position; Earth is valid only here.
func CalcHeliocentricUT(jdUT float64, planet Planet, speed bool) (Position, error) {
	jdET := jdUT + frame.DeltaT(jdUT)
	if jdET < frame.RangeStart || jdET > frame.RangeEnd {
		return Position{}, fmt.Errorf("%w: jd %.1f", ErrOutOfRange, jdUT)
	}

	switch planet {
	case Earth:
		return fromPlanets(planets.EarthHeliocentric(jdET, speed)), nil
	case Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto:
		return fromPlanets(planets.Heliocentric(jdET, keplerIndex(planet), speed)), nil
	default:
		return Position{}, fmt.Errorf("%w: %d has no heliocentric position", ErrInvalidPlanet, int(planet))
	}
}

// CalcHouses returns Placidus house cusps and angles for an observer
// at the given geographic latitude and longitude (degrees, east
// positive). It is defined for latitudes strictly between the poles.
func CalcHouses(jdUT, lat, lon float64) Houses {
	r := houses.Placidus(jdUT, lat, lon)
	return Houses{
		Cusps:     r.Cusps,
		Ascendant: r.Ascendant,
		MC:        r.MC,
		ARMC:      r.ARMC,
		Vertex:    r.Vertex,
	}
}

// DeltaT returns the difference ET - UT in days at the given Julian
// Day (Universal Time).
func DeltaT(jdUT float64) float64 {
	return frame.DeltaT(jdUT)
}

// Obliquity returns the mean obliquity of the ecliptic in radians at
// the given Julian Day (ephemeris time).
func Obliquity(jdET float64) float64 {
	return frame.Obliquity(jdET)
}

func keplerIndex(p Planet) planets.Index {
	return planets.Index(p - Mercury)
}

func fromPlanets(p planets.Position) Position {
	return Position{
		Longitude:      p.Longitude,
		Latitude:       p.Latitude,
		Distance:       p.Distance,
		SpeedLongitude: p.SpeedLongitude,
	}
}

func fromMoon(p moon.Position) Position {
	return Position{
		Longitude:      p.Longitude,
		Latitude:       p.Latitude,
		Distance:       p.Distance,
		SpeedLongitude: p.SpeedLongitude,
	}
}

func fromNode(p node.Position) Position {
	return Position{
		Longitude:      p.Longitude,
		Latitude:       p.Latitude,
		Distance:       p.Distance,
		SpeedLongitude: p.SpeedLongitude,
	}
}
