package astro

import (
	"strings"

	ephemeris "github.com/recallfx/tailored-ephemeris"
)

// PlanetPosition is a geocentric or heliocentric planet position with
// its derived sign data.
type PlanetPosition struct {
	Planet     ephemeris.Planet
	Key        string
	Longitude  float64
	Sign       string
	SignDegree float64
	Retrograde bool
	Speed      float64 // degrees/day
}

// HouseCusp is one house cusp with its derived sign data.
type HouseCusp struct {
	Number     int
	Longitude  float64
	Sign       string
	SignDegree float64
}

// NatalChart is the full set of chart factors for one birth moment.
type NatalChart struct {
	Planets   []PlanetPosition
	Houses    []HouseCusp
	Ascendant float64
	Midheaven float64
	NorthNode PlanetPosition
}

// HeliocentricChart holds heliocentric planet positions. There are no
// houses or angles; those are observer concepts.
type HeliocentricChart struct {
	Planets []PlanetPosition
}

func planetKey(p ephemeris.Planet) string {
	return strings.ReplaceAll(strings.ToLower(p.String()), " ", "_")
}

func derivePosition(planet ephemeris.Planet, pos ephemeris.Position) PlanetPosition {
	return PlanetPosition{
		Planet:     planet,
		Key:        planetKey(planet),
		Longitude:  pos.Longitude,
		Sign:       SignFromLongitude(pos.Longitude),
		SignDegree: SignDegree(pos.Longitude),
		Retrograde: pos.IsRetrograde(),
		Speed:      pos.SpeedLongitude,
	}
}

// chartBodies are the ten classical chart planets, node excluded.
var chartBodies = []ephemeris.Planet{
	ephemeris.Sun, ephemeris.Moon, ephemeris.Mercury, ephemeris.Venus,
	ephemeris.Mars, ephemeris.Jupiter, ephemeris.Saturn,
	ephemeris.Uranus, ephemeris.Neptune, ephemeris.Pluto,
}

// AllPositions returns the ten chart planets with speeds and derived
// sign data at a Julian Day (UT).
func AllPositions(jd float64) ([]PlanetPosition, error) {
	positions := make([]PlanetPosition, 0, len(chartBodies))
	for _, planet := range chartBodies {
		pos, err := ephemeris.CalcUT(jd, planet, true)
		if err != nil {
			return nil, err
		}
		positions = append(positions, derivePosition(planet, pos))
	}
	return positions, nil
}

// AllHeliocentricPositions returns Earth plus the eight planets in
// heliocentric coordinates. Retrograde never applies in this frame.
func AllHeliocentricPositions(jd float64) ([]PlanetPosition, error) {
	planets := ephemeris.HeliocentricPlanets()
	positions := make([]PlanetPosition, 0, len(planets))
	for _, planet := range planets {
		pos, err := ephemeris.CalcHeliocentricUT(jd, planet, true)
		if err != nil {
			return nil, err
		}
		dp := derivePosition(planet, pos)
		dp.Retrograde = false
		positions = append(positions, dp)
	}
	return positions, nil
}

// ChartFor assembles a complete natal chart for a birth moment and
// place.
func ChartFor(jd, latitude, longitude float64) (NatalChart, error) {
	planets, err := AllPositions(jd)
	if err != nil {
		return NatalChart{}, err
	}

	houseData := ephemeris.CalcHouses(jd, latitude, longitude)

	houses := make([]HouseCusp, 0, 12)
	for i := 1; i <= 12; i++ {
		cusp := houseData.Cusps[i]
		houses = append(houses, HouseCusp{
			Number:     i,
			Longitude:  cusp,
			Sign:       SignFromLongitude(cusp),
			SignDegree: SignDegree(cusp),
		})
	}

	nodePos, err := ephemeris.CalcUT(jd, ephemeris.TrueNode, false)
	if err != nil {
		return NatalChart{}, err
	}

	return NatalChart{
		Planets:   planets,
		Houses:    houses,
		Ascendant: houseData.Ascendant,
		Midheaven: houseData.MC,
		NorthNode: derivePosition(ephemeris.TrueNode, nodePos),
	}, nil
}

// HeliocentricChartFor assembles a heliocentric chart.
func HeliocentricChartFor(jd float64) (HeliocentricChart, error) {
	planets, err := AllHeliocentricPositions(jd)
	if err != nil {
		return HeliocentricChart{}, err
	}
	return HeliocentricChart{Planets: planets}, nil
}
