// Command horoscope-sweep measures the engine's longitude accuracy
// against embedded Swiss Ephemeris reference positions across 150
// years, and reports per-planet error statistics.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	ephemeris "github.com/recallfx/tailored-ephemeris"
)

type stats struct {
	count int
	sum   float64
	min   float64
	max   float64
}

func (s *stats) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	if s.count == 0 {
		s.min, s.max = v, v
	} else {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	s.sum += v
	s.count++
}

func (s *stats) avg() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.sum / float64(s.count)
}

// referencePoint holds Swiss Ephemeris (Moshier) longitudes for one
// instant, in chart order: Sun, Moon, Mercury..Pluto, true node.
type referencePoint struct {
	year, month, day int
	hour             float64
	longitudes       [11]float64
}

var sweepPlanets = [11]ephemeris.Planet{
	ephemeris.Sun, ephemeris.Moon, ephemeris.Mercury, ephemeris.Venus,
	ephemeris.Mars, ephemeris.Jupiter, ephemeris.Saturn, ephemeris.Uranus,
	ephemeris.Neptune, ephemeris.Pluto, ephemeris.TrueNode,
}

// swetest -b<date> -ut12:00 -eswe, one point per quarter century.
var referencePoints = []referencePoint{
	{1925, 1, 1, 12.0, [11]float64{280.5877948, 4.9288964, 269.1887429, 253.2598996, 7.9289185,
		273.2642731, 222.1040118, 348.1198945, 142.2141458, 102.5277646, 134.2590105}},
	{1950, 1, 1, 12.0, [11]float64{280.5143892, 67.5443540, 299.9720188, 317.1524788, 182.3944446,
		306.6180429, 169.4355399, 92.6614516, 197.2710243, 137.7895694, 12.4763404}},
	{1975, 1, 1, 12.0, [11]float64{280.4440134, 146.5951747, 287.8576437, 294.0081695, 255.3176711,
		343.3989594, 105.8334785, 211.8939332, 250.4502428, 189.2259704, 249.9242081}},
	{2000, 1, 1, 12.0, [11]float64{280.3689197, 223.3237754, 271.8892750, 241.5657983, 327.9633133,
		25.2530303, 40.3956390, 314.8092232, 303.1929812, 251.4547088, 123.9528954}},
	{2025, 1, 1, 12.0, [11]float64{281.3234326, 300.6608947, 260.5163879, 328.2482972, 121.7526313,
		73.1626153, 344.5620839, 53.6237355, 357.3046902, 301.0800915, 0.7777947}},
	{2050, 1, 1, 12.0, [11]float64{281.2580033, 25.3818536, 269.6006798, 281.8772976, 228.0324387,
		121.6321532, 297.6321732, 170.7295657, 53.5945758, 337.5416374, 239.5089534}},
	{2075, 1, 1, 12.0, [11]float64{281.1802401, 91.3351574, 300.7098004, 234.7978524, 296.1682802,
		164.5897961, 253.1575501, 280.8670337, 111.0031921, 6.8413482, 113.6531205}},
}

func angleDiff(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180.0 {
		d = 360.0 - d
	}
	return d
}

func main() {
	log.SetFlags(0)

	var (
		verbose = flag.Bool("verbose", false, "log per-point errors instead of only the summary")
		outCSV  = flag.String("outcsv", "", "optional path to write per-point error CSV")
	)
	flag.Parse()

	var outWriter *csv.Writer
	if *outCSV != "" {
		outFile, err := os.Create(*outCSV)
		if err != nil {
			log.Fatalf("failed to create outcsv %q: %v", *outCSV, err)
		}
		defer outFile.Close()

		outWriter = csv.NewWriter(outFile)
		defer outWriter.Flush()

		if err := outWriter.Write([]string{
			"year", "planet", "computed_deg", "reference_deg", "error_arcsec",
		}); err != nil {
			log.Fatalf("failed to write outcsv header: %v", err)
		}
	}

	perPlanet := make(map[ephemeris.Planet]*stats, len(sweepPlanets))
	for _, p := range sweepPlanets {
		perPlanet[p] = &stats{}
	}
	var overall stats

	for _, point := range referencePoints {
		jd := ephemeris.JulDayGregorian(point.year, point.month, point.day, point.hour)

		if *verbose {
			fmt.Printf("--- %d (JD %.1f) ---\n", point.year, jd)
		}

		for i, planet := range sweepPlanets {
			pos, err := ephemeris.CalcUT(jd, planet, false)
			if err != nil {
				log.Fatalf("%d %v: %v", point.year, planet, err)
			}

			errArcsec := angleDiff(pos.Longitude, point.longitudes[i]) * 3600.0
			perPlanet[planet].add(errArcsec)
			overall.add(errArcsec)

			if *verbose {
				fmt.Printf("  %-10s %12.6f° ref %12.6f°  err %8.1f\"\n",
					planet, pos.Longitude, point.longitudes[i], errArcsec)
			}

			if outWriter != nil {
				rec := []string{
					fmt.Sprintf("%d", point.year),
					planet.String(),
					fmt.Sprintf("%.6f", pos.Longitude),
					fmt.Sprintf("%.6f", point.longitudes[i]),
					fmt.Sprintf("%.2f", errArcsec),
				}
				if err := outWriter.Write(rec); err != nil {
					log.Printf("failed to write outcsv row: %v", err)
				}
			}
		}
	}

	fmt.Println("=== horoscope-sweep summary (longitude error, arcsec) ===")
	fmt.Printf("Points: %d instants x %d bodies\n\n", len(referencePoints), len(sweepPlanets))
	fmt.Printf("%-10s %8s %10s %10s %10s\n", "Planet", "count", "min\"", "max\"", "avg\"")
	for _, p := range sweepPlanets {
		s := perPlanet[p]
		fmt.Printf("%-10s %8d %10.1f %10.1f %10.1f\n", p, s.count, s.min, s.max, s.avg())
	}
	fmt.Printf("\n%-10s %8d %10.1f %10.1f %10.1f\n", "ALL", overall.count, overall.min, overall.max, overall.avg())
}
