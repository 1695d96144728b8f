// Command horoscope prints natal chart data computed by the bundled
// ephemeris engine, or browses charts interactively in a terminal UI.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	ephemeris "github.com/recallfx/tailored-ephemeris"
	"github.com/recallfx/tailored-ephemeris/astro"
	"github.com/recallfx/tailored-ephemeris/internal/ui"
)

func main() {
	log.SetFlags(0)

	// No args or a leading flag runs chart mode directly; otherwise
	// the first arg is a subcommand.
	if len(os.Args) < 2 || strings.HasPrefix(os.Args[1], "-") {
		runChart(os.Args[1:])
		return
	}

	switch os.Args[1] {
	case "chart":
		runChart(os.Args[2:])
	case "phase":
		runPhase(os.Args[2:])
	case "tui":
		runTUI(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `horoscope – natal charts from a self-contained ephemeris

Usage:
  horoscope [flags]           # chart mode (default)
  horoscope chart [flags]     # planets, houses, aspects for an instant
  horoscope phase [flags]     # Moon phase and next new/full moon
  horoscope tui [flags]       # interactive chart browser

Chart mode flags:
  -lat float
        latitude in degrees (north positive)
  -lon float
        longitude in degrees (east positive, west negative)
  -date string
        date in YYYY-MM-DD (optional, defaults to today, UT)
  -time string
        time of day in HH:MM, UT (default "12:00")
  -json
        output result as JSON

For other modes:
  horoscope phase -h
  horoscope tui -h
`)
}

// parseInstant converts -date/-time flags to a Julian Day (UT).
func parseInstant(dateS, timeS string) (float64, error) {
	var year, month, day int
	if dateS == "" {
		now := time.Now().UTC()
		year, month, day = now.Year(), int(now.Month()), now.Day()
	} else {
		d, err := time.Parse("2006-01-02", dateS)
		if err != nil {
			return 0, fmt.Errorf("invalid -date %q: %w", dateS, err)
		}
		year, month, day = d.Year(), int(d.Month()), d.Day()
	}

	var hh, mm int
	if _, err := fmt.Sscanf(timeS, "%d:%d", &hh, &mm); err != nil {
		return 0, fmt.Errorf("invalid -time %q (want HH:MM): %w", timeS, err)
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("invalid -time %q: out of range", timeS)
	}

	hour := float64(hh) + float64(mm)/60.0
	return ephemeris.JulDayGregorian(year, month, day, hour), nil
}

// ---------------------
// Chart (default) mode
// ---------------------

func runChart(args []string) {
	fs := flag.NewFlagSet("chart", flag.ExitOnError)

	lat := fs.Float64("lat", 0, "latitude in degrees (north positive)")
	lon := fs.Float64("lon", 0, "longitude in degrees (east positive, west negative)")
	dateS := fs.String("date", "", "date in YYYY-MM-DD (optional, defaults to today, UT)")
	timeS := fs.String("time", "12:00", "time of day in HH:MM, UT")
	jsonOut := fs.Bool("json", false, "output result as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: horoscope chart [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	if *lat == 0 && *lon == 0 {
		log.Println("warning: lat=0 lon=0 (Gulf of Guinea). Use -lat and -lon to set a real location.")
	}

	jd, err := parseInstant(*dateS, *timeS)
	if err != nil {
		log.Fatal(err)
	}

	chart, err := astro.ChartFor(jd, *lat, *lon)
	if err != nil {
		log.Fatalf("error computing chart: %v", err)
	}
	aspects := astro.ChartAspects(chart.Planets, astro.DefaultOrbs())

	if *jsonOut {
		printChartJSON(jd, *lat, *lon, chart, aspects)
	} else {
		printChartHuman(jd, *lat, *lon, chart, aspects)
	}
}

func printChartHuman(jd, lat, lon float64, chart astro.NatalChart, aspects []astro.Aspect) {
	fmt.Printf("Chart for JD %.4f at lat=%.4f lon=%.4f\n\n", jd, lat, lon)

	fmt.Println("Planets:")
	for _, p := range chart.Planets {
		retro := ""
		if p.Retrograde {
			retro = " Rx"
		}
		fmt.Printf("  %-10s %9.4f°  %5.2f %-12s%s\n", p.Key, p.Longitude, p.SignDegree, p.Sign, retro)
	}
	fmt.Printf("  %-10s %9.4f°  %5.2f %-12s\n",
		"node", chart.NorthNode.Longitude, chart.NorthNode.SignDegree, chart.NorthNode.Sign)

	fmt.Printf("\nAscendant: %9.4f°   MC: %9.4f°\n\n", chart.Ascendant, chart.Midheaven)

	fmt.Println("Houses:")
	for _, h := range chart.Houses {
		fmt.Printf("  %2d  %9.4f°  %5.2f %s\n", h.Number, h.Longitude, h.SignDegree, h.Sign)
	}

	if len(aspects) > 0 {
		fmt.Println("\nAspects:")
		for _, a := range aspects {
			motion := "separating"
			if a.Applying {
				motion = "applying"
			}
			fmt.Printf("  %-10s %-14s %-10s orb %.2f° (%s)\n", a.Planet1, a.Type, a.Planet2, a.Orb, motion)
		}
	}
}

type chartJSON struct {
	JulianDay float64                `json:"julian_day"`
	Latitude  float64                `json:"latitude"`
	Longitude float64                `json:"longitude"`
	Planets   []astro.PlanetPosition `json:"planets"`
	Houses    []astro.HouseCusp      `json:"houses"`
	Ascendant float64                `json:"ascendant"`
	Midheaven float64                `json:"midheaven"`
	NorthNode astro.PlanetPosition   `json:"north_node"`
	Aspects   []chartAspectJSON      `json:"aspects"`
}

type chartAspectJSON struct {
	Planet1  string  `json:"planet1"`
	Planet2  string  `json:"planet2"`
	Type     string  `json:"type"`
	Orb      float64 `json:"orb"`
	Applying bool    `json:"applying"`
}

func printChartJSON(jd, lat, lon float64, chart astro.NatalChart, aspects []astro.Aspect) {
	out := chartJSON{
		JulianDay: jd,
		Latitude:  lat,
		Longitude: lon,
		Planets:   chart.Planets,
		Houses:    chart.Houses,
		Ascendant: chart.Ascendant,
		Midheaven: chart.Midheaven,
		NorthNode: chart.NorthNode,
	}
	for _, a := range aspects {
		out.Aspects = append(out.Aspects, chartAspectJSON{
			Planet1:  a.Planet1,
			Planet2:  a.Planet2,
			Type:     a.Type.String(),
			Orb:      a.Orb,
			Applying: a.Applying,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("failed to encode JSON: %v", err)
	}
}

// ---------------------
// Phase subcommand
// ---------------------

func runPhase(args []string) {
	fs := flag.NewFlagSet("phase", flag.ExitOnError)

	dateS := fs.String("date", "", "date in YYYY-MM-DD (optional, defaults to today, UT)")
	timeS := fs.String("time", "12:00", "time of day in HH:MM, UT")
	jsonOut := fs.Bool("json", false, "output result as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: horoscope phase [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	jd, err := parseInstant(*dateS, *timeS)
	if err != nil {
		log.Fatal(err)
	}

	phase, err := astro.MoonPhaseAt(jd)
	if err != nil {
		log.Fatalf("error computing phase: %v", err)
	}

	nextNew, err := astro.NextNewMoon(jd)
	if err != nil {
		log.Fatalf("error finding next new moon: %v", err)
	}
	nextFull, err := astro.NextFullMoon(jd)
	if err != nil {
		log.Fatalf("error finding next full moon: %v", err)
	}

	if *jsonOut {
		out := struct {
			JulianDay    float64 `json:"julian_day"`
			Phase        string  `json:"phase"`
			NextNewMoon  float64 `json:"next_new_moon_jd"`
			NextFullMoon float64 `json:"next_full_moon_jd"`
		}{jd, phase.String(), nextNew, nextFull}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			log.Fatalf("failed to encode JSON: %v", err)
		}
		return
	}

	fmt.Printf("Moon phase at JD %.4f\n", jd)
	fmt.Printf("  Phase          : %s\n", phase)
	fmt.Printf("  Next new moon  : %s (JD %.4f)\n", formatJD(nextNew), nextNew)
	fmt.Printf("  Next full moon : %s (JD %.4f)\n", formatJD(nextFull), nextFull)
}

func formatJD(jd float64) string {
	year, month, day, hour := ephemeris.RevJul(jd, ephemeris.GregorianCal)
	hh := int(hour)
	mm := int((hour - float64(hh)) * 60.0)
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d UT", year, month, day, hh, mm)
}

// ---------------------
// TUI subcommand
// ---------------------

func runTUI(args []string) {
	fs := flag.NewFlagSet("tui", flag.ExitOnError)

	lat := fs.Float64("lat", 0, "latitude in degrees (north positive)")
	lon := fs.Float64("lon", 0, "longitude in degrees (east positive, west negative)")
	dateS := fs.String("date", "", "date in YYYY-MM-DD (optional, defaults to today, UT)")
	timeS := fs.String("time", "12:00", "time of day in HH:MM, UT")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: horoscope tui [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	jd, err := parseInstant(*dateS, *timeS)
	if err != nil {
		log.Fatal(err)
	}

	p := tea.NewProgram(ui.New(jd, *lat, *lon), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("TUI error: %v", err)
	}
}
