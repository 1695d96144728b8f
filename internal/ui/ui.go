// Package ui provides the interactive chart browser using Bubble Tea.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	ephemeris "github.com/recallfx/tailored-ephemeris"
	"github.com/recallfx/tailored-ephemeris/astro"
)

// ViewMode represents the current panel.
type ViewMode int

const (
	ViewPlanets ViewMode = iota
	ViewHouses
	ViewAspects
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	retroStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	signStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27")).Bold(true)
)

// Model is the root Bubble Tea model: a natal chart at a movable
// instant, with planet, house, and aspect panels.
type Model struct {
	jd  float64
	lat float64
	lon float64

	viewMode ViewMode
	width    int
	height   int
	ready    bool

	chart   astro.NatalChart
	aspects []astro.Aspect
	err     error
}

// New creates a chart browser at the given instant and place.
func New(jd, lat, lon float64) Model {
	m := Model{
		jd:       jd,
		lat:      lat,
		lon:      lon,
		viewMode: ViewPlanets,
	}
	return m.recompute()
}

// recompute rebuilds the chart after the instant changed.
func (m Model) recompute() Model {
	chart, err := astro.ChartFor(m.jd, m.lat, m.lon)
	if err != nil {
		m.err = err
		return m
	}
	m.err = nil
	m.chart = chart
	m.aspects = astro.ChartAspects(chart.Planets, astro.DefaultOrbs())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "p":
			m.viewMode = ViewPlanets
		case "2", "o":
			m.viewMode = ViewHouses
		case "3", "a":
			m.viewMode = ViewAspects
		case "tab":
			m.viewMode = (m.viewMode + 1) % 3

		// Time navigation
		case "l", "right":
			m.jd += 1.0
			m = m.recompute()
		case "h", "left":
			m.jd -= 1.0
			m = m.recompute()
		case "L", "shift+right":
			m.jd += 7.0
			m = m.recompute()
		case "H", "shift+left":
			m.jd -= 7.0
			m = m.recompute()
		case ".":
			m.jd += 1.0 / 24.0
			m = m.recompute()
		case ",":
			m.jd -= 1.0 / 24.0
			m = m.recompute()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	year, month, day, hour := ephemeris.RevJul(m.jd, ephemeris.GregorianCal)
	hh := int(hour)
	mm := int((hour - float64(hh)) * 60.0)

	b.WriteString(titleStyle.Render("Horoscope"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %04d-%02d-%02d %02d:%02d UT  (JD %.4f)  lat %.4f lon %.4f",
		year, month, day, hh, mm, m.jd, m.lat, m.lon)))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
		return b.String()
	}

	switch m.viewMode {
	case ViewHouses:
		b.WriteString(m.renderHouses())
	case ViewAspects:
		b.WriteString(m.renderAspects())
	default:
		b.WriteString(m.renderPlanets())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("h/l day  H/L week  ,/. hour  1 planets  2 houses  3 aspects  q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderPlanets() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-10s %10s  %-12s %8s", "Planet", "Longitude", "Sign", "Speed")))
	b.WriteString("\n")

	for _, p := range m.chart.Planets {
		line := fmt.Sprintf("%-10s %9.4f°  %-12s %+7.4f",
			p.Key, p.Longitude, formatSignPosition(p.Longitude), p.Speed)
		if p.Retrograde {
			line += retroStyle.Render(" Rx")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	node := m.chart.NorthNode
	b.WriteString(fmt.Sprintf("%-10s %9.4f°  %-12s\n", "node", node.Longitude, formatSignPosition(node.Longitude)))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("ASC %s   MC %s\n",
		signStyle.Render(formatSignPosition(m.chart.Ascendant)),
		signStyle.Render(formatSignPosition(m.chart.Midheaven))))

	return b.String()
}

func (m Model) renderHouses() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-6s %10s  %-12s", "House", "Cusp", "Sign")))
	b.WriteString("\n")

	for _, h := range m.chart.Houses {
		b.WriteString(fmt.Sprintf("%-6d %9.4f°  %-12s\n", h.Number, h.Longitude, formatSignPosition(h.Longitude)))
	}

	return b.String()
}

func (m Model) renderAspects() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-10s %-10s %-15s %7s  %s", "Planet", "Planet", "Aspect", "Orb", "Motion")))
	b.WriteString("\n")

	if len(m.aspects) == 0 {
		b.WriteString(dimStyle.Render("no aspects in orb"))
		b.WriteString("\n")
		return b.String()
	}

	for _, a := range m.aspects {
		motion := "separating"
		if a.Applying {
			motion = "applying"
		}
		b.WriteString(fmt.Sprintf("%-10s %-10s %-15s %6.2f°  %s\n",
			a.Planet1, a.Planet2, a.Type, a.Orb, motion))
	}

	return b.String()
}

// formatSignPosition renders a longitude as degree-within-sign plus
// the sign key, e.g. "10.37 capricorn".
func formatSignPosition(lon float64) string {
	return fmt.Sprintf("%.2f %s", astro.SignDegree(lon), astro.SignFromLongitude(lon))
}
