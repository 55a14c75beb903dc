package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gosag/internal/sagtension"
)

// DrawASCIIProfile plots the catenary elevation along the span
func DrawASCIIProfile(data ProfileData, width, height int) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(data.Title)))
	sb.WriteString(fmt.Sprintf("  %s\n\n", strings.Repeat("─", utf8.RuneCountInString(data.Title))))

	graph := asciigraph.Plot(data.Elevations(),
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(1),
		asciigraph.Offset(4),
		asciigraph.Caption(fmt.Sprintf("elevation (ft) over %.0f ft span", data.SpacingEndpoints.X)),
	)
	sb.WriteString(graph)
	sb.WriteString("\n")

	return sb.String()
}

// DrawASCIITensionCurve plots horizontal tension against temperature for
// each condition of a sag-tension table. Rows at the same temperature with
// different loads are skipped so only still-air rows are drawn.
func DrawASCIITensionCurve(rows []sagtension.SagTensionRow, width, height int) string {
	var series [][]float64
	var legends []string

	for _, condition := range conditionsOf(rows) {
		var tensions []float64
		for _, row := range stillAir(rows, condition) {
			tensions = append(tensions, row.TensionHorizontal)
		}
		if len(tensions) < 2 {
			continue
		}
		series = append(series, tensions)
		legends = append(legends, condition.String())
	}
	if len(series) == 0 {
		return ""
	}

	return asciigraph.PlotMany(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red, asciigraph.Green),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption("horizontal tension (lb), still air, increasing temperature"),
	)
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// ProfileSummary returns the key values of a profile as summary box lines
func ProfileSummary(data ProfileData) []string {
	return []string{
		fmt.Sprintf("Horizontal tension  H    = %10.1f lb", data.TensionHorizontal),
		fmt.Sprintf("Average tension     Tavg = %10.1f lb", data.TensionAverage),
		fmt.Sprintf("Maximum tension     Tmax = %10.1f lb", data.TensionMax),
		fmt.Sprintf("Sag                      = %10.2f ft", data.Sag),
		fmt.Sprintf("Swing angle              = %10.2f deg", data.SwingAngle*180/math.Pi),
		fmt.Sprintf("Blowout                  = %10.2f ft", data.Blowout()),
		fmt.Sprintf("Curve length             = %10.3f ft", data.Length),
	}
}
