// Package report exports sag-tension tables as spreadsheets and PDF
// summaries.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gosag/internal/sagtension"
	"github.com/alexiusacademia/gosag/internal/transmissionline"
)

// Input is everything a report describes
type Input struct {
	Title     string
	LineCable *transmissionline.LineCable
	Rows      []sagtension.SagTensionRow
}

// column is one reported quantity of a row
type column struct {
	header string
	width  float64 // PDF cell width (mm)
	format string
	value  func(row sagtension.SagTensionRow) any
}

var columns = []column{
	{"Weathercase", 24, "%s", func(r sagtension.SagTensionRow) any { return r.Weathercase.Description }},
	{"Condition", 18, "%s", func(r sagtension.SagTensionRow) any { return r.Condition.String() }},
	{"Temp (F)", 16, "%.0f", func(r sagtension.SagTensionRow) any { return r.Weathercase.TemperatureCable }},
	{"H (lb)", 18, "%.1f", func(r sagtension.SagTensionRow) any { return r.TensionHorizontal }},
	{"Tavg (lb)", 18, "%.1f", func(r sagtension.SagTensionRow) any { return r.TensionAverage }},
	{"Core (lb)", 18, "%.1f", func(r sagtension.SagTensionRow) any { return r.TensionAverageCore }},
	{"Shell (lb)", 18, "%.1f", func(r sagtension.SagTensionRow) any { return r.TensionAverageShell }},
	{"Tmax (lb)", 18, "%.1f", func(r sagtension.SagTensionRow) any { return r.TensionMax }},
	{"Sag (ft)", 16, "%.2f", func(r sagtension.SagTensionRow) any { return r.Sag }},
	{"Swing (deg)", 18, "%.1f", func(r sagtension.SagTensionRow) any { return r.SwingAngle * 180 / math.Pi }},
	{"% RTS", 14, "%.1f", func(r sagtension.SagTensionRow) any { return r.PercentStrength }},
}

// headers returns the column titles
func headers() []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.header
	}
	return names
}

// describe returns the line cable lines printed above the table
func describe(lineCable *transmissionline.LineCable) []string {
	if lineCable == nil || lineCable.Cable == nil {
		return nil
	}

	constraint := lineCable.Constraint
	lines := []string{
		fmt.Sprintf("Cable: %s (rated strength %.0f lb)", lineCable.Cable.Name, lineCable.Cable.StrengthRated),
		fmt.Sprintf("Ruling span: %.1f ft horizontal, %.1f ft vertical",
			lineCable.SpacingAttachmentsRulingSpan.X, lineCable.SpacingAttachmentsRulingSpan.Z),
	}
	if constraint.CaseWeather != nil {
		lines = append(lines, fmt.Sprintf("Constraint: H = %.1f lb at %s, %s condition",
			constraint.Limit, constraint.CaseWeather.Description, strings.ToLower(constraint.Condition.String())))
	}
	if lineCable.WeathercaseStretchLoad != nil {
		lines = append(lines, "Load stretch weathercase: "+lineCable.WeathercaseStretchLoad.Description)
	}
	if lineCable.WeathercaseStretchCreep != nil {
		lines = append(lines, "Creep stretch weathercase: "+lineCable.WeathercaseStretchCreep.Description)
	}
	return lines
}
