// Package diagram draws the ruling span catenary and sag-tension results as
// ASCII text and as image files.
package diagram

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/gosag/internal/catenary"
	"github.com/alexiusacademia/gosag/internal/vector"
)

// ProfileData holds a sampled catenary and its key values
type ProfileData struct {
	Title string

	// curve points relative to the first attachment (ft)
	Points []vector.Vector3d

	TensionHorizontal float64 // lb
	TensionAverage    float64 // lb
	TensionMax        float64 // lb
	Sag               float64 // ft
	SwingAngle        float64 // radians
	Length            float64 // ft
	SpacingEndpoints  vector.Vector3d
}

// NewProfileData samples the catenary at evenly spaced position fractions
func NewProfileData(title string, cat *catenary.Catenary3d, points int) ProfileData {
	if points < 2 {
		points = 2
	}

	fractions := floats.Span(make([]float64, points), 0, 1)
	data := ProfileData{
		Title:             title,
		Points:            make([]vector.Vector3d, points),
		TensionHorizontal: cat.TensionHorizontal,
		TensionAverage:    cat.TensionAverage(),
		TensionMax:        cat.TensionMax(),
		Sag:               cat.Sag(),
		SwingAngle:        cat.SwingAngle(),
		Length:            cat.Length(),
		SpacingEndpoints:  cat.SpacingEndpoints,
	}
	for i, fraction := range fractions {
		data.Points[i] = cat.Coordinate(fraction)
	}

	return data
}

// Elevations returns the vertical coordinate of every point
func (d ProfileData) Elevations() []float64 {
	z := make([]float64, len(d.Points))
	for i, p := range d.Points {
		z[i] = p.Z
	}
	return z
}

// Stations returns the along-line coordinate of every point
func (d ProfileData) Stations() []float64 {
	x := make([]float64, len(d.Points))
	for i, p := range d.Points {
		x[i] = p.X
	}
	return x
}

// Blowout returns the largest transverse displacement of the curve
func (d ProfileData) Blowout() float64 {
	blowout := 0.0
	for i, p := range d.Points {
		fraction := float64(i) / float64(len(d.Points)-1)
		blowout = math.Max(blowout, math.Abs(p.Y-fraction*d.SpacingEndpoints.Y))
	}
	return blowout
}
