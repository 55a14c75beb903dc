package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gosag/internal/sagtension"
)

var conditionColors = []color.Color{
	color.RGBA{R: 0, G: 0, B: 139, A: 255},
	color.RGBA{R: 200, G: 0, B: 0, A: 255},
	color.RGBA{R: 0, G: 128, B: 0, A: 255},
}

// ExportProfileDiagram exports the catenary profile to an image file. The
// format follows the extension (.png, .svg, .pdf); anything else gets .png.
func ExportProfileDiagram(data ProfileData, filename string) error {
	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = "Station (ft)"
	p.Y.Label.Text = "Elevation (ft)"
	p.Add(plotter.NewGrid())

	curve := make(plotter.XYs, len(data.Points))
	for i, point := range data.Points {
		curve[i] = plotter.XY{X: point.X, Y: point.Z}
	}
	curveLine, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	curveLine.LineStyle.Width = vg.Points(2)
	curveLine.LineStyle.Color = color.Black
	p.Add(curveLine)

	// chord between attachments
	chord, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: data.SpacingEndpoints.X, Y: data.SpacingEndpoints.Z},
	})
	if err != nil {
		return err
	}
	chord.LineStyle.Width = vg.Points(1)
	chord.LineStyle.Color = color.Gray{Y: 128}
	chord.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(chord)

	attachments, err := plotter.NewScatter(plotter.XYs{
		{X: 0, Y: 0},
		{X: data.SpacingEndpoints.X, Y: data.SpacingEndpoints.Z},
	})
	if err != nil {
		return err
	}
	attachments.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	attachments.GlyphStyle.Radius = vg.Points(4)
	attachments.GlyphStyle.Shape = draw.TriangleGlyph{}
	p.Add(attachments)

	low := lowestPoint(curve)
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{low},
		Labels: []string{fmt.Sprintf("H=%.0f lb  sag=%.2f ft  Tmax=%.0f lb",
			data.TensionHorizontal, data.Sag, data.TensionMax)},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	return save(p, filename, 8*vg.Inch, 4*vg.Inch)
}

// ExportTensionDiagram exports horizontal tension against temperature for
// the still-air rows of a sag-tension table, one line per condition
func ExportTensionDiagram(title string, rows []sagtension.SagTensionRow, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Temperature (°F)"
	p.Y.Label.Text = "Horizontal tension (lb)"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	drawn := 0
	for i, condition := range conditionsOf(rows) {
		selected := stillAir(rows, condition)
		if len(selected) == 0 {
			continue
		}

		points := make(plotter.XYs, len(selected))
		for j, row := range selected {
			points[j] = plotter.XY{X: row.Weathercase.TemperatureCable, Y: row.TensionHorizontal}
		}

		line, scatter, err := plotter.NewLinePoints(points)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = conditionColors[i%len(conditionColors)]
		scatter.GlyphStyle.Color = conditionColors[i%len(conditionColors)]
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(line, scatter)
		p.Legend.Add(condition.String(), line, scatter)
		drawn++
	}
	if drawn == 0 {
		return fmt.Errorf("no still-air rows to plot")
	}

	return save(p, filename, 8*vg.Inch, 6*vg.Inch)
}

func lowestPoint(points plotter.XYs) plotter.XY {
	low := points[0]
	for _, point := range points {
		if point.Y < low.Y {
			low = point
		}
	}
	return low
}

func save(p *plot.Plot, filename string, width, height vg.Length) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
