package transmissionline

import "github.com/alexiusacademia/gosag/internal/validation"

// WeatherLoadCase describes one environmental loading condition on the cable.
// Values are in the internal unit system (ft, lb/ft^3, psf, deg F).
type WeatherLoadCase struct {
	Description      string  // e.g. "0.5-8-0" (ice in, wind psf, temperature F)
	ThicknessIce     float64 // radial ice thickness (ft)
	DensityIce       float64 // ice density (lb/ft^3)
	PressureWind     float64 // wind pressure on the projected area (psf)
	TemperatureCable float64 // cable temperature (deg F)
}

// Recommended ranges, outside of which a warning is raised
const (
	maxThicknessIce     = 0.5   // ft
	maxDensityIce       = 80.0  // lb/ft^3
	maxPressureWind     = 100.0 // psf
	minTemperatureCable = -100.0
	maxTemperatureCable = 450.0
)

// Validate checks the weathercase. Warnings tighten the acceptable ranges.
func (w *WeatherLoadCase) Validate(includeWarnings bool, messages *validation.Messages) bool {
	const title = "WEATHER LOAD CASE"
	isValid := true

	if w.ThicknessIce < 0 {
		isValid = false
		messages.Addf(title, "invalid ice thickness (%s)", w.Description)
	}
	if w.DensityIce < 0 {
		isValid = false
		messages.Addf(title, "invalid ice density (%s)", w.Description)
	}
	if w.PressureWind < 0 {
		isValid = false
		messages.Addf(title, "invalid wind pressure (%s)", w.Description)
	}

	if includeWarnings {
		if maxThicknessIce < w.ThicknessIce {
			isValid = false
			messages.Addf(title, "ice thickness exceeds %.2f ft (%s)", maxThicknessIce, w.Description)
		}
		if 0 < w.ThicknessIce && (w.DensityIce == 0 || maxDensityIce < w.DensityIce) {
			isValid = false
			messages.Addf(title, "ice density outside of (0, %.0f] lb/ft^3 (%s)", maxDensityIce, w.Description)
		}
		if maxPressureWind < w.PressureWind {
			isValid = false
			messages.Addf(title, "wind pressure exceeds %.0f psf (%s)", maxPressureWind, w.Description)
		}
		if w.TemperatureCable < minTemperatureCable || maxTemperatureCable < w.TemperatureCable {
			isValid = false
			messages.Addf(title, "temperature outside of [%.0f, %.0f] F (%s)",
				minTemperatureCable, maxTemperatureCable, w.Description)
		}
	}

	return isValid
}
