// Package factory builds the sample Drake ACSR line cable used by the tests
// and by the CLI's sample command.
package factory

import (
	"github.com/alexiusacademia/gosag/internal/transmissionline"
	"github.com/alexiusacademia/gosag/internal/units"
	"github.com/alexiusacademia/gosag/internal/vector"
)

// Drake 26/7 ACSR physical area (in^2), used to scale the stress-strain
// polynomials from psi to lb
const areaDrake = 0.7264

// BuildCable returns a Drake 26/7 ACSR cable. The polynomials are stress
// (psi) versus strain (%) over the whole cable area at 70 F.
func BuildCable() *transmissionline.Cable {
	return &transmissionline.Cable{
		Name:                            "Drake 26/7 ACSR",
		Diameter:                        units.ConvertLength(1.108, units.InchesToFeet),
		WeightUnit:                      1.094,
		StrengthRated:                   31200,
		TemperaturePropertiesComponents: 70,
		ComponentCore: transmissionline.CableComponent{
			CoefficientExpansionLinearThermal: 0.0000064,
			CoefficientsPolynomialCreep:       []float64{47.1, 36211.3, 12201.4, -72392, 46338},
			CoefficientsPolynomialLoadStrain:  []float64{-69.3, 38629, 3998.1, -45713, 27892},
			LoadLimitPolynomialCreep:          12500,
			LoadLimitPolynomialLoadStrain:     14000,
			ModulusCompressionElasticArea:     37000 * 100 * areaDrake,
			ModulusTensionElasticArea:         37000 * 100 * areaDrake,
			ScalePolynomialX:                  0.01,
			ScalePolynomialY:                  areaDrake,
		},
		ComponentShell: transmissionline.CableComponent{
			CoefficientExpansionLinearThermal: 0.0000128,
			CoefficientsPolynomialCreep:       []float64{-544.8, 21426.8, -18842.2, 5495, 0},
			CoefficientsPolynomialLoadStrain:  []float64{-1213, 44308.1, -14004.4, -37618, 30676},
			LoadLimitPolynomialCreep:          5000,
			LoadLimitPolynomialLoadStrain:     12500,
			ModulusCompressionElasticArea:     1500 * 100 * areaDrake,
			ModulusTensionElasticArea:         64000 * 100 * areaDrake,
			ScalePolynomialX:                  0.01,
			ScalePolynomialY:                  areaDrake,
		},
	}
}

// BuildWeatherLoadCase returns a weathercase from ice (in), wind (psf) and
// temperature (F), described as "ice-wind-temperature"
func BuildWeatherLoadCase(description string, iceInches, windPsf, temperature float64) *transmissionline.WeatherLoadCase {
	weathercase := &transmissionline.WeatherLoadCase{
		Description:      description,
		ThicknessIce:     units.ConvertLength(iceInches, units.InchesToFeet),
		PressureWind:     windPsf,
		TemperatureCable: temperature,
	}
	if 0 < iceInches {
		weathercase.DensityIce = 57.3
	}
	return weathercase
}

// BuildLineCable returns the Drake cable strung on a level 1200 ft ruling
// span, tensioned to 6000 lb at 60 F with no ice or wind in the initial
// condition. Load stretch comes from NESC heavy (0.5-8-0), creep stretch
// from the everyday 0-0-60 case.
func BuildLineCable() *transmissionline.LineCable {
	return &transmissionline.LineCable{
		Cable: BuildCable(),
		Constraint: transmissionline.CableConstraint{
			CaseWeather: BuildWeatherLoadCase("0-0-60", 0, 0, 60),
			Condition:   transmissionline.ConditionInitial,
			Limit:       6000,
			Note:        "everyday stringing tension",
		},
		SpacingAttachmentsRulingSpan: vector.Vector3d{X: 1200, Y: 0, Z: 0},
		WeathercaseStretchCreep:      BuildWeatherLoadCase("0-0-60", 0, 0, 60),
		WeathercaseStretchLoad:       BuildWeatherLoadCase("0.5-8-0", 0.5, 8, 0),
	}
}

// BuildWeathercasesTable returns a small set of reporting weathercases
func BuildWeathercasesTable() []*transmissionline.WeatherLoadCase {
	return []*transmissionline.WeatherLoadCase{
		BuildWeatherLoadCase("0-0-0", 0, 0, 0),
		BuildWeatherLoadCase("0-0-60", 0, 0, 60),
		BuildWeatherLoadCase("0-0-120", 0, 0, 120),
		BuildWeatherLoadCase("0-0-212", 0, 0, 212),
		BuildWeatherLoadCase("0.5-8-0", 0.5, 8, 0),
		BuildWeatherLoadCase("1-8-0", 1, 8, 0),
	}
}
