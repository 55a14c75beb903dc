// Package nesc holds the NESC Rule 250B loading districts as weathercase
// presets.
package nesc

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gosag/internal/transmissionline"
	"github.com/alexiusacademia/gosag/internal/units"
)

// Density of glaze ice assumed by the NESC (lb/ft^3)
const DensityIce = 57.0

// LoadingDistrict represents an NESC combined ice and wind loading district
// Based on NESC Rule 250B - Combined Ice and Wind District Loading
type LoadingDistrict struct {
	ID          string
	Description string

	ThicknessIce float64 // radial ice (in)
	PressureWind float64 // horizontal wind pressure (psf)
	Temperature  float64 // deg F
	ConstantK    float64 // constant added to the resultant unit load (lb/ft)
}

// NESC Rule 250B, Table 250-1
var LoadingDistricts = []LoadingDistrict{
	{
		ID:           "heavy",
		Description:  "Heavy: 0.50 in ice, 4 psf wind, 0 F",
		ThicknessIce: 0.50,
		PressureWind: 4,
		Temperature:  0,
		ConstantK:    0.30,
	},
	{
		ID:           "medium",
		Description:  "Medium: 0.25 in ice, 4 psf wind, 15 F",
		ThicknessIce: 0.25,
		PressureWind: 4,
		Temperature:  15,
		ConstantK:    0.20,
	},
	{
		ID:           "light",
		Description:  "Light: no ice, 9 psf wind, 30 F",
		ThicknessIce: 0,
		PressureWind: 9,
		Temperature:  30,
		ConstantK:    0.05,
	},
	{
		ID:           "warm-islands",
		Description:  "Warm Islands (sea level to 9000 ft): no ice, 9 psf wind, 50 F",
		ThicknessIce: 0,
		PressureWind: 9,
		Temperature:  50,
		ConstantK:    0.05,
	},
}

// Lookup returns the loading district with the given ID (any case)
func Lookup(id string) (LoadingDistrict, error) {
	for _, district := range LoadingDistricts {
		if strings.EqualFold(district.ID, strings.TrimSpace(id)) {
			return district, nil
		}
	}
	return LoadingDistrict{}, fmt.Errorf("unknown NESC loading district %q", id)
}

// WeatherLoadCase converts the district into a weathercase in the internal
// unit system
func (d LoadingDistrict) WeatherLoadCase() *transmissionline.WeatherLoadCase {
	weathercase := &transmissionline.WeatherLoadCase{
		Description:      fmt.Sprintf("NESC %s", d.ID),
		ThicknessIce:     units.ConvertLength(d.ThicknessIce, units.InchesToFeet),
		PressureWind:     d.PressureWind,
		TemperatureCable: d.Temperature,
	}
	if 0 < d.ThicknessIce {
		weathercase.DensityIce = DensityIce
	}
	return weathercase
}

// UnitLoadResultant returns the resultant unit load of the district
// including the NESC constant
func (d LoadingDistrict) UnitLoadResultant(c *transmissionline.CableUnitLoadCalculator) (float64, error) {
	load, err := c.UnitCableLoad(d.WeatherLoadCase())
	if err != nil {
		return 0, fmt.Errorf("NESC %s: %w", d.ID, err)
	}
	return load.Magnitude() + d.ConstantK, nil
}

// GoverningDistrict finds the district with the largest resultant unit load
func GoverningDistrict(c *transmissionline.CableUnitLoadCalculator, districts []LoadingDistrict) (float64, LoadingDistrict, error) {
	var maxLoad float64
	var governing LoadingDistrict

	for _, district := range districts {
		load, err := district.UnitLoadResultant(c)
		if err != nil {
			return 0, LoadingDistrict{}, err
		}
		if load > maxLoad {
			maxLoad = load
			governing = district
		}
	}

	return maxLoad, governing, nil
}
