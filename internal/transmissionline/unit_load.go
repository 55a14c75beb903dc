package transmissionline

import (
	"math"

	"github.com/alexiusacademia/gosag/internal/validation"
	"github.com/alexiusacademia/gosag/internal/vector"
)

// CableUnitLoadCalculator converts a weathercase into the load per unit
// length acting on the cable
type CableUnitLoadCalculator struct {
	DiameterCable   float64 // ft
	WeightUnitCable float64 // lb/ft

	// IsIncludedWarnings rejects weathercases outside the recommended range,
	// not only physically impossible ones
	IsIncludedWarnings bool
}

// NewCableUnitLoadCalculator creates a calculator for the cable
func NewCableUnitLoadCalculator(cable *Cable) *CableUnitLoadCalculator {
	return &CableUnitLoadCalculator{
		DiameterCable:   cable.Diameter,
		WeightUnitCable: cable.WeightUnit,
	}
}

// UnitCableLoad returns the unit load of the weathercase. X is the
// transverse (wind) component, Y the vertical (weight + ice) component.
func (c *CableUnitLoadCalculator) UnitCableLoad(weathercase *WeatherLoadCase) (vector.Vector2d, error) {
	if err := c.check(weathercase); err != nil {
		return vector.Vector2d{}, err
	}

	diameterIced := c.DiameterCable + 2*weathercase.ThicknessIce

	// ice is an annulus around the bare cable
	areaIce := math.Pi / 4 * (diameterIced*diameterIced - c.DiameterCable*c.DiameterCable)

	return vector.Vector2d{
		X: weathercase.PressureWind * diameterIced,
		Y: c.WeightUnitCable + areaIce*weathercase.DensityIce,
	}, nil
}

// check collects every offending field into one InvalidInputError
func (c *CableUnitLoadCalculator) check(weathercase *WeatherLoadCase) error {
	var fields []string

	if c.DiameterCable <= 0 {
		fields = append(fields, "cable diameter")
	}
	if c.WeightUnitCable <= 0 {
		fields = append(fields, "cable unit weight")
	}
	if weathercase == nil {
		fields = append(fields, "weathercase")
	} else {
		messages := &validation.Messages{}
		if !weathercase.Validate(c.IsIncludedWarnings, messages) {
			for _, m := range messages.Items() {
				fields = append(fields, m.Description)
			}
		}
	}

	if len(fields) > 0 {
		return &validation.InvalidInputError{Object: "unit load input", Fields: fields}
	}
	return nil
}

// Validate checks the calculator inputs
func (c *CableUnitLoadCalculator) Validate(includeWarnings bool, messages *validation.Messages) bool {
	const title = "CABLE UNIT LOAD CALCULATOR"
	isValid := true

	if c.DiameterCable <= 0 {
		isValid = false
		messages.Add(title, "invalid diameter")
	}
	if c.WeightUnitCable <= 0 {
		isValid = false
		messages.Add(title, "invalid unit weight")
	}
	if includeWarnings {
		if 0.25 < c.DiameterCable {
			isValid = false
			messages.Add(title, "diameter exceeds 0.25 ft")
		}
		if 15 < c.WeightUnitCable {
			isValid = false
			messages.Add(title, "unit weight exceeds 15 lb/ft")
		}
	}

	return isValid
}
