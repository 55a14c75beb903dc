// Package units converts between the internal unit system (feet, pounds,
// degrees Fahrenheit) and the units engineers usually quote.
package units

import "math"

// Conversion factors
const (
	Pi = math.Pi

	InchesPerFoot             = 12.0
	FeetPerMeter              = 3.280839895
	PoundsPerNewton           = 0.2248089431
	PsfPerPascal              = 0.0208854342
	SquareInchesPerSquareFoot = 144.0
)

// LengthConversionType selects a length conversion
type LengthConversionType int

const (
	FeetToInches LengthConversionType = iota
	InchesToFeet
	FeetToMeters
	MetersToFeet
)

// ConvertLength converts a length value
func ConvertLength(value float64, t LengthConversionType) float64 {
	switch t {
	case FeetToInches:
		return value * InchesPerFoot
	case InchesToFeet:
		return value / InchesPerFoot
	case FeetToMeters:
		return value / FeetPerMeter
	case MetersToFeet:
		return value * FeetPerMeter
	}
	return value
}

// ForceConversionType selects a force conversion
type ForceConversionType int

const (
	NewtonsToPounds ForceConversionType = iota
	PoundsToNewtons
)

// ConvertForce converts a force value
func ConvertForce(value float64, t ForceConversionType) float64 {
	switch t {
	case NewtonsToPounds:
		return value * PoundsPerNewton
	case PoundsToNewtons:
		return value / PoundsPerNewton
	}
	return value
}

// StressConversionType selects a stress (pressure) conversion
type StressConversionType int

const (
	PascalToPsf StressConversionType = iota
	PsfToPascal
	PsiToPsf
	PsfToPsi
)

// ConvertStress converts a stress or pressure value
func ConvertStress(value float64, t StressConversionType) float64 {
	switch t {
	case PascalToPsf:
		return value * PsfPerPascal
	case PsfToPascal:
		return value / PsfPerPascal
	case PsiToPsf:
		return value * SquareInchesPerSquareFoot
	case PsfToPsi:
		return value / SquareInchesPerSquareFoot
	}
	return value
}

// TemperatureConversionType selects a temperature conversion
type TemperatureConversionType int

const (
	CelsiusToFahrenheit TemperatureConversionType = iota
	FahrenheitToCelsius
)

// ConvertTemperature converts a temperature value
func ConvertTemperature(value float64, t TemperatureConversionType) float64 {
	switch t {
	case CelsiusToFahrenheit:
		return value*9/5 + 32
	case FahrenheitToCelsius:
		return (value - 32) * 5 / 9
	}
	return value
}

// AngleConversionType selects an angle conversion
type AngleConversionType int

const (
	DegreesToRadians AngleConversionType = iota
	RadiansToDegrees
)

// ConvertAngle converts an angle value
func ConvertAngle(value float64, t AngleConversionType) float64 {
	switch t {
	case DegreesToRadians:
		return value * Pi / 180
	case RadiansToDegrees:
		return value * 180 / Pi
	}
	return value
}

// ConvertWeightUnit converts between N/m and lb/ft
func ConvertWeightUnit(value float64, metricToImperial bool) float64 {
	if metricToImperial {
		return value * PoundsPerNewton / FeetPerMeter
	}
	return value / PoundsPerNewton * FeetPerMeter
}

// Round rounds a value to the given number of decimal places
func Round(value float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))
	return math.Round(value*scale) / scale
}
