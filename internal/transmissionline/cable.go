package transmissionline

import "github.com/alexiusacademia/gosag/internal/validation"

// CableComponent holds the stress-strain data of one mechanical component
// of a composite cable. The polynomials are evaluated as
//
//	load = ScalePolynomialY * poly(strain / ScalePolynomialX)
//
// at the cable's component reference temperature, so a polynomial published
// as stress (psi) versus strain (%) uses ScalePolynomialX = 0.01 and
// ScalePolynomialY = area (in^2).
type CableComponent struct {
	CoefficientExpansionLinearThermal float64 // strain per deg F

	CoefficientsPolynomialCreep      []float64 // ascending order
	CoefficientsPolynomialLoadStrain []float64 // ascending order

	LoadLimitPolynomialCreep      float64 // lb, upper validity limit
	LoadLimitPolynomialLoadStrain float64 // lb, upper validity limit

	ModulusCompressionElasticArea float64 // lb per unit strain
	ModulusTensionElasticArea     float64 // lb per unit strain

	ScalePolynomialX float64
	ScalePolynomialY float64
}

// IsEnabled reports whether the component carries load at all. A
// homogeneous cable leaves the core polynomials empty.
func (c *CableComponent) IsEnabled() bool {
	return len(c.CoefficientsPolynomialLoadStrain) > 0
}

// Validate checks the component data
func (c *CableComponent) Validate(name string, includeWarnings bool, messages *validation.Messages) bool {
	title := "CABLE COMPONENT (" + name + ")"
	isValid := true

	if !c.IsEnabled() {
		return true
	}

	if c.CoefficientExpansionLinearThermal < 0 {
		isValid = false
		messages.Add(title, "invalid thermal expansion coefficient")
	}
	if len(c.CoefficientsPolynomialCreep) < 2 {
		isValid = false
		messages.Add(title, "creep polynomial needs at least two coefficients")
	}
	if len(c.CoefficientsPolynomialLoadStrain) < 2 {
		isValid = false
		messages.Add(title, "load-strain polynomial needs at least two coefficients")
	}
	if c.LoadLimitPolynomialCreep <= 0 {
		isValid = false
		messages.Add(title, "invalid creep polynomial load limit")
	}
	if c.LoadLimitPolynomialLoadStrain <= 0 {
		isValid = false
		messages.Add(title, "invalid load-strain polynomial load limit")
	}
	if c.ModulusCompressionElasticArea < 0 {
		isValid = false
		messages.Add(title, "invalid compression elastic area modulus")
	}
	if c.ModulusTensionElasticArea <= 0 {
		isValid = false
		messages.Add(title, "invalid tension elastic area modulus")
	}
	if c.ScalePolynomialX <= 0 || c.ScalePolynomialY <= 0 {
		isValid = false
		messages.Add(title, "invalid polynomial scale factors")
	}

	if includeWarnings {
		if 0.0005 < c.CoefficientExpansionLinearThermal {
			isValid = false
			messages.Add(title, "thermal expansion coefficient exceeds 0.0005 /F")
		}
		if c.ModulusCompressionElasticArea > c.ModulusTensionElasticArea {
			isValid = false
			messages.Add(title, "compression modulus exceeds tension modulus")
		}
	}

	return isValid
}

// Cable is the externally owned cable specification
type Cable struct {
	Name                            string
	Diameter                        float64 // ft
	WeightUnit                      float64 // lb/ft
	StrengthRated                   float64 // lb
	TemperaturePropertiesComponents float64 // polynomial reference temperature (deg F)

	ComponentCore  CableComponent
	ComponentShell CableComponent
}

// Validate checks the cable and both components
func (c *Cable) Validate(includeWarnings bool, messages *validation.Messages) bool {
	const title = "CABLE"
	isValid := true

	if c.Diameter <= 0 {
		isValid = false
		messages.Add(title, "invalid diameter")
	}
	if c.WeightUnit <= 0 {
		isValid = false
		messages.Add(title, "invalid unit weight")
	}
	if c.StrengthRated < 0 {
		isValid = false
		messages.Add(title, "invalid rated strength")
	}
	if !c.ComponentCore.IsEnabled() && !c.ComponentShell.IsEnabled() {
		isValid = false
		messages.Add(title, "no load carrying component")
	}

	if includeWarnings {
		if 0.25 < c.Diameter {
			isValid = false
			messages.Add(title, "diameter exceeds 0.25 ft")
		}
		if 15 < c.WeightUnit {
			isValid = false
			messages.Add(title, "unit weight exceeds 15 lb/ft")
		}
		if c.StrengthRated == 0 {
			isValid = false
			messages.Add(title, "rated strength is not set")
		}
	}

	if !c.ComponentCore.Validate("core", includeWarnings, messages) {
		isValid = false
	}
	if !c.ComponentShell.Validate("shell", includeWarnings, messages) {
		isValid = false
	}

	return isValid
}
