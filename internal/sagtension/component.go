package sagtension

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosag/internal/solver"
	"github.com/alexiusacademia/gosag/internal/transmissionline"
	"github.com/alexiusacademia/gosag/internal/validation"
)

// polynomialCurve is the unstretched load-strain curve of one component for
// one polynomial, in terms of the thermally adjusted strain
type polynomialCurve struct {
	polynomial         Polynomial
	scaleX             float64
	scaleY             float64
	modulusCompression float64

	xZero  float64 // polynomial x carrying zero load
	xLimit float64 // polynomial x at the load limit
}

func newPolynomialCurve(component *transmissionline.CableComponent, typePolynomial PolynomialType) (*polynomialCurve, error) {
	curve := &polynomialCurve{
		scaleX:             component.ScalePolynomialX,
		scaleY:             component.ScalePolynomialY,
		modulusCompression: component.ModulusCompressionElasticArea,
	}

	var limit float64
	switch typePolynomial {
	case PolynomialCreep:
		curve.polynomial = Polynomial{Coefficients: component.CoefficientsPolynomialCreep}
		limit = component.LoadLimitPolynomialCreep
	default:
		curve.polynomial = Polynomial{Coefficients: component.CoefficientsPolynomialLoadStrain}
		limit = component.LoadLimitPolynomialLoadStrain
	}
	if curve.scaleX <= 0 || curve.scaleY <= 0 {
		return nil, &validation.InvalidInputError{
			Object: "cable component",
			Fields: []string{"polynomial scale factors"},
		}
	}

	xZero, err := curve.polynomial.X(0, 0)
	if err != nil {
		return nil, fmt.Errorf("%s polynomial zero load strain: %w", typePolynomial, err)
	}
	curve.xZero = xZero

	xLimit, err := curve.crossing(limit/curve.scaleY, xZero)
	if err != nil {
		return nil, fmt.Errorf("%s polynomial load limit strain: %w", typePolynomial, err)
	}
	curve.xLimit = xLimit

	return curve, nil
}

// crossing scans upward from x for the first point where the polynomial
// reaches y
func (c *polynomialCurve) crossing(y, x float64) (float64, error) {
	const (
		step     = 0.01
		maxSteps = 10000
	)

	f := func(x float64) float64 { return c.polynomial.Y(x) - y }
	if f(x) >= 0 {
		return x, nil
	}
	for i := 0; i < maxSteps; i++ {
		next := x + step
		if f(next) >= 0 {
			return solver.Brent(f, x, next, solver.Options{
				Operation:  "polynomial crossing",
				ToleranceX: 1e-12,
			})
		}
		x = next
	}
	return 0, &solver.ConvergenceError{
		Operation:  "polynomial crossing",
		Iterations: maxSteps,
		Residual:   f(x),
	}
}

// Load returns the load at an adjusted strain
func (c *polynomialCurve) Load(strain float64) float64 {
	x := strain / c.scaleX
	switch {
	case x < c.xZero:
		return c.modulusCompression * (strain - c.xZero*c.scaleX)
	case c.xLimit < x:
		limit := c.polynomial.Y(c.xLimit)
		slope := c.polynomial.Slope(c.xLimit)
		return c.scaleY * (limit + slope*(x-c.xLimit))
	}
	return c.scaleY * c.polynomial.Y(x)
}

// Slope returns d(load)/d(strain) at an adjusted strain
func (c *polynomialCurve) Slope(strain float64) float64 {
	x := strain / c.scaleX
	switch {
	case x < c.xZero:
		return c.modulusCompression
	case c.xLimit < x:
		x = c.xLimit
	}
	return c.scaleY / c.scaleX * c.polynomial.Slope(x)
}

// StretchPoint is the adjusted strain and load a component reached when the
// cable was stretched
type StretchPoint struct {
	Strain float64
	Load   float64
}

// CableComponentElongationModel is the load-strain behavior of one cable
// component at one state. Strains passed in and out are total strains; the
// thermal part is removed internally.
type CableComponentElongationModel struct {
	component            *transmissionline.CableComponent
	temperatureReference float64
	state                CableState
	stretch              *StretchPoint

	curve    *polynomialCurve // polynomial of the state
	envelope *polynomialCurve // load-strain polynomial, bounds the stretched curve
}

// NewCableComponentElongationModel creates a component model. A nil
// stretch point gives the unstretched curve.
func NewCableComponentElongationModel(
	component *transmissionline.CableComponent,
	temperatureReference float64,
	state CableState,
	stretch *StretchPoint,
) (*CableComponentElongationModel, error) {
	curve, err := newPolynomialCurve(component, state.TypePolynomial)
	if err != nil {
		return nil, err
	}

	envelope := curve
	if state.TypePolynomial != PolynomialLoadStrain {
		envelope, err = newPolynomialCurve(component, PolynomialLoadStrain)
		if err != nil {
			return nil, err
		}
	}

	return &CableComponentElongationModel{
		component:            component,
		temperatureReference: temperatureReference,
		state:                state,
		stretch:              stretch,
		curve:                curve,
		envelope:             envelope,
	}, nil
}

// State returns the state the model is evaluated at
func (m *CableComponentElongationModel) State() CableState {
	return m.state
}

// Stretch returns the stretch point, or nil when unstretched
func (m *CableComponentElongationModel) Stretch() *StretchPoint {
	return m.stretch
}

// StrainThermal returns the free thermal strain relative to the polynomial
// reference temperature
func (m *CableComponentElongationModel) StrainThermal() float64 {
	return m.component.CoefficientExpansionLinearThermal * (m.state.Temperature - m.temperatureReference)
}

// StrainAdjusted removes the thermal strain from a total strain
func (m *CableComponentElongationModel) StrainAdjusted(strain float64) float64 {
	return strain - m.StrainThermal()
}

// Load returns the component load at a total strain
func (m *CableComponentElongationModel) Load(strain float64) float64 {
	adjusted := m.StrainAdjusted(strain)
	if m.stretch == nil {
		return m.curve.Load(adjusted)
	}

	line := m.unloadLine(adjusted)
	return math.Min(line, m.envelope.Load(adjusted))
}

// unloadLine is the elastic line through the stretch point, flattening to
// the compression modulus once the component goes slack
func (m *CableComponentElongationModel) unloadLine(adjusted float64) float64 {
	modulus := m.component.ModulusTensionElasticArea
	line := m.stretch.Load + modulus*(adjusted-m.stretch.Strain)
	if line < 0 {
		strainZero := m.stretch.Strain - m.stretch.Load/modulus
		line = m.component.ModulusCompressionElasticArea * (adjusted - strainZero)
	}
	return line
}

// Slope returns d(load)/d(strain) at a total strain
func (m *CableComponentElongationModel) Slope(strain float64) float64 {
	adjusted := m.StrainAdjusted(strain)
	if m.stretch == nil {
		return m.curve.Slope(adjusted)
	}
	if m.envelope.Load(adjusted) < m.unloadLine(adjusted) {
		return m.envelope.Slope(adjusted)
	}
	if m.unloadLine(adjusted) < 0 {
		return m.component.ModulusCompressionElasticArea
	}
	return m.component.ModulusTensionElasticArea
}

// Strain returns the total strain carrying the load
func (m *CableComponentElongationModel) Strain(load float64) (float64, error) {
	return strainAtLoad(m.Load, load, m.StrainThermal(), "component strain")
}

// strainAtLoad inverts an increasing load-strain function
func strainAtLoad(loadAt func(float64) float64, load, guess float64, operation string) (float64, error) {
	f := func(strain float64) float64 { return loadAt(strain) - load }

	lo, hi, err := solver.Bracket(f, guess-0.001, guess+0.002, 0)
	if err != nil {
		return 0, fmt.Errorf("%s at %.3f lb: %w", operation, load, err)
	}
	strain, err := solver.Brent(f, lo, hi, solver.Options{
		Operation:  operation,
		ToleranceX: 1e-12,
	})
	if err != nil {
		return 0, fmt.Errorf("%s at %.3f lb: %w", operation, load, err)
	}
	return strain, nil
}
