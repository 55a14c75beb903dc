// Package catenary models the shape of a cable hanging under a uniform load
// per unit length between two attachment points.
package catenary

import (
	"math"

	"github.com/alexiusacademia/gosag/internal/validation"
	"github.com/alexiusacademia/gosag/internal/vector"
)

// Beyond this ratio of catenary constant to span the curve is treated as a
// straight line
const straightLineRatio = 1e8

// Catenary2d is a catenary in its own vertical plane. The origin is the
// left attachment; the right attachment is at SpacingEndpoints (X > 0 is the
// horizontal distance, Y the elevation difference).
type Catenary2d struct {
	TensionHorizontal float64         // H (lb)
	WeightUnit        float64         // w, load per unit length (lb/ft)
	SpacingEndpoints  vector.Vector2d // ft
}

// NewCatenary2d creates a catenary
func NewCatenary2d(tensionHorizontal, weightUnit float64, spacing vector.Vector2d) *Catenary2d {
	return &Catenary2d{
		TensionHorizontal: tensionHorizontal,
		WeightUnit:        weightUnit,
		SpacingEndpoints:  spacing,
	}
}

// ConstantCatenary returns H/w
func (c *Catenary2d) ConstantCatenary() float64 {
	if c.WeightUnit <= 0 {
		return math.Inf(1)
	}
	return c.TensionHorizontal / c.WeightUnit
}

// IsStraight reports whether the load is too small to curve the cable
func (c *Catenary2d) IsStraight() bool {
	return c.ConstantCatenary() > straightLineRatio*math.Abs(c.SpacingEndpoints.X)
}

// LengthChord returns the straight-line distance between the attachments
func (c *Catenary2d) LengthChord() float64 {
	return c.SpacingEndpoints.Magnitude()
}

// endpoints returns the horizontal positions of both attachments measured
// from the catenary low point (vertex)
func (c *Catenary2d) endpoints() (xLeft, xRight float64) {
	a := c.ConstantCatenary()
	h := c.SpacingEndpoints.X
	v := c.SpacingEndpoints.Y

	mid := a * math.Asinh(v/(2*a*math.Sinh(h/(2*a))))
	return mid - h/2, mid + h/2
}

// Length returns the curve length between attachments
func (c *Catenary2d) Length() float64 {
	if c.IsStraight() {
		return c.LengthChord()
	}

	a := c.ConstantCatenary()
	h := c.SpacingEndpoints.X
	v := c.SpacingEndpoints.Y
	projected := 2 * a * math.Sinh(h/(2*a))
	return math.Sqrt(v*v + projected*projected)
}

// LengthSlack returns the curve length in excess of the chord
func (c *Catenary2d) LengthSlack() float64 {
	return c.Length() - c.LengthChord()
}

// Tension returns the tension magnitude at a horizontal position fraction
// (0 = left attachment, 1 = right attachment)
func (c *Catenary2d) Tension(fraction float64) float64 {
	if c.IsStraight() {
		return c.tensionStraight()
	}
	a := c.ConstantCatenary()
	xLeft, _ := c.endpoints()
	x := xLeft + fraction*c.SpacingEndpoints.X
	return c.TensionHorizontal * math.Cosh(x/a)
}

// TensionMax returns the largest tension, found at the higher attachment
func (c *Catenary2d) TensionMax() float64 {
	return math.Max(c.Tension(0), c.Tension(1))
}

// TensionAverage returns the tension averaged over the curve length, which
// is the tension that governs the cable's elastic elongation
func (c *Catenary2d) TensionAverage() float64 {
	if c.IsStraight() {
		return c.tensionStraight()
	}

	// integral of H*cosh^2(x/a) dx between attachments, divided by length
	a := c.ConstantCatenary()
	h := c.SpacingEndpoints.X
	xLeft, xRight := c.endpoints()
	integral := h/2 + a/2*math.Cosh((xLeft+xRight)/a)*math.Sinh(h/a)
	return c.TensionHorizontal * integral / c.Length()
}

func (c *Catenary2d) tensionStraight() float64 {
	return c.TensionHorizontal * c.LengthChord() / c.SpacingEndpoints.X
}

// Coordinate returns the curve point at a horizontal position fraction,
// relative to the left attachment
func (c *Catenary2d) Coordinate(fraction float64) vector.Vector2d {
	x := fraction * c.SpacingEndpoints.X
	if c.IsStraight() {
		return vector.Vector2d{X: x, Y: fraction * c.SpacingEndpoints.Y}
	}

	// cosh(p) - cosh(q) = 2 sinh((p+q)/2) sinh((p-q)/2) keeps precision
	// for flat curves
	a := c.ConstantCatenary()
	xLeft, _ := c.endpoints()
	p := (xLeft + x) / a
	q := xLeft / a
	return vector.Vector2d{
		X: x,
		Y: 2 * a * math.Sinh((p+q)/2) * math.Sinh((p-q)/2),
	}
}

// PositionFractionSagPoint returns the position fraction where the curve is
// parallel to the chord
func (c *Catenary2d) PositionFractionSagPoint() float64 {
	if c.IsStraight() {
		return 0.5
	}
	a := c.ConstantCatenary()
	xLeft, _ := c.endpoints()
	xSag := a * math.Asinh(c.SpacingEndpoints.Y/c.SpacingEndpoints.X)
	return (xSag - xLeft) / c.SpacingEndpoints.X
}

// SagAt returns the vertical distance from the chord down to the curve
func (c *Catenary2d) SagAt(fraction float64) float64 {
	chord := fraction * c.SpacingEndpoints.Y
	return chord - c.Coordinate(fraction).Y
}

// Sag returns the largest vertical distance between chord and curve
func (c *Catenary2d) Sag() float64 {
	return c.SagAt(c.PositionFractionSagPoint())
}

// Validate checks the catenary parameters
func (c *Catenary2d) Validate(includeWarnings bool, messages *validation.Messages) bool {
	const title = "CATENARY 2D"
	isValid := true

	if c.TensionHorizontal <= 0 {
		isValid = false
		messages.Add(title, "invalid horizontal tension")
	}
	if c.WeightUnit < 0 {
		isValid = false
		messages.Add(title, "invalid unit weight")
	}
	if c.SpacingEndpoints.X <= 0 {
		isValid = false
		messages.Add(title, "invalid horizontal endpoint spacing")
	}
	if includeWarnings && isValid && !c.IsStraight() {
		if math.IsInf(c.Length(), 0) {
			isValid = false
			messages.Add(title, "horizontal tension is too small for the span")
		}
	}

	return isValid
}
