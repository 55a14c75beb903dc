package catenary

import (
	"math"

	"github.com/alexiusacademia/gosag/internal/validation"
	"github.com/alexiusacademia/gosag/internal/vector"
)

// Catenary3d is a catenary whose attachments may be offset in any direction
// and whose load may have a transverse (wind) part. The cable hangs in the
// plane containing the chord and the load resultant, swung away from
// vertical by the swing angle.
type Catenary3d struct {
	TensionHorizontal float64
	WeightUnit        vector.Vector2d // X transverse, Y vertical (lb/ft)
	SpacingEndpoints  vector.Vector3d // X along line, Y transverse, Z vertical (ft)
}

// NewCatenary3d creates a catenary
func NewCatenary3d(tensionHorizontal float64, weightUnit vector.Vector2d, spacing vector.Vector3d) *Catenary3d {
	return &Catenary3d{
		TensionHorizontal: tensionHorizontal,
		WeightUnit:        weightUnit,
		SpacingEndpoints:  spacing,
	}
}

// SwingAngle returns the angle of the load resultant from vertical (radians)
func (c *Catenary3d) SwingAngle() float64 {
	return math.Atan2(c.WeightUnit.X, c.WeightUnit.Y)
}

// spacingRotated returns the spacing in the swung frame, where the load
// points along -z
func (c *Catenary3d) spacingRotated() vector.Vector3d {
	return c.SpacingEndpoints.RotateX(-c.SwingAngle())
}

// Catenary2d returns the equivalent catenary in the plane of the chord and
// the load resultant
func (c *Catenary3d) Catenary2d() *Catenary2d {
	s := c.spacingRotated()
	spacing := vector.Vector2d{
		X: math.Hypot(s.X, s.Y),
		Y: s.Z,
	}
	return NewCatenary2d(c.TensionHorizontal, c.WeightUnit.Magnitude(), spacing)
}

// ConstantCatenary returns H/w for the load resultant
func (c *Catenary3d) ConstantCatenary() float64 {
	return c.Catenary2d().ConstantCatenary()
}

func (c *Catenary3d) Length() float64 {
	return c.Catenary2d().Length()
}

func (c *Catenary3d) LengthSlack() float64 {
	return c.Catenary2d().LengthSlack()
}

func (c *Catenary3d) Sag() float64 {
	return c.Catenary2d().Sag()
}

func (c *Catenary3d) Tension(fraction float64) float64 {
	return c.Catenary2d().Tension(fraction)
}

func (c *Catenary3d) TensionAverage() float64 {
	return c.Catenary2d().TensionAverage()
}

func (c *Catenary3d) TensionMax() float64 {
	return c.Catenary2d().TensionMax()
}

// Coordinate returns the curve point at a position fraction in the
// original (unswung) frame, relative to the first attachment
func (c *Catenary3d) Coordinate(fraction float64) vector.Vector3d {
	s := c.spacingRotated()
	plane := c.Catenary2d()
	point := plane.Coordinate(fraction)

	// horizontal direction of the chord in the swung frame
	var ux, uy float64
	if h := plane.SpacingEndpoints.X; h > 0 {
		ux = s.X / h
		uy = s.Y / h
	}

	swung := vector.Vector3d{
		X: point.X * ux,
		Y: point.X * uy,
		Z: point.Y,
	}
	return swung.RotateX(c.SwingAngle())
}

// Validate checks the catenary parameters
func (c *Catenary3d) Validate(includeWarnings bool, messages *validation.Messages) bool {
	const title = "CATENARY 3D"
	isValid := true

	if c.TensionHorizontal <= 0 {
		isValid = false
		messages.Add(title, "invalid horizontal tension")
	}
	if c.WeightUnit.Y < 0 {
		isValid = false
		messages.Add(title, "invalid vertical unit weight")
	}
	if c.SpacingEndpoints.X <= 0 {
		isValid = false
		messages.Add(title, "invalid horizontal endpoint spacing")
	}
	if !isValid {
		return false
	}

	return c.Catenary2d().Validate(includeWarnings, messages)
}
