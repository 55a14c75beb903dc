// Package vector provides the small fixed-size vectors used for loads and
// attachment spacing.
package vector

import "math"

// Vector2d is a two dimensional vector
type Vector2d struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Magnitude returns the length of the vector
func (v Vector2d) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the angle from the x axis in radians
func (v Vector2d) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate returns the vector rotated counter-clockwise by the angle (radians)
func (v Vector2d) Rotate(angle float64) Vector2d {
	sin, cos := math.Sincos(angle)
	return Vector2d{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Vector3d is a three dimensional vector.
// For span geometry X runs along the line, Y is transverse and Z is vertical.
type Vector3d struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Magnitude returns the length of the vector
func (v Vector3d) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// RotateX returns the vector rotated about the x axis by the angle (radians),
// positive from +y toward +z
func (v Vector3d) RotateX(angle float64) Vector3d {
	sin, cos := math.Sincos(angle)
	return Vector3d{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}
