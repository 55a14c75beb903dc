package vector

import (
	"math"
	"testing"
)

func TestVector2d_MagnitudeAndAngle(t *testing.T) {
	v := Vector2d{X: 3, Y: 4}
	if v.Magnitude() != 5 {
		t.Errorf("expected magnitude 5, got %.10f", v.Magnitude())
	}
	if math.Abs(v.Angle()-math.Atan(4.0/3.0)) > 1e-12 {
		t.Errorf("unexpected angle %.10f", v.Angle())
	}
}

func TestVector2d_Rotate(t *testing.T) {
	v := Vector2d{X: 1, Y: 0}.Rotate(math.Pi / 2)
	if math.Abs(v.X) > 1e-12 || math.Abs(v.Y-1) > 1e-12 {
		t.Errorf("expected (0, 1), got (%.10f, %.10f)", v.X, v.Y)
	}
}

func TestVector3d_RotateX(t *testing.T) {
	v := Vector3d{X: 100, Y: 0, Z: 10}
	r := v.RotateX(-math.Pi / 2)

	// z rotates onto +y, x untouched
	if r.X != 100 || math.Abs(r.Y-10) > 1e-12 || math.Abs(r.Z) > 1e-12 {
		t.Errorf("expected (100, 10, 0), got (%.10f, %.10f, %.10f)", r.X, r.Y, r.Z)
	}
	if math.Abs(r.Magnitude()-v.Magnitude()) > 1e-9 {
		t.Errorf("rotation changed magnitude: %.10f vs %.10f", r.Magnitude(), v.Magnitude())
	}
}
