package catenary

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gosag/internal/validation"
	"github.com/alexiusacademia/gosag/internal/vector"
	"gonum.org/v1/gonum/floats"
)

// TestCatenary2dLevelSpan checks a level span against closed form values
func TestCatenary2dLevelSpan(t *testing.T) {
	c := NewCatenary2d(6000, 1.094, vector.Vector2d{X: 1200, Y: 0})

	tests := []struct {
		name string
		got  float64
		want float64
		tol  float64
	}{
		{"constant", c.ConstantCatenary(), 5484.4607, 1e-3},
		{"length", c.Length(), 1202.3951, 1e-3},
		{"slack", c.LengthSlack(), 2.3951, 1e-3},
		{"sag", c.Sag(), 32.8527, 1e-3},
		{"tension max", c.TensionMax(), 6035.9409, 1e-3},
		{"tension average", c.TensionAverage(), 6011.9946, 1e-3},
		{"tension at low point", c.Tension(0.5), 6000, 1e-9},
		{"sag point", c.PositionFractionSagPoint(), 0.5, 1e-12},
	}

	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > tt.tol {
			t.Errorf("%s: expected %.6f, got %.6f", tt.name, tt.want, tt.got)
		}
	}
}

// TestCatenary2dParabolicApproximation compares a flat span against the parabola
func TestCatenary2dParabolicApproximation(t *testing.T) {
	h, w, span := 6000.0, 1.094, 1200.0
	c := NewCatenary2d(h, w, vector.Vector2d{X: span})

	sagParabola := w * span * span / (8 * h)
	lengthParabola := span + 8*sagParabola*sagParabola/(3*span)

	if math.Abs(c.Sag()-sagParabola)/sagParabola > 0.002 {
		t.Errorf("sag: expected about %.4f, got %.4f", sagParabola, c.Sag())
	}
	if math.Abs(c.Length()-lengthParabola) > 0.01 {
		t.Errorf("length: expected about %.4f, got %.4f", lengthParabola, c.Length())
	}
}

// TestCatenary2dInclinedSpan checks end tensions differ by w times the rise
func TestCatenary2dInclinedSpan(t *testing.T) {
	c := NewCatenary2d(6000, 1.094, vector.Vector2d{X: 1000, Y: 100})

	lower := c.Tension(0)
	upper := c.Tension(1)
	if math.Abs((upper-lower)-1.094*100) > 1e-6 {
		t.Errorf("end tension difference: expected %.6f, got %.6f", 109.4, upper-lower)
	}
	if c.TensionMax() != upper {
		t.Errorf("max tension should be at the upper attachment")
	}
	if math.Abs(c.Length()-1006.3665) > 1e-3 {
		t.Errorf("length: expected 1006.3665, got %.4f", c.Length())
	}
	if c.Length() <= c.LengthChord() {
		t.Errorf("curve length %.4f should exceed chord %.4f", c.Length(), c.LengthChord())
	}

	end := c.Coordinate(1)
	if math.Abs(end.X-1000) > 1e-9 || math.Abs(end.Y-100) > 1e-6 {
		t.Errorf("end coordinate: expected (1000, 100), got (%.6f, %.6f)", end.X, end.Y)
	}
	if c.Sag() <= 0 {
		t.Errorf("sag should be positive, got %.6f", c.Sag())
	}
}

// TestCatenary2dMirrorSymmetry swaps the attachment order
func TestCatenary2dMirrorSymmetry(t *testing.T) {
	up := NewCatenary2d(5000, 1.5, vector.Vector2d{X: 800, Y: 60})
	down := NewCatenary2d(5000, 1.5, vector.Vector2d{X: 800, Y: -60})

	if math.Abs(up.Length()-down.Length()) > 1e-9 {
		t.Errorf("length differs: %.9f vs %.9f", up.Length(), down.Length())
	}
	if math.Abs(up.Sag()-down.Sag()) > 1e-9 {
		t.Errorf("sag differs: %.9f vs %.9f", up.Sag(), down.Sag())
	}
	if math.Abs(up.Tension(0.2)-down.Tension(0.8)) > 1e-9 {
		t.Errorf("mirrored tension differs: %.9f vs %.9f", up.Tension(0.2), down.Tension(0.8))
	}
}

// TestCatenary2dStraightLine uses a negligible load
func TestCatenary2dStraightLine(t *testing.T) {
	c := NewCatenary2d(1000, 1e-12, vector.Vector2d{X: 300, Y: 400})

	if !c.IsStraight() {
		t.Fatal("expected straight-line limit")
	}
	if math.Abs(c.Length()-500) > 1e-9 {
		t.Errorf("length: expected 500, got %.9f", c.Length())
	}
	if c.Sag() != 0 {
		t.Errorf("sag: expected 0, got %.9f", c.Sag())
	}
	if math.Abs(c.TensionAverage()-1000*500.0/300.0) > 1e-9 {
		t.Errorf("tension average: expected %.6f, got %.6f", 1000*500.0/300.0, c.TensionAverage())
	}
}

// TestCatenary2dValidate collects invalid inputs
func TestCatenary2dValidate(t *testing.T) {
	var messages validation.Messages
	c := NewCatenary2d(0, -1, vector.Vector2d{X: 0})
	if c.Validate(true, &messages) {
		t.Error("expected invalid catenary")
	}
	if messages.Len() != 3 {
		t.Errorf("expected 3 messages, got %d", messages.Len())
	}

	ok := NewCatenary2d(6000, 1.094, vector.Vector2d{X: 1200})
	if !ok.Validate(true, nil) {
		t.Error("expected valid catenary")
	}
}

// TestCatenary3dVerticalLoadMatches2d checks a still-air span reduces to 2D
func TestCatenary3dVerticalLoadMatches2d(t *testing.T) {
	c3 := NewCatenary3d(6000, vector.Vector2d{X: 0, Y: 1.094}, vector.Vector3d{X: 1200})
	c2 := NewCatenary2d(6000, 1.094, vector.Vector2d{X: 1200})

	if c3.SwingAngle() != 0 {
		t.Errorf("swing angle: expected 0, got %.6f", c3.SwingAngle())
	}
	if math.Abs(c3.Length()-c2.Length()) > 1e-9 {
		t.Errorf("length: expected %.9f, got %.9f", c2.Length(), c3.Length())
	}
	if math.Abs(c3.TensionAverage()-c2.TensionAverage()) > 1e-9 {
		t.Errorf("tension average: expected %.9f, got %.9f", c2.TensionAverage(), c3.TensionAverage())
	}
}

// TestCatenary3dSwungPlane loads a level span with wind and ice
func TestCatenary3dSwungPlane(t *testing.T) {
	load := vector.Vector2d{X: 0.6, Y: 0.8}
	c3 := NewCatenary3d(6000, load, vector.Vector3d{X: 1200})
	c2 := NewCatenary2d(6000, 1.0, vector.Vector2d{X: 1200})

	if math.Abs(c3.SwingAngle()-math.Atan2(0.6, 0.8)) > 1e-12 {
		t.Errorf("swing angle: expected %.9f, got %.9f", math.Atan2(0.6, 0.8), c3.SwingAngle())
	}
	if math.Abs(c3.Length()-c2.Length()) > 1e-9 {
		t.Errorf("length: expected %.9f, got %.9f", c2.Length(), c3.Length())
	}

	// midspan displaces along the load resultant
	sag := c2.Sag()
	got := c3.Coordinate(0.5)
	want := []float64{600, 0.6 * sag, -0.8 * sag}
	if !floats.EqualApprox([]float64{got.X, got.Y, got.Z}, want, 1e-9) {
		t.Errorf("midspan coordinate: expected %v, got %v", want, got)
	}

	end := c3.Coordinate(1)
	if !floats.EqualApprox([]float64{end.X, end.Y, end.Z}, []float64{1200, 0, 0}, 1e-6) {
		t.Errorf("end coordinate: expected (1200, 0, 0), got %v", end)
	}
}

// TestCatenary3dInclinedEndpoints checks the far attachment is reproduced
func TestCatenary3dInclinedEndpoints(t *testing.T) {
	spacing := vector.Vector3d{X: 1000, Y: 20, Z: 80}
	c3 := NewCatenary3d(5000, vector.Vector2d{X: 0.9, Y: 2.1}, spacing)

	end := c3.Coordinate(1)
	if !floats.EqualApprox([]float64{end.X, end.Y, end.Z}, []float64{spacing.X, spacing.Y, spacing.Z}, 1e-6) {
		t.Errorf("end coordinate: expected %v, got %v", spacing, end)
	}
	if c3.Length() <= spacing.Magnitude() {
		t.Errorf("length %.6f should exceed chord %.6f", c3.Length(), spacing.Magnitude())
	}
	if !c3.Validate(true, nil) {
		t.Error("expected valid catenary")
	}
}
