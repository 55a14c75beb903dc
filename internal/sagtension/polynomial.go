package sagtension

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosag/internal/solver"
)

// Polynomial is a polynomial with coefficients in ascending order
type Polynomial struct {
	Coefficients []float64
}

// Y evaluates the polynomial (Horner's rule)
func (p Polynomial) Y(x float64) float64 {
	y := 0.0
	for i := len(p.Coefficients) - 1; 0 <= i; i-- {
		y = y*x + p.Coefficients[i]
	}
	return y
}

// Slope evaluates the first derivative
func (p Polynomial) Slope(x float64) float64 {
	slope := 0.0
	for i := len(p.Coefficients) - 1; 1 <= i; i-- {
		slope = slope*x + float64(i)*p.Coefficients[i]
	}
	return slope
}

// X returns the x where the polynomial equals y, searching outward from
// the guess
func (p Polynomial) X(y, guess float64) (float64, error) {
	if len(p.Coefficients) < 2 {
		return 0, fmt.Errorf("polynomial inverse: degree must be at least one")
	}

	f := func(x float64) float64 { return p.Y(x) - y }

	step := 0.1
	if guess != 0 {
		step = 0.1 * math.Abs(guess)
	}
	lo, hi, err := solver.Bracket(f, guess-step, guess+step, 0)
	if err != nil {
		return 0, fmt.Errorf("polynomial inverse at %g: %w", y, err)
	}

	return solver.Brent(f, lo, hi, solver.Options{
		Operation:  "polynomial inverse",
		ToleranceX: 1e-12,
	})
}
