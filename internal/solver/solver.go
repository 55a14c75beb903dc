// Package solver holds the one-dimensional root finders used by the
// elongation model and the reloader.
package solver

import (
	"fmt"
	"math"
)

const (
	// DefaultMaxIterations bounds every search in this package
	DefaultMaxIterations = 100

	epsilon = 2.220446049250313e-16
)

// ConvergenceError reports a search that did not meet its tolerance within
// the iteration bound. The partial result is never returned.
type ConvergenceError struct {
	Operation  string
	Iterations int
	Residual   float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s did not converge after %d iterations (residual %.6g)",
		e.Operation, e.Iterations, e.Residual)
}

// Func is a scalar function of one variable
type Func func(x float64) float64

// Options controls a root search
type Options struct {
	Operation     string  // name used in errors
	ToleranceX    float64 // absolute tolerance on the root
	ToleranceY    float64 // absolute tolerance on the residual, 0 disables
	MaxIterations int
}

func (o Options) withDefaults() Options {
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Operation == "" {
		o.Operation = "root search"
	}
	return o
}

// Brent finds a root of f inside [a, b] using Brent's method.
// f(a) and f(b) must have opposite signs.
func Brent(f Func, a, b float64, opts Options) (float64, error) {
	opts = opts.withDefaults()

	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if (fa > 0) == (fb > 0) {
		return 0, fmt.Errorf("%s: root is not bracketed by [%g, %g] (f = %g, %g)",
			opts.Operation, a, b, fa, fb)
	}

	c, fc := b, fb
	var d, e float64

	for iter := 0; iter < opts.MaxIterations; iter++ {
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol := 2*epsilon*math.Abs(b) + 0.5*opts.ToleranceX
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol || fb == 0 || math.Abs(fb) <= opts.ToleranceY {
			return b, nil
		}

		if math.Abs(e) >= tol && math.Abs(fa) > math.Abs(fb) {
			// inverse quadratic interpolation, or secant when only two points
			var p, q float64
			s := fb / fa
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)

			if 2*p < math.Min(3*xm*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else {
			b += math.Copysign(tol, xm)
		}
		fb = f(b)
	}

	return 0, &ConvergenceError{
		Operation:  opts.Operation,
		Iterations: opts.MaxIterations,
		Residual:   fb,
	}
}

// Bracket widens [a, b] geometrically until f changes sign
func Bracket(f Func, a, b float64, maxIterations int) (float64, float64, error) {
	if a == b {
		return 0, 0, fmt.Errorf("bracket: empty initial interval at %g", a)
	}
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	const grow = 1.6
	fa, fb := f(a), f(b)
	for iter := 0; iter < maxIterations; iter++ {
		if (fa > 0) != (fb > 0) || fa == 0 || fb == 0 {
			return a, b, nil
		}
		if math.Abs(fa) < math.Abs(fb) {
			a += grow * (a - b)
			fa = f(a)
		} else {
			b += grow * (b - a)
			fb = f(b)
		}
	}

	return 0, 0, &ConvergenceError{
		Operation:  "bracket",
		Iterations: maxIterations,
		Residual:   math.Min(math.Abs(fa), math.Abs(fb)),
	}
}

// BracketPositive searches the positive half-line around x0 for a sign
// change, halving the lower bound and doubling the upper bound each step
func BracketPositive(f Func, x0 float64, maxIterations int) (float64, float64, error) {
	if x0 <= 0 {
		return 0, 0, fmt.Errorf("bracket: starting point %g must be positive", x0)
	}
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	lo, hi := x0/2, x0*2
	flo, fhi := f(lo), f(hi)
	for iter := 0; iter < maxIterations; iter++ {
		if (flo > 0) != (fhi > 0) || flo == 0 || fhi == 0 {
			return lo, hi, nil
		}
		lo /= 2
		hi *= 2
		flo, fhi = f(lo), f(hi)
	}

	return 0, 0, &ConvergenceError{
		Operation:  "positive bracket",
		Iterations: maxIterations,
		Residual:   math.Min(math.Abs(flo), math.Abs(fhi)),
	}
}
