package solver

import (
	"errors"
	"math"
	"testing"
)

// TestBrent_Sqrt2 tests a smooth root inside the bracket
func TestBrent_Sqrt2(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }

	root, err := Brent(f, 0, 2, Options{ToleranceX: 1e-12})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if math.Abs(root-math.Sqrt2) > 1e-10 {
		t.Errorf("expected %.12f, got %.12f", math.Sqrt2, root)
	}
}

// TestBrent_Decreasing tests a monotonically decreasing function
func TestBrent_Decreasing(t *testing.T) {
	f := func(x float64) float64 { return 1000/x - 4 }

	root, err := Brent(f, 1, 1000, Options{ToleranceX: 1e-6})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if math.Abs(root-250) > 1e-5 {
		t.Errorf("expected 250, got %.10f", root)
	}
}

// TestBrent_ResidualTolerance tests early exit on the residual tolerance
func TestBrent_ResidualTolerance(t *testing.T) {
	calls := 0
	f := func(x float64) float64 {
		calls++
		return math.Exp(x) - 10
	}

	root, err := Brent(f, 0, 5, Options{ToleranceY: 1e-3})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if math.Abs(math.Exp(root)-10) > 1e-3 {
		t.Errorf("residual too large at %.10f", root)
	}
	if calls > DefaultMaxIterations {
		t.Errorf("too many evaluations: %d", calls)
	}
}

func TestBrent_NotBracketed(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }

	if _, err := Brent(f, -1, 1, Options{}); err == nil {
		t.Fatal("expected an error for an unbracketed root")
	}
}

func TestBrent_ConvergenceError(t *testing.T) {
	f := func(x float64) float64 { return math.Cbrt(x - 0.3) }

	_, err := Brent(f, -10, 10, Options{
		Operation:     "cube root",
		ToleranceX:    1e-15,
		MaxIterations: 2,
	})

	var convErr *ConvergenceError
	if !errors.As(err, &convErr) {
		t.Fatalf("expected ConvergenceError, got %v", err)
	}
	if convErr.Operation != "cube root" || convErr.Iterations != 2 {
		t.Errorf("unexpected error fields: %+v", convErr)
	}
}

func TestBracket(t *testing.T) {
	f := func(x float64) float64 { return x - 50 }

	a, b, err := Bracket(f, 0, 1, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !(math.Min(a, b) <= 50 && math.Max(a, b) >= 50) {
		t.Errorf("bracket [%g, %g] does not contain 50", a, b)
	}
}

func TestBracketPositive(t *testing.T) {
	f := func(x float64) float64 { return 1e4/x - 1 }

	lo, hi, err := BracketPositive(f, 1, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if lo <= 0 || lo > 1e4 || hi < 1e4 {
		t.Errorf("bracket [%g, %g] does not contain 1e4", lo, hi)
	}

	if _, _, err := BracketPositive(f, -1, 0); err == nil {
		t.Error("expected an error for a negative start")
	}
}

func TestBracket_Fails(t *testing.T) {
	f := func(x float64) float64 { return 1 }

	_, _, err := Bracket(f, 0, 1, 5)
	var convErr *ConvergenceError
	if !errors.As(err, &convErr) {
		t.Fatalf("expected ConvergenceError, got %v", err)
	}
}
