package units

import (
	"math"
	"testing"
)

func TestConvertAngle(t *testing.T) {
	rad := ConvertAngle(180, DegreesToRadians)
	if math.Abs(rad-Pi) > 1e-12 {
		t.Errorf("180 deg: expected %.10f, got %.10f", Pi, rad)
	}
	if deg := ConvertAngle(rad, RadiansToDegrees); math.Abs(deg-180) > 1e-9 {
		t.Errorf("pi rad: expected 180, got %.10f", deg)
	}
}

func TestConvertForce(t *testing.T) {
	lbs := ConvertForce(100, NewtonsToPounds)
	if Round(lbs, 1) != 22.5 {
		t.Errorf("100 N: expected 22.5 lb, got %.4f", lbs)
	}
	if n := ConvertForce(lbs, PoundsToNewtons); Round(n, 1) != 100 {
		t.Errorf("round trip: expected 100 N, got %.4f", n)
	}
}

func TestConvertLength(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		forward LengthConversionType
		back    LengthConversionType
		want    float64
		digits  int
	}{
		{"feet-inches", 2, FeetToInches, InchesToFeet, 24, 0},
		{"meters-feet", 10, MetersToFeet, FeetToMeters, 32.8, 1},
	}

	for _, tt := range tests {
		got := ConvertLength(tt.value, tt.forward)
		if Round(got, tt.digits) != tt.want {
			t.Errorf("%s: expected %.4f, got %.4f", tt.name, tt.want, got)
		}
		if back := ConvertLength(got, tt.back); math.Abs(back-tt.value) > 1e-9 {
			t.Errorf("%s round trip: expected %.4f, got %.10f", tt.name, tt.value, back)
		}
	}
}

func TestConvertStress(t *testing.T) {
	psf := ConvertStress(100, PascalToPsf)
	if Round(psf, 1) != 2.1 {
		t.Errorf("100 Pa: expected 2.1 psf, got %.4f", psf)
	}
	if pa := ConvertStress(psf, PsfToPascal); Round(pa, 0) != 100 {
		t.Errorf("round trip: expected 100 Pa, got %.4f", pa)
	}

	psf = ConvertStress(100, PsiToPsf)
	if Round(psf, 0) != 14400 {
		t.Errorf("100 psi: expected 14400 psf, got %.4f", psf)
	}
	if psi := ConvertStress(psf, PsfToPsi); Round(psi, 0) != 100 {
		t.Errorf("round trip: expected 100 psi, got %.4f", psi)
	}
}

func TestConvertTemperature(t *testing.T) {
	f := ConvertTemperature(20, CelsiusToFahrenheit)
	if Round(f, 0) != 68 {
		t.Errorf("20 C: expected 68 F, got %.4f", f)
	}
	if c := ConvertTemperature(f, FahrenheitToCelsius); math.Abs(c-20) > 1e-9 {
		t.Errorf("round trip: expected 20 C, got %.10f", c)
	}
}

func TestConvertWeightUnit(t *testing.T) {
	// 1.094 lb/ft is roughly 15.97 N/m
	metric := ConvertWeightUnit(1.094, false)
	if Round(metric, 2) != 15.97 {
		t.Errorf("1.094 lb/ft: expected 15.97 N/m, got %.4f", metric)
	}
	if back := ConvertWeightUnit(metric, true); math.Abs(back-1.094) > 1e-9 {
		t.Errorf("round trip: expected 1.094, got %.10f", back)
	}
}

func TestRound(t *testing.T) {
	if got := Round(1201.0416, 2); got != 1201.04 {
		t.Errorf("expected 1201.04, got %v", got)
	}
	if got := Round(5561.45, 0); got != 5561 {
		t.Errorf("expected 5561, got %v", got)
	}
}
