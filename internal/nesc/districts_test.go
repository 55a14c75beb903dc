package nesc

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gosag/internal/factory"
	"github.com/alexiusacademia/gosag/internal/transmissionline"
)

func TestLookup(t *testing.T) {
	district, err := Lookup("Heavy")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if district.ThicknessIce != 0.5 || district.ConstantK != 0.30 {
		t.Errorf("unexpected heavy district: %+v", district)
	}

	if _, err := Lookup("extreme"); err == nil {
		t.Error("expected an error for an unknown district")
	}
}

// TestUnitLoadResultant_Heavy checks the heavy district on Drake
func TestUnitLoadResultant_Heavy(t *testing.T) {
	calc := transmissionline.NewCableUnitLoadCalculator(factory.BuildCable())
	district, _ := Lookup("heavy")

	got, err := district.UnitLoadResultant(calc)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// d = 1.108 in, 0.5 in ice: horizontal 4 * 2.108/12, vertical
	// 1.094 + 57 * pi/4 * (2.108^2 - 1.108^2)/144
	horizontal := 4 * 2.108 / 12
	vertical := 1.094 + 57*math.Pi/4*(2.108*2.108-1.108*1.108)/144
	expected := math.Hypot(horizontal, vertical) + 0.30

	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("expected %.10f, got %.10f", expected, got)
	}
}

func TestGoverningDistrict(t *testing.T) {
	calc := transmissionline.NewCableUnitLoadCalculator(factory.BuildCable())

	load, district, err := GoverningDistrict(calc, LoadingDistricts)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if district.ID != "heavy" {
		t.Errorf("expected heavy to govern, got %s (%.4f lb/ft)", district.ID, load)
	}
}

func TestWeatherLoadCase_Light(t *testing.T) {
	district, _ := Lookup("light")
	weathercase := district.WeatherLoadCase()

	if weathercase.ThicknessIce != 0 || weathercase.DensityIce != 0 {
		t.Errorf("light district should have no ice: %+v", weathercase)
	}
	if weathercase.PressureWind != 9 || weathercase.TemperatureCable != 30 {
		t.Errorf("unexpected light weathercase: %+v", weathercase)
	}
}
