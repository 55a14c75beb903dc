package sagtension

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/alexiusacademia/gosag/internal/factory"
	"github.com/alexiusacademia/gosag/internal/solver"
	"github.com/alexiusacademia/gosag/internal/transmissionline"
	"github.com/alexiusacademia/gosag/internal/validation"
	"github.com/alexiusacademia/gosag/internal/vector"
)

const (
	initial = transmissionline.ConditionInitial
	loaded  = transmissionline.ConditionLoad
	creep   = transmissionline.ConditionCreep
)

// TestTensionHorizontalScenarios reloads the sample line cable from its
// 6000 lb initial constraint at 0-0-60. Expected values are the published
// calibration results, rounded to the pound. The sample Drake data is
// rebuilt from the SAG10 polynomials, which moves the hot and heavy cases
// by up to a few pounds, so those rows carry a wider tolerance.
func TestTensionHorizontalScenarios(t *testing.T) {
	tests := []struct {
		weathercase *transmissionline.WeatherLoadCase
		condition   transmissionline.CableConditionType
		expected    float64
		tolerance   float64
	}{
		{factory.BuildWeatherLoadCase("0-0-60", 0, 0, 60), initial, 6000, 0.5},
		{factory.BuildWeatherLoadCase("0-0-60", 0, 0, 60), loaded, 5561, 0.5},
		{factory.BuildWeatherLoadCase("0-0-60", 0, 0, 60), creep, 5582, 0.5},
		{factory.BuildWeatherLoadCase("0-0-212", 0, 0, 212), initial, 4701, 2},
		{factory.BuildWeatherLoadCase("0-0-212", 0, 0, 212), loaded, 4527, 2},
		{factory.BuildWeatherLoadCase("0-0-212", 0, 0, 212), creep, 4516, 2},
		{factory.BuildWeatherLoadCase("1-8-0", 1, 8, 0), initial, 17123, 4},
		{factory.BuildWeatherLoadCase("1-8-0", 1, 8, 0), loaded, 17123, 4},
		{factory.BuildWeatherLoadCase("1-8-0", 1, 8, 0), creep, 17123, 4},
	}

	lineCable := factory.BuildLineCable()
	for _, tt := range tests {
		reloader := NewLineCableReloader(lineCable, tt.weathercase, tt.condition)
		reloader.SetLogger(zaptest.NewLogger(t))

		got, err := reloader.TensionHorizontal()
		if err != nil {
			t.Fatalf("%s %s: %v", tt.weathercase.Description, tt.condition, err)
		}
		if math.Abs(got-tt.expected) > tt.tolerance {
			t.Errorf("%s %s: expected %.0f ± %.1f, got %.2f",
				tt.weathercase.Description, tt.condition, tt.expected, tt.tolerance, got)
		}
	}
}

// TestStretchStates checks the load and creep stretch points
func TestStretchStates(t *testing.T) {
	lineCable := factory.BuildLineCable()
	reloader := NewLineCableReloader(lineCable, lineCable.Constraint.CaseWeather, initial)

	stretchLoad, err := reloader.StretchStateLoad()
	if err != nil {
		t.Fatalf("load stretch: %v", err)
	}
	if stretchLoad.Temperature != 0 || stretchLoad.TypePolynomial != PolynomialLoadStrain {
		t.Errorf("load stretch state: expected 0 F LoadStrain, got %.1f F %s",
			stretchLoad.Temperature, stretchLoad.TypePolynomial)
	}
	if math.Abs(stretchLoad.Load-12179) > 0.5 {
		t.Errorf("load stretch: expected 12179, got %.2f", stretchLoad.Load)
	}

	stretchCreep, err := reloader.StretchStateCreep()
	if err != nil {
		t.Fatalf("creep stretch: %v", err)
	}
	if stretchCreep.Temperature != 60 || stretchCreep.TypePolynomial != PolynomialCreep {
		t.Errorf("creep stretch state: expected 60 F Creep, got %.1f F %s",
			stretchCreep.Temperature, stretchCreep.TypePolynomial)
	}
	if math.Abs(stretchCreep.Load-5595) > 0.5 {
		t.Errorf("creep stretch: expected 5595, got %.2f", stretchCreep.Load)
	}

	loadInitial, err := reloader.LoadStretch(initial)
	if err != nil {
		t.Fatalf("initial stretch: %v", err)
	}
	loadCreep, err := reloader.LoadStretch(creep)
	if err != nil {
		t.Fatalf("creep stretch: %v", err)
	}
	if loadInitial != 0 || loadCreep < loadInitial {
		t.Errorf("expected 0 == initial <= creep, got %.2f and %.2f", loadInitial, loadCreep)
	}
}

// TestStretchCreepSeverity checks a colder creep case stretches more
func TestStretchCreepSeverity(t *testing.T) {
	previous := 0.0
	for _, temperature := range []float64{120, 60, 30, 0} {
		lineCable := factory.BuildLineCable()
		lineCable.WeathercaseStretchCreep = factory.BuildWeatherLoadCase("creep", 0, 0, temperature)

		reloader := NewLineCableReloader(lineCable, lineCable.Constraint.CaseWeather, creep)
		stretch, err := reloader.StretchStateCreep()
		if err != nil {
			t.Fatalf("%.0f F: %v", temperature, err)
		}
		if stretch.Load < previous {
			t.Errorf("%.0f F: creep stretch %.2f decreased below %.2f", temperature, stretch.Load, previous)
		}
		previous = stretch.Load
	}
}

// TestTensionAverageComponent splits the reloaded tension at the constraint
func TestTensionAverageComponent(t *testing.T) {
	lineCable := factory.BuildLineCable()
	reloader := NewLineCableReloader(lineCable, factory.BuildWeatherLoadCase("0-0-60", 0, 0, 60), initial)

	tests := []struct {
		component ComponentType
		expected  float64
	}{
		{ComponentCore, 3174},
		{ComponentShell, 2838},
		{ComponentCombined, 6011.99},
	}

	for _, tt := range tests {
		got, err := reloader.TensionAverageComponent(tt.component)
		if err != nil {
			t.Fatalf("%s: %v", tt.component, err)
		}
		if math.Abs(got-tt.expected) > 0.5 {
			t.Errorf("%s: expected %.2f, got %.2f", tt.component, tt.expected, got)
		}
	}
}

// TestLengthUnloaded checks the zero tension lengths. The reloaded length
// at 212 F leaves the shell in compression on its unloading line, where the
// rebuilt Drake data runs 0.04 ft long of the calibration value.
func TestLengthUnloaded(t *testing.T) {
	lineCable := factory.BuildLineCable()
	reloader := NewLineCableReloader(lineCable, factory.BuildWeatherLoadCase("0-0-212", 0, 0, 212), loaded)

	constraint, err := reloader.LengthUnloadedConstraint()
	if err != nil {
		t.Fatalf("constraint: %v", err)
	}
	if math.Abs(constraint-1201.04) > 0.01 {
		t.Errorf("constraint: expected 1201.04, got %.4f", constraint)
	}

	reloaded, err := reloader.LengthUnloadedReloaded()
	if err != nil {
		t.Fatalf("reloaded: %v", err)
	}
	if math.Abs(reloaded-1202.26) > 0.05 {
		t.Errorf("reloaded: expected 1202.26, got %.4f", reloaded)
	}
	if reloaded <= constraint {
		t.Errorf("expected the hot stretched cable longer than at the constraint, got %.4f <= %.4f", reloaded, constraint)
	}
}

// TestSelfReference reloads at the constraint's own case and condition
func TestSelfReference(t *testing.T) {
	lineCable := factory.BuildLineCable()
	reloader := NewLineCableReloader(lineCable, lineCable.Constraint.CaseWeather, lineCable.Constraint.Condition)

	got, err := reloader.TensionHorizontal()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if math.Abs(got-lineCable.Constraint.Limit) > 1e-2 {
		t.Errorf("expected %.2f, got %.6f", lineCable.Constraint.Limit, got)
	}
}

// TestIdempotence solves twice with unchanged inputs
func TestIdempotence(t *testing.T) {
	lineCable := factory.BuildLineCable()
	reloader := NewLineCableReloader(lineCable, factory.BuildWeatherLoadCase("0.5-8-0", 0.5, 8, 0), creep)

	first, err := reloader.TensionHorizontal()
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := reloader.TensionHorizontal()
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first != second {
		t.Errorf("expected identical results, got %.9f and %.9f", first, second)
	}
}

// TestStretchedConstraint calibrates at a stretched condition and reloads
// to every condition at the constraint weathercase. The limits are the
// load and creep tensions of the 6000 lb initial constraint, so the
// published results round back to the same three tensions.
func TestStretchedConstraint(t *testing.T) {
	tests := []struct {
		condition transmissionline.CableConditionType
		limit     float64
		expected  map[transmissionline.CableConditionType]float64
	}{
		{loaded, 5561.5, map[transmissionline.CableConditionType]float64{initial: 6000, loaded: 5561, creep: 5582}},
		{creep, 5582.25, map[transmissionline.CableConditionType]float64{initial: 6000, loaded: 5562, creep: 5582}},
	}

	for _, tt := range tests {
		lineCable := factory.BuildLineCable()
		lineCable.Constraint.Condition = tt.condition
		lineCable.Constraint.Limit = tt.limit

		reloader := NewLineCableReloader(lineCable, factory.BuildWeatherLoadCase("0-0-60", 0, 0, 60), initial)
		for _, condition := range transmissionline.Conditions {
			reloader.SetConditionReloaded(condition)
			got, err := reloader.TensionHorizontal()
			if err != nil {
				t.Fatalf("%s constraint, %s: %v", tt.condition, condition, err)
			}
			if math.Abs(got-tt.expected[condition]) > 1 {
				t.Errorf("%s constraint, %s: expected %.0f, got %.3f",
					tt.condition, condition, tt.expected[condition], got)
			}
		}

		reloader.SetConditionReloaded(tt.condition)
		self, err := reloader.TensionHorizontal()
		if err != nil {
			t.Fatalf("%s self reference: %v", tt.condition, err)
		}
		if math.Abs(self-tt.limit) > 1e-2 {
			t.Errorf("%s self reference: expected %.2f, got %.4f", tt.condition, tt.limit, self)
		}
	}
}

// TestMonotonicity checks tension against temperature, wind and ice
func TestMonotonicity(t *testing.T) {
	lineCable := factory.BuildLineCable()

	solve := func(weathercase *transmissionline.WeatherLoadCase, condition transmissionline.CableConditionType) float64 {
		reloader := NewLineCableReloader(lineCable, weathercase, condition)
		tension, err := reloader.TensionHorizontal()
		if err != nil {
			t.Fatalf("%s %s: %v", weathercase.Description, condition, err)
		}
		return tension
	}

	for _, condition := range transmissionline.Conditions {
		previous := math.Inf(1)
		for _, temperature := range []float64{-20, 0, 60, 120, 212} {
			tension := solve(factory.BuildWeatherLoadCase("temperature", 0, 0, temperature), condition)
			if tension > previous {
				t.Errorf("%s: tension increased with temperature at %.0f F", condition, temperature)
			}
			previous = tension
		}

		previous = 0
		for _, wind := range []float64{0, 4, 9, 16} {
			tension := solve(factory.BuildWeatherLoadCase("wind", 0, wind, 0), condition)
			if tension < previous {
				t.Errorf("%s: tension decreased with wind at %.0f psf", condition, wind)
			}
			previous = tension
		}

		previous = 0
		for _, ice := range []float64{0, 0.25, 0.5, 1} {
			tension := solve(factory.BuildWeatherLoadCase("ice", ice, 0, 0), condition)
			if tension < previous {
				t.Errorf("%s: tension decreased with ice at %.2f in", condition, ice)
			}
			previous = tension
		}
	}
}

// TestMissingStretchWeathercase requires the creep case for creep
func TestMissingStretchWeathercase(t *testing.T) {
	lineCable := factory.BuildLineCable()
	lineCable.WeathercaseStretchCreep = nil

	reloader := NewLineCableReloader(lineCable, lineCable.Constraint.CaseWeather, creep)
	_, err := reloader.TensionHorizontal()

	var inconsistent *validation.InconsistentStateError
	if !errors.As(err, &inconsistent) {
		t.Fatalf("expected InconsistentStateError, got %v", err)
	}

	// the initial condition does not need it
	reloader.SetConditionReloaded(initial)
	if _, err := reloader.TensionHorizontal(); err != nil {
		t.Errorf("initial reload: %v", err)
	}

	var messages validation.Messages
	reloader.SetConditionReloaded(creep)
	if reloader.Validate(false, &messages) {
		t.Error("expected invalid reloader")
	}
}

// TestInvalidSpacing rejects a ruling span without positive horizontal
// spacing as bad input before any solve
func TestInvalidSpacing(t *testing.T) {
	tests := []struct {
		name    string
		spacing vector.Vector3d
	}{
		{"zero", vector.Vector3d{X: 0, Y: 0, Z: 100}},
		{"negative", vector.Vector3d{X: -1200, Y: 0, Z: 0}},
	}

	for _, tt := range tests {
		lineCable := factory.BuildLineCable()
		lineCable.SpacingAttachmentsRulingSpan = tt.spacing
		reloader := NewLineCableReloader(lineCable, factory.BuildWeatherLoadCase("1-8-0", 1, 8, 0), initial)

		tension := func() error { _, err := reloader.TensionHorizontal(); return err }
		stretch := func() error { _, err := reloader.StretchStateLoad(); return err }
		length := func() error { _, err := reloader.LengthUnloadedConstraint(); return err }
		operations := map[string]func() error{
			"TensionHorizontal":        tension,
			"StretchStateLoad":         stretch,
			"LengthUnloadedConstraint": length,
		}
		for name, operation := range operations {
			err := operation()

			var invalid *validation.InvalidInputError
			if !errors.As(err, &invalid) {
				t.Errorf("%s %s: expected InvalidInputError, got %v", tt.name, name, err)
				continue
			}
			var convergence *solver.ConvergenceError
			if errors.As(err, &convergence) {
				t.Errorf("%s %s: unexpected ConvergenceError", tt.name, name)
			}
		}
	}
}

// TestReloaderValidate accepts the sample line cable
func TestReloaderValidate(t *testing.T) {
	lineCable := factory.BuildLineCable()
	reloader := NewLineCableReloader(lineCable, factory.BuildWeatherLoadCase("1-8-0", 1, 8, 0), loaded)

	var messages validation.Messages
	if !reloader.Validate(false, &messages) {
		t.Errorf("expected valid reloader, got %v", messages.Items())
	}
	if got := reloader.StateReloaded(); got.Temperature != 0 || got.TypePolynomial != PolynomialLoadStrain {
		t.Errorf("reloaded state: expected 0 F LoadStrain, got %+v", got)
	}
}

// TestCatenaryReloaded checks the reloaded ruling span geometry
func TestCatenaryReloaded(t *testing.T) {
	lineCable := factory.BuildLineCable()
	reloader := NewLineCableReloader(lineCable, factory.BuildWeatherLoadCase("0.5-8-0", 0.5, 8, 0), initial)

	cat, err := reloader.CatenaryReloaded()
	if err != nil {
		t.Fatalf("catenary: %v", err)
	}
	if cat.SwingAngle() <= 0 {
		t.Errorf("wind should swing the span, got %.6f", cat.SwingAngle())
	}
	if cat.TensionMax() < cat.TensionAverage() || cat.TensionAverage() < cat.TensionHorizontal {
		t.Errorf("expected H <= average <= max, got %.2f %.2f %.2f",
			cat.TensionHorizontal, cat.TensionAverage(), cat.TensionMax())
	}
}

// TestSagTensionTable solves every row of the sample table
func TestSagTensionTable(t *testing.T) {
	table := NewSagTensionTable(factory.BuildLineCable(), factory.BuildWeathercasesTable())
	table.SetLogger(zaptest.NewLogger(t))

	rows, err := table.Rows()
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 18 {
		t.Fatalf("expected 18 rows, got %d", len(rows))
	}

	for _, row := range rows {
		if row.PercentStrength <= 0 || 100 < row.PercentStrength {
			t.Errorf("%s %s: percent strength %.2f out of range",
				row.Weathercase.Description, row.Condition, row.PercentStrength)
		}
		if math.Abs(row.TensionAverageCore+row.TensionAverageShell-row.TensionAverage) > 1e-6 {
			t.Errorf("%s %s: component tensions do not sum to the average",
				row.Weathercase.Description, row.Condition)
		}
		if row.Weathercase.Description == "0-0-60" && row.Condition == initial {
			if math.Abs(row.TensionHorizontal-6000) > 1e-2 {
				t.Errorf("0-0-60 initial: expected 6000, got %.4f", row.TensionHorizontal)
			}
		}
	}
}
