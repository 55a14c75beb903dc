package sagtension

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/alexiusacademia/gosag/internal/catenary"
	"github.com/alexiusacademia/gosag/internal/solver"
	"github.com/alexiusacademia/gosag/internal/transmissionline"
	"github.com/alexiusacademia/gosag/internal/validation"
	"github.com/alexiusacademia/gosag/internal/vector"
)

const (
	// horizontal tension tolerance of the reloaded solve (lb)
	toleranceTension = 1e-3

	// reference length tolerance of the stretched-constraint iteration (ft)
	toleranceLengthReference = 1e-8
)

// LineCableReloader carries a line cable from its constraint to a target
// weathercase and condition. The line cable and weathercase are borrowed.
// Nothing is cached: every accessor solves from the current inputs.
type LineCableReloader struct {
	lineCable           *transmissionline.LineCable
	weathercaseReloaded *transmissionline.WeatherLoadCase
	conditionReloaded   transmissionline.CableConditionType

	logger *zap.Logger
}

// NewLineCableReloader creates a reloader
func NewLineCableReloader(
	lineCable *transmissionline.LineCable,
	weathercase *transmissionline.WeatherLoadCase,
	condition transmissionline.CableConditionType,
) *LineCableReloader {
	return &LineCableReloader{
		lineCable:           lineCable,
		weathercaseReloaded: weathercase,
		conditionReloaded:   condition,
		logger:              zap.NewNop(),
	}
}

func (r *LineCableReloader) LineCable() *transmissionline.LineCable {
	return r.lineCable
}

func (r *LineCableReloader) SetLineCable(lineCable *transmissionline.LineCable) {
	r.lineCable = lineCable
}

func (r *LineCableReloader) WeathercaseReloaded() *transmissionline.WeatherLoadCase {
	return r.weathercaseReloaded
}

func (r *LineCableReloader) SetWeathercaseReloaded(weathercase *transmissionline.WeatherLoadCase) {
	r.weathercaseReloaded = weathercase
}

func (r *LineCableReloader) ConditionReloaded() transmissionline.CableConditionType {
	return r.conditionReloaded
}

func (r *LineCableReloader) SetConditionReloaded(condition transmissionline.CableConditionType) {
	r.conditionReloaded = condition
}

// SetLogger sets the logger used to trace the solve. A nil logger disables
// logging.
func (r *LineCableReloader) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r.logger = logger
}

// StateReloaded returns the target temperature and the polynomial of the
// target condition
func (r *LineCableReloader) StateReloaded() CableState {
	state := CableState{TypePolynomial: polynomialTypeFor(r.conditionReloaded)}
	if r.weathercaseReloaded != nil {
		state.Temperature = r.weathercaseReloaded.TemperatureCable
	}
	return state
}

// StretchStateLoad returns the stretch produced by the load-stretch
// weathercase
func (r *LineCableReloader) StretchStateLoad() (CableStretchState, error) {
	return r.stretchStateOf(transmissionline.ConditionLoad)
}

// StretchStateCreep returns the stretch produced by creep at the
// creep-stretch weathercase
func (r *LineCableReloader) StretchStateCreep() (CableStretchState, error) {
	return r.stretchStateOf(transmissionline.ConditionCreep)
}

// LoadStretch returns the stretch load of a condition, zero for initial
func (r *LineCableReloader) LoadStretch(condition transmissionline.CableConditionType) (float64, error) {
	stretch, err := r.stretchStateOf(condition)
	if err != nil {
		return 0, err
	}
	return stretch.Load, nil
}

func (r *LineCableReloader) stretchStateOf(condition transmissionline.CableConditionType) (CableStretchState, error) {
	if err := r.check(condition); err != nil {
		return CableStretchState{}, err
	}
	lengthReference, err := r.lengthReference()
	if err != nil {
		return CableStretchState{}, err
	}
	return r.stretchState(condition, lengthReference)
}

// TensionHorizontal solves the horizontal tension at the target weathercase
// and condition
func (r *LineCableReloader) TensionHorizontal() (float64, error) {
	if err := r.check(r.conditionReloaded); err != nil {
		return 0, err
	}

	lengthReference, err := r.lengthReference()
	if err != nil {
		return 0, err
	}
	stretch, err := r.stretchState(r.conditionReloaded, lengthReference)
	if err != nil {
		return 0, err
	}

	tension, err := r.solveTensionHorizontal(lengthReference, r.weathercaseReloaded, r.StateReloaded(), stretch)
	if err != nil {
		return 0, fmt.Errorf("reloaded tension at %s %s: %w",
			r.weathercaseReloaded.Description, r.conditionReloaded, err)
	}

	r.logger.Debug("reloaded",
		zap.String("weathercase", r.weathercaseReloaded.Description),
		zap.Stringer("condition", r.conditionReloaded),
		zap.Float64("tension_horizontal", tension))
	return tension, nil
}

// CatenaryReloaded returns the ruling span catenary at the target
func (r *LineCableReloader) CatenaryReloaded() (*catenary.Catenary3d, error) {
	tension, err := r.TensionHorizontal()
	if err != nil {
		return nil, err
	}
	return r.catenary(tension, r.weathercaseReloaded)
}

// TensionAverageComponent returns the average tension carried by a
// component, or by the whole cable, at the target
func (r *LineCableReloader) TensionAverageComponent(component ComponentType) (float64, error) {
	cat, err := r.CatenaryReloaded()
	if err != nil {
		return 0, err
	}
	tensionAverage := cat.TensionAverage()
	if component == ComponentCombined {
		return tensionAverage, nil
	}

	model, err := r.modelReloaded()
	if err != nil {
		return 0, err
	}
	return model.LoadShare(component, tensionAverage)
}

// LengthUnloadedConstraint returns the length of the ruling span cable at
// the constraint state with all tension removed
func (r *LineCableReloader) LengthUnloadedConstraint() (float64, error) {
	constraint := r.lineCable.Constraint
	if err := r.check(constraint.Condition); err != nil {
		return 0, err
	}
	lengthReference, err := r.lengthReference()
	if err != nil {
		return 0, err
	}

	stretch, err := r.stretchState(constraint.Condition, lengthReference)
	if err != nil {
		return 0, err
	}
	state := CableState{
		Temperature:    constraint.CaseWeather.TemperatureCable,
		TypePolynomial: polynomialTypeFor(constraint.Condition),
	}
	return r.lengthUnloaded(lengthReference, state, stretch)
}

// LengthUnloadedReloaded returns the length of the ruling span cable at the
// target state with all tension removed
func (r *LineCableReloader) LengthUnloadedReloaded() (float64, error) {
	if err := r.check(r.conditionReloaded); err != nil {
		return 0, err
	}
	lengthReference, err := r.lengthReference()
	if err != nil {
		return 0, err
	}

	stretch, err := r.stretchState(r.conditionReloaded, lengthReference)
	if err != nil {
		return 0, err
	}
	return r.lengthUnloaded(lengthReference, r.StateReloaded(), stretch)
}

// ModelReloaded returns the elongation model at the target state and
// condition
func (r *LineCableReloader) ModelReloaded() (*CableElongationModel, error) {
	if err := r.check(r.conditionReloaded); err != nil {
		return nil, err
	}
	return r.modelReloaded()
}

func (r *LineCableReloader) modelReloaded() (*CableElongationModel, error) {
	lengthReference, err := r.lengthReference()
	if err != nil {
		return nil, err
	}
	stretch, err := r.stretchState(r.conditionReloaded, lengthReference)
	if err != nil {
		return nil, err
	}
	return NewCableElongationModel(r.lineCable.Cable, r.StateReloaded(), stretch)
}

// Validate checks the inputs and attempts a solve, reporting failures as
// messages
func (r *LineCableReloader) Validate(includeWarnings bool, messages *validation.Messages) bool {
	const title = "LINE CABLE RELOADER"
	isValid := true

	if r.lineCable == nil {
		messages.Add(title, "invalid line cable")
		return false
	}
	if !r.lineCable.Validate(includeWarnings, messages) {
		isValid = false
	}

	if r.weathercaseReloaded == nil {
		isValid = false
		messages.Add(title, "invalid reloaded weathercase")
	} else if !r.weathercaseReloaded.Validate(includeWarnings, messages) {
		isValid = false
	}

	if err := r.lineCable.CheckStretchReferences(r.conditionReloaded); err != nil {
		isValid = false
		messages.Add(title, err.Error())
	}

	if !isValid {
		return false
	}

	model, err := NewCableElongationModel(r.lineCable.Cable, r.StateReloaded(), CableStretchState{})
	if err != nil {
		messages.Addf(title, "invalid elongation model: %v", err)
		return false
	}
	if !model.Validate(includeWarnings, messages) {
		isValid = false
	}

	if _, err := r.TensionHorizontal(); err != nil {
		isValid = false
		messages.Addf(title, "unable to solve for reloaded tension: %v", err)
	}

	return isValid
}

// check confirms the references needed for the constraint and the
// condition are in place
func (r *LineCableReloader) check(condition transmissionline.CableConditionType) error {
	if r.lineCable == nil || r.lineCable.Cable == nil {
		return &validation.InvalidInputError{Object: "line cable reloader", Fields: []string{"line cable"}}
	}
	if r.lineCable.Constraint.CaseWeather == nil {
		return &validation.InvalidInputError{Object: "line cable reloader", Fields: []string{"constraint weathercase"}}
	}
	if r.weathercaseReloaded == nil {
		return &validation.InvalidInputError{Object: "line cable reloader", Fields: []string{"reloaded weathercase"}}
	}
	if r.lineCable.Constraint.Limit <= 0 {
		return &validation.InvalidInputError{Object: "line cable reloader", Fields: []string{"constraint limit"}}
	}
	if r.lineCable.SpacingAttachmentsRulingSpan.X <= 0 {
		return &validation.InvalidInputError{Object: "line cable reloader", Fields: []string{"ruling span horizontal spacing"}}
	}
	return r.lineCable.CheckStretchReferences(r.lineCable.Constraint.Condition, condition)
}

// unitLoad returns the cable unit load of a weathercase
func (r *LineCableReloader) unitLoad(weathercase *transmissionline.WeatherLoadCase) (vector.Vector2d, error) {
	calculator := transmissionline.NewCableUnitLoadCalculator(r.lineCable.Cable)
	return calculator.UnitCableLoad(weathercase)
}

// catenary returns the ruling span catenary at a horizontal tension
func (r *LineCableReloader) catenary(tension float64, weathercase *transmissionline.WeatherLoadCase) (*catenary.Catenary3d, error) {
	load, err := r.unitLoad(weathercase)
	if err != nil {
		return nil, err
	}
	return catenary.NewCatenary3d(tension, load, r.lineCable.SpacingAttachmentsRulingSpan), nil
}

// lengthReference returns the cable length at zero strain and the
// polynomial reference temperature. A stretched constraint depends on its
// own stretch, so the length is iterated to a fixed point.
func (r *LineCableReloader) lengthReference() (float64, error) {
	constraint := r.lineCable.Constraint
	cat, err := r.catenary(constraint.Limit, constraint.CaseWeather)
	if err != nil {
		return 0, fmt.Errorf("constraint catenary: %w", err)
	}
	length := cat.Length()
	tensionAverage := cat.TensionAverage()

	state := CableState{
		Temperature:    constraint.CaseWeather.TemperatureCable,
		TypePolynomial: polynomialTypeFor(constraint.Condition),
	}

	lengthAt := func(stretch CableStretchState) (float64, error) {
		model, err := NewCableElongationModel(r.lineCable.Cable, state, stretch)
		if err != nil {
			return 0, err
		}
		strain, err := model.Strain(ComponentCombined, tensionAverage)
		if err != nil {
			return 0, err
		}
		return length / (1 + strain), nil
	}

	lengthReference, err := lengthAt(CableStretchState{})
	if err != nil {
		return 0, fmt.Errorf("reference length: %w", err)
	}
	if constraint.Condition == transmissionline.ConditionInitial {
		r.logger.Debug("reference length", zap.Float64("length", lengthReference))
		return lengthReference, nil
	}

	residual := math.Inf(1)
	for iter := 0; iter < solver.DefaultMaxIterations; iter++ {
		stretch, err := r.stretchState(constraint.Condition, lengthReference)
		if err != nil {
			return 0, err
		}
		next, err := lengthAt(stretch)
		if err != nil {
			return 0, fmt.Errorf("reference length: %w", err)
		}

		residual = next - lengthReference
		lengthReference = next
		r.logger.Debug("reference length iteration",
			zap.Int("iteration", iter),
			zap.Float64("length", lengthReference),
			zap.Float64("stretch_load", stretch.Load))
		if math.Abs(residual) < toleranceLengthReference {
			return lengthReference, nil
		}
	}

	return 0, &solver.ConvergenceError{
		Operation:  "stretched constraint reference length",
		Iterations: solver.DefaultMaxIterations,
		Residual:   residual,
	}
}

// stretchState solves the unstretched cable at the stretch weathercase of a
// condition and returns the average tension it reaches there
func (r *LineCableReloader) stretchState(condition transmissionline.CableConditionType, lengthReference float64) (CableStretchState, error) {
	if condition == transmissionline.ConditionInitial {
		return CableStretchState{}, nil
	}

	weathercase := r.lineCable.WeathercaseStretch(condition)
	state := CableState{
		Temperature:    weathercase.TemperatureCable,
		TypePolynomial: polynomialTypeFor(condition),
	}

	tension, err := r.solveTensionHorizontal(lengthReference, weathercase, state, CableStretchState{})
	if err != nil {
		return CableStretchState{}, fmt.Errorf("%s stretch at %s: %w", condition, weathercase.Description, err)
	}
	cat, err := r.catenary(tension, weathercase)
	if err != nil {
		return CableStretchState{}, err
	}

	stretch := CableStretchState{
		Temperature:    state.Temperature,
		TypePolynomial: state.TypePolynomial,
		Load:           cat.TensionAverage(),
	}
	r.logger.Debug("stretch state",
		zap.Stringer("condition", condition),
		zap.Float64("temperature", stretch.Temperature),
		zap.Stringer("polynomial", stretch.TypePolynomial),
		zap.Float64("load", stretch.Load))
	return stretch, nil
}

// solveTensionHorizontal finds the horizontal tension where the catenary
// length matches the reference length elongated by the average tension
func (r *LineCableReloader) solveTensionHorizontal(
	lengthReference float64,
	weathercase *transmissionline.WeatherLoadCase,
	state CableState,
	stretch CableStretchState,
) (float64, error) {
	load, err := r.unitLoad(weathercase)
	if err != nil {
		return 0, err
	}
	model, err := NewCableElongationModel(r.lineCable.Cable, state, stretch)
	if err != nil {
		return 0, err
	}

	// length difference decreases as tension increases
	var errEval error
	difference := func(tension float64) float64 {
		cat := catenary.NewCatenary3d(tension, load, r.lineCable.SpacingAttachmentsRulingSpan)
		strain, err := model.Strain(ComponentCombined, cat.TensionAverage())
		if err != nil {
			if errEval == nil {
				errEval = err
			}
			return math.NaN()
		}
		return cat.Length() - lengthReference*(1+strain)
	}

	lo, hi, err := solver.BracketPositive(difference, r.lineCable.Constraint.Limit, 0)
	if errEval != nil {
		return 0, errEval
	}
	if err != nil {
		return 0, err
	}

	tension, err := solver.Brent(difference, lo, hi, solver.Options{
		Operation:  "horizontal tension",
		ToleranceX: toleranceTension,
	})
	if errEval != nil {
		return 0, errEval
	}
	return tension, err
}

// lengthUnloaded returns the reference length elongated by the unloaded
// strain of a state
func (r *LineCableReloader) lengthUnloaded(lengthReference float64, state CableState, stretch CableStretchState) (float64, error) {
	model, err := NewCableElongationModel(r.lineCable.Cable, state, stretch)
	if err != nil {
		return 0, err
	}
	strain, err := model.Strain(ComponentCombined, 0)
	if err != nil {
		return 0, err
	}
	return lengthReference * (1 + strain), nil
}
