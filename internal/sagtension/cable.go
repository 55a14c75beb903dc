package sagtension

import (
	"fmt"

	"github.com/alexiusacademia/gosag/internal/transmissionline"
	"github.com/alexiusacademia/gosag/internal/validation"
)

// CableElongationModel combines the core and shell models at a common
// strain. Components without polynomial data are left out.
type CableElongationModel struct {
	cable        *transmissionline.Cable
	state        CableState
	stateStretch CableStretchState

	core  *CableComponentElongationModel
	shell *CableComponentElongationModel
}

// NewCableElongationModel creates the cable model at a state. When the
// stretch state carries load, the component stretch points are found on
// the unstretched curve at the stretch temperature and polynomial.
func NewCableElongationModel(cable *transmissionline.Cable, state CableState, stateStretch CableStretchState) (*CableElongationModel, error) {
	if cable == nil {
		return nil, &validation.InvalidInputError{Object: "cable elongation model", Fields: []string{"cable"}}
	}

	var stretchCore, stretchShell *StretchPoint
	if stateStretch.IsStretched() {
		stateVirgin := CableState{
			Temperature:    stateStretch.Temperature,
			TypePolynomial: stateStretch.TypePolynomial,
		}
		virgin, err := newCableElongationModel(cable, stateVirgin, CableStretchState{}, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("stretch model: %w", err)
		}

		strain, err := virgin.Strain(ComponentCombined, stateStretch.Load)
		if err != nil {
			return nil, fmt.Errorf("stretch strain: %w", err)
		}
		if virgin.core != nil {
			stretchCore = &StretchPoint{
				Strain: virgin.core.StrainAdjusted(strain),
				Load:   virgin.core.Load(strain),
			}
		}
		if virgin.shell != nil {
			stretchShell = &StretchPoint{
				Strain: virgin.shell.StrainAdjusted(strain),
				Load:   virgin.shell.Load(strain),
			}
		}
	}

	return newCableElongationModel(cable, state, stateStretch, stretchCore, stretchShell)
}

func newCableElongationModel(
	cable *transmissionline.Cable,
	state CableState,
	stateStretch CableStretchState,
	stretchCore, stretchShell *StretchPoint,
) (*CableElongationModel, error) {
	model := &CableElongationModel{
		cable:        cable,
		state:        state,
		stateStretch: stateStretch,
	}

	var err error
	if cable.ComponentCore.IsEnabled() {
		model.core, err = NewCableComponentElongationModel(
			&cable.ComponentCore, cable.TemperaturePropertiesComponents, state, stretchCore)
		if err != nil {
			return nil, fmt.Errorf("core: %w", err)
		}
	}
	if cable.ComponentShell.IsEnabled() {
		model.shell, err = NewCableComponentElongationModel(
			&cable.ComponentShell, cable.TemperaturePropertiesComponents, state, stretchShell)
		if err != nil {
			return nil, fmt.Errorf("shell: %w", err)
		}
	}
	if model.core == nil && model.shell == nil {
		return nil, &validation.InvalidInputError{
			Object: "cable elongation model",
			Fields: []string{"core and shell polynomials"},
		}
	}

	return model, nil
}

// State returns the state the model is evaluated at
func (m *CableElongationModel) State() CableState {
	return m.state
}

// StateStretch returns the stretch state
func (m *CableElongationModel) StateStretch() CableStretchState {
	return m.stateStretch
}

// Component returns the model of a single component, nil when the
// component is disabled or combined is requested
func (m *CableElongationModel) Component(component ComponentType) *CableComponentElongationModel {
	switch component {
	case ComponentCore:
		return m.core
	case ComponentShell:
		return m.shell
	}
	return nil
}

// Load returns the load of a component, or the whole cable, at a strain
func (m *CableElongationModel) Load(component ComponentType, strain float64) float64 {
	if component != ComponentCombined {
		if model := m.Component(component); model != nil {
			return model.Load(strain)
		}
		return 0
	}

	load := 0.0
	if m.core != nil {
		load += m.core.Load(strain)
	}
	if m.shell != nil {
		load += m.shell.Load(strain)
	}
	return load
}

// Slope returns d(load)/d(strain) of a component, or the whole cable
func (m *CableElongationModel) Slope(component ComponentType, strain float64) float64 {
	if component != ComponentCombined {
		if model := m.Component(component); model != nil {
			return model.Slope(strain)
		}
		return 0
	}

	slope := 0.0
	if m.core != nil {
		slope += m.core.Slope(strain)
	}
	if m.shell != nil {
		slope += m.shell.Slope(strain)
	}
	return slope
}

// Strain returns the strain at which a component, or the whole cable,
// carries the load
func (m *CableElongationModel) Strain(component ComponentType, load float64) (float64, error) {
	if component == ComponentCombined {
		return strainAtLoad(func(strain float64) float64 {
			return m.Load(ComponentCombined, strain)
		}, load, m.guessStrain(), "cable strain")
	}

	model := m.Component(component)
	if model == nil {
		return 0, &validation.InvalidInputError{
			Object: "cable elongation model",
			Fields: []string{component.String() + " component is disabled"},
		}
	}
	return model.Strain(load)
}

func (m *CableElongationModel) guessStrain() float64 {
	if m.shell != nil {
		return m.shell.StrainThermal()
	}
	return m.core.StrainThermal()
}

// LoadShare returns the load a component carries when the whole cable
// carries loadCable
func (m *CableElongationModel) LoadShare(component ComponentType, loadCable float64) (float64, error) {
	strain, err := m.Strain(ComponentCombined, loadCable)
	if err != nil {
		return 0, err
	}
	return m.Load(component, strain), nil
}

// ComponentStrain returns the thermally adjusted strain of a component when
// the whole cable carries loadCable. For the combined cable the total
// strain is returned.
func (m *CableElongationModel) ComponentStrain(component ComponentType, loadCable float64) (float64, error) {
	strain, err := m.Strain(ComponentCombined, loadCable)
	if err != nil {
		return 0, err
	}
	if component == ComponentCombined {
		return strain, nil
	}

	model := m.Component(component)
	if model == nil {
		return 0, &validation.InvalidInputError{
			Object: "cable elongation model",
			Fields: []string{component.String() + " component is disabled"},
		}
	}
	return model.StrainAdjusted(strain), nil
}

// StrainThermal returns the free thermal strain of a component. For the
// combined cable it is the strain of the unloaded cable, where the
// components balance each other.
func (m *CableElongationModel) StrainThermal(component ComponentType) (float64, error) {
	if component == ComponentCombined {
		return m.Strain(ComponentCombined, 0)
	}

	model := m.Component(component)
	if model == nil {
		return 0, nil
	}
	return model.StrainThermal(), nil
}

// Validate checks that the combined curve is usable over the working range
// of the cable
func (m *CableElongationModel) Validate(includeWarnings bool, messages *validation.Messages) bool {
	const title = "CABLE ELONGATION MODEL"
	isValid := true

	strainZero, err := m.Strain(ComponentCombined, 0)
	if err != nil {
		messages.Add(title, "unable to solve the unloaded strain")
		return false
	}

	if includeWarnings && 0 < m.cable.StrengthRated {
		strainRated, err := m.Strain(ComponentCombined, m.cable.StrengthRated)
		if err != nil {
			isValid = false
			messages.Add(title, "unable to solve the strain at rated strength")
		} else {
			const points = 20
			step := (strainRated - strainZero) / points
			for i := 0; i <= points; i++ {
				if m.Slope(ComponentCombined, strainZero+float64(i)*step) < 0 {
					isValid = false
					messages.Addf(title, "load decreases with strain near %.5f", strainZero+float64(i)*step)
					break
				}
			}
		}
	}

	return isValid
}
