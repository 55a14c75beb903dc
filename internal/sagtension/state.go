// Package sagtension holds the cable elongation model and the reloader that
// carries a line cable from its constraint condition to any weathercase.
package sagtension

import (
	"fmt"

	"github.com/alexiusacademia/gosag/internal/transmissionline"
)

// PolynomialType selects which stress-strain polynomial describes a state
type PolynomialType int

const (
	PolynomialLoadStrain PolynomialType = iota
	PolynomialCreep
)

func (p PolynomialType) String() string {
	switch p {
	case PolynomialLoadStrain:
		return "LoadStrain"
	case PolynomialCreep:
		return "Creep"
	}
	return fmt.Sprintf("PolynomialType(%d)", int(p))
}

// ComponentType addresses one component of the cable or the whole cable
type ComponentType int

const (
	ComponentCore ComponentType = iota
	ComponentShell
	ComponentCombined
)

func (c ComponentType) String() string {
	switch c {
	case ComponentCore:
		return "Core"
	case ComponentShell:
		return "Shell"
	case ComponentCombined:
		return "Combined"
	}
	return fmt.Sprintf("ComponentType(%d)", int(c))
}

// CableState is the temperature and polynomial the cable is evaluated at
type CableState struct {
	Temperature    float64 // deg F
	TypePolynomial PolynomialType
}

// CableStretchState is the state and total average tension that produced
// the permanent stretch. A zero Load means the cable is unstretched.
type CableStretchState struct {
	Temperature    float64
	TypePolynomial PolynomialType
	Load           float64 // lb
}

// IsStretched reports whether the stretch state carries any load
func (s CableStretchState) IsStretched() bool {
	return 0 < s.Load
}

// polynomialTypeFor returns the polynomial that governs a condition
func polynomialTypeFor(condition transmissionline.CableConditionType) PolynomialType {
	if condition == transmissionline.ConditionCreep {
		return PolynomialCreep
	}
	return PolynomialLoadStrain
}
