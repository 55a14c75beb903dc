package transmissionline

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gosag/internal/validation"
)

// CableConditionType identifies the permanent-stretch reference state of
// the cable
type CableConditionType int

const (
	// ConditionInitial has no permanent stretch
	ConditionInitial CableConditionType = iota
	// ConditionLoad is stretched by the peak mechanical load
	ConditionLoad
	// ConditionCreep is stretched by long-term creep at a reference case
	ConditionCreep
)

func (c CableConditionType) String() string {
	switch c {
	case ConditionInitial:
		return "Initial"
	case ConditionLoad:
		return "Load"
	case ConditionCreep:
		return "Creep"
	}
	return fmt.Sprintf("CableConditionType(%d)", int(c))
}

// ParseCableConditionType parses "initial", "load" or "creep" (any case)
func ParseCableConditionType(s string) (CableConditionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "initial":
		return ConditionInitial, nil
	case "load":
		return ConditionLoad, nil
	case "creep":
		return ConditionCreep, nil
	}
	return ConditionInitial, fmt.Errorf("unknown cable condition %q", s)
}

// Conditions lists every condition in reporting order
var Conditions = []CableConditionType{ConditionInitial, ConditionLoad, ConditionCreep}

// CableConstraint is the calibrated horizontal tension at a known
// weathercase and condition
type CableConstraint struct {
	CaseWeather *WeatherLoadCase
	Condition   CableConditionType
	Limit       float64 // horizontal tension (lb)
	Note        string
}

// Validate checks the constraint
func (c *CableConstraint) Validate(includeWarnings bool, messages *validation.Messages) bool {
	const title = "CABLE CONSTRAINT"
	isValid := true

	if c.Limit <= 0 {
		isValid = false
		messages.Add(title, "invalid limit")
	}
	if c.Condition < ConditionInitial || ConditionCreep < c.Condition {
		isValid = false
		messages.Add(title, "invalid condition")
	}
	if c.CaseWeather == nil {
		isValid = false
		messages.Add(title, "invalid weathercase")
	} else if !c.CaseWeather.Validate(includeWarnings, messages) {
		isValid = false
	}

	return isValid
}
