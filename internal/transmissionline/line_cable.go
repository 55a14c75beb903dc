package transmissionline

import (
	"math"

	"github.com/alexiusacademia/gosag/internal/validation"
	"github.com/alexiusacademia/gosag/internal/vector"
)

// LineCable is a cable strung between dead-ends over a line section,
// modeled with a single ruling span. The cable and weathercases are borrowed
// and must outlive any computation that uses the line cable.
type LineCable struct {
	Cable      *Cable
	Constraint CableConstraint

	// attachment spacing of the ruling span (x along line, y transverse,
	// z vertical)
	SpacingAttachmentsRulingSpan vector.Vector3d

	WeathercaseStretchCreep *WeatherLoadCase
	WeathercaseStretchLoad  *WeatherLoadCase
}

// WeathercaseStretch returns the stretch weathercase that defines the
// permanent stretch of the condition, or nil for the initial condition
func (l *LineCable) WeathercaseStretch(condition CableConditionType) *WeatherLoadCase {
	switch condition {
	case ConditionLoad:
		return l.WeathercaseStretchLoad
	case ConditionCreep:
		return l.WeathercaseStretchCreep
	}
	return nil
}

// CheckStretchReferences returns an InconsistentStateError when a stretched
// condition is requested without its stretch weathercase
func (l *LineCable) CheckStretchReferences(conditions ...CableConditionType) error {
	for _, condition := range conditions {
		if condition == ConditionInitial {
			continue
		}
		if l.WeathercaseStretch(condition) == nil {
			return &validation.InconsistentStateError{
				Reason: condition.String() + " stretch weathercase is not set",
			}
		}
	}
	return nil
}

// Validate checks the line cable, its cable, constraint and stretch cases
func (l *LineCable) Validate(includeWarnings bool, messages *validation.Messages) bool {
	const title = "LINE CABLE"
	isValid := true

	if l.Cable == nil {
		isValid = false
		messages.Add(title, "invalid cable")
	} else if !l.Cable.Validate(includeWarnings, messages) {
		isValid = false
	}

	if !l.Constraint.Validate(includeWarnings, messages) {
		isValid = false
	}

	if l.SpacingAttachmentsRulingSpan.X <= 0 {
		isValid = false
		messages.Add(title, "invalid ruling span horizontal spacing")
	}
	if includeWarnings {
		if 5000 < l.SpacingAttachmentsRulingSpan.X {
			isValid = false
			messages.Add(title, "ruling span horizontal spacing exceeds 5000 ft")
		}
		if 0.5*l.SpacingAttachmentsRulingSpan.X < math.Abs(l.SpacingAttachmentsRulingSpan.Z) {
			isValid = false
			messages.Add(title, "ruling span vertical spacing exceeds half of the horizontal spacing")
		}
	}

	if l.WeathercaseStretchCreep == nil {
		isValid = false
		messages.Add(title, "invalid creep stretch weathercase")
	} else if !l.WeathercaseStretchCreep.Validate(includeWarnings, messages) {
		isValid = false
	}
	if l.WeathercaseStretchLoad == nil {
		isValid = false
		messages.Add(title, "invalid load stretch weathercase")
	} else if !l.WeathercaseStretchLoad.Validate(includeWarnings, messages) {
		isValid = false
	}

	if err := l.CheckStretchReferences(l.Constraint.Condition); err != nil {
		isValid = false
		messages.Add(title, err.Error())
	}

	return isValid
}
