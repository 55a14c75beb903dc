// Package validation holds the diagnostic message sink and the input error
// kinds shared by the sag-tension models.
package validation

import (
	"fmt"
	"strings"
)

// Message is a single validation diagnostic
type Message struct {
	Title       string // object being validated, e.g. "WEATHER LOAD CASE"
	Description string // what is wrong with it
}

func (m Message) String() string {
	return m.Title + " - " + m.Description
}

// Messages is an ordered collection of diagnostics.
// A nil *Messages is a valid sink that discards everything.
type Messages struct {
	items []Message
}

// Add appends a diagnostic
func (m *Messages) Add(title, description string) {
	if m == nil {
		return
	}
	m.items = append(m.items, Message{Title: title, Description: description})
}

// Addf appends a formatted diagnostic
func (m *Messages) Addf(title, format string, args ...any) {
	m.Add(title, fmt.Sprintf(format, args...))
}

// Items returns the collected diagnostics
func (m *Messages) Items() []Message {
	if m == nil {
		return nil
	}
	return m.items
}

// Len returns the number of diagnostics
func (m *Messages) Len() int {
	if m == nil {
		return 0
	}
	return len(m.items)
}

// InvalidInputError reports physically inconsistent or out-of-range input
type InvalidInputError struct {
	Object string
	Fields []string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Object, strings.Join(e.Fields, ", "))
}

// InconsistentStateError reports inputs that are valid on their own but do
// not fit together, such as a stretched constraint without a stretch case
type InconsistentStateError struct {
	Reason string
}

func (e *InconsistentStateError) Error() string {
	return "inconsistent state: " + e.Reason
}
