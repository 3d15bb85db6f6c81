package board

import "slices"

const SelectPlaceholder = "-- Select an activity --"

// Selector is the activity dropdown. Option values are unique by exact match.
type Selector struct {
	Placeholder string

	options []string
}

func NewSelector() *Selector {
	return &Selector{Placeholder: SelectPlaceholder}
}

// Ensure adds an option for title unless one exists. It reports whether an
// option was added.
func (s *Selector) Ensure(title string) bool {
	if s == nil || slices.Contains(s.options, title) {
		return false
	}
	s.options = append(s.options, title)
	return true
}

// Reset drops every option except the placeholder.
func (s *Selector) Reset() {
	if s == nil {
		return
	}
	s.options = nil
}

func (s *Selector) Options() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.options)
}

type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// MessageArea holds the status line. Each Show starts a new generation so
// a stale dismissal cannot hide a newer message.
type MessageArea struct {
	Text   string
	Kind   MessageKind
	Hidden bool

	gen uint64
}

func NewMessageArea() *MessageArea {
	return &MessageArea{Hidden: true}
}

func (m *MessageArea) Show(kind MessageKind, text string) uint64 {
	m.gen++
	m.Kind = kind
	m.Text = text
	m.Hidden = false
	return m.gen
}

// Hide hides the message if gen is still the current generation.
func (m *MessageArea) Hide(gen uint64) bool {
	if gen != m.gen {
		return false
	}
	m.Hidden = true
	return true
}

func (m *MessageArea) Class() string {
	class := "message"
	if m.Kind != "" {
		class += " " + string(m.Kind)
	}
	if m.Hidden {
		class += " hidden"
	}
	return class
}

// SignupValues are the signup form's field values.
type SignupValues struct {
	Name     string
	Email    string
	Activity string
}

func (v *SignupValues) Reset() {
	*v = SignupValues{}
}
