package mocks

import "hotel/infras/otel"

// Scope records what a traced call reported so tests can inspect it.
type Scope struct {
	Events     []string
	Errors     []error
	Attributes map[string]any
	Ended      bool
}

func (s *Scope) AddEvent(name string) {
	s.Events = append(s.Events, name)
}

func (s *Scope) End() {
	s.Ended = true
}

func (s *Scope) SetAttribute(key string, value any) {
	if s.Attributes == nil {
		s.Attributes = map[string]any{}
	}

	s.Attributes[key] = value
}

func (s *Scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

func (s *Scope) TraceError(err error) {
	s.Errors = append(s.Errors, err)
}

func (s *Scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

var _ otel.Scope = (*Scope)(nil)

func NewScope() *Scope {
	return &Scope{}
}
