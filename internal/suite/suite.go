package suite

import (
	"fmt"

	"utr/internal/check"
)

// Body is a zero-argument test case body. It performs assertions against the
// recorder it is handed.
type Body func(t *check.T)

// Case is a named, independently executed unit of verification.
type Case struct {
	Name string
	Body Body
}

// Suite is an ordered collection of registered cases sharing one run/report
// lifecycle. Suites are explicit values, not process-wide state, so multiple
// suites can be built and run independently.
type Suite struct {
	name  string
	cases []Case
	index map[string]struct{}
}

// DuplicateNameError reports a registration-time name conflict. It is fatal
// to the Register call; the caller must handle it.
type DuplicateNameError struct {
	Suite string
	Case  string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("test case %q already registered in suite %q", e.Case, e.Suite)
}

// New creates an empty suite.
func New(name string) *Suite {
	return &Suite{
		name:  name,
		index: make(map[string]struct{}),
	}
}

// Name returns the suite name.
func (s *Suite) Name() string {
	return s.name
}

// Register stores a case. Registration order is execution order.
func (s *Suite) Register(name string, body Body) error {
	if _, exists := s.index[name]; exists {
		return &DuplicateNameError{Suite: s.name, Case: name}
	}
	s.index[name] = struct{}{}
	s.cases = append(s.cases, Case{Name: name, Body: body})
	return nil
}

// Cases returns the registered cases in registration order.
func (s *Suite) Cases() []Case {
	return s.cases
}

// Len returns the number of registered cases.
func (s *Suite) Len() int {
	return len(s.cases)
}
