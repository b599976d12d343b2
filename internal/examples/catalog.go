// Package examples is the lesson catalog: for each defensive-programming
// pitfall a buggy and a fixed function variant, registered as test cases
// that pin the documented behavior of both. The catalog is data consumed by
// the harness, not part of the harness itself.
package examples

import "utr/internal/suite"

// Suites builds the lesson suites in a fixed order.
func Suites() ([]*suite.Suite, error) {
	lessons := []struct {
		name     string
		register func(*suite.Suite) error
	}{
		{"membership", registerMembership},
		{"matching", registerMatching},
		{"conditional", registerConditional},
		{"distance", registerDistance},
		{"iteration", registerIteration},
		{"colmeans", registerColMeans},
	}

	suites := make([]*suite.Suite, 0, len(lessons))
	for _, lesson := range lessons {
		s := suite.New(lesson.name)
		if err := lesson.register(s); err != nil {
			return nil, err
		}
		suites = append(suites, s)
	}
	return suites, nil
}

// registerAll registers cases in order, stopping at the first error.
func registerAll(s *suite.Suite, cases ...suite.Case) error {
	for _, c := range cases {
		if err := s.Register(c.Name, c.Body); err != nil {
			return err
		}
	}
	return nil
}
