package domain

import "time"

// Status is the lifecycle state of a test case within a run.
type Status string

const (
	StatusNotRun Status = "not_run"
	StatusPassed Status = "passed"
	StatusFailed Status = "failed"
)

// Outcome is the recorded result of a single assertion inside a test case
// body. Immutable once produced.
type Outcome struct {
	Check    string // Which assertion produced this (identical, true, approx, raises, warns, body)
	Expected string // Rendered expected value
	Actual   string // Rendered actual value
	Message  string // Mismatch description, empty when passed
	Passed   bool
}

// CaseResult represents one executed test case and its assertion outcomes.
type CaseResult struct {
	Suite    string
	Name     string
	Status   Status
	Outcomes []Outcome
	Duration time.Duration
}

// FailedOutcomes returns the outcomes that did not pass.
func (c CaseResult) FailedOutcomes() []Outcome {
	var failed []Outcome
	for _, o := range c.Outcomes {
		if !o.Passed {
			failed = append(failed, o)
		}
	}
	return failed
}
