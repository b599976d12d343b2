package domain

import "time"

// SuiteReport is the ordered result of running one suite. Cases appear in
// registration order.
type SuiteReport struct {
	Suite    string
	Cases    []CaseResult
	Duration time.Duration
}

// RunReport is the complete result of one run across all suites. Read-only
// after the run completes.
type RunReport struct {
	Suites   []SuiteReport
	Duration time.Duration
}

// Summary aggregates pass/fail counts across a run.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// RunMeta contains metadata about a test run, persisted alongside failures.
type RunMeta struct {
	TotalSuites      int     `json:"total_suites"`
	TotalCases       int     `json:"total_cases"`
	PassedCases      int     `json:"passed_cases"`
	FailedCases      int     `json:"failed_cases"`
	FailedAssertions int     `json:"failed_assertions"`
	Duration         string  `json:"duration"`
	DurationSeconds  float64 `json:"duration_seconds"`
	Workers          int     `json:"workers"`
	Timestamp        string  `json:"timestamp"`
}

// RunOutput is the complete persisted structure for a run.
type RunOutput struct {
	Meta    RunMeta   `json:"meta"`
	Details []Failure `json:"details"`
}
