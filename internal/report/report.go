// Package report turns run reports into summaries and flattened failure
// records for storage and display.
package report

import "utr/internal/domain"

// Summarize aggregates pass/fail counts across a run. Pure; cases that never
// ran count toward the total only.
func Summarize(run *domain.RunReport) domain.Summary {
	var s domain.Summary
	if run == nil {
		return s
	}
	for _, sr := range run.Suites {
		for _, c := range sr.Cases {
			s.Total++
			switch c.Status {
			case domain.StatusPassed:
				s.Passed++
			case domain.StatusFailed:
				s.Failed++
			}
		}
	}
	return s
}

// FailuresFrom flattens every failing assertion outcome of the run into
// failure records, in suite and case order.
func FailuresFrom(run *domain.RunReport) []domain.Failure {
	if run == nil {
		return nil
	}
	var failures []domain.Failure
	for _, sr := range run.Suites {
		for _, c := range sr.Cases {
			if c.Status != domain.StatusFailed {
				continue
			}
			for _, o := range c.FailedOutcomes() {
				failures = append(failures, domain.Failure{
					Suite:    c.Suite,
					CaseName: c.Name,
					Check:    o.Check,
					Expected: o.Expected,
					Actual:   o.Actual,
					Message:  o.Message,
				})
			}
		}
	}
	return failures
}

// FailedCaseNames returns the distinct names of failed cases grouped by
// suite, for rerunning only the failures of a previous run.
func FailedCaseNames(output *domain.RunOutput) map[string]map[string]struct{} {
	if output == nil {
		return nil
	}
	bySuite := make(map[string]map[string]struct{})
	for _, f := range output.Details {
		cases, ok := bySuite[f.Suite]
		if !ok {
			cases = make(map[string]struct{})
			bySuite[f.Suite] = cases
		}
		cases[f.CaseName] = struct{}{}
	}
	return bySuite
}
