package execution

import (
	"context"
	"fmt"
	"time"

	"utr/internal/check"
	"utr/internal/domain"
	"utr/internal/suite"
)

// Runner executes a single test case. A failure inside the body, including a
// panic, is contained to that case's result and never propagates.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes one case with a fresh recorder. A recovered panic is recorded
// as a failed outcome carrying the panic's description.
func (r *Runner) Run(suiteName string, c suite.Case) domain.CaseResult {
	t := check.NewT()
	start := time.Now()

	func() {
		defer func() {
			if rec := recover(); rec != nil {
				t.Record(domain.Outcome{
					Check:   "body",
					Message: fmt.Sprintf("unhandled error in test body: %v", rec),
					Passed:  false,
				})
			}
		}()
		c.Body(t)
	}()

	return domain.CaseResult{
		Suite:    suiteName,
		Name:     c.Name,
		Status:   statusOf(t.Outcomes()),
		Outcomes: t.Outcomes(),
		Duration: time.Since(start),
	}
}

// RunSuite executes every case of the suite in registration order. With
// failFast set, execution stops after the first failed case; cases the run
// never reached keep status not_run. Cancelling ctx also stops the suite.
func (r *Runner) RunSuite(ctx context.Context, s *suite.Suite, failFast bool) domain.SuiteReport {
	report := domain.SuiteReport{Suite: s.Name()}
	start := time.Now()
	stopped := false

	for _, c := range s.Cases() {
		if stopped || ctx.Err() != nil {
			report.Cases = append(report.Cases, domain.CaseResult{
				Suite:  s.Name(),
				Name:   c.Name,
				Status: domain.StatusNotRun,
			})
			continue
		}
		result := r.Run(s.Name(), c)
		report.Cases = append(report.Cases, result)
		if failFast && result.Status == domain.StatusFailed {
			stopped = true
		}
	}

	report.Duration = time.Since(start)
	return report
}

// statusOf derives the case status: failed iff at least one outcome did not
// pass, otherwise passed.
func statusOf(outcomes []domain.Outcome) domain.Status {
	for _, o := range outcomes {
		if !o.Passed {
			return domain.StatusFailed
		}
	}
	return domain.StatusPassed
}
