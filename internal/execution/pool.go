package execution

import (
	"context"
	"sync"
	"time"

	"utr/internal/config"
	"utr/internal/domain"
	"utr/internal/suite"
	"utr/internal/ui"
)

// Pool runs suites in parallel across a fixed number of workers. Suites are
// independent of each other; the cases inside one suite always run
// sequentially in registration order on a single worker.
type Pool struct {
	config   *config.Config
	runner   *Runner
	progress *ui.ProgressBar
}

// NewPool creates a new Pool.
func NewPool(cfg *config.Config, runner *Runner) *Pool {
	return &Pool{
		config: cfg,
		runner: runner,
	}
}

// SetProgress sets the progress bar for the pool.
func (p *Pool) SetProgress(progress *ui.ProgressBar) {
	p.progress = progress
}

// Execute runs all suites (no fail-fast).
func (p *Pool) Execute(suites []*suite.Suite) (*domain.RunReport, error) {
	return p.ExecuteWithOptions(suites, false)
}

// ExecuteWithOptions runs all suites, optionally stopping after the first
// failed case. Suite reports appear in the report in input order regardless
// of which worker finished first, so repeated runs of the same suites yield
// identical reports.
func (p *Pool) ExecuteWithOptions(suites []*suite.Suite, failFast bool) (*domain.RunReport, error) {
	report := &domain.RunReport{}
	if len(suites) == 0 {
		return report, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := make(chan int, len(suites))
	for i := range suites {
		queue <- i
	}
	close(queue)

	workerCount := p.config.Workers
	if workerCount <= 0 {
		workerCount = 1
	}

	var mu sync.Mutex
	var completed, passed, failed int
	reports := make([]domain.SuiteReport, len(suites))
	startTime := time.Now()

	var wg sync.WaitGroup
	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				reports[idx] = p.runSuite(ctx, cancel, suites[idx], failFast, &mu, &completed, &passed, &failed)
			}
		}()
	}
	wg.Wait()

	if p.progress != nil {
		p.progress.Finish()
	}

	report.Suites = reports
	report.Duration = time.Since(startTime)
	return report, nil
}

// runSuite executes one suite's cases in order, updating shared progress
// counters after every case. With failFast, the first failed case cancels
// the whole run; cases never reached keep status not_run.
func (p *Pool) runSuite(ctx context.Context, cancel context.CancelFunc, s *suite.Suite, failFast bool, mu *sync.Mutex, completed, passed, failed *int) domain.SuiteReport {
	report := domain.SuiteReport{Suite: s.Name()}
	start := time.Now()

	for _, c := range s.Cases() {
		if ctx.Err() != nil {
			report.Cases = append(report.Cases, domain.CaseResult{
				Suite:  s.Name(),
				Name:   c.Name,
				Status: domain.StatusNotRun,
			})
			continue
		}

		result := p.runner.Run(s.Name(), c)
		report.Cases = append(report.Cases, result)

		mu.Lock()
		*completed++
		if result.Status == domain.StatusFailed {
			*failed++
		} else {
			*passed++
		}
		if p.progress != nil {
			p.progress.Update(*completed, *passed, *failed)
		}
		mu.Unlock()

		if failFast && result.Status == domain.StatusFailed {
			cancel()
		}
	}

	report.Duration = time.Since(start)
	return report
}
