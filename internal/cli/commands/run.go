package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"utr/internal/config"
	"utr/internal/examples"
	"utr/internal/execution"
	"utr/internal/history"
	"utr/internal/report"
	"utr/internal/storage"
	"utr/internal/suite"
	"utr/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	filter    *suite.Filter
	pool      *execution.Pool
	storage   storage.Storage
	formatter *ui.Formatter
	recorder  *history.Recorder
	viewer    *ui.ErrorViewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	filter *suite.Filter,
	pool *execution.Pool,
	st storage.Storage,
	formatter *ui.Formatter,
	recorder *history.Recorder,
	viewer *ui.ErrorViewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		filter:    filter,
		pool:      pool,
		storage:   st,
		formatter: formatter,
		recorder:  recorder,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	suites, err := examples.Suites()
	if err != nil {
		return fmt.Errorf("failed to build suites: %w", err)
	}

	// Narrow by suite name, case name, and previous failures
	suites = rc.filter.BySuite(suites, rc.config.Flags.SuiteFilter)
	suites = rc.filterCases(suites)
	if rc.config.Flags.OnlyFailed {
		suites, err = rc.keepLastRunFailures(suites)
		if err != nil {
			return err
		}
	}

	totalCases := 0
	for _, s := range suites {
		totalCases += s.Len()
	}
	if totalCases == 0 {
		color.Yellow("No test cases to execute")
		return nil
	}

	// Create and set progress bar
	progressBar := ui.NewProgressBar(totalCases)
	rc.pool.SetProgress(progressBar)

	// Execute suites
	run, err := rc.pool.ExecuteWithOptions(suites, rc.config.Flags.FailFast)
	if err != nil {
		return err
	}

	failures := report.FailuresFrom(run)

	// Save results
	if err := rc.storage.Save(run, failures, rc.config.Workers); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	output, err := rc.storage.Load()
	if err != nil {
		return fmt.Errorf("failed to reload run results: %w", err)
	}

	if err := rc.formatter.PrintSummary(output); err != nil {
		return err
	}

	if rc.config.Flags.Record {
		if err := rc.recorder.Record(output.Meta); err != nil {
			color.Yellow("Could not record run history: %v", err)
		}
	}

	summary := report.Summarize(run)
	if summary.Failed > 0 {
		if rc.config.Flags.OpenFailures {
			if err := rc.viewer.View(output); err != nil {
				return err
			}
		}
		return fmt.Errorf("%d test case(s) failed", summary.Failed)
	}
	return nil
}

// filterCases applies the case name pattern to every suite, dropping suites
// left with no cases.
func (rc *RunCommand) filterCases(suites []*suite.Suite) []*suite.Suite {
	pattern := rc.config.Flags.NameFilter
	if pattern == "" {
		return suites
	}
	var kept []*suite.Suite
	for _, s := range suites {
		filtered := rc.filter.ByName(s, pattern)
		if filtered.Len() > 0 {
			kept = append(kept, filtered)
		}
	}
	return kept
}

// keepLastRunFailures narrows suites to the cases that failed in the last
// saved run.
func (rc *RunCommand) keepLastRunFailures(suites []*suite.Suite) ([]*suite.Suite, error) {
	output, err := rc.storage.Load()
	if err != nil {
		return nil, fmt.Errorf("no previous run to rerun failures from: %w", err)
	}
	failed := report.FailedCaseNames(output)
	var kept []*suite.Suite
	for _, s := range suites {
		names, ok := failed[s.Name()]
		if !ok {
			continue
		}
		filtered := rc.filter.ByNames(s, names)
		if filtered.Len() > 0 {
			kept = append(kept, filtered)
		}
	}
	return kept, nil
}
