package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"utr/internal/config"
	"utr/internal/examples"
	"utr/internal/report"
	"utr/internal/storage"
	"utr/internal/suite"
	"utr/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	filter    *suite.Filter
	formatter *ui.Formatter
	storage   storage.Storage
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	filter *suite.Filter,
	formatter *ui.Formatter,
	st storage.Storage,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		filter:    filter,
		formatter: formatter,
		storage:   st,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	suites, err := examples.Suites()
	if err != nil {
		return fmt.Errorf("failed to build suites: %w", err)
	}

	suites = lc.filter.BySuite(suites, lc.config.Flags.SuiteFilter)
	if pattern := lc.config.Flags.NameFilter; pattern != "" {
		var kept []*suite.Suite
		for _, s := range suites {
			filtered := lc.filter.ByName(s, pattern)
			if filtered.Len() > 0 {
				kept = append(kept, filtered)
			}
		}
		suites = kept
	}

	if len(suites) == 0 {
		color.Yellow("No suites found")
		return nil
	}

	// Mark cases that failed in the last saved run, when one exists
	var failedNames map[string]map[string]struct{}
	if output, err := lc.storage.Load(); err == nil {
		failedNames = report.FailedCaseNames(output)
	}

	return lc.formatter.PrintSuiteList(suites, lc.config.Flags.Cases, failedNames)
}
