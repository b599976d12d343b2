package commands

import (
	"github.com/spf13/cobra"

	"utr/internal/cli"
	"utr/internal/config"
	"utr/internal/execution"
	"utr/internal/history"
	"utr/internal/storage"
	"utr/internal/suite"
	"utr/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
	History  *HistoryCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	filter := suite.NewFilter()
	runner := execution.NewRunner()
	pool := execution.NewPool(cfg, runner)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	dbManager := history.NewDatabaseManager(cfg)
	recorder := history.NewRecorder(dbManager)
	errorViewer := ui.NewErrorViewer(cfg, jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, filter, pool, jsonStorage, formatter, recorder, errorViewer),
		List:     NewListCommand(cfg, filter, formatter, jsonStorage),
		Failures: NewFailuresCommand(cfg, jsonStorage, errorViewer),
		History:  NewHistoryCommand(cfg, recorder, formatter),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the registered test suites",
		Long:  "Execute every registered test case, suite by suite, and report pass/fail per assertion",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			if flags.Workers > 0 {
				cfg.Workers = flags.Workers
			}
			return nil
		},
	}
	runCmd.Flags().IntVarP(&flags.Workers, "workers", "w", 4, "Number of parallel suite workers")
	runCmd.Flags().StringVarP(&flags.SuiteFilter, "suite", "s", "", "Run only suites matching this name pattern (supports wildcards, e.g. 'member*')")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Run only cases matching this name pattern (supports wildcards, e.g. '*empty*')")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first failed test case")
	runCmd.Flags().BoolVar(&flags.OnlyFailed, "failed", false, "Run only cases that failed in the last run (from storage/run-report.json)")
	runCmd.Flags().BoolVar(&flags.Record, "record", false, "Record the run summary to the history database")
	runCmd.Flags().BoolVar(&flags.OpenFailures, "open-failures", false, "Open the failures viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered suites",
		Long:  "List registered suites and test cases without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.SuiteFilter, "suite", "s", "", "List only suites matching this name pattern")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "List only cases matching this name pattern")
	listCmd.Flags().BoolVarP(&flags.Cases, "cases", "c", true, "List test cases under each suite")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View assertion failures interactively",
		Long:  "Display assertion failures from the last run in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Long:  "List run summaries recorded to the history database",
		RunE:  c.History.Execute,
	}
	historyCmd.Flags().IntVarP(&c.History.limit, "limit", "n", 20, "Number of runs to show")
	rootCmd.AddCommand(historyCmd)
}
