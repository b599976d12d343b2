package ui

import (
	"fmt"
	"sort"

	"github.com/fatih/color"

	"utr/internal/config"
	"utr/internal/domain"
	"utr/internal/suite"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintSummary displays the statistics table and failure tree for a run
func (f *Formatter) PrintSummary(output *domain.RunOutput) error {
	meta := output.Meta

	// Print header
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                     Run Statistics                            ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	// Print table
	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Suites")
	color.White("%-27d │\n", meta.TotalSuites)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Total Test Cases")
	color.White("%-27d │\n", meta.TotalCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Test Cases")
	color.Green("%-27d │\n", meta.PassedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Test Cases")
	color.Red("%-27d │\n", meta.FailedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Assertions")
	color.Red("%-27d │\n", meta.FailedAssertions)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Workers")
	color.White("%-27d │\n", meta.Workers)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	// Print summary line
	fmt.Println()
	if meta.FailedCases == 0 {
		color.Green("✓ All test cases passed!")
	} else {
		color.Red("✗ %d test case(s) failed with %d assertion failure(s)", meta.FailedCases, meta.FailedAssertions)
		fmt.Println()
		f.printFailureTree(output.Details)
	}

	return nil
}

// printFailureTree prints failures grouped by suite and case
func (f *Formatter) printFailureTree(failures []domain.Failure) {
	if len(failures) == 0 {
		return
	}

	// Group failures by suite, then by case, preserving first-seen order
	type caseGroup struct {
		name     string
		failures []domain.Failure
	}
	type suiteGroup struct {
		name  string
		cases []*caseGroup
		index map[string]*caseGroup
	}

	var suites []*suiteGroup
	byName := make(map[string]*suiteGroup)
	for _, failure := range failures {
		sg, ok := byName[failure.Suite]
		if !ok {
			sg = &suiteGroup{name: failure.Suite, index: make(map[string]*caseGroup)}
			byName[failure.Suite] = sg
			suites = append(suites, sg)
		}
		cg, ok := sg.index[failure.CaseName]
		if !ok {
			cg = &caseGroup{name: failure.CaseName}
			sg.index[failure.CaseName] = cg
			sg.cases = append(sg.cases, cg)
		}
		cg.failures = append(cg.failures, failure)
	}

	for i, sg := range suites {
		isLastSuite := i == len(suites)-1
		if isLastSuite {
			color.Cyan("└── %s", sg.name)
		} else {
			color.Cyan("├── %s", sg.name)
		}

		suitePrefix := "│   "
		if isLastSuite {
			suitePrefix = "    "
		}

		for j, cg := range sg.cases {
			isLastCase := j == len(sg.cases)-1
			if isLastCase {
				color.Yellow("%s└── %s", suitePrefix, cg.name)
			} else {
				color.Yellow("%s├── %s", suitePrefix, cg.name)
			}

			casePrefix := suitePrefix + "│   "
			if isLastCase {
				casePrefix = suitePrefix + "    "
			}
			for k, failure := range cg.failures {
				connector := "├── "
				if k == len(cg.failures)-1 {
					connector = "└── "
				}
				msg := failure.Message
				if msg == "" {
					msg = fmt.Sprintf("expected %s, got %s", failure.Expected, failure.Actual)
				}
				color.Red("%s%s[%s] %s", casePrefix, connector, failure.Check, msg)
			}
		}
	}
}

// PrintSuiteList prints registered suites, optionally with their cases.
// failedNames is optional; cases in it are marked with [F] in red (from last run).
func (f *Formatter) PrintSuiteList(suites []*suite.Suite, showCases bool, failedNames map[string]map[string]struct{}) error {
	total := 0
	for _, s := range suites {
		total += s.Len()
	}
	color.Green("Found %d suite(s) with %d test case(s):\n", len(suites), total)

	// Sort suites by name for consistent output
	sorted := make([]*suite.Suite, len(suites))
	copy(sorted, suites)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name() < sorted[j].Name() })

	for i, s := range sorted {
		isLastSuite := i == len(sorted)-1
		if isLastSuite {
			color.Cyan("└── %s (%d)", s.Name(), s.Len())
		} else {
			color.Cyan("├── %s (%d)", s.Name(), s.Len())
		}

		if !showCases {
			continue
		}

		for j, c := range s.Cases() {
			isLastCase := j == len(s.Cases())-1

			failMarker := ""
			if cases, ok := failedNames[s.Name()]; ok {
				if _, failed := cases[c.Name]; failed {
					failMarker = " " + color.RedString("[F]")
				}
			}

			var prefix string
			if isLastSuite {
				if isLastCase {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if isLastCase {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}

			fmt.Printf("%s%s%s\n", prefix, color.YellowString(c.Name), failMarker)
		}

		// Add spacing between suites (except for the last one)
		if showCases && i < len(sorted)-1 {
			fmt.Println()
		}
	}

	return nil
}

// PrintHistory prints recorded runs, newest first
func (f *Formatter) PrintHistory(records []domain.RunRecord) error {
	if len(records) == 0 {
		color.Yellow("No recorded runs found")
		return nil
	}

	color.Green("Last %d recorded run(s):\n", len(records))
	fmt.Printf("%-6s %-25s %8s %8s %8s %10s %8s\n", "ID", "Recorded", "Total", "Passed", "Failed", "Duration", "Workers")
	for _, rec := range records {
		line := fmt.Sprintf("%-6d %-25s %8d %8d %8d %9.2fs %8d",
			rec.ID, rec.Timestamp, rec.TotalCases, rec.PassedCases, rec.FailedCases,
			rec.DurationSeconds, rec.Workers)
		if rec.FailedCases > 0 {
			color.Red("%s", line)
		} else {
			fmt.Println(line)
		}
	}
	return nil
}
