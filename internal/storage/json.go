package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"utr/internal/domain"
	"utr/internal/report"
)

// Save writes the run report and its failures to the configured JSON output file.
func (s *JSONStorage) Save(run *domain.RunReport, failures []domain.Failure, workers int) error {
	summary := report.Summarize(run)

	output := domain.RunOutput{
		Meta: domain.RunMeta{
			TotalSuites:      len(run.Suites),
			TotalCases:       summary.Total,
			PassedCases:      summary.Passed,
			FailedCases:      summary.Failed,
			FailedAssertions: len(failures),
			Duration:         run.Duration.String(),
			DurationSeconds:  run.Duration.Seconds(),
			Workers:          workers,
			Timestamp:        time.Now().Format(time.RFC3339),
		},
		Details: failures,
	}

	return s.SaveOutput(&output)
}

// Load reads the last run results from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file (e.g. after
// the failures viewer toggles resolved flags).
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
