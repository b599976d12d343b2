package storage

import (
	"testing"
	"time"

	"utr/internal/config"
	"utr/internal/domain"
)

func testStorage(t *testing.T) *JSONStorage {
	t.Helper()
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	return NewJSONStorage(cfg)
}

func sampleRun() *domain.RunReport {
	return &domain.RunReport{
		Duration: 1500 * time.Millisecond,
		Suites: []domain.SuiteReport{
			{Suite: "alpha", Cases: []domain.CaseResult{
				{Suite: "alpha", Name: "ok", Status: domain.StatusPassed},
				{Suite: "alpha", Name: "broken", Status: domain.StatusFailed},
			}},
		},
	}
}

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	st := testStorage(t)

	failures := []domain.Failure{
		{Suite: "alpha", CaseName: "broken", Check: "identical", Message: "length mismatch: 3 vs 4"},
	}
	if err := st.Save(sampleRun(), failures, 4); err != nil {
		t.Fatalf("save: %v", err)
	}

	output, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if output.Meta.TotalCases != 2 {
		t.Errorf("expected 2 total cases, got %d", output.Meta.TotalCases)
	}
	if output.Meta.PassedCases != 1 || output.Meta.FailedCases != 1 {
		t.Errorf("unexpected pass/fail counts: %d/%d", output.Meta.PassedCases, output.Meta.FailedCases)
	}
	if output.Meta.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", output.Meta.Workers)
	}
	if len(output.Details) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(output.Details))
	}
	if output.Details[0].Message != "length mismatch: 3 vs 4" {
		t.Errorf("unexpected failure message: %s", output.Details[0].Message)
	}
}

func TestJSONStorage_SaveOutputKeepsResolvedFlags(t *testing.T) {
	st := testStorage(t)

	if err := st.Save(sampleRun(), []domain.Failure{{Suite: "alpha", CaseName: "broken"}}, 1); err != nil {
		t.Fatalf("save: %v", err)
	}

	output, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	output.Details[0].Resolved = true
	if err := st.SaveOutput(output); err != nil {
		t.Fatalf("save output: %v", err)
	}

	reloaded, err := st.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reloaded.Details[0].Resolved {
		t.Error("resolved flag was not persisted")
	}
}

func TestJSONStorage_LoadMissingFile(t *testing.T) {
	st := testStorage(t)

	if _, err := st.Load(); err == nil {
		t.Error("expected an error for a missing results file")
	}
}
