package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"utr/internal/domain"
)

func sampleRun() *domain.RunReport {
	return &domain.RunReport{
		Suites: []domain.SuiteReport{
			{
				Suite: "alpha",
				Cases: []domain.CaseResult{
					{
						Suite:  "alpha",
						Name:   "passes",
						Status: domain.StatusPassed,
						Outcomes: []domain.Outcome{
							{Check: "identical", Passed: true},
						},
					},
					{
						Suite:  "alpha",
						Name:   "fails-twice",
						Status: domain.StatusFailed,
						Outcomes: []domain.Outcome{
							{Check: "identical", Passed: false, Message: "length mismatch: 3 vs 4"},
							{Check: "true", Passed: true},
							{Check: "approx", Passed: false, Message: "outside tolerance"},
						},
					},
				},
			},
			{
				Suite: "beta",
				Cases: []domain.CaseResult{
					{Suite: "beta", Name: "skipped", Status: domain.StatusNotRun},
				},
			},
		},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleRun())

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Passed)
	assert.Equal(t, 1, s.Failed)
}

func TestSummarize_NilRun(t *testing.T) {
	assert.Equal(t, domain.Summary{}, Summarize(nil))
}

func TestFailuresFrom(t *testing.T) {
	failures := FailuresFrom(sampleRun())

	// Only the failing outcomes of failed cases, in order.
	require.Len(t, failures, 2)
	assert.Equal(t, "alpha", failures[0].Suite)
	assert.Equal(t, "fails-twice", failures[0].CaseName)
	assert.Equal(t, "identical", failures[0].Check)
	assert.Equal(t, "length mismatch: 3 vs 4", failures[0].Message)
	assert.Equal(t, "approx", failures[1].Check)
}

func TestFailuresFrom_AllPassing(t *testing.T) {
	run := &domain.RunReport{
		Suites: []domain.SuiteReport{
			{Suite: "alpha", Cases: []domain.CaseResult{
				{Suite: "alpha", Name: "ok", Status: domain.StatusPassed},
			}},
		},
	}
	assert.Empty(t, FailuresFrom(run))
}

func TestFailedCaseNames(t *testing.T) {
	output := &domain.RunOutput{
		Details: []domain.Failure{
			{Suite: "alpha", CaseName: "one"},
			{Suite: "alpha", CaseName: "one"}, // two failures in one case
			{Suite: "alpha", CaseName: "two"},
			{Suite: "beta", CaseName: "three"},
		},
	}

	bySuite := FailedCaseNames(output)
	require.Len(t, bySuite, 2)
	assert.Len(t, bySuite["alpha"], 2)
	assert.Len(t, bySuite["beta"], 1)
	_, ok := bySuite["alpha"]["one"]
	assert.True(t, ok)
}
