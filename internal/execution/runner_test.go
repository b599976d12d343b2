package execution

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"utr/internal/check"
	"utr/internal/domain"
	"utr/internal/suite"
)

func TestRunner_Run_StatusInvariant(t *testing.T) {
	runner := NewRunner()

	tests := []struct {
		name     string
		body     suite.Body
		expected domain.Status
	}{
		{
			name:     "no assertions passes",
			body:     func(t *check.T) {},
			expected: domain.StatusPassed,
		},
		{
			name: "all passing assertions passes",
			body: func(t *check.T) {
				t.True(true, "fine")
				t.Identical(1, 1)
			},
			expected: domain.StatusPassed,
		},
		{
			name: "one failing assertion fails the case",
			body: func(t *check.T) {
				t.True(true, "fine")
				t.Identical(1, 2)
				t.True(true, "still recorded")
			},
			expected: domain.StatusFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := runner.Run("s", suite.Case{Name: tt.name, Body: tt.body})
			assert.Equal(t, tt.expected, result.Status)
		})
	}
}

func TestRunner_Run_PanicIsContained(t *testing.T) {
	runner := NewRunner()

	result := runner.Run("s", suite.Case{Name: "explodes", Body: func(t *check.T) {
		t.True(true, "recorded before the panic")
		panic("index out of range")
	}})

	assert.Equal(t, domain.StatusFailed, result.Status)
	require.Len(t, result.Outcomes, 2)
	assert.True(t, result.Outcomes[0].Passed)
	assert.False(t, result.Outcomes[1].Passed)
	assert.Equal(t, "body", result.Outcomes[1].Check)
	assert.Contains(t, result.Outcomes[1].Message, "index out of range")
}

func TestRunner_RunSuite_OrderAndIsolation(t *testing.T) {
	s := suite.New("lessons")
	var executed []string
	for _, name := range []string{"a", "b", "c"} {
		name := name
		require.NoError(t, s.Register(name, func(t *check.T) {
			executed = append(executed, name)
			if name == "b" {
				panic("broken body")
			}
		}))
	}

	runner := NewRunner()
	report := runner.RunSuite(context.Background(), s, false)

	// A broken case must not stop the rest of the suite.
	assert.Equal(t, []string{"a", "b", "c"}, executed)
	require.Len(t, report.Cases, 3)
	assert.Equal(t, domain.StatusPassed, report.Cases[0].Status)
	assert.Equal(t, domain.StatusFailed, report.Cases[1].Status)
	assert.Equal(t, domain.StatusPassed, report.Cases[2].Status)
}

func TestRunner_RunSuite_FailFast(t *testing.T) {
	s := suite.New("lessons")
	var executed []string
	bodies := map[string]suite.Body{
		"passes": func(t *check.T) { t.True(true, "ok") },
		"fails":  func(t *check.T) { t.True(false, "broken") },
		"later":  func(t *check.T) {},
	}
	for _, name := range []string{"passes", "fails", "later"} {
		name := name
		require.NoError(t, s.Register(name, func(t *check.T) {
			executed = append(executed, name)
			bodies[name](t)
		}))
	}

	runner := NewRunner()
	report := runner.RunSuite(context.Background(), s, true)

	assert.Equal(t, []string{"passes", "fails"}, executed)
	require.Len(t, report.Cases, 3)
	assert.Equal(t, domain.StatusNotRun, report.Cases[2].Status)
}

func TestRunner_RunSuite_CancelledContext(t *testing.T) {
	s := suite.New("lessons")
	require.NoError(t, s.Register("never-runs", func(t *check.T) {
		t.True(false, "must not execute")
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := NewRunner().RunSuite(ctx, s, false)
	require.Len(t, report.Cases, 1)
	assert.Equal(t, domain.StatusNotRun, report.Cases[0].Status)
	assert.Empty(t, report.Cases[0].Outcomes)
}
