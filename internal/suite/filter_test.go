package suite

import (
	"testing"

	"utr/internal/check"
)

func buildSuite(t *testing.T, name string, cases ...string) *Suite {
	t.Helper()
	s := New(name)
	for _, c := range cases {
		if err := s.Register(c, func(t *check.T) {}); err != nil {
			t.Fatalf("register %s: %v", c, err)
		}
	}
	return s
}

func TestFilter_ByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		cases    []string
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			cases:    []string{"membership/fixed", "membership/buggy", "distance/fixed"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches prefix",
			cases:    []string{"membership/fixed", "membership/buggy", "distance/fixed"},
			pattern:  "membership/*",
			expected: 2,
		},
		{
			name:     "wildcard pattern matches substring",
			cases:    []string{"iteration/handles-empty", "iteration/panics-on-empty", "iteration/maps-values"},
			pattern:  "*empty*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			cases:    []string{"membership/fixed", "membership/buggy", "distance/fixed"},
			pattern:  "fixed",
			expected: 2,
		},
		{
			name:     "no matches",
			cases:    []string{"membership/fixed", "membership/buggy"},
			pattern:  "*nonexistent*",
			expected: 0,
		},
		{
			name:     "pattern with multiple wildcards",
			cases:    []string{"conditional/first-element-panics-on-empty", "conditional/element-wise-handles-empty", "distance/three-four-five"},
			pattern:  "*element*empty*",
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := buildSuite(t, "lessons", tt.cases...)
			result := filter.ByName(s, tt.pattern)
			if result.Len() != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, result.Len())
			}
		})
	}
}

func TestFilter_ByName_PreservesOrder(t *testing.T) {
	filter := NewFilter()
	s := buildSuite(t, "lessons", "a/one", "b/skip", "a/two", "a/three")

	result := filter.ByName(s, "a/*")
	expected := []string{"a/one", "a/two", "a/three"}
	if result.Len() != len(expected) {
		t.Fatalf("expected %d cases, got %d", len(expected), result.Len())
	}
	for i, c := range result.Cases() {
		if c.Name != expected[i] {
			t.Errorf("expected %s at position %d, got %s", expected[i], i, c.Name)
		}
	}
}

func TestFilter_ByNames(t *testing.T) {
	filter := NewFilter()
	s := buildSuite(t, "lessons", "one", "two", "three")

	keep := map[string]struct{}{"one": {}, "three": {}}
	result := filter.ByNames(s, keep)
	if result.Len() != 2 {
		t.Fatalf("expected 2 cases, got %d", result.Len())
	}
	if result.Cases()[0].Name != "one" || result.Cases()[1].Name != "three" {
		t.Errorf("unexpected cases: %v", result.Cases())
	}
}

func TestFilter_BySuite(t *testing.T) {
	filter := NewFilter()
	suites := []*Suite{
		buildSuite(t, "membership", "a"),
		buildSuite(t, "matching", "a"),
		buildSuite(t, "distance", "a"),
	}

	tests := []struct {
		pattern  string
		expected int
	}{
		{"", 3},
		{"m*", 2},
		{"distance", 1},
		{"*nothing*", 0},
	}

	for _, tt := range tests {
		result := filter.BySuite(suites, tt.pattern)
		if len(result) != tt.expected {
			t.Errorf("pattern %q: expected %d suites, got %d", tt.pattern, tt.expected, len(result))
		}
	}
}
