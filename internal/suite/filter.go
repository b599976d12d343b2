package suite

import (
	"path"
	"strings"
)

// Filter narrows suites and cases by name pattern.
type Filter struct{}

// NewFilter creates a new Filter.
func NewFilter() *Filter {
	return &Filter{}
}

// ByName returns a copy of the suite holding only the cases whose name
// matches pattern, preserving registration order. Supports wildcard
// patterns like "membership/*" or "*empty*"; an empty pattern keeps
// everything.
func (f *Filter) ByName(s *Suite, pattern string) *Suite {
	if pattern == "" {
		return s
	}

	filtered := New(s.Name())
	for _, c := range s.Cases() {
		if matchName(c.Name, pattern) {
			// Names are unique in the source suite, so Register cannot fail.
			_ = filtered.Register(c.Name, c.Body)
		}
	}
	return filtered
}

// ByNames returns a copy of the suite holding only cases whose name is in
// keep. Used to rerun the failures of a previous run.
func (f *Filter) ByNames(s *Suite, keep map[string]struct{}) *Suite {
	filtered := New(s.Name())
	for _, c := range s.Cases() {
		if _, ok := keep[c.Name]; ok {
			_ = filtered.Register(c.Name, c.Body)
		}
	}
	return filtered
}

// BySuite returns the suites whose name matches pattern.
func (f *Filter) BySuite(suites []*Suite, pattern string) []*Suite {
	if pattern == "" {
		return suites
	}
	var filtered []*Suite
	for _, s := range suites {
		if matchName(s.Name(), pattern) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// matchName matches a case or suite name against a wildcard pattern. Tries
// path.Match first (supports * and ?), then falls back to a more flexible
// substring match for patterns like "*empty*" whose parts just need to
// appear somewhere in the name.
func matchName(name, pattern string) bool {
	if matched, err := path.Match(pattern, name); err == nil && matched {
		return true
	}

	if strings.Contains(pattern, "*") {
		parts := strings.Split(pattern, "*")
		hasNonEmptyPart := false
		for _, part := range parts {
			if part == "" {
				continue
			}
			hasNonEmptyPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasNonEmptyPart
	}

	// No wildcards: plain substring match.
	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}
