package examples

import (
	"strings"

	"utr/internal/check"
	"utr/internal/suite"
)

// CountExact counts the elements of values equal to target.
func CountExact(values []string, target string) int {
	count := 0
	for _, v := range values {
		if v == target {
			count++
		}
	}
	return count
}

// CountContaining counts the elements that merely contain target as a
// substring. Looks close enough to exact matching until a longer name
// shares the target as a prefix or infix.
func CountContaining(values []string, target string) int {
	count := 0
	for _, v := range values {
		if strings.Contains(v, target) {
			count++
		}
	}
	return count
}

func registerMatching(s *suite.Suite) error {
	genes := []string{"act", "actin", "bact", "tubulin", "act"}

	return registerAll(s,
		suite.Case{Name: "matching/exact-counts-only-equal-names", Body: func(t *check.T) {
			t.Identical(2, CountExact(genes, "act"))
		}},
		suite.Case{Name: "matching/substring-inflates-the-count", Body: func(t *check.T) {
			// "actin" and "bact" both contain "act".
			t.Identical(4, CountContaining(genes, "act"))
		}},
		suite.Case{Name: "matching/empty-target-matches-everything", Body: func(t *check.T) {
			t.Identical(len(genes), CountContaining(genes, ""))
			t.Identical(0, CountExact(genes, ""))
		}},
	)
}
