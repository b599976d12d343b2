package examples

import (
	"utr/internal/check"
	"utr/internal/suite"
)

// KeepKnown returns the elements of values that appear in vocab, preserving
// input order. Membership is what matters, not position.
func KeepKnown(values, vocab []string) []string {
	known := make(map[string]struct{}, len(vocab))
	for _, v := range vocab {
		known[v] = struct{}{}
	}
	kept := []string{}
	for _, v := range values {
		if _, ok := known[v]; ok {
			kept = append(kept, v)
		}
	}
	return kept
}

// KeepKnownPositional compares each element against the vocab entry at the
// same position, recycling vocab when it runs out. An element is kept only
// when it happens to line up with its own vocab entry, so valid values are
// silently dropped. Warns when the longer length is not a multiple of the
// shorter, the way recycling comparisons do.
func KeepKnownPositional(values, vocab []string, w *check.Warnings) []string {
	if len(vocab) == 0 {
		return []string{}
	}
	if len(values)%len(vocab) != 0 {
		w.Warnf("longer object length is not a multiple of shorter object length")
	}
	kept := []string{}
	for i, v := range values {
		if v == vocab[i%len(vocab)] {
			kept = append(kept, v)
		}
	}
	return kept
}

func alphabet() []string {
	letters := make([]string, 26)
	for i := range letters {
		letters[i] = string(rune('A' + i))
	}
	return letters
}

func registerMembership(s *suite.Suite) error {
	return registerAll(s,
		suite.Case{Name: "membership/keeps-known-values", Body: func(t *check.T) {
			t.Identical([]string{"A", "B", "Z"}, KeepKnown([]string{"A", "B", "Z", "!"}, alphabet()))
		}},
		suite.Case{Name: "membership/positional-drops-valid-values", Body: func(t *check.T) {
			// "Z" is a valid letter but sits at position 2 where the
			// alphabet has "C", so the positional variant drops it.
			t.Identical([]string{"A", "B"}, KeepKnownPositional([]string{"A", "B", "Z", "!"}, alphabet(), nil))
		}},
		suite.Case{Name: "membership/recycling-warns-on-length-mismatch", Body: func(t *check.T) {
			t.Warns(func(w *check.Warnings) {
				KeepKnownPositional([]string{"A", "B", "C"}, []string{"A", "B"}, w)
			})
		}},
	)
}
