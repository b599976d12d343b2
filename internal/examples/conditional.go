package examples

import (
	"utr/internal/check"
	"utr/internal/suite"
)

// ClampNegatives returns a copy of xs with every negative element replaced
// by zero.
func ClampNegatives(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		if x < 0 {
			out[i] = 0
		} else {
			out[i] = x
		}
	}
	return out
}

// ClampNegativesFirst decides from the first element alone: when xs[0] is
// negative the whole sequence is zeroed, otherwise nothing is touched.
// Panics on empty input because there is no first element to inspect.
func ClampNegativesFirst(xs []float64) []float64 {
	out := make([]float64, len(xs))
	if xs[0] < 0 {
		return out
	}
	copy(out, xs)
	return out
}

func registerConditional(s *suite.Suite) error {
	return registerAll(s,
		suite.Case{Name: "conditional/element-wise-clamps-each-negative", Body: func(t *check.T) {
			t.Identical([]float64{0, 2, 0, 4}, ClampNegatives([]float64{-1, 2, -3, 4}))
		}},
		suite.Case{Name: "conditional/first-element-zeroes-everything", Body: func(t *check.T) {
			t.Identical([]float64{0, 0, 0, 0}, ClampNegativesFirst([]float64{-1, 2, -3, 4}))
		}},
		suite.Case{Name: "conditional/first-element-misses-later-negatives", Body: func(t *check.T) {
			t.Identical([]float64{2, -3}, ClampNegativesFirst([]float64{2, -3}))
		}},
		suite.Case{Name: "conditional/first-element-panics-on-empty", Body: func(t *check.T) {
			t.Raises(func() error {
				ClampNegativesFirst(nil)
				return nil
			}, check.ErrPanic)
		}},
		suite.Case{Name: "conditional/element-wise-handles-empty", Body: func(t *check.T) {
			t.Identical([]float64{}, ClampNegatives(nil))
		}},
	)
}
