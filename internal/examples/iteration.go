package examples

import (
	"math"

	"utr/internal/check"
	"utr/internal/suite"
)

// span returns the inclusive integer sequence from..to. When to is below
// from it counts downward, so span(1, 0) is [1, 0] rather than empty. That
// is exactly how naive inclusive-range iteration goes wrong on zero-length
// input.
func span(from, to int) []int {
	if from <= to {
		seq := make([]int, 0, to-from+1)
		for i := from; i <= to; i++ {
			seq = append(seq, i)
		}
		return seq
	}
	seq := make([]int, 0, from-to+1)
	for i := from; i >= to; i-- {
		seq = append(seq, i)
	}
	return seq
}

// SqrtAbs returns sqrt(|x|) for each element, ranging over the sequence
// itself. Empty in, empty out.
func SqrtAbs(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		out = append(out, math.Sqrt(math.Abs(x)))
	}
	return out
}

// SqrtAbsIndexed iterates span(1, len(xs)) with 1-based indexing. On empty
// input the span counts down through 1 and 0, and xs[0] indexes into an
// empty sequence.
func SqrtAbsIndexed(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, i := range span(1, len(xs)) {
		out = append(out, math.Sqrt(math.Abs(xs[i-1])))
	}
	return out
}

func registerIteration(s *suite.Suite) error {
	return registerAll(s,
		suite.Case{Name: "iteration/element-range-maps-values", Body: func(t *check.T) {
			t.ApproxSlice([]float64{1, 2, 3}, SqrtAbs([]float64{1, -4, 9}), 1e-9)
		}},
		suite.Case{Name: "iteration/element-range-handles-empty", Body: func(t *check.T) {
			t.Identical([]float64{}, SqrtAbs([]float64{}))
		}},
		suite.Case{Name: "iteration/indexed-range-agrees-on-non-empty", Body: func(t *check.T) {
			t.ApproxSlice([]float64{1, 2, 3}, SqrtAbsIndexed([]float64{1, -4, 9}), 1e-9)
		}},
		suite.Case{Name: "iteration/indexed-range-panics-on-empty", Body: func(t *check.T) {
			t.Raises(func() error {
				SqrtAbsIndexed([]float64{})
				return nil
			}, check.ErrPanic)
		}},
	)
}
