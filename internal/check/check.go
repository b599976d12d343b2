package check

import (
	"errors"
	"fmt"
	"math"

	"utr/internal/domain"
)

// ErrPanic is the target kind for Raises when the callable is expected to
// panic rather than return an error.
var ErrPanic = errors.New("panic")

// T records assertion outcomes for a single test case body. A fresh T is
// handed to every case; it is not safe for use from multiple goroutines.
type T struct {
	outcomes []domain.Outcome
}

// NewT creates an empty outcome recorder.
func NewT() *T {
	return &T{}
}

// Outcomes returns the recorded outcomes in assertion order.
func (t *T) Outcomes() []domain.Outcome {
	return t.outcomes
}

// Record appends a pre-built outcome. Used by the runner to record body
// failures (recovered panics); assertions go through the typed methods.
func (t *T) Record(o domain.Outcome) {
	t.outcomes = append(t.outcomes, o)
}

// Identical asserts structural equality between expected and actual: same
// type, same length, same element values, no coercion. Sequences of
// different lengths never compare equal regardless of shared prefix.
func (t *T) Identical(expected, actual any) bool {
	desc, ok := mismatch(expected, actual)
	t.Record(domain.Outcome{
		Check:    "identical",
		Expected: formatValue(expected),
		Actual:   formatValue(actual),
		Message:  desc,
		Passed:   ok,
	})
	return ok
}

// True asserts that cond is true. The format string describes the
// expression being checked.
func (t *T) True(cond bool, format string, args ...any) bool {
	msg := ""
	if !cond {
		msg = fmt.Sprintf(format, args...)
	}
	t.Record(domain.Outcome{
		Check:    "true",
		Expected: "true",
		Actual:   fmt.Sprintf("%t", cond),
		Message:  msg,
		Passed:   cond,
	})
	return cond
}

// Approx asserts that actual is within tol of expected (absolute
// difference). NaN never compares approximately equal to anything.
func (t *T) Approx(expected, actual, tol float64) bool {
	diff := math.Abs(expected - actual)
	ok := diff <= tol
	msg := ""
	if !ok {
		msg = fmt.Sprintf("|%v - %v| = %v exceeds tolerance %v", expected, actual, diff, tol)
	}
	t.Record(domain.Outcome{
		Check:    "approx",
		Expected: formatValue(expected),
		Actual:   formatValue(actual),
		Message:  msg,
		Passed:   ok,
	})
	return ok
}

// ApproxSlice asserts element-wise approximate equality. A length mismatch
// fails before any element is compared.
func (t *T) ApproxSlice(expected, actual []float64, tol float64) bool {
	ok := true
	msg := ""
	if len(expected) != len(actual) {
		ok = false
		msg = fmt.Sprintf("length mismatch: %d vs %d", len(expected), len(actual))
	} else {
		for i := range expected {
			if math.Abs(expected[i]-actual[i]) > tol {
				ok = false
				msg = fmt.Sprintf("mismatch at index %d: %v vs %v (tolerance %v)", i, expected[i], actual[i], tol)
				break
			}
		}
	}
	t.Record(domain.Outcome{
		Check:    "approx",
		Expected: formatValue(expected),
		Actual:   formatValue(actual),
		Message:  msg,
		Passed:   ok,
	})
	return ok
}

// Raises asserts that fn fails with the target kind (errors.Is). A normal
// return fails, as does an error of a different kind. A recovered panic
// matches only when the target is ErrPanic.
func (t *T) Raises(fn func() error, target error) bool {
	var err error
	panicked := false
	panicText := ""
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicked = true
				panicText = fmt.Sprintf("%v", r)
			}
		}()
		err = fn()
	}()

	ok := false
	actual := "no error"
	msg := ""
	switch {
	case panicked:
		actual = "panic: " + panicText
		ok = errors.Is(ErrPanic, target)
		if !ok {
			msg = fmt.Sprintf("expected error kind %q, got panic: %s", target, panicText)
		}
	case err != nil:
		actual = err.Error()
		ok = errors.Is(err, target)
		if !ok {
			msg = fmt.Sprintf("expected error kind %q, got %q", target, err)
		}
	default:
		msg = fmt.Sprintf("expected error kind %q, but call returned normally", target)
	}
	t.Record(domain.Outcome{
		Check:    "raises",
		Expected: target.Error(),
		Actual:   actual,
		Message:  msg,
		Passed:   ok,
	})
	return ok
}

// Warns asserts that fn records at least one warning on the collector and
// returns without panicking.
func (t *T) Warns(fn func(*Warnings)) bool {
	w := &Warnings{}
	panicked := false
	panicText := ""
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicked = true
				panicText = fmt.Sprintf("%v", r)
			}
		}()
		fn(w)
	}()

	ok := !panicked && len(w.msgs) > 0
	actual := fmt.Sprintf("%d warning(s)", len(w.msgs))
	msg := ""
	if panicked {
		actual = "panic: " + panicText
		msg = "expected a warning, but call panicked: " + panicText
	} else if len(w.msgs) == 0 {
		msg = "expected at least one warning, got none"
	}
	t.Record(domain.Outcome{
		Check:    "warns",
		Expected: "at least one warning",
		Actual:   actual,
		Message:  msg,
		Passed:   ok,
	})
	return ok
}

// Warnings collects warning-level diagnostics from a function under test.
type Warnings struct {
	msgs []string
}

// Warnf records one warning.
func (w *Warnings) Warnf(format string, args ...any) {
	if w == nil {
		return
	}
	w.msgs = append(w.msgs, fmt.Sprintf(format, args...))
}

// Messages returns the recorded warnings in order.
func (w *Warnings) Messages() []string {
	if w == nil {
		return nil
	}
	return w.msgs
}
