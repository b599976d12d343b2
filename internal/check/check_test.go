package check

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrue(t *testing.T) {
	ct := NewT()
	assert.True(t, ct.True(1 < 2, "one is less than two"))
	assert.False(t, ct.True(2 < 1, "two is less than one"))

	outcomes := ct.Outcomes()
	require.Len(t, outcomes, 2)
	assert.True(t, outcomes[0].Passed)
	assert.Empty(t, outcomes[0].Message)
	assert.False(t, outcomes[1].Passed)
	assert.Equal(t, "two is less than one", outcomes[1].Message)
}

func TestApprox(t *testing.T) {
	tests := []struct {
		name     string
		expected float64
		actual   float64
		tol      float64
		passes   bool
	}{
		{"within tolerance", 1.4142135, 1.41421356, 1e-6, true},
		{"exact with zero tolerance", 5, 5, 0, true},
		{"outside tolerance", 1.0, 1.1, 1e-3, false},
		{"nan never approximates", 1.0, nan(), 1e9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct := NewT()
			assert.Equal(t, tt.passes, ct.Approx(tt.expected, tt.actual, tt.tol))
		})
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestApproxSlice(t *testing.T) {
	t.Run("element-wise within tolerance", func(t *testing.T) {
		ct := NewT()
		assert.True(t, ct.ApproxSlice([]float64{1, 2, 3}, []float64{1.0000001, 2, 3}, 1e-6))
	})

	t.Run("length mismatch fails before elements", func(t *testing.T) {
		ct := NewT()
		assert.False(t, ct.ApproxSlice([]float64{1, 2, 3}, []float64{1, 2}, 1e9))
		assert.Contains(t, ct.Outcomes()[0].Message, "length mismatch: 3 vs 2")
	})

	t.Run("element outside tolerance names the index", func(t *testing.T) {
		ct := NewT()
		assert.False(t, ct.ApproxSlice([]float64{1, 2, 3}, []float64{1, 9, 3}, 1e-6))
		assert.Contains(t, ct.Outcomes()[0].Message, "index 1")
	})
}

func TestRaises(t *testing.T) {
	errArith := errors.New("arithmetic error")

	t.Run("matching kind passes", func(t *testing.T) {
		ct := NewT()
		assert.True(t, ct.Raises(func() error { return errArith }, errArith))
	})

	t.Run("wrapped kind passes", func(t *testing.T) {
		ct := NewT()
		assert.True(t, ct.Raises(func() error {
			return fmt.Errorf("division: %w", errArith)
		}, errArith))
	})

	t.Run("normal return fails", func(t *testing.T) {
		ct := NewT()
		assert.False(t, ct.Raises(func() error { return nil }, errArith))
		assert.Contains(t, ct.Outcomes()[0].Message, "returned normally")
	})

	t.Run("different kind fails", func(t *testing.T) {
		ct := NewT()
		assert.False(t, ct.Raises(func() error { return errors.New("io error") }, errArith))
	})

	t.Run("panic matches only ErrPanic", func(t *testing.T) {
		ct := NewT()
		assert.True(t, ct.Raises(func() error { panic("boom") }, ErrPanic))

		ct = NewT()
		assert.False(t, ct.Raises(func() error { panic("boom") }, errArith))
	})
}

func TestWarns(t *testing.T) {
	t.Run("warning recorded passes", func(t *testing.T) {
		ct := NewT()
		assert.True(t, ct.Warns(func(w *Warnings) {
			w.Warnf("lengths differ: %d vs %d", 3, 2)
		}))
	})

	t.Run("no warning fails", func(t *testing.T) {
		ct := NewT()
		assert.False(t, ct.Warns(func(w *Warnings) {}))
		assert.Contains(t, ct.Outcomes()[0].Message, "got none")
	})

	t.Run("panic fails", func(t *testing.T) {
		ct := NewT()
		assert.False(t, ct.Warns(func(w *Warnings) { panic("boom") }))
	})
}

func TestWarnings_NilReceiverIsSafe(t *testing.T) {
	var w *Warnings
	w.Warnf("ignored")
	assert.Nil(t, w.Messages())
}

func TestOutcomesAreRecordedInOrder(t *testing.T) {
	ct := NewT()
	ct.True(true, "first")
	ct.Identical(1, 2)
	ct.Approx(1, 1, 0)

	outcomes := ct.Outcomes()
	require.Len(t, outcomes, 3)
	assert.Equal(t, "true", outcomes[0].Check)
	assert.Equal(t, "identical", outcomes[1].Check)
	assert.Equal(t, "approx", outcomes[2].Check)
}
