package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentical_Reflexive(t *testing.T) {
	values := []any{
		nil,
		0,
		42,
		-1.5,
		"hello",
		true,
		[]int{1, 2, 3},
		[]string{},
		[]float64{1.5, 2.5},
		map[string]int{"a": 1, "b": 2},
		struct{ X, Y float64 }{3, 4},
		[][]int{{1}, {2, 3}},
	}

	for _, v := range values {
		ct := NewT()
		assert.True(t, ct.Identical(v, v), "Identical(%#v, %#v) must pass", v, v)
	}
}

func TestIdentical_LengthMismatch(t *testing.T) {
	ct := NewT()
	ok := ct.Identical([]int{1, 2, 3}, []int{1, 2, 3, 4})

	assert.False(t, ok, "shared prefix must not make sequences of different lengths equal")
	outcomes := ct.Outcomes()
	assert.Len(t, outcomes, 1)
	assert.Contains(t, outcomes[0].Message, "length mismatch: 3 vs 4")
}

func TestIdentical_NoCoercion(t *testing.T) {
	tests := []struct {
		name     string
		expected any
		actual   any
	}{
		{"int vs int64", int(1), int64(1)},
		{"int vs float64", 1, 1.0},
		{"string vs bytes", "a", []byte("a")},
		{"bool vs int", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct := NewT()
			assert.False(t, ct.Identical(tt.expected, tt.actual))
			assert.Contains(t, ct.Outcomes()[0].Message, "type mismatch")
		})
	}
}

func TestIdentical_ElementMismatch(t *testing.T) {
	ct := NewT()
	assert.False(t, ct.Identical([]string{"A", "B", "C"}, []string{"A", "X", "C"}))
	assert.Contains(t, ct.Outcomes()[0].Message, "mismatch at index 1")
}

func TestIdentical_NilAndEmptySlicesAreEqual(t *testing.T) {
	ct := NewT()
	assert.True(t, ct.Identical([]float64{}, []float64(nil)))
	assert.True(t, ct.Identical([]float64(nil), []float64{}))
}

func TestIdentical_Maps(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		ct := NewT()
		assert.False(t, ct.Identical(map[string]int{"a": 1}, map[string]int{"b": 1}))
	})

	t.Run("different value", func(t *testing.T) {
		ct := NewT()
		assert.False(t, ct.Identical(map[string]int{"a": 1}, map[string]int{"a": 2}))
	})

	t.Run("different size", func(t *testing.T) {
		ct := NewT()
		assert.False(t, ct.Identical(map[string]int{"a": 1}, map[string]int{"a": 1, "b": 2}))
		assert.Contains(t, ct.Outcomes()[0].Message, "length mismatch")
	})
}

func TestIdentical_Structs(t *testing.T) {
	type point struct{ X, Y float64 }

	ct := NewT()
	assert.False(t, ct.Identical(point{1, 2}, point{1, 3}))
	assert.Contains(t, ct.Outcomes()[0].Message, "field Y")
}

func TestIdentical_NilVersusValue(t *testing.T) {
	ct := NewT()
	assert.False(t, ct.Identical(nil, 1))
	ct = NewT()
	assert.False(t, ct.Identical(1, nil))
}

func TestFormatValue_Truncates(t *testing.T) {
	long := make([]int, 200)
	s := formatValue(long)
	assert.LessOrEqual(t, len(s), maxRendered+3)
}
