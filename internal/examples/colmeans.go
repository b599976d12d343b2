package examples

import (
	"errors"

	"utr/internal/check"
	"utr/internal/suite"
)

// ErrNoValues is returned when a mean is requested over zero values.
var ErrNoValues = errors.New("mean of zero values")

// Kind tags the closed set of cell value kinds. Branching on the tag keeps
// every case explicit instead of relying on runtime type inspection.
type Kind int

const (
	KindNumber Kind = iota
	KindText
	KindBool
)

// Value is one table cell.
type Value struct {
	kind  Kind
	num   float64
	text  string
	truth bool
}

// Number makes a numeric cell.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Text makes a text cell.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Bool makes a boolean cell.
func Bool(b bool) Value { return Value{kind: KindBool, truth: b} }

// Kind returns the cell's kind tag.
func (v Value) Kind() Kind { return v.kind }

// Num returns the numeric content and whether the cell actually holds a
// number. The capability query, not a coercion.
func (v Value) Num() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Table is a named-column grid of cells.
type Table struct {
	Columns []string
	Rows    [][]Value
}

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrNoValues
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs)), nil
}

// ColumnMeans returns the mean of every fully numeric column. Columns with
// any non-numeric cell are left out rather than guessed at.
func ColumnMeans(tb Table) map[string]float64 {
	means := make(map[string]float64)
	for col, name := range tb.Columns {
		var nums []float64
		numeric := true
		for _, row := range tb.Rows {
			n, ok := row[col].Num()
			if !ok {
				numeric = false
				break
			}
			nums = append(nums, n)
		}
		if !numeric {
			continue
		}
		if m, err := Mean(nums); err == nil {
			means[name] = m
		}
	}
	return means
}

// ColumnMeansCoerced assumes every cell is numeric. Non-numeric cells
// silently contribute zero to the sum while still counting toward the
// denominator, so mixed columns get a mean that looks plausible and is
// wrong.
func ColumnMeansCoerced(tb Table) map[string]float64 {
	means := make(map[string]float64)
	for col, name := range tb.Columns {
		sum := 0.0
		for _, row := range tb.Rows {
			n, _ := row[col].Num()
			sum += n
		}
		if len(tb.Rows) > 0 {
			means[name] = sum / float64(len(tb.Rows))
		}
	}
	return means
}

func sampleTable() Table {
	return Table{
		Columns: []string{"length", "label", "weight"},
		Rows: [][]Value{
			{Number(2), Text("a"), Number(10)},
			{Number(4), Text("b"), Number(20)},
			{Number(6), Text("c"), Number(30)},
		},
	}
}

func registerColMeans(s *suite.Suite) error {
	return registerAll(s,
		suite.Case{Name: "colmeans/numeric-columns-only", Body: func(t *check.T) {
			t.Identical(map[string]float64{"length": 4, "weight": 20}, ColumnMeans(sampleTable()))
		}},
		suite.Case{Name: "colmeans/coercion-invents-a-text-mean", Body: func(t *check.T) {
			// The label column averages to zero because every text cell
			// coerces to zero.
			t.Identical(map[string]float64{"length": 4, "label": 0, "weight": 20}, ColumnMeansCoerced(sampleTable()))
		}},
		suite.Case{Name: "colmeans/mean-of-nothing-is-an-error", Body: func(t *check.T) {
			t.Raises(func() error {
				_, err := Mean(nil)
				return err
			}, ErrNoValues)
		}},
		suite.Case{Name: "colmeans/kind-tags-are-queryable", Body: func(t *check.T) {
			_, ok := Text("x").Num()
			t.True(!ok, "text cell must not answer a numeric query")
			n, ok := Number(7).Num()
			t.True(ok, "numeric cell must answer a numeric query")
			t.Approx(7, n, 0)
		}},
	)
}
