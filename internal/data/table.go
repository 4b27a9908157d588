// Package data holds the tabular input of a plot: named float columns in
// which NaN marks a non-numeric cell.
package data

import (
	"math"

	"plotnav/internal/errs"
)

// Table is a column-oriented table of float64 values.
type Table struct {
	names []string
	cols  [][]float64
}

// NewTable returns an empty table with the given column names.
func NewTable(names ...string) *Table {
	t := &Table{
		names: append([]string(nil), names...),
		cols:  make([][]float64, len(names)),
	}
	return t
}

// Add appends one row. It must have one value per column.
func (t *Table) Add(values ...float64) error {
	if len(values) != len(t.cols) {
		return errs.Invalid("row has %d values, table has %d columns", len(values), len(t.cols))
	}
	for i, v := range values {
		t.cols[i] = append(t.cols[i], v)
	}
	return nil
}

func (t *Table) ColumnCount() int { return len(t.cols) }

func (t *Table) RowCount() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0])
}

// Name returns the name of column col.
func (t *Table) Name(col int) string { return t.names[col] }

// Names returns a copy of all column names.
func (t *Table) Names() []string { return append([]string(nil), t.names...) }

// Get returns the cell at (col, row), NaN when out of range.
func (t *Table) Get(col, row int) float64 {
	if col < 0 || col >= len(t.cols) || row < 0 || row >= len(t.cols[col]) {
		return math.NaN()
	}
	return t.cols[col][row]
}

// Row returns a copy of row i.
func (t *Table) Row(i int) []float64 {
	r := make([]float64, len(t.cols))
	for c := range t.cols {
		r[c] = t.Get(c, i)
	}
	return r
}

// Column returns column i. The result shares storage with t.
func (t *Table) Column(i int) Column { return Column(t.cols[i]) }

// Numeric reports whether v is a usable number: neither NaN nor infinite.
func Numeric(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Enumerate returns a copy of src with a leading "index" column holding
// each row's index.
func Enumerate(src *Table) *Table {
	out := NewTable(append([]string{"index"}, src.names...)...)
	for r := 0; r < src.RowCount(); r++ {
		_ = out.Add(append([]float64{float64(r)}, src.Row(r)...)...)
	}
	return out
}
