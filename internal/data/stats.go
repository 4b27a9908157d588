package data

import (
	"math"

	"github.com/aclements/go-moremath/stats"

	"plotnav/internal/errs"
)

// Column is one column of a Table.
type Column []float64

// Stat selects a summary statistic of a column.
type Stat int

const (
	Min Stat = iota
	Max
	Median
	Quartile1
	Quartile3
	Mean
	Count
)

func (s Stat) String() string {
	switch s {
	case Min:
		return "min"
	case Max:
		return "max"
	case Median:
		return "median"
	case Quartile1:
		return "q1"
	case Quartile3:
		return "q3"
	case Mean:
		return "mean"
	case Count:
		return "count"
	}
	return "unknown"
}

// sample returns the numeric cells of c as a sorted sample.
func (c Column) sample() stats.Sample {
	xs := make([]float64, 0, len(c))
	for _, v := range c {
		if Numeric(v) {
			xs = append(xs, v)
		}
	}
	s := stats.Sample{Xs: xs}
	s.Sort()
	return s
}

// Statistic computes kind over the numeric cells of c. Non-numeric cells
// are ignored; a column without numeric cells yields NaN (0 for Count).
func (c Column) Statistic(kind Stat) float64 {
	s := c.sample()
	if kind == Count {
		return float64(len(s.Xs))
	}
	if len(s.Xs) == 0 {
		return math.NaN()
	}
	switch kind {
	case Min:
		min, _ := s.Bounds()
		return min
	case Max:
		_, max := s.Bounds()
		return max
	case Median:
		return s.Quantile(0.5)
	case Quartile1:
		return s.Quantile(0.25)
	case Quartile3:
		return s.Quantile(0.75)
	case Mean:
		return s.Mean()
	}
	return math.NaN()
}

// Box data column layout.
const (
	ColPosition = iota
	ColCenter
	ColBottom
	ColBoxBottom
	ColBoxTop
	ColTop
)

// BoxData summarizes every column of src into one row of
// (position, median, min, first quartile, third quartile, max), where
// position is the 1-based column number.
func BoxData(src *Table) (*Table, error) {
	if src == nil {
		return nil, errs.Missing("no data source to summarize")
	}
	out := NewTable("position", "median", "min", "q1", "q3", "max")
	for c := 0; c < src.ColumnCount(); c++ {
		col := src.Column(c)
		err := out.Add(
			float64(c+1),
			col.Statistic(Median),
			col.Statistic(Min),
			col.Statistic(Quartile1),
			col.Statistic(Quartile3),
			col.Statistic(Max),
		)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
