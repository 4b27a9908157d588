package data

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plotnav/internal/errs"
)

func TestTableBasics(t *testing.T) {
	tbl := NewTable("a", "b")
	require.NoError(t, tbl.Add(1, 2))
	require.NoError(t, tbl.Add(3, math.NaN()))
	assert.ErrorIs(t, tbl.Add(1), errs.ErrInvalidParameter)

	assert.Equal(t, 2, tbl.ColumnCount())
	assert.Equal(t, 2, tbl.RowCount())
	assert.Equal(t, "b", tbl.Name(1))
	assert.Equal(t, 3.0, tbl.Get(0, 1))
	assert.True(t, math.IsNaN(tbl.Get(1, 1)))
	assert.True(t, math.IsNaN(tbl.Get(5, 0)), "out of range reads as non-numeric")
	assert.Equal(t, []float64{1, 2}, tbl.Row(0))
}

func TestStatistics(t *testing.T) {
	col := Column{5, 1, math.NaN(), 4, 2, 3}
	assert.Equal(t, 1.0, col.Statistic(Min))
	assert.Equal(t, 5.0, col.Statistic(Max))
	assert.InDelta(t, 3.0, col.Statistic(Median), 1e-12)
	assert.Equal(t, 3.0, col.Statistic(Mean))
	assert.Equal(t, 5.0, col.Statistic(Count))

	q1, q3 := col.Statistic(Quartile1), col.Statistic(Quartile3)
	assert.True(t, q1 > 1 && q1 < 3, "q1 = %v", q1)
	assert.True(t, q3 > 3 && q3 < 5, "q3 = %v", q3)

	empty := Column{math.NaN()}
	assert.True(t, math.IsNaN(empty.Statistic(Median)))
	assert.Equal(t, 0.0, empty.Statistic(Count))
	assert.Equal(t, "q3", Quartile3.String())
}

func TestBoxData(t *testing.T) {
	src := NewTable("x", "y")
	for i := 1; i <= 5; i++ {
		require.NoError(t, src.Add(float64(i), float64(10*i)))
	}
	box, err := BoxData(src)
	require.NoError(t, err)
	assert.Equal(t, 2, box.RowCount())
	assert.Equal(t, 6, box.ColumnCount())

	row := box.Row(1)
	assert.Equal(t, 2.0, row[ColPosition])
	assert.InDelta(t, 30.0, row[ColCenter], 1e-9)
	assert.Equal(t, 10.0, row[ColBottom])
	assert.Equal(t, 50.0, row[ColTop])
	assert.True(t, row[ColBottom] <= row[ColBoxBottom] && row[ColBoxBottom] <= row[ColCenter])
	assert.True(t, row[ColCenter] <= row[ColBoxTop] && row[ColBoxTop] <= row[ColTop])

	_, err = BoxData(nil)
	assert.ErrorIs(t, err, errs.ErrMissingCollaborator)
}

func TestEnumerate(t *testing.T) {
	src := NewTable("v")
	require.NoError(t, src.Add(7))
	require.NoError(t, src.Add(9))
	e := Enumerate(src)
	assert.Equal(t, []string{"index", "v"}, e.Names())
	assert.Equal(t, []float64{0, 7}, e.Row(0))
	assert.Equal(t, []float64{1, 9}, e.Row(1))
}

func TestLoadCSV(t *testing.T) {
	in := "# sample\nlatency, size\n1.5, 10\nn/a, 20\n3\n"
	tbl, err := LoadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"latency", "size"}, tbl.Names())
	assert.Equal(t, 3, tbl.RowCount())
	assert.Equal(t, 1.5, tbl.Get(0, 0))
	assert.True(t, math.IsNaN(tbl.Get(0, 1)))
	assert.True(t, math.IsNaN(tbl.Get(1, 2)), "short rows are padded")

	tbl, err = LoadCSV(strings.NewReader("1,2\n3,4\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"col1", "col2"}, tbl.Names())
	assert.Equal(t, 2, tbl.RowCount())

	_, err = LoadCSV(strings.NewReader(""))
	assert.Error(t, err)
	_, err = LoadCSV(strings.NewReader("a,b\n"))
	assert.Error(t, err)
}

func TestLoadCSVNonFinite(t *testing.T) {
	tbl, err := LoadCSV(strings.NewReader("a,b\n1,4\n2,inf\n3,-Infinity\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tbl.Names())
	assert.True(t, math.IsNaN(tbl.Get(1, 1)))
	assert.True(t, math.IsNaN(tbl.Get(1, 2)))
	assert.Equal(t, 4.0, tbl.Column(1).Statistic(Max))

	assert.False(t, Numeric(math.Inf(1)))
	assert.False(t, Numeric(math.Inf(-1)))
	assert.True(t, Numeric(0))

	col := Column{1, math.Inf(1), 3, math.Inf(-1)}
	assert.Equal(t, 2.0, col.Statistic(Count))
	assert.Equal(t, 1.0, col.Statistic(Min))
	assert.Equal(t, 3.0, col.Statistic(Max))
}

func TestReadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("a\n1\n2\n"), 0o644))
	tbl, err := ReadCSVFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.RowCount())

	_, err = ReadCSVFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
