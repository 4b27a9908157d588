package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"plotnav/internal/data"
)

var statKinds = []data.Stat{data.Count, data.Min, data.Quartile1, data.Median, data.Quartile3, data.Max, data.Mean}

// refreshTable rebuilds the table for the current mode and dataset.
func (m *Model) refreshTable() {
	var cols []string
	var rows [][]string
	switch m.tableMode {
	case tableStats:
		cols, rows = buildStats(m.raw)
	case tableRows:
		cols, rows = buildRows(m.raw)
	}
	// If there are no columns or rows, hide the table to avoid rendering panics
	if len(cols) == 0 || len(rows) == 0 {
		m.tableMode = tableHidden
		m.setStatus("no data for current dataset", nil)
		return
	}
	maxColW := 16
	tcols := make([]table.Column, 0, len(cols))
	for i, c := range cols {
		w := len(c) + 2
		for _, r := range rows {
			w = max(w, len(r[i])+1)
		}
		tcols = append(tcols, table.Column{Title: c, Width: min(w, maxColW)})
	}
	trows := make([]table.Row, len(rows))
	for i, r := range rows {
		trows[i] = table.Row(r)
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

// buildStats returns one row of summary statistics per column of t.
func buildStats(t *data.Table) ([]string, [][]string) {
	if t == nil {
		return nil, nil
	}
	cols := []string{"column"}
	for _, k := range statKinds {
		cols = append(cols, k.String())
	}
	rows := make([][]string, 0, t.ColumnCount())
	for c := 0; c < t.ColumnCount(); c++ {
		col := t.Column(c)
		row := []string{t.Name(c)}
		for _, k := range statKinds {
			row = append(row, formatValue(col.Statistic(k)))
		}
		rows = append(rows, row)
	}
	return cols, rows
}

// buildRows returns the data of t with a leading row index.
func buildRows(t *data.Table) ([]string, [][]string) {
	if t == nil {
		return nil, nil
	}
	e := data.Enumerate(t)
	rows := make([][]string, 0, e.RowCount())
	for i := 0; i < e.RowCount(); i++ {
		r := e.Row(i)
		vals := make([]string, len(r))
		for j, v := range r {
			vals[j] = formatValue(v)
		}
		rows = append(rows, vals)
	}
	return e.Names(), rows
}

func (m *Model) toggleTable(mode tableMode) {
	if m.tableMode == mode {
		m.tableMode = tableHidden
		return
	}
	m.tableMode = mode
	m.refreshTable()
	if m.tableMode != tableHidden {
		m.setStatus(fmt.Sprintf("%d rows", len(m.tbl.Rows())), nil)
	}
}
