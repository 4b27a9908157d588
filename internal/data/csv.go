package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// LoadCSV reads a comma separated table. The first record is taken as a
// header when any of its non-empty cells is not a number; otherwise columns are
// named col1, col2, ... Cells that are not finite numbers become NaN and
// short records are padded with NaN.
func LoadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "csv")
	}
	if len(recs) == 0 {
		return nil, errors.New("csv: empty input")
	}
	width := 0
	for _, rec := range recs {
		if len(rec) > width {
			width = len(rec)
		}
	}
	header := recs[0]
	hasHeader := false
	for _, h := range header {
		if strings.TrimSpace(h) == "" {
			continue
		}
		if _, err := parseCell(h); err != nil {
			hasHeader = true
			break
		}
	}
	names := make([]string, width)
	for i := range names {
		if hasHeader && i < len(header) && strings.TrimSpace(header[i]) != "" {
			names[i] = strings.TrimSpace(header[i])
		} else {
			names[i] = fmt.Sprintf("col%d", i+1)
		}
	}
	body := recs
	if hasHeader {
		body = recs[1:]
	}
	t := NewTable(names...)
	row := make([]float64, width)
	for _, rec := range body {
		for i := range row {
			row[i] = math.NaN()
			if i < len(rec) {
				if v, err := parseCell(rec[i]); err == nil {
					row[i] = v
				}
			}
		}
		if err := t.Add(row...); err != nil {
			return nil, err
		}
	}
	if t.RowCount() == 0 {
		return nil, errors.New("csv: no data rows")
	}
	return t, nil
}

// ReadCSVFile loads the CSV file at path.
func ReadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := LoadCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return t, nil
}

func parseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty cell")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Errorf("non-finite cell %q", s)
	}
	return v, nil
}
