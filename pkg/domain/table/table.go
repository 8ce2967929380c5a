package table

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Table is an in-memory worksheet: a header row plus raw cell values.
// Rows may be shorter than the header; absent cells read as missing.
type Table struct {
	Columns []string
	Rows    [][]string
	index   map[string]int
}

// New creates a Table. When a header repeats, the first occurrence wins.
func New(columns []string, rows [][]string) *Table {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		name := strings.TrimSpace(c)
		if name == "" {
			continue
		}
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	return &Table{Columns: columns, Rows: rows, index: index}
}

// Len returns the number of data rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// Has reports whether the table has the named column
func (t *Table) Has(col string) bool {
	_, ok := t.index[col]
	return ok
}

// Head returns a table sharing the first n rows. n <= 0 means all rows.
func (t *Table) Head(n int) *Table {
	if n <= 0 || n >= len(t.Rows) {
		return t
	}
	return &Table{Columns: t.Columns, Rows: t.Rows[:n], index: t.index}
}

// Filter returns a table with the rows for which keep returns true
func (t *Table) Filter(keep func(row int) bool) *Table {
	var rows [][]string
	for i, r := range t.Rows {
		if keep(i) {
			rows = append(rows, r)
		}
	}
	return &Table{Columns: t.Columns, Rows: rows, index: t.index}
}

// Str returns the cell value. Absent columns and blank cells are missing.
func (t *Table) Str(row int, col string) (string, bool) {
	i, ok := t.index[col]
	if !ok || row < 0 || row >= len(t.Rows) {
		return "", false
	}
	r := t.Rows[row]
	if i >= len(r) {
		return "", false
	}
	v := strings.TrimSpace(r[i])
	if v == "" {
		return "", false
	}
	return v, true
}

// Float returns the cell as a finite number
func (t *Table) Float(row int, col string) (float64, bool) {
	s, ok := t.Str(row, col)
	if !ok {
		return 0, false
	}
	return parseFloat(s)
}

// Time returns the cell as a date. Excel serial numbers and the common
// textual layouts are accepted.
func (t *Table) Time(row int, col string) (time.Time, bool) {
	s, ok := t.Str(row, col)
	if !ok {
		return time.Time{}, false
	}
	return parseTime(s)
}

// Coalesce returns the first non-missing value among cols for the row
func (t *Table) Coalesce(row int, cols ...string) (string, bool) {
	for _, c := range cols {
		if v, ok := t.Str(row, c); ok {
			return v, true
		}
	}
	return "", false
}

// Floats returns every numeric value in the column, in row order
func (t *Table) Floats(col string) []float64 {
	var out []float64
	for i := range t.Rows {
		if v, ok := t.Float(i, col); ok {
			out = append(out, v)
		}
	}
	return out
}

// Distinct returns up to limit distinct non-missing values of the column in
// order of first appearance. limit <= 0 means no limit.
func (t *Table) Distinct(col string, limit int) []string {
	seen := make(map[string]bool)
	var out []string
	for i := range t.Rows {
		v, ok := t.Str(i, col)
		if !ok || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"01-02-06",
	"1/2/06 15:04",
	"2006/1/2",
	"2-Jan-2006",
	"2-Jan-06",
	"January 2, 2006",
	"Jan 2, 2006",
}

func parseTime(s string) (time.Time, bool) {
	if serial, ok := parseFloat(s); ok {
		if serial <= 0 {
			return time.Time{}, false
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
