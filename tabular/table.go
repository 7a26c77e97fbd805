// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package tabular provides a small rows-by-named-columns table used to
// present CWMS Data API responses.  It supports the handful of frame
// operations the client needs: flattening nested JSON into dotted
// columns, numeric coercion, row-wise concatenation, and a long-to-wide
// pivot.
package tabular

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
)

// Table is an ordered list of named columns, every column the same
// length.  The zero value is not usable; call New.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]interface{}
}

// New creates an empty table with the given column names, in order.
func New(columns ...string) *Table {
	t := &Table{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
	}
	for i, name := range columns {
		t.index[name] = i
	}
	return t
}

// Columns returns the column names in order.  The caller must not
// modify the returned slice.
func (t *Table) Columns() []string {
	return t.columns
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, present := t.index[name]
	return present
}

// AppendRow adds one row.  The number of cells must match the number
// of columns.
func (t *Table) AppendRow(cells ...interface{}) error {
	if len(cells) != len(t.columns) {
		return fmt.Errorf("tabular: row has %d cells, table has %d columns", len(cells), len(t.columns))
	}
	t.rows = append(t.rows, append([]interface{}(nil), cells...))
	return nil
}

// Row returns the cells of one row, in column order.  The caller must
// not modify the returned slice.
func (t *Table) Row(i int) []interface{} {
	return t.rows[i]
}

// Rows returns every row in order.  The caller must not modify the
// returned slices.
func (t *Table) Rows() [][]interface{} {
	return t.rows
}

// Cell returns the value at a row and named column.
func (t *Table) Cell(row int, column string) (interface{}, bool) {
	i, present := t.index[column]
	if !present || row < 0 || row >= len(t.rows) {
		return nil, false
	}
	return t.rows[row][i], true
}

// SetCell replaces the value at a row and named column.
func (t *Table) SetCell(row int, column string, value interface{}) bool {
	i, present := t.index[column]
	if !present || row < 0 || row >= len(t.rows) {
		return false
	}
	t.rows[row][i] = value
	return true
}

// Column returns all values of the named column, in row order.
func (t *Table) Column(name string) ([]interface{}, bool) {
	i, present := t.index[name]
	if !present {
		return nil, false
	}
	values := make([]interface{}, len(t.rows))
	for r, row := range t.rows {
		values[r] = row[i]
	}
	return values, true
}

// Select returns a new table containing only the named columns, in the
// given order.  Unknown names are an error.
func (t *Table) Select(columns ...string) (*Table, error) {
	indices := make([]int, len(columns))
	for i, name := range columns {
		idx, present := t.index[name]
		if !present {
			return nil, fmt.Errorf("tabular: no column %q", name)
		}
		indices[i] = idx
	}
	out := New(columns...)
	for _, row := range t.rows {
		cells := make([]interface{}, len(indices))
		for i, idx := range indices {
			cells[i] = row[idx]
		}
		out.rows = append(out.rows, cells)
	}
	return out, nil
}

// WithColumn returns a new table with an extra column appended, every
// cell holding the same value.  Used to tag a table with its source.
func (t *Table) WithColumn(name string, value interface{}) *Table {
	out := New(append(append([]string(nil), t.columns...), name)...)
	for _, row := range t.rows {
		out.rows = append(out.rows, append(append([]interface{}(nil), row...), value))
	}
	return out
}

// ToNumeric coerces every value in the named column to float64.  Nil
// cells are left nil.  A value that cannot be interpreted as a number
// is an error and leaves the table unmodified.
func (t *Table) ToNumeric(column string) error {
	i, present := t.index[column]
	if !present {
		return fmt.Errorf("tabular: no column %q", column)
	}
	coerced := make([]interface{}, len(t.rows))
	for r, row := range t.rows {
		if row[i] == nil {
			continue
		}
		f, err := ToFloat(row[i])
		if err != nil {
			return fmt.Errorf("tabular: column %q row %d: %v", column, r, err)
		}
		coerced[r] = f
	}
	for r := range t.rows {
		if coerced[r] != nil {
			t.rows[r][i] = coerced[r]
		}
	}
	return nil
}

// ToFloat interprets a single JSON-decoded value as a float64.
func ToFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot coerce %q to a number", n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("cannot coerce %T to a number", v)
	}
}

// String renders the table as aligned text, one line per row.
func (t *Table) String() string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(t.columns, "\t"))
	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = formatCell(cell)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()
	return b.String()
}

func formatCell(cell interface{}) string {
	switch c := cell.(type) {
	case nil:
		return ""
	case time.Time:
		return c.UTC().Format(time.RFC3339)
	case string:
		return c
	default:
		return fmt.Sprintf("%v", c)
	}
}

// sortKey produces an ordering key for pivot indexes.  Times sort
// chronologically, numbers numerically, everything else by its string
// form.
func sortKey(v interface{}) (group int, num float64, str string) {
	switch k := v.(type) {
	case time.Time:
		return 0, float64(k.UnixNano()), ""
	case float64:
		return 1, k, ""
	case int64:
		return 1, float64(k), ""
	case uint64:
		return 1, float64(k), ""
	case string:
		return 2, 0, k
	default:
		return 3, 0, fmt.Sprintf("%v", k)
	}
}

func lessValues(a, b interface{}) bool {
	ga, na, sa := sortKey(a)
	gb, nb, sb := sortKey(b)
	if ga != gb {
		return ga < gb
	}
	if na != nb {
		return na < nb
	}
	return sa < sb
}

func sortValues(values []interface{}) {
	sort.SliceStable(values, func(i, j int) bool {
		return lessValues(values[i], values[j])
	})
}
