// Package table provides a minimal in-memory tabular structure: ordered named
// columns and ordered rows of string cells. It is the hand-off format for the
// to-table/from-table conversions and deliberately knows nothing about the
// Camtrap DP schemas.
package table

import "fmt"

// Table holds named columns and ordered rows. Cells are strings; typing is
// the concern of whoever fills or reads the table.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// New creates an empty table with the given column names.
func New(columns ...string) *Table {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		idx[c] = i
	}
	return &Table{
		columns: append([]string(nil), columns...),
		index:   idx,
	}
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// AppendRow adds a row. The number of values must match the column count.
func (t *Table) AppendRow(values ...string) error {
	if len(values) != len(t.columns) {
		return fmt.Errorf("row has %d values, table has %d columns", len(values), len(t.columns))
	}
	t.rows = append(t.rows, append([]string(nil), values...))
	return nil
}

// Row returns a copy of row i.
func (t *Table) Row(i int) []string {
	return append([]string(nil), t.rows[i]...)
}

// Cell returns the value at row i, named column. The second return is false
// when the column does not exist.
func (t *Table) Cell(i int, column string) (string, bool) {
	pos, ok := t.index[column]
	if !ok {
		return "", false
	}
	return t.rows[i][pos], true
}

// Column returns all values of the named column in row order.
func (t *Table) Column(name string) ([]string, bool) {
	pos, ok := t.index[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[pos]
	}
	return out, true
}
