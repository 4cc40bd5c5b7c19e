package table

import (
	"reflect"
	"testing"
)

func TestTableBasics(t *testing.T) {
	tbl := New("id", "name", "count")

	if got := tbl.Columns(); !reflect.DeepEqual(got, []string{"id", "name", "count"}) {
		t.Errorf("Columns() = %v", got)
	}
	if tbl.NumRows() != 0 {
		t.Errorf("NumRows() = %d, want 0", tbl.NumRows())
	}
	if !tbl.HasColumn("name") {
		t.Error("HasColumn(name) = false")
	}
	if tbl.HasColumn("Name") {
		t.Error("HasColumn(Name) = true, column names are case-sensitive")
	}

	if err := tbl.AppendRow("a1", "fox", "2"); err != nil {
		t.Fatalf("AppendRow() error = %v", err)
	}
	if err := tbl.AppendRow("a2", "badger", ""); err != nil {
		t.Fatalf("AppendRow() error = %v", err)
	}
	if tbl.NumRows() != 2 {
		t.Errorf("NumRows() = %d, want 2", tbl.NumRows())
	}

	got, ok := tbl.Cell(1, "name")
	if !ok || got != "badger" {
		t.Errorf("Cell(1, name) = %q, %v, want badger, true", got, ok)
	}
	if _, ok := tbl.Cell(0, "missing"); ok {
		t.Error("Cell(0, missing) ok = true")
	}

	col, ok := tbl.Column("id")
	if !ok || !reflect.DeepEqual(col, []string{"a1", "a2"}) {
		t.Errorf("Column(id) = %v, %v", col, ok)
	}
	if _, ok := tbl.Column("missing"); ok {
		t.Error("Column(missing) ok = true")
	}
}

func TestAppendRowWidthMismatch(t *testing.T) {
	tbl := New("id", "name")

	if err := tbl.AppendRow("a1"); err == nil {
		t.Error("AppendRow with 1 value error = nil, want error")
	}
	if err := tbl.AppendRow("a1", "fox", "extra"); err == nil {
		t.Error("AppendRow with 3 values error = nil, want error")
	}
	if tbl.NumRows() != 0 {
		t.Errorf("NumRows() = %d after rejected appends, want 0", tbl.NumRows())
	}
}

// TestRowReturnsCopy guards against callers mutating table internals through
// returned slices.
func TestRowReturnsCopy(t *testing.T) {
	tbl := New("id", "name")
	if err := tbl.AppendRow("a1", "fox"); err != nil {
		t.Fatalf("AppendRow() error = %v", err)
	}

	row := tbl.Row(0)
	row[0] = "mutated"

	got, _ := tbl.Cell(0, "id")
	if got != "a1" {
		t.Errorf("Cell(0, id) = %q after mutating Row copy, want a1", got)
	}

	cols := tbl.Columns()
	cols[0] = "mutated"
	if !tbl.HasColumn("id") {
		t.Error("HasColumn(id) = false after mutating Columns copy")
	}
}

func TestAppendRowCopiesValues(t *testing.T) {
	tbl := New("id", "name")
	values := []string{"a1", "fox"}
	if err := tbl.AppendRow(values...); err != nil {
		t.Fatalf("AppendRow() error = %v", err)
	}

	values[1] = "mutated"
	got, _ := tbl.Cell(0, "name")
	if got != "fox" {
		t.Errorf("Cell(0, name) = %q after mutating source slice, want fox", got)
	}
}
