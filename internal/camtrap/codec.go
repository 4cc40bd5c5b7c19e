package camtrap

// codec.go implements the shared delimited-text and table plumbing for all
// three resources. Rows handed to the typed constructors are always in the
// schema's declared field order, regardless of the column order of the input.

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/camtraplabs/camtrapdp/internal/schema"
	"github.com/camtraplabs/camtrapdp/internal/table"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripBOM returns a reader with a leading UTF-8 byte-order mark removed.
func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if lead, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(lead, utf8BOM) {
		br.Discard(len(utf8BOM))
	}
	return br
}

// readRows parses delimited text into rows reordered to the schema's declared
// field order. The header must contain exactly the declared field set; every
// data row must have the same field count as the header.
func readRows(r io.Reader, s schema.Schema) ([][]string, error) {
	cr := csv.NewReader(stripBOM(r))

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &FormatError{Resource: s.Resource, Message: "missing header row"}
	}
	if err != nil {
		return nil, asFormatError(s, err)
	}

	order, err := headerOrder(header, s)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, asFormatError(s, err)
		}
		row := make([]string, len(order))
		for i, pos := range order {
			row[i] = rec[pos]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// headerOrder maps each declared field to its position in the header. The
// header must hold exactly the declared field set, in any order.
func headerOrder(header []string, s schema.Schema) ([]int, error) {
	idx := s.Index()
	seen := make([]bool, len(s.Fields))
	order := make([]int, len(s.Fields))

	for pos, name := range header {
		i, ok := idx[name]
		if !ok {
			return nil, &FormatError{
				Resource: s.Resource,
				Line:     1,
				Message:  fmt.Sprintf("unknown column %q", name),
			}
		}
		if seen[i] {
			return nil, &FormatError{
				Resource: s.Resource,
				Line:     1,
				Message:  fmt.Sprintf("duplicate column %q", name),
			}
		}
		seen[i] = true
		order[i] = pos
	}

	for i, ok := range seen {
		if !ok {
			return nil, &FormatError{
				Resource: s.Resource,
				Line:     1,
				Message:  fmt.Sprintf("missing column %q", s.Fields[i].Name),
			}
		}
	}
	return order, nil
}

// asFormatError converts csv parse errors (wrong field count, bad quoting)
// into FormatError; I/O errors pass through unchanged.
func asFormatError(s schema.Schema, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		msg := pe.Err.Error()
		if errors.Is(pe.Err, csv.ErrFieldCount) {
			msg = "row field count does not match header"
		}
		return &FormatError{Resource: s.Resource, Line: pe.Line, Message: msg}
	}
	return err
}

// writeRows serializes rows (already in declared field order) preceded by the
// declared header. Output uses \n line endings and minimal RFC 4180 quoting;
// the destination's previous content is replaced by the caller's choice of
// writer.
func writeRows(w io.Writer, s schema.Schema, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(s.Names()); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// rowsToTable converts ordered rows into a table with one column per declared
// field.
func rowsToTable(s schema.Schema, rows [][]string) *table.Table {
	t := table.New(s.Names()...)
	for _, row := range rows {
		// Row width is guaranteed by construction.
		_ = t.AppendRow(row...)
	}
	return t
}

// rowsFromTable extracts ordered rows from a table keyed by column name.
// Missing optional columns read as empty; a missing required column is a
// FormatError.
func rowsFromTable(t *table.Table, s schema.Schema) ([][]string, error) {
	for _, f := range s.Fields {
		if f.Required && !t.HasColumn(f.Name) {
			return nil, &FormatError{
				Resource: s.Resource,
				Message:  fmt.Sprintf("missing required column %q", f.Name),
			}
		}
	}

	rows := make([][]string, t.NumRows())
	for i := range rows {
		row := make([]string, len(s.Fields))
		for j, f := range s.Fields {
			if v, ok := t.Cell(i, f.Name); ok {
				row[j] = v
			}
		}
		rows[i] = row
	}
	return rows, nil
}
