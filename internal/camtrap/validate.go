package camtrap

// validate.go provides report-style validation: instead of failing on the
// first bad cell the way the typed constructors do, it walks every row and
// collects all problems with their line numbers. Structural problems (bad
// header, wrong field count) still fail the whole call, since no per-row
// report is meaningful without a usable header.

import (
	"errors"
	"io"
)

// RowError is one validation finding, located by source line.
type RowError struct {
	Line    int    `json:"line"`
	Field   string `json:"field,omitempty"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// Report summarizes the validation of one delimited-text source.
type Report struct {
	Resource  string     `json:"resource"`
	TotalRows int        `json:"totalRows"`
	ValidRows int        `json:"validRows"`
	Errors    []RowError `json:"errors,omitempty"`
}

// Valid reports whether every row passed.
func (rep *Report) Valid() bool {
	return len(rep.Errors) == 0
}

// Validate checks every row of r against the resource's field specs and
// returns all findings. Unlike the read operations, required-but-empty text
// fields are reported here: a package with blank IDs round-trips fine but is
// not publishable.
func (res Resource) Validate(r io.Reader) (*Report, error) {
	rows, err := readRows(r, res.Schema)
	if err != nil {
		return nil, err
	}

	rep := &Report{Resource: res.Name, TotalRows: len(rows)}
	for i, row := range rows {
		line := i + 2 // 1-based, after the header
		ok := true
		for j, spec := range res.Schema.Fields {
			if err := validateCell(row[j], spec); err != nil {
				ok = false
				var ve *ValueError
				if errors.As(err, &ve) {
					rep.Errors = append(rep.Errors, RowError{
						Line:    line,
						Field:   ve.Field,
						Value:   ve.Value,
						Message: ve.Message,
					})
				} else {
					rep.Errors = append(rep.Errors, RowError{Line: line, Message: err.Error()})
				}
			}
		}
		if ok {
			rep.ValidRows++
		}
	}
	return rep, nil
}
