package camtrap

import "fmt"

// FormatError reports a structural problem in the input: a header that does
// not match the declared field set, a row with the wrong number of fields, or
// a table missing a required column.
type FormatError struct {
	Resource string // Resource the input was parsed as
	Line     int    // 1-based line in the source, 0 when not applicable
	Message  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", e.Resource, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Resource, e.Message)
}

// ValueError reports a cell value that cannot be coerced to its declared
// type: non-numeric text in a numeric field, an unrecognized boolean form, or
// a value outside a controlled vocabulary.
type ValueError struct {
	Field   string // Field/column name
	Value   string // The offending value
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %q: %s", e.Field, e.Value, e.Message)
}
