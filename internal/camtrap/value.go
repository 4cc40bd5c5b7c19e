package camtrap

// value.go provides cell-level coercion between the textual serialization and
// typed field values.
//
// The parse and format helpers are strict inverses for writer-produced text:
// formatting a parsed value reproduces the input byte for byte. That property
// is what makes the read/write round trip exact.

import (
	"strconv"
	"strings"

	"github.com/camtraplabs/camtrapdp/internal/schema"
)

// parseFloat coerces a required float field.
func parseFloat(field, raw string) (float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ValueError{Field: field, Value: raw, Message: "invalid number format"}
	}
	return f, nil
}

// parseOptFloat coerces an optional float field. Empty input means absent.
func parseOptFloat(field, raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	f, err := parseFloat(field, raw)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// parseOptInt coerces an optional integer field. Empty input means absent.
func parseOptInt(field, raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	i, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &ValueError{Field: field, Value: raw, Message: "invalid integer format"}
	}
	return &i, nil
}

// parseBool coerces a required boolean field. Exactly true/false/True/False
// are accepted; output is always the lowercase form.
func parseBool(field, raw string) (bool, error) {
	switch raw {
	case "true", "True":
		return true, nil
	case "false", "False":
		return false, nil
	default:
		return false, &ValueError{Field: field, Value: raw, Message: "must be true or false"}
	}
}

// parseOptBool coerces an optional boolean field. Empty input means absent.
func parseOptBool(field, raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}
	b, err := parseBool(field, raw)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// parseEnum validates an optional controlled-vocabulary field. Membership is
// exact: vocabulary values are case-sensitive.
func parseEnum(field, raw string, allowed []string) (string, error) {
	if raw == "" {
		return "", nil
	}
	for _, v := range allowed {
		if raw == v {
			return v, nil
		}
	}
	return "", &ValueError{
		Field:   field,
		Value:   raw,
		Message: "value must be one of: " + strings.Join(allowed, ", "),
	}
}

// parseReqEnum validates a required controlled-vocabulary field.
func parseReqEnum(field, raw string, allowed []string) (string, error) {
	if raw == "" {
		return "", &ValueError{Field: field, Value: raw, Message: "required field is empty"}
	}
	return parseEnum(field, raw, allowed)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatOptFloat(p *float64) string {
	if p == nil {
		return ""
	}
	return formatFloat(*p)
}

func formatOptInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func formatOptBool(p *bool) string {
	if p == nil {
		return ""
	}
	return formatBool(*p)
}

// validateCell checks a single cell against its field spec using the same
// coercion rules as the typed constructors. Used by the report-style
// validation path; empty cells are checked only for required fields.
func validateCell(raw string, spec schema.FieldSpec) error {
	if raw == "" {
		if spec.Required {
			return &ValueError{Field: spec.Name, Value: raw, Message: "required field is empty"}
		}
		return nil
	}

	switch spec.Type {
	case schema.FieldFloat:
		_, err := parseFloat(spec.Name, raw)
		return err
	case schema.FieldInt:
		_, err := parseOptInt(spec.Name, raw)
		return err
	case schema.FieldBool:
		_, err := parseBool(spec.Name, raw)
		return err
	case schema.FieldEnum:
		_, err := parseEnum(spec.Name, raw, spec.Enum)
		return err
	}
	return nil
}
