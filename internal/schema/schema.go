// Package schema defines the static field descriptors for the Camtrap DP
// resources. Each resource has a fixed, ordered field list that determines
// column order in the delimited-text serialization; the descriptors here are
// the single source of truth for that order and for each field's type and
// controlled vocabulary.
package schema

// FieldType represents the declared data type of a resource field.
type FieldType int

const (
	FieldText FieldType = iota
	FieldEnum
	FieldFloat
	FieldInt
	FieldBool
)

// String returns a human-readable name for a field type.
func (ft FieldType) String() string {
	switch ft {
	case FieldText:
		return "text"
	case FieldEnum:
		return "enum"
	case FieldFloat:
		return "float"
	case FieldInt:
		return "integer"
	case FieldBool:
		return "boolean"
	default:
		return "value"
	}
}

// FieldSpec describes a single resource field.
type FieldSpec struct {
	Name     string    // Column header name, exactly as serialized
	Type     FieldType // Declared data type
	Required bool      // Required fields must be non-empty in valid packages
	Enum     []string  // Controlled vocabulary for FieldEnum fields
}

// Schema is the ordered field list of one resource.
type Schema struct {
	Resource string
	Fields   []FieldSpec
}

// Names returns the field names in declared order.
func (s Schema) Names() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Index maps field names to their declared position.
func (s Schema) Index() map[string]int {
	idx := make(map[string]int, len(s.Fields))
	for i, f := range s.Fields {
		idx[f.Name] = i
	}
	return idx
}

// Field returns the spec for the named field.
func (s Schema) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}
