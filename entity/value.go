package entity

// FieldType is the semantic type of a filterable field.
type FieldType string

const (
	Text   FieldType = "text"
	Number FieldType = "number"
	Enum   FieldType = "enum"
)

// FieldValue is one move field resolved for filtering and sorting: the
// display string, the numeric reading when the field has one, and the
// field's declared type.
type FieldValue struct {
	Str  string
	Num  *float64
	Type FieldType
}

// StrValue wraps a text-ish value.
func StrValue(s string, typ FieldType) FieldValue {
	return FieldValue{Str: s, Type: typ}
}

// NumValue wraps a possibly-absent numeric value, keeping the display string.
func NumValue(s string, n *float64) FieldValue {
	return FieldValue{Str: s, Num: n, Type: Number}
}
