package registry

import (
	"strconv"
	"strings"

	"okizeme/entity"
)

// Shape is the input an operator needs from the filter row.
type Shape string

const (
	ShapeNone   Shape = "none"   // no value input
	ShapeSingle Shape = "single" // one value
	ShapeRange  Shape = "range"  // value and value2
	ShapeMulti  Shape = "multi"  // comma-separated list
)

// TestFunc decides whether a resolved field value satisfies a condition.
// Must be pure and total: any field/value combination returns a boolean,
// unparsable numeric input reads as "not numeric" rather than an error.
type TestFunc func(fv entity.FieldValue, value, value2 string) bool

// Operator is one reusable predicate definition.
type Operator struct {
	ID        string
	Label     string
	Shape     Shape
	AppliesTo []entity.FieldType
	Test      TestFunc
}

// Applies reports whether the operator supports a field type.
func (op Operator) Applies(typ entity.FieldType) bool {
	for _, t := range op.AppliesTo {
		if t == typ {
			return true
		}
	}
	return false
}

// Built-in operator ids.
const (
	OpEquals      = "equals"
	OpNotEquals   = "notEquals"
	OpContains    = "contains"
	OpNotContains = "notContains"
	OpStartsWith  = "startsWith"
	OpEndsWith    = "endsWith"
	OpGreater     = "greaterThan"
	OpGreaterEq   = "greaterThanOrEqual"
	OpLess        = "lessThan"
	OpLessEq      = "lessThanOrEqual"
	OpBetween     = "between"
	OpInList      = "inList"
	OpIsEmpty     = "isEmpty"
	OpIsNotEmpty  = "isNotEmpty"
)

var allTypes = []entity.FieldType{entity.Text, entity.Number, entity.Enum}
var textTypes = []entity.FieldType{entity.Text, entity.Enum}
var numberTypes = []entity.FieldType{entity.Number}

// parseNum reads a numeric bound from user input, nil when not numeric.
func parseNum(s string) *float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &n
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// numTest wraps a numeric comparison; false whenever the field has no
// numeric reading or the bound does not parse.
func numTest(cmp func(field, bound float64) bool) TestFunc {
	return func(fv entity.FieldValue, value, _ string) bool {
		bound := parseNum(value)
		if fv.Num == nil || bound == nil {
			return false
		}
		return cmp(*fv.Num, *bound)
	}
}

func equalsTest(fv entity.FieldValue, value, _ string) bool {
	if fv.Type == entity.Number {
		bound := parseNum(value)
		if fv.Num == nil || bound == nil {
			return false
		}
		return *fv.Num == *bound
	}
	return fold(fv.Str) == fold(value)
}

func emptyTest(fv entity.FieldValue, _, _ string) bool {
	if fv.Type == entity.Number {
		return fv.Num == nil
	}
	return strings.TrimSpace(fv.Str) == ""
}

// builtins returns the built-in operator list, ordered for display.
func builtins() []Operator {
	return []Operator{
		{ID: OpEquals, Label: "==", Shape: ShapeSingle, AppliesTo: allTypes, Test: equalsTest},
		{ID: OpNotEquals, Label: "!=", Shape: ShapeSingle, AppliesTo: allTypes,
			Test: func(fv entity.FieldValue, value, value2 string) bool {
				if fv.Type == entity.Number {
					bound := parseNum(value)
					if fv.Num == nil || bound == nil {
						return false
					}
					return *fv.Num != *bound
				}
				return fold(fv.Str) != fold(value)
			}},
		{ID: OpContains, Label: "contains", Shape: ShapeSingle, AppliesTo: textTypes,
			Test: func(fv entity.FieldValue, value, _ string) bool {
				return strings.Contains(fold(fv.Str), fold(value))
			}},
		{ID: OpNotContains, Label: "!contains", Shape: ShapeSingle, AppliesTo: textTypes,
			Test: func(fv entity.FieldValue, value, _ string) bool {
				return !strings.Contains(fold(fv.Str), fold(value))
			}},
		{ID: OpStartsWith, Label: "starts", Shape: ShapeSingle, AppliesTo: textTypes,
			Test: func(fv entity.FieldValue, value, _ string) bool {
				return strings.HasPrefix(fold(fv.Str), fold(value))
			}},
		{ID: OpEndsWith, Label: "ends", Shape: ShapeSingle, AppliesTo: textTypes,
			Test: func(fv entity.FieldValue, value, _ string) bool {
				return strings.HasSuffix(fold(fv.Str), fold(value))
			}},
		{ID: OpGreater, Label: ">", Shape: ShapeSingle, AppliesTo: numberTypes,
			Test: numTest(func(f, b float64) bool { return f > b })},
		{ID: OpGreaterEq, Label: ">=", Shape: ShapeSingle, AppliesTo: numberTypes,
			Test: numTest(func(f, b float64) bool { return f >= b })},
		{ID: OpLess, Label: "<", Shape: ShapeSingle, AppliesTo: numberTypes,
			Test: numTest(func(f, b float64) bool { return f < b })},
		{ID: OpLessEq, Label: "<=", Shape: ShapeSingle, AppliesTo: numberTypes,
			Test: numTest(func(f, b float64) bool { return f <= b })},
		{ID: OpBetween, Label: "between", Shape: ShapeRange, AppliesTo: numberTypes,
			Test: func(fv entity.FieldValue, value, value2 string) bool {
				lo, hi := parseNum(value), parseNum(value2)
				if fv.Num == nil || lo == nil || hi == nil {
					return false
				}
				if *lo > *hi {
					lo, hi = hi, lo
				}
				return *fv.Num >= *lo && *fv.Num <= *hi
			}},
		{ID: OpInList, Label: "in", Shape: ShapeMulti, AppliesTo: allTypes,
			Test: func(fv entity.FieldValue, value, _ string) bool {
				for _, item := range strings.Split(value, ",") {
					if item = strings.TrimSpace(item); item == "" {
						continue
					}
					if equalsTest(fv, item, "") {
						return true
					}
				}
				return false
			}},
		{ID: OpIsEmpty, Label: "empty", Shape: ShapeNone, AppliesTo: allTypes, Test: emptyTest},
		{ID: OpIsNotEmpty, Label: "!empty", Shape: ShapeNone, AppliesTo: allTypes,
			Test: func(fv entity.FieldValue, value, value2 string) bool {
				return !emptyTest(fv, value, value2)
			}},
	}
}
