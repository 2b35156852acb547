package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"okizeme/entity"
)

func num(n float64) entity.FieldValue {
	return entity.FieldValue{Num: &n, Type: entity.Number}
}

func noNum() entity.FieldValue {
	return entity.FieldValue{Type: entity.Number}
}

func text(s string) entity.FieldValue {
	return entity.FieldValue{Str: s, Type: entity.Text}
}

func TestBuiltinOperators(t *testing.T) {

	byID := map[string]Operator{}
	for _, op := range builtins() {
		byID[op.ID] = op
	}

	tests := []struct {
		name   string
		op     string
		fv     entity.FieldValue
		value  string
		value2 string
		want   bool
	}{
		{name: "equals folds case and space", op: OpEquals, fv: text("  KND"), value: "knd", want: true},
		{name: "equals numeric", op: OpEquals, fv: num(-8), value: "-8", want: true},
		{name: "equals numeric absent", op: OpEquals, fv: noNum(), value: "-8", want: false},
		{name: "notEquals text", op: OpNotEquals, fv: text("mid"), value: "low", want: true},
		{name: "notEquals absent number is false not true", op: OpNotEquals, fv: noNum(), value: "5", want: false},
		{name: "contains folds case", op: OpContains, fv: text("236B"), value: "6b", want: true},
		{name: "notContains", op: OpNotContains, fv: text("236B"), value: "K", want: true},
		{name: "startsWith", op: OpStartsWith, fv: text("66B"), value: "66", want: true},
		{name: "startsWith miss", op: OpStartsWith, fv: text("66B"), value: "B", want: false},
		{name: "endsWith", op: OpEndsWith, fv: text("66B"), value: "b", want: true},
		{name: "greaterThan", op: OpGreater, fv: num(16), value: "14", want: true},
		{name: "greaterThan unparsable bound", op: OpGreater, fv: num(16), value: "fast", want: false},
		{name: "greaterThan absent field", op: OpGreater, fv: noNum(), value: "14", want: false},
		{name: "lessThanOrEqual boundary", op: OpLessEq, fv: num(-10), value: "-10", want: true},
		{name: "between inclusive", op: OpBetween, fv: num(14), value: "12", value2: "16", want: true},
		{name: "between swapped bounds", op: OpBetween, fv: num(14), value: "16", value2: "12", want: true},
		{name: "between outside", op: OpBetween, fv: num(20), value: "12", value2: "16", want: false},
		{name: "between missing bound", op: OpBetween, fv: num(14), value: "12", want: false},
		{name: "inList hits second item", op: OpInList, fv: text("M"), value: "H, M, L", want: true},
		{name: "inList skips blanks", op: OpInList, fv: text("M"), value: ", ,M", want: true},
		{name: "inList miss", op: OpInList, fv: text("Th"), value: "H, M, L", want: false},
		{name: "isEmpty text", op: OpIsEmpty, fv: text("  "), want: true},
		{name: "isEmpty absent number", op: OpIsEmpty, fv: noNum(), want: true},
		{name: "isNotEmpty number", op: OpIsNotEmpty, fv: num(0), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := byID[tt.op].Test(tt.fv, tt.value, tt.value2)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplies(t *testing.T) {

	byID := map[string]Operator{}
	for _, op := range builtins() {
		byID[op.ID] = op
	}

	assert.True(t, byID[OpEquals].Applies(entity.Number))
	assert.True(t, byID[OpContains].Applies(entity.Enum))
	assert.False(t, byID[OpContains].Applies(entity.Number))
	assert.False(t, byID[OpBetween].Applies(entity.Text))
}
