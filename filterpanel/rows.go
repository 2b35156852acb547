package filterpanel

import (
	"strings"

	"okizeme/entity"
	"okizeme/registry"
	"okizeme/style"
)

// Row cells for a condition.
const (
	cellField = iota
	cellOperator
	cellValue
	cellValue2
)

// conditionRow renders one leaf with tree-depth indentation.
type conditionRow struct {
	cond  entity.Condition
	depth int
	reg   *registry.Registry
}

func (r conditionRow) NumColumns() int {
	return 4
}

func (r conditionRow) GetCell(col int) string {

	switch col {
	case cellField:
		if f, ok := r.reg.Field(r.cond.Field); ok {
			return f.Label
		}
		return r.cond.Field
	case cellOperator:
		if op, ok := r.reg.Operator(r.cond.Operator); ok {
			return op.Label
		}
		return r.cond.Operator
	case cellValue:
		return r.cond.Value
	case cellValue2:
		return r.cond.Value2
	}
	return ""
}

// shape of the row's current operator, single when unknown
func (r conditionRow) shape() registry.Shape {
	if op, ok := r.reg.Operator(r.cond.Operator); ok {
		return op.Shape
	}
	return registry.ShapeSingle
}

func (r conditionRow) Render(selectedCol int) string {

	var cells []string
	for col := 0; col < r.NumColumns(); col++ {

		text := r.GetCell(col)
		switch {
		case col == cellValue && r.shape() == registry.ShapeNone:
			text = "·"
		case col == cellValue2 && r.shape() != registry.ShapeRange:
			text = "·"
		case (col == cellValue || col == cellValue2) && text == "":
			text = "_"
		}

		if col == selectedCol {
			text = style.HlCellStyle.Render("[" + text + "]")
		} else {
			text = " " + text + " "
		}
		cells = append(cells, text)
	}

	return strings.Repeat("  ", r.depth) + strings.Join(cells, "")
}

// groupRow renders one group header; its single cell is the and/or toggle.
type groupRow struct {
	group entity.Group
	depth int
}

func (r groupRow) NumColumns() int {
	return 1
}

func (r groupRow) GetCell(col int) string {
	return strings.ToUpper(string(r.group.Op))
}

func (r groupRow) Render(selectedCol int) string {

	text := r.GetCell(0)
	if selectedCol == 0 {
		text = style.HlCellStyle.Render("[" + text + "]")
	} else {
		text = " " + text + " "
	}
	return strings.Repeat("  ", r.depth) + style.MutedStyle.Render("group") + text
}
