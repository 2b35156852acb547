package filter

import (
	"okizeme/entity"
	"okizeme/registry"
)

// Active prunes the tree to the subset that actually constrains results:
// conditions with no value drop out (none-shape operators never need one),
// then groups left childless drop too. Idempotent.
func Active(nodes []entity.Node, reg *registry.Registry) []entity.Node {

	var out []entity.Node
	for _, n := range nodes {
		switch n := n.(type) {

		case entity.Condition:
			if conditionActive(n, reg) {
				out = append(out, n)
			}

		case entity.Group:
			n.Children = Active(n.Children, reg)
			if len(n.Children) > 0 {
				out = append(out, n)
			}
		}
	}
	return out
}

// conditionActive reports whether a leaf carries input worth evaluating.
func conditionActive(cond entity.Condition, reg *registry.Registry) bool {

	shape := registry.ShapeSingle
	if op, ok := reg.Operator(cond.Operator); ok {
		shape = op.Shape
	}

	switch shape {
	case registry.ShapeNone:
		return true
	case registry.ShapeRange:
		return cond.Value != "" || cond.Value2 != ""
	default:
		return cond.Value != ""
	}
}

// Count returns the number of active conditions, for badge display.
func Count(nodes []entity.Node) (count int) {

	for _, n := range nodes {
		switch n := n.(type) {
		case entity.Condition:
			count++
		case entity.Group:
			count += Count(n.Children)
		}
	}
	return
}
