package filter

import (
	"okizeme/entity"
	"okizeme/registry"
)

// Revalidate rebuilds a tree against a freshly swapped game registry.
// Conditions on fields the new game lacks are dropped; a field whose
// semantic type changed keeps the condition but loses its stale value;
// operators no longer available fall back to the first available one.
func Revalidate(nodes []entity.Node, old, reg *registry.Registry) []entity.Node {

	out := revalidate(nodes, old, reg)
	if len(out) == 0 {
		out = []entity.Node{NewCondition(reg)}
	}
	return out
}

func revalidate(nodes []entity.Node, old, reg *registry.Registry) []entity.Node {

	var out []entity.Node
	for _, n := range nodes {
		switch n := n.(type) {

		case entity.Condition:
			newField, ok := reg.Field(n.Field)
			if !ok {
				continue
			}

			if old != nil {
				if oldField, had := old.Field(n.Field); had && oldField.Type != newField.Type {
					n.Value = ""
					n.Value2 = ""
				}
			}

			ops, err := reg.AvailableConditions(n.Field)
			if err == nil && !operatorIn(ops, n.Operator) && len(ops) > 0 {
				n.Operator = ops[0].ID
			}
			out = append(out, n)

		case entity.Group:
			n.Children = revalidate(n.Children, old, reg)
			if len(n.Children) > 0 {
				out = append(out, n)
			}
		}
	}
	return out
}
