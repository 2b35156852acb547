package filter

import (
	"okizeme/entity"
	"okizeme/registry"
)

// NewCondition mints a default condition: the registry's first field with
// its first available operator.
func NewCondition(reg *registry.Registry) entity.Condition {

	cond := entity.Condition{ID: nextID()}

	fields := reg.Fields()
	if len(fields) == 0 {
		return cond
	}
	cond.Field = fields[0].ID

	ops, err := reg.AvailableConditions(cond.Field)
	if err == nil && len(ops) > 0 {
		cond.Operator = ops[0].ID
	}
	return cond
}

// AddCondition appends a default condition to the group carrying parentID,
// or to the root when parentID is empty.
func AddCondition(nodes []entity.Node, parentID string, reg *registry.Registry) []entity.Node {

	cond := NewCondition(reg)
	if parentID == "" {
		return append(copyNodes(nodes), cond)
	}

	return Rewrite(nodes, parentID, func(n entity.Node) []entity.Node {
		g, ok := n.(entity.Group)
		if !ok {
			return []entity.Node{n}
		}
		g.Children = append(copyNodes(g.Children), cond)
		return []entity.Node{g}
	})
}

// AddGroup appends a new and-group seeded with one default condition.
func AddGroup(nodes []entity.Node, parentID string, reg *registry.Registry) []entity.Node {

	group := entity.Group{
		ID:       nextID(),
		Op:       entity.And,
		Children: []entity.Node{NewCondition(reg)},
	}
	if parentID == "" {
		return append(copyNodes(nodes), group)
	}

	return Rewrite(nodes, parentID, func(n entity.Node) []entity.Node {
		g, ok := n.(entity.Group)
		if !ok {
			return []entity.Node{n}
		}
		g.Children = append(copyNodes(g.Children), group)
		return []entity.Node{g}
	})
}

// SetField switches a condition to another field. Crossing to a different
// semantic type clears value and value2; an operator invalid for the new
// field falls back to the first available one.
func SetField(nodes []entity.Node, id, fieldID string, reg *registry.Registry) []entity.Node {

	return Rewrite(nodes, id, func(n entity.Node) []entity.Node {
		cond, ok := n.(entity.Condition)
		if !ok {
			return []entity.Node{n}
		}

		oldField, hadOld := reg.Field(cond.Field)
		newField, ok := reg.Field(fieldID)
		if !ok {
			return []entity.Node{cond}
		}

		cond.Field = fieldID
		if !hadOld || oldField.Type != newField.Type {
			cond.Value = ""
			cond.Value2 = ""
		}

		ops, err := reg.AvailableConditions(fieldID)
		if err == nil && !operatorIn(ops, cond.Operator) && len(ops) > 0 {
			cond.Operator = ops[0].ID
		}
		return []entity.Node{cond}
	})
}

// SetOperator updates a condition's operator, dropping value2 when the new
// operator takes no range.
func SetOperator(nodes []entity.Node, id, opID string, reg *registry.Registry) []entity.Node {

	return Rewrite(nodes, id, func(n entity.Node) []entity.Node {
		cond, ok := n.(entity.Condition)
		if !ok {
			return []entity.Node{n}
		}
		cond.Operator = opID
		if op, ok := reg.Operator(opID); ok && op.Shape != registry.ShapeRange {
			cond.Value2 = ""
		}
		return []entity.Node{cond}
	})
}

// SetValue updates a condition's value.
func SetValue(nodes []entity.Node, id, value string) []entity.Node {
	return Rewrite(nodes, id, func(n entity.Node) []entity.Node {
		cond, ok := n.(entity.Condition)
		if !ok {
			return []entity.Node{n}
		}
		cond.Value = value
		return []entity.Node{cond}
	})
}

// SetValue2 updates a condition's range upper bound.
func SetValue2(nodes []entity.Node, id, value2 string) []entity.Node {
	return Rewrite(nodes, id, func(n entity.Node) []entity.Node {
		cond, ok := n.(entity.Condition)
		if !ok {
			return []entity.Node{n}
		}
		cond.Value2 = value2
		return []entity.Node{cond}
	})
}

// SetGroupOp flips a group between and/or.
func SetGroupOp(nodes []entity.Node, id string, op entity.GroupOp) []entity.Node {
	return Rewrite(nodes, id, func(n entity.Node) []entity.Node {
		g, ok := n.(entity.Group)
		if !ok {
			return []entity.Node{n}
		}
		g.Op = op
		return []entity.Node{g}
	})
}

// Remove deletes a node. The root never goes empty: deleting the last node
// installs a fresh default condition.
func Remove(nodes []entity.Node, id string, reg *registry.Registry) []entity.Node {

	out := Rewrite(nodes, id, func(entity.Node) []entity.Node {
		return nil
	})

	if len(out) == 0 {
		out = []entity.Node{NewCondition(reg)}
	}
	return out
}

// Indent wraps a condition in a new single-child group, in place.
func Indent(nodes []entity.Node, id string) []entity.Node {

	return Rewrite(nodes, id, func(n entity.Node) []entity.Node {
		cond, ok := n.(entity.Condition)
		if !ok {
			return []entity.Node{n}
		}
		return []entity.Node{entity.Group{
			ID:       nextID(),
			Op:       entity.And,
			Children: []entity.Node{cond},
		}}
	})
}

// Outdent lifts a condition out of its parent group to the root, removing
// the parent when that left it empty. Root-level nodes are untouched.
func Outdent(nodes []entity.Node, id string) []entity.Node {

	parent, ok := parentOf(nodes, id)
	if !ok {
		return nodes
	}

	lifted, ok := Find(nodes, id)
	if !ok {
		return nodes
	}

	out := Rewrite(nodes, id, func(entity.Node) []entity.Node {
		return nil
	})

	// collapse the emptied parent
	out = Rewrite(out, parent.ID, func(n entity.Node) []entity.Node {
		g, ok := n.(entity.Group)
		if !ok || len(g.Children) > 0 {
			return []entity.Node{n}
		}
		return nil
	})

	return append(out, lifted)
}

func operatorIn(ops []registry.Operator, id string) bool {
	for _, op := range ops {
		if op.ID == id {
			return true
		}
	}
	return false
}

func copyNodes(nodes []entity.Node) []entity.Node {
	out := make([]entity.Node, len(nodes))
	copy(out, nodes)
	return out
}
