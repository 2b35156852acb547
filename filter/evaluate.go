package filter

import (
	"okizeme/entity"
	"okizeme/notation"
	"okizeme/registry"
)

// Resolver pairs the game registry with the notation translator so that
// notated fields (command text) are matched and sorted in display notation.
type Resolver struct {
	Reg        *registry.Registry
	Translator *notation.Translator
}

// Resolve extracts a field value, translating notated fields.
func (rs Resolver) Resolve(m entity.Move, fieldID string) (fv entity.FieldValue, ok bool) {

	fv, ok = rs.Reg.Extract(m, fieldID)
	if !ok {
		return
	}

	if f, known := rs.Reg.Field(fieldID); known && f.Notated {
		fv.Str = rs.Translator.Translate(fv.Str)
	}
	return
}

// EvalCondition tests one move against one condition. Conditions that
// reference an unknown field or operator are inert: they match everything
// rather than silently hiding data.
func (rs Resolver) EvalCondition(m entity.Move, cond entity.Condition) bool {

	op, ok := rs.Reg.Operator(cond.Operator)
	if !ok {
		return true
	}

	fv, ok := rs.Resolve(m, cond.Field)
	if !ok {
		return true
	}

	return op.Test(fv, cond.Value, cond.Value2)
}

// evalNode evaluates one active node. Groups combine children under and/or;
// pruned trees carry no empty groups, one slipping through is neutral.
func (rs Resolver) evalNode(m entity.Move, n entity.Node) bool {

	switch n := n.(type) {

	case entity.Condition:
		return rs.EvalCondition(m, n)

	case entity.Group:
		if len(n.Children) == 0 {
			return true
		}
		if n.Op == entity.Or {
			for _, child := range n.Children {
				if rs.evalNode(m, child) {
					return true
				}
			}
			return false
		}
		for _, child := range n.Children {
			if !rs.evalNode(m, child) {
				return false
			}
		}
		return true
	}
	return true
}

// Match tests a move against an active (pruned) tree. Independent root
// nodes combine under and; a root op of or wraps them in one synthetic or
// group first.
func (rs Resolver) Match(m entity.Move, active []entity.Node, rootOp entity.GroupOp) bool {

	if len(active) == 0 {
		return true
	}

	if rootOp == entity.Or && len(active) > 1 {
		return rs.evalNode(m, entity.Group{Op: entity.Or, Children: active})
	}

	for _, n := range active {
		if !rs.evalNode(m, n) {
			return false
		}
	}
	return true
}
