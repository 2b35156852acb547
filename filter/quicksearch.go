package filter

import (
	"okizeme/entity"
	"okizeme/registry"
)

// Quick search binds to a single root-level contains condition on the
// combined input field; the dialog and the search box edit the same node.

// SetQuickSearch upserts the quick-search condition at the root, removing
// it when text goes empty.
func SetQuickSearch(nodes []entity.Node, text string, reg *registry.Registry) []entity.Node {

	id := quickSearchID(nodes)

	if text == "" {
		if id == "" {
			return nodes
		}
		return Remove(nodes, id, reg)
	}

	if id != "" {
		return SetValue(nodes, id, text)
	}

	cond := entity.Condition{
		ID:       nextID(),
		Field:    registry.CombinedInputField,
		Operator: registry.OpContains,
		Value:    text,
	}
	return append(copyNodes(nodes), cond)
}

// QuickSearchValue reads the quick-search display value back out of the
// tree, empty when the condition is absent.
func QuickSearchValue(nodes []entity.Node) string {

	id := quickSearchID(nodes)
	if id == "" {
		return ""
	}

	n, ok := Find(nodes, id)
	if !ok {
		return ""
	}
	cond, ok := n.(entity.Condition)
	if !ok {
		return ""
	}
	return cond.Value
}

// quickSearchID finds the root-level combined-input condition, first wins.
func quickSearchID(nodes []entity.Node) string {

	for _, n := range nodes {
		cond, ok := n.(entity.Condition)
		if !ok {
			continue
		}
		if cond.Field == registry.CombinedInputField {
			return cond.ID
		}
	}
	return ""
}
