// Package filter holds the expression tree and its evaluation: pure tree
// rewrites for the editor, pruning to the active subtree, and the per-move
// predicate evaluator.
package filter

import (
	"fmt"
	"sync/atomic"

	"okizeme/entity"
)

var idCounter atomic.Uint64

// nextID mints a tree-node id, unique within the session.
func nextID() string {
	return fmt.Sprintf("f%d", idCounter.Add(1))
}

// Updater maps a matched node to its replacements. Returning the node alone
// is an in-place edit, several nodes a splice, none a delete.
type Updater func(n entity.Node) []entity.Node

// Rewrite returns a new tree with the updater applied to the node carrying
// id, wherever it sits. Untouched branches are rebuilt, never mutated.
func Rewrite(nodes []entity.Node, id string, up Updater) []entity.Node {

	out := make([]entity.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.NodeID() == id {
			out = append(out, up(n)...)
			continue
		}
		if g, ok := n.(entity.Group); ok {
			g.Children = Rewrite(g.Children, id, up)
			out = append(out, g)
			continue
		}
		out = append(out, n)
	}
	return out
}

// Find returns the node carrying id, depth first.
func Find(nodes []entity.Node, id string) (entity.Node, bool) {

	for _, n := range nodes {
		if n.NodeID() == id {
			return n, true
		}
		if g, ok := n.(entity.Group); ok {
			if found, ok := Find(g.Children, id); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// parentOf returns the group directly holding id, false when id sits at the
// root or is absent.
func parentOf(nodes []entity.Node, id string) (entity.Group, bool) {

	for _, n := range nodes {
		g, ok := n.(entity.Group)
		if !ok {
			continue
		}
		for _, child := range g.Children {
			if child.NodeID() == id {
				return g, true
			}
		}
		if found, ok := parentOf(g.Children, id); ok {
			return found, true
		}
	}
	return entity.Group{}, false
}
