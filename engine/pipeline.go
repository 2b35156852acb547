// Package engine runs the filter/sort pipeline over the loaded move set and
// schedules keystroke-driven recomputes off the interactive path.
package engine

import (
	"okizeme/entity"
	"okizeme/filter"
)

// Pipeline combines pruning, predicate evaluation, and sorting over the
// record collection. Results are always fresh slices; published slices are
// never mutated, so consumers can rely on reference changes.
type Pipeline struct {
	rs      filter.Resolver
	records []entity.Move
}

// New builds a pipeline over a resolver; records arrive via SetRecords.
func New(rs filter.Resolver) *Pipeline {
	return &Pipeline{rs: rs}
}

// SetRecords replaces the record collection, e.g. on character switch.
func (p *Pipeline) SetRecords(records []entity.Move) {
	p.records = records
}

// Records returns the unfiltered collection.
func (p *Pipeline) Records() []entity.Move {
	return p.records
}

// Resolver exposes the registry/translator pair the pipeline evaluates with.
func (p *Pipeline) Resolver() filter.Resolver {
	return p.rs
}

// Active prunes a tree to the constraining subset.
func (p *Pipeline) Active(nodes []entity.Node) []entity.Node {
	return filter.Active(nodes, p.rs.Reg)
}

// Compute filters and sorts the collection under the given tree and sort
// spec, returning a new slice.
func (p *Pipeline) Compute(nodes []entity.Node, rootOp entity.GroupOp, spec entity.Sort) []entity.Move {

	active := p.Active(nodes)

	filtered := make([]entity.Move, 0, len(p.records))
	for _, m := range p.records {
		if p.rs.Match(m, active, rootOp) {
			filtered = append(filtered, m)
		}
	}

	return Sorted(filtered, p.rs, spec)
}
