package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"okizeme/entity"
	"okizeme/registry"
)

func TestPipelineCompute(t *testing.T) {

	rs := scResolver(t)

	p := New(rs)
	p.SetRecords([]entity.Move{
		{ID: 1, Impact: fptr(12)},
		{ID: 2, Impact: fptr(22)},
		{ID: 3},
		{ID: 4, Impact: fptr(16)},
	})

	slow := entity.Condition{ID: "c1", Field: registry.ImpactField, Operator: registry.OpGreater, Value: "5"}

	out := p.Compute([]entity.Node{slow}, entity.And, entity.Sort{Field: registry.ImpactField, Desc: true})

	var ids []int
	for _, m := range out {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int{2, 4, 1}, ids, "move without impact fails the numeric test")
}

func TestPipelineInactiveConditionMatchesAll(t *testing.T) {

	rs := scResolver(t)

	p := New(rs)
	p.SetRecords([]entity.Move{{ID: 1}, {ID: 2}})

	// no value entered yet, the condition does not constrain
	empty := entity.Condition{ID: "c1", Field: registry.ImpactField, Operator: registry.OpGreater}

	out := p.Compute([]entity.Node{empty}, entity.And, entity.Sort{})
	assert.Len(t, out, 2)
}

func TestPipelineFreshSlices(t *testing.T) {

	rs := scResolver(t)

	p := New(rs)
	p.SetRecords([]entity.Move{{ID: 1}, {ID: 2}})

	a := p.Compute(nil, entity.And, entity.Sort{})
	b := p.Compute(nil, entity.And, entity.Sort{})

	require.Len(t, a, 2)
	a[0].ID = 99
	assert.Equal(t, 1, b[0].ID)
	assert.Equal(t, 1, p.Records()[0].ID)
}

func TestPipelineOrRoot(t *testing.T) {

	rs := scResolver(t)

	p := New(rs)
	p.SetRecords([]entity.Move{
		{ID: 1, Impact: fptr(10)},
		{ID: 2, Impact: fptr(20)},
		{ID: 3, Impact: fptr(30)},
	})

	fast := entity.Condition{ID: "c1", Field: registry.ImpactField, Operator: registry.OpLess, Value: "15"}
	slow := entity.Condition{ID: "c2", Field: registry.ImpactField, Operator: registry.OpGreater, Value: "25"}

	and := p.Compute([]entity.Node{fast, slow}, entity.And, entity.Sort{})
	assert.Empty(t, and)

	or := p.Compute([]entity.Node{fast, slow}, entity.Or, entity.Sort{})
	assert.Len(t, or, 2)
}
