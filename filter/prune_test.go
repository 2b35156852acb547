package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"okizeme/entity"
	"okizeme/registry"
)

func TestActive(t *testing.T) {

	reg := scReg(t)

	nodes := []entity.Node{
		entity.Condition{ID: "c1", Field: registry.ImpactField, Operator: registry.OpGreater, Value: "14"},
		entity.Condition{ID: "c2", Field: registry.ImpactField, Operator: registry.OpGreater},
		entity.Condition{ID: "c3", Field: registry.BlockField, Operator: registry.OpIsEmpty},
		entity.Group{ID: "g1", Op: entity.Or, Children: []entity.Node{
			entity.Condition{ID: "c4", Field: registry.NotesField, Operator: registry.OpContains},
		}},
		entity.Group{ID: "g2", Op: entity.Or, Children: []entity.Node{
			entity.Condition{ID: "c5", Field: registry.ImpactField, Operator: registry.OpBetween, Value2: "16"},
		}},
	}

	active := Active(nodes, reg)
	require.Len(t, active, 3)

	assert.Equal(t, "c1", active[0].NodeID(), "valued condition stays")
	assert.Equal(t, "c3", active[1].NodeID(), "none-shape needs no value")
	assert.Equal(t, "g2", active[2].NodeID(), "range with only an upper bound is active")

	// c2 empty value dropped, g1 dropped once emptied

	again := Active(active, reg)
	assert.Equal(t, active, again, "pruning is idempotent")
}

func TestActiveUnknownOperatorTreatedSingle(t *testing.T) {

	reg := scReg(t)

	nodes := []entity.Node{
		entity.Condition{ID: "c1", Field: registry.NotesField, Operator: "mystery"},
		entity.Condition{ID: "c2", Field: registry.NotesField, Operator: "mystery", Value: "x"},
	}

	active := Active(nodes, reg)
	require.Len(t, active, 1)
	assert.Equal(t, "c2", active[0].NodeID())
}

func TestCount(t *testing.T) {

	nodes := []entity.Node{
		entity.Condition{ID: "c1"},
		entity.Group{ID: "g1", Children: []entity.Node{
			entity.Condition{ID: "c2"},
			entity.Group{ID: "g2", Children: []entity.Node{
				entity.Condition{ID: "c3"},
			}},
		}},
	}

	assert.Equal(t, 3, Count(nodes))
	assert.Equal(t, 0, Count(nil))
}
