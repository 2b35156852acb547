package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"okizeme/entity"
	"okizeme/registry"
)

func TestRevalidate(t *testing.T) {

	scrReg := scReg(t)
	tekReg, err := registry.ForGame(entity.Tekken8)
	require.NoError(t, err)

	nodes := []entity.Node{
		entity.Condition{ID: "c1", Field: registry.ImpactField, Operator: registry.OpGreater, Value: "14"},
		entity.Condition{ID: "c2", Field: registry.GuardBurstField, Operator: registry.OpLess, Value: "10"},
		entity.Condition{ID: "c3", Field: registry.BlockField, Operator: "punishableOnBlock"},
	}

	out := Revalidate(nodes, scrReg, tekReg)

	ids := []string{}
	for _, n := range out {
		ids = append(ids, n.NodeID())
	}

	// guard burst is a SoulCalibur-only field
	assert.NotContains(t, ids, "c2")
	assert.Contains(t, ids, "c1")

	// SoulCalibur's custom operator is gone on Tekken, fallback applies
	for _, n := range out {
		if n.NodeID() != "c3" {
			continue
		}
		cond := n.(entity.Condition)
		assert.NotEqual(t, "punishableOnBlock", cond.Operator)
	}
}

func TestRevalidateEmptiesToDefault(t *testing.T) {

	scrReg := scReg(t)
	tekReg, err := registry.ForGame(entity.Tekken8)
	require.NoError(t, err)

	nodes := []entity.Node{
		entity.Condition{ID: "c1", Field: registry.GuardBurstField, Operator: registry.OpLess, Value: "10"},
	}

	out := Revalidate(nodes, scrReg, tekReg)
	require.Len(t, out, 1, "tree never comes back empty")

	cond, ok := out[0].(entity.Condition)
	require.True(t, ok)
	assert.NotEqual(t, "c1", cond.ID)
}

func TestRevalidateDropsEmptiedGroups(t *testing.T) {

	scrReg := scReg(t)
	tekReg, err := registry.ForGame(entity.Tekken8)
	require.NoError(t, err)

	nodes := []entity.Node{
		entity.Condition{ID: "c1", Field: registry.ImpactField, Operator: registry.OpGreater, Value: "14"},
		entity.Group{ID: "g1", Op: entity.Or, Children: []entity.Node{
			entity.Condition{ID: "c2", Field: registry.GuardBurstField, Operator: registry.OpLess, Value: "10"},
		}},
	}

	out := Revalidate(nodes, scrReg, tekReg)
	require.Len(t, out, 1)
	assert.Equal(t, "c1", out[0].NodeID())
}
