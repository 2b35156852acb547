package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"okizeme/entity"
	"okizeme/filter"
	"okizeme/notation"
	"okizeme/registry"
)

func fptr(n float64) *float64 {
	return &n
}

func scResolver(t *testing.T) filter.Resolver {
	t.Helper()
	reg, err := registry.ForGame(entity.SoulCalibur6)
	require.NoError(t, err)
	return filter.Resolver{
		Reg:        reg,
		Translator: notation.NewTranslator(entity.SoulCalibur6, []string{"ascii"}),
	}
}

func impacts(moves []entity.Move) (out []*float64) {
	for _, m := range moves {
		out = append(out, m.Impact)
	}
	return
}

func TestSortedNumeric(t *testing.T) {

	rs := scResolver(t)

	moves := []entity.Move{
		{ID: 1, Impact: fptr(16)},
		{ID: 2},
		{ID: 3, Impact: fptr(12)},
		{ID: 4, Impact: fptr(22)},
	}

	asc := Sorted(moves, rs, entity.Sort{Field: registry.ImpactField})
	assert.Equal(t, []*float64{fptr(12), fptr(16), fptr(22), nil}, impacts(asc))

	desc := Sorted(moves, rs, entity.Sort{Field: registry.ImpactField, Desc: true})
	assert.Equal(t, []*float64{fptr(22), fptr(16), fptr(12), nil}, impacts(desc), "nulls last in both directions")

	// input untouched
	assert.Equal(t, 1, moves[0].ID)
}

func TestSortedText(t *testing.T) {

	rs := scResolver(t)

	moves := []entity.Move{
		{ID: 1, Character: "mitsurugi"},
		{ID: 2, Character: "Astaroth"},
		{ID: 3, Character: ""},
		{ID: 4, Character: "Ivy"},
	}

	out := Sorted(moves, rs, entity.Sort{Field: registry.CharacterField})

	var names []string
	for _, m := range out {
		names = append(names, m.Character)
	}
	assert.Equal(t, []string{"Astaroth", "Ivy", "mitsurugi", ""}, names, "case folded, empty last")
}

func TestSortedStable(t *testing.T) {

	rs := scResolver(t)

	moves := []entity.Move{
		{ID: 1, Impact: fptr(14)},
		{ID: 2, Impact: fptr(14)},
		{ID: 3, Impact: fptr(14)},
	}

	out := Sorted(moves, rs, entity.Sort{Field: registry.ImpactField})
	assert.Equal(t, []int{1, 2, 3}, []int{out[0].ID, out[1].ID, out[2].ID})
}

func TestSortedNoField(t *testing.T) {

	rs := scResolver(t)

	moves := []entity.Move{{ID: 2}, {ID: 1}}
	out := Sorted(moves, rs, entity.Sort{})

	assert.Equal(t, moves, out)
	out[0].ID = 99
	assert.Equal(t, 2, moves[0].ID, "result is a fresh slice")
}

func TestSelectSort(t *testing.T) {

	spec := SelectSort(entity.Sort{}, registry.ImpactField)
	assert.Equal(t, entity.Sort{Field: registry.ImpactField}, spec)

	spec = SelectSort(spec, registry.ImpactField)
	assert.True(t, spec.Desc, "same field toggles direction")

	spec = SelectSort(spec, registry.BlockField)
	assert.Equal(t, entity.Sort{Field: registry.BlockField}, spec, "new field starts ascending")
}
