package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"okizeme/entity"
)

func fptr(n float64) *float64 {
	return &n
}

func TestForGame(t *testing.T) {

	for _, game := range Games() {
		reg, err := ForGame(game)
		require.NoError(t, err)
		assert.Equal(t, game, reg.Game())
		assert.NotEmpty(t, reg.Fields())
	}

	_, err := ForGame(entity.GameID("streetfighter"))
	assert.Error(t, err)
}

func TestOperatorMerge(t *testing.T) {

	reg, err := ForGame(entity.SoulCalibur6)
	require.NoError(t, err)

	// built-ins survive the merge
	_, ok := reg.Operator(OpEquals)
	assert.True(t, ok)

	// game customs land alongside
	safe, ok := reg.Operator("safeOnBlock")
	require.True(t, ok)
	assert.Equal(t, ShapeNone, safe.Shape)

	assert.True(t, safe.Test(entity.FieldValue{Num: fptr(-8), Type: entity.Number}, "", ""))
	assert.False(t, safe.Test(entity.FieldValue{Num: fptr(-9), Type: entity.Number}, "", ""))
	assert.False(t, safe.Test(entity.FieldValue{Type: entity.Number}, "", ""))
}

func TestAvailableConditions(t *testing.T) {

	reg, err := ForGame(entity.SoulCalibur6)
	require.NoError(t, err)

	tests := []struct {
		name     string
		field    string
		contains []string
		excludes []string
	}{
		{
			name:     "number field gets comparisons not text ops",
			field:    ImpactField,
			contains: []string{OpEquals, OpGreater, OpBetween, "safeOnBlock"},
			excludes: []string{OpContains, OpStartsWith},
		},
		{
			name:     "allow-list narrows command to text matching",
			field:    CommandField,
			contains: []string{OpContains, OpEquals},
			excludes: []string{OpIsEmpty, OpInList},
		},
		{
			name:     "enum field gets text and membership ops",
			field:    HitLevelField,
			contains: []string{OpEquals, OpContains, OpInList},
			excludes: []string{OpGreater, OpBetween},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			ops, err := reg.AvailableConditions(tt.field)
			require.NoError(t, err)

			ids := map[string]bool{}
			for _, op := range ops {
				ids[op.ID] = true
			}

			for _, id := range tt.contains {
				assert.True(t, ids[id], "expected %s", id)
			}
			for _, id := range tt.excludes {
				assert.False(t, ids[id], "did not expect %s", id)
			}
		})
	}

	_, err = reg.AvailableConditions("nope")
	assert.Error(t, err)
}

func TestExtract(t *testing.T) {

	reg, err := ForGame(entity.SoulCalibur6)
	require.NoError(t, err)

	move := entity.Move{
		ID:        7,
		Character: "Mitsurugi",
		Command:   []string{":6:", ":6:", ":B:"},
		Stance:    []string{"MST"},
		HitLevel:  []string{"M"},
		Impact:    fptr(16),
		Block:     "-8",
		BlockDec:  fptr(-8),
	}

	tests := []struct {
		field   string
		str     string
		num     *float64
		typ     entity.FieldType
		unknown bool
	}{
		{field: CharacterField, str: "Mitsurugi", typ: entity.Text},
		{field: CommandField, str: ":6::6::B:", typ: entity.Text},
		{field: CombinedInputField, str: "MST:6::6::B:", typ: entity.Text},
		{field: HitLevelField, str: "M", typ: entity.Enum},
		{field: ImpactField, str: "16", num: fptr(16), typ: entity.Number},
		{field: BlockField, str: "-8", num: fptr(-8), typ: entity.Number},
		{field: "bogus", unknown: true},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {

			fv, ok := reg.Extract(move, tt.field)
			if tt.unknown {
				assert.False(t, ok)
				return
			}

			require.True(t, ok)
			assert.Equal(t, tt.str, fv.Str)
			assert.Equal(t, tt.typ, fv.Type)
			if tt.num != nil {
				require.NotNil(t, fv.Num)
				assert.Equal(t, *tt.num, *fv.Num)
			}
		})
	}
}

func TestExtractAbsentNumber(t *testing.T) {

	reg, err := ForGame(entity.SoulCalibur6)
	require.NoError(t, err)

	fv, ok := reg.Extract(entity.Move{Block: "KND"}, BlockField)
	require.True(t, ok)
	assert.Nil(t, fv.Num)
	assert.Equal(t, "KND", fv.Str)
}
