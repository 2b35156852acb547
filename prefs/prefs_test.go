package prefs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"okizeme/entity"
)

func TestLoadAbsentFile(t *testing.T) {

	p, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Nil(t, p.Notation)
}

func TestEnabledMapsDefault(t *testing.T) {

	var p Prefs
	assert.Equal(t, []string{"ascii"}, p.EnabledMaps(entity.SoulCalibur6))

	p.SetEnabledMaps(entity.SoulCalibur6, []string{"ascii", "arrows"})
	assert.Equal(t, []string{"ascii", "arrows"}, p.EnabledMaps(entity.SoulCalibur6))

	// other games keep the default
	assert.Equal(t, []string{"ascii"}, p.EnabledMaps(entity.Tekken8))
}

func TestSaveLoadRoundtrip(t *testing.T) {

	path := filepath.Join(t.TempDir(), "prefs.yml")

	var p Prefs
	p.SetEnabledMaps(entity.SoulCalibur6, []string{"arrows"})
	p.Columns = map[string][]entity.Column{
		string(entity.SoulCalibur6): {
			{Field: "command", Width: 20},
			{Field: "notes", Width: 30, Hidden: true},
		},
	}
	require.NoError(t, p.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"arrows"}, loaded.EnabledMaps(entity.SoulCalibur6))
	assert.Equal(t, p.Columns, loaded.Columns)

	cols, ok := loaded.ColumnsFor(entity.SoulCalibur6)
	require.True(t, ok)
	assert.Len(t, cols, 2)

	_, ok = loaded.ColumnsFor(entity.Tekken8)
	assert.False(t, ok)
}
