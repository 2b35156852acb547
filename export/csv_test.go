package export

import (
	"bytes"
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

func TestWriteCSV(t *testing.T) {

	reg, err := registry.ForGame(entity.SoulCalibur6)
	require.NoError(t, err)

	rs := filter.Resolver{
		Reg:        reg,
		Translator: notation.NewTranslator(entity.SoulCalibur6, []string{"ascii"}),
	}

	columns := []entity.Column{
		{Field: registry.CharacterField, Width: 16},
		{Field: registry.CommandField, Width: 16},
		{Field: registry.ImpactField, Width: 7},
		{Field: registry.NotesField, Width: 16, Hidden: true},
	}

	moves := []entity.Move{
		{Character: "Mitsurugi", Command: []string{":6:", ":6:", ":B:"}, Impact: fptr(16), Notes: "hidden col"},
		{Character: "Astaroth", Command: []string{":A:"}},
	}

	var buf bytes.Buffer
	err = WriteCSV(&buf, moves, columns, rs)
	require.NoError(t, err)

	want := "Character,Command,Impact\n" +
		"Mitsurugi,:6::6:B,16\n" +
		"Astaroth,A,\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVEmpty(t *testing.T) {

	reg, err := registry.ForGame(entity.SoulCalibur6)
	require.NoError(t, err)

	rs := filter.Resolver{
		Reg:        reg,
		Translator: notation.NewTranslator(entity.SoulCalibur6, nil),
	}

	var buf bytes.Buffer
	err = WriteCSV(&buf, nil, []entity.Column{{Field: registry.CharacterField}}, rs)
	require.NoError(t, err)
	assert.Equal(t, "Character\n", buf.String())
}
