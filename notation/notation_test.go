package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"okizeme/entity"
)

func TestTranslate(t *testing.T) {

	tests := []struct {
		name    string
		game    entity.GameID
		enabled []string
		in      string
		want    string
	}{
		{
			name:    "ascii strips button colons",
			game:    entity.SoulCalibur6,
			enabled: []string{"ascii"},
			in:      ":6::6::B:",
			want:    ":6::6:B",
		},
		{
			name:    "game override wins over shared map",
			game:    entity.SoulCalibur6,
			enabled: []string{"ascii"},
			in:      ":C:",
			want:    "K",
		},
		{
			name:    "multi-button token beats its substrings",
			game:    entity.SoulCalibur6,
			enabled: []string{"ascii"},
			in:      ":B+C:",
			want:    "B+K",
		},
		{
			name:    "arrows map directions",
			game:    entity.SoulCalibur6,
			enabled: []string{"ascii", "arrows"},
			in:      ":2::3::6::B:",
			want:    "↓↘→B",
		},
		{
			name:    "tekken numbers its buttons",
			game:    entity.Tekken8,
			enabled: []string{"ascii"},
			in:      ":A+B:",
			want:    "1+2",
		},
		{
			name:    "unmapped text passes through",
			game:    entity.SoulCalibur6,
			enabled: []string{"ascii"},
			in:      "While Rising :B:",
			want:    "While Rising B",
		},
		{
			name:    "unknown map name skipped",
			game:    entity.SoulCalibur6,
			enabled: []string{"ascii", "klingon"},
			in:      ":B:",
			want:    "B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTranslator(tt.game, tt.enabled)
			assert.Equal(t, tt.want, tr.Translate(tt.in))
			// memoized path returns the same answer
			assert.Equal(t, tt.want, tr.Translate(tt.in))
		})
	}
}

func TestTranslateIdentity(t *testing.T) {

	// no enabled maps and no overrides would be empty; overrides alone
	// still compile, so force empty via an unconfigured game
	tr := NewTranslator(entity.GameID("unconfigured"), nil)
	assert.Equal(t, ":6::B:", tr.Translate(":6::B:"))
	assert.Equal(t, "", tr.Translate(""))

	var nilTr *Translator
	assert.Equal(t, "x", nilTr.Translate("x"))
}

func TestFingerprint(t *testing.T) {

	a := Fingerprint(entity.SoulCalibur6, []string{"ascii", "arrows"})
	b := Fingerprint(entity.SoulCalibur6, []string{"arrows", "ascii"})
	assert.Equal(t, a, b, "enabled order must not matter")

	c := Fingerprint(entity.Tekken8, []string{"ascii", "arrows"})
	assert.NotEqual(t, a, c)

	d := Fingerprint(entity.SoulCalibur6, []string{"ascii"})
	assert.NotEqual(t, a, d)
}

func TestTranslatorReuse(t *testing.T) {

	tr1 := NewTranslator(entity.SoulCalibur6, []string{"ascii"})
	tr2 := NewTranslator(entity.SoulCalibur6, []string{"ascii"})

	require.Equal(t, tr1.Fingerprint(), tr2.Fingerprint())
	assert.Same(t, tr1.re, tr2.re, "same fingerprint shares the compiled regexp")

	tr3 := NewTranslator(entity.SoulCalibur6, []string{"ascii", "arrows"})
	assert.NotEqual(t, tr1.Fingerprint(), tr3.Fingerprint())
}

func TestSharedMapNames(t *testing.T) {
	assert.Equal(t, []string{"arrows", "ascii"}, SharedMapNames())
}
