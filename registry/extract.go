package registry

import (
	"strconv"
	"strings"

	"okizeme/entity"
)

// Extractor resolves one field of a move in the representations the
// operators consume.
type Extractor func(m entity.Move) entity.FieldValue

// extractors is the field capability table, shared by every game config.
// Filtering and sorting both go through it.
var extractors = map[string]Extractor{
	"id": func(m entity.Move) entity.FieldValue {
		n := float64(m.ID)
		return entity.NumValue(strconv.Itoa(m.ID), &n)
	},
	CharacterField: func(m entity.Move) entity.FieldValue {
		return entity.StrValue(m.Character, entity.Text)
	},
	CommandField: func(m entity.Move) entity.FieldValue {
		return entity.StrValue(strings.Join(m.Command, ""), entity.Text)
	},
	StanceField: func(m entity.Move) entity.FieldValue {
		return entity.StrValue(strings.Join(m.Stance, " "), entity.Text)
	},
	HitLevelField: func(m entity.Move) entity.FieldValue {
		return entity.StrValue(strings.Join(m.HitLevel, " "), entity.Enum)
	},
	ImpactField: func(m entity.Move) entity.FieldValue {
		return entity.NumValue(numStr(m.Impact), m.Impact)
	},
	DamageField: func(m entity.Move) entity.FieldValue {
		return entity.FieldValue{Str: m.Damage, Num: m.DamageDec, Type: entity.Number}
	},
	BlockField: func(m entity.Move) entity.FieldValue {
		return entity.FieldValue{Str: m.Block, Num: m.BlockDec, Type: entity.Number}
	},
	HitField: func(m entity.Move) entity.FieldValue {
		return entity.FieldValue{Str: m.Hit, Num: m.HitDec, Type: entity.Number}
	},
	CounterHitField: func(m entity.Move) entity.FieldValue {
		return entity.FieldValue{Str: m.CounterHit, Num: m.CounterHitDec, Type: entity.Number}
	},
	GuardBurstField: func(m entity.Move) entity.FieldValue {
		return entity.NumValue(numStr(m.GuardBurst), m.GuardBurst)
	},
	PropertiesField: func(m entity.Move) entity.FieldValue {
		return entity.StrValue(strings.Join(m.Properties, " "), entity.Text)
	},
	NotesField: func(m entity.Move) entity.FieldValue {
		return entity.StrValue(m.Notes, entity.Text)
	},
	CombinedInputField: func(m entity.Move) entity.FieldValue {
		parts := make([]string, 0, len(m.Stance)+len(m.Command))
		parts = append(parts, m.Stance...)
		parts = append(parts, m.Command...)
		return entity.StrValue(strings.Join(parts, ""), entity.Text)
	},
}

// Extract resolves a field value from a move; false for unknown field ids.
func (reg *Registry) Extract(m entity.Move, fieldID string) (fv entity.FieldValue, ok bool) {

	ex, ok := extractors[fieldID]
	if !ok {
		return
	}

	fv = ex(m)
	if f, known := reg.fieldByID[fieldID]; known {
		fv.Type = f.Type
	}
	return
}

func numStr(n *float64) string {
	if n == nil {
		return ""
	}
	return strconv.FormatFloat(*n, 'f', -1, 64)
}
