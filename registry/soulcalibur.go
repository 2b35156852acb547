package registry

import "okizeme/entity"

// soulCalibur6Config declares the SoulCalibur 6 move table.
//
// Frame values come from the community sheet: impact is startup, block/hit/
// counter hit keep the sheet text alongside the first-signed-integer decimal.
func soulCalibur6Config() gameConfig {
	return gameConfig{
		fields: []FieldConfig{
			{ID: CharacterField, Label: "Character", Type: entity.Text},
			{ID: CommandField, Label: "Command", Type: entity.Text, Notated: true,
				AllowedOperators: []string{OpContains, OpNotContains, OpStartsWith, OpEndsWith, OpEquals}},
			{ID: StanceField, Label: "Stance", Type: entity.Text},
			{ID: HitLevelField, Label: "Hit Level", Type: entity.Enum, Options: []Option{
				{Value: "H", Label: "High"},
				{Value: "M", Label: "Mid"},
				{Value: "L", Label: "Low"},
				{Value: "SH", Label: "Special High"},
				{Value: "SM", Label: "Special Mid"},
				{Value: "SL", Label: "Special Low"},
				{Value: "Th", Label: "Throw"},
			}},
			{ID: ImpactField, Label: "Impact", Type: entity.Number},
			{ID: DamageField, Label: "Damage", Type: entity.Number},
			{ID: BlockField, Label: "Block", Type: entity.Number},
			{ID: HitField, Label: "Hit", Type: entity.Number},
			{ID: CounterHitField, Label: "Counter Hit", Type: entity.Number},
			{ID: GuardBurstField, Label: "Guard Burst", Type: entity.Number},
			{ID: PropertiesField, Label: "Properties", Type: entity.Text},
			{ID: NotesField, Label: "Notes", Type: entity.Text},
			{ID: CombinedInputField, Label: "Input", Type: entity.Text, Notated: true,
				AllowedOperators: []string{OpContains, OpNotContains, OpStartsWith, OpEndsWith}},
		},
		operators: []Operator{
			{ID: "safeOnBlock", Label: "safe", Shape: ShapeNone, AppliesTo: numberTypes,
				Test: func(fv entity.FieldValue, _, _ string) bool {
					return fv.Num != nil && *fv.Num >= -8
				}},
			{ID: "punishableOnBlock", Label: "punishable", Shape: ShapeNone, AppliesTo: numberTypes,
				Test: func(fv entity.FieldValue, _, _ string) bool {
					return fv.Num != nil && *fv.Num <= -10
				}},
		},
	}
}
