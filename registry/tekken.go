package registry

import "okizeme/entity"

// tekken8Config declares the Tekken 8 move table, fed from the Wavu wiki
// import. Impact carries the startup frame, guard burst has no analog and is
// absent from every record (left filterable; empty/!empty still apply).
func tekken8Config() gameConfig {
	return gameConfig{
		fields: []FieldConfig{
			{ID: CharacterField, Label: "Character", Type: entity.Text},
			{ID: CommandField, Label: "Command", Type: entity.Text, Notated: true,
				AllowedOperators: []string{OpContains, OpNotContains, OpStartsWith, OpEndsWith, OpEquals}},
			{ID: HitLevelField, Label: "Hit Level", Type: entity.Enum, Options: []Option{
				{Value: "h", Label: "High"},
				{Value: "m", Label: "Mid"},
				{Value: "l", Label: "Low"},
				{Value: "sm", Label: "Special Mid"},
				{Value: "t", Label: "Throw"},
			}},
			{ID: ImpactField, Label: "Startup", Type: entity.Number},
			{ID: DamageField, Label: "Damage", Type: entity.Number},
			{ID: BlockField, Label: "On Block", Type: entity.Number},
			{ID: HitField, Label: "On Hit", Type: entity.Number},
			{ID: CounterHitField, Label: "On CH", Type: entity.Number},
			{ID: NotesField, Label: "Notes", Type: entity.Text},
			{ID: CombinedInputField, Label: "Input", Type: entity.Text, Notated: true,
				AllowedOperators: []string{OpContains, OpNotContains, OpStartsWith, OpEndsWith}},
		},
		operators: []Operator{
			{ID: "launchPunishable", Label: "launch punish", Shape: ShapeNone, AppliesTo: numberTypes,
				Test: func(fv entity.FieldValue, _, _ string) bool {
					return fv.Num != nil && *fv.Num <= -15
				}},
		},
	}
}
