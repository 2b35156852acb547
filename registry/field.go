package registry

import "okizeme/entity"

// Well-known field ids shared by every game config.
const (
	CharacterField     = "character"
	CommandField       = "command"
	StanceField        = "stance"
	HitLevelField      = "hitLevel"
	ImpactField        = "impact"
	DamageField        = "damage"
	BlockField         = "block"
	HitField           = "hit"
	CounterHitField    = "counterHit"
	GuardBurstField    = "guardBurst"
	PropertiesField    = "properties"
	NotesField         = "notes"
	CombinedInputField = "combinedInput"
)

// Option is one selectable value for an enum field.
type Option struct {
	Value string
	Label string
}

// FieldConfig declares one filterable field of a game's move table.
// AllowedOperators, when present, narrows the type-compatible operator set.
// Notated fields run through the notation translator before filter and sort.
type FieldConfig struct {
	ID               string
	Label            string
	Type             entity.FieldType
	AllowedOperators []string
	Options          []Option
	Notated          bool
}
