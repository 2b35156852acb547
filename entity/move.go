package entity

// GameID identifies a supported game's dataset and registry.
type GameID string

const (
	SoulCalibur6 GameID = "soulcalibur6"
	Tekken8      GameID = "tekken8"
)

// CharacterScope selects one character's moves or the whole roster.
// Zero value is the whole roster.
type CharacterScope struct {
	ID  int
	one bool
}

// Character scopes a single character by id.
func Character(id int) CharacterScope {
	return CharacterScope{ID: id, one: true}
}

// AllCharacters scopes the whole roster.
func AllCharacters() CharacterScope {
	return CharacterScope{}
}

// All reports whether the scope covers the whole roster.
func (cs CharacterScope) All() bool {
	return !cs.one
}

// Move is one row of frame data for a character.
// Constructed once at load, immutable after.
//
// Decimal fields are a finite number or nil, never NaN; the display string
// keeps whatever the sheet said ("KND", "-8~-6", ...).
type Move struct {
	ID            int      `json:"id"`
	CharacterID   int      `json:"characterId"`
	Character     string   `json:"character"`
	Command       []string `json:"command"`
	Stance        []string `json:"stance,omitempty"`
	HitLevel      []string `json:"hitLevel,omitempty"`
	Impact        *float64 `json:"impact,omitempty"`
	Damage        string   `json:"damage,omitempty"`
	DamageDec     *float64 `json:"damageDec,omitempty"`
	Block         string   `json:"block,omitempty"`
	BlockDec      *float64 `json:"blockDec,omitempty"`
	Hit           string   `json:"hit,omitempty"`
	HitDec        *float64 `json:"hitDec,omitempty"`
	CounterHit    string   `json:"counterHit,omitempty"`
	CounterHitDec *float64 `json:"counterHitDec,omitempty"`
	GuardBurst    *float64 `json:"guardBurst,omitempty"`
	Properties    []string `json:"properties,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}
