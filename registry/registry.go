// Package registry holds the per-game capability tables driving the filter
// engine: field configs, merged operator definitions, and the field value
// extractors. Adding a field to a game means adding one config entry and one
// extractor row, nothing else.
package registry

import (
	"github.com/pkg/errors"

	"okizeme/entity"
)

// Registry is the merged field/operator table for one game.
// Swapped wholesale when the active game changes.
type Registry struct {
	game      entity.GameID
	fields    []FieldConfig
	fieldByID map[string]FieldConfig
	operators []Operator
	opByID    map[string]Operator
}

// ForGame builds the registry for a game: shared fields specialized by the
// game config, built-in operators merged with the game's customs (game wins
// on id collision). Errors on an unknown game or a field whose allow-list
// leaves it with no usable operator.
func ForGame(game entity.GameID) (reg *Registry, err error) {

	cfg, ok := gameConfigs[game]
	if !ok {
		err = errors.Errorf("no config for game %s", game)
		return
	}

	reg = &Registry{
		game:      game,
		fields:    cfg.fields,
		fieldByID: map[string]FieldConfig{},
		operators: mergeOperators(builtins(), cfg.operators),
		opByID:    map[string]Operator{},
	}

	for _, f := range reg.fields {
		reg.fieldByID[f.ID] = f
	}
	for _, op := range reg.operators {
		reg.opByID[op.ID] = op
	}

	err = reg.validate()
	return
}

// mergeOperators overlays customs on the built-ins, keeping display order.
func mergeOperators(base, customs []Operator) []Operator {

	byID := map[string]int{}
	for i, op := range base {
		byID[op.ID] = i
	}

	merged := make([]Operator, len(base))
	copy(merged, base)

	for _, op := range customs {
		if i, ok := byID[op.ID]; ok {
			merged[i] = op
			continue
		}
		merged = append(merged, op)
	}
	return merged
}

// validate fails fast on a field whose declared allow-list and the
// type-compatible operator set are disjoint.
func (reg *Registry) validate() (err error) {

	for _, f := range reg.fields {
		ops, cErr := reg.AvailableConditions(f.ID)
		if cErr != nil || len(ops) == 0 {
			err = errors.Errorf("field %s of game %s has no usable operators", f.ID, reg.game)
			return
		}
	}
	return
}

// Game returns the game this registry was built for.
func (reg *Registry) Game() entity.GameID {
	return reg.game
}

// Fields returns the ordered field configs.
func (reg *Registry) Fields() []FieldConfig {
	return reg.fields
}

// Field looks up a field config by id.
func (reg *Registry) Field(id string) (f FieldConfig, ok bool) {
	f, ok = reg.fieldByID[id]
	return
}

// Operator looks up an operator by id.
func (reg *Registry) Operator(id string) (op Operator, ok bool) {
	op, ok = reg.opByID[id]
	return
}

// AvailableConditions returns operators usable with a field: those whose
// AppliesTo includes the field's type, narrowed by the field's allow-list
// when present. Empty result for a known field is a configuration error.
func (reg *Registry) AvailableConditions(fieldID string) (ops []Operator, err error) {

	f, ok := reg.fieldByID[fieldID]
	if !ok {
		err = errors.Errorf("unknown field %s", fieldID)
		return
	}

	allowed := map[string]bool{}
	for _, id := range f.AllowedOperators {
		allowed[id] = true
	}

	for _, op := range reg.operators {
		if !op.Applies(f.Type) {
			continue
		}
		if len(f.AllowedOperators) > 0 && !allowed[op.ID] {
			continue
		}
		ops = append(ops, op)
	}

	if len(ops) == 0 {
		err = errors.Errorf("field %s allows no operators", fieldID)
	}
	return
}

// gameConfig bundles one game's fields and custom operators.
type gameConfig struct {
	fields    []FieldConfig
	operators []Operator
}

var gameConfigs = map[entity.GameID]gameConfig{
	entity.SoulCalibur6: soulCalibur6Config(),
	entity.Tekken8:      tekken8Config(),
}

// Games lists the configured games.
func Games() []entity.GameID {
	return []entity.GameID{entity.SoulCalibur6, entity.Tekken8}
}
