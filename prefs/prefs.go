// Package prefs is the small key-value preference store: which notation
// maps are enabled per game and which columns the table shows. Backed by
// one yaml file; the engine only ever reads from it.
package prefs

import (
	"os"

	"okizeme/entity"
	"okizeme/notation"
	"okizeme/util"
)

type Prefs struct {
	// game id -> enabled notation map names
	Notation map[string][]string `yaml:"notation,omitempty"`

	// game id -> visible/ordered columns
	Columns map[string][]entity.Column `yaml:"columns,omitempty"`
}

// Load reads prefs, falling back to empty prefs when the file is absent.
func Load(path string) (p Prefs, err error) {

	_, statErr := os.Stat(path)
	if statErr != nil {
		return
	}

	err = util.LoadConfig(&p, path)
	return
}

// Save writes prefs back out.
func (p Prefs) Save(path string) error {
	return util.WriteConfig(p, path, 0644)
}

// EnabledMaps returns the enabled notation maps for a game, defaulted when
// never set.
func (p Prefs) EnabledMaps(game entity.GameID) []string {

	if maps, ok := p.Notation[string(game)]; ok {
		return maps
	}
	return notation.DefaultMaps(game)
}

// ColumnsFor returns the saved column set for a game, false when never set.
func (p Prefs) ColumnsFor(game entity.GameID) ([]entity.Column, bool) {
	cols, ok := p.Columns[string(game)]
	return cols, ok
}

// SetEnabledMaps records a game's enabled notation maps.
func (p *Prefs) SetEnabledMaps(game entity.GameID, maps []string) {

	if p.Notation == nil {
		p.Notation = map[string][]string{}
	}
	p.Notation[string(game)] = maps
}
