// Package movedata loads normalized per-character move lists from a data
// directory laid out <dir>/<game>/<Character>.json, as written by
// okizeme-import. Records are parsed once and immutable after.
package movedata

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"okizeme/entity"
)

// CharacterRef names one character file in the data dir.
type CharacterRef struct {
	ID   int
	Name string
}

// Store reads move data for one game at a time.
type Store struct {
	dir    string
	logger entity.Logger
}

// New points a store at a data directory.
func New(dir string, lgr entity.Logger) *Store {
	return &Store{dir: dir, logger: lgr}
}

// characterFile is the on-disk shape of one character's move list.
type characterFile struct {
	CharacterID int           `json:"characterId"`
	Character   string        `json:"character"`
	Moves       []entity.Move `json:"moves"`
}

// Characters lists the roster found on disk for a game, ordered by id.
func (st *Store) Characters(game entity.GameID) (refs []CharacterRef, err error) {

	paths, err := st.characterPaths(game)
	if err != nil {
		return
	}

	for _, path := range paths {
		var cf characterFile
		cf, err = readCharacter(path)
		if err != nil {
			return
		}
		refs = append(refs, CharacterRef{ID: cf.CharacterID, Name: cf.Character})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].ID < refs[j].ID })
	return
}

// Moves loads the records in scope: one character's file, or every file
// merged for the whole roster.
func (st *Store) Moves(ctx context.Context, game entity.GameID, scope entity.CharacterScope) (moves []entity.Move, err error) {

	paths, err := st.characterPaths(game)
	if err != nil {
		return
	}

	for _, path := range paths {
		var cf characterFile
		cf, err = readCharacter(path)
		if err != nil {
			return
		}

		if !scope.All() && cf.CharacterID != scope.ID {
			continue
		}

		for _, m := range cf.Moves {
			m.CharacterID = cf.CharacterID
			m.Character = cf.Character
			moves = append(moves, m)
		}
	}

	if st.logger != nil {
		st.logger.Info(ctx, "loaded moves", "game", string(game), "count", len(moves))
	}
	return
}

// ParseScope maps the wire sentinel -1 to the whole roster.
func ParseScope(id int) entity.CharacterScope {
	if id == -1 {
		return entity.AllCharacters()
	}
	return entity.Character(id)
}

func (st *Store) characterPaths(game entity.GameID) (paths []string, err error) {

	glob := filepath.Join(st.dir, string(game), "*.json")
	paths, err = filepath.Glob(glob)
	if err != nil {
		err = errors.Wrapf(err, "failed to glob %s", glob)
		return
	}
	if len(paths) == 0 {
		err = errors.Errorf("no move data under %s", filepath.Join(st.dir, string(game)))
		return
	}

	sort.Strings(paths)
	return
}

func readCharacter(path string) (cf characterFile, err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read %s", path)
		return
	}

	err = json.Unmarshal(data, &cf)
	if err != nil {
		err = errors.Wrapf(err, "failed to unmarshal %s", path)
		return
	}

	if cf.Character == "" {
		cf.Character = strings.TrimSuffix(filepath.Base(path), ".json")
	}
	return
}
