// Package duck imports a frame-data spreadsheet (CSV export) through DuckDB
// and writes the per-character JSON files the explorer loads. DuckDB does
// the CSV wrangling; the fighting-game clean-up rules live in normalize.go.
package duck

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"okizeme/entity"
)

type Importer struct {
	db     *sql.DB
	logger entity.Logger
}

func New(lgr entity.Logger) (imp *Importer, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	imp = &Importer{
		db:     db,
		logger: lgr,
	}
	return
}

func (imp *Importer) Close() {
	imp.db.Close()
}

// sheetColumns in the order the community sheet carries them.
var sheetColumns = []string{
	"Character", "Command", "Stance", "Hit Level", "Impact", "Damage",
	"Block", "Hit", "Counter Hit", "Guard Burst", "Properties", "Notes",
}

// idOffset keeps move ids lined up with sheet row numbers
// (three skipped banner rows plus the header).
const idOffset = 5

// ImportSheet reads the CSV export, skipping the sheet's banner rows, and
// returns normalized moves grouped by character name.
func (imp *Importer) ImportSheet(path string, skip int) (byChar map[string][]entity.Move, err error) {

	query := fmt.Sprintf(`
		SELECT %s
		FROM read_csv_auto('%s', skip=%d, header=true, all_varchar=true)
	`, quoteColumns(sheetColumns), path, skip)

	rows, err := imp.db.Query(query)
	if err != nil {
		err = errors.Wrapf(err, "failed to read sheet %s", path)
		return
	}
	defer rows.Close()

	byChar = map[string][]entity.Move{}
	id := idOffset

	for rows.Next() {
		vals := make([]any, len(sheetColumns))
		ptrs := make([]any, len(sheetColumns))
		for i := range vals {
			ptrs[i] = &vals[i]
		}

		err = rows.Scan(ptrs...)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan sheet row")
			return
		}

		move := normalizeRow(rowStrings(vals), id)
		id++

		if move.Character == "" {
			continue
		}
		byChar[move.Character] = append(byChar[move.Character], move)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating sheet rows")
	return
}

// WriteJSON writes one <dir>/<game>/<Character>.json per character, in the
// shape the movedata store reads.
func (imp *Importer) WriteJSON(dir string, game entity.GameID, byChar map[string][]entity.Move) (err error) {

	gameDir := filepath.Join(dir, string(game))
	err = os.MkdirAll(gameDir, 0755)
	if err != nil {
		err = errors.Wrapf(err, "failed to create %s", gameDir)
		return
	}

	charID := 0
	for _, name := range sortedKeys(byChar) {
		charID++

		doc := map[string]any{
			"characterId": charID,
			"character":   name,
			"moves":       byChar[name],
		}

		var data []byte
		data, err = json.MarshalIndent(doc, "", "  ")
		if err != nil {
			err = errors.Wrapf(err, "failed to marshal %s", name)
			return
		}

		path := filepath.Join(gameDir, name+".json")
		err = os.WriteFile(path, data, 0644)
		if err != nil {
			err = errors.Wrapf(err, "failed to write %s", path)
			return
		}
	}
	return
}

func quoteColumns(cols []string) string {
	out := ""
	for i, c := range cols {
		if i > 0 {
			out += ", "
		}
		out += `"` + c + `"`
	}
	return out
}

func rowStrings(vals []any) map[string]string {

	row := map[string]string{}
	for i, col := range sheetColumns {
		if s, ok := vals[i].(string); ok {
			row[col] = s
		}
	}
	return row
}
