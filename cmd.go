package okizeme

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"

	"okizeme/export"
	"okizeme/message"
)

// loadMoves reads the records in scope from the store.
func (m Model) loadMoves() tea.Cmd {

	ctx := m.ctx
	store := m.store
	game := m.game
	scope := m.scope()

	return func() tea.Msg {

		moves, err := store.Moves(ctx, game, scope)
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		return message.MovesLoadedMsg{Moves: moves}
	}
}

// awaitResult blocks on the scheduler until a recompute finishes. Re-armed
// on every ResultMsg so the channel always has a reader.
func (m Model) awaitResult() tea.Cmd {

	results := m.scheduler.Results()

	return func() tea.Msg {

		result, ok := <-results
		if !ok {
			return nil
		}
		return message.ResultMsg{Moves: result.Moves, Seq: result.Seq}
	}
}

// export writes the displayed moves, visible columns only, to a timestamped
// csv in the working directory.
func (m Model) export() tea.Cmd {

	moves := m.displayed
	columns := m.columns
	rs := m.rs()
	game := m.game

	return func() tea.Msg {

		path := fmt.Sprintf("%s-%s.csv", game, time.Now().Format("20060102-150405"))

		file, err := os.Create(path)
		if err != nil {
			return message.ErrorMsg{Err: errors.Wrapf(err, "failed to create %s", path)}
		}
		defer file.Close()

		err = export.WriteCSV(file, moves, columns, rs)
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		return message.ExportedMsg{Path: path}
	}
}
