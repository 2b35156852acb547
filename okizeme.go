// Package okizeme is a terminal explorer for fighting-game frame data. The
// table filters and sorts several thousand move records per keystroke, so
// recomputes run on a coalescing scheduler off the interactive path while
// the previous result stays up, marked stale.
package okizeme

import (
	"context"

	"okizeme/entity"
	"okizeme/store/movedata"
)

// MoveStore specifies the move data backing the explorer.
type MoveStore interface {
	// Characters lists the roster on disk for a game
	Characters(game entity.GameID) ([]movedata.CharacterRef, error)
	// Moves loads the records in scope
	Moves(ctx context.Context, game entity.GameID, scope entity.CharacterScope) ([]entity.Move, error)
}
