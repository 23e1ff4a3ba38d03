package player

import (
	"github.com/playgrid/tictactoe-sim/internal/board"
)

// Player - anything that can choose a move for the visible board. An error
// means "I cannot or will not move" and is treated by the match driver as a
// forfeit by this player.
type Player interface {
	GetMove(b board.Board) (board.Location, error)
}

// Labeled - players that want to know which label they play as. The match
// driver calls Setup once, at match construction.
type Labeled interface {
	Setup(label string)
}

// Observer - players that want to see every completed move. An error vetoes
// the match: the driver records it as a forfeit by the observing player.
type Observer interface {
	Observe(prev board.Board, label string, loc board.Location, next board.Board) error
}
