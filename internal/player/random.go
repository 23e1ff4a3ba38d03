package player

import (
	"errors"
	"math/rand"

	"github.com/playgrid/tictactoe-sim/internal/board"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// RandomPlayer - picks a uniformly random legal move. It shuffles every
// location and trial-applies each one against the board until a move is
// accepted, so it can only fail on a board with no free cell.
type RandomPlayer struct {
	label string
	rng   *rand.Rand
}

// NewRandomPlayer - creates a random player driven by the given source.
// Sharing one seeded source across players makes a whole match reproducible.
func NewRandomPlayer(rng *rand.Rand) *RandomPlayer {
	return &RandomPlayer{rng: rng}
}

func (that *RandomPlayer) Setup(label string) {
	that.label = label
}

func (that *RandomPlayer) GetMove(b board.Board) (board.Location, error) {
	locs := b.Locations()
	that.rng.Shuffle(len(locs), func(i, j int) {
		locs[i], locs[j] = locs[j], locs[i]
	})

	for _, loc := range locs {
		if _, err := b.Move(loc, that.label); err == nil {
			return loc, nil
		}
	}

	return board.Location{}, ErrNoAvailableMoves
}
