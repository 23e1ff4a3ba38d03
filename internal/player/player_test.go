package player

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/tictactoe-sim/internal/board"
)

func TestRandomPlayer_GetMove(t *testing.T) {
	t.Run("Only legal moves", func(t *testing.T) {
		// Given: a board with a single free cell
		b, err := board.Parse("xox\noxo\nox.")
		require.NoError(t, err)

		p := NewRandomPlayer(rand.New(rand.NewSource(1)))
		p.Setup("x")

		// When: the player picks a move
		loc, err := p.GetMove(b)

		// Then: it must be the one remaining cell
		require.NoError(t, err)
		require.Equal(t, board.Location{Row: 2, Col: 2}, loc)
	})

	t.Run("Move lands on an empty cell", func(t *testing.T) {
		// Given: a half-played board
		b, err := board.Parse("x.o\n.x.\no..")
		require.NoError(t, err)

		p := NewRandomPlayer(rand.New(rand.NewSource(42)))
		p.Setup("o")

		// When: the player picks a move
		loc, err := p.GetMove(b)
		require.NoError(t, err)

		// Then: applying it succeeds
		next, err := b.Move(loc, "o")
		require.NoError(t, err)

		cell, err := next.At(loc)
		require.NoError(t, err)
		assert.Equal(t, "o", cell)
	})

	t.Run("Error on a full board", func(t *testing.T) {
		// Given: a board with no free cell
		b, err := board.Parse("xox\noxo\noxo")
		require.NoError(t, err)

		p := NewRandomPlayer(rand.New(rand.NewSource(1)))
		p.Setup("x")

		// When: the player is asked to move anyway
		_, err = p.GetMove(b)

		// Then: it reports that no move is available
		require.ErrorIs(t, err, ErrNoAvailableMoves)
	})

	t.Run("Deterministic with a fixed seed", func(t *testing.T) {
		b, err := board.New(3)
		require.NoError(t, err)

		first := NewRandomPlayer(rand.New(rand.NewSource(7)))
		first.Setup("x")
		second := NewRandomPlayer(rand.New(rand.NewSource(7)))
		second.Setup("x")

		locA, err := first.GetMove(b)
		require.NoError(t, err)
		locB, err := second.GetMove(b)
		require.NoError(t, err)

		assert.Equal(t, locA, locB)
	})
}
