package match

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/playgrid/tictactoe-sim/internal/board"
	"github.com/playgrid/tictactoe-sim/internal/player"
)

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusDrawn      = "drawn"
	StatusForfeited  = "forfeited"
)

var (
	ErrTooFewPlayers  = errors.New("match needs at least two players")
	ErrLabelMismatch  = errors.New("players and labels must pair up")
	ErrDuplicateLabel = errors.New("labels must be distinct")
	ErrEmptyLabel     = errors.New("label must be non-empty")
	ErrMatchOver      = errors.New("match is already over")
)

// Outcome - the terminal report of a match. Scores assign 1/0 per label:
// a win gives the winner 1 and everyone else 0, a draw gives all 0, and a
// forfeit gives the forfeiting player 0 and every other player 1.
type Outcome struct {
	Status string
	Winner string
	Loser  string
	Reason error
	Scores map[string]int
}

// ObserverFunc - a presentation hook invoked after every completed move with
// the board before the move, the acting label, the chosen location, and the
// board after. Hooks cannot fail; veto power belongs to player.Observer.
type ObserverFunc func(prev board.Board, label string, loc board.Location, next board.Board)

// Match - drives alternating turns over an ordered cycle of players until a
// win, draw, or forfeit. Players and labels are paired positionally; the
// active player rotates round-robin after every successful turn.
type Match struct {
	id      string
	players []player.Player
	labels  []string
	board   board.Board
	turn    int
	status  string
	winner  string
	loser   string
	reason  error

	observers []ObserverFunc
}

// New - creates a match over the given starting board. Labels must be
// distinct, non-empty, and pair one-to-one with the players. Players that
// implement player.Labeled are told their label here.
func New(b board.Board, players []player.Player, labels []string) (*Match, error) {
	if len(players) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPlayers, len(players))
	}

	if len(players) != len(labels) {
		return nil, fmt.Errorf("%w: %d players, %d labels", ErrLabelMismatch, len(players), len(labels))
	}

	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		if label == board.EmptyCell {
			return nil, ErrEmptyLabel
		}
		if _, ok := seen[label]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
		}
		seen[label] = struct{}{}
	}

	for i, p := range players {
		if labeled, ok := p.(player.Labeled); ok {
			labeled.Setup(labels[i])
		}
	}

	return &Match{
		id:      uuid.NewString(),
		players: players,
		labels:  labels,
		board:   b,
		status:  StatusInProgress,
	}, nil
}

func (that *Match) ID() string {
	return that.id
}

// Board - the current board snapshot. Safe to hold across turns: boards are
// immutable values.
func (that *Match) Board() board.Board {
	return that.board
}

func (that *Match) Status() string {
	return that.status
}

// ActiveLabel - the label whose turn it is.
func (that *Match) ActiveLabel() string {
	return that.labels[that.turn]
}

// Observe - registers a presentation hook for completed moves.
func (that *Match) Observe(fn ObserverFunc) {
	that.observers = append(that.observers, fn)
}

// AdvanceTurn - plays exactly one turn: asks the active player for a move,
// applies it, notifies observers, and updates the match status. An illegal
// move or a failed move selection forfeits the acting player. Returns
// ErrMatchOver when called on a finished match.
func (that *Match) AdvanceTurn() error {
	if that.status != StatusInProgress {
		return fmt.Errorf("%w: status %s", ErrMatchOver, that.status)
	}

	active := that.players[that.turn]
	label := that.labels[that.turn]
	prev := that.board

	loc, err := active.GetMove(prev)
	if err != nil {
		that.forfeit(label, fmt.Errorf("move selection failed: %w", err))
		return nil
	}

	next, err := prev.Move(loc, label)
	if err != nil {
		that.forfeit(label, err)
		return nil
	}

	that.board = next

	for i, p := range that.players {
		watcher, ok := p.(player.Observer)
		if !ok {
			continue
		}
		if err = watcher.Observe(prev, label, loc, next); err != nil {
			that.forfeit(that.labels[i], fmt.Errorf("observer failed: %w", err))
			return nil
		}
	}

	for _, fn := range that.observers {
		fn(prev, label, loc, next)
	}

	switch {
	case next.HasWinningLine():
		that.win(label)
	case next.IsFull():
		that.draw()
	default:
		that.turn = (that.turn + 1) % len(that.players)
	}

	return nil
}

// Run - drives turns until the match reaches a terminal status, then
// reports the outcome.
func (that *Match) Run() Outcome {
	for that.status == StatusInProgress {
		if err := that.AdvanceTurn(); err != nil {
			break
		}
	}

	return that.Outcome()
}

// Outcome - the current terminal report. Scores is nil while the match is
// still in progress.
func (that *Match) Outcome() Outcome {
	return Outcome{
		Status: that.status,
		Winner: that.winner,
		Loser:  that.loser,
		Reason: that.reason,
		Scores: that.scores(),
	}
}

func (that *Match) win(winner string) {
	that.status = StatusWon
	that.winner = winner
}

func (that *Match) draw() {
	that.status = StatusDrawn
}

// forfeit - ends the match immediately against loser. With exactly two
// players the opponent is recorded as the winner; with more, only the loser
// is recorded and the per-label scores carry the result.
func (that *Match) forfeit(loser string, reason error) {
	that.status = StatusForfeited
	that.loser = loser
	that.reason = reason

	if len(that.labels) == 2 {
		for _, label := range that.labels {
			if label != loser {
				that.winner = label
			}
		}
	}
}

func (that *Match) scores() map[string]int {
	if that.status == StatusInProgress {
		return nil
	}

	scores := make(map[string]int, len(that.labels))
	for _, label := range that.labels {
		switch that.status {
		case StatusWon:
			scores[label] = 0
			if label == that.winner {
				scores[label] = 1
			}
		case StatusDrawn:
			scores[label] = 0
		case StatusForfeited:
			scores[label] = 1
			if label == that.loser {
				scores[label] = 0
			}
		}
	}

	return scores
}
