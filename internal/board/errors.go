package board

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMove - the common classification for every rule violation a
	// move can hit. Both move error types match it via errors.Is, so callers
	// can treat "illegal move" uniformly without caring which rule broke.
	ErrInvalidMove = errors.New("invalid move")

	ErrInvalidSize   = errors.New("board size must be positive")
	ErrMalformedGrid = errors.New("malformed grid")
)

// InvalidLocationError - the move referenced a cell outside the board.
type InvalidLocationError struct {
	Loc Location
}

func (that *InvalidLocationError) Error() string {
	return fmt.Sprintf("invalid location: %s", that.Loc)
}

func (that *InvalidLocationError) Is(target error) bool {
	return target == ErrInvalidMove
}

// OccupiedError - the move targeted a non-empty cell. Carries the existing
// occupant for diagnostics.
type OccupiedError struct {
	Loc      Location
	Occupant string
}

func (that *OccupiedError) Error() string {
	return fmt.Sprintf("%s already contains %s", that.Loc, that.Occupant)
}

func (that *OccupiedError) Is(target error) bool {
	return target == ErrInvalidMove
}
