package board

import (
	"fmt"
	"math"
	"strings"
)

const (
	// EmptyCell marks an unoccupied cell.
	EmptyCell = ""

	emptyMarker = "."
)

// Location - a 0-indexed (row, column) coordinate into the grid.
type Location struct {
	Row int
	Col int
}

func (that Location) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board - an immutable size×size grid snapshot. Every cell holds either
// EmptyCell or a player label. Move never mutates the receiver; it returns
// a new Board with one additional placed cell.
type Board struct {
	size  int
	cells []string
}

// New - creates an all-empty board of the given dimension.
func New(size int) (Board, error) {
	if size <= 0 {
		return Board{}, fmt.Errorf("%w: size %d", ErrInvalidSize, size)
	}

	return Board{
		size:  size,
		cells: make([]string, size*size),
	}, nil
}

// Parse - builds a board from a whitespace-separated block of lines.
// Each character is a label, or '.' for an empty cell. Blank lines and
// indentation are ignored.
func Parse(text string) (Board, error) {
	lines := strings.Fields(text)
	if len(lines) == 0 {
		return Board{}, fmt.Errorf("%w: no rows", ErrMalformedGrid)
	}

	rows := make([][]rune, 0, len(lines))
	width := len([]rune(lines[0]))
	total := 0

	for _, line := range lines {
		row := []rune(line)
		if len(row) != width {
			return Board{}, fmt.Errorf("%w: row %q has %d cells, want %d", ErrMalformedGrid, line, len(row), width)
		}
		rows = append(rows, row)
		total += len(row)
	}

	size := int(math.Sqrt(float64(total)))
	if size*size != total {
		return Board{}, fmt.Errorf("%w: %d cells is not a perfect square", ErrMalformedGrid, total)
	}

	cells := make([]string, 0, total)
	for _, row := range rows {
		for _, ch := range row {
			if string(ch) == emptyMarker {
				cells = append(cells, EmptyCell)
			} else {
				cells = append(cells, string(ch))
			}
		}
	}

	return Board{size: size, cells: cells}, nil
}

// Size - the grid dimension.
func (that Board) Size() int {
	return that.size
}

// At - the contents of a cell, or InvalidLocationError when out of bounds.
func (that Board) At(loc Location) (string, error) {
	if !that.contains(loc) {
		return "", &InvalidLocationError{Loc: loc}
	}

	return that.cells[that.index(loc)], nil
}

// Locations - every location on the board, row-major.
func (that Board) Locations() []Location {
	locs := make([]Location, 0, len(that.cells))
	for row := 0; row < that.size; row++ {
		for col := 0; col < that.size; col++ {
			locs = append(locs, Location{Row: row, Col: col})
		}
	}

	return locs
}

// Rows - the grid as ordered rows of cell tokens (label or '.').
func (that Board) Rows() [][]string {
	rows := make([][]string, that.size)
	for row := 0; row < that.size; row++ {
		rows[row] = make([]string, that.size)
		for col := 0; col < that.size; col++ {
			cell := that.cells[row*that.size+col]
			if cell == EmptyCell {
				cell = emptyMarker
			}
			rows[row][col] = cell
		}
	}

	return rows
}

// String - renders the grid, one token per cell, one newline-terminated
// line per row. Parsing the result reproduces an equal board.
func (that Board) String() string {
	var sb strings.Builder
	for _, row := range that.Rows() {
		for _, cell := range row {
			sb.WriteString(cell)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Move - places label at loc and returns the resulting board. The receiver
// is left unchanged. Fails with InvalidLocationError when loc is out of
// bounds and with OccupiedError when the cell already holds a label.
func (that Board) Move(loc Location, label string) (Board, error) {
	if !that.contains(loc) {
		return Board{}, &InvalidLocationError{Loc: loc}
	}

	if occupant := that.cells[that.index(loc)]; occupant != EmptyCell {
		return Board{}, &OccupiedError{Loc: loc, Occupant: occupant}
	}

	cells := make([]string, len(that.cells))
	copy(cells, that.cells)
	cells[that.index(loc)] = label

	return Board{size: that.size, cells: cells}, nil
}

// IsFull - true iff no cell is empty.
func (that Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// HasWinningLine - true iff some row, column, or main/anti diagonal is
// uniformly occupied by a single label.
func (that Board) HasWinningLine() bool {
	for _, line := range that.lines() {
		if that.lineWon(line) {
			return true
		}
	}

	return false
}

// IsOver - true iff the board is full or has a winning line.
func (that Board) IsOver() bool {
	return that.IsFull() || that.HasWinningLine()
}

func (that Board) contains(loc Location) bool {
	return loc.Row >= 0 && loc.Row < that.size && loc.Col >= 0 && loc.Col < that.size
}

func (that Board) index(loc Location) int {
	return loc.Row*that.size + loc.Col
}

// lines - the candidate winning lines: both main diagonals, every row,
// every column. No other diagonals are checked, for any size.
func (that Board) lines() [][]Location {
	n := that.size
	lines := make([][]Location, 0, 2*n+2)

	diag := make([]Location, 0, n)
	anti := make([]Location, 0, n)
	for i := 0; i < n; i++ {
		diag = append(diag, Location{Row: i, Col: i})
		anti = append(anti, Location{Row: i, Col: n - 1 - i})
	}
	lines = append(lines, diag, anti)

	for i := 0; i < n; i++ {
		row := make([]Location, 0, n)
		col := make([]Location, 0, n)
		for j := 0; j < n; j++ {
			row = append(row, Location{Row: i, Col: j})
			col = append(col, Location{Row: j, Col: i})
		}
		lines = append(lines, row, col)
	}

	return lines
}

func (that Board) lineWon(line []Location) bool {
	first := that.cells[that.index(line[0])]
	if first == EmptyCell {
		return false
	}

	for _, loc := range line[1:] {
		if that.cells[that.index(loc)] != first {
			return false
		}
	}

	return true
}
