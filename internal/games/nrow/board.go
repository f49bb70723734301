// Package nrow implements an N-in-a-row game for any number of players on a
// rectangular board: the board itself, the win detector, the turn order, the
// layered renderer and the controller that drives a match.
package nrow

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-nrow/internal/core"
)

// Marker identifies the player owning a cell.
type Marker string

// Empty is the marker of an unoccupied cell.
const Empty Marker = ""

// Board is a rows x columns grid of markers.
type Board struct {
	rows  int
	cols  int
	cells []Marker // row-major
}

// NewBoard creates an empty board.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("nrow: board size must be positive, got %dx%d", rows, cols)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Marker, rows*cols),
	}, nil
}

// Rows returns the number of board rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of board columns.
func (b *Board) Cols() int { return b.cols }

// InBounds reports whether at lies on the board.
func (b *Board) InBounds(at core.Coord) bool {
	return core.NewRect(0, 0, b.rows, b.cols).Contains(at)
}

// Get returns the marker at the given position, or Empty outside the board.
func (b *Board) Get(at core.Coord) Marker {
	if !b.InBounds(at) {
		return Empty
	}
	return b.cells[at.Row*b.cols+at.Col]
}

// Set stores m at the given position.
func (b *Board) Set(at core.Coord, m Marker) error {
	if !b.InBounds(at) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, at)
	}
	b.cells[at.Row*b.cols+at.Col] = m
	return nil
}

// IsEmpty reports whether the cell at the given position is unoccupied.
func (b *Board) IsEmpty(at core.Coord) bool {
	return b.InBounds(at) && b.Get(at) == Empty
}

// Full reports whether no empty cell remains.
func (b *Board) Full() bool {
	for _, m := range b.cells {
		if m == Empty {
			return false
		}
	}
	return true
}

// Row returns a copy of row r.
func (b *Board) Row(r int) []Marker {
	out := make([]Marker, b.cols)
	copy(out, b.cells[r*b.cols:(r+1)*b.cols])
	return out
}

// Column returns a copy of column c.
func (b *Board) Column(c int) []Marker {
	out := make([]Marker, b.rows)
	for r := range out {
		out[r] = b.cells[r*b.cols+c]
	}
	return out
}

// String renders the board one row per line, "." for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.cols; c++ {
			m := b.cells[r*b.cols+c]
			if m == Empty {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(string(m))
		}
	}
	return sb.String()
}
