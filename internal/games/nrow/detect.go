package nrow

import "github.com/vovakirdan/tui-nrow/internal/core"

// WinRule holds the run length needed along each direction. Diagonals
// bounds which diagonals are long enough to be swept.
type WinRule struct {
	Rows      int
	Columns   int
	Diagonals int
}

// DiagonalRunLength is the run length that wins along a diagonal.
// It equals the column length; Diagonals only selects the swept diagonals.
func (w WinRule) DiagonalRunLength() int {
	return w.Columns
}

// Direction is the line kind a win was found along.
type Direction int

const (
	DirNone Direction = iota
	DirRow
	DirColumn
	DirRightDiagonal // top-left to bottom-right
	DirLeftDiagonal  // top-right to bottom-left
)

func (d Direction) String() string {
	switch d {
	case DirRow:
		return "row"
	case DirColumn:
		return "column"
	case DirRightDiagonal:
		return "right diagonal"
	case DirLeftDiagonal:
		return "left diagonal"
	default:
		return "none"
	}
}

// OutcomeKind classifies a board evaluation.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeWin
	OutcomeDraw
)

// Outcome is the result of evaluating a board.
type Outcome struct {
	Kind      OutcomeKind
	Winner    Marker
	Direction Direction
	Start     core.Coord // First cell of the swept line holding the run
}

// Finished reports whether the outcome ends the game.
func (o Outcome) Finished() bool {
	return o.Kind != OutcomeNone
}

// LongestRun returns the marker of the first run of at least n equal
// non-empty markers in seq. Empty cells break runs.
func LongestRun(seq []Marker, n int) (Marker, bool) {
	if n <= 0 {
		return Empty, false
	}
	var (
		current Marker
		length  int
	)
	for _, m := range seq {
		switch {
		case m == Empty:
			current, length = Empty, 0
			continue
		case m == current:
			length++
		default:
			current, length = m, 1
		}
		if length >= n {
			return current, true
		}
	}
	return Empty, false
}

// Evaluate checks the board. A full board is a draw even when it also holds
// a winning run. Otherwise rows are swept first, then columns, then right
// diagonals, then left diagonals; the first run found wins.
func Evaluate(b *Board, rule WinRule) Outcome {
	if b.Full() {
		return Outcome{Kind: OutcomeDraw}
	}

	if rule.Rows <= b.cols {
		for r := 0; r < b.rows; r++ {
			if m, ok := LongestRun(b.Row(r), rule.Rows); ok {
				return win(m, DirRow, core.At(r, 0))
			}
		}
	}

	if rule.Columns <= b.rows {
		for c := 0; c < b.cols; c++ {
			if m, ok := LongestRun(b.Column(c), rule.Columns); ok {
				return win(m, DirColumn, core.At(0, c))
			}
		}
	}

	n := rule.DiagonalRunLength()
	for _, start := range rightDiagonalStarts(b.rows, b.cols, rule.Diagonals) {
		if m, ok := LongestRun(diagonal(b, start, 1), n); ok {
			return win(m, DirRightDiagonal, start)
		}
	}
	for _, start := range leftDiagonalStarts(b.rows, b.cols, rule.Diagonals) {
		if m, ok := LongestRun(diagonal(b, start, -1), n); ok {
			return win(m, DirLeftDiagonal, start)
		}
	}

	return Outcome{}
}

func win(m Marker, d Direction, start core.Coord) Outcome {
	return Outcome{Kind: OutcomeWin, Winner: m, Direction: d, Start: start}
}

// rightDiagonalStarts lists the starts of the down-right diagonals holding at
// least length cells: down the first column, then along the first row.
func rightDiagonalStarts(rows, cols, length int) []core.Coord {
	if length <= 0 || length > rows || length > cols {
		return nil
	}
	var starts []core.Coord
	for r := 0; r <= rows-length; r++ {
		starts = append(starts, core.At(r, 0))
	}
	for c := 1; c <= cols-length; c++ {
		starts = append(starts, core.At(0, c))
	}
	return starts
}

// leftDiagonalStarts lists the starts of the down-left diagonals holding at
// least length cells: along the first row, then down the last column.
func leftDiagonalStarts(rows, cols, length int) []core.Coord {
	if length <= 0 || length > rows || length > cols {
		return nil
	}
	var starts []core.Coord
	for c := length - 1; c < cols; c++ {
		starts = append(starts, core.At(0, c))
	}
	for r := 1; r <= rows-length; r++ {
		starts = append(starts, core.At(r, cols-1))
	}
	return starts
}

// diagonal collects markers from start stepping one row down and dCol
// columns per step until the board edge.
func diagonal(b *Board, start core.Coord, dCol int) []Marker {
	var seq []Marker
	for at := start; b.InBounds(at); at = at.Add(1, dCol) {
		seq = append(seq, b.Get(at))
	}
	return seq
}
