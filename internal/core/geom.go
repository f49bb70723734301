// Package core provides fundamental types shared by the game logic and the
// terminal front-ends. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import "fmt"

// Coord addresses a cell by row and column. The same type is used for board
// cells and for screen cells; the two spaces are related only through the
// compositor's layout math.
type Coord struct {
	Row int
	Col int
}

// At is shorthand for Coord{Row: row, Col: col}.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Add returns the coordinate shifted by the given deltas.
func (c Coord) Add(dRow, dCol int) Coord {
	return Coord{Row: c.Row + dRow, Col: c.Col + dCol}
}

// String formats the coordinate as "(row, col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Rect is an axis-aligned region of cells anchored at its top-left corner.
type Rect struct {
	Row, Col int // Top-left corner position
	H, W     int // Height and width
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(row, col, h, w int) Rect {
	return Rect{Row: row, Col: col, H: h, W: w}
}

// RectFromCorners builds a rectangle from an inclusive top-left corner and an
// exclusive bottom-right corner.
func RectFromCorners(topLeft, bottomRight Coord) Rect {
	return Rect{
		Row: topLeft.Row,
		Col: topLeft.Col,
		H:   bottomRight.Row - topLeft.Row,
		W:   bottomRight.Col - topLeft.Col,
	}
}

// Right returns the column just past the right edge.
func (r Rect) Right() int {
	return r.Col + r.W
}

// Bottom returns the row just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Row + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the coordinate is inside this rectangle.
func (r Rect) Contains(c Coord) bool {
	return c.Col >= r.Col && c.Col < r.Right() && c.Row >= r.Row && c.Row < r.Bottom()
}

// Within reports whether r lies entirely inside outer.
func (r Rect) Within(outer Rect) bool {
	return r.Row >= outer.Row && r.Col >= outer.Col &&
		r.Bottom() <= outer.Bottom() && r.Right() <= outer.Right()
}

// Intersect returns the overlapping part of two rectangles.
// The result is Empty when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	top := Max(r.Row, other.Row)
	left := Max(r.Col, other.Col)
	bottom := Min(r.Bottom(), other.Bottom())
	right := Min(r.Right(), other.Right())
	if bottom <= top || right <= left {
		return Rect{Row: top, Col: left}
	}
	return Rect{Row: top, Col: left, H: bottom - top, W: right - left}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
