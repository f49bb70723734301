package canvas

import (
	"github.com/vovakirdan/tui-nrow/internal/core"
)

// FrameGlyphs is the glyph set of a grid frame.
type FrameGlyphs struct {
	TopLeft     rune
	Horizontal  rune
	TeeDown     rune // joint on the top edge
	TopRight    rune
	Vertical    rune
	TeeRight    rune // joint on the left edge
	TeeLeft     rune // joint on the right edge
	TeeUp       rune // joint on the bottom edge
	BottomRight rune
	BottomLeft  rune
	Cross       rune
}

// BoxGlyphs is the glyph set of an unfilled rectangle.
type BoxGlyphs struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

// Grid draws a frame whose lines run along the given screen rows and
// columns. Both lists must be sorted and hold at least two entries; the
// first and last entries are the outer edges. Every cell of the bounding
// rectangle is classified: corner, then edge joint, then inner cross, then
// straight line, otherwise fill.
func Grid(dst Layer, rows, cols []int, g FrameGlyphs, fill rune, color core.Color) {
	if len(rows) < 2 || len(cols) < 2 {
		return
	}
	onRow := make(map[int]bool, len(rows))
	for _, r := range rows {
		onRow[r] = true
	}
	onCol := make(map[int]bool, len(cols))
	for _, c := range cols {
		onCol[c] = true
	}
	top, bottom := rows[0], rows[len(rows)-1]
	left, right := cols[0], cols[len(cols)-1]

	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			var r rune
			switch {
			case row == top && col == left:
				r = g.TopLeft
			case row == top && col == right:
				r = g.TopRight
			case row == bottom && col == left:
				r = g.BottomLeft
			case row == bottom && col == right:
				r = g.BottomRight
			case row == top && onCol[col]:
				r = g.TeeDown
			case row == bottom && onCol[col]:
				r = g.TeeUp
			case col == left && onRow[row]:
				r = g.TeeRight
			case col == right && onRow[row]:
				r = g.TeeLeft
			case onRow[row] && onCol[col]:
				r = g.Cross
			case onRow[row]:
				r = g.Horizontal
			case onCol[col]:
				r = g.Vertical
			default:
				r = fill
			}
			dst.Set(core.At(row, col), r, color)
		}
	}
}

// Box draws the outline of r: four corners plus horizontal and vertical edges.
// The interior is left undefined so lower layers show through.
func Box(dst Layer, r core.Rect, g BoxGlyphs, color core.Color) {
	if r.H < 2 || r.W < 2 {
		return
	}
	top, bottom := r.Row, r.Bottom()-1
	left, right := r.Col, r.Right()-1

	// Corners
	dst.Set(core.At(top, left), g.TopLeft, color)
	dst.Set(core.At(top, right), g.TopRight, color)
	dst.Set(core.At(bottom, left), g.BottomLeft, color)
	dst.Set(core.At(bottom, right), g.BottomRight, color)

	// Horizontal edges
	for col := left + 1; col < right; col++ {
		dst.Set(core.At(top, col), g.Horizontal, color)
		dst.Set(core.At(bottom, col), g.Horizontal, color)
	}

	// Vertical edges
	for row := top + 1; row < bottom; row++ {
		dst.Set(core.At(row, left), g.Vertical, color)
		dst.Set(core.At(row, right), g.Vertical, color)
	}
}

// Blit copies a multi-line glyph with its top-left corner at origin.
// Lines may have different lengths; every rune, spaces included, is copied.
func Blit(dst Layer, origin core.Coord, lines []string, color core.Color) {
	for dRow, line := range lines {
		dCol := 0
		for _, r := range line {
			dst.Set(origin.Add(dRow, dCol), r, color)
			dCol++
		}
	}
}

// Fill writes flat text into region row-major, region.W runes per row.
// It stops when either the text or the region runs out; the rest of the
// region stays undefined.
func Fill(dst Layer, region core.Rect, flat string, color core.Color) {
	if region.Empty() {
		return
	}
	text := []rune(flat)
	i := 0
	for row := region.Row; row < region.Bottom(); row++ {
		for col := region.Col; col < region.Right(); col++ {
			if i >= len(text) {
				return
			}
			dst.Set(core.At(row, col), text[i], color)
			i++
		}
	}
}
