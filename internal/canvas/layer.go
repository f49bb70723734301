// Package canvas composes sparse character layers into a screen.
//
// A Layer maps screen coordinates to cells and is rebuilt from authoritative
// state every frame. A Stack resolves each coordinate against its layers in
// priority order: the first layer defining a coordinate wins, and coordinates
// no layer defines fall back to the background cell.
package canvas

import "github.com/vovakirdan/tui-nrow/internal/core"

// Layer is a sparse coordinate -> cell mapping.
type Layer map[core.Coord]core.Cell

// NewLayer returns an empty layer.
func NewLayer() Layer {
	return make(Layer)
}

// Set defines the cell at the given coordinate.
func (l Layer) Set(at core.Coord, r rune, color core.Color) {
	l[at] = core.Cell{Rune: r, Color: color}
}

// Get returns the cell at the given coordinate and whether the layer defines it.
func (l Layer) Get(at core.Coord) (core.Cell, bool) {
	c, ok := l[at]
	return c, ok
}

// Stack is an ordered list of layers, highest priority first.
type Stack struct {
	layers     []Layer
	background core.Cell
}

// NewStack creates a stack over the given layers, highest priority first.
// Nil layers are allowed and define nothing.
func NewStack(background core.Cell, layers ...Layer) *Stack {
	return &Stack{
		layers:     layers,
		background: background,
	}
}

// Resolve returns the cell of the highest-priority layer defining at,
// or the background cell.
func (s *Stack) Resolve(at core.Coord) core.Cell {
	for _, l := range s.layers {
		if c, ok := l[at]; ok {
			return c
		}
	}
	return s.background
}

// Draw resolves every cell of dst. Anything outside dst is clipped.
func (s *Stack) Draw(dst *core.Screen) {
	for row := 0; row < dst.Height(); row++ {
		for col := 0; col < dst.Width(); col++ {
			at := core.At(row, col)
			dst.Set(at, s.Resolve(at))
		}
	}
}
