package nrow

import (
	"fmt"
	"math/rand"
)

// Turns is a fixed cyclic order of players chosen once per game.
type Turns struct {
	order []Marker
	pos   int
}

// NewTurns shuffles a copy of markers with rng.
func NewTurns(markers []Marker, rng *rand.Rand) (*Turns, error) {
	if len(markers) == 0 {
		return nil, fmt.Errorf("nrow: no players")
	}
	order := make([]Marker, len(markers))
	copy(order, markers)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return &Turns{order: order}, nil
}

// Current returns the marker of the player to move.
func (t *Turns) Current() Marker {
	return t.order[t.pos]
}

// Next returns the marker of the player after the current one.
func (t *Turns) Next() Marker {
	return t.order[(t.pos+1)%len(t.order)]
}

// Advance moves to the next player, wrapping around.
func (t *Turns) Advance() {
	t.pos = (t.pos + 1) % len(t.order)
}

// Order returns a copy of the turn order.
func (t *Turns) Order() []Marker {
	out := make([]Marker, len(t.order))
	copy(out, t.order)
	return out
}
