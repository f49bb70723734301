package nrow

import (
	"github.com/vovakirdan/tui-nrow/internal/canvas"
	"github.com/vovakirdan/tui-nrow/internal/config"
	"github.com/vovakirdan/tui-nrow/internal/core"
	"github.com/vovakirdan/tui-nrow/internal/message"
)

// Compositor derives the four screen layers from game state. Priority,
// highest first: cursor, marks, frame, messages. Layers are rebuilt in full
// on every call and hold no state between frames.
type Compositor struct {
	layout     config.Layout
	frame      canvas.FrameGlyphs
	box        canvas.BoxGlyphs
	fill       rune
	background core.Cell
	policy     message.Policy

	frameColor   core.Color
	cursorColor  core.Color
	messageColor core.Color
}

// NewCompositor decodes glyphs and colors from cfg.
func NewCompositor(cfg config.Config) (*Compositor, error) {
	frame, err := cfg.Field.FrameGlyphs()
	if err != nil {
		return nil, err
	}
	box, err := cfg.Cursor.BoxGlyphs()
	if err != nil {
		return nil, err
	}
	fill, err := config.SingleRune(cfg.Field.Fill)
	if err != nil {
		return nil, err
	}
	bg, err := config.SingleRune(cfg.Screen.Background)
	if err != nil {
		return nil, err
	}

	c := &Compositor{
		layout:     cfg.Layout(),
		frame:      frame,
		box:        box,
		fill:       fill,
		background: core.Cell{Rune: bg, Color: core.ColorDefault},
	}
	if c.frameColor, err = core.ParseColor(cfg.Field.Color); err != nil {
		return nil, err
	}
	if c.cursorColor, err = core.ParseColor(cfg.Cursor.Color); err != nil {
		return nil, err
	}
	if c.messageColor, err = core.ParseColor(cfg.Messages.Color); err != nil {
		return nil, err
	}
	return c, nil
}

// Layout returns the screen geometry.
func (c *Compositor) Layout() config.Layout { return c.layout }

// SetPolicy sets the message consumption policy. The default is Persist.
func (c *Compositor) SetPolicy(p message.Policy) { c.policy = p }

// CellAnchor returns the screen position of the frame corner above and to
// the left of board cell at.
func (c *Compositor) CellAnchor(at core.Coord) core.Coord {
	f := c.layout.Field
	return core.At(
		f.Row+at.Row*(c.layout.GlyphRows+1),
		f.Col+at.Col*(c.layout.GlyphCols+1),
	)
}

// CellOrigin returns the screen position of the first glyph rune of board cell at.
func (c *Compositor) CellOrigin(at core.Coord) core.Coord {
	return c.CellAnchor(at).Add(1, 1)
}

// FrameLayer draws the board grid.
func (c *Compositor) FrameLayer(b *Board) canvas.Layer {
	rows := make([]int, b.Rows()+1)
	for k := range rows {
		rows[k] = c.layout.Field.Row + k*(c.layout.GlyphRows+1)
	}
	cols := make([]int, b.Cols()+1)
	for k := range cols {
		cols[k] = c.layout.Field.Col + k*(c.layout.GlyphCols+1)
	}

	l := canvas.NewLayer()
	canvas.Grid(l, rows, cols, c.frame, c.fill, c.frameColor)
	return l
}

// MarksLayer blits each occupied cell's player glyph.
func (c *Compositor) MarksLayer(b *Board, players map[Marker]Player) canvas.Layer {
	l := canvas.NewLayer()
	for r := 0; r < b.Rows(); r++ {
		for col := 0; col < b.Cols(); col++ {
			at := core.At(r, col)
			m := b.Get(at)
			if m == Empty {
				continue
			}
			p, ok := players[m]
			if !ok {
				continue
			}
			canvas.Blit(l, c.CellOrigin(at), p.Glyph, p.Color)
		}
	}
	return l
}

// CursorLayer outlines the active cell. A nil active cell yields an empty layer.
func (c *Compositor) CursorLayer(active *core.Coord) canvas.Layer {
	l := canvas.NewLayer()
	if active == nil {
		return l
	}
	anchor := c.CellAnchor(*active)
	rect := core.NewRect(anchor.Row, anchor.Col, c.layout.GlyphRows+2, c.layout.GlyphCols+2)
	canvas.Box(l, rect, c.box, c.cursorColor)
	return l
}

// MessagesLayer fills the message pane with the formatted unsent notices.
// Under the Once policy the rendered notices are marked sent.
func (c *Compositor) MessagesLayer(q *message.Queue) canvas.Layer {
	pane := c.layout.Messages
	l := canvas.NewLayer()
	canvas.Fill(l, pane, q.Render(pane.W, pane.H, c.policy), c.messageColor)
	return l
}

// Compose builds the layer stack for the current state of g. The cursor
// layer is empty when cursorVisible is false or there is no active cell.
func (c *Compositor) Compose(g *Game, cursorVisible bool) *canvas.Stack {
	var active *core.Coord
	if at, ok := g.ActiveCell(); ok && cursorVisible {
		active = &at
	}
	return canvas.NewStack(c.background,
		c.CursorLayer(active),
		c.MarksLayer(g.Board(), g.players),
		c.FrameLayer(g.Board()),
		c.MessagesLayer(g.Messages()),
	)
}

// Render composes g onto a screen of the configured size.
func (c *Compositor) Render(g *Game, cursorVisible bool) *core.Screen {
	screen := core.NewScreen(c.layout.Screen.W, c.layout.Screen.H)
	c.Compose(g, cursorVisible).Draw(screen)
	return screen
}
