package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-nrow/internal/canvas"
	"github.com/vovakirdan/tui-nrow/internal/core"
)

var (
	// ErrInvalid is returned for malformed or inconsistent settings.
	ErrInvalid = errors.New("config: invalid configuration")
	// ErrInvalidGlyph is returned when a glyph cannot occupy exactly one screen column per rune.
	ErrInvalidGlyph = errors.New("config: invalid glyph")
	// ErrFieldTooLarge is returned when the drawn field does not fit on the screen.
	ErrFieldTooLarge = errors.New("config: field does not fit on the screen")
)

// DefaultFrame is the frame glyph set in canvas.FrameGlyphs field order.
const DefaultFrame = "┏━┳┓┃┣┫┻┛┗╋"

// FrameGlyphs decodes the 11-rune frame string.
func (f FieldConfig) FrameGlyphs() (canvas.FrameGlyphs, error) {
	frame := f.Frame
	if frame == "" {
		frame = DefaultFrame
	}
	r := []rune(frame)
	if len(r) != 11 {
		return canvas.FrameGlyphs{}, fmt.Errorf("%w: field.frame must have 11 runes, got %d", ErrInvalidGlyph, len(r))
	}
	return canvas.FrameGlyphs{
		TopLeft: r[0], Horizontal: r[1], TeeDown: r[2], TopRight: r[3],
		Vertical: r[4], TeeRight: r[5], TeeLeft: r[6], TeeUp: r[7],
		BottomRight: r[8], BottomLeft: r[9], Cross: r[10],
	}, nil
}

// BoxGlyphs decodes the cursor outline glyphs.
func (c CursorConfig) BoxGlyphs() (canvas.BoxGlyphs, error) {
	var g canvas.BoxGlyphs
	fields := []struct {
		name  string
		value string
		dst   *rune
	}{
		{"cursor.left_up_corner_symbol", c.TopLeft, &g.TopLeft},
		{"cursor.right_up_corner_symbol", c.TopRight, &g.TopRight},
		{"cursor.left_down_corner_symbol", c.BottomLeft, &g.BottomLeft},
		{"cursor.right_down_corner_symbol", c.BottomRight, &g.BottomRight},
		{"cursor.horizontal_symbol", c.Horizontal, &g.Horizontal},
		{"cursor.vertical_symbol", c.Vertical, &g.Vertical},
	}
	for _, f := range fields {
		r, err := SingleRune(f.value)
		if err != nil {
			return canvas.BoxGlyphs{}, fmt.Errorf("%w: %s: %v", ErrInvalidGlyph, f.name, err)
		}
		*f.dst = r
	}
	return g, nil
}

// Layout holds the screen geometry derived from a configuration.
type Layout struct {
	GlyphRows int       // Tallest player glyph
	GlyphCols int       // Widest player glyph
	Screen    core.Rect // Logical canvas
	Field     core.Rect // Board frame footprint, including the outer lines
	Messages  core.Rect // Message pane
}

// Layout computes glyph extents and screen regions. It does not validate.
func (c Config) Layout() Layout {
	l := Layout{
		Screen:   core.NewRect(0, 0, c.Screen.Rows, c.Screen.Columns),
		Messages: core.RectFromCorners(core.At(c.Messages.Top, c.Messages.Left), core.At(c.Messages.Bottom, c.Messages.Right)),
	}
	for _, p := range c.Players {
		l.GlyphRows = core.Max(l.GlyphRows, len(p.Glyph))
		for _, line := range p.Glyph {
			l.GlyphCols = core.Max(l.GlyphCols, utf8.RuneCountInString(line))
		}
	}
	l.Field = core.NewRect(
		c.Field.Top,
		c.Field.Left,
		c.Field.Rows*l.GlyphRows+c.Field.Rows+1,
		c.Field.Columns*l.GlyphCols+c.Field.Columns+1,
	)
	return l
}

// Validate checks the configuration and fails fast on the first problem.
// A field footprint larger than the screen yields ErrFieldTooLarge.
func (c Config) Validate() error {
	if c.Screen.Rows <= 0 || c.Screen.Columns <= 0 {
		return fmt.Errorf("%w: screen size must be positive, got %dx%d", ErrInvalid, c.Screen.Rows, c.Screen.Columns)
	}
	if err := c.validateField(); err != nil {
		return err
	}
	if err := c.validatePlayers(); err != nil {
		return err
	}
	if err := c.validateGlyphs(); err != nil {
		return err
	}

	layout := c.Layout()
	if layout.Field.Row < 0 || layout.Field.Col < 0 {
		return fmt.Errorf("%w: field position must not be negative", ErrInvalid)
	}
	if layout.Field.Bottom() > layout.Screen.H {
		return fmt.Errorf("%w: field needs %d rows, screen has %d", ErrFieldTooLarge, layout.Field.Bottom(), layout.Screen.H)
	}
	if layout.Field.Right() > layout.Screen.W {
		return fmt.Errorf("%w: field needs %d columns, screen has %d", ErrFieldTooLarge, layout.Field.Right(), layout.Screen.W)
	}

	if layout.Messages.Empty() || !layout.Messages.Within(layout.Screen) {
		return fmt.Errorf("%w: message pane %+v must be non-empty and inside the screen", ErrInvalid, layout.Messages)
	}
	if c.Messages.Capacity <= 0 {
		return fmt.Errorf("%w: messages.max_count must be positive, got %d", ErrInvalid, c.Messages.Capacity)
	}

	if c.Timing.FPS <= 0 || c.Timing.PollInterval <= 0 || c.Timing.BlinkInterval <= 0 || c.Timing.GracePeriod < 0 {
		return fmt.Errorf("%w: timing values must be positive", ErrInvalid)
	}
	return nil
}

func (c Config) validateField() error {
	f := c.Field
	if f.Rows <= 0 || f.Columns <= 0 {
		return fmt.Errorf("%w: field size must be positive, got %dx%d", ErrInvalid, f.Rows, f.Columns)
	}
	if f.WinRows <= 0 || f.WinColumns <= 0 || f.WinDiagonals <= 0 {
		return fmt.Errorf("%w: win lengths must be positive, got rows=%d columns=%d diagonals=%d",
			ErrInvalid, f.WinRows, f.WinColumns, f.WinDiagonals)
	}
	return nil
}

func (c Config) validatePlayers() error {
	if len(c.Players) < 2 {
		return fmt.Errorf("%w: at least 2 players are required, got %d", ErrInvalid, len(c.Players))
	}
	seen := make(map[string]bool, len(c.Players))
	for i, p := range c.Players {
		if p.Marker == "" {
			return fmt.Errorf("%w: player %d has an empty marker", ErrInvalid, i)
		}
		if seen[p.Marker] {
			return fmt.Errorf("%w: duplicate player marker %q", ErrInvalid, p.Marker)
		}
		seen[p.Marker] = true
		if len(p.Glyph) == 0 {
			return fmt.Errorf("%w: player %q has an empty glyph", ErrInvalidGlyph, p.Marker)
		}
		if _, err := core.ParseColor(p.Color); err != nil {
			return fmt.Errorf("%w: player %q: %v", ErrInvalid, p.Marker, err)
		}
	}
	return nil
}

func (c Config) validateGlyphs() error {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false

	for _, p := range c.Players {
		for _, line := range p.Glyph {
			for _, r := range line {
				if w := cond.RuneWidth(r); w != 1 {
					return fmt.Errorf("%w: player %q glyph rune %q is %d columns wide", ErrInvalidGlyph, p.Marker, r, w)
				}
			}
		}
	}

	if _, err := c.Field.FrameGlyphs(); err != nil {
		return err
	}
	if _, err := c.Cursor.BoxGlyphs(); err != nil {
		return err
	}
	singles := []struct {
		name, value string
	}{
		{"screen.background", c.Screen.Background},
		{"field.empty", c.Field.Fill},
	}
	for _, s := range singles {
		if _, err := SingleRune(s.value); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidGlyph, s.name, err)
		}
	}

	for _, name := range []string{c.Field.Color, c.Cursor.Color, c.Messages.Color} {
		if _, err := core.ParseColor(name); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	return nil
}

// SingleRune decodes a one-character setting. The empty string is a space.
func SingleRune(s string) (rune, error) {
	if s == "" {
		return ' ', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("expected a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
