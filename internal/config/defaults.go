package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/nrow.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// DefaultConfig returns the default configuration: classic 3x3 tic-tac-toe
// with 3x5 glyphs and a message pane to the right of the board.
// It mirrors defaults/nrow.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Screen: ScreenConfig{
			Rows:       16,
			Columns:    64,
			Background: " ",
		},
		Field: FieldConfig{
			Rows:         3,
			Columns:      3,
			WinRows:      3,
			WinColumns:   3,
			WinDiagonals: 3,
			Top:          1,
			Left:         2,
			Fill:         " ",
			Frame:        DefaultFrame,
			Color:        "gray",
		},
		Players: []PlayerConfig{
			{
				Marker: "X",
				Name:   "Crosses",
				Color:  "red",
				Glyph:  []string{` \ / `, `  X  `, ` / \ `},
			},
			{
				Marker: "O",
				Name:   "Noughts",
				Color:  "cyan",
				Glyph:  []string{" ╭─╮ ", " │ │ ", " ╰─╯ "},
			},
		},
		Messages: MessagesConfig{
			Top:      1,
			Left:     24,
			Bottom:   14,
			Right:    62,
			Capacity: 4,
			Greeting: "Hello!",
			Color:    "default",
		},
		Cursor: CursorConfig{
			TopLeft:           "╔",
			TopRight:          "╗",
			BottomLeft:        "╚",
			BottomRight:       "╝",
			Horizontal:        "═",
			Vertical:          "║",
			Color:             "bright-yellow",
			RecenterAfterMove: true,
		},
		Timing: TimingConfig{
			FPS:           30,
			PollInterval:  50 * time.Millisecond,
			BlinkInterval: 250 * time.Millisecond,
			GracePeriod:   time.Second,
		},
	}
}
