// Package config provides YAML/TOML-based game configuration loading and
// validation for the N-in-a-row game.
package config

import "time"

// Config contains all configuration for one game: board geometry, win rule,
// players, screen layout and timing.
type Config struct {
	Screen   ScreenConfig   `yaml:"screen" toml:"screen" env-prefix:"NROW_SCREEN_"`
	Field    FieldConfig    `yaml:"field" toml:"field" env-prefix:"NROW_FIELD_"`
	Players  []PlayerConfig `yaml:"players" toml:"players"`
	Messages MessagesConfig `yaml:"messages" toml:"messages" env-prefix:"NROW_MESSAGES_"`
	Cursor   CursorConfig   `yaml:"cursor" toml:"cursor" env-prefix:"NROW_CURSOR_"`
	Timing   TimingConfig   `yaml:"timing" toml:"timing" env-prefix:"NROW_TIMING_"`
}

// ScreenConfig defines the logical character canvas the game is drawn on.
type ScreenConfig struct {
	Rows       int    `yaml:"size_rows" toml:"size_rows" env:"SIZE_ROWS"`
	Columns    int    `yaml:"size_columns" toml:"size_columns" env:"SIZE_COLUMNS"`
	Background string `yaml:"background" toml:"background" env:"BACKGROUND"`
}

// FieldConfig defines the board, the win rule and where the board frame is drawn.
type FieldConfig struct {
	Rows         int    `yaml:"size_rows" toml:"size_rows" env:"SIZE_ROWS"`
	Columns      int    `yaml:"size_columns" toml:"size_columns" env:"SIZE_COLUMNS"`
	WinRows      int    `yaml:"win_rows" toml:"win_rows" env:"WIN_ROWS"`
	WinColumns   int    `yaml:"win_columns" toml:"win_columns" env:"WIN_COLUMNS"`
	WinDiagonals int    `yaml:"win_diagonals" toml:"win_diagonals" env:"WIN_DIAGONALS"`
	Top          int    `yaml:"left_up_row_position" toml:"left_up_row_position" env:"TOP"`
	Left         int    `yaml:"left_up_column_position" toml:"left_up_column_position" env:"LEFT"`
	Fill         string `yaml:"empty" toml:"empty" env:"EMPTY"`
	Frame        string `yaml:"frame" toml:"frame" env:"FRAME"` // 11 runes, see FrameGlyphs
	Color        string `yaml:"color" toml:"color" env:"COLOR"`
}

// PlayerConfig describes one player: the marker stored on the board, the
// display name used in notices, the glyph drawn inside a cell and its color.
type PlayerConfig struct {
	Marker string   `yaml:"marker" toml:"marker"`
	Name   string   `yaml:"name" toml:"name"`
	Glyph  []string `yaml:"glyph" toml:"glyph"`
	Color  string   `yaml:"color" toml:"color"`
}

// MessagesConfig defines the message pane and the notice queue.
type MessagesConfig struct {
	Top      int    `yaml:"left_up_row_position" toml:"left_up_row_position" env:"TOP"`
	Left     int    `yaml:"left_up_column_position" toml:"left_up_column_position" env:"LEFT"`
	Bottom   int    `yaml:"right_down_row_position" toml:"right_down_row_position" env:"BOTTOM"`
	Right    int    `yaml:"right_down_column_position" toml:"right_down_column_position" env:"RIGHT"`
	Capacity int    `yaml:"max_count" toml:"max_count" env:"MAX_COUNT"`
	Greeting string `yaml:"greeting" toml:"greeting" env:"GREETING"`
	Color    string `yaml:"color" toml:"color" env:"COLOR"`
}

// CursorConfig defines the glyphs of the active cell outline.
type CursorConfig struct {
	TopLeft           string `yaml:"left_up_corner_symbol" toml:"left_up_corner_symbol" env:"TOP_LEFT"`
	TopRight          string `yaml:"right_up_corner_symbol" toml:"right_up_corner_symbol" env:"TOP_RIGHT"`
	BottomLeft        string `yaml:"left_down_corner_symbol" toml:"left_down_corner_symbol" env:"BOTTOM_LEFT"`
	BottomRight       string `yaml:"right_down_corner_symbol" toml:"right_down_corner_symbol" env:"BOTTOM_RIGHT"`
	Horizontal        string `yaml:"horizontal_symbol" toml:"horizontal_symbol" env:"HORIZONTAL"`
	Vertical          string `yaml:"vertical_symbol" toml:"vertical_symbol" env:"VERTICAL"`
	Color             string `yaml:"color" toml:"color" env:"COLOR"`
	RecenterAfterMove bool   `yaml:"recenter_after_move" toml:"recenter_after_move" env:"RECENTER_AFTER_MOVE"`
}

// TimingConfig defines the intervals of the cooperative game loop.
type TimingConfig struct {
	FPS           int           `yaml:"fps" toml:"fps" env:"FPS"`
	PollInterval  time.Duration `yaml:"poll_interval" toml:"poll_interval" env:"POLL_INTERVAL"`
	BlinkInterval time.Duration `yaml:"blink_interval" toml:"blink_interval" env:"BLINK_INTERVAL"`
	GracePeriod   time.Duration `yaml:"grace_period" toml:"grace_period" env:"GRACE_PERIOD"`
}
