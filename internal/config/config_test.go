package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the implicit search paths at empty directories.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	if diff := cmp.Diff(DefaultConfig(), Defaults()); diff != "" {
		t.Errorf("embedded defaults differ from DefaultConfig() (-want +got):\n%s", diff)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLayoutDefault(t *testing.T) {
	l := DefaultConfig().Layout()

	assert.Equal(t, 3, l.GlyphRows)
	assert.Equal(t, 5, l.GlyphCols)
	// 3 cells of 3 rows plus 4 frame lines, 3 cells of 5 columns plus 4 frame lines
	assert.Equal(t, 13, l.Field.H)
	assert.Equal(t, 19, l.Field.W)
	assert.Equal(t, 1, l.Field.Row)
	assert.Equal(t, 2, l.Field.Col)
	assert.Equal(t, 13, l.Messages.H)
	assert.Equal(t, 38, l.Messages.W)
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Field.Rows)
	assert.Equal(t, "Crosses", cfg.Players[0].Name)
	assert.Equal(t, 250*time.Millisecond, cfg.Timing.BlinkInterval)
}

func TestLoadPresetBeforeFile(t *testing.T) {
	isolate(t)

	path := writeFile(t, "nrow.yaml", "field:\n  win_rows: 2\n")
	cfg, err := Load(path, func(c *Config) {
		c.Field.WinColumns = 2
		c.Field.WinRows = 3
	})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Field.WinRows, "file overrides preset")
	assert.Equal(t, 2, cfg.Field.WinColumns, "preset survives where file is silent")
	assert.Equal(t, 3, cfg.Field.Rows, "defaults survive where both are silent")
}

func TestLoadTOML(t *testing.T) {
	isolate(t)

	path := writeFile(t, "settings.toml", `
[screen]
size_rows = 24
size_columns = 80

[field]
size_rows = 4
size_columns = 4
win_rows = 4
win_columns = 4
win_diagonals = 4

[[players]]
marker = "A"
name = "Alpha"
glyph = ["A"]

[[players]]
marker = "B"
name = "Beta"
glyph = ["B"]
color = "green"
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	require.Len(t, cfg.Players, 2)
	assert.Equal(t, "Beta", cfg.Players[1].Name)
	assert.Equal(t, 4, cfg.Field.WinDiagonals)
	assert.Equal(t, 1, cfg.Layout().GlyphCols)
}

func TestLoadMissingCustomFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}

func TestLoadUserConfig(t *testing.T) {
	isolate(t)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".nrow"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".nrow", "config.yaml"), []byte("messages:\n  greeting: Hi there\n"), 0o600))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "Hi there", cfg.Messages.Greeting)
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("NROW_FIELD_WIN_DIAGONALS", "2")
	t.Setenv("NROW_TIMING_POLL_INTERVAL", "10ms")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Field.WinDiagonals)
	assert.Equal(t, 10*time.Millisecond, cfg.Timing.PollInterval)
}

func TestLoadEnvFieldTooLarge(t *testing.T) {
	isolate(t)
	t.Setenv("NROW_FIELD_SIZE_ROWS", "4")

	_, err := Load("", nil)
	require.ErrorIs(t, err, ErrFieldTooLarge)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{
			name:   "field too tall",
			mutate: func(c *Config) { c.Field.Rows = 5 },
			want:   ErrFieldTooLarge,
		},
		{
			name:   "field too wide",
			mutate: func(c *Config) { c.Field.Left = 50 },
			want:   ErrFieldTooLarge,
		},
		{
			name:   "anchor pushes field off screen",
			mutate: func(c *Config) { c.Field.Top = 4 },
			want:   ErrFieldTooLarge,
		},
		{
			name:   "zero win length",
			mutate: func(c *Config) { c.Field.WinColumns = 0 },
			want:   ErrInvalid,
		},
		{
			name:   "single player",
			mutate: func(c *Config) { c.Players = c.Players[:1] },
			want:   ErrInvalid,
		},
		{
			name:   "duplicate marker",
			mutate: func(c *Config) { c.Players[1].Marker = c.Players[0].Marker },
			want:   ErrInvalid,
		},
		{
			name:   "wide glyph rune",
			mutate: func(c *Config) { c.Players[0].Glyph = []string{"漢"} },
			want:   ErrInvalidGlyph,
		},
		{
			name:   "short frame",
			mutate: func(c *Config) { c.Field.Frame = "+-+" },
			want:   ErrInvalidGlyph,
		},
		{
			name:   "multi-rune cursor glyph",
			mutate: func(c *Config) { c.Cursor.Horizontal = "==" },
			want:   ErrInvalidGlyph,
		},
		{
			name:   "message pane outside screen",
			mutate: func(c *Config) { c.Messages.Right = 100 },
			want:   ErrInvalid,
		},
		{
			name:   "unknown color",
			mutate: func(c *Config) { c.Players[1].Color = "ultraviolet" },
			want:   ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFrameGlyphs(t *testing.T) {
	f, err := FieldConfig{}.FrameGlyphs()
	require.NoError(t, err)
	assert.Equal(t, '┏', f.TopLeft)
	assert.Equal(t, '┳', f.TeeDown)
	assert.Equal(t, '┗', f.BottomLeft)
	assert.Equal(t, '╋', f.Cross)

	_, err = FieldConfig{Frame: "┏━┳┓"}.FrameGlyphs()
	assert.ErrorIs(t, err, ErrInvalidGlyph)
}

func TestCursorBoxGlyphs(t *testing.T) {
	g, err := DefaultConfig().Cursor.BoxGlyphs()
	require.NoError(t, err)
	assert.Equal(t, '╔', g.TopLeft)
	assert.Equal(t, '║', g.Vertical)

	_, err = CursorConfig{TopLeft: "ab"}.BoxGlyphs()
	assert.ErrorIs(t, err, ErrInvalidGlyph)
}

func TestMarshalRoundTripsDurations(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, string(data), "poll_interval: 50ms")
}
