package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-nrow/internal/config"
	"github.com/vovakirdan/tui-nrow/internal/core"
	"github.com/vovakirdan/tui-nrow/internal/games/nrow"
	"github.com/vovakirdan/tui-nrow/internal/message"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Messages.Capacity = 16
	game, err := nrow.New(cfg, nrow.WithSeed(3))
	require.NoError(t, err)
	comp, err := nrow.NewCompositor(cfg)
	require.NoError(t, err)

	rt := core.DefaultConfig()
	rt.ScreenW, rt.ScreenH = 0, 0
	m := NewModel(game, comp, rt, nil)
	m.screenshotDir = t.TempDir()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelCursorMoves(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, keyMsg(tea.KeyUp))
	at, _ := m.game.ActiveCell()
	assert.Equal(t, core.At(0, 1), at)

	m, _ = update(t, m, runes("l"))
	at, _ = m.game.ActiveCell()
	assert.Equal(t, core.At(0, 2), at)

	m, _ = update(t, m, keyMsg(tea.KeyUp))
	assert.Equal(t, nrow.NoticeOutOfBounds, m.game.Messages().Last())
}

func TestModelUnknownKey(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, runes("x"))
	assert.Nil(t, cmd)
	assert.Equal(t, nrow.NoticeAllowedKeys, m.game.Messages().Last())
}

func TestModelBlinkToggles(t *testing.T) {
	m := newTestModel(t)
	assert.True(t, m.CursorVisible())

	m, cmd := update(t, m, BlinkMsg(time.Now()))
	assert.False(t, m.CursorVisible())
	assert.NotNil(t, cmd)

	m, _ = update(t, m, FrameMsg(time.Now()))
	assert.Equal(t, '╋', m.canvas.GetCell(core.At(5, 8)).Rune, "cursor hidden after blink")

	m, _ = update(t, m, BlinkMsg(time.Now()))
	m, _ = update(t, m, FrameMsg(time.Now()))
	assert.Equal(t, '╔', m.canvas.GetCell(core.At(5, 8)).Rune)
}

func TestModelLifecycle(t *testing.T) {
	m := newTestModel(t)

	// First player takes row 0.
	for _, text := range []string{"0 0", "1 0", "0 1", "1 1", "0 2"} {
		require.NoError(t, m.game.PlaceText(text))
	}
	require.False(t, m.game.Running())

	m, cmd := update(t, m, PollMsg(time.Now()))
	assert.Equal(t, PhaseGrace, m.Phase())
	assert.NotNil(t, cmd, "grace timer scheduled")
	assert.False(t, m.CursorVisible())

	// Input and blink are stopped during the grace period, redraw is not.
	m, cmd = update(t, m, runes("x"))
	assert.Nil(t, cmd)
	_, cmd = update(t, m, BlinkMsg(time.Now()))
	assert.Nil(t, cmd)
	_, cmd = update(t, m, FrameMsg(time.Now()))
	assert.NotNil(t, cmd)

	m, _ = update(t, m, GraceOverMsg(time.Now()))
	assert.Equal(t, PhaseHold, m.Phase())
	assert.Contains(t, m.View(), "Game over! ")
	assert.Contains(t, m.Banner(), "wins. Press any key to exit.")

	m, cmd = update(t, m, runes("z"))
	assert.True(t, isQuit(cmd))
	assert.Equal(t, "", m.View())
}

func TestModelPollKeepsRunning(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, PollMsg(time.Now()))
	assert.Equal(t, PhasePlaying, m.Phase())
	assert.NotNil(t, cmd)
}

func TestModelCtrlCAlwaysQuits(t *testing.T) {
	m := newTestModel(t)
	_, cmd := update(t, m, keyMsg(tea.KeyCtrlC))
	assert.True(t, isQuit(cmd))
}

func TestModelCommit(t *testing.T) {
	m := newTestModel(t)
	mover := m.game.Current().Marker

	m, _ = update(t, m, keyMsg(tea.KeyEnter))
	assert.Equal(t, mover, m.game.Board().Get(core.At(1, 1)))

	m, _ = update(t, m, keyMsg(tea.KeyEnter))
	assert.Equal(t, nrow.NoticeOccupied, m.game.Messages().Last())
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t)
	short := m.View()
	m, _ = update(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.NotEqual(t, short, m.View())
}

func TestModelViewClipsToTerminal(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 8})

	footerH := lipgloss.Height(m.footer())
	assert.Equal(t, 10, m.view.Width())
	assert.Equal(t, core.Max(8-footerH, 1), m.view.Height())

	view := m.View()
	lines := strings.Split(view, "\n")
	assert.LessOrEqual(t, len(lines), 8+1)
	assert.Contains(t, view, "Turn: ")
}

func TestModelViewGrowsBackToCanvas(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 8})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 100})

	assert.Equal(t, m.canvas.Width(), m.view.Width())
	assert.Equal(t, m.canvas.Height(), m.view.Height())
}

func TestModelKeepsNoticesAcrossFrames(t *testing.T) {
	cfg := config.DefaultConfig()
	game, err := nrow.New(cfg, nrow.WithSeed(3))
	require.NoError(t, err)
	comp, err := nrow.NewCompositor(cfg)
	require.NoError(t, err)
	comp.SetPolicy(message.Once)

	m := NewModel(game, comp, core.DefaultConfig(), nil)
	m.screenshotDir = t.TempDir()
	m, _ = update(t, m, FrameMsg{})
	m, _ = update(t, m, FrameMsg{})

	assert.Equal(t, []string{"Hello!"}, game.Messages().Unsent())
	assert.Contains(t, m.canvas.String(), "Hello!")
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t)
	_, cmd := update(t, m, keyMsg(tea.KeyCtrlS))
	assert.Nil(t, cmd)

	entries, err := os.ReadDir(m.screenshotDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "nrow_"))
}

func TestClip(t *testing.T) {
	src := core.NewScreen(4, 3)
	for x, r := range "abcd" {
		src.Set(core.At(0, x), core.Cell{Rune: r, Color: core.ColorRed})
	}

	dst := core.NewScreen(2, 1)
	Clip(dst, src)
	assert.Equal(t, "ab", dst.Row(0))
	assert.Equal(t, core.ColorRed, dst.GetCell(core.At(0, 1)).Color)

	wide := core.NewScreen(6, 4)
	wide.Fill(core.Cell{Rune: 'x'})
	Clip(wide, src)
	assert.Equal(t, "abcd  ", wide.Row(0))
	assert.Equal(t, "      ", wide.Row(3), "cells beyond the source are cleared")
}
