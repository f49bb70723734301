package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-nrow/internal/core"
)

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{keyMsg(tea.KeyUp), core.ActionUp},
		{runes("k"), core.ActionUp},
		{keyMsg(tea.KeyDown), core.ActionDown},
		{runes("j"), core.ActionDown},
		{keyMsg(tea.KeyLeft), core.ActionLeft},
		{runes("h"), core.ActionLeft},
		{keyMsg(tea.KeyRight), core.ActionRight},
		{runes("l"), core.ActionRight},
		{keyMsg(tea.KeyEnter), core.ActionConfirm},
		{keyMsg(tea.KeySpace), core.ActionConfirm},
		{runes("?"), core.ActionHelp},
		{keyMsg(tea.KeyCtrlS), core.ActionScreenshot},
		{keyMsg(tea.KeyCtrlC), core.ActionQuit},
		{runes("q"), core.ActionNone},
		{keyMsg(tea.KeyTab), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, keys.Action(tt.msg))
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	assert.Equal(t, MenuActionUp, MapKeyToMenuAction(keyMsg(tea.KeyUp)))
	assert.Equal(t, MenuActionDown, MapKeyToMenuAction(runes("j")))
	assert.Equal(t, MenuActionSelect, MapKeyToMenuAction(keyMsg(tea.KeyEnter)))
	assert.Equal(t, MenuActionQuit, MapKeyToMenuAction(runes("q")))
	assert.Equal(t, MenuActionNone, MapKeyToMenuAction(runes("x")))
}

func TestHelpBindings(t *testing.T) {
	keys := DefaultKeyMap()
	assert.Len(t, keys.ShortHelp(), 6)
	assert.Len(t, keys.FullHelp(), 2)
}
