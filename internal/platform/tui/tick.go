// Package tui provides the Bubble Tea front-end for nrow.
//
// The Bubble Tea update loop is the single owner of game state. The
// termination poller, the cursor blink and the redraw run as independent
// tea.Tick chains, and key presses are the input task. Every message is
// handled to completion before the next one, so no task ever observes a
// half-applied move.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// PollMsg triggers a termination check.
type PollMsg time.Time

// BlinkMsg toggles the cursor overlay.
type BlinkMsg time.Time

// FrameMsg triggers a redraw of the canvas.
type FrameMsg time.Time

// GraceOverMsg ends the grace period after the game finished.
type GraceOverMsg time.Time

func pollCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return PollMsg(t)
	})
}

func blinkCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return BlinkMsg(t)
	})
}

// frameCmd returns a Bubble Tea command that sends frame messages at the specified interval.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func graceCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return GraceOverMsg(t)
	})
}
