package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-nrow/internal/core"
	"github.com/vovakirdan/tui-nrow/internal/games/nrow"
	"github.com/vovakirdan/tui-nrow/internal/message"
)

// Phase is the stage of the front-end lifecycle.
type Phase int

const (
	// PhasePlaying runs all four tasks.
	PhasePlaying Phase = iota
	// PhaseGrace keeps redrawing the final board; input and blink are stopped.
	PhaseGrace
	// PhaseHold shows the exit prompt until any key is pressed.
	PhaseHold
)

func (p Phase) String() string {
	switch p {
	case PhaseGrace:
		return "grace"
	case PhaseHold:
		return "hold"
	default:
		return "playing"
	}
}

// Model is the Bubble Tea model running one match.
type Model struct {
	game   *nrow.Game
	comp   *nrow.Compositor
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	canvas   *core.Screen // Last composed frame
	view     *core.Screen // Part of the canvas that fits the terminal
	width    int          // Terminal width, 0 until known
	height   int          // Terminal height, 0 until known
	phase    Phase
	cursorOn bool
	quitting bool

	screenshotDir string
}

// NewModel creates a new Bubble Tea model for the given game. The canvas is
// redrawn many times per second, so notices persist until evicted.
func NewModel(game *nrow.Game, comp *nrow.Compositor, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	comp.SetPolicy(message.Persist)
	h := help.New()
	h.ShowAll = false

	m := Model{
		game:          game,
		comp:          comp,
		config:        cfg,
		keys:          DefaultKeyMap(),
		help:          h,
		logger:        logger,
		width:         cfg.ScreenW,
		height:        cfg.ScreenH,
		cursorOn:      true,
		screenshotDir: defaultScreenshotDir(),
	}
	m.redraw()
	m.view = core.NewScreen(0, 0)
	m.fitView(lipgloss.Height(m.footer()))
	return m
}

// Init starts the poll, blink and redraw tasks.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		pollCmd(m.config.PollInterval),
		blinkCmd(m.config.BlinkInterval),
		frameCmd(m.config.TickInterval()),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case PollMsg:
		return m.handlePoll()

	case BlinkMsg:
		if m.phase != PhasePlaying {
			return m, nil
		}
		m.cursorOn = !m.cursorOn
		return m, blinkCmd(m.config.BlinkInterval)

	case FrameMsg:
		if m.phase == PhaseHold {
			return m, nil
		}
		m.redraw()
		return m, frameCmd(m.config.TickInterval())

	case GraceOverMsg:
		m.phase = PhaseHold
		m.redraw()
		m.logger.Debug("phase changed", "phase", m.phase)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionScreenshot {
		m.saveScreenshot()
		return m, nil
	}

	switch m.phase {
	case PhaseHold:
		m.quitting = true
		return m, tea.Quit
	case PhaseGrace:
		return m, nil
	}
	if !m.game.Running() {
		// Finished between two polls; wait for the poller.
		return m, nil
	}

	switch action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		//nolint:errcheck // Rejections are queued as notices
		m.game.MoveCursor(action)
		m.cursorOn = true
	case core.ActionConfirm:
		//nolint:errcheck // Rejections are queued as notices
		m.game.Commit()
		m.cursorOn = true
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	default:
		m.game.Notice(nrow.NoticeAllowedKeys)
	}
	return m, nil
}

// handleResize tracks the terminal size and refits the view.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.fitView(lipgloss.Height(m.footer()))
	return m, nil
}

// fitView resizes the view to the part of the canvas that fits the terminal
// above a footer of footerH lines. Unknown terminal dimensions do not clip.
func (m *Model) fitView(footerH int) {
	area := m.canvas.Bounds()
	if m.width > 0 {
		area = area.Intersect(core.NewRect(0, 0, area.H, m.width))
	}
	if m.height > 0 {
		area = area.Intersect(core.NewRect(0, 0, core.Max(m.height-footerH, 1), area.W))
	}
	m.view.Resize(area.W, area.H)
}

// handlePoll checks for the end of the game. A finished game stops the
// poller and starts the grace period.
func (m Model) handlePoll() (tea.Model, tea.Cmd) {
	if m.phase != PhasePlaying {
		return m, nil
	}
	if !m.game.Poll().Finished() {
		return m, pollCmd(m.config.PollInterval)
	}

	m.phase = PhaseGrace
	m.cursorOn = false
	m.logger.Debug("phase changed", "phase", m.phase, "outcome", m.game.Summary())
	return m, graceCmd(m.config.GracePeriod)
}

// redraw recomposes the canvas from game state.
func (m *Model) redraw() {
	m.canvas = m.comp.Render(m.game, m.CursorVisible())
}

// Phase returns the current lifecycle stage.
func (m Model) Phase() Phase {
	return m.phase
}

// CursorVisible reports whether the cursor overlay is currently shown.
func (m Model) CursorVisible() bool {
	return m.cursorOn && m.phase == PhasePlaying
}

// Banner is the exit prompt shown once the game is over.
func (m Model) Banner() string {
	return fmt.Sprintf("Game over! %s. Press any key to exit.", m.game.Summary())
}

// saveScreenshot writes the last composed frame to a file.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		return
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.screenshotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("nrow_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.canvas.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nrow", "screenshots")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.footer()
	m.fitView(lipgloss.Height(footer))
	Clip(m.view, m.canvas)
	lines := strings.Split(RenderScreen(m.view), "\n")

	if m.phase == PhaseHold {
		mid := len(lines) / 2
		lines[mid] = lipgloss.PlaceHorizontal(m.view.Width(), lipgloss.Center, bannerStyle.Render(" "+m.Banner()+" "))
	}

	return strings.Join(lines, "\n") + "\n" + footer
}

// footer renders the status line and the key help.
func (m Model) footer() string {
	var status string
	if m.game.Running() {
		p := m.game.Current()
		status = styleFor(p.Color).Render(fmt.Sprintf("Turn: %s (%s)", p.Name, p.Marker))
	} else {
		status = bannerStyle.Render(" " + m.game.Summary() + " ")
	}
	if m.phase != PhasePlaying {
		return status
	}
	return status + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a match.
func Run(game *nrow.Game, comp *nrow.Compositor, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, comp, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
