package nrow

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-nrow/internal/config"
	"github.com/vovakirdan/tui-nrow/internal/core"
	"github.com/vovakirdan/tui-nrow/internal/message"
)

var (
	// ErrInputFormat is returned when position text is not two integers.
	ErrInputFormat = errors.New("nrow: position must be two integers")
	// ErrInputRange is returned when a typed position lies outside the board.
	ErrInputRange = errors.New("nrow: position outside the board")
	// ErrOutOfBounds is returned when the active cell would leave the board.
	ErrOutOfBounds = errors.New("nrow: position cannot leave the board")
	// ErrCellOccupied is returned when a marker is placed on an occupied cell.
	ErrCellOccupied = errors.New("nrow: cell is occupied")
	// ErrGameFinished is returned for moves after the game has ended.
	ErrGameFinished = errors.New("nrow: game is finished")
	// ErrNoActiveCell is returned when committing without an active cell.
	ErrNoActiveCell = errors.New("nrow: no active cell")
)

// Player-facing notices.
const (
	NoticeOccupied    = "This cell is occupied. Try again"
	NoticeOutOfBounds = "Position cannot leave the field."
	NoticeDraw        = "All cells are occupied. Draw!"
	NoticeBadFormat   = "Input cannot be converted to integers"
	NoticeBadRange    = "Position is outside the field"
	NoticeAllowedKeys = "Allowed keys: ↑, ↓, ←, → (move the active cell), Enter (choose the cell)."
)

// Status is the lifecycle state of a game.
type Status int

const (
	StatusRunning Status = iota
	StatusFinished
)

func (s Status) String() string {
	if s == StatusFinished {
		return "finished"
	}
	return "running"
}

// Player is a participant: board marker, display name, glyph and color.
type Player struct {
	Marker Marker
	Name   string
	Glyph  []string
	Color  core.Color
}

// Option configures a Game.
type Option func(*Game)

// WithSeed seeds the turn order shuffle. Zero means time based.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger for moves and outcomes.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Game is the controller of one match. It owns the board, the turn order,
// the notice queue and the active cell. It is not safe for concurrent use;
// drivers serialize all calls through a single owner.
type Game struct {
	cfg     config.Config
	rule    WinRule
	board   *Board
	turns   *Turns
	players map[Marker]Player
	roster  []Player
	queue   *message.Queue

	active  core.Coord
	hasCell bool

	status  Status
	outcome Outcome

	rng    *rand.Rand
	logger *log.Logger
}

// New validates cfg and starts a game. The turn order is shuffled once,
// the greeting is queued and the active cell starts at the board centre.
func New(cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg: cfg,
		rule: WinRule{
			Rows:      cfg.Field.WinRows,
			Columns:   cfg.Field.WinColumns,
			Diagonals: cfg.Field.WinDiagonals,
		},
		players: make(map[Marker]Player, len(cfg.Players)),
		queue:   message.NewQueue(cfg.Messages.Capacity),
		logger:  log.New(io.Discard),
	}
	WithSeed(0)(g)
	for _, opt := range opts {
		opt(g)
	}

	board, err := NewBoard(cfg.Field.Rows, cfg.Field.Columns)
	if err != nil {
		return nil, err
	}
	g.board = board

	markers := make([]Marker, 0, len(cfg.Players))
	for _, pc := range cfg.Players {
		color, _ := core.ParseColor(pc.Color)
		name := pc.Name
		if name == "" {
			name = pc.Marker
		}
		p := Player{
			Marker: Marker(pc.Marker),
			Name:   name,
			Glyph:  pc.Glyph,
			Color:  color,
		}
		g.players[p.Marker] = p
		g.roster = append(g.roster, p)
		markers = append(markers, p.Marker)
	}
	if g.turns, err = NewTurns(markers, g.rng); err != nil {
		return nil, err
	}

	if cfg.Messages.Greeting != "" {
		g.Notice(cfg.Messages.Greeting)
	}
	g.CenterCursor()

	g.logger.Debug("game started",
		"rows", board.Rows(), "cols", board.Cols(),
		"rule", fmt.Sprintf("%d/%d/%d", g.rule.Rows, g.rule.Columns, g.rule.Diagonals),
		"order", g.turns.Order())
	return g, nil
}

// Config returns the configuration the game was started with.
func (g *Game) Config() config.Config { return g.cfg }

// Board returns the board. Callers must not mutate it.
func (g *Game) Board() *Board { return g.board }

// Turns returns the turn order.
func (g *Game) Turns() *Turns { return g.turns }

// Messages returns the notice queue.
func (g *Game) Messages() *message.Queue { return g.queue }

// Status returns the lifecycle state.
func (g *Game) Status() Status { return g.status }

// Running reports whether moves are still accepted.
func (g *Game) Running() bool { return g.status == StatusRunning }

// Outcome returns the final outcome, or the zero Outcome while running.
func (g *Game) Outcome() Outcome { return g.outcome }

// Players returns the players in configuration order.
func (g *Game) Players() []Player {
	out := make([]Player, len(g.roster))
	copy(out, g.roster)
	return out
}

// Player looks up a player by marker.
func (g *Game) Player(m Marker) (Player, bool) {
	p, ok := g.players[m]
	return p, ok
}

// Current returns the player to move.
func (g *Game) Current() Player {
	return g.players[g.turns.Current()]
}

// ActiveCell returns the highlighted board cell, if any.
func (g *Game) ActiveCell() (core.Coord, bool) {
	return g.active, g.hasCell
}

// Notice queues a player-facing message.
func (g *Game) Notice(text string) {
	g.queue.Push(text)
}

// CenterCursor places the active cell at (rows/2, columns/2).
func (g *Game) CenterCursor() {
	g.active = core.At(g.board.Rows()/2, g.board.Cols()/2)
	g.hasCell = true
}

// ClearActiveCell removes the active cell; the cursor is not drawn.
func (g *Game) ClearActiveCell() {
	g.hasCell = false
}

// SetActiveCell moves the active cell to at. A position off the board
// keeps the previous one and queues a notice.
func (g *Game) SetActiveCell(at core.Coord) error {
	if !g.board.InBounds(at) {
		g.Notice(NoticeOutOfBounds)
		g.logger.Debug("cursor rejected", "at", at)
		return fmt.Errorf("%w: %s", ErrOutOfBounds, at)
	}
	g.active = at
	g.hasCell = true
	return nil
}

// MoveCursor steps the active cell one cell in the direction of a.
// Non-directional actions queue the allowed keys notice.
func (g *Game) MoveCursor(a core.Action) error {
	if !g.Running() {
		return ErrGameFinished
	}
	dRow, dCol, ok := a.Delta()
	if !ok {
		g.Notice(NoticeAllowedKeys)
		return fmt.Errorf("nrow: %s is not a direction", a)
	}
	if !g.hasCell {
		g.CenterCursor()
		return nil
	}
	return g.SetActiveCell(g.active.Add(dRow, dCol))
}

// Commit places the current player's marker at the active cell. After a
// successful move the active cell is recentred when configured.
func (g *Game) Commit() error {
	if !g.hasCell {
		return ErrNoActiveCell
	}
	if err := g.Place(g.active); err != nil {
		return err
	}
	if g.cfg.Cursor.RecenterAfterMove {
		g.CenterCursor()
	}
	return nil
}

// Place puts the current player's marker at at. An occupied cell leaves
// every piece of state untouched except for one queued notice. A
// successful move queues the moved and next-player notices, advances the
// turn order and checks for the end of the game.
func (g *Game) Place(at core.Coord) error {
	if !g.Running() {
		return ErrGameFinished
	}
	if !g.board.InBounds(at) {
		g.Notice(NoticeOutOfBounds)
		return fmt.Errorf("%w: %s", ErrOutOfBounds, at)
	}
	if !g.board.IsEmpty(at) {
		g.Notice(NoticeOccupied)
		g.logger.Debug("move rejected", "player", g.Current().Name, "at", at, "reason", "occupied")
		return fmt.Errorf("%w: %s", ErrCellOccupied, at)
	}

	mover := g.Current()
	if err := g.board.Set(at, mover.Marker); err != nil {
		return err
	}
	g.Notice(fmt.Sprintf("Player %s moved", mover.Name))
	g.Notice(fmt.Sprintf("Player %s is next", g.players[g.turns.Next()].Name))
	g.turns.Advance()
	g.logger.Debug("move", "player", mover.Name, "at", at)

	g.Poll()
	return nil
}

// ParsePosition parses "row column". The format is checked before the range.
func (g *Game) ParsePosition(text string) (core.Coord, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return core.Coord{}, fmt.Errorf("%w: %q", ErrInputFormat, text)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return core.Coord{}, fmt.Errorf("%w: %q", ErrInputFormat, text)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return core.Coord{}, fmt.Errorf("%w: %q", ErrInputFormat, text)
	}
	at := core.At(row, col)
	if !g.board.InBounds(at) {
		return core.Coord{}, fmt.Errorf("%w: %s", ErrInputRange, at)
	}
	return at, nil
}

// PlaceText parses typed position text and places the current marker there.
// Invalid text queues a notice and leaves the game untouched.
func (g *Game) PlaceText(text string) error {
	if !g.Running() {
		return ErrGameFinished
	}
	at, err := g.ParsePosition(text)
	switch {
	case errors.Is(err, ErrInputFormat):
		g.Notice(NoticeBadFormat)
		return err
	case errors.Is(err, ErrInputRange):
		g.Notice(NoticeBadRange)
		return err
	case err != nil:
		return err
	}
	return g.Place(at)
}

// Prompt is the line shown when waiting for typed input from the current player.
func (g *Game) Prompt() string {
	return fmt.Sprintf("Waiting for %s. Enter row (0 ... %d) and column (0 ... %d) separated by a space: ",
		g.Current().Name, g.board.Rows()-1, g.board.Cols()-1)
}

// Poll evaluates the board and finishes the game on a win or a draw,
// queueing the outcome notice once. It is safe to call repeatedly.
func (g *Game) Poll() Outcome {
	if !g.Running() {
		return g.outcome
	}
	o := Evaluate(g.board, g.rule)
	if !o.Finished() {
		return o
	}

	g.status = StatusFinished
	g.outcome = o
	if o.Kind == OutcomeDraw {
		g.Notice(NoticeDraw)
	} else {
		g.Notice(g.Summary() + "!")
	}
	g.logger.Info("game finished", "outcome", g.Summary(), "direction", o.Direction)
	return o
}

// Summary describes the outcome: "<name> wins", "Draw" or "In progress".
func (g *Game) Summary() string {
	switch g.outcome.Kind {
	case OutcomeWin:
		name := string(g.outcome.Winner)
		if p, ok := g.players[g.outcome.Winner]; ok {
			name = p.Name
		}
		return name + " wins"
	case OutcomeDraw:
		return "Draw"
	default:
		return "In progress"
	}
}
