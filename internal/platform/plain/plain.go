// Package plain drives a match over line-oriented text I/O: every turn the
// composed canvas is printed, then the current player types "row column".
package plain

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-nrow/internal/games/nrow"
	"github.com/vovakirdan/tui-nrow/internal/message"
)

// Run plays game to the end reading positions from in and writing frames to
// out. Notices are consumed as they are printed, so each appears once.
// It returns an error if in is exhausted before the game finishes.
func Run(ctx context.Context, game *nrow.Game, comp *nrow.Compositor, in io.Reader, out io.Writer, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	comp.SetPolicy(message.Once)
	game.ClearActiveCell()

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := writeFrame(out, comp, game); err != nil {
			return err
		}
		if !game.Running() {
			_, err := fmt.Fprintf(out, "Game over! %s.\n", game.Summary())
			return err
		}

		if _, err := io.WriteString(out, game.Prompt()); err != nil {
			return fmt.Errorf("plain: write prompt: %w", err)
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("plain: read input: %w", err)
			}
			return fmt.Errorf("plain: input closed before the game finished: %w", io.ErrUnexpectedEOF)
		}

		line := scanner.Text()
		if err := game.PlaceText(line); err != nil {
			logger.Debug("input rejected", "line", line, "notice", game.Messages().Last(), "error", err)
		}
		game.Poll()
	}
}

// writeFrame prints the canvas with trailing blanks trimmed from each row.
func writeFrame(out io.Writer, comp *nrow.Compositor, game *nrow.Game) error {
	screen := comp.Render(game, false)
	var sb strings.Builder
	for y := 0; y < screen.Height(); y++ {
		sb.WriteString(strings.TrimRight(screen.Row(y), " "))
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(out, sb.String()); err != nil {
		return fmt.Errorf("plain: write frame: %w", err)
	}
	return nil
}
