package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-nrow/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match in the terminal UI",
	Long: `Start a match in the full-screen terminal UI.

Controls:
  Arrows/hjkl/wasd  - Move the active cell
  Enter/Space       - Place your marker
  ?                 - Toggle help
  Ctrl+S            - Save a screenshot to ~/.nrow/screenshots
  Ctrl+C            - Quit

When the game ends the final board stays on screen; press any key to exit.

Examples:
  nrow play
  nrow play --preset four
  nrow play --config ./my-board.yaml --log-file nrow.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(flagPreset)
	if err != nil {
		return err
	}

	game, comp, err := newMatch(cfg, flagSeed, logger)
	if err != nil {
		return err
	}

	logger.Info("starting match", "preset", flagPreset, "rows", cfg.Field.Rows, "cols", cfg.Field.Columns)
	if err := tui.Run(game, comp, runtimeConfig(cfg), logger); err != nil {
		logger.Error("match failed", "error", err)
		return err
	}
	return nil
}
