package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-nrow/internal/platform/plain"
)

var plainCmd = &cobra.Command{
	Use:   "plain",
	Short: "Play a match by typing positions",
	Long: `Start a match without the full-screen UI. After every move the board is
printed and the current player types a row and a column separated by a space.

Examples:
  nrow plain
  nrow plain --preset wide --seed 7
  printf '1 1\n0 0\n' | nrow plain`,
	Args: cobra.NoArgs,
	RunE: runPlain,
}

func runPlain(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return plain.Run(ctx, game, comp, os.Stdin, os.Stdout, logger)
}
