package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-nrow/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a preset interactively, then play",
	Long: `Start nrow in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a preset.
After a match ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select preset
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	base, err := loadConfig(flagPreset)
	if err != nil {
		return err
	}
	rc := runtimeConfig(base)

	seed := flagSeed
	for {
		result, err := tui.RunMenu(rc)
		if err != nil {
			return err
		}
		rc = result.Config
		if result.Quit {
			break
		}

		cfg, err := loadConfig(result.PresetID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		game, comp, err := newMatch(cfg, seed, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		rc.TickRate = runtimeConfig(cfg).TickRate
		rc.PollInterval = cfg.Timing.PollInterval
		rc.BlinkInterval = cfg.Timing.BlinkInterval
		rc.GracePeriod = cfg.Timing.GracePeriod

		logger.Info("starting match", "preset", result.PresetID)
		if err := tui.Run(game, comp, rc, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// New seed for each following match
		seed = time.Now().UnixNano()
	}
	return nil
}
