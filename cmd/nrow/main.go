// nrow is an N-in-a-row game (generalized tic-tac-toe) for the terminal.
//
// Usage:
//
//	nrow play             - Play a match in the full-screen terminal UI
//	nrow plain            - Play a match by typing "row column" lines
//	nrow menu             - Pick a preset interactively, then play
//	nrow list             - List available presets
//	nrow config           - Print the effective configuration as YAML
//
// Global flags:
//
//	--preset <id>         - Board preset (default: classic)
//	--config <path>       - Configuration file (.yaml or .toml)
//	--seed <value>        - RNG seed for the turn order
//	--fps <rate>          - Redraw rate, overrides timing.fps
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its presets
	_ "github.com/vovakirdan/tui-nrow/internal/games/nrow"
)

var (
	// Global flags
	flagPreset   string
	flagConfig   string
	flagSeed     int64
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nrow",
	Short: "nrow - N-in-a-row for your terminal",
	Long: `nrow is a turn-based N-in-a-row board game: tic-tac-toe generalized to any
board size, any number of players and independent win lengths for rows,
columns and diagonals.

Available commands:
  play     - Play in the full-screen terminal UI
  plain    - Play by typing positions line by line
  menu     - Interactive preset picker
  list     - Show all presets
  config   - Print the effective configuration

Examples:
  nrow play
  nrow play --preset gomoku
  nrow plain --preset four --seed 42
  nrow play --config ./my-board.toml
  NROW_FIELD_WIN_ROWS=2 nrow config`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "classic", "Board preset (see 'nrow list')")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a configuration file (.yaml or .toml)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for the turn order (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Redraw rate in frames per second (0 = timing.fps)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(plainCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
