package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-nrow/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a match would use: embedded defaults, the preset,
the configuration file and NROW_* environment overrides, in that order.

With --defaults, print the embedded default file instead; it is a good
starting point for ~/.nrow/config.yaml.

Examples:
  nrow config
  nrow config --preset gomoku
  nrow config --defaults > ~/.nrow/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded default configuration file")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig(flagPreset)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
