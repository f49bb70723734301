package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-nrow/internal/config"
	"github.com/vovakirdan/tui-nrow/internal/core"
	"github.com/vovakirdan/tui-nrow/internal/games/nrow"
	"github.com/vovakirdan/tui-nrow/internal/registry"
)

// newLogger builds the process logger. Without --log-file, logs go to
// fallback; the full-screen UI passes io.Discard because it owns the terminal.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		//nolint:errcheck // Best-effort close on exit
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "nrow",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig resolves the preset and loads the configuration on top of it.
func loadConfig(presetID string) (config.Config, error) {
	if !registry.Exists(presetID) {
		return config.Config{}, fmt.Errorf("%w %q (run 'nrow list' to see available presets)", registry.ErrUnknownPreset, presetID)
	}
	preset, err := registry.Get(presetID)
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(flagConfig, preset)
}

// runtimeConfig derives loop timing and terminal size from cfg and the flags.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	rc := core.RuntimeConfig{
		Seed:          flagSeed,
		TickRate:      cfg.Timing.FPS,
		PollInterval:  cfg.Timing.PollInterval,
		BlinkInterval: cfg.Timing.BlinkInterval,
		GracePeriod:   cfg.Timing.GracePeriod,
	}
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	return rc
}

// newMatch starts a game and its compositor.
func newMatch(cfg config.Config, seed int64, logger *log.Logger) (*nrow.Game, *nrow.Compositor, error) {
	game, err := nrow.New(cfg, nrow.WithSeed(seed), nrow.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	comp, err := nrow.NewCompositor(cfg)
	if err != nil {
		return nil, nil, err
	}
	return game, comp, nil
}
