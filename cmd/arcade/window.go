package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-arcade/internal/core"
	"github.com/vovakirdan/space-arcade/internal/games/shooter"
	"github.com/vovakirdan/space-arcade/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a 400x400 window titled "space_game" and play with the keyboard.

Controls:
  Arrows/WASD  - Steer the ship while held
  Space        - Fire
  Enter/R/Click - Play again (after the round ends)
  Esc/Q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := configureGames(logger); err != nil {
		return err
	}

	game := shooter.NewFromSettings()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// The window steps once per frame at the ebiten tick rate.
	game.Reset(core.RuntimeConfig{TickRate: 60, Seed: seed})

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return window.Run(game, store, logger)
}
