//go:build ebiten

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Play the specified game in a window with textured sprites.

Controls:
  Arrows/WASD - Move
  Space       - Thrust, fire or serve
  P           - Pause
  R           - Restart (after game over)
  Q/Esc       - Quit

Examples:
  arcade window lander
  arcade window shooter --difficulty hard`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	addGameFlags(windowCmd)
	rootCmd.AddCommand(windowCmd)
}

func runWindow(_ *cobra.Command, args []string) error {
	opts, err := gameOptions()
	if err != nil {
		return err
	}
	game := openGame(args[0], opts)

	logger, closeLog := mustLogger(false)
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	cfg := core.DefaultConfig()
	cfg.FPS = flagFPS
	cfg.Seed = flagSeed

	if err := window.Run(game, store, cfg, logger); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
