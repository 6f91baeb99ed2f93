package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quad-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick games from a menu",
	Long: `Open the game picker. A finished or paused game returns to the
menu with B or Esc.

Menu keys:
  up/down, j/k   move
  enter, space   play
  tab            high scores
  q              quit

Examples:
  arcade menu
  arcade menu --fps 60 --difficulty hard`,
	Run: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	opts, err := gameOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, closeLog := mustLogger(true)
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}
		cfg = res.Config

		var back bool
		switch {
		case res.Quit:
			return
		case res.WantsScoreboard:
			back, err = tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		default:
			back, err = playFromMenu(res.GameID, opts, cfg, store, logger)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if !back {
			return
		}
	}
}
