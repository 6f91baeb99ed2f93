package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/platform/tui"
	"github.com/vovakirdan/quad-arcade/internal/registry"
	"github.com/vovakirdan/quad-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game in the terminal.

Keys:
  arrows, WASD   move the paddle or ship
  space          thrust, fire or serve
  p              pause
  r              new run after game over
  b, esc         leave a paused or finished game
  ctrl+s         screenshot to ~/.arcade/screenshots
  q, ctrl+c      quit

--difficulty picks a preset: easy, normal and hard start lower or
higher and ramp up; fixed never changes.

Examples:
  arcade play lander
  arcade play pong --difficulty hard
  arcade play shooter --difficulty fixed
  arcade play lander --config ./my-lander.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags every command that loads games takes.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) {
	opts, err := gameOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	game := openGame(args[0], opts)

	logger, closeLog := mustLogger(true)
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		logger.Error("game failed", "game", game.ID(), "error", err)
	}
}

// playFromMenu loads a game chosen in the menu and plays it. It reports
// whether the player went back to the menu.
func playFromMenu(id string, opts registry.Options, cfg core.RuntimeConfig, store *storage.Store, logger *log.Logger) (bool, error) {
	game, err := registry.Open(id, opts)
	if err != nil {
		return false, err
	}
	return tui.Run(game, store, cfg, logger)
}
