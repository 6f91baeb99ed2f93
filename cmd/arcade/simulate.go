package main

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/registry"
	"github.com/vovakirdan/quad-arcade/internal/render"
	"github.com/vovakirdan/quad-arcade/internal/storage"
)

var (
	flagSimSeconds float64
	flagSimFrame   time.Duration
	flagSimJitter  bool
	flagSimShow    bool
	flagSimSave    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <game>",
	Short: "Run a game headless with its autopilot",
	Long: `Run a game without a terminal, feeding it autopilot input frame by frame,
and print how it ended. Two runs with the same seed, frame length and jitter
end in the same state.

Games without an autopilot receive no input.

Examples:
  arcade simulate lander --seed 1
  arcade simulate shooter --seconds 120 --jitter --seed 7
  arcade simulate pong --frame 33ms --show
  arcade simulate scene --seconds 5 --show`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	simulateCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 60, "Simulated time limit")
	simulateCmd.Flags().DurationVar(&flagSimFrame, "frame", 16*time.Millisecond, "Elapsed time fed per frame")
	simulateCmd.Flags().BoolVar(&flagSimJitter, "jitter", false, "Vary frame lengths (seeded) to exercise the accumulator")
	simulateCmd.Flags().BoolVar(&flagSimShow, "show", false, "Print the final frame")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store the run in the scores database")
	addGameFlags(simulateCmd)
}

// simResult is how a simulated run ended.
type simResult struct {
	State   core.GameState
	Frames  int
	Elapsed time.Duration
}

// simulate drives game for up to limit of simulated time. Frame lengths are
// frame, or vary in [1ms, 2*frame] from rng when it is not nil.
func simulate(game registry.Game, limit, frame time.Duration, rng *rand.Rand) simResult {
	pilot, _ := game.(registry.Pilot)
	var res simResult
	for res.Elapsed < limit && !game.State().GameOver {
		d := frame
		if rng != nil {
			d = time.Millisecond + time.Duration(rng.Int63n(int64(2*frame)))
		}
		in := core.NewInputFrame()
		if pilot != nil {
			in = pilot.Autopilot()
		}
		game.Step(in, d)
		res.Elapsed += d
		res.Frames++
	}
	res.State = game.State()
	return res
}

func runSimulate(_ *cobra.Command, args []string) error {
	if flagSimFrame <= 0 {
		return errors.New("--frame must be positive")
	}
	opts, err := gameOptions()
	if err != nil {
		return err
	}
	game := openGame(args[0], opts)

	logger, closeLog := mustLogger(false)
	defer closeLog()

	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	var rng *rand.Rand
	if flagSimJitter {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	limit := time.Duration(flagSimSeconds * float64(time.Second))

	started := time.Now()
	res := simulate(game, limit, flagSimFrame, rng)
	logger.Debug("simulation finished", "game", game.ID(), "frames", res.Frames, "wall", time.Since(started))

	if flagSimShow {
		screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
		game.Render(render.NewScreenCanvas(screen))
		fmt.Println(screen.String())
	}

	st := res.State
	outcome := st.Outcome.String()
	if !st.GameOver {
		outcome = "running"
	}
	fmt.Printf("game:    %s\n", game.ID())
	fmt.Printf("seed:    %d\n", cfg.Seed)
	fmt.Printf("outcome: %s\n", outcome)
	fmt.Printf("score:   %d\n", st.Score)
	fmt.Printf("ticks:   %d\n", st.Ticks)
	fmt.Printf("frames:  %d (%.2fs simulated)\n", res.Frames, res.Elapsed.Seconds())

	if !flagSimSave || st.Ticks == 0 {
		return nil
	}
	run, err := saveSimulatedRun(flagDBPath, game.ID(), st, cfg.Seed)
	if err != nil {
		return err
	}
	logger.Info("run saved", "run", run.RunID)
	return nil
}

// saveSimulatedRun stores a finished simulation in the database at dbPath.
func saveSimulatedRun(dbPath, gameID string, st core.GameState, seed int64) (storage.Run, error) {
	store, err := storage.Open(dbPath)
	if err != nil {
		return storage.Run{}, err
	}
	defer store.Close()

	return store.SaveRun(storage.Run{
		GameID:  gameID,
		Outcome: st.Outcome,
		Score:   st.Score,
		Ticks:   st.Ticks,
		Seed:    seed,
	})
}
