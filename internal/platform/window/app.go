//go:build ebiten

package window

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/registry"
	"github.com/vovakirdan/quad-arcade/internal/storage"
)

// maxFrame caps the time one frame may feed the simulation.
const maxFrame = 250 * time.Millisecond

var (
	heldKeys = map[core.Action][]ebiten.Key{
		core.ActionUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
		core.ActionDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
		core.ActionLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
		core.ActionRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	}
	pressedKeys = map[core.Action]ebiten.Key{
		core.ActionJump:  ebiten.KeySpace,
		core.ActionPause: ebiten.KeyP,
	}
)

// App adapts a registry.Game to ebiten.Game.
type App struct {
	game      registry.Game
	canvas    *Canvas
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	fixedSeed bool

	last  time.Time
	state core.GameState
	saved bool
}

// NewApp creates an app for game and resets it.
func NewApp(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) *App {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	a := &App{
		game:      game,
		canvas:    NewCanvas(),
		store:     store,
		logger:    logger.With("game", game.ID()),
		config:    cfg,
		fixedSeed: fixed,
	}
	a.restart()
	return a
}

func (a *App) restart() {
	if !a.fixedSeed && !a.last.IsZero() {
		a.config.Seed = time.Now().UnixNano()
	}
	a.game.Reset(a.config)
	a.state = a.game.State()
	a.last = time.Time{}
	a.saved = false
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.save()
		return ebiten.Termination
	}
	if a.state.GameOver && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.restart()
		a.logger.Debug("restarted", "seed", a.config.Seed)
	}

	now := time.Now()
	var elapsed time.Duration
	if !a.last.IsZero() {
		elapsed = min(max(now.Sub(a.last), 0), maxFrame)
	}
	a.last = now

	a.state = a.game.Step(pollInput(), elapsed).State
	if a.state.GameOver {
		a.save()
	}
	return nil
}

// pollInput reads held directions and newly pressed one-shot keys.
func pollInput() core.InputFrame {
	frame := core.NewInputFrame()
	for action, keys := range heldKeys {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				frame.Set(action)
			}
		}
	}
	for action, k := range pressedKeys {
		if inpututil.IsKeyJustPressed(k) {
			frame.Set(action)
		}
	}
	return frame
}

// save stores the current run once.
func (a *App) save() {
	if a.saved || a.state.Ticks == 0 {
		return
	}
	a.saved = true
	if a.store == nil {
		return
	}
	run, err := a.store.SaveRun(storage.Run{
		GameID:  a.game.ID(),
		Outcome: a.state.Outcome,
		Score:   a.state.Score,
		Ticks:   a.state.Ticks,
		Seed:    a.config.Seed,
	})
	if err != nil {
		a.logger.Warn("could not save run", "error", err)
		return
	}
	a.logger.Info("run saved", "run", run.RunID, "outcome", run.Outcome, "score", run.Score)
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.canvas.Target(screen)
	a.game.Render(a.canvas)
}

// Layout implements ebiten.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens a window and plays game until it is closed.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	ebiten.SetWindowSize(960, 720)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizable(true)
	if cfg.FPS > 0 {
		ebiten.SetTPS(cfg.FPS)
	}

	app := NewApp(game, store, cfg, logger)
	if err := ebiten.RunGame(app); err != nil {
		return err
	}
	app.save()
	return nil
}
