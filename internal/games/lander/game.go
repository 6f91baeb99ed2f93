// Package lander implements the Lunar Lander demo. The ship falls under
// gravity; the player steers sideways and fires the thruster to set it down
// on the landing pad. Touching anything else loses.
package lander

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/quad-arcade/internal/config"
	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/registry"
	"github.com/vovakirdan/quad-arcade/internal/render"
	"github.com/vovakirdan/quad-arcade/internal/sim"
)

// Ship skins, indexed by mode.
const (
	skinFlying = iota
	skinWin
	skinLose
)

// Game implements the Lunar Lander game logic.
type Game struct {
	cfg        config.LanderConfig
	atlas      *render.Atlas
	world      *sim.World
	loop       *sim.Loop
	difficulty *config.DifficultyManager
	skins      [3]sim.TextureHandle

	mode   sim.Mode
	paused bool
	score  int
	ticks  uint64
}

// New creates a new Lunar Lander game instance.
func New() *Game {
	return &Game{cfg: config.DefaultLanderConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "lander"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lunar Lander"
}

// Load reads the lander config and its textures.
func (g *Game) Load(opts registry.Options) error {
	cfg, err := config.LoadLander(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Difficulty != "" {
		config.ApplyLanderPreset(&cfg, opts.Difficulty)
	}

	atlas := render.NewAtlas()
	if err := atlas.AddAll(cfg.Textures); err != nil {
		return err
	}
	g.cfg = cfg
	g.atlas = atlas
	return nil
}

// Reset builds the level and puts the ship back at the top.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if g.atlas == nil {
		g.atlas = render.GlyphAtlas(g.cfg.Textures)
	}
	g.skins = [3]sim.TextureHandle{
		g.atlas.Handle("ship"),
		g.atlas.Handle("ship_win"),
		g.atlas.Handle("ship_lose"),
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.loop = sim.NewLoop(runtime.TickDuration())
	g.world = g.buildWorld()
	g.mode = sim.ModePlaying
	g.paused = false
	g.score = 0
	g.ticks = 0
}

func (g *Game) buildWorld() *sim.World {
	w := sim.NewWorld(sim.RulesPlatformer)
	w.Arena = g.cfg.Viewport

	c := g.cfg.Ship
	w.Players = sim.NewPool(sim.PoolPlayer, 1, sim.Entity{})
	ship := w.Players.Place(0, sim.Entity{
		Kind:      sim.KindPlayer,
		Position:  mgl32.Vec3{c.Start.X, c.Start.Y, 0},
		Velocity:  mgl32.Vec3{c.StartVelocity.X, c.StartVelocity.Y, 0},
		Size:      mgl32.Vec2{c.Size.W, c.Size.H},
		Scale:     mgl32.Vec2{c.Size.W, c.Size.H},
		Speed:     c.Speed,
		JumpPower: g.cfg.Physics.JumpPower,
		Texture:   g.skins[skinFlying],
	})
	ship.Acceleration[1] = g.gravity()
	ship.Active = true

	winTex, loseTex := g.atlas.Handle("win_tile"), g.atlas.Handle("lose_tile")
	w.Platforms = sim.NewPool(sim.PoolPlatforms, len(g.cfg.Tiles), sim.Entity{})
	for i, t := range g.cfg.Tiles {
		size := mgl32.Vec2{1, 1}
		if t.Size != nil {
			size = mgl32.Vec2{t.Size.W, t.Size.H}
		}
		tile := sim.Entity{
			Kind:     sim.KindLosePlatform,
			Position: mgl32.Vec3{t.X, t.Y, 0},
			Size:     size,
			Scale:    size,
			Texture:  loseTex,
		}
		if t.Win {
			tile.Kind = sim.KindWinPlatform
			tile.Texture = winTex
		}
		w.Platforms.Place(i, tile).Active = true
	}
	return w
}

// gravity returns the vertical acceleration for the current level.
func (g *Game) gravity() float32 {
	base := float64(g.cfg.Physics.Gravity)
	return float32(g.difficulty.Speed(base, g.score, g.ticks))
}

// Step applies one frame of input and advances the simulation.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	if g.mode.Terminal() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	ship := g.world.Player()
	x, _ := in.Direction()
	ship.Movement = mgl32.Vec3{x, 0, 0}
	if in.Has(core.ActionJump) {
		ship.Jump = true
	}

	n := g.loop.Advance(g, elapsed)
	return core.StepResult{State: g.State(), Ticks: n}
}

// Tick runs one fixed step. Any contact ends the flight: a landing on the
// pad wins, everything else loses.
func (g *Game) Tick(dt float32) {
	w := g.world
	ship := w.Player()
	ship.Acceleration[1] = g.gravity()
	ship.Update(dt, w)
	g.ticks++

	if !ship.Collided.Any() {
		return
	}
	if ship.Collided.Bottom && ship.Partner.Kind == sim.KindWinPlatform {
		g.finish(sim.ModeWin)
	} else {
		g.finish(sim.ModeLose)
	}
}

func (g *Game) finish(mode sim.Mode) {
	g.mode = mode
	ship := g.world.Player()
	if mode == sim.ModeWin {
		ship.Texture = g.skins[skinWin]
		g.score = g.landingBonus()
	} else {
		ship.Texture = g.skins[skinLose]
	}
}

// landingBonus shrinks with flight time, down to the configured minimum.
func (g *Game) landingBonus() int {
	s := g.cfg.Scoring
	secs := float64(g.ticks) * g.loop.Step().Seconds()
	bonus := s.WinBonus - int(math.Round(secs*float64(s.PenaltyPerSec)))
	return max(bonus, s.MinBonus)
}

// Mode reports the game mode to the loop.
func (g *Game) Mode() sim.Mode {
	return g.mode
}

// Render draws the level, the ship and the HUD.
func (g *Game) Render(dst render.Canvas) {
	v := g.cfg.Viewport
	dst.Begin(render.Ortho(v.HalfW, v.HalfH), g.atlas)
	sim.Draw(dst, g.world.Pools()...)
	dst.Outline(core.ColorGray)

	ship := g.world.Player()
	hud := fmt.Sprintf("ALT %5.2f  VX %+.2f  VY %+.2f", ship.Position[1], ship.Velocity[0], ship.Velocity[1])
	dst.Text(0, 0, hud, core.ColorWhite)

	mid := dst.Rows() / 3
	switch g.mode {
	case sim.ModeWin:
		dst.TextCentered(mid, "GREAT SUCCESS!!", core.ColorBrightGreen)
		dst.TextCentered(mid+1, fmt.Sprintf("Score: %d  |  Press R to restart", g.score), core.ColorWhite)
	case sim.ModeLose:
		dst.TextCentered(mid, "MISSION FAILED", core.ColorBrightRed)
		dst.TextCentered(mid+1, "Press R to restart", core.ColorWhite)
	default:
		if g.paused {
			dst.TextCentered(mid, "PAUSED", core.ColorBrightYellow)
			dst.TextCentered(mid+1, "Press P to resume", core.ColorWhite)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.mode.Terminal(),
		Paused:   g.paused,
		Outcome:  outcome(g.mode),
		Ticks:    g.ticks,
	}
}

func outcome(m sim.Mode) core.Outcome {
	switch m {
	case sim.ModeWin:
		return core.OutcomeWin
	case sim.ModeLose:
		return core.OutcomeLose
	}
	return core.OutcomeNone
}

// Register the game with the registry
func init() {
	registry.Register("lander", func() registry.Game {
		return New()
	})
}
