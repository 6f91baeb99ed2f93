// Package pong implements a classic Pong game with CPU opponent.
// Player 1 controls the left paddle, CPU controls the right paddle.
package pong

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/quad-arcade/internal/config"
	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/registry"
	"github.com/vovakirdan/quad-arcade/internal/render"
	"github.com/vovakirdan/quad-arcade/internal/sim"
)

// Paddle slots.
const (
	player = 0
	cpu    = 1
)

// NetChar is drawn down the center line.
const NetChar = "│"

// Game implements the Pong game logic.
type Game struct {
	cfg        config.PongConfig
	atlas      *render.Atlas
	world      *sim.World
	loop       *sim.Loop
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	scores   [2]int  // player, CPU
	serveDir float32 // x direction of the next serve
	mode     sim.Mode
	paused   bool
	ticks    uint64
}

// New creates a new Pong game instance.
func New() *Game {
	return &Game{cfg: config.DefaultPongConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Load reads the Pong config and its textures.
func (g *Game) Load(opts registry.Options) error {
	cfg, err := config.LoadPong(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Difficulty != "" {
		config.ApplyPongPreset(&cfg, opts.Difficulty)
	}

	atlas := render.NewAtlas()
	if err := atlas.AddAll(cfg.Textures); err != nil {
		return err
	}
	g.cfg = cfg
	g.atlas = atlas
	return nil
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if g.atlas == nil {
		g.atlas = render.GlyphAtlas(g.cfg.Textures)
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.loop = sim.NewLoop(runtime.TickDuration())
	g.world = g.buildWorld()
	g.scores = [2]int{}
	g.serveDir = -1 // first serve goes to the player
	g.mode = sim.ModePlaying
	g.paused = false
	g.ticks = 0
}

func (g *Game) buildWorld() *sim.World {
	c := g.cfg
	w := sim.NewWorld(sim.RulesPong)
	w.Arena = c.Field
	w.Tuning = c.Tuning

	paddle := mgl32.Vec2{c.Paddles.Size.W, c.Paddles.Size.H}
	w.Paddles = sim.NewPool(sim.PoolPaddles, 2, sim.Entity{
		Kind:    sim.KindPaddle,
		Size:    paddle,
		Scale:   paddle,
		Speed:   c.Physics.PaddleSpeed,
		Texture: g.atlas.Handle("paddle"),
	})
	for i, x := range []float32{-c.Paddles.X, c.Paddles.X} {
		p := w.Paddles.At(i)
		p.Position = mgl32.Vec3{x, 0, 0}
		p.Active = true
		p.UpdateTransform()
	}

	ball := mgl32.Vec2{c.Ball.W, c.Ball.H}
	w.Balls = sim.NewPool(sim.PoolBalls, 1, sim.Entity{
		Kind:    sim.KindBall,
		Size:    ball,
		Scale:   ball,
		Speed:   c.Physics.BallSpeed,
		Texture: g.atlas.Handle("ball"),
	})
	w.Balls.At(0).Active = true
	w.Balls.At(0).UpdateTransform()
	return w
}

func (g *Game) ball() *sim.Entity {
	return g.world.Balls.At(0)
}

// serve launches the ball from the center toward serveDir at a random angle.
func (g *Game) serve() {
	b := g.ball()
	angle := (g.rng.Float32()*2 - 1) * g.cfg.Physics.ServeAngle
	b.Position = mgl32.Vec3{}
	b.Velocity = mgl32.Vec3{g.serveDir, angle, 0}.Mul(b.Speed)
	b.Launched = true
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

	_, y := in.Direction()
	g.world.Paddles.At(player).Movement = mgl32.Vec3{0, y, 0}
	if in.Has(core.ActionJump) && !g.ball().Launched {
		g.serve()
	}

	n := g.loop.Advance(g, elapsed)
	return core.StepResult{State: g.State(), Ticks: n}
}

// Tick runs one fixed step and scores a finished rally.
func (g *Game) Tick(dt float32) {
	w := g.world
	g.updateCPU()
	w.Paddles.Update(dt, w)
	w.Balls.Update(dt, w)
	g.ticks++

	b := g.ball()
	switch {
	case b.Collided.Left:
		g.point(cpu)
	case b.Collided.Right:
		g.point(player)
	}
}

// point scores a rally for side and sets up the next serve toward it.
func (g *Game) point(side int) {
	g.scores[side]++
	b := g.ball()
	b.Position = mgl32.Vec3{}
	b.UpdateTransform()

	if side == player {
		g.serveDir = 1
	} else {
		g.serveDir = -1
	}

	if g.scores[side] >= g.cfg.Gameplay.WinScore {
		if side == player {
			g.mode = sim.ModeWin
		} else {
			g.mode = sim.ModeLose
		}
	}
}

// updateCPU steers the right paddle toward the ball while it is incoming.
// Skill scales the paddle speed and ramps up with the difficulty level.
func (g *Game) updateCPU() {
	p := g.world.Paddles.At(cpu)
	b := g.ball()
	p.Movement = mgl32.Vec3{}
	if !b.Launched || b.Velocity[0] <= 0 {
		return
	}

	skill := float32(g.difficulty.Lerp(g.cfg.CPU.MinSkill, g.cfg.CPU.MaxSkill, g.scores[player], g.ticks))
	diff := b.Position[1] - p.Position[1]
	switch {
	case diff > g.cfg.CPU.DeadZone:
		p.Movement[1] = skill
	case diff < -g.cfg.CPU.DeadZone:
		p.Movement[1] = -skill
	}
}

// Mode reports the game mode to the loop.
func (g *Game) Mode() sim.Mode {
	return g.mode
}

// Render draws the field, scores and messages.
func (g *Game) Render(dst render.Canvas) {
	f := g.cfg.Field
	dst.Begin(render.Ortho(f.HalfW, f.HalfH), g.atlas)

	// Draw center line (net)
	centerX := dst.Columns() / 2
	for y := 1; y < dst.Rows()-1; y += 2 {
		dst.Text(centerX, y, NetChar, core.ColorGray)
	}
	sim.Draw(dst, g.world.Pools()...)
	dst.Outline(core.ColorGray)

	// Draw scores
	dst.Text(centerX-5, 0, fmt.Sprintf("%d", g.scores[player]), core.ColorWhite)
	dst.Text(centerX+4, 0, fmt.Sprintf("%d", g.scores[cpu]), core.ColorWhite)

	// Draw labels
	dst.Text(1, 0, "P1", core.ColorBrightCyan)
	dst.Text(dst.Columns()-4, 0, "CPU", core.ColorBrightRed)

	mid := dst.Rows() / 3
	switch g.mode {
	case sim.ModeWin, sim.ModeLose:
		msg := "YOU WIN!"
		if g.mode == sim.ModeLose {
			msg = "CPU WINS!"
		}
		dst.TextCentered(mid, msg, core.ColorBrightYellow)
		dst.TextCentered(mid+1, fmt.Sprintf("%d - %d  |  Press R to restart", g.scores[player], g.scores[cpu]), core.ColorWhite)
	default:
		switch {
		case g.paused:
			dst.TextCentered(mid, "PAUSED", core.ColorBrightYellow)
			dst.TextCentered(mid+1, "Press P to resume", core.ColorWhite)
		case !g.ball().Launched:
			dst.TextCentered(dst.Rows()-2, "Press SPACE to serve", core.ColorWhite)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.scores[player], // Report player's score
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
	registry.Register("pong", func() registry.Game {
		return New()
	})
}
