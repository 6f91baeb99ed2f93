// Package scene is the animated demo scene: a robot patrolling next to a
// spinning, pulsing meteor. It has no goal and never ends.
package scene

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/quad-arcade/internal/config"
	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/registry"
	"github.com/vovakirdan/quad-arcade/internal/render"
	"github.com/vovakirdan/quad-arcade/internal/sim"
)

// Prop slots.
const (
	robot = iota
	meteor
)

// Game runs the scene.
type Game struct {
	cfg    config.SceneConfig
	atlas  *render.Atlas
	world  *sim.World
	loop   *sim.Loop
	paused bool
	ticks  uint64
}

// New creates a new scene instance.
func New() *Game {
	return &Game{cfg: config.DefaultSceneConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "scene"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Robot & Meteor"
}

// Load reads the scene config and its textures. The scene has no
// difficulty, so the preset is ignored.
func (g *Game) Load(opts registry.Options) error {
	cfg, err := config.LoadScene(opts.ConfigPath)
	if err != nil {
		return err
	}
	atlas := render.NewAtlas()
	if err := atlas.AddAll(cfg.Textures); err != nil {
		return err
	}
	g.cfg = cfg
	g.atlas = atlas
	return nil
}

// Reset puts both props back at their start.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if g.atlas == nil {
		g.atlas = render.GlyphAtlas(g.cfg.Textures)
	}
	g.loop = sim.NewLoop(runtime.TickDuration())
	g.world = g.buildWorld()
	g.paused = false
	g.ticks = 0
}

func (g *Game) buildWorld() *sim.World {
	w := sim.NewWorld(sim.RulesScene)
	w.Arena = g.cfg.Viewport
	w.Tuning = g.cfg.Tuning
	w.Props = sim.NewPool(sim.PoolProps, 2, sim.Entity{})

	r := prop(sim.KindRobot, g.cfg.Robot, g.atlas.Handle("robot"))
	r.Velocity = mgl32.Vec3{1, 0, 0}
	w.Props.Place(robot, r).Active = true
	w.Props.Place(meteor, prop(sim.KindMeteor, g.cfg.Meteor, g.atlas.Handle("meteor"))).Active = true
	return w
}

func prop(kind sim.Kind, p config.SceneProp, tex sim.TextureHandle) sim.Entity {
	size := mgl32.Vec2{p.Size.W, p.Size.H}
	return sim.Entity{
		Kind:     kind,
		Position: mgl32.Vec3{p.Start.X, p.Start.Y, 0},
		Size:     size,
		Scale:    size,
		Speed:    p.Speed,
		Texture:  tex,
	}
}

// Step advances the animation. Only pause is read from the input.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	n := g.loop.Advance(g, elapsed)
	return core.StepResult{State: g.State(), Ticks: n}
}

// Tick animates both props by one step.
func (g *Game) Tick(dt float32) {
	g.world.Props.Update(dt, g.world)
	g.ticks++
}

// Mode reports the game mode to the loop. The scene always plays.
func (g *Game) Mode() sim.Mode {
	return sim.ModePlaying
}

// Render draws the props and a clock.
func (g *Game) Render(dst render.Canvas) {
	v := g.cfg.Viewport
	dst.Begin(render.Ortho(v.HalfW, v.HalfH), g.atlas)
	sim.Draw(dst, g.world.Pools()...)
	dst.Outline(core.ColorGray)

	secs := float64(g.ticks) * g.loop.Step().Seconds()
	dst.Text(0, 0, fmt.Sprintf("T+%6.1fs", secs), core.ColorGray)
	if g.paused {
		dst.TextCentered(dst.Rows()/3, "PAUSED", core.ColorBrightYellow)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Paused: g.paused, Ticks: g.ticks}
}

// Register the game with the registry
func init() {
	registry.Register("scene", func() registry.Game {
		return New()
	})
}
