// Package shooter implements Rise of AI, a vertical shooter. Waves of snipers
// and bombers come down on the player's ship; once enough of them are
// destroyed the boss enters, and killing it wins the game.
package shooter

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

// Game implements the Rise of AI game logic.
type Game struct {
	cfg        config.ShooterConfig
	atlas      *render.Atlas
	world      *sim.World
	loop       *sim.Loop
	difficulty *config.DifficultyManager
	boss       int // enemy slot of the boss

	mode          sim.Mode
	paused        bool
	bossAnnounced bool
	score         int
	ticks         uint64
}

// New creates a new Rise of AI game instance.
func New() *Game {
	return &Game{cfg: config.DefaultShooterConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Rise of AI"
}

// Load reads the shooter config and its textures.
func (g *Game) Load(opts registry.Options) error {
	cfg, err := config.LoadShooter(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Difficulty != "" {
		config.ApplyShooterPreset(&cfg, opts.Difficulty)
	}

	atlas := render.NewAtlas()
	if err := atlas.AddAll(cfg.Textures); err != nil {
		return err
	}
	g.cfg = cfg
	g.atlas = atlas
	return nil
}

// Reset lays out the ship and the enemy waves.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if g.atlas == nil {
		g.atlas = render.GlyphAtlas(g.cfg.Textures)
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.loop = sim.NewLoop(runtime.TickDuration())
	g.world = g.buildWorld()
	g.mode = sim.ModePlaying
	g.paused = false
	g.bossAnnounced = false
	g.score = 0
	g.ticks = 0
}

func (g *Game) buildWorld() *sim.World {
	c := g.cfg
	w := sim.NewWorld(sim.RulesShooter)
	w.Arena = c.Arena
	w.BulletLimit = c.BulletLimit
	w.Tuning = c.Tuning

	w.Players = sim.NewPool(sim.PoolPlayer, 1, sim.Entity{})
	w.Players.Place(0, ship(sim.KindPlayer, c.Player, g.atlas.Handle("player"))).Active = true

	w.Bullets = sim.NewPool(sim.PoolBullets, c.Pools.Bullets,
		projectile(sim.KindBullet, c.Bullet, g.atlas.Handle("bullet")))
	w.EnemyBullets = sim.NewPool(sim.PoolEnemyBullets, c.Pools.EnemyBullets,
		projectile(sim.KindEnemyBullet, c.EnemyBullet, g.atlas.Handle("enemy_bullet")))

	w.Enemies = sim.NewPool(sim.PoolEnemies, c.Pools.Enemies, sim.Entity{})
	g.placeSquad(w.Enemies, c.Snipers, sim.ArchetypeSniper, g.atlas.Handle("sniper"))
	g.placeSquad(w.Enemies, c.Bombers, sim.ArchetypeBomber, g.atlas.Handle("bomber"))

	g.boss = w.Enemies.Len() - 1
	boss := ship(sim.KindEnemy, c.Boss, g.atlas.Handle("boss"))
	boss.Archetype = sim.ArchetypeBoss
	boss.State = sim.StateIdle
	w.Enemies.Place(g.boss, boss).Active = true
	return w
}

// placeSquad puts every squad member into its slot, entering from off-screen.
// Members that do not fit in the pool are dropped.
func (g *Game) placeSquad(pool *sim.Pool, s config.Squad, arch sim.Archetype, tex sim.TextureHandle) {
	size := mgl32.Vec2{s.Size.W, s.Size.H}
	for i := range s.Count {
		slot := s.First + i
		if slot < 0 || slot >= pool.Len()-1 {
			continue
		}
		pool.Place(slot, sim.Entity{
			Kind:      sim.KindEnemy,
			Position:  mgl32.Vec3{s.Start.X + s.Step.X*float32(slot), s.Start.Y + s.Step.Y*float32(slot), 0},
			Velocity:  mgl32.Vec3{s.Drift.X, s.Drift.Y, 0},
			Size:      size,
			Scale:     size,
			Speed:     s.Speed + s.SpeedStep*float32(i),
			Health:    1,
			ShotPower: s.ShotPower,
			Archetype: arch,
			State:     sim.StateEntering,
			Texture:   tex,
		}).Active = true
	}
}

func ship(kind sim.Kind, s config.ShooterShip, tex sim.TextureHandle) sim.Entity {
	size := mgl32.Vec2{s.Size.W, s.Size.H}
	return sim.Entity{
		Kind:      kind,
		Position:  mgl32.Vec3{s.Start.X, s.Start.Y, 0},
		Size:      size,
		Scale:     size,
		Speed:     s.Speed,
		Health:    s.Health,
		ShotPower: s.ShotPower,
		Texture:   tex,
	}
}

func projectile(kind sim.Kind, p config.Projectile, tex sim.TextureHandle) sim.Entity {
	size := mgl32.Vec2{p.Size.W, p.Size.H}
	return sim.Entity{Kind: kind, Size: size, Scale: size, Speed: p.Speed, Texture: tex}
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

	p := g.world.Player()
	move := mgl32.Vec3{}
	move[0], move[1] = in.Direction()
	if move.Len() > 1 {
		move = move.Normalize()
	}
	p.Movement = move
	if in.Has(core.ActionJump) {
		p.Fire = true
	}

	n := g.loop.Advance(g, elapsed)
	return core.StepResult{State: g.State(), Ticks: n}
}

// Tick runs one fixed step: projectiles, enemies and the player move first,
// then the hits recorded during the step are applied.
func (g *Game) Tick(dt float32) {
	w := g.world
	g.tuneEnemyBullets()

	w.Bullets.Update(dt, w)
	w.EnemyBullets.Update(dt, w)
	w.Enemies.Update(dt, w)
	w.Players.Update(dt, w)
	g.ticks++

	g.damageEnemies()
	g.damagePlayer()

	boss := w.Enemies.At(g.boss)
	if boss.State == sim.StateIdle && sim.CountDead(w.Enemies, sim.ArchetypeBoss) >= w.Tuning.BossTrigger {
		boss.State = sim.StateEntering
		g.bossAnnounced = true
	}

	switch {
	case boss.State == sim.StateDead:
		g.mode = sim.ModeWin
	case w.Player().Health <= 0:
		g.mode = sim.ModeLose
	}
}

// tuneEnemyBullets speeds up enemy fire as the difficulty rises.
func (g *Game) tuneEnemyBullets() {
	speed := float32(g.difficulty.Speed(float64(g.cfg.EnemyBullet.Speed), g.score, g.ticks))
	g.world.EnemyBullets.Each(func(_ int, b *sim.Entity) {
		if !b.Active {
			b.Speed = speed
		}
	})
}

// damageEnemies applies this tick's hits and kills every enemy out of health.
// A bullet is spent on the first enemy that takes it.
func (g *Game) damageEnemies() {
	w := g.world
	w.Enemies.Each(func(_ int, e *sim.Entity) {
		if partner := w.TakeHit(e); partner != nil {
			switch partner.Kind {
			case sim.KindPlayer:
				e.Health = 0
			case sim.KindBullet:
				e.Health -= partner.ShotPower
				partner.Active = false
			}
		}
		if e.Active && e.Health <= 0 {
			e.Kill()
			g.score += g.points(e.Archetype)
		}
	})
}

func (g *Game) damagePlayer() {
	w := g.world
	p := w.Player()
	partner := w.TakeHit(p)
	if partner == nil {
		return
	}
	switch partner.Kind {
	case sim.KindEnemy:
		p.Health = 0
	case sim.KindEnemyBullet:
		p.Health -= partner.ShotPower
		partner.Active = false
	}
}

func (g *Game) points(a sim.Archetype) int {
	switch a {
	case sim.ArchetypeSniper:
		return g.cfg.Scoring.Sniper
	case sim.ArchetypeBomber:
		return g.cfg.Scoring.Bomber
	case sim.ArchetypeBoss:
		return g.cfg.Scoring.Boss
	}
	return 0
}

// Mode reports the game mode to the loop.
func (g *Game) Mode() sim.Mode {
	return g.mode
}

// Render draws the arena and the HUD.
func (g *Game) Render(dst render.Canvas) {
	v := g.cfg.Viewport
	dst.Begin(render.Ortho(v.HalfW, v.HalfH), g.atlas)
	sim.Draw(dst, g.world.Pools()...)
	dst.Outline(core.ColorGray)

	health := max(g.world.Player().Health, 0)
	dst.Text(0, dst.Rows()-1, fmt.Sprintf("HEALTH:%d", health), core.ColorBrightGreen)
	score := fmt.Sprintf("SCORE:%d", g.score)
	dst.Text(dst.Columns()-len(score), 0, score, core.ColorWhite)
	if g.bossAnnounced && g.mode == sim.ModePlaying {
		boss := g.world.Enemies.At(g.boss)
		dst.Text(0, 0, fmt.Sprintf("BOSS HEALTH:%d", g.bossHealth(boss)), core.ColorBrightRed)
	}

	mid := dst.Rows() / 3
	switch g.mode {
	case sim.ModeWin:
		dst.TextCentered(mid, "VICTORY!", core.ColorBrightGreen)
		dst.TextCentered(mid+1, "Press R to restart", core.ColorWhite)
	case sim.ModeLose:
		dst.TextCentered(mid, "YOU DIED", core.ColorBrightRed)
		dst.TextCentered(mid+1, "Press R to restart", core.ColorWhite)
	default:
		if g.paused {
			dst.TextCentered(mid, "PAUSED", core.ColorBrightYellow)
			dst.TextCentered(mid+1, "Press P to resume", core.ColorWhite)
		}
	}
}

// bossHealth shows the fighting health while the boss is still entering.
func (g *Game) bossHealth(boss *sim.Entity) int {
	if boss.State != sim.StateDefault {
		return g.world.Tuning.BossHealth
	}
	return max(boss.Health, 0)
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
	registry.Register("shooter", func() registry.Game {
		return New()
	})
}
