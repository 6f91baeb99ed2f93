package sim

import "math"

// Rules selects which player behavior a World runs.
type Rules uint8

const (
	RulesPlatformer Rules = iota // gravity, platforms, landing
	RulesShooter                 // free movement clamped to the arena, firing
	RulesPong                    // paddles and a ball
	RulesScene                   // animated props only
)

// Bounds is a rectangle centered on the origin, given by half extents.
type Bounds struct {
	HalfW float32 `yaml:"half_w"`
	HalfH float32 `yaml:"half_h"`
}

// Tuning holds the behavior constants. Zero values disable the optional
// Pong extras (spin, speed-up, speed cap).
type Tuning struct {
	EnteringHealth     int     `yaml:"entering_health"`
	SniperEnterY       float32 `yaml:"sniper_enter_y"`
	SniperDriftPeriod  float32 `yaml:"sniper_drift_period"`
	SniperFirePeriod   float32 `yaml:"sniper_fire_period"`
	SniperHealth       int     `yaml:"sniper_health"`
	BomberFirePeriod   float32 `yaml:"bomber_fire_period"`
	BomberHealth       int     `yaml:"bomber_health"`
	BossEnteringHealth int     `yaml:"boss_entering_health"`
	BossEnterY         float32 `yaml:"boss_enter_y"`
	BossHealth         int     `yaml:"boss_health"`
	BossSwayPeriod     float32 `yaml:"boss_sway_period"`
	BossFirePeriod     float32 `yaml:"boss_fire_period"`
	BossBounceX        float32 `yaml:"boss_bounce_x"`
	BossTrigger        int     `yaml:"boss_trigger"` // dead non-boss enemies before the boss enters

	PaddleSpin    float32 `yaml:"paddle_spin"`
	PaddleSpeedup float32 `yaml:"paddle_speedup"`
	MaxBallSpeed  float32 `yaml:"max_ball_speed"`

	RobotPatrol      float32 `yaml:"robot_patrol"`
	MeteorSpin       float32 `yaml:"meteor_spin"` // radians per second
	MeteorPulse      float32 `yaml:"meteor_pulse"`
	MeteorPulseLimit float32 `yaml:"meteor_pulse_limit"`
}

// DefaultTuning returns the stock constants of every demo.
func DefaultTuning() Tuning {
	return Tuning{
		EnteringHealth:     100,
		SniperEnterY:       5,
		SniperDriftPeriod:  4,
		SniperFirePeriod:   1.5,
		SniperHealth:       1,
		BomberFirePeriod:   2.5,
		BomberHealth:       1,
		BossEnteringHealth: 9000,
		BossEnterY:         12.5,
		BossHealth:         5,
		BossSwayPeriod:     1.5,
		BossFirePeriod:     1.0,
		BossBounceX:        15,
		BossTrigger:        4,

		RobotPatrol:      1,
		MeteorSpin:       math.Pi / 2,
		MeteorPulse:      0.2,
		MeteorPulseLimit: 0.5,
	}
}

// World is the simulation context of one game: its pools, rules and
// constants. Every update receives it explicitly. Pools a game does not use
// stay nil and behave as empty.
type World struct {
	Rules       Rules
	Arena       Bounds // playfield; the shooter player and Pong ball live inside it
	BulletLimit Bounds // bullets outside it are despawned
	Tuning      Tuning

	Players      *Pool
	Platforms    *Pool
	Enemies      *Pool
	Bullets      *Pool
	EnemyBullets *Pool
	Paddles      *Pool
	Balls        *Pool
	Props        *Pool
}

// NewWorld returns an empty World with default tuning.
func NewWorld(rules Rules) *World {
	return &World{Rules: rules, Tuning: DefaultTuning()}
}

// Player returns the first player slot, or nil when there is none.
func (w *World) Player() *Entity {
	if w.Players.Len() == 0 {
		return nil
	}
	return w.Players.At(0)
}

// Pool returns the pool registered for id.
func (w *World) Pool(id PoolID) *Pool {
	switch id {
	case PoolPlayer:
		return w.Players
	case PoolPlatforms:
		return w.Platforms
	case PoolEnemies:
		return w.Enemies
	case PoolBullets:
		return w.Bullets
	case PoolEnemyBullets:
		return w.EnemyBullets
	case PoolPaddles:
		return w.Paddles
	case PoolBalls:
		return w.Balls
	case PoolProps:
		return w.Props
	}
	return nil
}

// Resolve follows a weak reference. It returns nil when the target slot
// was recycled or deactivated since the ref was taken.
func (w *World) Resolve(r Ref) *Entity {
	if !r.Valid() {
		return nil
	}
	return w.Pool(r.Pool).Resolve(r)
}

// TakeHit returns e's collision partner for this tick, resolved, and clears
// e's contact state. It returns nil when e was not hit or the partner is gone.
func (w *World) TakeHit(e *Entity) *Entity {
	if !e.Hit {
		return nil
	}
	partner := w.Resolve(e.Partner)
	e.clearContacts()
	return partner
}

// Pools returns the non-nil pools in draw order: static level first,
// then projectiles, actors and the player on top.
func (w *World) Pools() []*Pool {
	all := []*Pool{w.Platforms, w.Props, w.Paddles, w.Balls, w.Bullets, w.EnemyBullets, w.Enemies, w.Players}
	out := all[:0]
	for _, p := range all {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}
