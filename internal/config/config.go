// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade demos.
package config

import "github.com/vovakirdan/quad-arcade/internal/sim"

// Point is a position or offset in world units.
type Point struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// Size is a full box width and height in world units.
type Size struct {
	W float32 `yaml:"w"`
	H float32 `yaml:"h"`
}

// TextureSpec describes one texture. Path is optional; without it the
// texture is a plain glyph in the given color.
type TextureSpec struct {
	Path  string `yaml:"path"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// LanderConfig contains all configuration for the Lunar Lander demo.
type LanderConfig struct {
	Viewport   sim.Bounds             `yaml:"viewport"`
	Ship       LanderShip             `yaml:"ship"`
	Physics    LanderPhysics          `yaml:"physics"`
	Tiles      []TileSpec             `yaml:"tiles"`
	Scoring    LanderScoring          `yaml:"scoring"`
	Textures   map[string]TextureSpec `yaml:"textures"`
	Difficulty DifficultyConfig       `yaml:"difficulty"`
}

// LanderShip defines the ship's starting state.
type LanderShip struct {
	Start         Point   `yaml:"start"`
	Size          Size    `yaml:"size"`
	Speed         float32 `yaml:"speed"`          // horizontal speed at full input
	StartVelocity Point   `yaml:"start_velocity"` // initial drift
}

// LanderPhysics defines the forces acting on the ship.
type LanderPhysics struct {
	Gravity   float32 `yaml:"gravity"`    // vertical acceleration, negative pulls down
	JumpPower float32 `yaml:"jump_power"` // upward impulse per thrust press
}

// TileSpec places one platform tile. Tiles are unit squares unless sized.
type TileSpec struct {
	X    float32 `yaml:"x"`
	Y    float32 `yaml:"y"`
	Win  bool    `yaml:"win,omitempty"`
	Size *Size   `yaml:"size,omitempty"`
}

// LanderScoring defines the landing bonus.
type LanderScoring struct {
	WinBonus      int `yaml:"win_bonus"`
	PenaltyPerSec int `yaml:"penalty_per_sec"` // subtracted per second of flight
	MinBonus      int `yaml:"min_bonus"`
}

// ShooterConfig contains all configuration for the Rise of AI shooter.
type ShooterConfig struct {
	Arena       sim.Bounds             `yaml:"arena"`
	BulletLimit sim.Bounds             `yaml:"bullet_limit"`
	Viewport    sim.Bounds             `yaml:"viewport"`
	Pools       ShooterPools           `yaml:"pools"`
	Player      ShooterShip            `yaml:"player"`
	Bullet      Projectile             `yaml:"bullet"`
	EnemyBullet Projectile             `yaml:"enemy_bullet"`
	Snipers     Squad                  `yaml:"snipers"`
	Bombers     Squad                  `yaml:"bombers"`
	Boss        ShooterShip            `yaml:"boss"`
	Tuning      sim.Tuning             `yaml:"tuning"`
	Scoring     ShooterScoring         `yaml:"scoring"`
	Textures    map[string]TextureSpec `yaml:"textures"`
	Difficulty  DifficultyConfig       `yaml:"difficulty"`
}

// ShooterPools sets the capacity of each entity pool.
type ShooterPools struct {
	Bullets      int `yaml:"bullets"`
	Enemies      int `yaml:"enemies"`
	EnemyBullets int `yaml:"enemy_bullets"`
}

// ShooterShip defines the player ship or the boss.
type ShooterShip struct {
	Start     Point   `yaml:"start"`
	Size      Size    `yaml:"size"`
	Speed     float32 `yaml:"speed"`
	Health    int     `yaml:"health"`
	ShotPower int     `yaml:"shot_power"`
}

// Projectile defines every bullet of a pool.
type Projectile struct {
	Speed float32 `yaml:"speed"`
	Size  Size    `yaml:"size"`
}

// Squad defines a group of enemies sharing one archetype. Member i of the
// squad occupies enemy slot First+i and starts at Start + Step*slot.
type Squad struct {
	First     int     `yaml:"first"`
	Count     int     `yaml:"count"`
	Start     Point   `yaml:"start"`
	Step      Point   `yaml:"step"`
	Drift     Point   `yaml:"drift"` // initial velocity direction
	Size      Size    `yaml:"size"`
	Speed     float32 `yaml:"speed"`
	SpeedStep float32 `yaml:"speed_step"` // added per slot index
	ShotPower int     `yaml:"shot_power"`
}

// ShooterScoring defines points per kill.
type ShooterScoring struct {
	Sniper int `yaml:"sniper"`
	Bomber int `yaml:"bomber"`
	Boss   int `yaml:"boss"`
}

// PongConfig contains all configuration for the Pong game.
type PongConfig struct {
	Field      sim.Bounds             `yaml:"field"`
	Physics    PongPhysics            `yaml:"physics"`
	Paddles    PongPaddles            `yaml:"paddles"`
	Ball       Size                   `yaml:"ball"`
	Gameplay   PongGameplay           `yaml:"gameplay"`
	CPU        PongCPU                `yaml:"cpu"`
	Tuning     sim.Tuning             `yaml:"tuning"`
	Textures   map[string]TextureSpec `yaml:"textures"`
	Difficulty DifficultyConfig       `yaml:"difficulty"`
}

// PongPhysics defines speeds for Pong, in world units per second.
type PongPhysics struct {
	BallSpeed   float32 `yaml:"ball_speed"`
	PaddleSpeed float32 `yaml:"paddle_speed"`
	ServeAngle  float32 `yaml:"serve_angle"` // max vertical share of a serve
}

// PongPaddles defines paddle geometry.
type PongPaddles struct {
	X    float32 `yaml:"x"` // distance of each paddle from the center line
	Size Size    `yaml:"size"`
}

// PongGameplay defines scoring rules.
type PongGameplay struct {
	WinScore int `yaml:"win_score"`
}

// PongCPU defines CPU opponent behavior.
type PongCPU struct {
	MinSkill float64 `yaml:"min_skill"`
	MaxSkill float64 `yaml:"max_skill"`
	DeadZone float32 `yaml:"dead_zone"` // no movement when closer than this
}

// SceneConfig contains the layout of the animated scene.
type SceneConfig struct {
	Viewport sim.Bounds             `yaml:"viewport"`
	Robot    SceneProp              `yaml:"robot"`
	Meteor   SceneProp              `yaml:"meteor"`
	Tuning   sim.Tuning             `yaml:"tuning"`
	Textures map[string]TextureSpec `yaml:"textures"`
}

// SceneProp places one animated prop.
type SceneProp struct {
	Start Point   `yaml:"start"`
	Size  Size    `yaml:"size"`
	Speed float32 `yaml:"speed"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
