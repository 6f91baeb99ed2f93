package config

import (
	_ "embed"

	"github.com/vovakirdan/quad-arcade/internal/sim"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/scene.yaml
var defaultSceneYAML []byte

// DefaultLanderConfig returns the default Lunar Lander configuration.
func DefaultLanderConfig() LanderConfig {
	return LanderConfig{
		Viewport: sim.Bounds{HalfW: 5, HalfH: 3.75},
		Ship: LanderShip{
			Start:         Point{X: 0, Y: 5},
			Size:          Size{W: 0.8, H: 1},
			Speed:         1.5,
			StartVelocity: Point{X: 0, Y: -1},
		},
		Physics: LanderPhysics{
			Gravity:   -0.6,
			JumpPower: 1.0,
		},
		Tiles: defaultLanderTiles(),
		Scoring: LanderScoring{
			WinBonus:      1000,
			PenaltyPerSec: 20,
			MinBonus:      100,
		},
		Textures: map[string]TextureSpec{
			"ship":      {Glyph: "▲", Color: "bright-cyan"},
			"ship_win":  {Glyph: "▲", Color: "bright-green"},
			"ship_lose": {Glyph: "▲", Color: "bright-red"},
			"win_tile":  {Glyph: "▓", Color: "green"},
			"lose_tile": {Glyph: "▒", Color: "gray"},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression:  ProgressionConfig{Type: ProgressNone},
			Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}

// defaultLanderTiles builds the stock level: a floor with one landing pad,
// two walls and a ledge.
func defaultLanderTiles() []TileSpec {
	tiles := make([]TileSpec, 0, 26)
	for i := range 10 {
		x := -4.5 + float32(i)
		tiles = append(tiles, TileSpec{X: x, Y: -3.25, Win: i == 1})
	}
	wall := []float32{-2.25, -1.25, -0.25, 0.25, 1.25, 2.25, 3.25}
	for _, x := range []float32{-4.5, 4.5} {
		for _, y := range wall {
			tiles = append(tiles, TileSpec{X: x, Y: y})
		}
	}
	tiles = append(tiles, TileSpec{X: -2.5, Y: -0.25}, TileSpec{X: -3.5, Y: -0.25})
	return tiles
}

// DefaultShooterConfig returns the default Rise of AI configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Arena:       sim.Bounds{HalfW: 19.5, HalfH: 14.5},
		BulletLimit: sim.Bounds{HalfW: 21, HalfH: 16},
		Viewport:    sim.Bounds{HalfW: 20, HalfH: 15},
		Pools: ShooterPools{
			Bullets:      3,
			Enemies:      10,
			EnemyBullets: 50,
		},
		Player: ShooterShip{
			Start:     Point{X: 0, Y: -10},
			Size:      Size{W: 0.95, H: 0.95},
			Speed:     8,
			Health:    3,
			ShotPower: 1,
		},
		Bullet:      Projectile{Speed: 16, Size: Size{W: 0.3, H: 0.3}},
		EnemyBullet: Projectile{Speed: 16, Size: Size{W: 0.3, H: 0.3}},
		Snipers: Squad{
			First:     0,
			Count:     4,
			Start:     Point{X: 0, Y: 40},
			Step:      Point{X: 0, Y: 1},
			Drift:     Point{X: 1, Y: 0},
			Size:      Size{W: 0.95, H: 0.95},
			Speed:     2,
			SpeedStep: 1,
			ShotPower: 1,
		},
		Bombers: Squad{
			First:     4,
			Count:     5,
			Start:     Point{X: -19.5, Y: -10},
			Step:      Point{X: 0, Y: 27},
			Size:      Size{W: 0.95, H: 0.95},
			Speed:     15,
			ShotPower: 1,
		},
		Boss: ShooterShip{
			Start:     Point{X: 0, Y: 18},
			Size:      Size{W: 0.95, H: 0.95},
			Speed:     4,
			Health:    1,
			ShotPower: 3,
		},
		Tuning: sim.DefaultTuning(),
		Scoring: ShooterScoring{
			Sniper: 100,
			Bomber: 150,
			Boss:   1000,
		},
		Textures: map[string]TextureSpec{
			"player":       {Glyph: "A", Color: "bright-cyan"},
			"sniper":       {Glyph: "V", Color: "red"},
			"bomber":       {Glyph: "W", Color: "magenta"},
			"boss":         {Glyph: "M", Color: "bright-red"},
			"bullet":       {Glyph: "|", Color: "bright-yellow"},
			"enemy_bullet": {Glyph: "•", Color: "bright-red"},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression:  ProgressionConfig{Type: ProgressNone},
			Scaling:      ScalingConfig{SpeedMultiplier: 0.5},
		},
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	tuning := sim.DefaultTuning()
	tuning.PaddleSpin = 0.6
	tuning.PaddleSpeedup = 1.05
	tuning.MaxBallSpeed = 9

	return PongConfig{
		Field: sim.Bounds{HalfW: 5, HalfH: 3.75},
		Physics: PongPhysics{
			BallSpeed:   3,
			PaddleSpeed: 4,
			ServeAngle:  0.3,
		},
		Paddles: PongPaddles{
			X:    4.5,
			Size: Size{W: 0.25, H: 1},
		},
		Ball: Size{W: 0.25, H: 0.25},
		Gameplay: PongGameplay{
			WinScore: 5,
		},
		CPU: PongCPU{
			MinSkill: 0.6,
			MaxSkill: 0.85,
			DeadZone: 0.1,
		},
		Tuning: tuning,
		Textures: map[string]TextureSpec{
			"paddle": {Glyph: "█", Color: "white"},
			"ball":   {Glyph: "●", Color: "bright-yellow"},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressTime,
				MaxAt: 36000, // 10 minutes at 60 ticks per second
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultSceneConfig returns the default animated scene configuration.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Viewport: sim.Bounds{HalfW: 5, HalfH: 3.75},
		Robot: SceneProp{
			Start: Point{X: -1, Y: -1.5},
			Size:  Size{W: 1, H: 1},
			Speed: 1,
		},
		Meteor: SceneProp{
			Start: Point{X: 2, Y: 1.5},
			Size:  Size{W: 1, H: 1},
		},
		Tuning: sim.DefaultTuning(),
		Textures: map[string]TextureSpec{
			"robot":  {Glyph: "R", Color: "bright-blue"},
			"meteor": {Glyph: "✶", Color: "yellow"},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "lander":
		return defaultLanderYAML
	case "shooter":
		return defaultShooterYAML
	case "pong":
		return defaultPongYAML
	case "scene":
		return defaultSceneYAML
	default:
		return nil
	}
}
