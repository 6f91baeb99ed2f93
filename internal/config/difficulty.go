package config

// Progression types.
const (
	ProgressNone  = "none"
	ProgressScore = "score"
	ProgressTime  = "time"
)

// DifficultyManager maps a game's score or age to a level in [0, 1] and
// scales tuning values by it. With progression off the level stays at the
// configured initial level.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a manager for cfg. The initial level is
// clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = min(max(cfg.InitialLevel, 0), 1)
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether the level rises during play.
func (d *DifficultyManager) IsEnabled() bool {
	switch d.cfg.Progression.Type {
	case ProgressScore, ProgressTime:
		return d.cfg.Enabled
	}
	return false
}

// Level returns the difficulty after score points or ticks fixed steps.
// It rises linearly from the initial level to 1 at Progression.MaxAt.
func (d *DifficultyManager) Level(score int, ticks uint64) float64 {
	start := d.cfg.InitialLevel
	if !d.IsEnabled() {
		return start
	}

	at := float64(ticks)
	if d.cfg.Progression.Type == ProgressScore {
		at = float64(score)
	}
	progress := 1.0
	if maxAt := float64(d.cfg.Progression.MaxAt); maxAt > 0 {
		progress = min(max(at/maxAt, 0), 1)
	}
	return start + progress*(1-start)
}

// Speed scales base up to base * (1 + speed_multiplier) at level 1.
func (d *DifficultyManager) Speed(base float64, score int, ticks uint64) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Lerp interpolates between lo at level 0 and hi at level 1.
func (d *DifficultyManager) Lerp(lo, hi float64, score int, ticks uint64) float64 {
	return lo + (hi-lo)*d.Level(score, ticks)
}
