package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// load reads the config of one game on top of its Go defaults, so partial
// files only override what they name.
// Search order: customPath -> ~/.arcade/configs/<name>.yaml -> ./configs/<name>.yaml -> embedded default
func load[T any](name, customPath string, embedded []byte, defaults func() T) (T, error) {
	cfg := defaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := name + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if c, ok := parseFile(userCfgPath, defaults); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := parseFile(filepath.Join("configs", filename), defaults); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseFile reads an optional config file. Missing or broken files are
// skipped so the next location is tried.
func parseFile[T any](path string, defaults func() T) (T, bool) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadLander loads Lunar Lander configuration.
func LoadLander(customPath string) (LanderConfig, error) {
	return load("lander", customPath, defaultLanderYAML, DefaultLanderConfig)
}

// LoadShooter loads Rise of AI configuration.
func LoadShooter(customPath string) (ShooterConfig, error) {
	return load("shooter", customPath, defaultShooterYAML, DefaultShooterConfig)
}

// LoadPong loads Pong configuration.
func LoadPong(customPath string) (PongConfig, error) {
	return load("pong", customPath, defaultPongYAML, DefaultPongConfig)
}

// LoadScene loads the animated scene configuration.
func LoadScene(customPath string) (SceneConfig, error) {
	return load("scene", customPath, defaultSceneYAML, DefaultSceneConfig)
}

// ParsePreset validates a difficulty preset name. Empty stays empty and
// keeps the config's own level.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", s)
	}
}

// applyPreset toggles progression and sets the starting level.
func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
	} else {
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ApplyLanderPreset modifies the config based on a difficulty preset.
func ApplyLanderPreset(cfg *LanderConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	// Easy also gets a stronger thruster
	if preset == DifficultyEasy {
		cfg.Physics.JumpPower *= 1.2
	}
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 5
		cfg.EnemyBullet.Speed *= 0.75
	case DifficultyHard:
		cfg.Player.Health = 2
		cfg.Tuning.BossHealth *= 2
	}
}

// ApplyPongPreset modifies the config based on a difficulty preset.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
}
