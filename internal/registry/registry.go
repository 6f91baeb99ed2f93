// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/vovakirdan/quad-arcade/internal/config"
	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/render"
)

// Game is the interface every arcade demo implements.
// Games own their simulation and never touch a terminal or window;
// the platform handles input mapping, timing and presentation.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "lander", "pong").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Load reads the game's config and textures. Called once before the
	// first Reset; a texture that cannot be loaded is an error.
	Load(opts Options) error

	// Reset initializes or resets the game state.
	// Called at start and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step feeds one frame of input and the real time elapsed since the
	// previous frame. The game runs as many fixed ticks as that time covers.
	Step(in core.InputFrame, elapsed time.Duration) core.StepResult

	// Render draws the current state onto the canvas.
	Render(dst render.Canvas)

	// State returns the current game state (score, outcome, paused).
	State() core.GameState
}

// Pilot is implemented by games that can play themselves. Headless runs
// call Autopilot once per frame instead of reading a keyboard.
type Pilot interface {
	Autopilot() core.InputFrame
}

// Options are the per-instance load settings chosen on the command line.
type Options struct {
	ConfigPath string                  // custom YAML, empty for the search path
	Difficulty config.DifficultyPreset // empty keeps the config's own level
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh, unloaded game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game under id. Games call it from init.
// Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: GameInfo{ID: id, Title: f().Title()}, factory: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Create returns a new instance of the game id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Open creates a game and loads it, ready for Reset.
func Open(id string, opts Options) (Game, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}
	if err := g.Load(opts); err != nil {
		return nil, fmt.Errorf("registry: cannot load %s: %w", id, err)
	}
	return g, nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
