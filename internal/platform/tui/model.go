package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/registry"
	"github.com/vovakirdan/quad-arcade/internal/render"
	"github.com/vovakirdan/quad-arcade/internal/storage"
)

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	canvas    *render.ScreenCanvas
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	fixedSeed bool // --seed was given; restarts replay it
	embedded  bool // running inside a session; Back returns to its menu

	keys      *KeyMapper
	input     *InputState
	clock     *frameClock
	gameState core.GameState

	quitting   bool
	backToMenu bool
	runSaved   bool // the current run is already stored
}

// NewModel creates a model for game and resets it. A zero seed picks a new
// time-based seed for every run.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	m := Model{
		game:      game,
		screen:    screen,
		canvas:    render.NewScreenCanvas(screen),
		store:     store,
		logger:    logger.With("game", game.ID()),
		config:    cfg,
		fixedSeed: fixed,
		keys:      NewKeyMapper(),
		input:     NewInputState(),
		clock:     &frameClock{},
	}
	game.Reset(cfg)
	m.gameState = game.State()
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.saveRun()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.saveRun()
			m.backToMenu = true
			if !m.embedded {
				return m, tea.Quit
			}
		}
		return m, nil

	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.restart()
		}
		return m, nil
	}

	m.input.Press(action, now)
	return m, nil
}

// handleTick feeds the frame's input and elapsed time to the game.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.clock.Advance(now)
	result := m.game.Step(m.input.Frame(now), elapsed)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveRun()
	}
	return m, tickCmd(m.config.FPS)
}

// restart begins a new run, with a fresh seed unless one was fixed.
func (m *Model) restart() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.input.Reset()
	m.clock.Reset()
	m.runSaved = false
	m.logger.Debug("restarted", "seed", m.config.Seed)
}

// saveRun stores the current run once. Runs that never ticked are skipped.
func (m *Model) saveRun() {
	if m.runSaved || m.gameState.Ticks == 0 {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}

	run, err := m.store.SaveRun(storage.Run{
		GameID:  m.game.ID(),
		Outcome: m.gameState.Outcome,
		Score:   m.gameState.Score,
		Ticks:   m.gameState.Ticks,
		Seed:    m.config.Seed,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved",
		"run", run.RunID,
		"outcome", run.Outcome,
		"score", run.Score,
		"ticks", run.Ticks,
	)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.canvas)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state seen on the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run plays game in the terminal until the player quits or backs out.
// It reports whether the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
