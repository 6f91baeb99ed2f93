package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/registry"
	"github.com/vovakirdan/quad-arcade/internal/storage"
)

// SessionModel runs the menu and the chosen game inside one program, so
// an SSH connection can go back and forth without restarting Bubble Tea.
type SessionModel struct {
	store  *storage.Store
	config core.RuntimeConfig
	opts   registry.Options
	logger *log.Logger

	menu     MenuModel
	game     *Model // nil while the menu is showing
	quitting bool
}

// NewSessionModel starts a session at the menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, opts registry.Options, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.Default()
	}
	return SessionModel{
		store:  store,
		config: cfg,
		opts:   opts,
		logger: logger,
		menu:   NewMenuModel(store, cfg),
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update implements tea.Model.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = ws.Width, ws.Height
	}
	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, _ := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.menu.WantsScoreboard():
		// No scoreboard screen over SSH; stay on the menu.
		m.menu = NewMenuModel(m.store, m.config)
		return m, nil
	case m.menu.Selected() == "":
		return m, nil
	}

	id := m.menu.Selected()
	game, err := registry.Open(id, m.opts)
	if err != nil {
		m.logger.Error("cannot open game", "game", id, "error", err)
		m.menu = NewMenuModel(m.store, m.config)
		return m, nil
	}

	cfg := m.config
	cfg.Seed = 0
	gm := NewModel(game, m.store, cfg, m.logger)
	gm.embedded = true
	m.game = &gm
	m.logger.Info("game started", "game", id)
	return m, gm.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	gm := next.(Model)
	m.game = &gm

	switch {
	case gm.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case gm.BackToMenu():
		// The dropped tick command ends the game's frame loop.
		m.game = nil
		m.menu = NewMenuModel(m.store, m.config)
		return m, m.menu.Init()
	}
	return m, cmd
}

// View implements tea.Model.
func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.game != nil:
		return m.game.View()
	}
	return m.menu.View()
}
