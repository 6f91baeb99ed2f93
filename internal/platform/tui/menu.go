package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/registry"
	"github.com/vovakirdan/quad-arcade/internal/storage"
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuItemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	menuCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 3)
)

// MenuItem is one game in the picker.
type MenuItem struct {
	GameID string
	Title  string
	Best   int  // best stored score, 0 when none
	Runs   int  // stored runs
	VsCPU  bool // the player faces a computer opponent
}

// label is the item text without the cursor.
func (it MenuItem) label() string {
	s := it.Title
	if it.VsCPU {
		s += " (CPU)"
	}
	return s
}

// MenuModel is the game picker.
type MenuModel struct {
	items  []MenuItem
	cursor int
	config core.RuntimeConfig
	keys   *KeyMapper

	chosen     string // game ID, set on select
	scoreboard bool
	quitting   bool
}

// NewMenuModel lists the registered games with their stored records.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var stats map[string]*storage.GameStats
	if store != nil {
		// Missing stats only hide the records
		stats, _ = store.GetAllGamesStats()
	}

	games := registry.List()
	items := make([]MenuItem, len(games))
	for i, g := range games {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title, VsCPU: g.ID == "pong"}
		if st := stats[g.ID]; st != nil {
			items[i].Best = st.HighScore
			items[i].Runs = st.GamesCount
		}
	}
	return MenuModel{items: items, config: cfg, keys: NewKeyMapper()}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height

	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.move(-1)
		case MenuActionDown:
			m.move(1)
		case MenuActionSelect:
			if len(m.items) == 0 {
				break
			}
			m.chosen = m.items[m.cursor].GameID
			return m, tea.Quit
		case MenuActionScoreboard:
			m.scoreboard = true
			return m, tea.Quit
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// move shifts the cursor by d, wrapping at both ends.
func (m *MenuModel) move(d int) {
	if n := len(m.items); n > 0 {
		m.cursor = ((m.cursor+d)%n + n) % n
	}
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{menuTitleStyle.Render("A R C A D E"), ""}
	for i, it := range m.items {
		if i == m.cursor {
			lines = append(lines, menuCurStyle.Render("> "+it.label()))
			continue
		}
		lines = append(lines, menuItemStyle.Render(it.label()))
	}
	if len(m.items) == 0 {
		lines = append(lines, menuDimStyle.Render("no games registered"))
	}
	lines = append(lines, "", menuDimStyle.Render(m.record()))

	box := menuBoxStyle.Render(strings.Join(lines, "\n"))
	help := menuDimStyle.Render("up/down move  enter play  tab scores  q quit")
	body := lipgloss.JoinVertical(lipgloss.Center, box, "", help)
	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return body
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, body)
}

// record describes the stored results of the highlighted game.
func (m MenuModel) record() string {
	if len(m.items) == 0 {
		return ""
	}
	it := m.items[m.cursor]
	if it.Runs == 0 {
		return "not played yet"
	}
	return fmt.Sprintf("best %d over %d runs", it.Best, it.Runs)
}

// Selected returns the chosen game ID, empty when none was chosen.
func (m MenuModel) Selected() string {
	return m.chosen
}

// IsQuitting reports whether the player quit from the menu.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the player asked for high scores.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}

// Config returns the runtime config, resized to the last window size.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult is what the player did in the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the picker until the player chooses something.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return MenuResult{
		GameID:          m.Selected(),
		Config:          m.Config(),
		WantsScoreboard: m.WantsScoreboard(),
		Quit:            m.IsQuitting() || (m.Selected() == "" && !m.WantsScoreboard()),
	}, nil
}
