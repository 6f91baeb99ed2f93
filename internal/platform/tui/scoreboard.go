package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/registry"
	"github.com/vovakirdan/quad-arcade/internal/storage"
)

const (
	scoreboardRuns = 100 // runs loaded per game
	statsWidth     = 24  // stats panel, hidden on narrow terminals
)

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("241"))
	activeTabStyle = tabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// scoreboardKeys are the scoreboard bindings, shown in its help line.
type scoreboardKeys struct {
	Up, Down   key.Binding
	Prev, Next key.Binding
	Toggle     key.Binding
	Back, Quit key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Toggle, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Prev:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "prev game")),
		Next:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next game")),
		Toggle: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "best/recent")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows stored runs per game, best first or latest first.
type ScoreboardModel struct {
	store  *storage.Store
	games  []registry.GameInfo
	game   int  // index into games
	recent bool // latest runs instead of best

	runs  []storage.Run
	stats *storage.GameStats

	table table.Model
	help  help.Model
	keys  scoreboardKeys

	width, height int
	back, quit    bool
}

// NewScoreboardModel opens the scoreboard on the first registered game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store: store,
		games: registry.List(),
		help:  help.New(),
		keys:  newScoreboardKeys(),
	}
	m.resize(width, height)
	m.reload()
	return m
}

func (m *ScoreboardModel) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).
		BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color("240"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Result", Width: 7},
			{Title: "Time", Width: 6},
			{Title: "Date", Width: 12},
		}),
		table.WithHeight(max(height-9, 3)),
		table.WithFocused(true),
		table.WithStyles(styles),
	)
	m.fillTable()
}

// reload fetches the selected game's runs and stats.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.game].ID
		fetch := m.store.TopRuns
		if m.recent {
			fetch = m.store.RecentRuns
		}
		// A failed query shows as an empty board
		m.runs, _ = fetch(id, scoreboardRuns)
		m.stats, _ = m.store.GetGameStats(id)
	}
	m.fillTable()
	m.table.GotoTop()
}

func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			r.Outcome.String(),
			playTime(r.Ticks),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.selectGame(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.selectGame(-1)
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			m.recent = !m.recent
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) selectGame(d int) {
	if n := len(m.games); n > 0 {
		m.game = ((m.game+d)%n + n) % n
		m.reload()
	}
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.back || m.quit {
		return ""
	}

	heading := "HIGH SCORES"
	if m.recent {
		heading = "RECENT RUNS"
	}

	board := dimStyle.Italic(true).Padding(1, 2).Render("No runs recorded yet.")
	if len(m.runs) > 0 {
		board = m.table.View()
	}
	body := panelStyle.Render(board)
	if m.width >= 80 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", panelStyle.Width(statsWidth).Render(m.statsPanel()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		menuTitleStyle.Render(heading),
		m.tabs(),
		body,
		dimStyle.Render(m.help.View(m.keys)),
	)
}

func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.game {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(g.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

// statsPanel summarizes every stored run of the selected game.
func (m ScoreboardModel) statsPanel() string {
	s := m.stats
	if s == nil || s.GamesCount == 0 {
		return dimStyle.Render("no stats")
	}
	return fmt.Sprintf("Runs   %d\nWon    %d\nLost   %d\nBest   %d\nAvg    %.0f\nLast   %s",
		s.GamesCount, s.Wins, s.Losses, s.HighScore, s.AvgScore, s.LastPlayed.Format("Jan 02"))
}

// playTime formats a tick count at the default tick rate as m:ss.
func playTime(ticks uint64) string {
	secs := ticks / uint64(core.DefaultConfig().TickRate)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// IsGoingBack reports whether the player returned to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting reports whether the player quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quit
}

// RunScoreboard shows the scoreboard and reports whether to go back to
// the menu.
func RunScoreboard(store *storage.Store, width, height int) (bool, error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
