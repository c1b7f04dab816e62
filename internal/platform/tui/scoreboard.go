package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/galaxy-wars/internal/registry"
	"github.com/vovakirdan/galaxy-wars/internal/storage"
)

const maxScores = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next ruleset"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev ruleset"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = boardTabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardModel is the Bubble Tea model for the score history screen.
type ScoreboardModel struct {
	games     []registry.GameInfo
	cursor    int
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over every registered ruleset.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	if len(m.games) > 0 {
		m.loadScores(m.games[0].ID)
	}
	return m
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-12, 3)), // title, tabs, stats, help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadScores loads the history and stats of one ruleset.
func (m *ScoreboardModel) loadScores(gameID string) {
	m.scores, m.stats = nil, nil
	if m.store != nil {
		if scores, err := m.store.TopScores(gameID, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(gameID); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) selectGame(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.games)) % len(m.games)
	m.loadScores(m.games[m.cursor].ID)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.selectGame(1)
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.selectGame(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.cursor {
			tabs[i] = boardActiveTab.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(boardDimStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n")

	for _, line := range strings.Split(boardFrameStyle.Render(m.tableContent()), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "no games played"
	}
	return fmt.Sprintf("%d games  |  best %d  |  average %.0f  |  last played %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore,
		m.stats.LastPlayed.Format("Jan 02 15:04"))
}

func (m ScoreboardModel) tableContent() string {
	if len(m.scores) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4).
			Render("No scores recorded yet.\nClear a few waves to set one!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
