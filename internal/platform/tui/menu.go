package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/galaxy-wars/internal/core"
	"github.com/vovakirdan/galaxy-wars/internal/registry"
	"github.com/vovakirdan/galaxy-wars/internal/storage"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem is one selectable ruleset.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Best        int
}

// MenuModel is the Bubble Tea model for the ruleset picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keys           MenuKeyMap
	help           help.Model
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists every registered ruleset with its best recorded score.
func NewMenuModel(scores *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description}
		if scores != nil {
			if best, err := scores.BestScore(g.ID); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Scores):
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("G A L A X Y   W A R S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("Choose a ruleset"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %s  (best %d)", item.Title, item.Best)
		if i == m.cursor {
			line = menuSelectedStyle.Render(fmt.Sprintf("> %s  (best %d)", item.Title, item.Best))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
		b.WriteString(centerText(menuDimStyle.Render(item.Description), m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within width, measuring styled text by its
// printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(scores *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(scores, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
