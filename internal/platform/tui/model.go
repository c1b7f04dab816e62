package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/galaxy-wars/internal/core"
	"github.com/vovakirdan/galaxy-wars/internal/registry"
	"github.com/vovakirdan/galaxy-wars/internal/storage"
)

// DefaultScreenshotDir is where ctrl+s writes screen dumps.
const DefaultScreenshotDir = "~/.galaxywars/screenshots"

var footerColor = lipgloss.Color("241")

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	scores     *storage.Store
	config     core.RuntimeConfig // full terminal size
	keys       KeyMap
	help       help.Model
	palette    palette
	footer     lipgloss.Style
	logger     *log.Logger
	input      core.InputFrame
	hold       holdTracker
	tick       uint64
	state      core.GameState
	shotDir    string
	quitting   bool
	back       bool
	scoreSaved bool
}

// NewModel creates a model for game. scores may be nil.
func NewModel(game registry.Game, scores *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := Model{
		game:    game,
		scores:  scores,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		palette: newPalette(nil),
		footer:  lipgloss.NewStyle().Foreground(footerColor),
		logger:  log.New(io.Discard),
		input:   core.NewInputFrame(),
		hold:    newHoldTracker(cfg.TickRate),
		shotDir: DefaultScreenshotDir,
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())
	return m
}

// WithLogger returns a copy of m that logs to l.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// WithRenderer returns a copy of m that styles output for r.
func (m Model) WithRenderer(r *lipgloss.Renderer) Model {
	if r == nil {
		return m
	}
	m.palette = newPalette(r)
	m.footer = r.NewStyle().Foreground(footerColor)
	return m
}

// footerHeight is the number of rows below the playfield.
func (m Model) footerHeight() int {
	if m.help.ShowAll {
		return len(m.keys.FullHelp())
	}
	return 1
}

func (m Model) gameHeight() int {
	return max(m.config.ScreenH-m.footerHeight(), 1)
}

// gameConfig is the runtime config as the game sees it: the footer rows
// are not part of its screen.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.gameHeight()
	return cfg
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.resizeGame()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// resizeGame fits the game to the current terminal. Games that can't
// resize in place are restarted.
func (m *Model) resizeGame() {
	cfg := m.gameConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(cfg.ScreenW, cfg.ScreenH)
		return
	}
	m.game.Reset(cfg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeGame()

	case key.Matches(msg, m.keys.Back):
		if m.state.GameOver || m.state.Paused || m.state.Score == 0 {
			m.back = true
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Left):
		m.hold.press(core.ActionLeft, m.tick)
	case key.Matches(msg, m.keys.Right):
		m.hold.press(core.ActionRight, m.tick)
	case key.Matches(msg, m.keys.Fire):
		m.input.Set(core.ActionFire)
	case key.Matches(msg, m.keys.Start):
		m.input.Set(core.ActionConfirm)
	case key.Matches(msg, m.keys.Pause):
		m.input.Set(core.ActionPause)
		m.hold.release()
	}

	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.tick++
	m.hold.apply(&m.input, m.tick)

	result := m.game.Step(m.input)
	m.state = result.State

	// Record each finished game once; a restart clears GameOver.
	if !m.state.GameOver {
		m.scoreSaved = false
	} else if !m.scoreSaved {
		m.recordScore()
		m.scoreSaved = true
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) recordScore() {
	if m.scores == nil || m.state.Score <= 0 {
		return
	}
	if _, err := m.scores.SaveScore(m.game.ID(), m.state.Score); err != nil {
		m.logger.Warn("could not record score", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.shotDir
	if strings.HasPrefix(dir, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot expand home directory: %w", err)
		}
		dir = filepath.Join(home, dir[1:])
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the playfield and the key help footer.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return m.palette.render(m.screen) + "\n" + m.footer.Render(m.help.View(m.keys))
}

// State returns the last reported game state.
func (m Model) State() core.GameState {
	return m.state
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run plays game in the alternate screen until the user quits or goes back.
// It reports whether the user went back rather than quitting.
func Run(game registry.Game, scores *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (back bool, err error) {
	model := NewModel(game, scores, cfg).WithLogger(logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
