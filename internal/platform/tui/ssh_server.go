package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/galaxy-wars/internal/core"
	"github.com/vovakirdan/galaxy-wars/internal/galaxy"
	"github.com/vovakirdan/galaxy-wars/internal/registry"
	"github.com/vovakirdan/galaxy-wars/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.galaxywars/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate of every session.
	TickRate int

	// Logger receives server and session logs. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.galaxywars/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer serves one independent game per SSH connection. All sessions
// share the score database.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// highscoreGame is implemented by games that persist a highscore.
type highscoreGame interface {
	HighscoreKey() string
	SetHighscoreStore(galaxy.HighscoreStore)
	SetLogger(*log.Logger)
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "galaxywars-ssh",
		})
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".galaxywars", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = pty.Window.Width
	cfg.ScreenH = pty.Window.Height
	if s.config.TickRate > 0 {
		cfg.TickRate = s.config.TickRate
	}
	cfg.Seed = time.Now().UnixNano()

	model := NewSessionModel(s.store, cfg, s.logger.With("user", sess.User())).
		WithRenderer(bubbletea.MakeRenderer(sess))

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionMode is the screen a SessionModel shows.
type sessionMode int

const (
	modeMenu sessionMode = iota
	modeGame
	modeScores
)

// SessionModel runs the full flow of one connection: menu, game,
// scoreboard and back to the menu. Sub-models quit with tea.Quit when they
// are done; the session intercepts that and switches screens instead.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	logger   *log.Logger
	renderer *lipgloss.Renderer
	mode     sessionMode
	menu     MenuModel
	game     Model
	board    ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session that starts at the menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		store:  store,
		config: cfg,
		logger: logger,
		menu:   NewMenuModel(store, cfg),
	}
}

// WithRenderer returns a copy of m whose game screens style output for r.
func (m SessionModel) WithRenderer(r *lipgloss.Renderer) SessionModel {
	m.renderer = r
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.mode {
	case modeGame:
		return m.updateGame(msg)
	case modeScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.board = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.mode = modeScores
		return m, m.board.Init()

	case m.menu.Selected() != nil:
		game, err := m.newGame(m.menu.Selected().GameID)
		if err != nil {
			m.logger.Error("could not create game", "error", err)
			m.menu = NewMenuModel(m.store, m.config)
			return m, nil
		}
		m.config.Seed = time.Now().UnixNano()
		m.game = NewModel(game, m.store, m.config).WithLogger(m.logger).WithRenderer(m.renderer)
		m.mode = modeGame
		return m, m.game.Init()
	}

	return m, cmd
}

// newGame creates a game wired to the shared highscore table.
func (m SessionModel) newGame(id string) (registry.Game, error) {
	game, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	if hg, ok := game.(highscoreGame); ok {
		hg.SetLogger(m.logger.With("game", id))
		if m.store != nil {
			hg.SetHighscoreStore(m.store.Highscore(hg.HighscoreKey()))
		}
	}
	return game, nil
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.game.BackToMenu():
		return m.toMenu()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	if board, ok := next.(ScoreboardModel); ok {
		m.board = board
	}

	switch {
	case m.board.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.board.IsGoingBack():
		return m.toMenu()
	}

	return m, cmd
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.store, m.config)
	m.mode = modeMenu
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeGame:
		return m.game.View()
	case modeScores:
		return m.board.View()
	default:
		return m.menu.View()
	}
}
