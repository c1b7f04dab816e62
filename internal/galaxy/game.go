package galaxy

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/galaxy-wars/internal/config"
	"github.com/vovakirdan/galaxy-wars/internal/core"
	"github.com/vovakirdan/galaxy-wars/internal/event"
	"github.com/vovakirdan/galaxy-wars/internal/registry"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Minimum terminal size, in cells, that still fits a first wave and the ship.
const (
	minScreenW = 40
	minScreenH = 12
)

// fxSeedSalt derives the effects RNG seed from the gameplay seed.
const fxSeedSalt = 0x5eed

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game drives a Session through the start screen, play and game over, and
// owns everything a Session does not: config loading, RNG seeding,
// highscore persistence and event delivery.
type Game struct {
	ruleset  string
	cfg      config.GalaxyConfig
	cfgFixed bool // cfg was supplied by the caller, skip loading

	runtime  core.RuntimeConfig
	rng      *rand.Rand
	fx       *rand.Rand
	session  *Session
	tooSmall bool

	store  HighscoreStore
	logger *log.Logger
	events *event.Dispatcher
	last   TickEvents
}

// New creates a game with the classic ruleset.
func New() *Game {
	return NewWithRuleset(config.RulesetClassic)
}

// NewTurbo creates a game with the turbo ruleset.
func NewTurbo() *Game {
	return NewWithRuleset(config.RulesetTurbo)
}

// NewWithRuleset creates a game that loads its config on Reset and applies
// the named speed curve.
func NewWithRuleset(ruleset string) *Game {
	return &Game{
		ruleset: ruleset,
		logger:  log.New(io.Discard),
		events:  event.NewDispatcher(),
	}
}

// NewWithConfig creates a game that always runs with cfg.
func NewWithConfig(cfg config.GalaxyConfig) *Game {
	g := NewWithRuleset(cfg.Difficulty.Ruleset)
	g.cfg = config.Sanitize(cfg)
	g.cfgFixed = true
	return g
}

func init() {
	registry.Register("galaxy", "Classic waves, enemy speed capped at 3", func() registry.Game {
		return New()
	})
	registry.Register("galaxy_turbo", "Faster speed curve, enemy speed capped at 4", func() registry.Game {
		return NewTurbo()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.ruleset == "" || g.ruleset == config.RulesetClassic {
		return "galaxy"
	}
	return "galaxy_" + g.ruleset
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.ruleset == config.RulesetTurbo {
		return "Galaxy Wars (Turbo)"
	}
	return "Galaxy Wars"
}

// Ruleset returns the speed curve name.
func (g *Game) Ruleset() string {
	return g.ruleset
}

// HighscoreKey returns the key the highscore is stored under.
func (g *Game) HighscoreKey() string {
	return HighscoreKeyFor(g.ruleset)
}

// SetHighscoreStore attaches persistence. It takes effect on the next Reset.
func (g *Game) SetHighscoreStore(store HighscoreStore) {
	g.store = store
}

// SetLogger replaces the discard logger.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// Events returns the dispatcher that receives every tick's events.
func (g *Game) Events() *event.Dispatcher {
	return g.events
}

// Reset loads the configuration and starts a fresh session on the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if !g.cfgFixed {
		g.cfg = g.loadConfig()
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.fx = rand.New(rand.NewSource(runtime.Seed ^ fxSeedSalt))
	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	w, h := g.fieldSize()
	g.session = NewSession(g.cfg, w, h, loadHighscore(g.store, g.logger), g.rng, g.fx)
	g.last = nil

	g.logger.Debug("session reset",
		"game", g.ID(), "field_w", w, "field_h", h,
		"level", g.session.Level, "highscore", g.session.Highscore,
		"speed_curve", g.session.difficulty.IsEnabled())
}

func (g *Game) loadConfig() config.GalaxyConfig {
	cfg, err := config.Load(configPath)
	if err != nil {
		g.logger.Warn("using default config", "error", err)
		cfg = config.DefaultGalaxyConfig()
	}
	if err := config.ApplyRuleset(&cfg, g.ruleset); err != nil {
		g.logger.Warn("keeping configured speed curve", "error", err)
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	return config.Sanitize(cfg)
}

// fieldSize converts the screen below the HUD into world units.
func (g *Game) fieldSize() (float64, float64) {
	cw, ch := g.runtime.CellSize()
	rows := max(g.runtime.ScreenH-hudRows, 0)
	return float64(g.runtime.ScreenW * cw), float64(rows * ch)
}

// Resize adapts the field to a new terminal size without restarting.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.tooSmall = screenW < minScreenW || screenH < minScreenH
	if g.session != nil {
		g.session.Resize(g.fieldSize())
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.last = nil
	if g.session == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	s := g.session
	begin := in.Has(core.ActionFire) || in.Has(core.ActionConfirm)

	switch s.Phase {
	case PhaseStart:
		if begin {
			g.start()
		}
	case PhaseGameOver:
		if begin {
			g.restart()
			g.start()
		}
	case PhasePlaying:
		if in.Has(core.ActionPause) {
			s.Paused = !s.Paused
		}
		g.last = append(g.last, Step(s, in, g.rng)...)
		if s.Phase == PhaseGameOver {
			g.finish()
		}
	}

	if !g.session.Paused {
		g.session.UpdateEffects()
	}
	g.events.DispatchAll(g.last)
	return core.StepResult{State: g.State()}
}

func (g *Game) start() {
	g.session.Phase = PhasePlaying
	g.last = append(g.last, event.Event{Type: event.GameStarted, Value: g.session.Level})
}

// restart replaces the session, keeping the RNG streams. The highscore is
// the better of the one in memory and the stored one.
func (g *Game) restart() {
	prev := g.session
	highscore := max(prev.Highscore, loadHighscore(g.store, g.logger))
	next := NewSession(g.cfg, prev.FieldW, prev.FieldH, highscore, g.rng, g.fx)
	next.Stars = prev.Stars
	next.Explosions = prev.Explosions
	g.session = next
}

// finish runs once on entering game over.
func (g *Game) finish() {
	s := g.session
	g.logger.Info("game over", "game", g.ID(), "score", s.Score, "level", s.Level)
	best, beaten := saveHighscore(g.store, g.logger, s.Score, s.Highscore)
	s.Highscore = best
	if beaten {
		g.last = append(g.last, event.Event{Type: event.HighscoreBeaten, Value: s.Score})
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score,
		GameOver: g.session.Phase == PhaseGameOver,
		Paused:   g.session.Paused,
	}
}

// Session exposes the live session to renderers. It is replaced on restart,
// so callers should not keep it across ticks.
func (g *Game) Session() *Session {
	return g.session
}

// LastEvents returns the events of the most recent tick.
func (g *Game) LastEvents() TickEvents {
	return g.last
}

// Highscore returns the best score known to this game.
func (g *Game) Highscore() int {
	if g.session == nil {
		return 0
	}
	return g.session.Highscore
}
