package galaxy

import (
	"math/rand"

	"github.com/vovakirdan/galaxy-wars/internal/config"
	"github.com/vovakirdan/galaxy-wars/internal/core"
	"github.com/vovakirdan/galaxy-wars/internal/event"
)

// Phase is the top-level game state.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session is the complete mutable state of one run, from the start screen
// to game over. Restarting builds a new Session; only the highscore carries over.
type Session struct {
	Phase      Phase
	Paused     bool
	Tick       uint64
	Level      int
	Score      int
	Highscore  int
	Direction  float64 // shared horizontal direction of marching enemies
	EnemySpeed float64
	ShootTimer int // enemy fire cadence counter

	Player       *Player
	Enemies      []*Enemy
	Bullets      []*Bullet
	EnemyBullets []*Bullet
	PowerUps     []*PowerUp
	Explosions   []*Explosion
	Stars        []Star

	FieldW, FieldH float64

	cfg        config.GalaxyConfig
	difficulty *config.DifficultyManager
	rules      []SpawnRule
	fx         *rand.Rand
	events     TickEvents
}

// NewSession creates a session on the start screen with the first wave
// already in place. rng feeds gameplay decisions, fx feeds cosmetic effects.
func NewSession(cfg config.GalaxyConfig, fieldW, fieldH float64, highscore int, rng Rand, fx *rand.Rand) *Session {
	s := &Session{
		Phase:     PhaseStart,
		Highscore: max(highscore, 0),
		Direction: 1,
		FieldW:    fieldW,
		FieldH:    fieldH,

		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rules:      DefaultSpawnRules(),
		fx:         fx,
	}
	s.Level = s.difficulty.StartLevel()
	s.EnemySpeed = s.difficulty.EnemySpeed(s.Level)
	s.Player = NewPlayer(cfg.Player, fieldW, fieldH)
	s.Enemies = GenerateWave(s.Level, fieldW, cfg, s.rules, rng)
	s.Stars = newStarfield(cfg.Effects, fieldW, fieldH, fx)
	return s
}

// Config returns the tuning the session runs with.
func (s *Session) Config() config.GalaxyConfig {
	return s.cfg
}

// Resize updates the field in place. The player is re-anchored to the new
// bottom edge; the spawn grid picks up the new width on the next wave.
func (s *Session) Resize(fieldW, fieldH float64) {
	s.FieldW = fieldW
	s.FieldH = fieldH
	s.Player.Anchor(fieldW, fieldH, s.cfg.Player.BottomMargin)
}

// DescendStep returns how far marching enemies drop on an edge bounce.
func DescendStep(level int, cfg config.EnemiesConfig) float64 {
	return cfg.DescendBase + float64(level/2)*cfg.DescendPerTwo
}

func (s *Session) emit(t event.EventType, pos core.Vec2, value int) {
	s.events = append(s.events, event.Event{Type: t, Pos: pos, Value: value})
}

func (s *Session) spawnExplosion(center core.Vec2) {
	s.Explosions = append(s.Explosions, NewExplosion(center, s.cfg.Effects.Particles, s.fx))
	s.emit(event.ExplosionSpawned, center, 0)
}

// UpdateEffects advances the starfield and explosions. It runs on every
// screen, including the start and game over screens.
func (s *Session) UpdateEffects() {
	for i := range s.Stars {
		s.Stars[i].update(s.FieldW, s.FieldH, s.fx)
	}
	alive := s.Explosions[:0]
	for _, ex := range s.Explosions {
		ex.update(s.cfg.Effects.FadeStep)
		if !ex.Done() {
			alive = append(alive, ex)
		}
	}
	s.Explosions = alive
}
