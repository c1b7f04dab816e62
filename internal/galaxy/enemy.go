package galaxy

import (
	"math"

	"github.com/vovakirdan/galaxy-wars/internal/config"
	"github.com/vovakirdan/galaxy-wars/internal/core"
)

// EnemyKind tags an enemy variant.
type EnemyKind int

const (
	EnemyNormal EnemyKind = iota
	EnemyTank
	EnemyKamikaze
	enemyKindCount
)

// String returns the display name.
func (k EnemyKind) String() string {
	switch k {
	case EnemyNormal:
		return "Normal"
	case EnemyTank:
		return "Tank"
	case EnemyKamikaze:
		return "Kamikaze"
	default:
		return "Unknown"
	}
}

// Enemy is one member of the wave. Variant behavior lives in the movers
// table, keyed by Kind.
type Enemy struct {
	Kind        EnemyKind
	Pos         core.Vec2 // top-left corner
	W, H        float64
	Health      int
	ScoreValue  int
	SpeedFactor float64 // multiplier on the shared enemy speed

	// Zigzag pattern (Normal only).
	Zigzag  bool
	OriginX float64
	Phase   float64
}

// NewEnemy creates an enemy of the given kind with its top-left corner at (x, y).
func NewEnemy(kind EnemyKind, x, y float64, cfg config.GalaxyConfig) *Enemy {
	stats := kindStats(kind, cfg.Enemies)
	e := &Enemy{
		Kind:        kind,
		Pos:         core.Vec2{X: x, Y: y},
		W:           cfg.Enemies.Width,
		H:           cfg.Enemies.Height,
		Health:      stats.Health,
		ScoreValue:  stats.Score,
		SpeedFactor: stats.SpeedFactor,
		OriginX:     x,
	}
	if kind == EnemyNormal {
		e.Zigzag = zigzagRow(y, cfg.Wave.SpacingY)
	}
	return e
}

func kindStats(kind EnemyKind, cfg config.EnemiesConfig) config.EnemyKindConfig {
	switch kind {
	case EnemyTank:
		return cfg.Tank
	case EnemyKamikaze:
		return cfg.Kamikaze
	default:
		return cfg.Normal
	}
}

// zigzagRow reports whether a Normal enemy spawned at y sways instead of
// marching. Every other grid row sways.
func zigzagRow(y, spacingY float64) bool {
	if spacingY <= 0 {
		return false
	}
	return int(math.Floor(y/spacingY))%2 == 0
}

// Box returns the collision box.
func (e *Enemy) Box() core.Box {
	return core.NewBox(e.Pos.X, e.Pos.Y, e.W, e.H)
}

// Center returns the center of the enemy.
func (e *Enemy) Center() core.Vec2 {
	return e.Box().Center()
}

// Marches reports whether the enemy takes part in the group edge bounce.
func (e *Enemy) Marches() bool {
	return e.Kind != EnemyKamikaze
}

// moveContext carries the shared state enemy movement reads each tick.
type moveContext struct {
	speed  float64 // shared enemy speed for the level
	dir    float64 // shared horizontal direction, +1 or -1
	target core.Vec2
	cfg    config.EnemiesConfig
}

type moveFunc func(e *Enemy, mc moveContext)

var movers = [enemyKindCount]moveFunc{
	EnemyNormal:   moveNormal,
	EnemyTank:     moveTank,
	EnemyKamikaze: moveKamikaze,
}

func (e *Enemy) update(mc moveContext) {
	movers[e.Kind](e, mc)
}

func moveNormal(e *Enemy, mc moveContext) {
	if e.Zigzag {
		e.Phase += mc.cfg.ZigzagStep
		e.Pos.X = e.OriginX + math.Sin(e.Phase)*mc.cfg.ZigzagAmplitude
		return
	}
	e.Pos.X += mc.dir * mc.speed
}

// moveTank derives its speed from the shared speed every tick so level
// speed-ups apply to tanks already on the field.
func moveTank(e *Enemy, mc moveContext) {
	e.Pos.X += mc.dir * mc.speed * e.SpeedFactor
}

func moveKamikaze(e *Enemy, mc moveContext) {
	heading := mc.target.Sub(e.Center()).Normalize()
	e.Pos = e.Pos.Add(heading.Scale(mc.speed * e.SpeedFactor))
}

// descend moves a marching enemy down one step. The zigzag origin has no
// vertical component so only Y changes.
func (e *Enemy) descend(dy float64) {
	e.Pos.Y += dy
}
