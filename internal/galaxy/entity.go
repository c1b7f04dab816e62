// Package galaxy implements Galaxy Wars: a fixed-tick space shooter where the
// player clears waves of Normal, Tank and Kamikaze enemies.
//
// The simulation is split so it can run headless: Session holds all mutable
// state, Step advances it by one tick, and Game wraps both behind the
// registry.Game contract for the terminal and desktop hosts.
package galaxy

import (
	"github.com/vovakirdan/galaxy-wars/internal/config"
	"github.com/vovakirdan/galaxy-wars/internal/core"
)

// Rand is the randomness the simulation consumes.
// *math/rand.Rand satisfies it; tests substitute scripted sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Player is the ship at the bottom of the field.
type Player struct {
	Pos         core.Vec2 // top-left corner
	W, H        float64
	Speed       float64
	Shield      int
	MaxShield   int
	TripleShot  bool
	TripleTicks int // ticks of triple shot left
}

// NewPlayer places a player centered horizontally on the bottom row of the field.
func NewPlayer(cfg config.PlayerConfig, fieldW, fieldH float64) *Player {
	p := &Player{
		W:         cfg.Width,
		H:         cfg.Height,
		Speed:     cfg.Speed,
		Shield:    cfg.StartShield,
		MaxShield: cfg.MaxShield,
	}
	p.Pos.X = fieldW/2 - p.W/2
	p.Anchor(fieldW, fieldH, cfg.BottomMargin)
	return p
}

// Box returns the collision box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.Pos.X, p.Pos.Y, p.W, p.H)
}

// Center returns the center of the ship.
func (p *Player) Center() core.Vec2 {
	return p.Box().Center()
}

// Move shifts the player by dir*Speed and clamps it into [0, fieldW-W].
func (p *Player) Move(dir int, fieldW float64) {
	p.Pos.X += float64(dir) * p.Speed
	p.clampX(fieldW)
}

// Anchor puts the player back on the bottom row after the field changed size.
func (p *Player) Anchor(fieldW, fieldH, bottomMargin float64) {
	p.Pos.Y = fieldH - p.H - bottomMargin
	p.clampX(fieldW)
}

func (p *Player) clampX(fieldW float64) {
	p.Pos.X = core.ClampF(p.Pos.X, 0, fieldW-p.W)
	if p.Pos.X < 0 {
		// Field narrower than the ship.
		p.Pos.X = 0
	}
}

// Shoot returns the bullets of one trigger pull: one from the nose,
// or three spread horizontally while triple shot is active.
func (p *Player) Shoot(w config.WeaponsConfig) []*Bullet {
	nose := core.Vec2{X: p.Pos.X + p.W/2, Y: p.Pos.Y}
	if !p.TripleShot {
		return []*Bullet{NewPlayerBullet(nose, w)}
	}
	return []*Bullet{
		NewPlayerBullet(nose, w),
		NewPlayerBullet(nose.Add(core.Vec2{X: -w.TripleSpread}), w),
		NewPlayerBullet(nose.Add(core.Vec2{X: w.TripleSpread}), w),
	}
}

// AddShield raises the shield by one point, up to MaxShield.
func (p *Player) AddShield() {
	p.Shield = core.Clamp(p.Shield+1, 0, p.MaxShield)
}

// AbsorbHit spends one shield point. It reports false when the shield was
// already empty, which means the hit is fatal.
func (p *Player) AbsorbHit() bool {
	if p.Shield <= 0 {
		p.Shield = 0
		return false
	}
	p.Shield--
	return true
}

// ActivateTripleShot turns on triple shot, restarting its timer.
func (p *Player) ActivateTripleShot(ticks int) {
	p.TripleShot = true
	p.TripleTicks = ticks
}

func (p *Player) tickTripleShot() {
	if !p.TripleShot {
		return
	}
	p.TripleTicks--
	if p.TripleTicks <= 0 {
		p.TripleTicks = 0
		p.TripleShot = false
	}
}

// Bullet is a round projectile. Player bullets travel up, enemy bullets down.
type Bullet struct {
	Pos    core.Vec2 // center
	Radius float64
	Speed  float64
	Dir    float64 // -1 up, +1 down
}

// NewPlayerBullet creates an upward bullet centered at pos.
func NewPlayerBullet(pos core.Vec2, w config.WeaponsConfig) *Bullet {
	return &Bullet{Pos: pos, Radius: w.BulletRadius, Speed: w.BulletSpeed, Dir: -1}
}

// NewEnemyBullet creates a downward bullet centered at pos.
func NewEnemyBullet(pos core.Vec2, w config.WeaponsConfig) *Bullet {
	return &Bullet{Pos: pos, Radius: w.EnemyBulletRadius, Speed: w.EnemyBulletSpeed, Dir: 1}
}

// Box returns the square around the bullet used for collision tests.
func (b *Bullet) Box() core.Box {
	return core.BoxAround(b.Pos, b.Radius, b.Radius)
}

func (b *Bullet) update() {
	b.Pos.Y += b.Dir * b.Speed
}

// PowerUpKind identifies what a power-up grants.
type PowerUpKind int

const (
	PowerUpShield PowerUpKind = iota
)

// String returns the display name.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "Shield"
	default:
		return "Unknown"
	}
}

// PowerUp falls from a destroyed enemy until collected or off screen.
type PowerUp struct {
	Kind     PowerUpKind
	Pos      core.Vec2 // center
	Speed    float64
	HalfSize float64
}

// NewPowerUp creates a power-up centered at pos.
func NewPowerUp(kind PowerUpKind, pos core.Vec2, cfg config.PowerUpsConfig) *PowerUp {
	return &PowerUp{Kind: kind, Pos: pos, Speed: cfg.FallSpeed, HalfSize: cfg.HalfSize}
}

// Box returns the collision box.
func (u *PowerUp) Box() core.Box {
	return core.BoxAround(u.Pos, u.HalfSize, u.HalfSize)
}

func (u *PowerUp) update() {
	u.Pos.Y += u.Speed
}
