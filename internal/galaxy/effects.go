package galaxy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/galaxy-wars/internal/config"
	"github.com/vovakirdan/galaxy-wars/internal/core"
)

// Effects are cosmetic. They draw from their own RNG so they never shift the
// gameplay random sequence.

const maxAlpha = 255

// Particle is one spark of an explosion.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Size  float64
	Alpha int // 0..255, fades each tick
}

// Explosion is a burst of particles.
type Explosion struct {
	Particles []Particle
}

// NewExplosion creates count particles flying out of center in random directions.
func NewExplosion(center core.Vec2, count int, rng *rand.Rand) *Explosion {
	ex := &Explosion{Particles: make([]Particle, count)}
	for i := range ex.Particles {
		angle := rng.Float64() * 2 * math.Pi
		speed := 1 + rng.Float64()*3
		ex.Particles[i] = Particle{
			Pos:   center,
			Vel:   core.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(speed),
			Size:  2 + rng.Float64()*3,
			Alpha: maxAlpha,
		}
	}
	return ex
}

func (ex *Explosion) update(fade int) {
	alive := ex.Particles[:0]
	for _, p := range ex.Particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Alpha -= fade
		if p.Alpha > 0 {
			alive = append(alive, p)
		}
	}
	ex.Particles = alive
}

// Done reports whether every particle has faded out.
func (ex *Explosion) Done() bool {
	return len(ex.Particles) == 0
}

// Star drifts down the background; Z is both its speed and its brightness.
type Star struct {
	Pos core.Vec2
	Z   float64
}

func newStarfield(cfg config.EffectsConfig, fieldW, fieldH float64, rng *rand.Rand) []Star {
	stars := make([]Star, cfg.Stars)
	for i := range stars {
		stars[i] = Star{
			Pos: core.Vec2{X: rng.Float64() * fieldW, Y: rng.Float64() * fieldH},
			Z:   1 + rng.Float64()*2,
		}
	}
	return stars
}

func (s *Star) update(fieldW, fieldH float64, rng *rand.Rand) {
	s.Pos.Y += s.Z
	if s.Pos.Y > fieldH {
		s.Pos.Y = 0
		s.Pos.X = rng.Float64() * fieldW
	}
}
