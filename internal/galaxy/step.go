package galaxy

import (
	"github.com/vovakirdan/galaxy-wars/internal/core"
	"github.com/vovakirdan/galaxy-wars/internal/event"
)

// TickEvents lists what happened during one tick, in order.
type TickEvents []event.Event

// Count returns how many events of type t occurred.
func (te TickEvents) Count(t event.EventType) int {
	n := 0
	for _, e := range te {
		if e.Type == t {
			n++
		}
	}
	return n
}

// Has reports whether an event of type t occurred.
func (te TickEvents) Has(t event.EventType) bool {
	return te.Count(t) > 0
}

// Step advances a playing, unpaused session by one tick and returns the
// events it produced. It does nothing in any other phase.
//
// Order per tick: player input, projectile and enemy movement, the group
// edge bounce, the triple shot timer, collision resolution, off-screen
// cleanup, enemy fire, level clear.
func Step(s *Session, in core.InputFrame, rng Rand) TickEvents {
	if s.Phase != PhasePlaying || s.Paused {
		return nil
	}
	s.events = nil
	s.Tick++

	s.applyInput(in)
	s.moveProjectiles()
	s.moveEnemies()
	s.Player.tickTripleShot()

	s.resolveCollisions(rng)
	s.cleanup()

	if s.Phase == PhasePlaying {
		s.enemyFire(rng)
		if len(s.Enemies) == 0 {
			s.nextLevel(rng)
		}
	}
	return s.events
}

func (s *Session) applyInput(in core.InputFrame) {
	dir := 0
	if in.Has(core.ActionLeft) {
		dir--
	}
	if in.Has(core.ActionRight) {
		dir++
	}
	s.Player.Move(dir, s.FieldW)

	if in.Has(core.ActionFire) {
		shots := s.Player.Shoot(s.cfg.Weapons)
		s.Bullets = append(s.Bullets, shots...)
		s.emit(event.ShotFired, shots[0].Pos, len(shots))
	}
}

func (s *Session) moveProjectiles() {
	for _, b := range s.Bullets {
		b.update()
	}
	for _, b := range s.EnemyBullets {
		b.update()
	}
	for _, u := range s.PowerUps {
		u.update()
	}
}

func (s *Session) moveEnemies() {
	mc := moveContext{
		speed:  s.EnemySpeed,
		dir:    s.Direction,
		target: s.Player.Center(),
		cfg:    s.cfg.Enemies,
	}
	for _, e := range s.Enemies {
		e.update(mc)
	}
	s.bounce()
	s.recycleEscaped()
}

// bounce applies the group edge rule once for the whole roster: if any
// marching enemy has crossed the edge it is heading for, the shared direction
// flips and every marching enemy descends one step. Kamikazes neither trigger
// nor follow it.
func (s *Session) bounce() bool {
	crossed := false
	for _, e := range s.Enemies {
		if !e.Marches() {
			continue
		}
		if (s.Direction > 0 && e.Pos.X+e.W > s.FieldW) || (s.Direction < 0 && e.Pos.X < 0) {
			crossed = true
			break
		}
	}
	if !crossed {
		return false
	}

	s.Direction = -s.Direction
	dy := DescendStep(s.Level, s.cfg.Enemies)
	for _, e := range s.Enemies {
		if e.Marches() {
			e.descend(dy)
		}
	}
	return true
}

// recycleEscaped moves marching enemies that sank below the field back to the
// top row. They keep their health; only the player can remove them.
func (s *Session) recycleEscaped() {
	for _, e := range s.Enemies {
		if e.Marches() && e.Pos.Y > s.FieldH {
			e.Pos.Y = s.cfg.Wave.OriginY
		}
	}
}

func (s *Session) cleanup() {
	bullets := s.Bullets[:0]
	for _, b := range s.Bullets {
		if b.Pos.Y > 0 {
			bullets = append(bullets, b)
		}
	}
	s.Bullets = bullets

	enemyBullets := s.EnemyBullets[:0]
	for _, b := range s.EnemyBullets {
		if b.Pos.Y < s.FieldH {
			enemyBullets = append(enemyBullets, b)
		}
	}
	s.EnemyBullets = enemyBullets

	powerUps := s.PowerUps[:0]
	for _, u := range s.PowerUps {
		if u.Pos.Y-u.HalfSize <= s.FieldH {
			powerUps = append(powerUps, u)
		}
	}
	s.PowerUps = powerUps
}

// enemyFire advances the shared cadence counter. When it reaches the shoot
// interval one random enemy fires from its bottom center.
func (s *Session) enemyFire(rng Rand) {
	s.ShootTimer++
	if s.ShootTimer < s.cfg.Weapons.ShootInterval {
		return
	}
	s.ShootTimer = 0
	if len(s.Enemies) == 0 {
		return
	}
	shooter := s.Enemies[rng.Intn(len(s.Enemies))]
	muzzle := core.Vec2{X: shooter.Pos.X + shooter.W/2, Y: shooter.Pos.Y + shooter.H}
	s.EnemyBullets = append(s.EnemyBullets, NewEnemyBullet(muzzle, s.cfg.Weapons))
}

func (s *Session) nextLevel(rng Rand) {
	s.Level++
	s.EnemySpeed = s.difficulty.EnemySpeed(s.Level)
	s.Enemies = GenerateWave(s.Level, s.FieldW, s.cfg, s.rules, rng)
	s.emit(event.LevelCleared, core.Vec2{}, s.Level)
}
