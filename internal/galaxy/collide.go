package galaxy

import (
	"github.com/vovakirdan/galaxy-wars/internal/core"
	"github.com/vovakirdan/galaxy-wars/internal/event"
)

// resolveCollisions runs the interaction pairs in a fixed order; earlier
// pairs can change what later pairs see in the same tick.
func (s *Session) resolveCollisions(rng Rand) {
	s.bulletsVsEnemies(rng)
	s.playerVsPowerUps()
	if s.enemyBulletsVsPlayer() {
		return
	}
	s.enemiesVsPlayer()
}

// bulletsVsEnemies lets each player bullet hit at most one enemy.
// Newest bullets and newest enemies are checked first.
func (s *Session) bulletsVsEnemies(rng Rand) {
	for i := len(s.Bullets) - 1; i >= 0; i-- {
		box := s.Bullets[i].Box()
		for j := len(s.Enemies) - 1; j >= 0; j-- {
			e := s.Enemies[j]
			if !box.Intersects(e.Box()) {
				continue
			}
			s.Bullets = append(s.Bullets[:i], s.Bullets[i+1:]...)
			if e.Kind == EnemyTank {
				e.Health--
			} else {
				e.Health = 0
			}
			if e.Health > 0 {
				s.emit(event.EnemyHit, e.Center(), e.Health)
			} else {
				s.Enemies = append(s.Enemies[:j], s.Enemies[j+1:]...)
				s.destroyEnemy(e, rng)
			}
			break
		}
	}
}

// destroyEnemy awards the kill and rolls the drops: a Shield power-up and,
// independently, triple shot.
func (s *Session) destroyEnemy(e *Enemy, rng Rand) {
	center := e.Center()
	s.Score += e.ScoreValue
	s.emit(event.EnemyDestroyed, center, e.ScoreValue)
	s.spawnExplosion(center)

	pu := s.cfg.PowerUps
	if rng.Float64() < pu.ShieldDropChance {
		s.PowerUps = append(s.PowerUps, NewPowerUp(PowerUpShield, center, pu))
		s.emit(event.PowerUpDropped, center, int(PowerUpShield))
	}
	if rng.Float64() < pu.TripleShotChance {
		s.Player.ActivateTripleShot(pu.TripleShotTicks)
		s.emit(event.TripleShotGained, center, pu.TripleShotTicks)
	}
}

func (s *Session) playerVsPowerUps() {
	box := s.Player.Box()
	kept := s.PowerUps[:0]
	for _, u := range s.PowerUps {
		if !box.Intersects(u.Box()) {
			kept = append(kept, u)
			continue
		}
		switch u.Kind {
		case PowerUpShield:
			s.Player.AddShield()
		}
		s.emit(event.PowerUpCollected, u.Pos, int(u.Kind))
	}
	s.PowerUps = kept
}

// enemyBulletsVsPlayer reports whether the player died.
func (s *Session) enemyBulletsVsPlayer() bool {
	box := s.Player.Box()
	for i := 0; i < len(s.EnemyBullets); i++ {
		b := s.EnemyBullets[i]
		if !box.Intersects(b.Box()) {
			continue
		}
		s.EnemyBullets = append(s.EnemyBullets[:i], s.EnemyBullets[i+1:]...)
		i--
		if s.hitPlayer(b.Pos) {
			return true
		}
	}
	return false
}

// enemiesVsPlayer handles ramming. Only Kamikazes hurt on contact; Normal
// and Tank enemies pass through the player.
func (s *Session) enemiesVsPlayer() {
	box := s.Player.Box()
	for j := len(s.Enemies) - 1; j >= 0; j-- {
		e := s.Enemies[j]
		if e.Kind != EnemyKamikaze || !box.Intersects(e.Box()) {
			continue
		}
		e.Health = 0
		s.Enemies = append(s.Enemies[:j], s.Enemies[j+1:]...)
		center := e.Center()
		s.emit(event.EnemyDestroyed, center, 0)
		s.spawnExplosion(center)
		if s.hitPlayer(center) {
			return
		}
	}
}

// hitPlayer spends a shield point or ends the game. It reports whether the
// hit was fatal.
func (s *Session) hitPlayer(at core.Vec2) bool {
	if s.Player.AbsorbHit() {
		s.emit(event.ShieldHit, at, s.Player.Shield)
		return false
	}
	s.Phase = PhaseGameOver
	s.emit(event.PlayerDestroyed, s.Player.Center(), s.Score)
	s.spawnExplosion(s.Player.Center())
	return true
}
