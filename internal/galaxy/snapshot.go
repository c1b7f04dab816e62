package galaxy

import "math"

// Snapshot captures the gameplay state for determinism testing.
// Cosmetic state (stars, explosions) is left out.
type Snapshot struct {
	Tick       uint64
	Phase      string
	Level      int
	Score      int
	Highscore  int
	Direction  float64
	EnemySpeed float64
	ShootTimer int

	PlayerX     float64
	PlayerY     float64
	Shield      int
	TripleTicks int

	// Each enemy is 4 values: Kind, X, Y, Health
	EnemyCount int
	EnemyData  []float64

	// Each bullet is 2 values: X, Y
	BulletData      []float64
	EnemyBulletData []float64
	PowerUpData     []float64
}

// Snapshot returns the current gameplay state.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	if s == nil {
		return Snapshot{}
	}
	snap := Snapshot{
		Tick:        s.Tick,
		Phase:       s.Phase.String(),
		Level:       s.Level,
		Score:       s.Score,
		Highscore:   s.Highscore,
		Direction:   s.Direction,
		EnemySpeed:  s.EnemySpeed,
		ShootTimer:  s.ShootTimer,
		PlayerX:     s.Player.Pos.X,
		PlayerY:     s.Player.Pos.Y,
		Shield:      s.Player.Shield,
		TripleTicks: s.Player.TripleTicks,
		EnemyCount:  len(s.Enemies),
	}

	snap.EnemyData = make([]float64, 0, len(s.Enemies)*4)
	for _, e := range s.Enemies {
		snap.EnemyData = append(snap.EnemyData, float64(e.Kind), e.Pos.X, e.Pos.Y, float64(e.Health))
	}
	for _, b := range s.Bullets {
		snap.BulletData = append(snap.BulletData, b.Pos.X, b.Pos.Y)
	}
	for _, b := range s.EnemyBullets {
		snap.EnemyBulletData = append(snap.EnemyBulletData, b.Pos.X, b.Pos.Y)
	}
	for _, u := range s.PowerUps {
		snap.PowerUpData = append(snap.PowerUpData, u.Pos.X, u.Pos.Y)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.Phase {
		h = h*31 + uint64(r)
	}
	h = h*31 + uint64(snap.Level)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Highscore)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShootTimer)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shield)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TripleTicks) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Direction)
	h = h*31 + math.Float64bits(snap.EnemySpeed)
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)

	for _, data := range [][]float64{snap.EnemyData, snap.BulletData, snap.EnemyBulletData, snap.PowerUpData} {
		h = h*31 + uint64(len(data))
		for _, v := range data {
			h = h*31 + math.Float64bits(v)
		}
	}
	return h
}
