package galaxy

import (
	"github.com/vovakirdan/galaxy-wars/internal/config"
)

// SpawnRule is one branch of the per-cell enemy type draw. Rules are tried
// in order; the first rule whose level gate passes and whose chance roll
// succeeds picks the kind. A nil Chance always matches.
type SpawnRule struct {
	Kind     EnemyKind
	MinLevel int
	Chance   func(level, col int) float64
}

// DefaultSpawnRules returns the standard mix: mostly Normal, Tanks from
// level 2 biased to every third column, Kamikazes from level 3.
func DefaultSpawnRules() []SpawnRule {
	return []SpawnRule{
		{
			Kind:     EnemyNormal,
			MinLevel: 1,
			Chance: func(level, _ int) float64 {
				if level < 3 {
					return 0.8
				}
				return 0.65
			},
		},
		{
			Kind:     EnemyTank,
			MinLevel: 2,
			Chance: func(_, col int) float64 {
				if col%3 == 0 {
					return 0.5
				}
				return 0.15
			},
		},
		{
			Kind:     EnemyKamikaze,
			MinLevel: 3,
		},
	}
}

// pickKind runs the rule list for one grid cell. Only rules that pass their
// level gate and carry a Chance consume a random sample.
func pickKind(rules []SpawnRule, level, col int, rng Rand) EnemyKind {
	for _, r := range rules {
		if level < r.MinLevel {
			continue
		}
		if r.Chance == nil || rng.Float64() < r.Chance(level, col) {
			return r.Kind
		}
	}
	return EnemyNormal
}

// KamikazeCap returns the most Kamikazes a wave may hold on level.
func KamikazeCap(level int) int {
	return 2 + level/2
}

// TankCap returns the most Tanks a wave may hold on level.
func TankCap(level int) int {
	return 2 + level/3
}

// WaveSize returns the grid dimensions for level on a field fieldW wide.
// Columns are clamped so the rightmost enemy, including its zigzag sway,
// stays inside the field; there is always at least one column.
func WaveSize(level int, fieldW float64, cfg config.GalaxyConfig) (rows, cols int) {
	rows = cfg.Wave.BaseRows + level/2
	cols = cfg.Wave.BaseCols + level

	room := fieldW - cfg.Wave.OriginX - cfg.Enemies.Width - cfg.Enemies.ZigzagAmplitude
	fit := 1
	if room > 0 {
		fit = int(room/cfg.Wave.SpacingX) + 1
	}
	if cols > fit {
		cols = fit
	}
	return rows, cols
}

// GenerateWave builds the enemy roster for level.
func GenerateWave(level int, fieldW float64, cfg config.GalaxyConfig, rules []SpawnRule, rng Rand) []*Enemy {
	rows, cols := WaveSize(level, fieldW, cfg)
	roster := make([]*Enemy, 0, rows*cols)

	for row := range rows {
		for col := range cols {
			x := cfg.Wave.OriginX + float64(col)*cfg.Wave.SpacingX
			y := cfg.Wave.OriginY + float64(row)*cfg.Wave.SpacingY
			roster = append(roster, NewEnemy(pickKind(rules, level, col, rng), x, y, cfg))
		}
	}

	capKind(roster, EnemyKamikaze, KamikazeCap(level), cfg)
	capKind(roster, EnemyTank, TankCap(level), cfg)
	return roster
}

// capKind demotes the first enemies of kind, in roster order, to Normal
// until at most limit remain.
func capKind(roster []*Enemy, kind EnemyKind, limit int, cfg config.GalaxyConfig) {
	count := countKind(roster, kind)
	for i := 0; i < len(roster) && count > limit; i++ {
		if roster[i].Kind != kind {
			continue
		}
		roster[i] = NewEnemy(EnemyNormal, roster[i].Pos.X, roster[i].Pos.Y, cfg)
		count--
	}
}

func countKind(roster []*Enemy, kind EnemyKind) int {
	n := 0
	for _, e := range roster {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
