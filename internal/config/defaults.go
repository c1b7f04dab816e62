package config

import (
	_ "embed"
)

//go:embed defaults/galaxy.yaml
var defaultGalaxyYAML []byte

// DefaultGalaxyConfig returns the built-in configuration.
func DefaultGalaxyConfig() GalaxyConfig {
	return GalaxyConfig{
		Player: PlayerConfig{
			Width:        50,
			Height:       20,
			Speed:        5,
			BottomMargin: 10,
			StartShield:  0,
			MaxShield:    3,
		},
		Enemies: EnemiesConfig{
			Width:           40,
			Height:          28,
			Normal:          EnemyKindConfig{Health: 1, Score: 10},
			Tank:            EnemyKindConfig{Health: 3, Score: 30, SpeedFactor: 0.75},
			Kamikaze:        EnemyKindConfig{Health: 1, Score: 20, SpeedFactor: 1.25},
			ZigzagAmplitude: 20,
			ZigzagStep:      0.12,
			DescendBase:     10,
			DescendPerTwo:   2,
		},
		Wave: WaveConfig{
			OriginX:  60,
			OriginY:  60,
			SpacingX: 60,
			SpacingY: 40,
			BaseRows: 3,
			BaseCols: 5,
		},
		Weapons: WeaponsConfig{
			BulletRadius:      4,
			BulletSpeed:       7,
			TripleSpread:      10,
			EnemyBulletRadius: 4,
			EnemyBulletSpeed:  4,
			ShootInterval:     60,
		},
		PowerUps: PowerUpsConfig{
			ShieldDropChance: 0.10,
			TripleShotChance: 0.05,
			TripleShotTicks:  300,
			FallSpeed:        2,
			HalfSize:         8,
		},
		Effects: EffectsConfig{
			Stars:     100,
			Particles: 20,
			FadeStep:  5,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			Ruleset:       RulesetClassic,
			StartLevel:    1,
			BaseSpeed:     1,
			SpeedPerLevel: 0.3,
			MaxSpeed:      3,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGalaxyYAML
}
