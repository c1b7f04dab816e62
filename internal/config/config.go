// Package config provides YAML/TOML game configuration loading and
// difficulty management for Galaxy Wars.
package config

// GalaxyConfig contains all tunable parameters of the simulation.
// Distances are world units, speeds are world units per tick.
type GalaxyConfig struct {
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Enemies    EnemiesConfig    `yaml:"enemies" toml:"enemies"`
	Wave       WaveConfig       `yaml:"wave" toml:"wave"`
	Weapons    WeaponsConfig    `yaml:"weapons" toml:"weapons"`
	PowerUps   PowerUpsConfig   `yaml:"powerups" toml:"powerups"`
	Effects    EffectsConfig    `yaml:"effects" toml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	Speed        float64 `yaml:"speed" toml:"speed"`
	BottomMargin float64 `yaml:"bottom_margin" toml:"bottom_margin"`
	StartShield  int     `yaml:"start_shield" toml:"start_shield"`
	MaxShield    int     `yaml:"max_shield" toml:"max_shield"`
}

// EnemyKindConfig holds per-kind enemy stats.
type EnemyKindConfig struct {
	Health int `yaml:"health" toml:"health"`
	Score  int `yaml:"score" toml:"score"`
	// SpeedFactor scales the shared enemy speed. Unused for Normal.
	SpeedFactor float64 `yaml:"speed_factor" toml:"speed_factor"`
}

// EnemiesConfig defines enemy geometry and movement.
type EnemiesConfig struct {
	Width           float64         `yaml:"width" toml:"width"`
	Height          float64         `yaml:"height" toml:"height"`
	Normal          EnemyKindConfig `yaml:"normal" toml:"normal"`
	Tank            EnemyKindConfig `yaml:"tank" toml:"tank"`
	Kamikaze        EnemyKindConfig `yaml:"kamikaze" toml:"kamikaze"`
	ZigzagAmplitude float64         `yaml:"zigzag_amplitude" toml:"zigzag_amplitude"`
	ZigzagStep      float64         `yaml:"zigzag_step" toml:"zigzag_step"`
	DescendBase     float64         `yaml:"descend_base" toml:"descend_base"`
	DescendPerTwo   float64         `yaml:"descend_per_two_levels" toml:"descend_per_two_levels"`
}

// WaveConfig defines the spawn grid.
type WaveConfig struct {
	OriginX  float64 `yaml:"origin_x" toml:"origin_x"`
	OriginY  float64 `yaml:"origin_y" toml:"origin_y"`
	SpacingX float64 `yaml:"spacing_x" toml:"spacing_x"`
	SpacingY float64 `yaml:"spacing_y" toml:"spacing_y"`
	BaseRows int     `yaml:"base_rows" toml:"base_rows"`
	BaseCols int     `yaml:"base_cols" toml:"base_cols"`
}

// WeaponsConfig defines bullets of both sides.
type WeaponsConfig struct {
	BulletRadius      float64 `yaml:"bullet_radius" toml:"bullet_radius"`
	BulletSpeed       float64 `yaml:"bullet_speed" toml:"bullet_speed"`
	TripleSpread      float64 `yaml:"triple_spread" toml:"triple_spread"`
	EnemyBulletRadius float64 `yaml:"enemy_bullet_radius" toml:"enemy_bullet_radius"`
	EnemyBulletSpeed  float64 `yaml:"enemy_bullet_speed" toml:"enemy_bullet_speed"`
	ShootInterval     int     `yaml:"shoot_interval" toml:"shoot_interval"`
}

// PowerUpsConfig defines drop chances and power-up behavior.
type PowerUpsConfig struct {
	ShieldDropChance float64 `yaml:"shield_drop_chance" toml:"shield_drop_chance"`
	TripleShotChance float64 `yaml:"triple_shot_chance" toml:"triple_shot_chance"`
	TripleShotTicks  int     `yaml:"triple_shot_ticks" toml:"triple_shot_ticks"`
	FallSpeed        float64 `yaml:"fall_speed" toml:"fall_speed"`
	HalfSize         float64 `yaml:"half_size" toml:"half_size"`
}

// EffectsConfig defines cosmetic effects.
type EffectsConfig struct {
	Stars     int `yaml:"stars" toml:"stars"`
	Particles int `yaml:"particles" toml:"particles"`
	FadeStep  int `yaml:"fade_step" toml:"fade_step"`
}

// DifficultyConfig defines the level speed curve.
// Enemy speed on level L (L >= 2) is min(BaseSpeed + L*SpeedPerLevel, MaxSpeed).
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled" toml:"enabled"`
	Ruleset       string  `yaml:"ruleset" toml:"ruleset"`
	StartLevel    int     `yaml:"start_level" toml:"start_level"`
	BaseSpeed     float64 `yaml:"base_speed" toml:"base_speed"`
	SpeedPerLevel float64 `yaml:"speed_per_level" toml:"speed_per_level"`
	MaxSpeed      float64 `yaml:"max_speed" toml:"max_speed"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// Ruleset names a speed curve.
type Ruleset struct {
	Name          string
	SpeedPerLevel float64
	MaxSpeed      float64
}

const (
	RulesetClassic = "classic"
	RulesetTurbo   = "turbo"
)

var rulesets = map[string]Ruleset{
	RulesetClassic: {Name: RulesetClassic, SpeedPerLevel: 0.3, MaxSpeed: 3.0},
	RulesetTurbo:   {Name: RulesetTurbo, SpeedPerLevel: 0.5, MaxSpeed: 4.0},
}

// LookupRuleset returns the named ruleset.
func LookupRuleset(name string) (Ruleset, bool) {
	r, ok := rulesets[name]
	return r, ok
}
