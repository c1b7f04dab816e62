package config

import "math"

// DifficultyManager derives the per-level enemy speed from the difficulty config.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables the speed curve.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether the speed curve is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// StartLevel returns the level a new game begins on (at least 1).
func (d *DifficultyManager) StartLevel() int {
	if d.cfg.StartLevel < 1 {
		return 1
	}
	return d.cfg.StartLevel
}

// BaseSpeed returns the enemy speed of a fresh game on level 1.
func (d *DifficultyManager) BaseSpeed() float64 {
	if d.cfg.BaseSpeed <= 0 {
		return 1
	}
	return d.cfg.BaseSpeed
}

// EnemySpeed returns the shared enemy speed for a level.
// Level 1 and a disabled curve both yield the base speed.
func (d *DifficultyManager) EnemySpeed(level int) float64 {
	base := d.BaseSpeed()
	if !d.cfg.Enabled || level <= 1 {
		return base
	}
	speed := base + float64(level)*d.cfg.SpeedPerLevel
	if d.cfg.MaxSpeed > 0 {
		speed = math.Min(speed, d.cfg.MaxSpeed)
	}
	return speed
}
