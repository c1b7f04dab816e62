package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the encoding from a file extension. Anything that is not
// .toml is treated as YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Decode parses data over cfg. Keys missing from data keep their current values.
func Decode(data []byte, format Format, cfg *GalaxyConfig) error {
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return err
		}
		return nil
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// Encode writes cfg in the given format.
func Encode(w io.Writer, cfg GalaxyConfig, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(cfg)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	}
}

// Load loads the game configuration.
// Search order: customPath -> ~/.galaxywars/configs/galaxy.{yaml,toml} ->
// ./configs/galaxy.yaml -> embedded default -> hardcoded default.
// Only an unreadable or invalid customPath is an error.
func Load(customPath string) (GalaxyConfig, error) {
	if customPath != "" {
		cfg := DefaultGalaxyConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := Decode(data, FormatFor(customPath), &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return Sanitize(cfg), nil
	}

	candidates := []string{
		userConfigPath("galaxy.yaml"),
		userConfigPath("galaxy.toml"),
		filepath.Join("configs", "galaxy.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := DefaultGalaxyConfig()
		if err := Decode(data, FormatFor(path), &cfg); err == nil {
			return Sanitize(cfg), nil
		}
	}

	cfg := DefaultGalaxyConfig()
	if err := yaml.Unmarshal(defaultGalaxyYAML, &cfg); err != nil {
		return DefaultGalaxyConfig(), nil
	}
	return Sanitize(cfg), nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".galaxywars", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GalaxyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Player.StartShield = 2
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.StartLevel = 2
		cfg.Player.StartShield = 0
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}

// ApplyRuleset replaces the speed curve with the named ruleset.
func ApplyRuleset(cfg *GalaxyConfig, name string) error {
	r, ok := LookupRuleset(name)
	if !ok {
		return fmt.Errorf("config: unknown ruleset %q", name)
	}
	cfg.Difficulty.Ruleset = r.Name
	cfg.Difficulty.SpeedPerLevel = r.SpeedPerLevel
	cfg.Difficulty.MaxSpeed = r.MaxSpeed
	return nil
}

// Sanitize clamps values that would break the simulation.
func Sanitize(cfg GalaxyConfig) GalaxyConfig {
	if cfg.Player.MaxShield < 0 {
		cfg.Player.MaxShield = 0
	}
	if cfg.Player.StartShield < 0 {
		cfg.Player.StartShield = 0
	}
	if cfg.Player.StartShield > cfg.Player.MaxShield {
		cfg.Player.StartShield = cfg.Player.MaxShield
	}
	if cfg.Weapons.ShootInterval < 1 {
		cfg.Weapons.ShootInterval = 1
	}
	if cfg.Wave.BaseRows < 1 {
		cfg.Wave.BaseRows = 1
	}
	if cfg.Wave.BaseCols < 1 {
		cfg.Wave.BaseCols = 1
	}
	if cfg.Wave.SpacingY <= 0 {
		cfg.Wave.SpacingY = 40
	}
	if cfg.Wave.SpacingX <= 0 {
		cfg.Wave.SpacingX = 60
	}
	for _, k := range []*EnemyKindConfig{&cfg.Enemies.Normal, &cfg.Enemies.Tank, &cfg.Enemies.Kamikaze} {
		if k.Health < 1 {
			k.Health = 1
		}
	}
	if cfg.Effects.FadeStep < 1 {
		cfg.Effects.FadeStep = 1
	}
	if cfg.Difficulty.StartLevel < 1 {
		cfg.Difficulty.StartLevel = 1
	}
	return cfg
}
