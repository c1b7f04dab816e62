package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/galaxy-wars/internal/config"
)

var flagFormat string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the effective game config",
	Long: `Print the config a game would run with after applying the config
file, the ruleset and the difficulty preset. The output can be saved to
~/.galaxywars/configs/galaxy.yaml (or galaxy.toml) and edited.

Examples:
  galaxywars rules
  galaxywars rules --ruleset turbo --difficulty hard
  galaxywars rules --format toml > ~/.galaxywars/configs/galaxy.toml`,
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML game config")
	rulesCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rulesCmd.Flags().StringVar(&flagRuleset, "ruleset", config.RulesetClassic, "Ruleset: classic or turbo")
	rulesCmd.Flags().StringVar(&flagFormat, "format", string(config.FormatYAML), "Output format: yaml or toml")
}

func runRules(_ *cobra.Command, _ []string) error {
	format := config.Format(flagFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		return fmt.Errorf("unknown format %q (want yaml or toml)", flagFormat)
	}

	cfg, err := effectiveConfig(flagConfig, flagRuleset, flagDifficulty)
	if err != nil {
		return err
	}
	return config.Encode(os.Stdout, cfg, format)
}

// effectiveConfig resolves a config the same way a game does on Reset,
// except that a bad config file is an error here.
func effectiveConfig(path, ruleset, difficulty string) (config.GalaxyConfig, error) {
	preset := config.ParsePreset(difficulty)
	if difficulty != "" && preset == "" {
		return config.GalaxyConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyRuleset(&cfg, ruleset); err != nil {
		return cfg, err
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	return config.Sanitize(cfg), nil
}
