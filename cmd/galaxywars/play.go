package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/galaxy-wars/internal/audio"
	"github.com/vovakirdan/galaxy-wars/internal/config"
	"github.com/vovakirdan/galaxy-wars/internal/core"
	"github.com/vovakirdan/galaxy-wars/internal/galaxy"
	"github.com/vovakirdan/galaxy-wars/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRuleset    string
	flagMute       bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Galaxy Wars in the terminal",
	Long: `Play Galaxy Wars in the terminal.

Controls:
  Left/Right, A/D, H/L  - Move
  Space                 - Fire
  Enter                 - Start / restart
  P                     - Pause
  Esc                   - Leave (on game over, paused or before scoring)
  Ctrl+S                - Screenshot
  ?                     - Toggle help
  Q, Ctrl+C             - Quit

Rulesets:
  classic  - Enemy speed +0.3 per level, capped at 3
  turbo    - Enemy speed +0.5 per level, capped at 4

Difficulty presets:
  easy     - Start with 2 shields
  normal   - Default progression
  hard     - Start at level 2 without shields
  fixed    - No speed progression

Examples:
  galaxywars play
  galaxywars play --ruleset turbo
  galaxywars play --difficulty hard --seed 42
  galaxywars play --config ./galaxy.toml`,
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd, windowCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML game config")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
		cmd.Flags().Float64Var(&flagVolume, "volume", audio.DefaultConfig().Volume, "Sound effect volume (0-1)")
	}
	playCmd.Flags().StringVar(&flagRuleset, "ruleset", config.RulesetClassic, "Ruleset: classic or turbo")
	windowCmd.Flags().StringVar(&flagRuleset, "ruleset", config.RulesetClassic, "Ruleset: classic or turbo")
}

// applyGameFlags forwards --config and --difficulty to every game created
// after this call.
func applyGameFlags() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	galaxy.SetConfigPath(flagConfig)
	galaxy.SetDifficultyPreset(flagDifficulty)
	return nil
}

// newGameForRuleset validates the ruleset name and creates its game.
func newGameForRuleset(ruleset string) (*galaxy.Game, error) {
	if _, ok := config.LookupRuleset(ruleset); !ok {
		return nil, fmt.Errorf("unknown ruleset %q (want classic or turbo)", ruleset)
	}
	return galaxy.NewWithRuleset(ruleset), nil
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = seed()
	return cfg
}

// seed returns --seed, or a time based seed when it is unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}
	game, err := newGameForRuleset(flagRuleset)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("galaxywars", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	st, err := openStores(logger)
	if err != nil {
		return err
	}
	defer st.Close()

	sound := startAudio(logger, flagMute)
	if sound != nil {
		defer sound.Close()
	}
	wireGame(game, st, logger, sound)

	if _, err := tui.Run(game, st.scores, terminalConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
