package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/galaxy-wars/internal/galaxy"
	"github.com/vovakirdan/galaxy-wars/internal/platform/tui"
	"github.com/vovakirdan/galaxy-wars/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a ruleset, view scores and play",
	Long: `Start Galaxy Wars in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a ruleset.
Leaving a game with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select ruleset
  Tab          - Scoreboard
  Q            - Quit

Examples:
  galaxywars menu
  galaxywars menu --fps 30
  galaxywars menu --difficulty easy`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
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

	cfg := terminalConfig()
	for {
		result, err := tui.RunMenu(st.scores, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(st.scores, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		if result.GameID == "" {
			return nil
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		g, ok := game.(*galaxy.Game)
		if ok {
			wireGame(g, st, logger, sound)
		}

		cfg.Seed = seed()
		back, err := tui.Run(game, st.scores, cfg, logger)
		if ok && sound != nil {
			sound.Unsubscribe(g.Events())
		}
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !back {
			return nil
		}
	}
}
