package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/galaxy-wars/internal/core"
	"github.com/vovakirdan/galaxy-wars/internal/platform/desktop"
)

var (
	flagCols int
	flagRows int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play Galaxy Wars in a desktop window",
	Long: `Open Galaxy Wars in a resizable desktop window.

The field keeps the terminal's proportions: the window is measured in
cells of 8x16 pixels and the first row holds the HUD.

Controls:
  Left/Right, A/D  - Move
  Space            - Fire
  Enter            - Start / restart
  P                - Pause
  Esc, Q           - Quit

Examples:
  galaxywars window
  galaxywars window --cols 120 --rows 45
  galaxywars window --ruleset turbo`,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagCols, "cols", 100, "Window width in cells")
	windowCmd.Flags().IntVar(&flagRows, "rows", 38, "Window height in cells")
}

func runWindow(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}
	game, err := newGameForRuleset(flagRuleset)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("galaxywars", os.Stderr)
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

	runtime := core.DefaultConfig()
	runtime.ScreenW = flagCols
	runtime.ScreenH = flagRows
	runtime.TickRate = flagFPS
	runtime.Seed = seed()

	host := desktop.New(game, runtime)
	host.SetLogger(logger)
	if st.scores != nil {
		host.SetScoreRecorder(st.scores)
	}

	if err := host.Run("Galaxy Wars"); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
