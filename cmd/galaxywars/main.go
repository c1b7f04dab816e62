// galaxywars is a Galaxy Wars shooter for the terminal, a desktop window
// and SSH.
//
// Usage:
//
//	galaxywars play              - Play in the terminal
//	galaxywars menu              - Pick a ruleset, view scores, play again
//	galaxywars window            - Play in a desktop window
//	galaxywars serve             - Start SSH server for remote play
//	galaxywars scores [ruleset]  - Show score history
//	galaxywars rules             - Print the effective game config
//	galaxywars list              - List rulesets
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.galaxywars/scores.db)
//	--store <kind>  - Highscore storage: sqlite, gdata or none
//	--log <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagStore   string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "galaxywars",
	Short: "Galaxy Wars - a fixed-shooter in your terminal",
	Long: `Galaxy Wars is a fixed-shooter: hold off descending waves of
Normal, Tank and Kamikaze ships, grab shields and triple shots, and beat
your highscore.

Available commands:
  play     - Play in the terminal
  menu     - Ruleset picker with scoreboard
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View score history
  rules    - Print the effective game config
  list     - List rulesets

Examples:
  galaxywars play
  galaxywars play --ruleset turbo --difficulty hard
  galaxywars window
  galaxywars serve --ssh :2222
  galaxywars scores galaxy_turbo`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.galaxywars/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storeSQLite, "Highscore storage: sqlite, gdata or none")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(listCmd)
}
