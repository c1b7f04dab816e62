package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/galaxy-wars/internal/galaxy"
	"github.com/vovakirdan/galaxy-wars/internal/registry"
	"github.com/vovakirdan/galaxy-wars/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show score history for a ruleset",
	Long: `Display the best recorded games and the stored highscore.

The game is a ruleset id from 'galaxywars list' (default: galaxy).
With --store gdata only the highscore is kept.

Examples:
  galaxywars scores
  galaxywars scores galaxy_turbo --limit 20
  galaxywars scores --limit 0
  galaxywars scores galaxy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show (0 = all)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the history and highscore")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "galaxy"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'galaxywars list' to see available rulesets", gameID)
	}

	created, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	game, ok := created.(*galaxy.Game)
	if !ok {
		return fmt.Errorf("game %q keeps no scores", gameID)
	}
	key := game.HighscoreKey()

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

	if flagClear {
		return clearScores(st, gameID, key)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if hs := st.highscore(key); hs != nil {
		if best, err := hs.LoadHighscore(); err == nil {
			fmt.Printf("Highscore: %d\n", best)
		} else {
			fmt.Printf("Highscore: unreadable (%v)\n", err)
		}
	}

	if st.scores == nil {
		return nil
	}

	entries, err := scoreHistory(st.scores, gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'galaxywars play --ruleset %s' to set the first score!\n", game.Ruleset())
		return nil
	}

	fmt.Println()
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range entries {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := st.scores.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Average: %.0f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
	return nil
}

func clearScores(st stores, gameID, key string) error {
	switch {
	case st.scores != nil:
		if err := st.scores.ClearScores(gameID, key); err != nil {
			return err
		}
	case st.gdata != nil:
		if err := st.gdata.Clear(key); err != nil {
			return err
		}
	default:
		return fmt.Errorf("no score storage selected")
	}
	fmt.Printf("Cleared scores for %s.\n", gameID)
	return nil
}

// scoreHistory returns the best limit games, or every game when limit is 0.
func scoreHistory(store *storage.Store, gameID string, limit int) ([]storage.ScoreEntry, error) {
	if limit <= 0 {
		return store.AllScores(gameID)
	}
	return store.TopScores(gameID, limit)
}
