package galaxy

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/galaxy-wars/internal/config"
)

// HighscoreKey is the persistence key of the classic ruleset.
const HighscoreKey = "galaxy_wars_highscore"

// HighscoreKeyFor returns the persistence key of a ruleset. Each ruleset
// keeps its own best score.
func HighscoreKeyFor(ruleset string) string {
	if ruleset == "" || ruleset == config.RulesetClassic {
		return HighscoreKey
	}
	return "galaxy_wars_" + ruleset + "_highscore"
}

// HighscoreStore persists the best score across sessions.
type HighscoreStore interface {
	// LoadHighscore returns the stored value, or 0 when none was saved.
	LoadHighscore() (int, error)
	SaveHighscore(score int) error
}

// loadHighscore never fails: no store, a read error or a negative value
// all start the session at 0.
func loadHighscore(store HighscoreStore, logger *log.Logger) int {
	if store == nil {
		return 0
	}
	v, err := store.LoadHighscore()
	if err != nil {
		logger.Warn("could not load highscore", "error", err)
		return 0
	}
	if v < 0 {
		logger.Warn("ignoring negative highscore", "value", v)
		return 0
	}
	return v
}

// saveHighscore returns the best score after this game and whether score
// set it. The store is read again first: other sessions sharing it may have
// raised the value since this one loaded it. A failed write keeps the new
// best in memory for the rest of the process.
func saveHighscore(store HighscoreStore, logger *log.Logger, score, best int) (int, bool) {
	best = max(best, loadHighscore(store, logger))
	if score <= best {
		return best, false
	}
	if store != nil {
		if err := store.SaveHighscore(score); err != nil {
			logger.Warn("could not save highscore", "score", score, "error", err)
		}
	}
	return score, true
}
