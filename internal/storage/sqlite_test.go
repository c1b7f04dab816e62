package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its parent were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("galaxy", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("galaxy_turbo", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("galaxy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}

	turbo, err := store.TopScores("galaxy_turbo", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(turbo) != 1 || turbo[0].Score != 500 {
		t.Errorf("turbo scores = %+v, expected one 500", turbo)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		if _, err := store.SaveScore("galaxy", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("galaxy", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("Expected highest score to be 190, got %d", scores[0].Score)
	}

	all, err := store.AllScores("galaxy")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(all))
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("galaxy")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty history, got %d", best)
	}

	store.SaveScore("galaxy", 100)
	store.SaveScore("galaxy", 300)
	store.SaveScore("galaxy", 200)

	best, err = store.BestScore("galaxy")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best score 300, got %d", best)
	}
}

func TestHighscoreRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	hs := store.Highscore("galaxy_wars_highscore")

	v, err := hs.LoadHighscore()
	if err != nil || v != 0 {
		t.Fatalf("LoadHighscore() with no prior save = %d, %v; expected 0, nil", v, err)
	}
	if err := hs.SaveHighscore(500); err != nil {
		t.Fatalf("SaveHighscore() failed: %v", err)
	}
	store.Close()

	// A fresh session reads what the previous one wrote.
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	v, err = store.Highscore("galaxy_wars_highscore").LoadHighscore()
	if err != nil {
		t.Fatalf("LoadHighscore() failed: %v", err)
	}
	if v != 500 {
		t.Errorf("LoadHighscore() = %d, expected 500", v)
	}
}

func TestRaiseIntKeepsHigherValue(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		write int
		want  int
	}{
		{100, 100},
		{300, 300},
		{200, 300},
		{300, 300},
		{301, 301},
	}
	for _, tc := range tests {
		if err := store.RaiseInt("k", tc.write); err != nil {
			t.Fatalf("RaiseInt(%d) failed: %v", tc.write, err)
		}
		v, ok, err := store.GetInt("k")
		if err != nil || !ok || v != tc.want {
			t.Errorf("after RaiseInt(%d): GetInt() = %d, %v, %v; expected %d, true, nil", tc.write, v, ok, err, tc.want)
		}
	}
	if _, ok, _ := store.GetInt("missing"); ok {
		t.Error("GetInt() of a missing key should report !ok")
	}
}

func TestHighscoreSharedBySessions(t *testing.T) {
	store := openTestStore(t)

	// Two sessions loaded the same old value; the lower save lands last.
	first := store.Highscore("galaxy_wars_highscore")
	second := store.Highscore("galaxy_wars_highscore")
	if err := first.SaveHighscore(500); err != nil {
		t.Fatalf("SaveHighscore() failed: %v", err)
	}
	if err := second.SaveHighscore(300); err != nil {
		t.Fatalf("SaveHighscore() failed: %v", err)
	}

	if v, _ := second.LoadHighscore(); v != 500 {
		t.Errorf("stored highscore = %d, expected 500", v)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("galaxy", 100)
	store.SaveScore("galaxy_turbo", 200)
	store.Highscore("galaxy_wars_highscore").SaveHighscore(100)

	if err := store.ClearScores("galaxy", "galaxy_wars_highscore"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("galaxy", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if v, _ := store.Highscore("galaxy_wars_highscore").LoadHighscore(); v != 0 {
		t.Errorf("highscore after clear = %d, expected 0", v)
	}

	// Other ruleset unaffected
	turbo, _ := store.TopScores("galaxy_turbo", 10)
	if len(turbo) != 1 {
		t.Errorf("Expected 1 turbo score, got %d", len(turbo))
	}
}

func TestGetGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("galaxy", 100)
	store.SaveScore("galaxy", 300)

	stats, err := store.GetGameStats("galaxy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}

	empty, err := store.GetGameStats("galaxy_turbo")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := expandHome("~/.galaxywars/scores.db")
	if err != nil {
		t.Fatalf("expandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".galaxywars", "scores.db"); got != want {
		t.Errorf("expandHome() = %q, expected %q", got, want)
	}

	if got, _ := expandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}
