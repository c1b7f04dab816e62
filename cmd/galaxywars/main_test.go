package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/galaxy-wars/internal/config"
	"github.com/vovakirdan/galaxy-wars/internal/core"
	"github.com/vovakirdan/galaxy-wars/internal/event"
	"github.com/vovakirdan/galaxy-wars/internal/storage"
)

func TestEffectiveConfig(t *testing.T) {
	cfg, err := effectiveConfig("", config.RulesetTurbo, "hard")
	if err != nil {
		t.Fatalf("effectiveConfig() failed: %v", err)
	}
	if cfg.Difficulty.Ruleset != config.RulesetTurbo || cfg.Difficulty.MaxSpeed != 4 {
		t.Errorf("difficulty = %+v, expected the turbo curve", cfg.Difficulty)
	}
	if cfg.Difficulty.StartLevel != 2 || cfg.Player.StartShield != 0 {
		t.Errorf("hard preset not applied: start level %d, shield %d",
			cfg.Difficulty.StartLevel, cfg.Player.StartShield)
	}
}

func TestEffectiveConfigErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	tests := []struct {
		name       string
		path       string
		ruleset    string
		difficulty string
	}{
		{"unknown ruleset", "", "warp", ""},
		{"unknown difficulty", "", config.RulesetClassic, "nightmare"},
		{"missing file", missing, config.RulesetClassic, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := effectiveConfig(tc.path, tc.ruleset, tc.difficulty); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestEffectiveConfigReadsTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galaxy.toml")
	if err := os.WriteFile(path, []byte("[player]\nspeed = 9.0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := effectiveConfig(path, config.RulesetClassic, "")
	if err != nil {
		t.Fatalf("effectiveConfig() failed: %v", err)
	}
	if cfg.Player.Speed != 9 {
		t.Errorf("Player.Speed = %v, expected 9", cfg.Player.Speed)
	}
}

func TestNewGameForRuleset(t *testing.T) {
	g, err := newGameForRuleset(config.RulesetTurbo)
	if err != nil {
		t.Fatalf("newGameForRuleset() failed: %v", err)
	}
	if g.ID() != "galaxy_turbo" {
		t.Errorf("ID() = %q, expected galaxy_turbo", g.ID())
	}
	if _, err := newGameForRuleset("warp"); err == nil {
		t.Error("unknown ruleset should fail")
	}
}

func TestStoresWithoutBackend(t *testing.T) {
	var st stores
	if hs := st.highscore("galaxy_wars_highscore"); hs != nil {
		t.Errorf("highscore() = %v, expected nil without a backend", hs)
	}
	if err := clearScores(st, "galaxy", "galaxy_wars_highscore"); err == nil {
		t.Error("clearScores() without a backend should fail")
	}
}

func openTestStores(t *testing.T) stores {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return stores{scores: store}
}

func TestWireGameUsesStoredHighscore(t *testing.T) {
	st := openTestStores(t)
	if err := st.scores.Highscore("galaxy_wars_turbo_highscore").SaveHighscore(700); err != nil {
		t.Fatalf("SaveHighscore() failed: %v", err)
	}

	g, err := newGameForRuleset(config.RulesetTurbo)
	if err != nil {
		t.Fatalf("newGameForRuleset() failed: %v", err)
	}
	wireGame(g, st, log.New(io.Discard), nil)
	g.Reset(core.DefaultConfig())

	if g.Highscore() != 700 {
		t.Errorf("Highscore() = %d, expected 700", g.Highscore())
	}
}

func TestEventTraceLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	d := event.NewDispatcher()
	d.SubscribeAll(eventTrace{logger: logger})
	d.Dispatch(event.Event{Type: event.LevelCleared, Value: 2})

	if !strings.Contains(buf.String(), "LevelCleared") {
		t.Errorf("log = %q, expected the event type", buf.String())
	}
}

func TestScoreHistory(t *testing.T) {
	st := openTestStores(t)
	for _, score := range []int{10, 30, 20} {
		if _, err := st.scores.SaveScore("galaxy", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	tests := []struct {
		limit int
		want  int
	}{
		{0, 3},
		{2, 2},
		{10, 3},
	}
	for _, tc := range tests {
		entries, err := scoreHistory(st.scores, "galaxy", tc.limit)
		if err != nil {
			t.Fatalf("scoreHistory(%d) failed: %v", tc.limit, err)
		}
		if len(entries) != tc.want {
			t.Errorf("scoreHistory(%d) returned %d games, expected %d", tc.limit, len(entries), tc.want)
		}
		if entries[0].Score != 30 {
			t.Errorf("scoreHistory(%d) best = %d, expected 30", tc.limit, entries[0].Score)
		}
	}
}
