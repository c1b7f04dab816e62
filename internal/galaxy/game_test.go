package galaxy

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/galaxy-wars/internal/config"
	"github.com/vovakirdan/galaxy-wars/internal/core"
	"github.com/vovakirdan/galaxy-wars/internal/event"
	"github.com/vovakirdan/galaxy-wars/internal/registry"
	"github.com/vovakirdan/galaxy-wars/internal/storage"
)

type memStore struct {
	value   int
	loadErr error
	saves   int
}

func (m *memStore) LoadHighscore() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.value, nil
}

func (m *memStore) SaveHighscore(score int) error {
	m.value = score
	m.saves++
	return nil
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW: 100,
		ScreenH: 38,
		CellW:   core.DefaultCellW,
		CellH:   core.DefaultCellH,
		Seed:    seed,
	}
}

func pressed(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func startedGame(t *testing.T, store HighscoreStore) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultGalaxyConfig())
	g.SetHighscoreStore(store)
	g.Reset(testRuntime(7))
	g.Step(pressed(core.ActionFire))
	if g.Session().Phase != PhasePlaying {
		t.Fatalf("fire on the start screen should start the game, phase = %v", g.Session().Phase)
	}
	return g
}

func TestStartScreenFireDoesNotShoot(t *testing.T) {
	g := NewWithConfig(config.DefaultGalaxyConfig())
	g.Reset(testRuntime(1))
	if g.Session().Phase != PhaseStart {
		t.Fatalf("new game phase = %v, expected start", g.Session().Phase)
	}

	g.Step(pressed(core.ActionFire))
	if len(g.Session().Bullets) != 0 {
		t.Error("the starting press should not fire")
	}
	if !g.LastEvents().Has(event.GameStarted) {
		t.Error("missing GameStarted")
	}

	g.Step(pressed(core.ActionFire))
	if len(g.Session().Bullets) != 1 {
		t.Errorf("bullets = %d, expected 1", len(g.Session().Bullets))
	}
}

func TestUnshieldedHitPersistsHighscore(t *testing.T) {
	store := &memStore{value: 20}
	g := startedGame(t, store)
	s := g.Session()
	if s.Highscore != 20 {
		t.Fatalf("Highscore = %d, expected loaded 20", s.Highscore)
	}

	s.Score = 50
	s.EnemyBullets = append(s.EnemyBullets, enemyBulletAt(s.Player.Center()))
	res := g.Step(core.NewInputFrame())

	if !res.State.GameOver {
		t.Fatal("unshielded hit should end the game")
	}
	if store.value != 50 || store.saves != 1 {
		t.Errorf("store = %d after %d saves, expected 50 after 1", store.value, store.saves)
	}
	if g.Highscore() != 50 {
		t.Errorf("Highscore() = %d, expected 50", g.Highscore())
	}
	if !g.LastEvents().Has(event.HighscoreBeaten) {
		t.Error("missing HighscoreBeaten")
	}
}

func TestLowScoreDoesNotSave(t *testing.T) {
	store := &memStore{value: 100}
	g := startedGame(t, store)
	s := g.Session()

	s.Score = 40
	s.EnemyBullets = append(s.EnemyBullets, enemyBulletAt(s.Player.Center()))
	g.Step(core.NewInputFrame())

	if !g.State().GameOver {
		t.Fatal("expected game over")
	}
	if store.saves != 0 || store.value != 100 {
		t.Errorf("store = %d after %d saves, expected untouched", store.value, store.saves)
	}
}

func TestRestartKeepsHighscore(t *testing.T) {
	g := startedGame(t, &memStore{})
	s := g.Session()
	s.Score = 70
	s.EnemyBullets = append(s.EnemyBullets, enemyBulletAt(s.Player.Center()))
	g.Step(core.NewInputFrame())

	g.Step(pressed(core.ActionConfirm))
	next := g.Session()
	if next == s {
		t.Fatal("restart should build a new session")
	}
	if next.Phase != PhasePlaying || next.Score != 0 || next.Level != 1 {
		t.Errorf("restart: phase=%v score=%d level=%d", next.Phase, next.Score, next.Level)
	}
	if next.Highscore != 70 {
		t.Errorf("Highscore = %d, expected 70", next.Highscore)
	}
}

// die ends the game with the given score.
func die(t *testing.T, g *Game, score int) {
	t.Helper()
	s := g.Session()
	s.Player.Shield = 0
	s.Score = score
	s.EnemyBullets = append(s.EnemyBullets, enemyBulletAt(s.Player.Center()))
	g.Step(core.NewInputFrame())
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}
}

func TestSharedStoreKeepsBestOfSessions(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Both sessions start before either has saved anything.
	a := startedGame(t, store.Highscore(HighscoreKey))
	b := startedGame(t, store.Highscore(HighscoreKey))

	die(t, a, 500)
	die(t, b, 300)

	stored, err := store.Highscore(HighscoreKey).LoadHighscore()
	if err != nil {
		t.Fatalf("LoadHighscore() failed: %v", err)
	}
	if stored != 500 {
		t.Errorf("stored highscore = %d, expected 500", stored)
	}
	if b.Highscore() != 500 {
		t.Errorf("second session Highscore() = %d, expected 500", b.Highscore())
	}
	if b.LastEvents().Has(event.HighscoreBeaten) {
		t.Error("300 should not beat a stored 500")
	}
}

func TestRestartReloadsStoredHighscore(t *testing.T) {
	store := &memStore{}
	g := startedGame(t, store)
	die(t, g, 10)

	// Another session raised the stored value meanwhile.
	store.value = 900
	g.Step(pressed(core.ActionConfirm))
	if g.Highscore() != 900 {
		t.Errorf("Highscore() after restart = %d, expected 900", g.Highscore())
	}
}

func TestBeforeResetDoesNotPanic(t *testing.T) {
	g := NewWithConfig(config.DefaultGalaxyConfig())

	res := g.Step(pressed(core.ActionFire))
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("Step() before Reset = %+v", res.State)
	}
	if snap := g.Snapshot(); snap.Tick != 0 || snap.EnemyCount != 0 {
		t.Errorf("Snapshot() before Reset = %+v", snap)
	}
	g.Render(core.NewScreen(100, 38))
}

func TestHighscoreLoadPolicy(t *testing.T) {
	tests := []struct {
		name  string
		store HighscoreStore
		want  int
	}{
		{"no store", nil, 0},
		{"stored", &memStore{value: 500}, 500},
		{"read error", &memStore{value: 500, loadErr: errors.New("disk gone")}, 0},
		{"negative", &memStore{value: -3}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithConfig(config.DefaultGalaxyConfig())
			g.SetHighscoreStore(tc.store)
			g.Reset(testRuntime(1))
			if got := g.Highscore(); got != tc.want {
				t.Errorf("Highscore() = %d, expected %d", got, tc.want)
			}
		})
	}
}

func TestHighscoreKeyFor(t *testing.T) {
	if HighscoreKeyFor(config.RulesetClassic) != "galaxy_wars_highscore" {
		t.Errorf("classic key = %q", HighscoreKeyFor(config.RulesetClassic))
	}
	if HighscoreKeyFor(config.RulesetTurbo) == HighscoreKeyFor(config.RulesetClassic) {
		t.Error("rulesets should not share a highscore key")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := startedGame(t, nil)
	g.Step(core.NewInputFrame())
	tick := g.Session().Tick

	g.Step(pressed(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	for range 10 {
		g.Step(pressed(core.ActionLeft))
	}
	if g.Session().Tick != tick {
		t.Errorf("Tick advanced while paused: %d -> %d", tick, g.Session().Tick)
	}

	g.Step(pressed(core.ActionPause))
	if g.State().Paused || g.Session().Tick != tick+1 {
		t.Errorf("unpause: paused=%v tick=%d", g.State().Paused, g.Session().Tick)
	}
}

func TestResizeKeepsSession(t *testing.T) {
	g := startedGame(t, nil)
	s := g.Session()
	s.Score = 40

	g.Resize(60, 20)
	if g.Session() != s || s.Score != 40 {
		t.Fatal("resize should not restart the game")
	}
	if s.FieldW != 60*core.DefaultCellW || s.FieldH != 19*core.DefaultCellH {
		t.Errorf("field = %vx%v", s.FieldW, s.FieldH)
	}
	wantY := s.FieldH - s.Player.H - config.DefaultGalaxyConfig().Player.BottomMargin
	if s.Player.Pos.Y != wantY {
		t.Errorf("player Y = %v, expected %v", s.Player.Pos.Y, wantY)
	}
	if s.Player.Pos.X+s.Player.W > s.FieldW {
		t.Errorf("player X = %v outside the field", s.Player.Pos.X)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := NewWithConfig(config.DefaultGalaxyConfig())
		g.Reset(testRuntime(12345))
		for i := 0; i < 900; i++ {
			in := core.NewInputFrame()
			switch {
			case i%7 == 0:
				in.Set(core.ActionFire)
			case i%120 < 60:
				in.Set(core.ActionLeft)
			default:
				in.Set(core.ActionRight)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick == 0 {
		t.Error("simulation never ran")
	}
}

func TestRosterNeverGrowsWithinWave(t *testing.T) {
	g := startedGame(t, nil)
	s := g.Session()
	s.Player.Shield = s.Player.MaxShield

	level, count := s.Level, len(s.Enemies)
	for i := 0; i < 3000 && s.Phase == PhasePlaying; i++ {
		in := core.NewInputFrame()
		if i%5 == 0 {
			in.Set(core.ActionFire)
		}
		if i%200 < 100 {
			in.Set(core.ActionLeft)
		} else {
			in.Set(core.ActionRight)
		}
		g.Step(in)

		if s.Level != level {
			level, count = s.Level, len(s.Enemies)
			continue
		}
		if len(s.Enemies) > count {
			t.Fatalf("tick %d: roster grew from %d to %d", s.Tick, count, len(s.Enemies))
		}
		count = len(s.Enemies)
	}
}

func TestEventsReachDispatcher(t *testing.T) {
	g := NewWithConfig(config.DefaultGalaxyConfig())
	var shots, starts int
	g.Events().Subscribe(event.ShotFired, event.ListenerFunc(func(event.Event) { shots++ }))
	g.Events().Subscribe(event.GameStarted, event.ListenerFunc(func(event.Event) { starts++ }))

	g.Reset(testRuntime(3))
	g.Step(pressed(core.ActionFire))
	g.Step(pressed(core.ActionFire))

	if starts != 1 || shots != 1 {
		t.Errorf("starts=%d shots=%d, expected 1 and 1", starts, shots)
	}
}

func TestRender(t *testing.T) {
	g := NewWithConfig(config.DefaultGalaxyConfig())
	g.Reset(testRuntime(1))
	screen := core.NewScreen(100, 38)

	g.Render(screen)
	if !strings.Contains(screen.String(), "GALAXY WARS") {
		t.Error("start screen should show the title")
	}

	g.Step(pressed(core.ActionConfirm))
	g.Render(screen)
	if !strings.HasPrefix(strings.TrimSpace(screen.Row(0)), "Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(screen.String(), "<o>") {
		t.Error("enemies should be drawn")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := NewWithConfig(config.DefaultGalaxyConfig())
	runtime := testRuntime(1)
	runtime.ScreenW, runtime.ScreenH = 20, 6
	g.Reset(runtime)

	screen := core.NewScreen(20, 6)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small message")
	}
}

func TestFitSprite(t *testing.T) {
	tests := []struct {
		body string
		n    int
		want string
	}{
		{"<o>", 5, "=<o>="},
		{"<o>", 3, "<o>"},
		{"<o>", 1, "o"},
		{"^", 6, "==^==="},
	}
	for _, tc := range tests {
		if got := fitSprite(tc.body, '=', tc.n); got != tc.want {
			t.Errorf("fitSprite(%q, %d) = %q, expected %q", tc.body, tc.n, got, tc.want)
		}
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"galaxy", "galaxy_turbo"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}
