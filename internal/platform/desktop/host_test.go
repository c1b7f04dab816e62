package desktop

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/galaxy-wars/internal/config"
	"github.com/vovakirdan/galaxy-wars/internal/core"
	"github.com/vovakirdan/galaxy-wars/internal/galaxy"
)

// fakeKeys is a scripted keyboard.
type fakeKeys struct {
	held map[ebiten.Key]bool
	just map[ebiten.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{held: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
}

func (f *fakeKeys) Pressed(k ebiten.Key) bool     { return f.held[k] }
func (f *fakeKeys) JustPressed(k ebiten.Key) bool { return f.just[k] }

type memScores struct {
	saved []int
}

func (m *memScores) SaveScore(_ string, score int) (int64, error) {
	m.saved = append(m.saved, score)
	return int64(len(m.saved)), nil
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name string
		held []ebiten.Key
		just []ebiten.Key
		want []core.Action
		quit bool
	}{
		{"idle", nil, nil, nil, false},
		{"left arrow", []ebiten.Key{ebiten.KeyArrowLeft}, nil, []core.Action{core.ActionLeft}, false},
		{"right d", []ebiten.Key{ebiten.KeyD}, nil, []core.Action{core.ActionRight}, false},
		{"both cancel", []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowRight}, nil, nil, false},
		{"fire edge", nil, []ebiten.Key{ebiten.KeySpace}, []core.Action{core.ActionFire}, false},
		{"held space does not fire", []ebiten.Key{ebiten.KeySpace}, nil, nil, false},
		{"enter and pause", nil, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyP}, []core.Action{core.ActionConfirm, core.ActionPause}, false},
		{"escape quits", nil, []ebiten.Key{ebiten.KeyEscape}, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			keys := newFakeKeys()
			for _, k := range tc.held {
				keys.held[k] = true
			}
			for _, k := range tc.just {
				keys.just[k] = true
			}

			in, quit := readInput(keys)
			if quit != tc.quit {
				t.Fatalf("quit = %v, expected %v", quit, tc.quit)
			}
			count := 0
			for _, on := range in.Actions {
				if on {
					count++
				}
			}
			if count != len(tc.want) {
				t.Errorf("actions = %v, expected %v", in.Actions, tc.want)
			}
			for _, a := range tc.want {
				if !in.Has(a) {
					t.Errorf("missing %v", a)
				}
			}
		})
	}
}

func TestCellsFor(t *testing.T) {
	rt := core.DefaultConfig()
	if c, r := cellsFor(800, 608, rt); c != 100 || r != 38 {
		t.Errorf("cellsFor(800, 608) = %d, %d; expected 100, 38", c, r)
	}
	if c, r := cellsFor(805, 620, rt); c != 100 || r != 38 {
		t.Errorf("partial cells should be dropped, got %d, %d", c, r)
	}
}

func TestEnemyColorsDiffer(t *testing.T) {
	seen := map[[3]uint8]galaxy.EnemyKind{}
	for _, k := range []galaxy.EnemyKind{galaxy.EnemyNormal, galaxy.EnemyTank, galaxy.EnemyKamikaze} {
		c := enemyColor(k)
		key := [3]uint8{c.R, c.G, c.B}
		if other, dup := seen[key]; dup {
			t.Errorf("%v and %v share a color", k, other)
		}
		seen[key] = k
	}
}

func TestWithAlphaClamps(t *testing.T) {
	if a := withAlpha(playerColor, 300).A; a != 255 {
		t.Errorf("alpha 300 -> %d, expected 255", a)
	}
	if a := withAlpha(playerColor, -5).A; a != 0 {
		t.Errorf("alpha -5 -> %d, expected 0", a)
	}
}

func newTestHost(t *testing.T) (*Host, *fakeKeys) {
	t.Helper()
	rt := core.DefaultConfig()
	rt.ScreenW, rt.ScreenH = 100, 38
	rt.Seed = 9

	h := New(galaxy.NewWithConfig(config.DefaultGalaxyConfig()), rt)
	keys := newFakeKeys()
	h.keys = keys
	h.game.Reset(rt)
	return h, keys
}

func TestHostRecordsGameOverOnce(t *testing.T) {
	h, keys := newTestHost(t)
	scores := &memScores{}
	h.SetScoreRecorder(scores)

	keys.just[ebiten.KeySpace] = true
	if err := h.Update(); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	keys.just[ebiten.KeySpace] = false

	s := h.game.Session()
	if s.Phase != galaxy.PhasePlaying {
		t.Fatalf("phase = %v, expected playing", s.Phase)
	}
	s.Score = 90
	s.EnemyBullets = append(s.EnemyBullets, galaxy.NewEnemyBullet(s.Player.Center(), s.Config().Weapons))

	for range 3 {
		if err := h.Update(); err != nil {
			t.Fatalf("Update() = %v", err)
		}
	}
	if len(scores.saved) != 1 || scores.saved[0] != 90 {
		t.Errorf("saved = %v, expected [90]", scores.saved)
	}
}

func TestHostQuit(t *testing.T) {
	h, keys := newTestHost(t)
	keys.just[ebiten.KeyQ] = true
	if err := h.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() = %v, expected ebiten.Termination", err)
	}
}

func TestHostLayoutResizesField(t *testing.T) {
	h, _ := newTestHost(t)
	if w, ht := h.WindowSize(); w != 800 || ht != 608 {
		t.Fatalf("WindowSize() = %d, %d", w, ht)
	}

	w, ht := h.Layout(640, 480)
	if w != 640 || ht != 480 {
		t.Errorf("Layout() = %d, %d; expected the outside size", w, ht)
	}
	s := h.game.Session()
	if s.FieldW != 640 || s.FieldH != float64((480/16-1)*16) {
		t.Errorf("field = %vx%v", s.FieldW, s.FieldH)
	}
}
