package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sendMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestMenuListsRulesets(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	ids := make(map[string]bool)
	for _, it := range m.items {
		ids[it.GameID] = true
	}
	if !ids["galaxy"] || !ids["galaxy_turbo"] {
		t.Errorf("menu items = %+v", m.items)
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, should not move above the first item", m.cursor)
	}
	for range len(m.items) + 2 {
		m = sendMenu(t, m, keyRunes("j"))
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected last item", m.cursor)
	}

	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil || m.Selected().GameID != m.items[len(m.items)-1].GameID {
		t.Errorf("Selected() = %+v", m.Selected())
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := sendMenu(t, NewMenuModel(nil, testConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m = sendMenu(t, NewMenuModel(nil, testConfig()), keyRunes("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestMenuResize(t *testing.T) {
	m := sendMenu(t, NewMenuModel(nil, testConfig()), tea.WindowSizeMsg{Width: 120, Height: 40})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 2, "abc"},
		{"", 4, "  "},
	}
	for _, tc := range tests {
		if got := centerText(tc.text, tc.width); got != tc.want {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tc.text, tc.width, got, tc.want)
		}
	}
}

func TestSessionFlow(t *testing.T) {
	cfg := testConfig()
	cfg.ScreenW, cfg.ScreenH = 100, 38
	var m tea.Model = NewSessionModel(nil, cfg, nil)

	step := func(msg tea.Msg) SessionModel {
		t.Helper()
		m, _ = m.Update(msg)
		sm, ok := m.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T", m)
		}
		return sm
	}

	sm := step(tea.KeyMsg{Type: tea.KeyEnter})
	if sm.mode != modeGame {
		t.Fatalf("mode = %v, expected game after selecting", sm.mode)
	}
	if sm.game.game.ID() != "galaxy" {
		t.Errorf("game = %q, expected the first ruleset", sm.game.game.ID())
	}

	step(TickMsg{})
	sm = step(tea.KeyMsg{Type: tea.KeyEsc})
	if sm.mode != modeMenu {
		t.Fatalf("mode = %v, esc on the title screen should return to the menu", sm.mode)
	}

	sm = step(tea.KeyMsg{Type: tea.KeyTab})
	if sm.mode != modeScores {
		t.Fatalf("mode = %v, expected scores", sm.mode)
	}
	if sm.View() == "" {
		t.Error("scoreboard view is empty")
	}

	sm = step(tea.KeyMsg{Type: tea.KeyEsc})
	if sm.mode != modeMenu {
		t.Errorf("mode = %v, esc on the scoreboard should return to the menu", sm.mode)
	}

	sm = step(keyRunes("q"))
	if !sm.quitting {
		t.Error("q on the menu should quit the session")
	}
}
