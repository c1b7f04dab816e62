package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/galaxy-wars/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	Start      key.Binding
	Pause      key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the one-line footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the expanded footer.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire},
		{k.Start, k.Pause, k.Back},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default in-game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// holdWindow is how long a direction stays held after its last key event.
// It has to bridge the gap between terminal auto-repeat events.
const holdWindow = 200 * time.Millisecond

// holdTracker turns key presses and auto-repeats into a held direction.
// Terminals report presses but never releases.
type holdTracker struct {
	window uint64 // ticks
	dir    core.Action
	until  uint64
}

func newHoldTracker(tickRate int) holdTracker {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticks := uint64(time.Duration(tickRate) * holdWindow / time.Second) //#nosec G115 -- tickRate is positive
	return holdTracker{window: max(ticks, 1)}
}

// press holds dir from tick now. The opposite direction is dropped.
func (h *holdTracker) press(dir core.Action, now uint64) {
	h.dir = dir
	h.until = now + h.window
}

// apply sets the held direction on frame if it has not expired by now.
func (h *holdTracker) apply(frame *core.InputFrame, now uint64) {
	if h.dir == core.ActionNone {
		return
	}
	if now >= h.until {
		h.dir = core.ActionNone
		return
	}
	frame.Set(h.dir)
}

func (h *holdTracker) release() {
	h.dir = core.ActionNone
}

// MenuKeyMap defines the menu bindings.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the menu footer.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the expanded menu footer.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
