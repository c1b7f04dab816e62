// Package desktop hosts Galaxy Wars in an Ebitengine window. It draws the
// same session the terminal host renders as text, with vector shapes.
package desktop

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/galaxy-wars/internal/core"
	"github.com/vovakirdan/galaxy-wars/internal/galaxy"
)

// ScoreRecorder keeps the history of finished games.
type ScoreRecorder interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Host implements ebiten.Game around a galaxy.Game.
type Host struct {
	game    *galaxy.Game
	runtime core.RuntimeConfig
	keys    keySource
	scores  ScoreRecorder
	logger  *log.Logger

	outsideW, outsideH int
	saved              bool
}

// New creates a host for game. runtime.ScreenW/ScreenH are the window size
// in cells; each cell is CellW x CellH pixels.
func New(game *galaxy.Game, runtime core.RuntimeConfig) *Host {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	return &Host{
		game:    game,
		runtime: runtime,
		keys:    ebitenKeys{},
		logger:  log.New(io.Discard),
	}
}

// SetScoreRecorder records every finished game in r.
func (h *Host) SetScoreRecorder(r ScoreRecorder) {
	h.scores = r
}

// SetLogger sets the logger. Nil keeps the current one.
func (h *Host) SetLogger(l *log.Logger) {
	if l != nil {
		h.logger = l
	}
}

// WindowSize returns the initial window size in pixels.
func (h *Host) WindowSize() (int, int) {
	cw, ch := h.runtime.CellSize()
	return h.runtime.ScreenW * cw, h.runtime.ScreenH * ch
}

// Run opens the window and blocks until it is closed.
func (h *Host) Run(title string) error {
	h.game.Reset(h.runtime)

	w, ht := h.WindowSize()
	ebiten.SetWindowSize(w, ht)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(h.runtime.TickRate)

	return ebiten.RunGame(h)
}

// Update advances the game by one tick.
func (h *Host) Update() error {
	in, quit := readInput(h.keys)
	if quit {
		return ebiten.Termination
	}

	state := h.game.Step(in).State
	if !state.GameOver {
		h.saved = false
	} else if !h.saved {
		h.recordScore(state.Score)
		h.saved = true
	}
	return nil
}

func (h *Host) recordScore(score int) {
	if h.scores == nil || score <= 0 {
		return
	}
	if _, err := h.scores.SaveScore(h.game.ID(), score); err != nil {
		h.logger.Warn("could not record score", "game", h.game.ID(), "error", err)
	}
}

// Layout keeps one logical pixel per screen pixel and resizes the field
// when the window changes.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.outsideW || outsideHeight != h.outsideH {
		h.outsideW, h.outsideH = outsideWidth, outsideHeight
		cols, rows := cellsFor(outsideWidth, outsideHeight, h.runtime)
		h.runtime.ScreenW, h.runtime.ScreenH = cols, rows
		h.game.Resize(cols, rows)
	}
	return outsideWidth, outsideHeight
}

// cellsFor converts a pixel size to whole cells.
func cellsFor(w, h int, runtime core.RuntimeConfig) (int, int) {
	cw, ch := runtime.CellSize()
	return w / cw, h / ch
}
