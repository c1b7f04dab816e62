package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/galaxy-wars/internal/core"
)

// keySource reports keyboard state for the current tick.
type keySource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	quitKeys  = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// readInput builds the input frame for one tick. Windows report real key
// releases, so movement is read as a level and everything else as an edge.
func readInput(keys keySource) (in core.InputFrame, quit bool) {
	in = core.NewInputFrame()

	if anyKey(keys.JustPressed, quitKeys) {
		return in, true
	}

	left := anyKey(keys.Pressed, leftKeys)
	right := anyKey(keys.Pressed, rightKeys)
	switch {
	case left && !right:
		in.Set(core.ActionLeft)
	case right && !left:
		in.Set(core.ActionRight)
	}

	if keys.JustPressed(ebiten.KeySpace) {
		in.Set(core.ActionFire)
	}
	if keys.JustPressed(ebiten.KeyEnter) {
		in.Set(core.ActionConfirm)
	}
	if keys.JustPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	return in, false
}

func anyKey(f func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if f(k) {
			return true
		}
	}
	return false
}
