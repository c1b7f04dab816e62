package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/galaxy-wars/internal/galaxy"
)

// debugGlyphW is the advance of ebitenutil's debug font.
const debugGlyphW = 6

var (
	backgroundColor  = colornames.Black
	playerColor      = colornames.Deepskyblue
	shieldColor      = colornames.Cyan
	bulletColor      = colornames.Yellow
	enemyBulletColor = colornames.Orangered
	hudColor         = colornames.Lightgray
)

// enemyColor returns the fill of an enemy kind.
func enemyColor(k galaxy.EnemyKind) color.RGBA {
	switch k {
	case galaxy.EnemyTank:
		return colornames.Orange
	case galaxy.EnemyKamikaze:
		return colornames.Crimson
	default:
		return colornames.Limegreen
	}
}

// withAlpha scales c by alpha in 0..255.
func withAlpha(c color.RGBA, alpha int) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(max(min(alpha, 255), 0))} //#nosec G115 -- clamped to 0..255
}

// Draw renders the session: HUD row on top, field below it.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	s := h.game.Session()
	if s == nil {
		return
	}
	_, ch := h.runtime.CellSize()
	top := float32(ch)

	drawStars(screen, s, top)
	drawExplosions(screen, s, top)
	drawEnemies(screen, s, top)
	drawProjectiles(screen, s, top)
	drawPlayer(screen, s, top)
	h.drawHUD(screen, s)
	h.drawOverlay(screen, s)
}

func drawStars(dst *ebiten.Image, s *galaxy.Session, top float32) {
	for _, st := range s.Stars {
		size := float32(1)
		if st.Z > 2 {
			size = 2
		}
		c := withAlpha(colornames.White, int(80*st.Z))
		vector.DrawFilledRect(dst, float32(st.Pos.X), top+float32(st.Pos.Y), size, size, c, false)
	}
}

func drawExplosions(dst *ebiten.Image, s *galaxy.Session, top float32) {
	for _, ex := range s.Explosions {
		for _, p := range ex.Particles {
			c := withAlpha(colornames.Orange, p.Alpha)
			vector.DrawFilledCircle(dst, float32(p.Pos.X), top+float32(p.Pos.Y), float32(p.Size)/2, c, true)
		}
	}
}

func drawEnemies(dst *ebiten.Image, s *galaxy.Session, top float32) {
	tank := s.Config().Enemies.Tank.Health
	for _, e := range s.Enemies {
		x, y := float32(e.Pos.X), top+float32(e.Pos.Y)
		w, hh := float32(e.W), float32(e.H)
		vector.DrawFilledRect(dst, x, y, w, hh, enemyColor(e.Kind), true)

		// Armor bar for damaged tanks.
		if e.Kind == galaxy.EnemyTank && e.Health < tank && tank > 0 {
			frac := float32(e.Health) / float32(tank)
			vector.DrawFilledRect(dst, x, y-4, w*frac, 2, colornames.Red, false)
		}
	}
}

func drawProjectiles(dst *ebiten.Image, s *galaxy.Session, top float32) {
	for _, b := range s.Bullets {
		vector.DrawFilledCircle(dst, float32(b.Pos.X), top+float32(b.Pos.Y), float32(b.Radius), bulletColor, true)
	}
	for _, b := range s.EnemyBullets {
		vector.DrawFilledCircle(dst, float32(b.Pos.X), top+float32(b.Pos.Y), float32(b.Radius), enemyBulletColor, true)
	}
	for _, u := range s.PowerUps {
		half := float32(u.HalfSize)
		x, y := float32(u.Pos.X)-half, top+float32(u.Pos.Y)-half
		vector.DrawFilledRect(dst, x, y, 2*half, 2*half, shieldColor, true)
		ebitenutil.DebugPrintAt(dst, "S", int(x+half)-debugGlyphW/2, int(y+half)-8)
	}
}

func drawPlayer(dst *ebiten.Image, s *galaxy.Session, top float32) {
	p := s.Player
	if p == nil || s.Phase == galaxy.PhaseGameOver {
		return
	}
	x, y := float32(p.Pos.X), top+float32(p.Pos.Y)
	w, hh := float32(p.W), float32(p.H)
	vector.DrawFilledRect(dst, x, y, w, hh, playerColor, true)

	if p.Shield > 0 {
		c := p.Center()
		r := w/2 + 6
		vector.StrokeCircle(dst, float32(c.X), top+float32(c.Y), r, float32(p.Shield), shieldColor, true)
	}
}

func (h *Host) drawHUD(dst *ebiten.Image, s *galaxy.Session) {
	line := fmt.Sprintf("Score: %d  Level: %d  Hi: %d  Shield: %d", s.Score, s.Level, s.Highscore, s.Player.Shield)
	if s.Player.TripleShot {
		line += fmt.Sprintf("  TRIPLE SHOT %ds", s.Player.TripleTicks/max(h.runtime.TickRate, 1))
	}
	ebitenutil.DebugPrintAt(dst, line, 4, 0)

	_, ch := h.runtime.CellSize()
	vector.StrokeLine(dst, 0, float32(ch)-1, float32(dst.Bounds().Dx()), float32(ch)-1, 1, hudColor, false)
}

func (h *Host) drawOverlay(dst *ebiten.Image, s *galaxy.Session) {
	var lines []string
	switch {
	case s.Phase == galaxy.PhaseStart:
		lines = []string{"GALAXY WARS", "", "Press SPACE to begin", "Arrows move, SPACE fires, P pauses"}
	case s.Phase == galaxy.PhaseGameOver:
		lines = []string{"GAME OVER", "", fmt.Sprintf("Score: %d", s.Score), "Press SPACE to play again"}
	case s.Paused:
		lines = []string{"PAUSED"}
	default:
		return
	}

	b := dst.Bounds()
	y := b.Dy()/2 - len(lines)*8
	for _, l := range lines {
		x := (b.Dx() - len(l)*debugGlyphW) / 2
		ebitenutil.DebugPrintAt(dst, l, x, y)
		y += 16
	}
}
