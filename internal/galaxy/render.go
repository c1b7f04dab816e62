package galaxy

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/galaxy-wars/internal/core"
)

// Glyphs used by the ASCII renderer.
const (
	BulletChar      = '|'
	EnemyBulletChar = '!'
	ShieldChar      = 'S'
	FarStarChar     = '.'
	NearStarChar    = '+'
	ShieldPipFull   = '◆'
	ShieldPipEmpty  = '◇'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorDefault)
		return
	}
	if g.session == nil {
		return
	}

	s := g.session
	cw, ch := g.runtime.CellSize()
	v := viewport{cw: float64(cw), ch: float64(ch)}

	g.renderStars(dst, v)
	g.renderExplosions(dst, v)
	if s.Phase != PhaseStart {
		g.renderEnemies(dst, v)
		g.renderProjectiles(dst, v)
		if s.Phase == PhasePlaying {
			g.renderPlayer(dst, v)
		}
	}
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// viewport maps world units to screen cells.
type viewport struct {
	cw, ch float64
}

func (v viewport) cell(p core.Vec2) (int, int) {
	return int(p.X / v.cw), hudRows + int(p.Y/v.ch)
}

// span returns how many cells a world width covers, at least one.
func (v viewport) span(w float64) int {
	return max(int(w/v.cw+0.5), 1)
}

func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	left := fmt.Sprintf("Score: %d  Level: %d  Hi: %d", s.Score, s.Level, s.Highscore)
	dst.DrawTextColored(1, 0, left, core.ColorBrightWhite)

	var right strings.Builder
	if s.Player.TripleShot {
		right.WriteString("TRIPLE SHOT  ")
	}
	for i := range s.Player.MaxShield {
		if i < s.Player.Shield {
			right.WriteRune(ShieldPipFull)
		} else {
			right.WriteRune(ShieldPipEmpty)
		}
	}
	text := right.String()
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(text)-1, 0, text, core.ColorBrightCyan)
}

func (g *Game) renderStars(dst *core.Screen, v viewport) {
	for _, st := range g.session.Stars {
		x, y := v.cell(st.Pos)
		if y < hudRows {
			continue
		}
		if st.Z >= 2 {
			dst.SetColored(x, y, NearStarChar, core.ColorGray)
		} else {
			dst.SetColored(x, y, FarStarChar, core.ColorDarkGray)
		}
	}
}

func (g *Game) renderExplosions(dst *core.Screen, v viewport) {
	for _, ex := range g.session.Explosions {
		for _, p := range ex.Particles {
			x, y := v.cell(p.Pos)
			if y < hudRows {
				continue
			}
			switch {
			case p.Alpha > 170:
				dst.SetColored(x, y, '*', core.ColorBrightYellow)
			case p.Alpha > 85:
				dst.SetColored(x, y, '+', core.ColorOrange)
			default:
				dst.SetColored(x, y, '.', core.ColorRed)
			}
		}
	}
}

// enemySprite returns a glyph string of exactly n runes.
func enemySprite(e *Enemy, n int) (string, core.Color) {
	var body string
	var c core.Color
	switch e.Kind {
	case EnemyTank:
		body, c = fmt.Sprintf("[%d]", e.Health), core.ColorYellow
	case EnemyKamikaze:
		body, c = "\\V/", core.ColorMagenta
	default:
		body, c = "<o>", core.ColorRed
		if e.Zigzag {
			c = core.ColorBrightRed
		}
	}
	return fitSprite(body, '=', n), c
}

// fitSprite centers body in n runes, padding with fill or trimming the ends.
func fitSprite(body string, fill rune, n int) string {
	runes := []rune(body)
	if len(runes) >= n {
		start := (len(runes) - n) / 2
		return string(runes[start : start+n])
	}
	pad := n - len(runes)
	left := strings.Repeat(string(fill), pad/2)
	right := strings.Repeat(string(fill), pad-pad/2)
	return left + body + right
}

func (g *Game) renderEnemies(dst *core.Screen, v viewport) {
	for _, e := range g.session.Enemies {
		n := v.span(e.W)
		sprite, c := enemySprite(e, n)
		x, _ := v.cell(e.Pos)
		_, y := v.cell(e.Center())
		if y < hudRows {
			continue
		}
		dst.DrawTextColored(x, y, sprite, c)
	}
}

func (g *Game) renderProjectiles(dst *core.Screen, v viewport) {
	s := g.session
	for _, b := range s.Bullets {
		x, y := v.cell(b.Pos)
		if y >= hudRows {
			dst.SetColored(x, y, BulletChar, core.ColorBrightYellow)
		}
	}
	for _, b := range s.EnemyBullets {
		x, y := v.cell(b.Pos)
		if y >= hudRows {
			dst.SetColored(x, y, EnemyBulletChar, core.ColorWhite)
		}
	}
	for _, u := range s.PowerUps {
		x, y := v.cell(u.Pos)
		if y >= hudRows {
			dst.SetColored(x, y, ShieldChar, core.ColorGreen)
		}
	}
}

func (g *Game) renderPlayer(dst *core.Screen, v viewport) {
	p := g.session.Player
	n := v.span(p.W)
	sprite := fitSprite("^", '=', n)
	x, _ := v.cell(p.Pos)
	_, y := v.cell(p.Center())

	c := core.ColorCyan
	if p.Shield > 0 {
		c = core.ColorBrightCyan
	}
	dst.DrawTextColored(x, y, sprite, c)
	if p.Shield > 0 {
		dst.SetColored(x-1, y, '(', core.ColorGreen)
		dst.SetColored(x+n, y, ')', core.ColorGreen)
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	s := g.session
	switch {
	case s.Phase == PhaseStart:
		g.drawCenteredBox(dst, "GALAXY WARS", "Press SPACE to begin")
	case s.Phase == PhaseGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press SPACE to restart", s.Score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	case s.Paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleW := utf8.RuneCountInString(title)
	subtitleW := utf8.RuneCountInString(subtitle)
	boxW := core.Max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorBrightWhite)

	dst.DrawTextColored(boxX+(boxW-titleW)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextColored(boxX+(boxW-subtitleW)/2, boxY+3, subtitle, core.ColorDefault)
}
