package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/galaxy-wars/internal/core"
)

// palette maps core colors to styles of one renderer. SSH sessions get their
// own renderer so color detection follows the client's terminal.
type palette map[core.Color]lipgloss.Style

func newPalette(r *lipgloss.Renderer) palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := make(palette)
	for c := core.ColorDefault; c <= core.ColorDarkGray; c++ {
		style := r.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		p[c] = style
	}
	return p
}

func (p palette) style(c core.Color) lipgloss.Style {
	if s, ok := p[c]; ok {
		return s
	}
	return p[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string with the default renderer.
func RenderScreen(s *core.Screen) string {
	return newPalette(nil).render(s)
}

// render groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p palette) render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
