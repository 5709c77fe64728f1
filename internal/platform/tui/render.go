package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Painter turns screen buffers into styled strings for one output.
// SSH sessions each get their own, bound to the client's color profile.
type Painter struct {
	styles map[core.Color]lipgloss.Style
}

// NewPainter builds styles with r, or the default renderer when r is nil.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	colors := core.Colors()
	styles := make(map[core.Color]lipgloss.Style, len(colors))
	for _, c := range colors {
		if code := c.ANSI(); code != "" {
			styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
		} else {
			styles[c] = r.NewStyle()
		}
	}
	return &Painter{styles: styles}
}

var defaultPainter = NewPainter(nil)

// Render converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one escape sequence.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p.styles[color]
			if !ok {
				style = p.styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
