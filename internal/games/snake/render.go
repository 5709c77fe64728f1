package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	cellWidth = 2 // Terminal columns per grid cell, to keep cells roughly square
	hudHeight = 1
)

// screenSurface draws grid cells into a bordered field on a core.Screen.
// Text coordinates are relative to the HUD line above the field.
type screenSurface struct {
	dst   *core.Screen
	field core.Rect // Border included
	grid  int
}

func (s screenSurface) Clear() {
	s.dst.Fill(s.field.Inset(1), ' ')
}

func (s screenSurface) FillCell(c Cell, color core.Color) {
	if !core.NewRect(0, 0, s.grid, s.grid).Contains(c.X, c.Y) {
		return
	}
	x := s.field.X + 1 + c.X*cellWidth
	y := s.field.Y + 1 + c.Y
	for i := range cellWidth {
		s.dst.SetColored(x+i, y, '█', color)
	}
}

func (s screenSurface) FillText(text string, x, y int) {
	s.dst.DrawTextColored(s.field.X+x, s.field.Y-hudHeight+y, text, core.ColorBrightWhite)
}

// fieldWidth is the screen width needed for the bordered grid.
func (g *Game) fieldWidth() int {
	return g.session.Rules().GridCount*cellWidth + 2
}

// fieldHeight is the screen height needed for the HUD and bordered grid.
func (g *Game) fieldHeight() int {
	return g.session.Rules().GridCount + 2 + hudHeight
}

// fieldRect centers the bordered grid below the HUD.
func (g *Game) fieldRect(dst *core.Screen) core.Rect {
	w, h := g.fieldWidth(), g.fieldHeight()
	x := max(0, (dst.Width()-w)/2)
	y := hudHeight + max(0, (dst.Height()-h)/2)
	return core.NewRect(x, y, w, h-hudHeight)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < g.fieldWidth() || dst.Height() < g.fieldHeight() {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", g.fieldWidth(), g.fieldHeight()))
		return
	}

	field := g.fieldRect(dst)
	dst.DrawBox(field, core.ColorGray)
	g.session.Draw(screenSurface{dst: dst, field: field, grid: g.session.Rules().GridCount})
	g.renderHUD(dst, field)

	// Draw overlays
	switch {
	case g.session.Ended():
		line2 := "Press R to restart"
		if r, ok := g.Result(); ok {
			line2 = fmt.Sprintf("Score %d (%s)  R: restart", r.Score, r.Cause)
		}
		g.renderOverlay(dst, "Game Over", line2)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the status text to the right of the session's score.
func (g *Game) renderHUD(dst *core.Screen, field core.Rect) {
	var parts []string
	if g.highScore > 0 {
		parts = append(parts, fmt.Sprintf("Best: %d", g.highScore))
	}
	fx := g.session.Effects()
	if fx.Speed.Active {
		parts = append(parts, fmt.Sprintf("SPD %d", fx.Speed.Remaining))
	}
	if fx.Invincible.Active {
		parts = append(parts, fmt.Sprintf("INV %d", fx.Invincible.Remaining))
	}
	if len(parts) == 0 {
		return
	}
	hud := strings.Join(parts, "  ")
	x := field.Right() - len(hud)
	dst.DrawTextColored(x, field.Y-hudHeight, hud, core.ColorYellow)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect(core.Clamp((w-boxW)/2, 0, w), core.Clamp((h-boxH)/2, 0, h), boxW, boxH)

	dst.Fill(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
