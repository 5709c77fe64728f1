package snake

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Surface is the rendering target of a session. Cells are grid coordinates;
// text coordinates are up to the surface.
type Surface interface {
	Clear()
	FillCell(c Cell, color core.Color)
	FillText(text string, x, y int)
}

// Entity colors. Each kind of thing on the grid gets its own.
const (
	ColorSnake      = core.ColorBrightGreen
	ColorHead       = core.ColorGreen
	ColorFood       = core.ColorBrightRed
	ColorSpeed      = core.ColorBrightYellow
	ColorInvincible = core.ColorBrightCyan
	ColorObstacle   = core.ColorGray
	ColorParticle   = core.ColorOrange
)

// PowerUpColor returns the draw color for a power-up kind.
func PowerUpColor(k PowerUpKind) core.Color {
	if k == PowerUpInvincible {
		return ColorInvincible
	}
	return ColorSpeed
}

// Draw issues the draw calls for the current state.
func (s *Session) Draw(dst Surface) {
	dst.Clear()

	for _, o := range s.obstacles {
		dst.FillCell(o, ColorObstacle)
	}
	if s.rules.InBounds(s.food) {
		dst.FillCell(s.food, ColorFood)
	}
	for _, p := range s.powerUps {
		dst.FillCell(p.Cell, PowerUpColor(p.Kind))
	}

	// The body is gone once it has exploded.
	if s.phase == PhaseReady || s.phase == PhasePlaying {
		for i := len(s.snake) - 1; i >= 0; i-- {
			color := ColorSnake
			if i == 0 {
				color = ColorHead
			}
			dst.FillCell(s.snake[i], color)
		}
	}

	for _, p := range s.particles {
		dst.FillCell(Cell{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}, ColorParticle)
	}

	dst.FillText(fmt.Sprintf("Score: %d", s.score), 0, 0)
}
