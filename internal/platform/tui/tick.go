// Package tui runs games in a terminal with Bubble Tea.
// It owns the timer, maps keys to actions and draws screen buffers.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

// TickMsg asks the model to step a game. Ticks scheduled for another game
// instance or an older generation of the same one are dropped.
type TickMsg struct {
	Gen uint64
	At  time.Time

	game registry.Game
}

// tickCmd schedules one tick for game's current generation after delay.
// A non-positive delay fires at once.
func tickCmd(delay time.Duration, game registry.Game) tea.Cmd {
	gen := game.Generation()
	if delay <= 0 {
		return func() tea.Msg {
			return TickMsg{Gen: gen, At: time.Now(), game: game}
		}
	}
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t, game: game}
	})
}

// current reports whether the tick belongs to game's running generation.
func (t TickMsg) current(game registry.Game) bool {
	return t.game == game && t.Gen == game.Generation()
}
