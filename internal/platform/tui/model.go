package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	painter    *Painter
	inputFrame *core.InputFrame
	gameState  *core.GameState
	quitting   bool
	runSaved   *bool // Whether the finished run has been stored

	// Inside a session the model hands control back instead of quitting.
	embedded   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	frame := core.NewInputFrame()
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		painter:    defaultPainter,
		inputFrame: &frame,
		gameState:  &core.GameState{},
		runSaved:   new(bool),
	}
}

// Init starts the first run and fires its first tick at once.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.store != nil {
		if best, err := m.store.HighScore(m.game.ID()); err == nil {
			m.game.SetHighScore(best)
		} else {
			log.Warn("cannot load high score", "game", m.game.ID(), "err", err)
		}
	}
	*m.gameState = m.game.State()
	return tickCmd(0, m.game)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey queues input for the next tick. Restart is applied at once
// because the tick loop has stopped when the game is over.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		// Leaving mid-run would throw the run away; require a pause first
		if !m.gameState.GameOver && !m.gameState.Paused {
			return m, nil
		}
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	case action == core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
		restart := core.NewInputFrame()
		restart.Set(core.ActionRestart)
		*m.gameState = m.game.Step(restart).State
		*m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(0, m.game)
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize starts a fresh run sized for the new window. The pending tick
// of the old run is left to expire as stale.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.gameState.GameOver {
		return m, nil
	}

	m.game.Reset(m.config)
	*m.gameState = m.game.State()
	m.inputFrame.Clear()
	return m, tickCmd(0, m.game)
}

// handleTick steps the game and schedules the next tick at the delay the
// game asks for.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !msg.current(m.game) {
		return m, nil
	}

	result := m.game.Step(m.inputFrame.Clone())
	*m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver && !*m.runSaved {
		m.saveRun()
		*m.runSaved = true
	}

	if result.Next <= 0 {
		return m, nil
	}
	return m, tickCmd(result.Next, m.game)
}

// saveRun stores the finished run. Failures are logged; play continues.
func (m Model) saveRun() {
	out, ok := m.game.Outcome()
	if !ok || m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(m.game.ID(), out); err != nil {
		log.Warn("cannot save run", "game", m.game.ID(), "err", err)
		return
	}
	log.Debug("run saved", "game", m.game.ID(), "score", out.Score, "cause", out.Cause, "ticks", out.Ticks)
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("cannot save screenshot", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		log.Warn("cannot save screenshot", "err", err)
		return
	}
	log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.painter.Render(m.screen)
}

// WithPainter returns a copy of the model that draws with p.
func (m Model) WithPainter(p *Painter) Model {
	m.painter = p
	return m
}

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
