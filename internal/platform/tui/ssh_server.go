package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.snake/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Difficulty is the preset highlighted when a player picks a game.
	Difficulty config.DifficultyPreset
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.snake/scores.db",
		IdleTimeout: 30 * time.Minute,
		Difficulty:  config.DifficultyNormal,
	}
}

// SSHServer serves the game to SSH clients with Wish. All clients share one
// score database.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.WithPrefix("ssh")

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".snake", "host_key")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
		Seed:    time.Now().UnixNano(),
	}
	painter := NewPainter(bubbletea.MakeRenderer(sess))

	return NewSessionModel(s.store, cfg, s.config.Difficulty, painter), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// ListenAndServe starts the SSH server and blocks until interrupted.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-done:
	case err := <-errc:
		s.logger.Error("server error", "err", err)
		s.closeStore()
		return err
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionStage is the screen a session model is showing.
type sessionStage int

const (
	stageMenu sessionStage = iota
	stageDifficulty
	stageScores
	stageGame
)

// SessionModel runs the whole flow for one client: menu, difficulty,
// game, and back. Child models signal through their state, and the quit
// commands they return are swallowed so only an explicit quit ends the
// connection.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	painter    *Painter
	preset     config.DifficultyPreset
	stage      sessionStage
	gameID     string
	menu       MenuModel
	difficulty DifficultyModel
	scores     ScoreboardModel
	game       Model
	quitting   bool
}

// NewSessionModel creates a session starting at the menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset, painter *Painter) SessionModel {
	if painter == nil {
		painter = defaultPainter
	}
	return SessionModel{
		store:   store,
		config:  cfg,
		painter: painter,
		preset:  preset,
		menu:    NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the current stage.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.stage {
	case stageDifficulty:
		return m.updateDifficulty(msg)
	case stageScores:
		return m.updateScores(msg)
	case stageGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.stage = stageMenu
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	choice, gameID := m.menu.Choice()
	switch choice {
	case MenuQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuScores:
		m.stage = stageScores
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()
	case MenuPlay:
		m.gameID = gameID
		m.stage = stageDifficulty
		title := m.gameID
		if g, err := registry.Create(m.gameID); err == nil {
			title = g.Title()
		}
		m.difficulty = NewDifficultyModel(title, m.preset, m.config.ScreenW, m.config.ScreenH)
		return m, m.difficulty.Init()
	}
	return m, cmd
}

func (m SessionModel) updateDifficulty(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.difficulty.Update(msg)
	if d, ok := next.(DifficultyModel); ok {
		m.difficulty = d
	}

	if m.difficulty.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.difficulty.WantsBack() {
		return m.toMenu()
	}
	preset, chosen := m.difficulty.Selected()
	if !chosen {
		return m, cmd
	}

	game, err := registry.Create(m.gameID)
	if err != nil {
		return m.toMenu()
	}
	ApplyPreset(game, preset)
	m.preset = preset

	m.config.Seed = time.Now().UnixNano()
	m.game = NewModel(game, m.store, m.config).WithPainter(m.painter)
	m.game.embedded = true
	m.stage = stageGame
	return m, m.game.Init()
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scores = sb
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if g, ok := next.(Model); ok {
		m.game = g
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		return m.toMenu()
	}
	return m, cmd
}

// View renders the current stage.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.stage {
	case stageDifficulty:
		return m.difficulty.View()
	case stageScores:
		return m.scores.View()
	case stageGame:
		return m.game.View()
	default:
		return m.menu.View()
	}
}

// presetUser is implemented by games that accept a difficulty preset.
type presetUser interface {
	UsePreset(config.DifficultyPreset)
}

// ApplyPreset hands preset to game when it supports presets.
func ApplyPreset(game registry.Game, preset config.DifficultyPreset) {
	if p, ok := game.(presetUser); ok {
		p.UsePreset(preset)
	}
}
