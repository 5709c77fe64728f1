package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// MenuItem represents a selectable variant in the menu.
type MenuItem struct {
	GameID string
	Title  string
	About  string // One-line summary, empty when the game offers none
	Best   int
}

// describer is implemented by games that can summarize their rules.
type describer interface {
	Description() string
}

// MenuChoice is what the player picked in the edition menu.
type MenuChoice uint8

const (
	MenuPending MenuChoice = iota // Still browsing
	MenuPlay
	MenuScores
	MenuQuit
)

// MenuModel is the Bubble Tea model for the edition picker.
type MenuModel struct {
	items  []MenuItem
	cursor int
	config core.RuntimeConfig // Tracks resizes for the game started next
	keys   *KeyMapper
	choice MenuChoice
}

// NewMenuModel lists the registered editions. Best scores are filled in
// when store is non-nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	infos := registry.List()
	m := MenuModel{
		items:  make([]MenuItem, len(infos)),
		cursor: max(0, len(infos)-1), // The complete edition
		config: cfg,
		keys:   NewKeyMapper(),
	}
	for i, info := range infos {
		item := MenuItem{GameID: info.ID, Title: info.Title}
		if g, err := registry.Create(info.ID); err == nil {
			if d, ok := g.(describer); ok {
				item.About = d.Description()
			}
		}
		if store != nil {
			// Missing scores just leave the column blank
			item.Best, _ = store.HighScore(info.ID)
		}
		m.items[i] = item
	}
	return m
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	case tea.KeyMsg:
		if m.choice != MenuPending {
			return m, nil
		}
		m = m.press(m.keys.MapKeyToMenuAction(msg))
		if m.choice != MenuPending {
			return m, tea.Quit
		}
	}
	return m, nil
}

// press applies one menu action. The cursor wraps at both ends.
func (m MenuModel) press(action MenuAction) MenuModel {
	n := len(m.items)
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.choice = MenuQuit
	case MenuActionScoreboard:
		m.choice = MenuScores
	case MenuActionUp:
		if n > 0 {
			m.cursor = (m.cursor + n - 1) % n
		}
	case MenuActionDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case MenuActionSelect:
		if n > 0 {
			m.choice = MenuPlay
		}
	}
	return m
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuRowStyle    = lipgloss.NewStyle().Width(36).Padding(0, 1)
	menuCursorStyle = menuRowStyle.Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10"))
	menuAboutStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == MenuQuit {
		return ""
	}

	rows := make([]string, 0, len(m.items))
	for i, item := range m.items {
		best := ""
		if item.Best > 0 {
			best = fmt.Sprintf("best %d", item.Best)
		}
		style := menuRowStyle
		if i == m.cursor {
			style = menuCursorStyle
		}
		rows = append(rows, style.Render(fmt.Sprintf("%-22s%12s", item.Title, best)))
	}

	about := ""
	if len(m.items) > 0 {
		about = m.items[m.cursor].About
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		menuTitleStyle.Render("S N A K E"),
		"",
		"Select an edition",
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		menuAboutStyle.Render(about),
		"",
		menuHintStyle.Render("↑/↓: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"),
	)
	w, h := m.config.ScreenW, m.config.ScreenH
	if w <= 0 || h <= 0 {
		return body
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, body)
}

// Choice reports what the player picked and, for MenuPlay, the edition.
func (m MenuModel) Choice() (MenuChoice, string) {
	if m.choice == MenuPlay {
		return m.choice, m.items[m.cursor].GameID
	}
	return m.choice, ""
}

// Config returns the runtime config, resized along with the terminal.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within width.
func centerText(text string, width int) string {
	return centerStyled(lipgloss.NewStyle(), text, width)
}

// centerStyled applies style and centers the result by its visible width.
func centerStyled(style lipgloss.Style, text string, width int) string {
	out := style.Render(text)
	if lipgloss.Width(out) >= width {
		return out
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, out)
}

// MenuResult is the outcome of a standalone menu program.
type MenuResult struct {
	Choice MenuChoice
	GameID string
	Config core.RuntimeConfig
}

// RunMenu shows the edition picker until the player makes a choice.
// Closing the program any other way counts as quitting.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Choice: MenuQuit, Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Choice: MenuQuit, Config: cfg}, nil
	}

	res := MenuResult{Config: m.config}
	res.Choice, res.GameID = m.Choice()
	if res.Choice == MenuPending {
		res.Choice = MenuQuit
	}
	return res, nil
}
