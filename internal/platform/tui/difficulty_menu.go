package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// difficultyOption is one row of the difficulty picker.
type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyEasy, "Easy    slower start, fewer obstacles"},
	{config.DifficultyNormal, "Normal  speeds up as you score"},
	{config.DifficultyHard, "Hard    fast start, more obstacles"},
	{config.DifficultyFixed, "Fixed   constant speed"},
}

// DifficultyModel lets users pick a difficulty preset before a run.
type DifficultyModel struct {
	title     string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection config.DifficultyPreset
	choosing  bool
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a picker with initial highlighted.
func NewDifficultyModel(title string, initial config.DifficultyPreset, width, height int) DifficultyModel {
	cursor := 1
	for i, o := range difficultyOptions {
		if o.preset == initial {
			cursor = i
		}
	}
	return DifficultyModel{
		title:     title,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = difficultyOptions[m.cursor].preset
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the difficulty list in the menu's style.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	rows := make([]string, len(difficultyOptions))
	for i, o := range difficultyOptions {
		style := menuRowStyle.Width(44)
		if i == m.cursor {
			style = menuCursorStyle.Width(44)
		}
		rows[i] = style.Render(o.label)
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		menuTitleStyle.Render(strings.ToUpper(m.title)),
		"",
		"Select difficulty",
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		menuHintStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"),
	)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Selected returns the chosen preset, or false while still choosing.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	return m.selection, !m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// RunDifficultySelector runs the picker on its own screen. ok is false when
// the user backed out or quit.
func RunDifficultySelector(title string, initial config.DifficultyPreset, cfg core.RuntimeConfig) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(
		NewDifficultyModel(title, initial, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isModel := finalModel.(DifficultyModel)
	if !isModel || m.IsQuitting() || m.WantsBack() {
		return "", false, nil
	}

	preset, ok = m.Selected()
	return preset, ok, nil
}
