package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const (
	minWidthForPanel = 84  // Below this the deaths panel is dropped
	panelWidth       = 22  // Deaths panel, border excluded
	runsToLoad       = 100 // Rows kept per view
)

// boardView selects which runs the table lists.
type boardView int

const (
	viewTop    boardView = iota // Best runs of the selected edition
	viewRecent                  // Latest runs of every edition
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Recent  key.Binding
	Back    key.Binding
	Quit    key.Binding
	Refresh key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Recent, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next},
		{k.Recent, k.Refresh, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		Next:    key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next edition")),
		Prev:    key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev edition")),
		Recent:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "top/recent")),
		Refresh: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	boardBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")).Padding(0, 1)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardModel lists stored runs: the best ones per edition, or the
// latest ones across all editions.
type ScoreboardModel struct {
	editions []registry.GameInfo
	edition  int
	view     boardView
	store    *storage.Store

	runs   []storage.Run
	stats  *storage.GameStats
	deaths []storage.CauseCount

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first edition's best runs.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		editions: registry.List(),
		store:    store,
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

// showPanel reports whether the deaths panel fits next to the table.
func (m ScoreboardModel) showPanel() bool {
	return m.view == viewTop && m.width >= minWidthForPanel
}

// columns depend on the view: recent runs need an edition column.
func (m ScoreboardModel) columns() []table.Column {
	first := table.Column{Title: "#", Width: 4}
	if m.view == viewRecent {
		first = table.Column{Title: "Edition", Width: 16}
	}
	return []table.Column{
		first,
		{Title: "Score", Width: 7},
		{Title: "Length", Width: 7},
		{Title: "Cause", Width: 10},
		{Title: "Ticks", Width: 7},
		{Title: "Date", Width: 13},
	}
}

func (m ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-11)), // Title, tabs, stats and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("10")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// currentID is the selected edition, or "" when none is registered.
func (m ScoreboardModel) currentID() string {
	if len(m.editions) == 0 {
		return ""
	}
	return m.editions[m.edition].ID
}

// reload reads the rows for the current view from the store.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats, m.deaths = nil, nil, nil
	if m.store != nil {
		var err error
		switch m.view {
		case viewRecent:
			m.runs, err = m.store.RecentRuns(runsToLoad)
		default:
			id := m.currentID()
			m.runs, err = m.store.TopScores(id, runsToLoad)
			if err == nil {
				m.stats, err = m.store.GetGameStats(id)
			}
			if err == nil {
				m.deaths, err = m.store.CauseCounts(id)
			}
		}
		if err != nil {
			log.Warn("cannot load scoreboard", "view", m.view, "err", err)
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		first := "#" + strconv.Itoa(i+1)
		if m.view == viewRecent {
			first = r.GameID
		}
		rows[i] = table.Row{
			first,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Length),
			r.Cause,
			strconv.FormatUint(r.Ticks, 10),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetColumns(m.columns())
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		case key.Matches(msg, m.keys.Recent):
			m.view = 1 - m.view
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// step moves the edition cursor, wrapping at both ends. The recent view
// spans every edition, so stepping switches back to the top view.
func (m *ScoreboardModel) step(delta int) {
	if len(m.editions) == 0 {
		return
	}
	n := len(m.editions)
	m.edition = ((m.edition+delta)%n + n) % n
	m.view = viewTop
	m.reload()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "RECENT RUNS"
	if m.view == viewTop {
		title = "HIGH SCORES"
	}

	var b strings.Builder
	b.WriteString(centerStyled(boardTitleStyle, title, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	body := boardBoxStyle.Render(m.tableContent())
	if m.showPanel() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", boardBoxStyle.Width(panelWidth).Render(m.deathsPanel()))
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	b.WriteString("\n")

	if line := m.statsLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(centerStyled(mutedStyle, line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders the edition selector, or "< title >" when it is too wide.
func (m ScoreboardModel) tabs() string {
	parts := make([]string, len(m.editions))
	for i, e := range m.editions {
		if i == m.edition && m.view == viewTop {
			parts[i] = activeTabStyle.Render(e.Title)
		} else {
			parts[i] = tabStyle.Render(e.Title)
		}
	}
	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > m.width-4 && len(m.editions) > 0 {
		line = activeTabStyle.Render(fmt.Sprintf("< %s >", m.editions[m.edition].Title))
	}
	return line
}

func (m ScoreboardModel) tableContent() string {
	if len(m.runs) == 0 {
		return mutedStyle.Italic(true).Padding(2, 4).Render("No runs recorded yet.\nPlay this edition to set a high score!")
	}
	return m.table.View()
}

// deathsPanel lists how runs of the edition ended, most frequent first.
func (m ScoreboardModel) deathsPanel() string {
	var b strings.Builder
	b.WriteString(boardTitleStyle.Render("Deaths"))
	b.WriteString("\n")
	if len(m.deaths) == 0 {
		b.WriteString(mutedStyle.Render("none yet"))
		return b.String()
	}

	for _, c := range m.deaths {
		fmt.Fprintf(&b, "\n%-10s %5d", c.Cause, c.Count)
	}
	return b.String()
}

// statsLine summarizes every stored run of the current edition.
func (m ScoreboardModel) statsLine() string {
	if m.view != viewTop || m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d runs  |  best %d  |  avg %.0f  |  longest %d  |  last played %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.MaxLength,
		m.stats.LastPlayed.Format("Jan 02 15:04"))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
