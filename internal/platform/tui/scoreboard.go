package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jailrun/internal/registry"
	"github.com/vovakirdan/jailrun/internal/storage"
)

const maxRows = 100

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardTabStyle   = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// boardView selects what the scoreboard table lists.
type boardView int

const (
	viewScores boardView = iota
	viewRuns
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Toggle   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Toggle, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Toggle, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "scores/runs"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
// It lists either the best scores or the recorded runs of one game.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	view       boardView
	rows       []table.Row
	outcomes   map[string]int
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool // True if user pressed back (not quit)
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

// gameID returns the ID of the selected game, or "" with no games.
func (m ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.gameCursor].ID
}

// columns returns the table columns of the current view.
func (m ScoreboardModel) columns() []table.Column {
	if m.view == viewRuns {
		return []table.Column{
			{Title: "Outcome", Width: 9},
			{Title: "Score", Width: 7},
			{Title: "Secs", Width: 5},
			{Title: "Left", Width: 5},
			{Title: "Keys", Width: 5},
			{Title: "Coin", Width: 5},
			{Title: "Date", Width: 13},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 12},
		{Title: "Date", Width: 20},
	}
}

// createTable creates a table sized to the window for the current view.
func (m ScoreboardModel) createTable() table.Model {
	height := m.height - 10 // title, tabs, summary, help and borders
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload reads the current view of the selected game from the store.
// Storage errors show as an empty board.
func (m *ScoreboardModel) reload() {
	m.rows = nil
	m.outcomes = nil
	id := m.gameID()
	if m.store != nil && id != "" {
		if m.view == viewRuns {
			m.rows = m.runRows(id)
		} else {
			m.rows = m.scoreRows(id)
		}
		if counts, err := m.store.OutcomeCounts(id); err == nil {
			m.outcomes = counts
		}
	}
	m.table.SetRows(m.rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) scoreRows(gameID string) []table.Row {
	scores, err := m.store.TopScores(gameID, maxRows)
	if err != nil {
		return nil
	}
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func (m *ScoreboardModel) runRows(gameID string) []table.Row {
	runs, err := m.store.RecentRuns(gameID, maxRows)
	if err != nil {
		return nil
	}
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			r.Outcome,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Duration),
			fmt.Sprintf("%d", r.TimeLeft),
			fmt.Sprintf("%d", r.Keys),
			fmt.Sprintf("%d", r.Coin),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			m.selectGame(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			m.selectGame(-1)
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			if m.view == viewScores {
				m.view = viewRuns
			} else {
				m.view = viewScores
			}
			m.table = m.createTable()
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(m.rows)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// selectGame moves the game cursor by step, wrapping around.
func (m *ScoreboardModel) selectGame(step int) {
	if len(m.games) == 0 {
		return
	}
	m.gameCursor = (m.gameCursor + step + len(m.games)) % len(m.games)
	m.reload()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "HIGH SCORES"
	if m.view == viewRuns {
		title = "RUN HISTORY"
	}
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = boardTabStyle.Render(g.Title)
		} else {
			tabs[i] = boardDimStyle.Render(" " + g.Title + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n")
	if summary := outcomeSummary(m.outcomes); summary != "" {
		b.WriteString(centerText(boardDimStyle.Render(summary), m.width))
	}
	b.WriteString("\n")

	b.WriteString(centerText(boardFrameStyle.Render(m.tableContent()), m.width))
	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// tableContent renders the table or an empty message.
func (m ScoreboardModel) tableContent() string {
	if len(m.rows) > 0 {
		return m.table.View()
	}
	empty := boardDimStyle.Italic(true).Padding(2, 4)
	if m.view == viewRuns {
		return empty.Render("No runs recorded yet.")
	}
	return empty.Render("No scores recorded yet.\nPlay a game to set a high score!")
}

// outcomeSummary formats outcome counts as "caught 3 · won 1", sorted by name.
func outcomeSummary(counts map[string]int) string {
	if len(counts) == 0 {
		return ""
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s %d", name, counts[name])
	}
	return strings.Join(parts, " · ")
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
