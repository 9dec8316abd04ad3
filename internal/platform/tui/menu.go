package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jailrun/internal/core"
	"github.com/vovakirdan/jailrun/internal/registry"
	"github.com/vovakirdan/jailrun/internal/storage"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	menuSubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuCursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuBestStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

const menuHelp = "↑/↓ move  •  enter play  •  tab scores  •  q quit"

// MenuItem is one game on the picker.
type MenuItem struct {
	GameID string
	Title  string
	Best   int // 0 when nothing is stored
}

type menuChoice int

const (
	menuBrowsing menuChoice = iota
	menuPlay
	menuScores
	menuQuit
)

// MenuModel is the game picker. It finishes as soon as the player picks
// a game, asks for the scoreboard or quits.
type MenuModel struct {
	items  []MenuItem
	cursor int
	config core.RuntimeConfig
	keys   *KeyMapper
	choice menuChoice
}

// NewMenuModel lists every registered game with its best score from store.
// A nil store shows no scores.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			item.Best, _ = store.HighScore(g.ID)
		}
		items = append(items, item)
	}
	return MenuModel{items: items, config: cfg, keys: NewKeyMapper()}
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			if len(m.items) > 0 {
				return m.finish(menuPlay)
			}
		case MenuActionScoreboard:
			return m.finish(menuScores)
		case MenuActionQuit:
			return m.finish(menuQuit)
		}
	}
	return m, nil
}

func (m MenuModel) finish(c menuChoice) (tea.Model, tea.Cmd) {
	m.choice = c
	return m, tea.Quit
}

// Done reports whether the player has made a choice.
func (m MenuModel) Done() bool {
	return m.choice != menuBrowsing
}

func (m MenuModel) View() string {
	if m.choice == menuQuit {
		return ""
	}
	w := m.config.ScreenW

	lines := []string{
		"",
		centerText(menuTitleStyle.Render("J A I L R U N"), w),
		"",
		centerText(menuSubtitleStyle.Render("Pick your poison"), w),
		"",
	}
	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item.Title)
		}
		if item.Best > 0 {
			line += menuBestStyle.Render(fmt.Sprintf("  best %d", item.Best))
		}
		lines = append(lines, centerText(line, w))
	}
	lines = append(lines, "", centerText(menuSubtitleStyle.Render(menuHelp), w))
	return strings.Join(lines, "\n") + "\n"
}

// Config is the runtime config with the latest window size applied.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads styled text to sit in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult is what the player chose on the picker.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

func (m MenuModel) result() MenuResult {
	res := MenuResult{Config: m.config}
	switch m.choice {
	case menuPlay:
		res.GameID = m.items[m.cursor].GameID
	case menuScores:
		res.WantsScoreboard = true
	default:
		res.Quit = true
	}
	return res
}

// RunMenu shows the picker full screen until the player chooses.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
