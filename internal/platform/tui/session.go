package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jailrun/internal/core"
	"github.com/vovakirdan/jailrun/internal/registry"
	"github.com/vovakirdan/jailrun/internal/storage"
)

// SessionModel runs the full flow of one SSH session: menu, game, and back.
// A game that redirects when it ends starts the next game directly.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	logger   *log.Logger
	menu     MenuModel
	game     *Model
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		logger: logger,
		menu:   NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	if !m.menu.Done() {
		return m, cmd
	}

	res := m.menu.result()
	m.config = res.Config
	switch {
	case res.Quit:
		m.quitting = true
		return m, tea.Quit
	case res.WantsScoreboard:
		// Scoreboard is not offered over SSH; reopen the menu.
		m.menu = NewMenuModel(m.store, m.config)
		return m, nil
	}
	return m.startGame(res.GameID)
}

// startGame creates gameID and hands the session to it.
func (m SessionModel) startGame(gameID string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(gameID)
	if err != nil {
		m.logger.Error("cannot create game", "game", gameID, "error", err)
		m.menu = NewMenuModel(m.store, m.config)
		return m, nil
	}

	m.logger.Info("game started", "game", gameID)
	m.config.Seed = time.Now().UnixNano()
	gm := NewModel(game, m.store, m.config)
	gm.quitOnExit = false
	m.game = &gm
	cmd := m.game.Init()
	if cr, ok := game.(registry.ConfigReporter); ok && cr.ConfigError() != nil {
		m.logger.Warn("using default settings", "game", gameID, "error", cr.ConfigError())
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = &gm
	}
	if !m.game.Done() {
		return m, cmd
	}

	exit := m.game.Exit()
	st := m.game.gameState
	m.logger.Info("game ended", "game", m.game.game.ID(), "outcome", st.Outcome, "score", st.Score)
	if exit.StoreErr != nil {
		m.logger.Warn("could not save results", "error", exit.StoreErr)
	}
	m.game = nil

	switch {
	case exit.Quit:
		m.quitting = true
		return m, tea.Quit
	case exit.Next != "" && registry.Exists(exit.Next):
		return m.startGame(exit.Next)
	}

	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}
