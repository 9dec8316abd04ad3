package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/jailrun/internal/core"
	"github.com/vovakirdan/jailrun/internal/registry"
	"github.com/vovakirdan/jailrun/internal/storage"
	"github.com/vovakirdan/jailrun/internal/telemetry"
)

// Exit tells the caller how a game session ended.
type Exit struct {
	Quit bool   // the player asked to leave the app, not just the game
	Next string // game to continue with when the finished game redirects
	// StoreErr is the last error from saving results. Saving is best-effort;
	// the game keeps running regardless.
	StoreErr error
}

// Model is the Bubble Tea model for running a single game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	span       trace.Span // open round span, nil between rounds
	loop       uint64
	exit       Exit
	quitOnExit bool // end the program when the player leaves the game
	quitting   bool
	saved      bool // results of the current round are persisted
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil store runs the game without persistence.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		loop:       nextLoop(),
		quitOnExit: true,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.resetGame()
	return tickCmd(m.config.FramesPerSecond(), m.loop)
}

// resetGame resets the game with the current config and hands it the
// stored best score. Games are pointers, so this works from Init.
func (m Model) resetGame() {
	m.game.Reset(m.config)
	bt, ok := m.game.(registry.BestTracker)
	if !ok || m.store == nil {
		return
	}
	if best, err := m.store.HighScore(m.game.ID()); err == nil {
		bt.SetBest(best)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey collects actions for the next tick. Quit and back leave at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.exit.Quit = true
		return m.leave()
	case action == core.ActionBack:
		if r, ok := m.game.(registry.Redirector); ok && m.gameState.GameOver {
			m.exit.Next = r.NextGame()
		}
		return m.leave()
	case action == core.ActionRestart && !m.gameState.GameOver:
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m Model) leave() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.endRound()
	if !m.quitOnExit {
		return m, nil
	}
	return m, tea.Quit
}

// handleResize only resizes the buffer; games lay out from the screen size
// on every render, so a round survives a resize.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	// Restart starts the next round right away instead of parking on the
	// ready screen again.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.resetGame()
		m.saved = false
		m.inputFrame.Clear()
		m.inputFrame.Set(core.ActionConfirm)
	}

	if m.span == nil && !m.saved {
		_, m.span = telemetry.StartRound(context.Background(), m.game.ID(), m.config.Seed)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.saved {
		m.saveResults()
		m.endRound()
		m.saved = true

		// Games that hand the player on do it on the frame they end.
		if r, ok := m.game.(registry.Redirector); ok && r.NextGame() != "" {
			m.exit.Next = r.NextGame()
			return m.leave()
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.FramesPerSecond(), m.loop)
}

// saveResults persists the finished round once: its score for the board
// and, for games that report one, the detailed run.
func (m *Model) saveResults() {
	if m.store == nil {
		return
	}
	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			m.exit.StoreErr = err
		}
	}
	rr, ok := m.game.(registry.RunReporter)
	if !ok {
		return
	}
	report, ok := rr.RunReport()
	if !ok {
		return
	}
	if _, err := m.store.SaveRun(storage.RunRecord{
		GameID:   m.game.ID(),
		Outcome:  report.Outcome,
		Score:    report.Score,
		Duration: report.Duration,
		TimeLeft: report.TimeLeft,
		Keys:     report.Keys,
		Coin:     report.Coin,
		Seed:     m.config.Seed,
	}); err != nil {
		m.exit.StoreErr = err
	}
}

// endRound closes the round span, if one is open.
func (m *Model) endRound() {
	if m.span == nil {
		return
	}
	telemetry.EndRound(m.span, m.game.State())
	m.span = nil
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".jailrun", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Done reports whether the player has left the game.
func (m Model) Done() bool {
	return m.quitting
}

// Exit reports how the session ended. Valid once Done is true.
func (m Model) Exit() Exit {
	return m.exit
}

// Run plays game in the terminal until the player leaves.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (Exit, error) {
	p := tea.NewProgram(
		NewModel(game, store, cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Exit{Quit: true}, err
	}
	m, ok := final.(Model)
	if !ok {
		return Exit{Quit: true}, nil
	}
	m.endRound()
	return m.exit, nil
}
