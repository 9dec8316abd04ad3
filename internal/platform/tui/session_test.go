package tui

import (
	"io"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jailrun/internal/core"
	"github.com/vovakirdan/jailrun/internal/registry"
)

var (
	registerOnce sync.Once
	lastStub     *stubGame
)

// registerStub makes the stub the only game the picker offers. lastStub is
// the instance most recently built by the registry.
func registerStub() {
	registerOnce.Do(func() {
		registry.Register("stub", func() registry.Game {
			lastStub = &stubGame{}
			return lastStub
		})
	})
}

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	registerStub()
	cfg := core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 60}
	return NewSessionModel(nil, cfg, log.New(io.Discard))
}

// playStub moves the picker onto the stub and starts it.
func playStub(t *testing.T, m SessionModel) SessionModel {
	t.Helper()
	for i, item := range m.menu.items {
		if item.GameID == "stub" {
			m.menu.cursor = i
		}
	}
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.game == nil || m.game.game.ID() != "stub" {
		t.Fatal("enter should start the stub")
	}
	return m
}

func sessionSend(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(t)
	if !strings.Contains(m.View(), "J A I L R U N") {
		t.Fatal("session should open on the menu")
	}

	m = playStub(t, m)
	if m.quitting {
		t.Fatal("starting a game must not end the session")
	}

	m, cmd := sessionSend(t, m, runeKey('b'))
	if m.game != nil {
		t.Fatal("back should return to the menu")
	}
	if m.quitting || cmd != nil {
		t.Error("back should keep the session alive")
	}
	if !strings.Contains(m.View(), "Stub") {
		t.Error("menu should list the registered game again")
	}
}

func TestSessionFollowsRedirect(t *testing.T) {
	m := newTestSession(t)
	m = playStub(t, m)

	first := lastStub
	first.next = "stub"
	first.state = core.GameState{GameOver: true, Outcome: "expired"}
	m, _ = sessionSend(t, m, TickMsg{Loop: m.game.loop})
	if m.game == nil {
		t.Fatal("a finished game with a redirect should start the next game")
	}
	if lastStub == first {
		t.Error("redirect should build a fresh game instance")
	}
}

func TestSessionQuitFromGame(t *testing.T) {
	m := newTestSession(t)
	m = playStub(t, m)

	m, cmd := sessionSend(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q inside a game should end the session")
	}
	if m.View() != "" {
		t.Error("a finished session renders nothing")
	}
}

func TestSessionScoreboardKeyReopensMenu(t *testing.T) {
	m := newTestSession(t)
	m, cmd := sessionSend(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.quitting || cmd != nil || m.game != nil {
		t.Error("tab over SSH should only redraw the menu")
	}
	if m.menu.Done() {
		t.Error("menu should be fresh after tab")
	}
}
