// Package tui provides the Bubble Tea integration for jailrun.
// It runs the terminal loop and maps keys to game actions.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// tick loop that produced it, so a model ignores ticks left over from a
// game that was replaced in the same program.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loops atomic.Uint64

// nextLoop returns a fresh tick loop identifier.
func nextLoop() uint64 {
	return loops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends a tick for loop after one
// frame at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
