// Package theory implements the theory room: players vote evidence up or
// down while a countdown runs. When the clock hits zero the room closes and
// the player is sent to jail.
package theory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/vovakirdan/jailrun/internal/config"
	"github.com/vovakirdan/jailrun/internal/core"
	"github.com/vovakirdan/jailrun/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "theory"

// OutcomeJailed is reported when the countdown expires.
const OutcomeJailed = "jailed"

// VoteStore persists local vote tallies per theory and evidence.
// *storage.Store satisfies it.
type VoteStore interface {
	AddVote(theoryID, evidenceID string, delta int) (int, error)
	Votes(theoryID string) (map[string]int, error)
}

var (
	mu         sync.RWMutex
	configPath string
	theoryID   string
	voteStore  VoteStore
)

// SetConfigPath sets the custom theories file.
func SetConfigPath(path string) {
	mu.Lock()
	defer mu.Unlock()
	configPath = path
}

// SetTheoryID selects the room to open. Empty or unknown ids open the first room.
func SetTheoryID(id string) {
	mu.Lock()
	defer mu.Unlock()
	theoryID = id
}

// SetVoteStore sets where votes are persisted. Without a store votes only
// last for the current room.
func SetVoteStore(s VoteStore) {
	mu.Lock()
	defer mu.Unlock()
	voteStore = s
}

func settings() (string, string, VoteStore) {
	mu.RLock()
	defer mu.RUnlock()
	return configPath, theoryID, voteStore
}

// Game implements the theory room.
type Game struct {
	theory   config.Theory
	local    map[string]int // this player's tally per evidence id
	store    VoteStore
	cursor   int
	cast     int // votes cast this visit
	timeLeft int
	frames   int
	paused   bool
	storeErr error
	cfgErr   error
	runtime  core.RuntimeConfig
}

// New creates a new theory room instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Theory Room"
}

// Reset opens the configured room and loads the saved tallies.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	path, id, store := settings()
	g.runtime = cfg

	tc, err := config.LoadTheories(path)
	g.cfgErr = err
	th, ok := tc.Find(id)
	if !ok {
		th = tc.Theories[0]
	}
	g.theory = th
	g.store = store
	g.local = make(map[string]int)
	g.storeErr = nil
	if store != nil {
		votes, err := store.Votes(th.ID)
		if err != nil {
			g.storeErr = err
		} else {
			g.local = votes
		}
	}

	g.cursor = 0
	g.cast = 0
	g.timeLeft = th.Seconds
	g.frames = 0
	g.paused = false
}

// ConfigError reports why the configured rooms were replaced by the defaults.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// Theory returns the open room.
func (g *Game) Theory() config.Theory {
	return g.theory
}

// Total returns the displayed score of one piece of evidence: its shipped
// tally plus the local votes.
func (g *Game) Total(evidenceID string) int {
	for _, e := range g.theory.Evidence {
		if e.ID == evidenceID {
			return e.Votes + g.local[evidenceID]
		}
	}
	return 0
}

// Step advances the countdown and applies selection and votes.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.timeLeft <= 0 {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	n := len(g.theory.Evidence)
	switch {
	case in.Has(core.ActionUp):
		g.cursor = (g.cursor - 1 + n) % n
	case in.Has(core.ActionDown):
		g.cursor = (g.cursor + 1) % n
	case in.Has(core.ActionUpvote):
		g.vote(1)
	case in.Has(core.ActionDownvote):
		g.vote(-1)
	}

	g.frames++
	if g.frames >= g.runtime.FramesPerSecond() {
		g.frames = 0
		g.timeLeft--
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) vote(delta int) {
	id := g.theory.Evidence[g.cursor].ID
	g.cast++
	if g.store == nil {
		g.local[id] += delta
		return
	}
	count, err := g.store.AddVote(g.theory.ID, id, delta)
	if err != nil {
		// Keep the vote for this visit even if it could not be saved.
		g.storeErr = err
		g.local[id] += delta
		return
	}
	g.local[id] = count
}

// Render draws the room.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w := dst.Width()

	dst.DrawTextColor(2, 0, g.theory.Title, core.ColorBrightYellow)
	clock := fmt.Sprintf("⏳ %ds", max(g.timeLeft, 0))
	dst.DrawTextColor(w-len([]rune(clock))-2, 0, clock, core.ColorWhite)
	dst.DrawHLine(0, 1, w, '─')

	dst.DrawTextColor(2, 3, "Premise", core.ColorGray)
	lines := wrap(g.theory.Premise, w-6)
	for i, line := range lines {
		dst.DrawText(4, 4+i, line)
	}

	y := 5 + len(lines)
	for i, e := range g.theory.Evidence {
		marker, c := "  ", core.ColorDefault
		if i == g.cursor {
			marker, c = "▶ ", core.ColorCyan
		}
		dst.DrawTextColor(2, y, marker+e.Label, c)
		dst.DrawTextColor(6, y+1, fmt.Sprintf("Score: %d", g.Total(e.ID)), core.ColorGray)
		y += 3
	}

	dst.DrawTextColor(2, dst.Height()-1, "↑/↓ select  + upvote  - downvote  P pause  Q quit", core.ColorGray)
	if g.storeErr != nil {
		dst.DrawTextColor(2, dst.Height()-2, "votes are not being saved", core.ColorRed)
	}

	if g.paused {
		dst.DrawTextCenteredColor(y+1, "PAUSED", core.ColorYellow)
	}
	if g.timeLeft <= 0 {
		dst.DrawTextCenteredColor(y+1, "TIME'S UP. The room closes. You're going to jail.", core.ColorRed)
	}
}

// State returns the current game state. The score counts votes cast.
func (g *Game) State() core.GameState {
	gs := core.GameState{
		Score:    g.cast,
		GameOver: g.timeLeft <= 0,
		Paused:   g.paused,
		Elapsed:  g.theory.Seconds - g.timeLeft,
	}
	if gs.GameOver {
		gs.Outcome = OutcomeJailed
	}
	return gs
}

// NextGame sends a player whose room expired to the jail run.
func (g *Game) NextGame() string {
	if g.timeLeft <= 0 {
		return "jailbreak"
	}
	return ""
}

// wrap breaks text into lines of at most width runes on word boundaries.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line []rune
	for _, word := range strings.Fields(text) {
		wr := []rune(word)
		switch {
		case len(line) == 0:
			line = wr
		case len(line)+1+len(wr) <= width:
			line = append(append(line, ' '), wr...)
		default:
			lines = append(lines, string(line))
			line = wr
		}
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
