// Package registry lets games announce themselves from init() so the
// platform can list and build them by ID.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/jailrun/internal/core"
)

// Game is the contract between a game and the platform. A game is pure logic:
// the platform owns input mapping, timing and the terminal.
type Game interface {
	// ID names the game on the command line and in score storage.
	ID() string
	Title() string

	// Reset starts the game over. The platform calls it before the first
	// frame and on every restart; cfg carries the screen size and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one platform frame with the actions pressed since the
	// previous one.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which the platform has already cleared.
	Render(dst *core.Screen)

	State() core.GameState
}

// BestTracker is implemented by games that show the player's best score.
// The platform calls SetBest after Reset with the stored high score.
type BestTracker interface {
	SetBest(score int)
}

// RunReporter is implemented by games that produce a detailed run record
// when they end. The platform persists it next to the score.
type RunReporter interface {
	RunReport() (core.RunReport, bool)
}

// Redirector is implemented by games that hand the player to another game
// when they end. NextGame returns the ID to continue with, or "".
type Redirector interface {
	NextGame() string
}

// ConfigReporter is implemented by games that load settings from files.
// ConfigError is the reason the last Reset fell back to defaults, or nil.
type ConfigReporter interface {
	ConfigError() error
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game instance.
type Factory func() Game

type entry struct {
	title string
	build Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game. Registering the same ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: f().Title(), build: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	games := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		games = append(games, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(games, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return games
}

// Create builds a new instance of the game registered as id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.build(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
