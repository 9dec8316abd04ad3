// Package clicker implements a timed tap counter: tap as many times as
// possible before the clock runs out.
package clicker

import (
	"fmt"

	"github.com/vovakirdan/jailrun/internal/config"
	"github.com/vovakirdan/jailrun/internal/core"
	"github.com/vovakirdan/jailrun/internal/registry"
)

// ID is the registry and score-table identifier of the game.
const ID = "clicker"

var configPath string

var difficultyPreset = config.DifficultyNormal

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

type phase int

const (
	phaseReady phase = iota
	phaseRunning
	phaseOver
)

// Game implements the tap counter.
type Game struct {
	seconds  int // length of a round
	timeLeft int
	taps     int
	best     int
	frames   int
	phase    phase
	paused   bool
	cfgErr   error
	runtime  core.RuntimeConfig
}

// New creates a new tap counter instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Delulu Clicker"
}

// Reset loads the round length and waits for the player to start.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	cc, err := config.LoadClicker(configPath)
	g.cfgErr = err
	config.ApplyClickerPreset(&cc, difficultyPreset)
	g.seconds = cc.Seconds
	g.timeLeft = cc.Seconds
	g.taps = 0
	g.frames = 0
	g.phase = phaseReady
	g.paused = false
}

// ConfigError reports why the configured round length was replaced by the default.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// SetBest sets the stored best score shown in the HUD.
func (g *Game) SetBest(score int) {
	g.best = score
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case phaseReady:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionTap) {
			g.phase = phaseRunning
		}
		return core.StepResult{State: g.State()}
	case phaseOver:
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Taps only count while the clock runs.
	if in.Has(core.ActionTap) {
		g.taps++
	}

	g.frames++
	if g.frames >= g.runtime.FramesPerSecond() {
		g.frames = 0
		g.timeLeft--
		if g.timeLeft <= 0 {
			g.timeLeft = 0
			g.phase = phaseOver
		}
	}

	return core.StepResult{State: g.State()}
}

// Render draws the counter.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	h := dst.Height()
	top := h/2 - 4

	dst.DrawTextCenteredColor(top, "Delulu Clicker", core.ColorMagenta)
	dst.DrawTextCentered(top+1, fmt.Sprintf("Tap SPACE as many times as you can in %ds.", g.seconds))
	dst.DrawTextCenteredColor(top+3, fmt.Sprintf("Time %2ds    Score %d    Best %d", g.timeLeft, g.taps, max(g.best, g.taps)), core.ColorWhite)

	status, c := "READY? Press ENTER", core.ColorYellow
	switch {
	case g.paused:
		status, c = "PAUSED. Press P to resume", core.ColorYellow
	case g.phase == phaseRunning:
		status, c = "GO GO GO", core.ColorGreen
	case g.phase == phaseOver:
		status, c = "TIME! R to play again, B for menu", core.ColorRed
	}
	dst.DrawTextCenteredColor(top+5, status, c)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	gs := core.GameState{
		Score:    g.taps,
		GameOver: g.phase == phaseOver,
		Paused:   g.paused,
		Elapsed:  g.seconds - g.timeLeft,
	}
	if gs.GameOver {
		gs.Outcome = "time"
	}
	return gs
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
