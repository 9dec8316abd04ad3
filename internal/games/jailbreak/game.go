// Package jailbreak adapts the jail run simulation to the game platform.
// The platform steps games at its frame rate; the run advances one
// simulation tick per second of unpaused play.
package jailbreak

import (
	"math/rand"

	"github.com/vovakirdan/jailrun/internal/config"
	"github.com/vovakirdan/jailrun/internal/core"
	"github.com/vovakirdan/jailrun/internal/jail"
	"github.com/vovakirdan/jailrun/internal/registry"
)

// ID is the registry and score-table identifier of the game.
const ID = "jailbreak"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset = config.DifficultyNormal

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to normal.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// Game drives one jail.Simulation from platform frames.
type Game struct {
	sim     *jail.Simulation
	result  jail.Result
	runtime core.RuntimeConfig
	frames  int // frames since the last simulation tick
	paused  bool
	best    int
	cfgErr  error // non-nil when the config file was rejected and defaults are in use
}

// New creates a new jail run instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Jail Run"
}

// Reset loads the rules and builds a fresh simulation in the ready state.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	jc, err := config.LoadJail(configPath)
	g.cfgErr = err
	config.ApplyJailPreset(&jc, difficultyPreset)

	g.sim = jail.New(jc.Rules, jc.Events, rand.New(rand.NewSource(cfg.Seed)))
	g.result = g.sim.Result()
	g.frames = 0
	g.paused = false
}

// ConfigError reports why the configured rules were replaced by defaults.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// SetBest sets the stored best score shown in the HUD.
func (g *Game) SetBest(score int) {
	g.best = score
}

// Step applies this frame's input and advances the clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	state := g.result.State

	if in.Has(core.ActionPause) && state == jail.StateRunning {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// A finished run stays finished until the platform resets the game, so
	// every run gets its own seed and its own saved record.
	if state.Terminal() {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionConfirm) && state == jail.StateReady:
		g.result = g.sim.Start()
		g.frames = 0
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionConfirm):
		g.result = g.sim.ResolveEvent()
	case in.Has(core.ActionSneak):
		g.result = g.sim.Sneak()
	case in.Has(core.ActionSearch):
		g.result = g.sim.Search()
	case in.Has(core.ActionFight):
		g.result = g.sim.Fight()
	case in.Has(core.ActionEscape):
		g.result = g.sim.Escape()
	}

	if g.result.State == jail.StateRunning {
		g.frames++
		if g.frames >= g.runtime.FramesPerSecond() {
			g.frames = 0
			g.result = g.sim.Tick()
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state. The score is the run's xp.
func (g *Game) State() core.GameState {
	gs := core.GameState{
		Score:    g.result.Snapshot.XP,
		GameOver: g.result.State.Terminal(),
		Paused:   g.paused,
	}
	if g.sim != nil {
		gs.Elapsed = g.sim.Ticks()
	}
	if gs.GameOver {
		gs.Outcome = string(g.result.State)
	}
	return gs
}

// RunReport describes the finished run. It reports false while a run is
// still in progress.
func (g *Game) RunReport() (core.RunReport, bool) {
	if !g.result.State.Terminal() {
		return core.RunReport{}, false
	}
	s := g.result.Snapshot
	return core.RunReport{
		Outcome:  string(g.result.State),
		Score:    s.XP,
		Duration: g.sim.Ticks(),
		TimeLeft: s.TimeLeft,
		Keys:     s.Keys,
		Coin:     s.Coin,
	}, true
}

// Result returns the simulation view the game last rendered from.
func (g *Game) Result() jail.Result {
	return g.result
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
