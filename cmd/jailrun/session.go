package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/jailrun/internal/core"
	"github.com/vovakirdan/jailrun/internal/games/clicker"
	"github.com/vovakirdan/jailrun/internal/games/jailbreak"
	"github.com/vovakirdan/jailrun/internal/games/theory"
	"github.com/vovakirdan/jailrun/internal/platform/tui"
	"github.com/vovakirdan/jailrun/internal/registry"
	"github.com/vovakirdan/jailrun/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagTheory     string
)

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		return nil
	}
	theory.SetVoteStore(store)
	return store
}

// configureGame hands the command-line settings to gameID before it is
// created. The custom config path only applies to the game named on the
// command line, so a redirect falls back to the default files.
func configureGame(gameID, configPath string) {
	switch gameID {
	case jailbreak.ID:
		jailbreak.SetConfigPath(configPath)
		jailbreak.SetDifficultyPreset(flagDifficulty)
	case clicker.ID:
		clicker.SetConfigPath(configPath)
		clicker.SetDifficultyPreset(flagDifficulty)
	case theory.ID:
		theory.SetConfigPath(configPath)
		theory.SetTheoryID(flagTheory)
	}
}

// playChain plays gameID and then every game it redirects to.
// It reports whether the player asked to quit the app.
func playChain(gameID, configPath string, store *storage.Store, cfg core.RuntimeConfig) (tui.Exit, error) {
	for {
		configureGame(gameID, configPath)
		game, err := registry.Create(gameID)
		if err != nil {
			return tui.Exit{}, err
		}

		warnConfig(game, cfg)
		logger.Debug("starting game", "game", gameID, "seed", cfg.Seed)
		exit, err := tui.Run(game, store, cfg)
		if err != nil {
			return exit, fmt.Errorf("running %s: %w", gameID, err)
		}
		if exit.StoreErr != nil {
			logger.Warn("could not save results", "game", gameID, "error", exit.StoreErr)
		}
		st := game.State()
		logger.Debug("game finished", "game", gameID, "outcome", st.Outcome, "score", st.Score)

		if exit.Quit || exit.Next == "" || !registry.Exists(exit.Next) {
			return exit, nil
		}
		gameID, configPath = exit.Next, ""
		cfg.Seed = time.Now().UnixNano()
	}
}

// warnConfig loads the game's settings once so a rejected config file is
// reported before the terminal is taken over.
func warnConfig(game registry.Game, cfg core.RuntimeConfig) {
	cr, ok := game.(registry.ConfigReporter)
	if !ok {
		return
	}
	game.Reset(cfg)
	if err := cr.ConfigError(); err != nil {
		logger.Warn("using default settings", "game", game.ID(), "error", err)
	}
}
