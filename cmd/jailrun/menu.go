package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jailrun/internal/config"
	"github.com/vovakirdan/jailrun/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  jailrun menu
  jailrun menu --fps 30
  jailrun menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		exit, err := playChain(menuResult.GameID, "", store, cfg)
		if err != nil {
			logger.Error("game failed", "game", menuResult.GameID, "error", err)
			continue
		}
		if exit.Quit {
			return nil
		}
	}
}
