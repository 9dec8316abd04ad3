package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jailrun/internal/config"
	"github.com/vovakirdan/jailrun/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Jail Run controls:
  Enter      - Start the run / take the event
  1 2 3      - Sneak / Search / Fight
  E          - Try the door
  P          - Pause
  R          - Restart (after the run ends)
  B/Esc      - Back
  Q/Ctrl+C   - Quit

Other games:
  Space      - Tap (clicker)
  Up/Down    - Pick evidence (theory)
  + / -      - Upvote / downvote (theory)

Difficulty options:
  easy   - Longer window, fewer events
  normal - Stock rules
  hard   - Shorter window, guards get suspicious faster

Examples:
  jailrun play jailbreak
  jailrun play jailbreak --difficulty hard
  jailrun play jailbreak --seed 42
  jailrun play jailbreak --config ./my-jail.yaml
  jailrun play theory --theory 002`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagTheory, "theory", "", "Theory room to open (theory game)")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'jailrun list' to see available games", gameID)
	}
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	_, err := playChain(gameID, flagConfig, store, runtimeConfig())
	return err
}
