// jailrun is a terminal game about breaking out of a jail cell, bundled with
// the tap counter and theory room it started from.
//
// Usage:
//
//	jailrun list              - List available games
//	jailrun play <game>       - Play a game
//	jailrun menu              - Start menu to pick games interactively
//	jailrun serve             - Start SSH server for remote play
//	jailrun scores <game>     - Show high scores and runs for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.jailrun/scores.db)
//	--debug         - Verbose logging
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/jailrun/internal/games/clicker"
	_ "github.com/vovakirdan/jailrun/internal/games/jailbreak"
	_ "github.com/vovakirdan/jailrun/internal/games/theory"

	"github.com/vovakirdan/jailrun/internal/telemetry"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagDebug  bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "jailrun",
})

// shutdownTelemetry flushes spans; replaced once tracing is set up.
var shutdownTelemetry = func(context.Context) error { return nil }

func main() {
	err := rootCmd.Execute()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if shutErr := shutdownTelemetry(ctx); shutErr != nil {
		logger.Warn("could not flush traces", "error", shutErr)
	}
	cancel()

	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jailrun",
	Short: "Jail Run - escape the cell before the window closes",
	Long: `Jail Run is a terminal game: you wake up in a cell with thirty seconds
on the clock. Sneak, search for a key, fight if you must, and try the door
before suspicion, injuries or the clock catch up with you.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs

Examples:
  jailrun play jailbreak
  jailrun play jailbreak --difficulty hard --seed 42
  jailrun menu
  jailrun serve --ssh :2222
  jailrun scores jailbreak`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jailrun/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup runs before every command: .env loading, log level and tracing.
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("could not load .env", "error", err)
	}

	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := telemetry.LoadConfig()
	if err != nil {
		return err
	}
	shutdown, err := telemetry.Setup(cmd.Context(), cfg)
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
		return nil
	}
	shutdownTelemetry = shutdown
	logger.Debug("telemetry configured", "enabled", cfg.Enabled)
	return nil
}
