package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jailrun/internal/registry"
	"github.com/vovakirdan/jailrun/internal/storage"
)

var (
	flagClear bool
	flagRuns  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores and the most recent runs for a game.
Without a game, prints a summary of every game played so far.

Examples:
  jailrun scores
  jailrun scores jailbreak
  jailrun scores jailbreak --runs 20
  jailrun scores clicker --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs for the game")
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of recent runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		return printSummary(out, store)
	}

	gameID := args[0]
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w, run 'jailrun list' to see available games", err)
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", game.Title())
		return nil
	}

	return printGame(out, store, gameID, game.Title())
}

// printSummary lists per-game statistics for every game with scores.
func printSummary(out io.Writer, store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(out, "  %-10s  %-6s  %-6s  %-7s  %s\n", "Game", "Games", "Best", "Avg", "Last played")
	fmt.Fprintf(out, "  %-10s  %-6s  %-6s  %-7s  %s\n", "----", "-----", "----", "---", "-----------")
	for _, id := range ids {
		s := all[id]
		fmt.Fprintf(out, "  %-10s  %-6d  %-6d  %-7.1f  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

// printGame prints the board, outcome counts and recent runs of one game.
func printGame(out io.Writer, store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", title)
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintf(out, "\nPlay 'jailrun play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nBest: %d  (%d games, avg %.1f)\n", stats.HighScore, stats.GamesCount, stats.AvgScore)

	counts, err := store.OutcomeCounts(gameID)
	if err != nil {
		return err
	}
	if len(counts) == 0 {
		return nil
	}
	outcomes := make([]string, 0, len(counts))
	for o := range counts {
		outcomes = append(outcomes, o)
	}
	sort.Strings(outcomes)
	fmt.Fprint(out, "Outcomes:")
	for _, o := range outcomes {
		fmt.Fprintf(out, " %s %d", o, counts[o])
	}
	fmt.Fprintln(out)

	if flagRuns <= 0 {
		return nil
	}
	runs, err := store.RecentRuns(gameID, flagRuns)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nRecent runs:\n")
	fmt.Fprintf(out, "  %-8s  %-6s  %-5s  %-5s  %-4s  %-4s  %s\n", "Outcome", "Score", "Secs", "Left", "Keys", "Coin", "Seed")
	for _, r := range runs {
		fmt.Fprintf(out, "  %-8s  %-6d  %-5d  %-5d  %-4d  %-4d  %d\n",
			r.Outcome, r.Score, r.Duration, r.TimeLeft, r.Keys, r.Coin, r.Seed)
	}
	return nil
}
