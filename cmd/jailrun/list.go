package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jailrun/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all registered games.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'jailrun play <id>' to play a game.")
}
