package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/reversi-tui/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded match results",
	Long: `Display the most recent match results and an overall tally.

Examples:
  reversi history
  reversi history --limit 25
  reversi history --db ./matches.db`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Maximum number of matches to show")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	matches, err := store.RecentMatches(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Match History")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'reversi play' to record the first match!")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-6s  %-10s  %-7s  %-5s  %s\n", "Date", "Mode", "Result", "Score", "Moves", "End")
	fmt.Printf("  %-16s  %-6s  %-10s  %-7s  %-5s  %s\n", "----", "----", "------", "-----", "-----", "---")

	for _, entry := range matches {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		score := fmt.Sprintf("%d-%d", entry.WhiteScore, entry.BlackScore)
		fmt.Printf("  %-16s  %-6s  %-10s  %-7s  %-5d  %s\n",
			dateStr, entry.Mode, entry.Result, score, entry.Moves, entry.EndReason)
	}

	fmt.Println()
	if tally, tallyErr := store.MatchTally(); tallyErr == nil {
		fmt.Printf("Completed: %d  (white: %d, black: %d, draws: %d)\n",
			tally.Total, tally.WhiteWins, tally.BlackWins, tally.Draws)
	}
}
