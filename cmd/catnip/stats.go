package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okatenko/catnip/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate play statistics",
	Long: `Display aggregate statistics across all recorded sessions,
grouped by mode.

Examples:
  catnip stats
  catnip stats --db ./catnip.db`,
	Run: runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Println("Play Statistics")
	fmt.Println()
	fmt.Printf("  %-12s  %-9s  %-9s  %-9s  %-6s  %s\n", "Mode", "Sessions", "Best", "Avg", "Hides", "Last Played")
	fmt.Printf("  %-12s  %-9s  %-9s  %-9s  %-6s  %s\n", "----", "--------", "----", "---", "-----", "-----------")

	for gameID, s := range stats {
		lastPlayed := "-"
		if !s.LastPlayed.IsZero() {
			lastPlayed = s.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-12s  %-9d  %-9d  %-9.1f  %-6d  %s\n",
			gameID, s.GamesCount, s.BestAffinity, s.AvgAffinity, s.TotalHides, lastPlayed)
	}
}
