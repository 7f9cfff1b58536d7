package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okatenko/catnip/internal/catsim"
	"github.com/okatenko/catnip/internal/registry"
	"github.com/okatenko/catnip/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show best sessions for a mode",
	Long: `Display the top 10 sessions for the specified mode, ranked by
how much the cat ended up liking you.

Examples:
  catnip scores catnip
  catnip scores catnip --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded sessions for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'catnip list' to see available modes.")
		os.Exit(1)
	}

	// Get mode title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearSessions(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing sessions: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all sessions for %s.\n", title)
		return
	}

	// Get top sessions
	sessions, err := store.TopSessions(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	// Display sessions
	fmt.Printf("Best Sessions - %s\n", title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'catnip play %s' to meet the cat!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %-6s  %s\n", "Rank", "Affinity", "Hides", "Stage", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %-6s  %s\n", "----", "--------", "-----", "-----", "----", "----")

	// Print sessions
	for i, entry := range sessions {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		timeStr := fmt.Sprintf("%d:%02d", entry.Duration/60, entry.Duration%60)
		fmt.Printf("  %-4d  %-10d  %-6d  %-8s  %-6s  %s\n",
			i+1, entry.Affinity, entry.Hides, catsim.Stage(entry.Stage), timeStr, dateStr)
	}

	// Show best affinity
	fmt.Println()
	best, err := store.BestAffinity(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
