// catnip is a terminal cat you can pet, feed and (try to) keep out of
// hiding spots.
//
// Usage:
//
//	catnip list              - List available modes
//	catnip play <mode>       - Spend time with the cat
//	catnip menu              - Start menu to pick a mode interactively
//	catnip serve             - Start SSH server for remote play
//	catnip scores <mode>     - Show best sessions for a mode
//	catnip stats             - Show aggregate play statistics
//	catnip config <mode>     - Print the default config for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible behavior
//	--db <path>     - Set database path (default: ~/.catnip/catnip.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/okatenko/catnip/internal/games/catnip"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catnip",
	Short: "Catnip - A cat that lives in your terminal",
	Long: `Catnip is a terminal pet simulator. A cat wanders your screen,
hides behind furniture, and slowly warms up to you as you pet it
and throw it treats.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View best sessions
  stats    - View aggregate play statistics
  config   - Print the default config for a mode

Examples:
  catnip list
  catnip play catnip
  catnip play catnip_zen
  catnip menu
  catnip serve --ssh :2222
  catnip scores catnip`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.catnip/catnip.db", "Path to sessions database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}
