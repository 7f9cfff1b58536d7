package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okatenko/catnip/internal/core"
	"github.com/okatenko/catnip/internal/games/catnip"
	"github.com/okatenko/catnip/internal/platform/tui"
	"github.com/okatenko/catnip/internal/registry"
	"github.com/okatenko/catnip/internal/storage"
)

var (
	flagConfig      string
	flagTemperament string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Spend time with the cat",
	Long: `Start the specified mode.

Controls:
  Mouse       - Your hand: move to approach, left-click to pet,
                right-click to throw the selected treat
  Space       - Pet (at the current pointer position)
  T           - Throw treat
  Tab         - Cycle treat type
  P/Esc       - Pause
  R           - Restart (after the cat leaves)
  Q/Ctrl+C    - Quit

Temperament options:
  shy    - Starts skittish, warms up slowly
  normal - Starts at 30% boldness, warms up with affinity
  bold   - Starts confident, almost never hides
  fixed  - No progression, stays at config's initial boldness

Examples:
  catnip play catnip
  catnip play catnip_zen
  catnip play catnip --temperament shy
  catnip play catnip --config ./my-cat.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagTemperament, "temperament", "", "Temperament preset: shy, normal, bold, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'catnip list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and temperament before creation
	catnip.SetConfigPath(flagConfig)
	catnip.SetTemperamentPreset(flagTemperament)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
