package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okatenko/catnip/internal/config"
	"github.com/okatenko/catnip/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config <mode>",
	Short: "Print the default config for a mode",
	Long: `Print the embedded default YAML configuration for the specified mode.
Redirect it into ~/.catnip/configs/ to customize the cat's behavior.

Examples:
  catnip config catnip
  catnip config catnip > ~/.catnip/configs/catnip.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'catnip list' to see available modes.")
		os.Exit(1)
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: mode %q has no default config\n", gameID)
		os.Exit(1)
	}

	//nolint:errcheck // Writing to stdout
	os.Stdout.Write(data)
}
