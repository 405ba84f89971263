// riverhop is a terminal road-and-river crossing game.
//
// Usage:
//
//	riverhop play              - Play in the local terminal
//	riverhop serve             - Start SSH server for remote play
//	riverhop replays list      - List saved replays
//	riverhop replays watch     - Watch a saved replay
//	riverhop replays verify    - Re-fold a replay and check its score
//	riverhop replays clear     - Delete saved replays
//
// Global flags:
//
//	--variant <name>  - Board variant: classic or compact (default: classic)
//	--config <path>   - Path to a custom layout YAML
//	--db <path>       - Replay database path (default: ~/.riverhop/replays.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkorolev/riverhop/internal/config"
)

var (
	// Global flags
	flagVariant string
	flagConfig  string
	flagDBPath  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "riverhop",
	Short: "Riverhop - dodge the cars, ride the logs",
	Long: `Riverhop is a terminal crossing game: hop across five lanes of
traffic, then cross the river on drifting logs to reach the goal.

Available commands:
  play     - Play in the local terminal
  serve    - Start SSH server for remote play
  replays  - List, watch, verify, or delete saved replays

Examples:
  riverhop play
  riverhop play --variant compact
  riverhop play --config ./my-layout.yaml
  riverhop serve --ssh :2222
  riverhop replays list`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagVariant, "variant", config.VariantClassic, "Board variant: classic or compact")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom layout YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.riverhop/replays.db", "Path to replay database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
}
