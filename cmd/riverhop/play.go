package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkorolev/riverhop/internal/config"
	"github.com/mkorolev/riverhop/internal/platform/tui"
	"github.com/mkorolev/riverhop/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start an interactive game in the local terminal.

Controls:
  Up/W       - Hop forward (doubled while on a log)
  Down/S     - Hop back
  Left/A     - Hop left
  Right/D    - Hop right
  R          - Restart (classic variant only)
  Q/Ctrl+C   - Quit

Finished runs are journaled to the replay database and can be watched
again with 'riverhop replays watch'.

Examples:
  riverhop play
  riverhop play --variant compact
  riverhop play --fps 50
  riverhop play --config ./my-layout.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

var flagFPS int

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Simulation rate in ticks per second (0 = use config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagVariant, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		cfg.Tick.IntervalMS = 1000 / flagFPS
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Get terminal size for the initial screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open replay storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open replay database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.RunGame(&cfg, flagVariant, store, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
