package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkorolev/riverhop/internal/config"
	"github.com/mkorolev/riverhop/internal/game"
	"github.com/mkorolev/riverhop/internal/platform/tui"
	"github.com/mkorolev/riverhop/internal/storage"
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Manage saved replays",
	Long: `List, watch, verify, or delete the replay journals saved after
finished runs.

Examples:
  riverhop replays list
  riverhop replays watch 3
  riverhop replays verify 3
  riverhop replays clear --variant compact`,
}

var replaysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved replays",
	Long: `Show saved replays in an interactive table. Press enter on a row
to watch it, d to delete it, q to exit.`,
	Args: cobra.NoArgs,
	Run:  runReplaysList,
}

var replaysWatchCmd = &cobra.Command{
	Use:   "watch <id>",
	Short: "Watch a saved replay",
	Long: `Play a saved run back tick by tick.

Playback controls:
  Space      - Cycle playback speed (x1, x2, x4, x8)
  P          - Pause/resume
  Q/Esc      - Exit`,
	Args: cobra.ExactArgs(1),
	Run:  runReplaysWatch,
}

var replaysVerifyCmd = &cobra.Command{
	Use:   "verify <id>",
	Short: "Re-fold a replay and check its recorded score",
	Long: `Fold the replay's event journal through the game rules from the
initial board and compare the resulting score against the one recorded
when the run was played. A mismatch means the journal and the board
layout no longer agree.`,
	Args: cobra.ExactArgs(1),
	Run:  runReplaysVerify,
}

var replaysClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete saved replays",
	Long: `Delete all saved replays for the selected variant. Use --all to
delete replays for every variant.`,
	Args: cobra.NoArgs,
	Run:  runReplaysClear,
}

var flagClearAll bool

func init() {
	replaysClearCmd.Flags().BoolVar(&flagClearAll, "all", false, "Delete replays for every variant")

	replaysCmd.AddCommand(replaysListCmd)
	replaysCmd.AddCommand(replaysWatchCmd)
	replaysCmd.AddCommand(replaysVerifyCmd)
	replaysCmd.AddCommand(replaysClearCmd)
}

// openStore opens the replay database or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// parseReplayID parses a replay ID argument or exits.
func parseReplayID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid replay ID %q\n", arg)
		os.Exit(1)
	}
	return id
}

// loadReplayOrExit fetches a replay or exits with a message.
func loadReplayOrExit(store *storage.Store, id int64) (*storage.ReplayEntry, game.Recording) {
	entry, rec, err := store.LoadReplay(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading replay: %v\n", err)
		os.Exit(1)
	}
	if entry == nil {
		fmt.Fprintf(os.Stderr, "Error: replay %d not found\n", id)
		os.Exit(1)
	}
	return entry, rec
}

func runReplaysList(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	height := 24
	if _, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		height = h
	}

	for {
		id, err := tui.RunBrowser(store, flagVariant, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if id < 0 {
			return
		}
		watchReplay(store, id)
	}
}

func runReplaysWatch(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()
	watchReplay(store, parseReplayID(args[0]))
}

// watchReplay plays one stored replay on the local terminal.
func watchReplay(store *storage.Store, id int64) {
	entry, rec := loadReplayOrExit(store, id)

	cfg, err := config.Load(entry.Variant, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunReplay(&cfg, rec, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running replay: %v\n", err)
		os.Exit(1)
	}
}

func runReplaysVerify(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	id := parseReplayID(args[0])
	entry, rec := loadReplayOrExit(store, id)

	cfg, err := config.Load(entry.Variant, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	final := game.Fold(&cfg, rec.Events())

	fmt.Printf("Replay #%d (%s): %d ticks, %d commands\n", entry.ID, entry.Variant, rec.Ticks, len(rec.Commands))
	fmt.Printf("Recorded score: %d\n", entry.Score)
	fmt.Printf("Replayed score: %d\n", final.Score)

	if final.Score != entry.Score {
		fmt.Println("MISMATCH: the journal does not reproduce the recorded run.")
		os.Exit(1)
	}
	fmt.Println("OK: the journal reproduces the recorded run.")
}

func runReplaysClear(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	variant := flagVariant
	if flagClearAll {
		variant = ""
	}

	if err := store.ClearReplays(variant); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing replays: %v\n", err)
		os.Exit(1)
	}

	if variant == "" {
		fmt.Println("All replays deleted.")
	} else {
		fmt.Printf("Replays for variant %q deleted.\n", variant)
	}
}
