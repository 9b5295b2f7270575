package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/reversi-tui/internal/config"
	"github.com/vovakirdan/reversi-tui/internal/core"
	"github.com/vovakirdan/reversi-tui/internal/platform/tui"
	"github.com/vovakirdan/reversi-tui/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a local hot-seat game",
	Long: `Start a local game for two players sharing one keyboard.
White moves first.

Controls:
  Arrows/WASD  - Move cursor
  Enter/Space  - Place a piece (mouse click also works)
  P            - Pass the turn
  N            - New game
  T            - Match history
  Q/Ctrl+C     - Quit

Examples:
  reversi play
  reversi play --config ./my-theme.yaml
  reversi play --db ./matches.db`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// Get terminal size for the initial layout
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	appCfg, err := config.LoadReversi(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cfg, appCfg, store)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
