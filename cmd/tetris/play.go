package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game",
	Long: `Start playing the given mode (default: tetris).

Controls:
  Left/Right, A/D  - Move
  Up/W/X           - Rotate
  Down/S           - Soft drop
  Space            - Hard drop
  P                - Pause
  Esc              - Pause, or leave when paused
  R                - Restart (after game over)
  Ctrl+S           - Screenshot (text + PNG)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start slower (1000ms per row)
  normal - Default speed (800ms per row)
  hard   - Start faster (500ms per row)
  fixed  - No speed-up between levels

Examples:
  tetris play
  tetris play tetris_fixed
  tetris play --difficulty hard
  tetris play --seed 42 --config ./my-rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "tetris"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available modes.")
		os.Exit(1)
	}

	logger, closeLog := newLogger(true)
	defer closeLog()

	store := openStore(logger)
	configureGames(store, logger)

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	logger.Info("game started", "game", gameID)
	runErr := tui.Run(game, store, runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
