// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris list              - List available modes
//	tetris play [mode]       - Play a mode (default: tetris)
//	tetris menu              - Start menu to pick modes interactively
//	tetris serve             - Start SSH server for remote play
//	tetris scores [mode]     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.tetris/scores.db)
//	--config <path>       - Custom rules YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `A falling-block puzzle game for the terminal.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  tetris play
  tetris play tetris_fixed --difficulty hard
  tetris menu
  tetris serve --ssh :2222 --http :8080
  tetris scores`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the CLI logger. While a TUI owns the terminal, logs go to
// --log-file or nowhere. The returned func closes the log file.
func newLogger(tui bool) (*log.Logger, func()) {
	var out io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case flagLogFile != "":
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			fail("cannot create log directory: %v", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fail("cannot open log file: %v", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case tui:
		out = io.Discard
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fail("invalid log level %q", flagLogLevel)
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           level,
	})
	return logger, closeFn
}

// openStore opens the scores database. Games still work without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// configureGames applies the rule flags and wires high score persistence.
// The scores database is preferred; a plain file per mode is the fallback.
func configureGames(store *storage.Store, logger *log.Logger) {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		fail("%v", err)
	}
	if flagConfig != "" {
		if _, err := config.LoadTetris(flagConfig); err != nil {
			fail("%v", err)
		}
	}

	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(flagDifficulty)
	tetris.SetHighScoreStore(func(gameID string) engine.HighScoreStore {
		if store != nil {
			return &storage.GameHighScore{Store: store, GameID: gameID, Logger: logger}
		}
		return storage.NewFileHighScore(highScoreFile(gameID), logger)
	})
}

// highScoreFile is the fallback high score path for a mode.
func highScoreFile(gameID string) string {
	if gameID == "tetris" {
		return "~/.tetris/highscore.txt"
	}
	return "~/.tetris/highscore_" + gameID + ".txt"
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
