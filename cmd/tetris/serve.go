package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/api"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagHTTPAddr    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a mode picker menu.
Scores are stored per-server (all users share the same leaderboard).
With --http, a read-only JSON leaderboard is served as well.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tetris/host_key

Examples:
  tetris serve                           # Listen on :23234 with auto-generated key
  tetris serve --ssh :2222               # Listen on port 2222
  tetris serve --host-key ./my_host_key  # Use specific host key
  tetris serve --http :8080              # Also serve /api/scores/tetris

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Leaderboard HTTP address (disabled if empty)")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(false)
	defer closeLog()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Logger:      logger.WithPrefix("tetris-ssh"),
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fail("creating server: %v", err)
	}
	configureGames(server.Store(), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The leaderboard reads through its own connection so it can outlive
	// the SSH server's store during shutdown.
	httpDone := make(chan struct{})
	if flagHTTPAddr != "" {
		scores, err := storage.Open(flagDBPath)
		if err != nil {
			fail("opening scores database: %v", err)
		}
		defer scores.Close()

		httpServer := api.NewServer(flagHTTPAddr, scores, logger.WithPrefix("tetris-http"))
		go func() {
			defer close(httpDone)
			if err := httpServer.Run(ctx); err != nil {
				logger.Error("leaderboard server failed", "err", err)
				stop()
			}
		}()
	} else {
		close(httpDone)
	}

	fmt.Printf("Starting tetris SSH server on %s\n", cfg.Address)
	if _, port, err := net.SplitHostPort(cfg.Address); err == nil {
		fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	}
	if flagHTTPAddr != "" {
		fmt.Printf("Leaderboard on %s (GET /api/scores/tetris)\n", flagHTTPAddr)
	}
	fmt.Println("Press Ctrl+C to stop")

	serveErr := server.ListenAndServe(ctx)
	stop()
	<-httpDone

	if serveErr != nil {
		closeLog()
		fail("server: %v", serveErr)
	}
}
