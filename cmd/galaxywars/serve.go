package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/galaxy-wars/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Galaxy Wars SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the ruleset menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.galaxywars/host_key

Examples:
  galaxywars serve                           # Listen on :23234 with auto-generated key
  galaxywars serve --ssh :2222               # Listen on port 2222
  galaxywars serve --host-key ./my_host_key  # Use specific host key
  galaxywars serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	if flagStore != storeSQLite {
		return fmt.Errorf("serve keeps a shared leaderboard and needs --store sqlite")
	}

	logger, closeLog, err := newLogger("galaxywars-ssh", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Logger:      logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Galaxy Wars SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
