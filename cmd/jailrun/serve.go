package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jailrun/internal/games/theory"
	"github.com/vovakirdan/jailrun/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a game picker menu.
Scores and theory votes are stored per server (all users share them).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.jailrun/host_key

Examples:
  jailrun serve                           # Listen on :23234 with auto-generated key
  jailrun serve --ssh :2222               # Listen on port 2222
  jailrun serve --host-key ./my_host_key  # Use specific host key
  jailrun serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Logger = logger.WithPrefix("jailrun-ssh")

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	if store := server.Store(); store != nil {
		theory.SetVoteStore(store)
	}

	logger.Info("connect with: ssh localhost -p <port>", "address", server.Addr())
	return server.ListenAndServe(cmd.Context())
}
