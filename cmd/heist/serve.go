package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-heist/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the heist SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own independent heist. Runs from every
connection are recorded in the same history database, tagged with a
per-connection session ID.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.heist/host_key

Examples:
  heist serve                           # Listen on :23234 with auto-generated key
  heist serve --ssh :2222               # Listen on port 2222
  heist serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagLayout, "layout", "", "Path to a level YAML (default: embedded Vault)")
	serveCmd.Flags().StringVar(&flagBank, "bank", "", "Path to a question bank YAML (default: embedded)")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(flagLogFile, os.Stderr, "heist-ssh")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, newGame, err := loadGame(gameSources{Level: flagLayout, Bank: flagBank}, logger)
	if err != nil {
		logger.Fatal("cannot load game", "error", err)
	}

	serverCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		HoldWindow:  cfg.Input.HoldWindow(),
	}

	server, err := tui.NewSSHServer(serverCfg, newGame, openStore(logger), logger)
	if err != nil {
		logger.Fatal("cannot create server", "error", err)
	}

	fmt.Printf("Starting heist SSH server on %s\n", serverCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
