package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reflex/internal/config"
	"github.com/vovakirdan/tui-reflex/internal/core"
	"github.com/vovakirdan/tui-reflex/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagSSHDBPath   string
	flagIdleTimeout int
	flagServeConfig string
	flagServeDiff   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the reflex SSH server",
	Long: `Start an SSH server that lets users connect and play sessions.

Each connection gets its own engine; scores are stored per-server under
the connecting SSH username (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.reflex/host_key

Examples:
  reflex serve                           # Listen on :23235 with auto-generated key
  reflex serve --ssh :2222               # Listen on port 2222
  reflex serve --host-key ./my_host_key  # Use specific host key
  reflex serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.reflex/scores.db", "Path to sessions database")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagServeDiff, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runServe(_ *cobra.Command, _ []string) {
	gameCfg, err := config.LoadReflex(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&gameCfg, config.DifficultyPreset(flagServeDiff))

	runtime := core.DefaultConfig()
	runtime.FPS = flagFPS
	if gameCfg.Clock.TickHz > 0 {
		runtime.TickHz = gameCfg.Clock.TickHz
	}
	if flagTickHz > 0 {
		runtime.TickHz = flagTickHz
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagSSHDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		GameConfig:  gameCfg.Core(),
		Runtime:     runtime,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting reflex SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
