package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-reflex/internal/config"
	"github.com/vovakirdan/tui-reflex/internal/core"
	"github.com/vovakirdan/tui-reflex/internal/platform/tui"
	"github.com/vovakirdan/tui-reflex/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a timed reaction session.

Controls:
  1-7        - Press the matching segment button
  P/Space    - Pause
  R          - Restart
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Longer round deadlines
  normal - Stock deadlines
  hard   - Shorter round deadlines
  fixed  - No progression, stays at the first tier

Examples:
  reflex play
  reflex play --difficulty easy
  reflex play --config ./my-reflex.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.LoadReflex(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&gameCfg, config.DifficultyPreset(flagDifficulty))

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	tickHz := gameCfg.Clock.TickHz
	if flagTickHz > 0 {
		tickHz = flagTickHz
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		FPS:     flagFPS,
		TickHz:  tickHz,
	}

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(gameCfg.Core(), store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
