// reflex is a terminal reaction game on a seven-segment display.
//
// Usage:
//
//	reflex play              - Play a session
//	reflex scores            - Show best sessions and stats
//	reflex simulate          - Run a headless scripted session
//	reflex serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Render frame rate (default: 50)
//	--hz <rate>     - Engine tick rate (default: from config, 1000)
//	--db <path>     - Set database path (default: ~/.reflex/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagTickHz int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reflex",
	Short: "Reflex - A seven-segment reaction game for your terminal",
	Long: `Reflex is a terminal reaction game. Segments of a big seven-segment
display light up; press the matching digit keys before the round deadline.
Score enough and the game shortens the deadlines and lights more segments
at once.

Available commands:
  play      - Play a session
  scores    - View best sessions and aggregate stats
  simulate  - Run a headless scripted session
  serve     - Start SSH server for remote play

Examples:
  reflex play
  reflex play --difficulty hard
  reflex scores --interactive
  reflex simulate --ticks 60000 --reaction 400
  reflex serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 50, "Render frame rate")
	rootCmd.PersistentFlags().IntVar(&flagTickHz, "hz", 0, "Engine tick rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.reflex/scores.db", "Path to sessions database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
}
