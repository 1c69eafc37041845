package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-reflex/internal/platform/tui"
	"github.com/vovakirdan/tui-reflex/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresPlayer      string
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best sessions",
	Long: `Display the best recorded sessions and aggregate statistics.

Examples:
  reflex scores
  reflex scores --limit 25
  reflex scores --player alice
  reflex scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show sessions for a specific player")
	scoresCmd.Flags().BoolVar(&flagScoresInteractive, "interactive", false, "Browse sessions in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var sessions []storage.SessionRecord
	if flagScoresPlayer != "" {
		sessions, err = store.PlayerSessions(flagScoresPlayer, flagScoresLimit)
	} else {
		sessions, err = store.TopSessions(flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'reflex play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-5s  %-5s  %-7s  %-10s  %s\n",
		"Rank", "Score", "Tier", "Won", "Missed", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-5s  %-7s  %-10s  %s\n",
		"----", "-----", "----", "---", "------", "------", "----")

	for i, entry := range sessions {
		player := entry.Player
		if player == "" {
			player = "local"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-5d  %-5d  %-7d  %-10s  %s\n",
			i+1, entry.Score, entry.PeakTier+1, entry.RoundsWon, entry.RoundsMissed, player, dateStr)
	}

	// Aggregate stats
	stats, err := store.Stats()
	if err == nil && stats.Sessions > 0 {
		fmt.Println()
		fmt.Printf("Sessions: %d   Best: %d   Avg: %.1f   Rounds won: %d\n",
			stats.Sessions, stats.HighScore, stats.AvgScore, stats.TotalWon)
	}
}
