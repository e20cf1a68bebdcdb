package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-arcade/internal/games/shooter"
	"github.com/vovakirdan/space-arcade/internal/platform/tui"
	"github.com/vovakirdan/space-arcade/internal/registry"
	"github.com/vovakirdan/space-arcade/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show round history",
	Long: `Display the best recorded rounds and the stored high score.

Examples:
  arcade scores
  arcade scores --limit 25
  arcade scores -i          # browse in an interactive table
  arcade scores --clear     # delete the round history`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse rounds in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded rounds")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := shooter.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	info, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared round history for %s.\n", info.Title)
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, info.Title, width, height)
	}

	rounds, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving rounds: %w", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'arcade play' to set the first high score!")
	} else {
		fmt.Printf("  %-4s  %-6s  %-7s  %-8s  %s\n", "Rank", "Score", "Outcome", "Time", "Date")
		fmt.Printf("  %-4s  %-6s  %-7s  %-8s  %s\n", "----", "-----", "-------", "----", "----")

		for i, r := range rounds {
			played := (time.Duration(r.Uptime) * time.Second / time.Duration(max(flagFPS, 1))).Truncate(time.Second)
			fmt.Printf("  %-4d  %-6d  %-7s  %-8s  %s\n", i+1, r.Score, r.Outcome, played, r.CreatedAt.Format("2006-01-02 15:04"))
		}

		if stats, err := store.GetStats(gameID); err == nil {
			fmt.Println()
			fmt.Printf("Rounds: %d  Wins: %d  Average: %.1f\n", stats.Rounds, stats.Wins, stats.AvgScore)
		}
	}

	highScores, err := storage.NewHighScoreFile(highScorePath(log.New(io.Discard)))
	if err != nil {
		return err
	}
	if best, err := highScores.Load(); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d (%s)\n", best, highScores.Path())
	}
	return nil
}
