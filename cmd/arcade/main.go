// arcade runs the space shooter in a terminal, a desktop window or over SSH.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play              - Play in the terminal
//	arcade window            - Play in a desktop window
//	arcade serve             - Start SSH server for remote play
//	arcade scores            - Show round history
//	arcade config            - Print the default game configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible spawning
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--config <path>      - Use a custom game config YAML
//	--highscore <path>   - Set high score file (default from config)
//	--log-file <path>    - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/games/shooter"
	"github.com/vovakirdan/space-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagConfig    string
	flagHighScore string
	flagLogFile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Space Shooter - defend the bottom edge from drifting enemies",
	Long: `Space Shooter is a small arcade game: steer your ship, shoot the enemies
drifting down from the top and survive until the difficulty peaks.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View round history
  config   - Print the default configuration

Examples:
  arcade play
  arcade play --seed 42 --config ./shooter.yaml
  arcade window
  arcade serve --ssh :2222
  arcade scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to round history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", "", "Path to the high score file (default from config: data/highscore.txt)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger writes to --log-file when set and to fallback otherwise.
// The returned close function must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	return logger, closeFn, nil
}

// configureGames hands the shared settings to games created by the registry.
func configureGames(logger *log.Logger) error {
	highScores, err := storage.NewHighScoreFile(highScorePath(logger))
	if err != nil {
		return err
	}

	shooter.SetConfigPath(flagConfig)
	shooter.SetHighScoreStore(highScores)
	shooter.SetLogger(logger)
	return nil
}

// highScorePath prefers --highscore over the path in the game config.
func highScorePath(logger *log.Logger) string {
	if flagHighScore != "" {
		return flagHighScore
	}
	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		logger.Warn("using default shooter config", "path", flagConfig, "error", err)
	}
	return cfg.HighScore.Path
}

// openStore opens the round history. A failure is logged and play continues
// without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
