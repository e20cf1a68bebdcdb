package shooter

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
	"github.com/vovakirdan/space-arcade/internal/registry"
)

// Package-level settings used by the registry factory.
// The CLI sets them before the first game is created.
var (
	settingsMu sync.RWMutex
	configPath string
	highScores HighScoreStore
	gameLogger = log.Default()
)

// SetConfigPath sets a custom YAML config path for new games.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetHighScoreStore sets the store shared by all games created by the registry.
func SetHighScoreStore(s HighScoreStore) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	highScores = s
}

// SetLogger sets the logger handed to games created by the registry.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	gameLogger = l
}

// NewFromSettings loads the configuration and builds a game wired to the
// package-level store and logger. A broken config file falls back to defaults.
func NewFromSettings() *Game {
	settingsMu.RLock()
	path, store, logger := configPath, highScores, gameLogger
	settingsMu.RUnlock()

	cfg, err := config.LoadShooter(path)
	if err != nil {
		logger.Warn("using default shooter config", "path", path, "error", err)
	}
	return New(cfg, WithHighScoreStore(store), WithLogger(logger))
}

// Reset starts a fresh round for the platform loop and reseeds spawning
// unless a random source was injected.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tickDt = cfg.TickSeconds()
	if !g.customRand {
		g.rng = newSeededRand(cfg.Seed)
	}
	g.Restart()
}

// Step applies the frame's input in arrival order, then advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, e := range in.Events {
		g.Input(e.Action, e.Pressed)
	}
	g.Update(g.tickDt, g.bounds)
	return core.StepResult{State: g.State()}
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.status != StatusNormal,
	}
}

// Register the game with the registry
func init() {
	registry.Register(registry.GameInfo{ID: ID, Title: Title}, func() registry.Game {
		return NewFromSettings()
	})
}
