package config

import "math"

// Difficulty turns elapsed ticks into the spawn cadence and the win condition.
//
// The level grows by one point every TicksPerLevel ticks. Spawning uses the
// level capped at Cap, so the spawn interval shrinks from BaseInterval down to
// BaseInterval-Cap. The round is won once the uncapped level exceeds
// WinThreshold.
type Difficulty struct {
	cfg DifficultyConfig
}

// NewDifficulty creates a difficulty calculator.
func NewDifficulty(cfg DifficultyConfig) Difficulty {
	return Difficulty{cfg: cfg}
}

// Raw returns the uncapped difficulty level after the given number of ticks.
func (d Difficulty) Raw(uptime uint64) float64 {
	perLevel := float64(d.cfg.TicksPerLevel)
	if perLevel <= 0 {
		perLevel = 1 // Prevent division by zero
	}
	return float64(uptime) / perLevel
}

// Level returns the difficulty used for spawn pacing.
func (d Difficulty) Level(uptime uint64) float64 {
	return math.Min(d.Raw(uptime), float64(d.cfg.Cap))
}

// Won reports whether the uncapped level has passed the win threshold.
func (d Difficulty) Won(uptime uint64) bool {
	return d.Raw(uptime) > float64(d.cfg.WinThreshold)
}

// SpawnInterval returns the number of ticks between spawn waves.
// Never less than one.
func (d Difficulty) SpawnInterval(uptime uint64) uint64 {
	interval := float64(d.cfg.BaseInterval) - d.Level(uptime)
	if interval < 1 {
		return 1
	}
	return uint64(interval)
}

// SpawnDue reports whether a spawn wave fires on this tick.
func (d Difficulty) SpawnDue(uptime uint64) bool {
	return uptime%d.SpawnInterval(uptime) == 1
}
