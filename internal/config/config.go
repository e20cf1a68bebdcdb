// Package config provides YAML-based game configuration loading and
// the difficulty formula for the space shooter.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded configuration cannot drive a game.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ShooterConfig contains all configuration for the space shooter.
type ShooterConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	HighScore  HighScoreConfig  `yaml:"highscore"`
}

// ArenaConfig defines the simulated play field in arena units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player's ship.
type PlayerConfig struct {
	Speed  float64 `yaml:"speed"`  // Units per tick
	Size   float64 `yaml:"size"`   // Diameter
	Health float64 `yaml:"health"` // Starting and maximum health
}

// EnemyConfig defines a descending enemy.
type EnemyConfig struct {
	Speed  float64 `yaml:"speed"`
	Size   float64 `yaml:"size"`
	Health float64 `yaml:"health"`
}

// BulletConfig defines a player bullet. Size is used as the collision radius.
type BulletConfig struct {
	Speed float64 `yaml:"speed"`
	Size  float64 `yaml:"size"`
}

// GameplayConfig defines the ammo economy and spawn pattern.
type GameplayConfig struct {
	StartAmmo      int     `yaml:"start_ammo"`
	AmmoPerKill    int     `yaml:"ammo_per_kill"`
	ShootCooldown  int     `yaml:"shoot_cooldown"`  // Ticks between shots
	SpawnColumns   int     `yaml:"spawn_columns"`   // Evenly spaced columns generated across the arena
	SpawnedColumns int     `yaml:"spawned_columns"` // Leading columns that actually receive enemies
	SpawnChance    float64 `yaml:"spawn_chance"`    // Draw threshold; a column spawns when the draw exceeds it
}

// DifficultyConfig defines the parameters of the spawn-cadence formula.
type DifficultyConfig struct {
	TicksPerLevel int `yaml:"ticks_per_level"` // Uptime ticks per difficulty point
	Cap           int `yaml:"cap"`             // Maximum difficulty used for spawn cadence
	WinThreshold  int `yaml:"win_threshold"`   // Uncapped difficulty above which the round is won
	BaseInterval  int `yaml:"base_interval"`   // Spawn interval at difficulty zero
}

// HighScoreConfig defines where the best score is kept.
type HighScoreConfig struct {
	Path string `yaml:"path"`
}

// Validate checks that the configuration can drive a round.
func (c ShooterConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must have positive size, got %vx%v", ErrInvalidConfig, c.Arena.Width, c.Arena.Height)
	case c.Player.Size < 0 || c.Enemy.Size < 0 || c.Bullet.Size < 0:
		return fmt.Errorf("%w: entity sizes must not be negative", ErrInvalidConfig)
	case c.Player.Health <= 0 || c.Enemy.Health <= 0:
		return fmt.Errorf("%w: health must be positive", ErrInvalidConfig)
	case c.Gameplay.StartAmmo < 0 || c.Gameplay.AmmoPerKill < 0 || c.Gameplay.ShootCooldown < 0:
		return fmt.Errorf("%w: ammo and cooldown must not be negative", ErrInvalidConfig)
	case c.Gameplay.SpawnColumns <= 0:
		return fmt.Errorf("%w: spawn_columns must be positive", ErrInvalidConfig)
	case c.Gameplay.SpawnedColumns < 0 || c.Gameplay.SpawnedColumns > c.Gameplay.SpawnColumns:
		return fmt.Errorf("%w: spawned_columns must be within [0, spawn_columns]", ErrInvalidConfig)
	case c.Difficulty.TicksPerLevel <= 0:
		return fmt.Errorf("%w: ticks_per_level must be positive", ErrInvalidConfig)
	case c.Difficulty.Cap < 0 || c.Difficulty.Cap >= c.Difficulty.BaseInterval:
		return fmt.Errorf("%w: difficulty cap %d must be within [0, base_interval %d)",
			ErrInvalidConfig, c.Difficulty.Cap, c.Difficulty.BaseInterval)
	}
	return nil
}
