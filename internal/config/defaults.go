package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in space shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Arena: ArenaConfig{
			Width:  400,
			Height: 400,
		},
		Player: PlayerConfig{
			Speed:  1.75,
			Size:   25,
			Health: 1000,
		},
		Enemy: EnemyConfig{
			Speed:  1,
			Size:   20,
			Health: 100,
		},
		Bullet: BulletConfig{
			Speed: 2,
			Size:  2,
		},
		Gameplay: GameplayConfig{
			StartAmmo:      20,
			AmmoPerKill:    2,
			ShootCooldown:  50,
			SpawnColumns:   10,
			SpawnedColumns: 9, // last column never spawns; kept for parity with the classic build
			SpawnChance:    0.7,
		},
		Difficulty: DifficultyConfig{
			TicksPerLevel: 50,
			Cap:           400,
			WinThreshold:  500,
			BaseInterval:  500,
		},
		HighScore: HighScoreConfig{
			Path: "data/highscore.txt",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for the shooter.
func GetDefaultYAML() []byte {
	return defaultShooterYAML
}
