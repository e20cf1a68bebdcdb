package shooter

import (
	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
)

// Enemy drifts straight down from the top of the arena.
type Enemy struct {
	Pos      core.Position
	Breached bool    // Left the arena vertically without being shot
	Health   float64 // 0 marks the enemy for removal

	speed float64
	size  float64
}

// NewEnemy creates an enemy at (x, y) with full health.
func NewEnemy(x, y float64, cfg config.EnemyConfig) *Enemy {
	return &Enemy{
		Pos:    core.NewPosition(x, y),
		Health: cfg.Health,
		speed:  cfg.Speed,
		size:   nonNegative(cfg.Size),
	}
}

// Alive reports whether the enemy can still be hit.
func (e *Enemy) Alive() bool {
	return e.Health > 0
}

// Position implements Entity.
func (e *Enemy) Position() core.Position { return e.Pos }

// Radius implements Entity.
func (e *Enemy) Radius() float64 { return e.size / 2 }

// Update moves the enemy down and flags a breach once it leaves [0, height).
func (e *Enemy) Update(_ float64, b core.Bounds) {
	e.Pos.Y += e.speed

	if e.Pos.Y < 0 || e.Pos.Y >= b.Height {
		e.Breached = true
	}
}

// Render implements Entity.
func (e *Enemy) Render(dst Canvas) {
	dst.Square(e.Pos, e.size, core.ColorWhite)
}
