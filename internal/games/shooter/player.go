package shooter

import (
	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
)

// Player is the ship controlled by the user. There is exactly one per game;
// it is reset in place between rounds rather than recreated.
type Player struct {
	Pos     core.Position
	Facing  core.Direction
	Stopped bool    // Set when the key for the current facing is released
	Health  float64 // Reaches 0 only when the round is lost

	speed     float64
	size      float64
	maxHealth float64
}

// NewPlayer creates a player at (x, y) facing east and standing still.
func NewPlayer(x, y float64, cfg config.PlayerConfig) *Player {
	p := &Player{
		speed:     cfg.Speed,
		size:      nonNegative(cfg.Size),
		maxHealth: cfg.Health,
	}
	p.Reset(x, y)
	return p
}

// Reset restores the starting state at the given position.
func (p *Player) Reset(x, y float64) {
	p.Pos = core.NewPosition(x, y)
	p.Facing = core.East
	p.Stopped = true
	p.Health = p.maxHealth
}

// Face turns the ship and starts it moving.
func (p *Player) Face(dir core.Direction) {
	p.Facing = dir
	p.Stopped = false
}

// Release stops the ship if dir is the direction it is currently moving in.
// Releasing an older key after a newer one was pressed keeps the ship going.
func (p *Player) Release(dir core.Direction) {
	if dir == p.Facing {
		p.Stopped = true
	}
}

// Damage subtracts health. Clamping happens when the round ends.
func (p *Player) Damage(amount float64) {
	p.Health -= amount
}

// MaxHealth returns the health the player starts each round with.
func (p *Player) MaxHealth() float64 {
	return p.maxHealth
}

// Position implements Entity.
func (p *Player) Position() core.Position { return p.Pos }

// Radius implements Entity.
func (p *Player) Radius() float64 { return p.size / 2 }

// Update moves the ship one step along its facing, wrapping horizontally and
// clamping vertically.
func (p *Player) Update(_ float64, b core.Bounds) {
	if p.Stopped {
		return
	}

	switch p.Facing {
	case core.North:
		p.Pos.Y -= p.speed
	case core.South:
		p.Pos.Y += p.speed
	case core.East:
		p.Pos.X += p.speed
	case core.West:
		p.Pos.X -= p.speed
	}

	core.RestrictToBounds(&p.Pos, b)
}

// Render implements Entity.
func (p *Player) Render(dst Canvas) {
	dst.Ship(p.Pos, p.size, p.Facing, core.ColorBrightRed)
}
