package shooter

import (
	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
)

// Bullet travels straight up from where the player fired it.
type Bullet struct {
	Pos       core.Position
	Destroyed bool

	speed float64
	size  float64
}

// NewBullet creates a bullet at (x, y).
func NewBullet(x, y float64, cfg config.BulletConfig) *Bullet {
	return &Bullet{
		Pos:   core.NewPosition(x, y),
		speed: cfg.Speed,
		size:  nonNegative(cfg.Size),
	}
}

// Position implements Entity.
func (b *Bullet) Position() core.Position { return b.Pos }

// Radius implements Entity. A bullet's size is its radius.
func (b *Bullet) Radius() float64 { return b.size }

// Update moves the bullet up and destroys it once it crosses the top or
// bottom edge of the arena.
func (b *Bullet) Update(_ float64, bounds core.Bounds) {
	b.Pos.Y -= b.speed

	if b.Pos.Y <= 0 || b.Pos.Y > bounds.Height {
		b.Destroyed = true
	}
}

// Collides reports whether the bullet overlaps the other entity.
func (b *Bullet) Collides(other Entity) bool {
	return circleOf(b).Overlaps(circleOf(other))
}

// Render implements Entity.
func (b *Bullet) Render(dst Canvas) {
	dst.Circle(b.Pos, b.size, core.ColorRed)
}
