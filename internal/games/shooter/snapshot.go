package shooter

import "github.com/vovakirdan/space-arcade/internal/core"

// EntityView is a read-only copy of an enemy or bullet.
type EntityView struct {
	Position core.Position
	Radius   float64
	Health   float64 // Zero for bullets
}

// PlayerView is a read-only copy of the player.
type PlayerView struct {
	Position core.Position
	Radius   float64
	Facing   core.Direction
	Moving   bool
	Health   float64
}

// Snapshot is everything a presentation layer needs to draw one frame.
// It shares no memory with the running game.
type Snapshot struct {
	RoundID    string
	Status     Status
	Bounds     core.Bounds
	Player     PlayerView
	Enemies    []EntityView
	Bullets    []EntityView
	Score      int
	Ammo       int
	Health     float64
	HighScore  int
	Uptime     uint64
	Difficulty float64
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	enemies := make([]EntityView, len(g.enemies))
	for i, e := range g.enemies {
		enemies[i] = EntityView{Position: e.Pos, Radius: e.Radius(), Health: e.Health}
	}

	bullets := make([]EntityView, len(g.bullets))
	for i, b := range g.bullets {
		bullets[i] = EntityView{Position: b.Pos, Radius: b.Radius()}
	}

	return Snapshot{
		RoundID: g.roundID.String(),
		Status:  g.status,
		Bounds:  g.bounds,
		Player: PlayerView{
			Position: g.player.Pos,
			Radius:   g.player.Radius(),
			Facing:   g.player.Facing,
			Moving:   !g.player.Stopped,
			Health:   g.player.Health,
		},
		Enemies:    enemies,
		Bullets:    bullets,
		Score:      g.score,
		Ammo:       g.ammo,
		Health:     g.player.Health,
		HighScore:  g.highScore,
		Uptime:     g.uptime,
		Difficulty: g.difficulty.Level(g.uptime),
	}
}

// GameOver reports whether the round has ended.
func (s Snapshot) GameOver() bool {
	return s.Status != StatusNormal
}
