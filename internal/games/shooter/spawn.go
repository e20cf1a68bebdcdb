package shooter

import (
	"math/rand"
)

// RandSource supplies uniform draws in [0, 1) for enemy spawning.
// *rand.Rand satisfies it; tests inject scripted sequences.
type RandSource interface {
	Float64() float64
}

// newSeededRand returns the default spawn source for a seed.
func newSeededRand(seed int64) RandSource {
	return rand.New(rand.NewSource(seed))
}

// spawnColumns returns n evenly spaced column centers across width.
func spawnColumns(width float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	step := width / float64(n)
	cols := make([]float64, n)
	for i := range cols {
		cols[i] = (float64(i) + 0.5) * step
	}
	return cols
}

// spawnWave draws one value per generated column and spawns an enemy at the
// top of each leading column whose draw beats the spawn chance.
// Every column consumes a draw, including the ones that never spawn, so the
// random sequence stays aligned with the column layout.
func (g *Game) spawnWave() {
	if len(g.columns) == 0 || g.columnsWidth != g.bounds.Width {
		g.columns = spawnColumns(g.bounds.Width, g.cfg.Gameplay.SpawnColumns)
		g.columnsWidth = g.bounds.Width
	}

	draws := make([]float64, len(g.columns))
	for i := range draws {
		draws[i] = g.rng.Float64()
	}

	spawned := min(g.cfg.Gameplay.SpawnedColumns, len(g.columns))
	for i := 0; i < spawned; i++ {
		if draws[i] > g.cfg.Gameplay.SpawnChance {
			g.enemies = append(g.enemies, NewEnemy(g.columns[i], 0, g.cfg.Enemy))
		}
	}
}
