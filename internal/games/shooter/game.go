// Package shooter implements a vertical space shooter.
// The player steers a ship around the arena and shoots down enemies that
// drift from the top before they breach the bottom edge.
package shooter

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
)

// ID is the registry identifier of the game.
const ID = "shooter"

// Title is the display name shown in listings.
const Title = "Space Shooter"

// Status is the round state machine.
// Died and Win are terminal until the player confirms a restart.
type Status int

const (
	StatusNormal Status = iota
	StatusDied
	StatusWin
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "Normal"
	case StatusDied:
		return "Died"
	case StatusWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// HighScoreStore persists the best score across rounds and processes.
type HighScoreStore interface {
	// Load returns the stored high score. Implementations return 0 alongside
	// any error so callers can keep playing.
	Load() (int, error)

	// Save durably records a new high score.
	Save(score int) error
}

// Game owns all simulation state of the shooter.
type Game struct {
	cfg        config.ShooterConfig
	bounds     core.Bounds
	difficulty config.Difficulty
	tickDt     float64

	columns      []float64
	columnsWidth float64

	rng        RandSource
	customRand bool // rng was injected; Reset must keep it
	store      HighScoreStore
	logger     *log.Logger

	player  *Player
	enemies []*Enemy
	bullets []*Bullet

	status        Status
	score         int
	ammo          int
	shootCooldown int
	uptime        uint64
	fireRequested bool
	highScore     int
	roundID       uuid.UUID
}

// Option customises a Game at construction.
type Option func(*Game)

// WithHighScoreStore sets where the high score is loaded from and saved to.
func WithHighScoreStore(s HighScoreStore) Option {
	return func(g *Game) {
		g.store = s
	}
}

// WithRand injects the random source used for spawning.
func WithRand(r RandSource) Option {
	return func(g *Game) {
		g.rng = r
		g.customRand = r != nil
	}
}

// WithLogger sets the logger used for persistence problems and round events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New creates a game ready to play its first round.
// The high score is loaded once here; a failed load starts from zero.
func New(cfg config.ShooterConfig, opts ...Option) *Game {
	g := &Game{
		cfg:        cfg,
		bounds:     core.Bounds{Width: cfg.Arena.Width, Height: cfg.Arena.Height},
		difficulty: config.NewDifficulty(cfg.Difficulty),
		tickDt:     core.DefaultConfig().TickSeconds(),
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = newSeededRand(0)
	}

	g.columns = spawnColumns(g.bounds.Width, cfg.Gameplay.SpawnColumns)
	g.columnsWidth = g.bounds.Width

	center := g.bounds.Center()
	g.player = NewPlayer(center.X, center.Y, cfg.Player)
	g.loadHighScore()
	g.Restart()
	return g
}

func (g *Game) loadHighScore() {
	if g.store == nil {
		return
	}
	score, err := g.store.Load()
	if err != nil {
		g.logger.Warn("could not load high score, starting from zero", "error", err)
	}
	g.highScore = max(score, 0)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return Title
}

// Bounds returns the arena the simulation currently runs in.
func (g *Game) Bounds() core.Bounds {
	return g.bounds
}

// Restart begins a new round. The high score carries over.
func (g *Game) Restart() {
	center := g.bounds.Center()
	g.player.Reset(center.X, center.Y)
	g.enemies = g.enemies[:0]
	g.bullets = g.bullets[:0]
	g.status = StatusNormal
	g.fireRequested = false
	g.shootCooldown = g.cfg.Gameplay.ShootCooldown
	g.ammo = g.cfg.Gameplay.StartAmmo
	g.score = 0
	g.uptime = 0
	g.roundID = uuid.New()
}

// Input applies one press or release of a command.
func (g *Game) Input(cmd core.Action, pressed bool) {
	if g.status != StatusNormal {
		if cmd == core.ActionConfirm {
			g.Restart()
		}
		return
	}

	if dir, ok := cmd.Direction(); ok {
		if pressed {
			g.player.Face(dir)
		} else {
			g.player.Release(dir)
		}
		return
	}

	if cmd == core.ActionFire && pressed && g.shootCooldown == 0 {
		g.fireRequested = true
	}
}

// Update advances the simulation by one tick. dt is accepted for frontends
// with variable frame times; movement is per tick.
// Nothing happens once the round has ended.
func (g *Game) Update(dt float64, bounds core.Bounds) {
	if g.status != StatusNormal {
		return
	}
	g.bounds = bounds

	g.uptime++

	// Enemies move first so a breach can end the round before anything else.
	for _, e := range g.enemies {
		e.Update(dt, bounds)
		if e.Breached {
			g.player.Damage(e.Health)
			e.Health = 0
		}
	}

	if g.player.Health <= 0 {
		g.player.Health = 0
		g.endRound(StatusDied)
		return
	}

	g.player.Update(dt, bounds)

	if g.difficulty.Won(g.uptime) {
		g.endRound(StatusWin)
		return
	}

	if g.difficulty.SpawnDue(g.uptime) {
		g.spawnWave()
	}

	if g.shootCooldown > 0 {
		g.shootCooldown--
	}

	if g.fireRequested {
		g.fireRequested = false
		if g.ammo > 0 {
			g.bullets = append(g.bullets, NewBullet(g.player.Pos.X, g.player.Pos.Y, g.cfg.Bullet))
			g.ammo--
		}
	}

	g.resolveCollisions()
	g.cull()

	for _, b := range g.bullets {
		b.Update(dt, bounds)
	}
}

// resolveCollisions lets each bullet kill at most one enemy, scanning live
// enemies in spawn order.
func (g *Game) resolveCollisions() {
	for _, b := range g.bullets {
		if b.Destroyed {
			continue
		}
		for _, e := range g.enemies {
			if !e.Alive() {
				continue
			}
			if b.Collides(e) {
				e.Health = 0
				b.Destroyed = true
				g.score++
				g.ammo += g.cfg.Gameplay.AmmoPerKill
				break
			}
		}
	}
}

// cull removes dead enemies and destroyed bullets in a single filter pass.
func (g *Game) cull() {
	liveEnemies := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Alive() {
			liveEnemies = append(liveEnemies, e)
		}
	}
	clear(g.enemies[len(liveEnemies):])
	g.enemies = liveEnemies

	liveBullets := g.bullets[:0]
	for _, b := range g.bullets {
		if !b.Destroyed {
			liveBullets = append(liveBullets, b)
		}
	}
	clear(g.bullets[len(liveBullets):])
	g.bullets = liveBullets
}

// endRound freezes the simulation and persists a beaten high score.
func (g *Game) endRound(status Status) {
	g.status = status
	g.logger.Info("round ended",
		"round", g.roundID,
		"status", status,
		"score", g.score,
		"uptime", g.uptime,
	)

	if g.score <= g.highScore {
		return
	}
	g.highScore = g.score
	if g.store == nil {
		return
	}
	if err := g.store.Save(g.score); err != nil {
		g.logger.Warn("could not persist high score", "score", g.score, "error", err)
	}
}

// Status returns the current round status.
func (g *Game) Status() Status {
	return g.status
}

// HighScore returns the best score seen so far.
func (g *Game) HighScore() int {
	return g.highScore
}

// RoundID identifies the current round.
func (g *Game) RoundID() string {
	return g.roundID.String()
}

// Uptime returns the number of ticks since the round started.
func (g *Game) Uptime() uint64 {
	return g.uptime
}
