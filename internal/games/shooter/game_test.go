package shooter

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
	"github.com/vovakirdan/space-arcade/internal/registry"
)

// scriptedRand replays fixed draws and counts how many were taken.
type scriptedRand struct {
	values []float64
	calls  int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.values) == 0 {
		r.calls++
		return 0
	}
	v := r.values[r.calls%len(r.values)]
	r.calls++
	return v
}

// memoryStore records every save for assertions.
type memoryStore struct {
	best    int
	saves   []int
	loadErr error
	saveErr error
}

func (m *memoryStore) Load() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.best, nil
}

func (m *memoryStore) Save(score int) error {
	m.saves = append(m.saves, score)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.best = score
	return nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// newTestGame builds a game whose spawner never fires unless rng says so.
func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	base := []Option{WithRand(&scriptedRand{}), WithLogger(quietLogger())}
	return New(config.DefaultShooterConfig(), append(base, opts...)...)
}

func TestNewGameInitialState(t *testing.T) {
	g := newTestGame(t)

	if g.Status() != StatusNormal {
		t.Errorf("Status() = %v, expected Normal", g.Status())
	}
	if g.ammo != 20 || g.score != 0 || g.uptime != 0 {
		t.Errorf("ammo=%d score=%d uptime=%d, expected 20/0/0", g.ammo, g.score, g.uptime)
	}
	if g.shootCooldown != 50 {
		t.Errorf("shootCooldown = %d, expected 50", g.shootCooldown)
	}
	if g.player.Pos != core.NewPosition(200, 200) {
		t.Errorf("player at %v, expected arena center", g.player.Pos)
	}
	if len(g.enemies) != 0 || len(g.bullets) != 0 {
		t.Error("new game should have no enemies or bullets")
	}
	if g.RoundID() == "" {
		t.Error("round ID should be set")
	}
}

func TestStoppedPlayerStaysPut(t *testing.T) {
	g := newTestGame(t)

	for i := 0; i < 200; i++ {
		g.Update(1.0/60, testBounds)
	}
	if g.player.Pos != core.NewPosition(200, 200) {
		t.Errorf("player drifted to %v without input", g.player.Pos)
	}
	if g.Uptime() != 200 {
		t.Errorf("Uptime() = %d, expected 200", g.Uptime())
	}
}

func TestMovementInput(t *testing.T) {
	g := newTestGame(t)

	g.Input(core.ActionMoveLeft, true)
	g.Update(0, testBounds)
	if g.player.Pos.X != 198.25 {
		t.Fatalf("player x = %v, expected 198.25", g.player.Pos.X)
	}

	g.Input(core.ActionMoveUp, true)
	g.Input(core.ActionMoveLeft, false) // released key is no longer the facing
	g.Update(0, testBounds)
	if g.player.Pos != core.NewPosition(198.25, 198.25) {
		t.Fatalf("player at %v, expected to keep moving north", g.player.Pos)
	}

	g.Input(core.ActionMoveUp, false)
	g.Update(0, testBounds)
	if g.player.Pos != core.NewPosition(198.25, 198.25) {
		t.Errorf("player at %v, expected to stop after releasing north", g.player.Pos)
	}
}

func TestFireSpawnsBullet(t *testing.T) {
	g := newTestGame(t)
	g.shootCooldown = 0

	g.Input(core.ActionFire, true)
	g.Update(0, testBounds)

	if len(g.bullets) != 1 {
		t.Fatalf("len(bullets) = %d, expected 1", len(g.bullets))
	}
	if g.ammo != 19 {
		t.Errorf("ammo = %d, expected 19", g.ammo)
	}
	b := g.bullets[0]
	if b.Pos.X != g.player.Pos.X || b.Pos.Y != g.player.Pos.Y-2 {
		t.Errorf("bullet at %v, expected one step above %v", b.Pos, g.player.Pos)
	}
	if g.shootCooldown != 0 {
		t.Errorf("shootCooldown = %d, expected 0 after a shot", g.shootCooldown)
	}
	if g.fireRequested {
		t.Error("fire request should be consumed")
	}
}

func TestFireOnConsecutiveTicks(t *testing.T) {
	g := newTestGame(t)
	g.shootCooldown = 0

	g.Input(core.ActionFire, true)
	g.Update(0, testBounds)
	g.Input(core.ActionFire, true)
	g.Update(0, testBounds)

	if len(g.bullets) != 2 {
		t.Fatalf("len(bullets) = %d, expected 2", len(g.bullets))
	}
	if g.ammo != 18 {
		t.Errorf("ammo = %d, expected 18", g.ammo)
	}
}

func TestFireIgnoredDuringCooldown(t *testing.T) {
	g := newTestGame(t)

	g.Input(core.ActionFire, true)
	g.Update(0, testBounds)
	if len(g.bullets) != 0 {
		t.Fatal("fire pressed during cooldown should be ignored")
	}

	// Cooldown counts down once per tick.
	for g.shootCooldown > 0 {
		g.Update(0, testBounds)
	}
	g.Input(core.ActionFire, true)
	g.Update(0, testBounds)
	if len(g.bullets) != 1 {
		t.Errorf("len(bullets) = %d after cooldown expired, expected 1", len(g.bullets))
	}
}

func TestFireReleaseDoesNothing(t *testing.T) {
	g := newTestGame(t)
	g.shootCooldown = 0

	g.Input(core.ActionFire, false)
	g.Update(0, testBounds)
	if len(g.bullets) != 0 || g.ammo != 20 {
		t.Error("releasing fire should not shoot")
	}
}

func TestFireWithoutAmmoDropsRequest(t *testing.T) {
	g := newTestGame(t)
	g.shootCooldown = 0
	g.ammo = 0

	g.Input(core.ActionFire, true)
	g.Update(0, testBounds)

	if len(g.bullets) != 0 {
		t.Fatal("no bullet should spawn without ammo")
	}
	if g.fireRequested {
		t.Fatal("unfulfilled fire request should be dropped")
	}

	g.ammo = 5
	g.Update(0, testBounds)
	if len(g.bullets) != 0 {
		t.Error("a dropped request must not fire later")
	}
}

func TestBulletKillsEnemy(t *testing.T) {
	g := newTestGame(t)
	g.shootCooldown = 0
	g.enemies = append(g.enemies, NewEnemy(200, 190, g.cfg.Enemy))

	g.Input(core.ActionFire, true)
	g.Update(0, testBounds)

	if g.score != 1 {
		t.Errorf("score = %d, expected 1", g.score)
	}
	if g.ammo != 21 {
		t.Errorf("ammo = %d, expected 20 - 1 + 2", g.ammo)
	}
	if len(g.enemies) != 0 || len(g.bullets) != 0 {
		t.Errorf("enemies=%d bullets=%d, expected both culled", len(g.enemies), len(g.bullets))
	}
}

func TestBulletKillsOnlyOneEnemy(t *testing.T) {
	g := newTestGame(t)
	first := NewEnemy(100, 100, g.cfg.Enemy)
	second := NewEnemy(100, 100, g.cfg.Enemy)
	g.enemies = append(g.enemies, first, second)
	g.bullets = append(g.bullets, NewBullet(100, 101, g.cfg.Bullet))

	g.Update(0, testBounds)

	if g.score != 1 {
		t.Errorf("score = %d, expected 1", g.score)
	}
	if len(g.enemies) != 1 || g.enemies[0] != second {
		t.Error("the earlier-spawned enemy should be the one destroyed")
	}
	if len(g.bullets) != 0 {
		t.Error("bullet should be destroyed on hit")
	}
}

func TestDestroyedBulletDoesNotScore(t *testing.T) {
	g := newTestGame(t)
	g.enemies = append(g.enemies, NewEnemy(100, 100, g.cfg.Enemy))
	b := NewBullet(100, 101, g.cfg.Bullet)
	b.Destroyed = true
	g.bullets = append(g.bullets, b)

	g.Update(0, testBounds)

	if g.score != 0 || len(g.enemies) != 1 {
		t.Errorf("destroyed bullet scored: score=%d enemies=%d", g.score, len(g.enemies))
	}
}

func TestBreachDamagesPlayer(t *testing.T) {
	g := newTestGame(t)
	g.enemies = append(g.enemies, NewEnemy(50, 399.5, g.cfg.Enemy))

	g.Update(0, testBounds)

	if g.player.Health != 900 {
		t.Errorf("Health = %v, expected 900", g.player.Health)
	}
	if len(g.enemies) != 0 {
		t.Error("breached enemy should be removed")
	}
	if g.Status() != StatusNormal {
		t.Errorf("Status() = %v, expected Normal", g.Status())
	}
}

func TestBreachKillsPlayer(t *testing.T) {
	store := &memoryStore{}
	g := newTestGame(t, WithHighScoreStore(store))
	g.player.Health = 150
	g.score = 3
	g.enemies = append(g.enemies,
		NewEnemy(50, 399.5, g.cfg.Enemy),
		NewEnemy(150, 399.5, g.cfg.Enemy),
	)

	g.Update(0, testBounds)

	if g.Status() != StatusDied {
		t.Fatalf("Status() = %v, expected Died", g.Status())
	}
	if g.player.Health != 0 {
		t.Errorf("Health = %v, expected clamped to 0", g.player.Health)
	}
	if len(store.saves) != 1 || store.saves[0] != 3 {
		t.Errorf("saves = %v, expected [3]", store.saves)
	}
}

func TestDiedFreezesTick(t *testing.T) {
	g := newTestGame(t)
	g.player.Health = 0
	enemy := NewEnemy(50, 50, g.cfg.Enemy)
	g.enemies = append(g.enemies, enemy)
	bullet := NewBullet(50, 60, g.cfg.Bullet)
	g.bullets = append(g.bullets, bullet)

	g.Update(0, testBounds)

	if g.Status() != StatusDied {
		t.Fatalf("Status() = %v, expected Died", g.Status())
	}
	if len(g.enemies) != 1 || len(g.bullets) != 1 {
		t.Errorf("enemies=%d bullets=%d, expected untouched", len(g.enemies), len(g.bullets))
	}
	// Enemies move before the health check.
	if enemy.Pos.Y != 51 {
		t.Errorf("enemy y = %v, expected 51", enemy.Pos.Y)
	}
	if !g.Snapshot().GameOver() {
		t.Error("snapshot should report game over after death")
	}
	if bullet.Pos.Y != 60 || bullet.Destroyed {
		t.Errorf("bullet moved to %v after death", bullet.Pos)
	}
	if g.Uptime() != 1 {
		t.Errorf("Uptime() = %d, expected 1", g.Uptime())
	}

	// Terminal state: further ticks are no-ops.
	g.Update(0, testBounds)
	if g.Uptime() != 1 {
		t.Errorf("Uptime() = %d after round end, expected frozen at 1", g.Uptime())
	}
}

func TestWinAfterEnoughUptime(t *testing.T) {
	tests := []struct {
		name     string
		uptime   uint64
		expected Status
	}{
		{"just below threshold", 24999, StatusNormal},
		{"exactly threshold", 25000, StatusWin},
		{"well past threshold", 25001, StatusWin},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			g.uptime = tc.uptime
			g.Update(0, testBounds)
			if g.Status() != tc.expected {
				t.Errorf("after tick from uptime %d: Status() = %v, expected %v", tc.uptime, g.Status(), tc.expected)
			}
		})
	}
}

func TestRestartAfterRoundEnd(t *testing.T) {
	g := newTestGame(t)
	g.score = 7
	g.ammo = 3
	g.player.Health = 0
	g.player.Pos = core.NewPosition(10, 10)
	g.enemies = append(g.enemies, NewEnemy(50, 50, g.cfg.Enemy))
	g.bullets = append(g.bullets, NewBullet(50, 60, g.cfg.Bullet))
	g.Update(0, testBounds)
	oldRound := g.RoundID()

	// Movement and fire are ignored once the round is over.
	g.Input(core.ActionMoveUp, true)
	g.Input(core.ActionFire, true)
	if g.Status() != StatusDied || g.fireRequested {
		t.Fatal("only confirm should act on a finished round")
	}

	g.Input(core.ActionConfirm, false)

	if g.Status() != StatusNormal {
		t.Fatalf("Status() = %v, expected Normal", g.Status())
	}
	if g.score != 0 || g.ammo != 20 || g.uptime != 0 || g.shootCooldown != 50 {
		t.Errorf("score=%d ammo=%d uptime=%d cooldown=%d, expected fresh round", g.score, g.ammo, g.uptime, g.shootCooldown)
	}
	if len(g.enemies) != 0 || len(g.bullets) != 0 {
		t.Error("restart should clear enemies and bullets")
	}
	if g.player.Pos != core.NewPosition(200, 200) || g.player.Health != 1000 || !g.player.Stopped {
		t.Errorf("player not reset: %+v", g.player)
	}
	if g.HighScore() != 7 {
		t.Errorf("HighScore() = %d, expected 7 to carry over", g.HighScore())
	}
	if g.RoundID() == oldRound {
		t.Error("restart should start a new round ID")
	}
}

func TestConfirmIgnoredDuringPlay(t *testing.T) {
	g := newTestGame(t)
	g.Update(0, testBounds)
	g.Input(core.ActionConfirm, true)
	if g.Uptime() != 1 {
		t.Error("confirm should not restart a running round")
	}
}

func TestHighScoreOnlySavedWhenBeaten(t *testing.T) {
	tests := []struct {
		name      string
		stored    int
		score     int
		saves     int
		highScore int
	}{
		{"beaten", 5, 6, 1, 6},
		{"tied", 5, 5, 0, 5},
		{"lower", 5, 2, 0, 5},
		{"first score", 0, 1, 1, 1},
		{"zero on empty store", 0, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &memoryStore{best: tc.stored}
			g := newTestGame(t, WithHighScoreStore(store))
			g.score = tc.score
			g.player.Health = 0
			g.Update(0, testBounds)

			if len(store.saves) != tc.saves {
				t.Errorf("saves = %v, expected %d save(s)", store.saves, tc.saves)
			}
			if g.HighScore() != tc.highScore {
				t.Errorf("HighScore() = %d, expected %d", g.HighScore(), tc.highScore)
			}
		})
	}
}

func TestHighScoreSavedOnWin(t *testing.T) {
	store := &memoryStore{best: 1}
	g := newTestGame(t, WithHighScoreStore(store))
	g.score = 10
	g.uptime = 25001
	g.Update(0, testBounds)

	if g.Status() != StatusWin {
		t.Fatalf("Status() = %v, expected Win", g.Status())
	}
	if len(store.saves) != 1 || store.best != 10 {
		t.Errorf("saves = %v, expected a single save of 10", store.saves)
	}
}

func TestHighScoreLoadFailureStartsAtZero(t *testing.T) {
	var buf bytes.Buffer
	store := &memoryStore{best: 99, loadErr: errors.New("disk on fire")}
	g := New(config.DefaultShooterConfig(),
		WithRand(&scriptedRand{}),
		WithLogger(log.New(&buf)),
		WithHighScoreStore(store),
	)

	if g.HighScore() != 0 {
		t.Errorf("HighScore() = %d, expected 0 after failed load", g.HighScore())
	}
	if !strings.Contains(buf.String(), "could not load high score") {
		t.Errorf("expected a load warning, got %q", buf.String())
	}
}

func TestHighScoreSaveFailureIsNotFatal(t *testing.T) {
	var buf bytes.Buffer
	store := &memoryStore{saveErr: errors.New("read-only filesystem")}
	g := New(config.DefaultShooterConfig(),
		WithRand(&scriptedRand{}),
		WithLogger(log.New(&buf)),
		WithHighScoreStore(store),
	)
	g.score = 4
	g.player.Health = 0
	g.Update(0, testBounds)

	if g.Status() != StatusDied {
		t.Fatalf("Status() = %v, expected Died", g.Status())
	}
	if g.HighScore() != 4 {
		t.Errorf("HighScore() = %d, expected in-memory best of 4", g.HighScore())
	}
	if !strings.Contains(buf.String(), "could not persist high score") {
		t.Errorf("expected a save warning, got %q", buf.String())
	}

	g.Input(core.ActionConfirm, true)
	if g.Status() != StatusNormal {
		t.Error("game should stay playable after a save failure")
	}
}

func TestSpawnWaveUsesLeadingColumns(t *testing.T) {
	rng := &scriptedRand{values: []float64{0.8, 0.1, 0.9, 0.71, 0.7, 0, 0, 0, 0.95, 0.99}}
	g := newTestGame(t, WithRand(rng))

	g.Update(0, testBounds) // uptime 1 is a spawn tick

	if rng.calls != 10 {
		t.Errorf("draws consumed = %d, expected 10", rng.calls)
	}

	expected := []float64{20, 100, 140, 340}
	if len(g.enemies) != len(expected) {
		t.Fatalf("len(enemies) = %d, expected %d", len(g.enemies), len(expected))
	}
	for i, x := range expected {
		if g.enemies[i].Pos.X != x || g.enemies[i].Pos.Y != 0 {
			t.Errorf("enemy %d at %v, expected (%v, 0)", i, g.enemies[i].Pos, x)
		}
	}
}

func TestSpawnCadence(t *testing.T) {
	rng := &scriptedRand{values: []float64{0.99}}
	g := newTestGame(t, WithRand(rng))

	g.Update(0, testBounds)
	if len(g.enemies) != 9 {
		t.Fatalf("len(enemies) = %d after first wave, expected 9", len(g.enemies))
	}

	g.Update(0, testBounds)
	if len(g.enemies) != 9 || rng.calls != 10 {
		t.Fatalf("tick 2 should not spawn: enemies=%d draws=%d", len(g.enemies), rng.calls)
	}

	difficulty := config.NewDifficulty(g.cfg.Difficulty)
	waves := 0
	for u := uint64(1); u <= 300; u++ {
		if difficulty.SpawnDue(u) {
			waves++
		}
	}
	for g.Uptime() < 300 {
		g.Update(0, testBounds)
	}
	if rng.calls != waves*10 {
		t.Errorf("draws consumed = %d over 300 ticks, expected %d waves of 10", rng.calls, waves)
	}
}

func TestSpawnColumns(t *testing.T) {
	cols := spawnColumns(400, 10)
	if len(cols) != 10 || cols[0] != 20 || cols[9] != 380 {
		t.Errorf("spawnColumns(400, 10) = %v", cols)
	}
	if spawnColumns(400, 0) != nil {
		t.Error("zero columns should give nil")
	}
}

func TestSpawnColumnsFollowArenaWidth(t *testing.T) {
	rng := &scriptedRand{values: []float64{0.99}}
	g := newTestGame(t, WithRand(rng))

	g.Update(0, core.Bounds{Width: 200, Height: 400})
	if len(g.enemies) == 0 || g.enemies[0].Pos.X != 10 {
		t.Errorf("first column should be recomputed for the new width, got %v", g.enemies)
	}
}

func TestRoundInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	inputs := rand.New(rand.NewSource(7))
	g := New(config.DefaultShooterConfig(), WithRand(rng), WithLogger(quietLogger()))

	actions := []core.Action{
		core.ActionMoveUp, core.ActionMoveDown, core.ActionMoveLeft,
		core.ActionMoveRight, core.ActionFire,
	}

	lastScore := 0
	for i := 0; i < 20000 && g.Status() == StatusNormal; i++ {
		if inputs.Intn(5) == 0 {
			g.Input(actions[inputs.Intn(len(actions))], inputs.Intn(2) == 0)
		}
		g.Update(0, testBounds)

		if g.ammo < 0 {
			t.Fatalf("tick %d: ammo went negative: %d", i, g.ammo)
		}
		if g.score < lastScore {
			t.Fatalf("tick %d: score decreased from %d to %d", i, lastScore, g.score)
		}
		lastScore = g.score
		if g.shootCooldown < 0 {
			t.Fatalf("tick %d: cooldown went negative", i)
		}
		p := g.player.Pos
		if p.X < 0 || p.X > 400 || p.Y < 0 || p.Y > 400 {
			t.Fatalf("tick %d: player left the arena: %v", i, p)
		}
		for _, e := range g.enemies {
			if !e.Alive() {
				t.Fatalf("tick %d: dead enemy survived cull", i)
			}
		}
		for _, b := range g.bullets {
			if b.Pos.Y <= -2 {
				t.Fatalf("tick %d: bullet lingered above the arena", i)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New(config.DefaultShooterConfig(),
			WithRand(rand.New(rand.NewSource(12345))),
			WithLogger(quietLogger()),
		)
		for i := 0; i < 3000; i++ {
			switch i % 120 {
			case 0:
				g.Input(core.ActionMoveLeft, true)
			case 40:
				g.Input(core.ActionMoveRight, true)
			case 60:
				g.Input(core.ActionFire, true)
			case 100:
				g.Input(core.ActionMoveRight, false)
			}
			g.Update(0, testBounds)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a.Score != b.Score || a.Ammo != b.Ammo || a.Player.Position != b.Player.Position || a.Status != b.Status {
		t.Errorf("same seed and inputs diverged: %+v vs %+v", a, b)
	}
	if len(a.Enemies) != len(b.Enemies) {
		t.Fatalf("enemy counts differ: %d vs %d", len(a.Enemies), len(b.Enemies))
	}
	for i := range a.Enemies {
		if a.Enemies[i] != b.Enemies[i] {
			t.Errorf("enemy %d differs: %+v vs %+v", i, a.Enemies[i], b.Enemies[i])
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t)
	g.enemies = append(g.enemies, NewEnemy(10, 10, g.cfg.Enemy))

	s := g.Snapshot()
	s.Enemies[0].Position.X = 999
	s.Player.Position.X = 999

	if g.enemies[0].Pos.X != 10 || g.player.Pos.X != 200 {
		t.Error("mutating a snapshot changed the game")
	}
	if s.GameOver() {
		t.Error("running round should not report game over")
	}
	if s.RoundID != g.RoundID() {
		t.Errorf("snapshot round %q, expected %q", s.RoundID, g.RoundID())
	}
}

func TestStepAppliesInputThenTicks(t *testing.T) {
	g := newTestGame(t)
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})

	in := core.NewInputFrame()
	in.Press(core.ActionMoveRight)
	res := g.Step(in)

	if g.player.Pos.X != 201.75 {
		t.Errorf("player x = %v, expected movement applied in the same tick", g.player.Pos.X)
	}
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("unexpected step result %+v", res)
	}
	if g.Uptime() != 1 {
		t.Errorf("Uptime() = %d, expected 1", g.Uptime())
	}
}

func TestResetKeepsInjectedRand(t *testing.T) {
	rng := &scriptedRand{values: []float64{0.99}}
	g := newTestGame(t, WithRand(rng))
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 99})

	g.Update(0, testBounds)
	if rng.calls != 10 {
		t.Errorf("injected rand should survive Reset, draws = %d", rng.calls)
	}
}

func TestRegisteredTitle(t *testing.T) {
	info, ok := registry.Lookup(ID)
	if !ok {
		t.Fatalf("%q is not registered", ID)
	}
	if g := newTestGame(t); info.Title != g.Title() || info.Title != Title {
		t.Errorf("registry title %q, game title %q, expected %q", info.Title, g.Title(), Title)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusNormal, "Normal"},
		{StatusDied, "Died"},
		{StatusWin, "Win"},
		{Status(9), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.status.String(); got != tc.expected {
			t.Errorf("Status(%d).String() = %q, expected %q", tc.status, got, tc.expected)
		}
	}
}
