package shooter

import (
	"strings"
	"testing"

	"github.com/vovakirdan/space-arcade/internal/core"
)

func TestRenderHUDAndShip(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(60, 24)

	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "Ammo: 20") {
		t.Errorf("HUD row = %q, expected score and ammo", hud)
	}
	if !strings.Contains(hud, "Health: 1000") {
		t.Errorf("HUD row = %q, expected health", hud)
	}
	if !strings.ContainsRune(screen.String(), shipChars[core.East]) {
		t.Error("ship glyph not drawn")
	}
	if !strings.ContainsRune(screen.Row(23), WallChar) {
		t.Error("defense line not drawn on the bottom row")
	}
}

func TestRenderEntities(t *testing.T) {
	g := newTestGame(t)
	g.enemies = append(g.enemies, NewEnemy(40, 100, g.cfg.Enemy))
	g.bullets = append(g.bullets, NewBullet(300, 300, g.cfg.Bullet))
	screen := core.NewScreen(60, 24)

	g.Render(screen)

	out := screen.String()
	if !strings.ContainsRune(out, EnemyChar) {
		t.Error("enemy glyph not drawn")
	}
	if !strings.ContainsRune(out, BulletChar) {
		t.Error("bullet glyph not drawn")
	}
}

func TestRenderEndOfRound(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(g *Game)
		banner string
	}{
		{"died", func(g *Game) { g.player.Health = 0 }, "DEAD"},
		{"won", func(g *Game) { g.uptime = 25001 }, "WIN"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			g.score = 3
			tc.setup(g)
			g.Update(0, testBounds)
			screen := core.NewScreen(60, 24)

			g.Render(screen)

			out := screen.String()
			if !strings.Contains(out, tc.banner) {
				t.Errorf("screen missing %q banner", tc.banner)
			}
			if !strings.Contains(out, "NEW BEST!") {
				t.Error("beaten high score should be announced")
			}
			if !strings.Contains(out, "Press Enter to play again") {
				t.Error("restart prompt missing")
			}
		})
	}
}

func TestRenderEmptyScreen(t *testing.T) {
	g := newTestGame(t)
	g.Render(core.NewScreen(0, 0)) // must not panic
}
