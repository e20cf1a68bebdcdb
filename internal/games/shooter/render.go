package shooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/space-arcade/internal/core"
)

// Visual characters for terminal rendering
const (
	EnemyChar  = '■'
	BulletChar = '•'
	WallChar   = '─'
)

var shipChars = map[core.Direction]rune{
	core.North: '▲',
	core.South: '▼',
	core.East:  '▶',
	core.West:  '◀',
}

// hudRows is the number of screen rows reserved above the arena.
const hudRows = 1

// screenCanvas scales arena coordinates onto a character screen.
// The whole arena is squeezed into the area below the HUD regardless of the
// terminal's aspect ratio.
type screenCanvas struct {
	dst    *core.Screen
	bounds core.Bounds
}

func (c screenCanvas) cell(p core.Position) (int, int) {
	w := c.dst.Width()
	h := c.dst.Height() - hudRows - 1 // bottom wall
	if w <= 0 || h <= 0 || c.bounds.Width <= 0 || c.bounds.Height <= 0 {
		return -1, -1
	}
	x := int(p.X / c.bounds.Width * float64(w-1))
	y := int(p.Y/c.bounds.Height*float64(h-1)) + hudRows
	return core.Clamp(x, 0, w-1), core.Clamp(y, hudRows, hudRows+h-1)
}

// span returns how many columns an arena length covers, at least one.
func (c screenCanvas) span(length float64) int {
	if c.bounds.Width <= 0 {
		return 1
	}
	cells := int(math.Round(length / c.bounds.Width * float64(c.dst.Width())))
	return core.Max(cells, 1)
}

func (c screenCanvas) Circle(center core.Position, _ float64, col core.Color) {
	x, y := c.cell(center)
	c.dst.SetColor(x, y, BulletChar, col)
}

func (c screenCanvas) Square(center core.Position, size float64, col core.Color) {
	x, y := c.cell(center)
	n := c.span(size)
	c.dst.DrawHLine(x-n/2, y, n, EnemyChar, col)
}

func (c screenCanvas) Ship(center core.Position, _ float64, facing core.Direction, col core.Color) {
	x, y := c.cell(center)
	c.dst.SetColor(x, y, shipChars[facing], col)
}

// Draw renders every entity through dst: enemies, then bullets, then the
// player on top.
func (g *Game) Draw(dst Canvas) {
	for _, e := range g.enemies {
		e.Render(dst)
	}
	for _, b := range g.bullets {
		b.Render(dst)
	}
	g.player.Render(dst)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	// Defense line
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), WallChar, core.ColorGray)

	g.Draw(screenCanvas{dst: dst, bounds: g.bounds})

	g.drawHUD(dst)

	switch g.status {
	case StatusDied:
		g.drawCenteredMessage(dst, "DEAD", core.ColorBrightRed)
	case StatusWin:
		g.drawCenteredMessage(dst, "WIN", core.ColorGreen)
	}
}

// drawHUD draws score and ammo on the left and health on the right.
func (g *Game) drawHUD(dst *core.Screen) {
	left := fmt.Sprintf(" Score: %d  Ammo: %d  Best: %d ", g.score, g.ammo, g.highScore)
	dst.DrawTextColor(0, 0, left, core.ColorYellow)

	right := fmt.Sprintf(" Health: %.0f ", g.player.Health)
	healthColor := core.ColorGreen
	if g.player.Health < g.player.MaxHealth()/4 {
		healthColor = core.ColorBrightRed
	}
	dst.DrawTextColor(dst.Width()-len(right), 0, right, healthColor)
}

// drawCenteredMessage draws the end-of-round box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title string, titleColor core.Color) {
	score := fmt.Sprintf("Score: %d", g.score)
	if g.score > 0 && g.score == g.highScore {
		score += "  NEW BEST!"
	}
	prompt := "Press Enter to play again"

	boxW := core.Max(len(score), len(prompt)) + 4
	boxH := 7
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, titleColor)
	dst.DrawTextColor(boxX+(boxW-len(score))/2, boxY+3, score, core.ColorYellow)
	dst.DrawTextColor(boxX+(boxW-len(prompt))/2, boxY+5, prompt, core.ColorGray)
}
