// Package window runs the shooter in a desktop window using Ebitengine.
package window

import (
	"fmt"
	"image"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/space-arcade/internal/core"
	"github.com/vovakirdan/space-arcade/internal/games/shooter"
	"github.com/vovakirdan/space-arcade/internal/storage"
)

// Title is the window title.
const Title = "space_game"

// frameDt is the time step handed to the simulation each frame.
const frameDt = 1.0 / 60

var (
	background = color.RGBA{0, 0, 0, 255}

	palette = map[core.Color]color.RGBA{
		core.ColorDefault:      {255, 255, 255, 255},
		core.ColorRed:          {255, 0, 0, 255},
		core.ColorGreen:        {0, 200, 0, 255},
		core.ColorYellow:       {230, 200, 0, 255},
		core.ColorCyan:         {0, 200, 200, 255},
		core.ColorWhite:        {255, 255, 255, 255},
		core.ColorBrightRed:    {255, 60, 60, 255},
		core.ColorBrightYellow: {255, 255, 80, 255},
		core.ColorGray:         {128, 128, 128, 255},
	}
)

// keyBinding maps a physical key to a game command.
type keyBinding struct {
	key    ebiten.Key
	action core.Action
}

var bindings = []keyBinding{
	{ebiten.KeyArrowUp, core.ActionMoveUp},
	{ebiten.KeyW, core.ActionMoveUp},
	{ebiten.KeyArrowDown, core.ActionMoveDown},
	{ebiten.KeyS, core.ActionMoveDown},
	{ebiten.KeyArrowLeft, core.ActionMoveLeft},
	{ebiten.KeyA, core.ActionMoveLeft},
	{ebiten.KeyArrowRight, core.ActionMoveRight},
	{ebiten.KeyD, core.ActionMoveRight},
	{ebiten.KeySpace, core.ActionFire},
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeyR, core.ActionConfirm},
}

// Window adapts a shooter game to ebiten.Game.
type Window struct {
	game     *shooter.Game
	store    *storage.Store
	logger   *log.Logger
	face     font.Face
	white    *ebiten.Image
	recorded bool
}

// New creates a window frontend. store may be nil.
func New(game *shooter.Game, store *storage.Store, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.Default()
	}

	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &Window{
		game:   game,
		store:  store,
		logger: logger,
		face:   basicfont.Face7x13,
		white:  white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Update reads input and advances the simulation by one tick.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			w.game.Input(b.action, true)
		}
		if inpututil.IsKeyJustReleased(b.key) {
			w.game.Input(b.action, false)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		w.game.Input(core.ActionConfirm, false)
	}

	w.game.Update(frameDt, w.game.Bounds())
	w.recordRound()
	return nil
}

// recordRound writes a finished round to the history store once.
func (w *Window) recordRound() {
	snap := w.game.Snapshot()
	if !snap.GameOver() {
		w.recorded = false
		return
	}
	if w.recorded || w.store == nil {
		return
	}
	w.recorded = true

	round := storage.Round{
		RoundID: snap.RoundID,
		GameID:  w.game.ID(),
		Score:   snap.Score,
		Outcome: snap.Status.String(),
		Uptime:  snap.Uptime,
	}
	if _, err := w.store.SaveRound(round); err != nil {
		w.logger.Warn("could not record round", "round", round.RoundID, "error", err)
	}
}

// Draw renders the arena, the HUD and the end-of-round message.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	w.game.Draw(imageCanvas{dst: screen, white: w.white})

	snap := w.game.Snapshot()
	bounds := snap.Bounds

	score := fmt.Sprintf("Score: %d  Ammo: %d", snap.Score, snap.Ammo)
	text.Draw(screen, score, w.face, 12, 24, palette[core.ColorWhite])

	health := fmt.Sprintf("Health: %.0f", snap.Health)
	hx := int(bounds.Width) - text.BoundString(w.face, health).Dx() - 12
	text.Draw(screen, health, w.face, hx, 24, palette[core.ColorWhite])

	switch snap.Status {
	case shooter.StatusDied:
		w.drawCentered(screen, bounds, "DEAD", fmt.Sprintf("Score: %d", snap.Score))
	case shooter.StatusWin:
		w.drawCentered(screen, bounds, "WIN", fmt.Sprintf("Score: %d", snap.Score))
	}
}

func (w *Window) drawCentered(screen *ebiten.Image, b core.Bounds, lines ...string) {
	lineHeight := w.face.Metrics().Height.Ceil() + 6
	y := int(b.Height)/2 - lineHeight*len(lines)/2
	for _, line := range lines {
		x := (int(b.Width) - text.BoundString(w.face, line).Dx()) / 2
		text.Draw(screen, line, w.face, x, y, palette[core.ColorWhite])
		y += lineHeight
	}
	prompt := "Click or press Enter to play again"
	x := (int(b.Width) - text.BoundString(w.face, prompt).Dx()) / 2
	text.Draw(screen, prompt, w.face, x, y+lineHeight, palette[core.ColorGray])
}

// Layout keeps the logical screen equal to the arena.
func (w *Window) Layout(_, _ int) (int, int) {
	b := w.game.Bounds()
	return int(b.Width), int(b.Height)
}

// Run opens the window and blocks until it is closed.
func Run(game *shooter.Game, store *storage.Store, logger *log.Logger) error {
	b := game.Bounds()
	ebiten.SetWindowSize(int(b.Width), int(b.Height))
	ebiten.SetWindowTitle(Title)

	if err := ebiten.RunGame(New(game, store, logger)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// imageCanvas draws arena shapes straight onto an ebiten image.
type imageCanvas struct {
	dst   *ebiten.Image
	white *ebiten.Image
}

func (c imageCanvas) Circle(center core.Position, radius float64, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), palette[col], true)
}

func (c imageCanvas) Square(center core.Position, size float64, col core.Color) {
	half := size / 2
	vector.DrawFilledRect(c.dst, float32(center.X-half), float32(center.Y-half), float32(size), float32(size), palette[col], false)
}

func (c imageCanvas) Ship(center core.Position, size float64, facing core.Direction, col core.Color) {
	pts := shooter.ShipOutline(center, size, facing)

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	path.LineTo(float32(pts[1].X), float32(pts[1].Y))
	path.LineTo(float32(pts[2].X), float32(pts[2].Y))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	rgba := palette[col]
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(rgba.R) / 255
		vs[i].ColorG = float32(rgba.G) / 255
		vs[i].ColorB = float32(rgba.B) / 255
		vs[i].ColorA = float32(rgba.A) / 255
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	c.dst.DrawTriangles(vs, is, c.white, op)
}
