//go:build ebiten

package app

import (
	"image/color"
	"time"

	"torus-life/internal/game"
	"torus-life/internal/render"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a game.Session to the ebiten.Game interface.
type Game struct {
	session *game.Session
	painter *render.GridPainter
	hud     *ui.HUD
	banner  *ui.Banner

	onColor  color.Color
	offColor color.Color

	scale int
	now   func() time.Time
}

// New constructs a Game for the provided session.
func New(session *game.Session, scale, hudWidth int) *Game {
	size := session.Size()
	g := &Game{
		session:  session,
		painter:  render.NewGridPainter(size.W, size.H),
		banner:   ui.NewBanner(),
		onColor:  color.Black,
		offColor: color.White,
		scale:    scale,
		now:      time.Now,
	}
	if hudWidth > 0 {
		g.hud = ui.NewHUD(session, hudWidth)
	}
	return g
}

// Update handles input and advances the session on its own cadence.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.session.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.session.Faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.session.Slower()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		size := g.session.Size()
		mx, my := ebiten.CursorPosition()
		if x, y, ok := render.CellAt(mx, my, g.scale, size.W, size.H); ok {
			if err := g.session.ToggleCell(x, y); err != nil {
				return err
			}
		}
	}
	if g.hud != nil {
		g.hud.Update(g.boardWidth())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.session.Paused() {
		_, err := g.session.Step()
		return err
	}
	_, err := g.session.Advance(g.now())
	return err
}

// Draw renders the board, the HUD and any game over notice.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Grid().Cells(), g.onColor, g.offColor, g.scale)
	if g.hud != nil {
		g.hud.Draw(screen, g.boardWidth(), g.boardHeight())
	}
	if g.session.Over() {
		g.banner.Draw(screen, "Game over! ("+g.session.Reason().String()+")", g.boardWidth(), g.boardHeight())
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.boardWidth()
	if g.hud != nil {
		w += g.hud.Width()
	}
	return w, g.boardHeight()
}

func (g *Game) boardWidth() int  { return g.session.Size().W * g.scale }
func (g *Game) boardHeight() int { return g.session.Size().H * g.scale }
