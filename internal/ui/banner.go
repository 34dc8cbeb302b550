//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Banner shows the game over notice centred over the board.
type Banner struct {
	pixel *ebiten.Image
}

// NewBanner constructs a Banner.
func NewBanner() *Banner {
	b := &Banner{pixel: ebiten.NewImage(1, 1)}
	b.pixel.Fill(color.White)
	return b
}

// Draw paints msg in a strip across the middle of a w x h area. An empty
// message draws nothing.
func (b *Banner) Draw(screen *ebiten.Image, msg string, w, h int) {
	if msg == "" {
		return
	}
	const stripHeight = 48
	top := (h - stripHeight) / 2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), stripHeight)
	op.GeoM.Translate(0, float64(top))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 20, G: 20, B: 24, A: 220})
	screen.DrawImage(b.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, msg)
	x := (w - bounds.Dx()) / 2
	y := top + (stripHeight+bounds.Dy())/2
	text.Draw(screen, msg, face, x, y, color.RGBA{R: 255, G: 210, B: 120, A: 255})
}
