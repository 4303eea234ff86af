package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is the bitmap font used by every widget.
var DefaultFace font.Face = basicfont.Face7x13

// drawText draws s with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(screen, s, face, x, y+ascent, clr)
}

// drawTextCentered draws s centered horizontally on cx.
func drawTextCentered(screen *ebiten.Image, face font.Face, s string, cx, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	drawText(screen, face, s, cx-bounds.Dx()/2, y, clr)
}
