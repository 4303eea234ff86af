// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"zombie-terminate/internal/config"
	"zombie-terminate/internal/input"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect     image.Rectangle
	Text     string
	Action   input.Action
	Disabled bool
	Selected bool
}

// Contains reports whether the point (x, y) is over the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, hovered bool) {
	var bg color.Color = config.ButtonColor
	switch {
	case b.Disabled:
		bg = config.DisabledColor
	case b.Selected:
		bg = config.SelectedColor
	case hovered:
		bg = config.ButtonHoverColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, config.TextDarkColor, false)

	textY := b.Rect.Min.Y + (b.Rect.Dy()-face.Metrics().Height.Ceil())/2
	drawTextCentered(screen, face, b.Text, b.Rect.Min.X+b.Rect.Dx()/2, textY, config.TextLightColor)
}
