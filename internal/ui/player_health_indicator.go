// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"zombie-terminate/internal/config"
)

const (
	HealthCols          = 10
	HealthCircleRadius  = 6.0
	HealthCircleSpacing = 3.0
	HealthPerCircle     = 10.0
)

// PlayerHealthIndicator отображает здоровье игрока рядом кружков.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// filledCircles returns how many circles health fills, rounding up so a
// living player never shows an empty row.
func filledCircles(health float64) int {
	if health <= 0 {
		return 0
	}
	return int(math.Ceil(health / HealthPerCircle))
}

// Draw рисует кружки: синие при здоровье больше половины, иначе красные.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, face font.Face, health, maxHealth float64) {
	total := filledCircles(maxHealth)
	filled := filledCircles(health)

	fill := config.HealthHighColor
	if health <= maxHealth/2 {
		fill = config.HealthLowColor
	}

	for j := 0; j < total; j++ {
		row, col := j/HealthCols, j%HealthCols
		cx := i.X + float32(col)*(HealthCircleRadius*2+HealthCircleSpacing) + HealthCircleRadius
		cy := i.Y + float32(row)*(HealthCircleRadius*2+HealthCircleSpacing) + HealthCircleRadius

		if j < filled {
			vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, fill, true)
		}
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, config.TextLightColor, true)
	}

	// Текстовое отображение здоровья справа от ряда
	label := fmt.Sprintf("%.0f/%.0f", health, maxHealth)
	x := int(i.X) + HealthCols*int(HealthCircleRadius*2+HealthCircleSpacing) + 6
	drawText(screen, face, label, x, int(i.Y), config.TextLightColor)
}
