// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"zombie-terminate/internal/config"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.Color
	LastWaveColor    color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.TextLightColor,
		LastWaveColor:    config.ZombieColor,
		OutlineColor:     config.TextDarkColor,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране. The last wave of the chosen
// difficulty is drawn in the zombie color.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, waveNumber, maxWaves int) {
	if waveNumber <= 0 {
		return
	}

	s := "Wave " + toRoman(waveNumber)
	if maxWaves > 0 {
		s += " / " + toRoman(maxWaves)
	}

	textColor := i.Color
	if waveNumber >= maxWaves && maxWaves > 0 {
		textColor = i.LastWaveColor
	}

	// Центрируем текст
	bounds := text.BoundString(face, s)
	x := i.X - bounds.Dx()/2

	// Рисуем обводку
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawText(screen, face, s, x+dx, i.Y+dy, i.OutlineColor)
		}
	}

	// Рисуем основной текст
	drawText(screen, face, s, x, i.Y, textColor)
}
