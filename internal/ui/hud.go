package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"zombie-terminate/internal/app"
	"zombie-terminate/internal/component"
	"zombie-terminate/internal/config"
)

// HUD draws the in-run overlay: text lines, health and the wave number.
type HUD struct {
	face   font.Face
	health *PlayerHealthIndicator
	wave   *WaveIndicator
}

func NewHUD(face font.Face) *HUD {
	return &HUD{
		face:   face,
		health: NewPlayerHealthIndicator(config.HUDMarginX, config.ScreenHeight-config.HUDMarginY-2*HealthCircleRadius),
		wave:   NewWaveIndicator(config.ScreenWidth/2, config.HUDMarginY),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, s app.Snapshot) {
	y := config.HUDMarginY
	for _, line := range s.HUDLines() {
		drawText(screen, h.face, line, config.HUDMarginX, y, config.TextLightColor)
		y += config.HUDLineHeight
	}

	if s.HasPlayer {
		h.health.Draw(screen, h.face, s.Health, s.MaxHealth)
	}
	h.wave.Draw(screen, h.face, s.Wave, s.Difficulty.MaxWaves())

	if title, hint := s.Banner(); title != "" {
		h.drawBanner(screen, title, hint, s.Session)
	}
}

func (h *HUD) drawBanner(screen *ebiten.Image, title, hint string, session component.SessionState) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	clr := config.TextLightColor
	switch session {
	case component.GameOver:
		clr = config.HealthLowColor
	case component.Win:
		clr = config.SelectedColor
	}
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	drawTextCentered(screen, h.face, title, cx, cy-20, clr)
	drawTextCentered(screen, h.face, hint, cx, cy+4, config.TextLightColor)
}
