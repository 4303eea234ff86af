// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.06
	WindowTitle  = "Zombie Terminate"

	// Размеры для отрисовки; на симуляцию не влияют.
	ProjectileDrawSize = 5.0
	HUDFontScale       = 1
	HUDLineHeight      = 18
	HUDMarginX         = 16
	HUDMarginY         = 16

	DashboardButtonWidth  = 260
	DashboardButtonHeight = 36
	DashboardButtonGap    = 10
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	ArenaColor       = color.RGBA{40, 44, 52, 255}
	WallColor        = color.RGBA{128, 128, 128, 255}
	PlayerColor      = color.RGBA{77, 77, 255, 255}
	ZombieColor      = color.RGBA{255, 0, 0, 255}
	ProjectileColor  = color.RGBA{255, 255, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor = color.RGBA{100, 160, 210, 240}
	SelectedColor    = color.RGBA{50, 205, 50, 255}
	DisabledColor    = color.RGBA{128, 0, 128, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 160}
	HealthHighColor  = color.RGBA{50, 100, 255, 255}
	HealthLowColor   = color.RGBA{220, 60, 60, 255}
)
