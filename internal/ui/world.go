// internal/ui/world.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"zombie-terminate/internal/app"
	"zombie-terminate/internal/config"
	"zombie-terminate/pkg/geom"
)

// WorldRenderer рисует арену, стены, зомби, снаряды и игрока.
type WorldRenderer struct{}

func NewWorldRenderer() *WorldRenderer {
	return &WorldRenderer{}
}

// WorldToScreen maps world units (origin at the arena center, y up) to
// screen pixels.
func WorldToScreen(p geom.Vec2) (float32, float32) {
	return float32(p.X + config.ScreenWidth/2), float32(config.ScreenHeight/2 - p.Y)
}

// ScreenToWorld is the inverse of WorldToScreen.
func ScreenToWorld(x, y int) geom.Vec2 {
	return geom.Vec2{X: float64(x) - config.ScreenWidth/2, Y: config.ScreenHeight/2 - float64(y)}
}

func (r *WorldRenderer) Draw(screen *ebiten.Image, s app.Snapshot) {
	r.drawBox(screen, s.Arena, config.ArenaColor)

	for _, w := range s.Walls {
		r.drawBox(screen, w, config.WallColor)
	}
	for _, z := range s.Zombies {
		r.drawBox(screen, z, config.ZombieColor)
	}
	for _, p := range s.Projectiles {
		x, y := WorldToScreen(p)
		vector.DrawFilledCircle(screen, x, y, config.ProjectileDrawSize/2, config.ProjectileColor, true)
	}

	if s.HasPlayer {
		p := s.Player
		r.drawBox(screen, p.Box, config.PlayerColor)
		// Линия прицела
		x0, y0 := WorldToScreen(p.Center)
		x1, y1 := WorldToScreen(p.Center.Add(geom.FromAngle(p.Facing).Scale(p.Size.X * 1.5)))
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, config.PlayerColor, true)
	}
}

func (r *WorldRenderer) drawBox(screen *ebiten.Image, b app.Box, clr color.Color) {
	x, y := WorldToScreen(geom.Vec2{X: b.Center.X - b.Size.X/2, Y: b.Center.Y + b.Size.Y/2})
	vector.DrawFilledRect(screen, x, y, float32(b.Size.X), float32(b.Size.Y), clr, false)
}
