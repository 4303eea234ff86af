package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"zombie-terminate/internal/app"
	"zombie-terminate/internal/component"
	"zombie-terminate/pkg/geom"
)

func row(c *canvas, y int) string {
	var b strings.Builder
	for x := 0; x < c.width; x++ {
		b.WriteRune(c.at(x, y))
	}
	return b.String()
}

func arena() app.Box {
	return app.Box{Size: geom.Vec2{X: 800, Y: 600}}
}

func TestViewport_ToCell(t *testing.T) {
	v := viewport{arena: arena(), width: 80, height: 30}

	x, y := v.toCell(geom.Vec2{X: -400, Y: 300})
	assert.Equal(t, 0, x)
	assert.Equal(t, hudRows, y)

	x, y = v.toCell(geom.Vec2{})
	assert.Equal(t, 40, x)
	assert.Equal(t, hudRows+15, y)
}

func TestRender_Playing(t *testing.T) {
	c := newCanvas(80, 32)
	s := app.Snapshot{
		Session:     component.Playing,
		HasPlayer:   true,
		Health:      100,
		MaxHealth:   100,
		Arena:       arena(),
		Player:      app.PlayerView{Box: app.Box{Size: geom.Vec2{X: 10, Y: 10}}},
		Zombies:     []app.Box{{Center: geom.Vec2{X: 200}}},
		Projectiles: []geom.Vec2{{X: -200}},
		Walls:       []app.Box{{Center: geom.Vec2{Y: 200}, Size: geom.Vec2{X: 100, Y: 20}}},
	}

	render(c, s)

	x, y := viewport{arena: s.Arena, width: 80, height: 30}.toCell(geom.Vec2{})
	assert.Equal(t, '@', c.at(x, y))
	assert.Contains(t, row(c, y), "Z")
	assert.Contains(t, row(c, y), "*")
	assert.Contains(t, row(c, 0), "Money: $0")

	_, wy := viewport{arena: s.Arena, width: 80, height: 30}.toCell(geom.Vec2{Y: 200})
	assert.Contains(t, row(c, wy), "#####")
}

func TestRender_Banner(t *testing.T) {
	c := newCanvas(80, 24)
	render(c, app.Snapshot{Session: component.GameOver, Arena: arena(), Money: 40})

	assert.Contains(t, row(c, 11), "GAME OVER")
	assert.Contains(t, row(c, 13), "Earned $40")
}

func TestRender_Dashboard(t *testing.T) {
	c := newCanvas(80, 24)
	render(c, app.Snapshot{Session: component.Dashboard, TotalMoney: 1250, Level: 1, UnlockedShotgun: true})

	var all strings.Builder
	for y := 0; y < c.height; y++ {
		all.WriteString(row(c, y))
	}
	assert.Contains(t, all.String(), "Level: 1 | Money: $1250")
	assert.Contains(t, all.String(), "shotgun (owned)")
	assert.Contains(t, all.String(), "[Enter] play")
}

func TestCanvas_ClipsOutOfBounds(t *testing.T) {
	c := newCanvas(4, 2)
	c.set(-1, 0, 'x', hudStyle)
	c.set(4, 1, 'x', hudStyle)
	c.text(2, 0, "abc", hudStyle)
	assert.Equal(t, "  ab", row(c, 0))
	assert.Equal(t, rune(0), c.at(9, 9))
}
