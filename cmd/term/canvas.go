package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"zombie-terminate/internal/app"
	"zombie-terminate/internal/component"
	"zombie-terminate/pkg/geom"
)

const hudRows = 2

var (
	wallStyle       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	zombieStyle     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	projectileStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	playerStyle     = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	hudStyle        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	bannerStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

type cell struct {
	r     rune
	style tcell.Style
}

// canvas is an off-screen character grid; flushed to the screen once per frame.
type canvas struct {
	width, height int
	cells         []cell
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height, cells: make([]cell, width*height)}
	c.clear()
	return c
}

func (c *canvas) clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', style: tcell.StyleDefault}
	}
}

func (c *canvas) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = cell{r: r, style: style}
}

func (c *canvas) at(x, y int) rune {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0
	}
	return c.cells[y*c.width+x].r
}

func (c *canvas) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		c.set(x, y, r, style)
		x++
	}
}

func (c *canvas) textCentered(y int, s string, style tcell.Style) {
	c.text((c.width-len([]rune(s)))/2, y, s, style)
}

// flush copies the grid to the screen.
func (c *canvas) flush(screen tcell.Screen) {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			cl := c.cells[y*c.width+x]
			screen.SetContent(x, y, cl.r, nil, cl.style)
		}
	}
	screen.Show()
}

// viewport maps world units onto the rows below the HUD.
type viewport struct {
	arena         app.Box
	width, height int
}

func (v viewport) toCell(p geom.Vec2) (int, int) {
	minX := v.arena.Center.X - v.arena.Size.X/2
	maxY := v.arena.Center.Y + v.arena.Size.Y/2
	col := (p.X - minX) / v.arena.Size.X * float64(v.width)
	row := (maxY - p.Y) / v.arena.Size.Y * float64(v.height)
	return int(math.Floor(col)), hudRows + int(math.Floor(row))
}

func (v viewport) fillBox(c *canvas, b app.Box, r rune, style tcell.Style) {
	x0, y0 := v.toCell(geom.Vec2{X: b.Center.X - b.Size.X/2, Y: b.Center.Y + b.Size.Y/2})
	x1, y1 := v.toCell(geom.Vec2{X: b.Center.X + b.Size.X/2, Y: b.Center.Y - b.Size.Y/2})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.set(x, y, r, style)
		}
	}
}

func drawWorld(c *canvas, s app.Snapshot) {
	v := viewport{arena: s.Arena, width: c.width, height: c.height - hudRows}
	for _, w := range s.Walls {
		v.fillBox(c, w, '#', wallStyle)
	}
	for _, z := range s.Zombies {
		x, y := v.toCell(z.Center)
		c.set(x, y, 'Z', zombieStyle)
	}
	for _, p := range s.Projectiles {
		x, y := v.toCell(p)
		c.set(x, y, '*', projectileStyle)
	}
	if s.HasPlayer {
		x, y := v.toCell(s.Player.Center)
		c.set(x, y, '@', playerStyle)
	}
}

func drawHUD(c *canvas, s app.Snapshot) {
	x := 0
	for _, line := range s.HUDLines() {
		if x+len(line) > c.width {
			break
		}
		c.text(x, 0, line, hudStyle)
		x += len(line) + 2
	}
	c.text(0, 1, "WASD move, arrows aim+fire, 1-3 weapon, P pause, Esc menu", hudStyle)

	if title, hint := s.Banner(); title != "" {
		mid := c.height / 2
		c.textCentered(mid-1, " "+title+" ", bannerStyle)
		c.textCentered(mid+1, hint, hudStyle)
	}
}

func drawDashboard(c *canvas, s app.Snapshot) {
	y := 1
	c.textCentered(y, "ZOMBIE TERMINATE", playerStyle)
	y += 2
	c.textCentered(y, s.DashboardLine(), hudStyle)
	y++
	c.textCentered(y, "Difficulty: "+s.Difficulty.String(), hudStyle)
	y += 2
	for _, item := range dashboardMenu(s) {
		c.textCentered(y, item, hudStyle)
		y++
	}
}

// render draws the whole frame for the current session.
func render(c *canvas, s app.Snapshot) {
	c.clear()
	if s.Session == component.Dashboard {
		drawDashboard(c, s)
		return
	}
	drawWorld(c, s)
	drawHUD(c, s)
}
