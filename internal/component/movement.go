// internal/component/movement.go
package component

import "zombie-terminate/pkg/geom"

// Position - компонент позиции (центр сущности в мировых координатах)
type Position struct {
	X, Y float64
}

// Vec returns the position as a vector.
func (p Position) Vec() geom.Vec2 { return geom.Vec2{X: p.X, Y: p.Y} }

// Set moves the position to v.
func (p *Position) Set(v geom.Vec2) {
	p.X, p.Y = v.X, v.Y
}

// Velocity - компонент скорости (единиц в секунду)
type Velocity struct {
	Speed float64
}

// Collider is the full-size axis-aligned box used by movement and wall tests.
type Collider struct {
	Size geom.Vec2
}
