// internal/component/projectile.go
package component

import (
	"zombie-terminate/internal/utils"
	"zombie-terminate/pkg/geom"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	Velocity geom.Vec2
	Lifetime *utils.Timer
	Damage   float64
}
