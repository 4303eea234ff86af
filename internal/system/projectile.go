// internal/system/projectile.go
package system

import (
	"zombie-terminate/internal/entity"
)

// ProjectileSystem двигает снаряды и удаляет их по истечении времени жизни.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.Projectiles.IDs() {
		proj, _ := s.ecs.Projectiles.Get(id)
		pos, hasPos := s.ecs.Positions.Get(id)
		if !hasPos {
			s.ecs.Destroy(id)
			continue
		}

		pos.Set(pos.Vec().Add(proj.Velocity.Scale(deltaTime)))

		proj.Lifetime.Tick(deltaTime)
		if proj.Lifetime.Finished() {
			s.ecs.Destroy(id)
		}
	}
}
