// internal/system/utils.go
package system

import (
	"zombie-terminate/internal/component"
	"zombie-terminate/internal/entity"
	"zombie-terminate/internal/types"
	"zombie-terminate/pkg/geom"
)

// ApplyDamage вычитает урон из здоровья сущности и сообщает, умерла ли она.
// Сущности без здоровья урон игнорируют.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage float64) (dead bool) {
	health, ok := ecs.Healths.Get(entityID)
	if !ok {
		return false
	}
	health.Current -= damage
	return health.Dead()
}

// blockedByWall reports whether a box of size centered at center would
// overlap any wall.
func blockedByWall(ecs *entity.ECS, center, size geom.Vec2) bool {
	for _, id := range ecs.Walls.IDs() {
		wallPos, hasPos := ecs.Positions.Get(id)
		collider, hasCollider := ecs.Colliders.Get(id)
		if !hasPos || !hasCollider {
			continue
		}
		if geom.OverlapsAABB(center, size, wallPos.Vec(), collider.Size) {
			return true
		}
	}
	return false
}

// zombieBox returns the box used for zombie movement.
func zombieBox(z *component.Zombie, fallback float64) geom.Vec2 {
	s := z.Size
	if s <= 0 {
		s = fallback
	}
	return geom.Vec2{X: s, Y: s}
}

// zombieRadius returns the radius used for projectile hits.
func zombieRadius(z *component.Zombie, fallback float64) float64 {
	if z.Size <= 0 {
		return fallback
	}
	return z.Size / 2
}
