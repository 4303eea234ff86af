// internal/system/movement.go
package system

import (
	"zombie-terminate/internal/component"
	"zombie-terminate/internal/config"
	"zombie-terminate/internal/entity"
	"zombie-terminate/pkg/geom"
)

// MovementSystem двигает игрока по вводу и зомби к игроку. Шаг, который
// заходит в стену, отбрасывается целиком: скольжения вдоль стен нет.
type MovementSystem struct {
	ecs    *entity.ECS
	tuning *config.Tuning
}

func NewMovementSystem(ecs *entity.ECS, tuning *config.Tuning) *MovementSystem {
	return &MovementSystem{ecs: ecs, tuning: tuning}
}

// Update applies one tick of movement. intent does not need to be unit
// length; any non-zero vector moves the player at full speed.
func (s *MovementSystem) Update(deltaTime float64, intent geom.Vec2) {
	playerID, ok := s.ecs.Player()
	if !ok {
		return
	}
	s.movePlayer(deltaTime, intent)

	playerPos, ok := s.ecs.Positions.Get(playerID)
	if !ok {
		return
	}
	target := playerPos.Vec()

	for _, id := range s.ecs.Zombies.IDs() {
		zombie, _ := s.ecs.Zombies.Get(id)
		pos, hasPos := s.ecs.Positions.Get(id)
		vel, hasVel := s.ecs.Velocities.Get(id)
		if !hasPos || !hasVel {
			continue
		}
		dir := target.Sub(pos.Vec()).Normalize()
		s.step(pos, dir.Scale(vel.Speed*deltaTime), zombieBox(zombie, s.tuning.Zombie.FallbackSize))
	}
}

func (s *MovementSystem) movePlayer(deltaTime float64, intent geom.Vec2) {
	id, _ := s.ecs.Player()
	pos, hasPos := s.ecs.Positions.Get(id)
	vel, hasVel := s.ecs.Velocities.Get(id)
	collider, hasCollider := s.ecs.Colliders.Get(id)
	if !hasPos || !hasVel || !hasCollider {
		return
	}
	dir := intent.Normalize()
	if dir == (geom.Vec2{}) {
		return
	}
	s.step(pos, dir.Scale(vel.Speed*deltaTime), collider.Size)
}

// step moves pos by delta unless the resulting box overlaps a wall.
func (s *MovementSystem) step(pos *component.Position, delta, size geom.Vec2) {
	proposed := pos.Vec().Add(delta)
	if blockedByWall(s.ecs, proposed, size) {
		return
	}
	pos.Set(proposed)
}
