// internal/entity/ecs.go
package entity

import (
	"zombie-terminate/internal/component"
	"zombie-terminate/internal/types"
)

// ECS - реестр сущностей и таблицы компонентов.
type ECS struct {
	generations []uint32
	alive       []bool
	free        []uint32

	Positions   *Store[component.Position]
	Velocities  *Store[component.Velocity]
	Colliders   *Store[component.Collider]
	Healths     *Store[component.Health]
	Players     *Store[component.Player]
	Weapons     *Store[component.Weapon]
	Zombies     *Store[component.Zombie]
	Projectiles *Store[component.Projectile]
	Walls       *Store[component.Wall]
}

func NewECS() *ECS {
	return &ECS{
		Positions:   NewStore[component.Position](),
		Velocities:  NewStore[component.Velocity](),
		Colliders:   NewStore[component.Collider](),
		Healths:     NewStore[component.Health](),
		Players:     NewStore[component.Player](),
		Weapons:     NewStore[component.Weapon](),
		Zombies:     NewStore[component.Zombie](),
		Projectiles: NewStore[component.Projectile](),
		Walls:       NewStore[component.Wall](),
	}
}

// NewEntity allocates an ID, reusing a freed slot when one is available.
func (ecs *ECS) NewEntity() types.EntityID {
	if n := len(ecs.free); n > 0 {
		idx := ecs.free[n-1]
		ecs.free = ecs.free[:n-1]
		ecs.alive[idx] = true
		return types.EntityID{Index: idx, Generation: ecs.generations[idx]}
	}
	idx := uint32(len(ecs.generations))
	// Поколения начинаются с 1, чтобы нулевой ID никогда не выдавался.
	ecs.generations = append(ecs.generations, 1)
	ecs.alive = append(ecs.alive, true)
	return types.EntityID{Index: idx, Generation: 1}
}

// Alive reports whether id refers to a live entity.
func (ecs *ECS) Alive(id types.EntityID) bool {
	if int(id.Index) >= len(ecs.generations) {
		return false
	}
	return ecs.alive[id.Index] && ecs.generations[id.Index] == id.Generation
}

// Destroy removes every component of id and recycles its slot. Destroying a
// stale or unknown ID is a no-op and returns false.
func (ecs *ECS) Destroy(id types.EntityID) bool {
	if !ecs.Alive(id) {
		return false
	}
	ecs.Positions.Remove(id)
	ecs.Velocities.Remove(id)
	ecs.Colliders.Remove(id)
	ecs.Healths.Remove(id)
	ecs.Players.Remove(id)
	ecs.Weapons.Remove(id)
	ecs.Zombies.Remove(id)
	ecs.Projectiles.Remove(id)
	ecs.Walls.Remove(id)

	ecs.alive[id.Index] = false
	ecs.generations[id.Index]++
	ecs.free = append(ecs.free, id.Index)
	return true
}

// Count returns the number of live entities.
func (ecs *ECS) Count() int {
	return len(ecs.generations) - len(ecs.free)
}

// Player returns the controlled entity. ok is false between runs and after
// the player died.
func (ecs *ECS) Player() (id types.EntityID, ok bool) {
	ids := ecs.Players.IDs()
	if len(ids) == 0 {
		return types.NoEntity, false
	}
	return ids[0], true
}

func (ecs *ECS) ClearZombies() {
	for _, id := range ecs.Zombies.IDs() {
		ecs.Destroy(id)
	}
}

func (ecs *ECS) ClearProjectiles() {
	for _, id := range ecs.Projectiles.IDs() {
		ecs.Destroy(id)
	}
}

func (ecs *ECS) ClearPlayer() {
	for _, id := range ecs.Players.IDs() {
		ecs.Destroy(id)
	}
}

// ClearRun despawns everything a run creates. Walls stay.
func (ecs *ECS) ClearRun() {
	ecs.ClearPlayer()
	ecs.ClearZombies()
	ecs.ClearProjectiles()
}
