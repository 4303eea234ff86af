// internal/system/combat.go
package system

import (
	"github.com/rs/zerolog"

	"zombie-terminate/internal/config"
	"zombie-terminate/internal/entity"
	"zombie-terminate/internal/event"
	"zombie-terminate/internal/resource"
	"zombie-terminate/internal/types"
	"zombie-terminate/pkg/geom"
)

// CombatSystem превращает пересечения в урон, смерть и награду.
type CombatSystem struct {
	ecs             *entity.ECS
	res             *resource.Context
	tuning          *config.Tuning
	eventDispatcher *event.Dispatcher
	log             zerolog.Logger
}

func NewCombatSystem(ecs *entity.ECS, res *resource.Context, tuning *config.Tuning, eventDispatcher *event.Dispatcher, log zerolog.Logger) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		res:             res,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	s.resolveProjectiles()
	s.applyContactDamage(deltaTime)
}

// resolveProjectiles checks every projectile against walls, then against
// zombies in ascending ID order. A projectile hits at most one target.
func (s *CombatSystem) resolveProjectiles() {
	for _, id := range s.ecs.Projectiles.IDs() {
		proj, _ := s.ecs.Projectiles.Get(id)
		pos, hasPos := s.ecs.Positions.Get(id)
		if !hasPos {
			continue
		}
		p := pos.Vec()

		if s.hitsWall(p) {
			s.ecs.Destroy(id)
			continue
		}

		for _, zid := range s.ecs.Zombies.IDs() {
			zombie, _ := s.ecs.Zombies.Get(zid)
			zpos, ok := s.ecs.Positions.Get(zid)
			if !ok {
				continue
			}
			r := zombieRadius(zombie, s.tuning.Zombie.FallbackRadius) + s.tuning.Weapon.ProjectileRadius
			if !geom.WithinRadius(p, zpos.Vec(), r) {
				continue
			}

			dead := ApplyDamage(s.ecs, zid, proj.Damage)
			s.ecs.Destroy(id)
			if dead {
				s.killZombie(zid, zombie.Reward)
			}
			break
		}
	}
}

func (s *CombatSystem) hitsWall(p geom.Vec2) bool {
	for _, wid := range s.ecs.Walls.IDs() {
		wpos, hasPos := s.ecs.Positions.Get(wid)
		collider, hasCollider := s.ecs.Colliders.Get(wid)
		if hasPos && hasCollider && geom.PointInAABB(p, wpos.Vec(), collider.Size) {
			return true
		}
	}
	return false
}

// killZombie убирает зомби в том же тике, поэтому награда начисляется ровно один раз.
func (s *CombatSystem) killZombie(id types.EntityID, reward int) {
	s.ecs.Destroy(id)
	s.res.Wallet.Credit(reward)
	s.log.Info().
		Int("reward", reward).
		Int("money", s.res.Wallet.Money).
		Msg("zombie killed")
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ZombieKilled,
		Data: event.ZombieKilledData{Reward: reward, Wave: s.res.Wave.CurrentWave},
	})
}

// applyContactDamage складывает урон от каждого зомби в радиусе контакта.
// Смерть запрашивается один раз, остальные зомби всё равно обрабатываются.
func (s *CombatSystem) applyContactDamage(deltaTime float64) {
	playerID, ok := s.ecs.Player()
	if !ok {
		return
	}
	playerPos, hasPos := s.ecs.Positions.Get(playerID)
	health, hasHealth := s.ecs.Healths.Get(playerID)
	if !hasPos || !hasHealth {
		return
	}
	p := playerPos.Vec()
	z := s.tuning.Zombie

	died := false
	for _, zid := range s.ecs.Zombies.IDs() {
		zpos, ok := s.ecs.Positions.Get(zid)
		if !ok || !geom.WithinRadius(p, zpos.Vec(), z.ContactRadius) {
			continue
		}
		health.Current -= z.ContactDPS * deltaTime
		if health.Dead() && !died {
			died = true
			s.log.Info().Msg("player died")
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.PlayerDied,
				Data: event.WaveData{Wave: s.res.Wave.CurrentWave},
			})
		}
	}

	if died {
		s.ecs.Destroy(playerID)
	}
}
