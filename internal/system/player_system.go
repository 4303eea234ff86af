// internal/system/player_system.go
package system

import (
	"github.com/rs/zerolog"

	"zombie-terminate/internal/component"
	"zombie-terminate/internal/config"
	"zombie-terminate/internal/defs"
	"zombie-terminate/internal/entity"
	"zombie-terminate/internal/input"
	"zombie-terminate/internal/resource"
	"zombie-terminate/internal/types"
	"zombie-terminate/internal/utils"
	"zombie-terminate/pkg/geom"
)

// PlayerSystem отвечает за прицеливание, смену оружия и стрельбу.
type PlayerSystem struct {
	ecs    *entity.ECS
	res    *resource.Context
	tuning *config.Tuning
	log    zerolog.Logger
}

func NewPlayerSystem(ecs *entity.ECS, res *resource.Context, tuning *config.Tuning, log zerolog.Logger) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, res: res, tuning: tuning, log: log}
}

// Spawn creates the player at the origin with stats derived from the
// persistent upgrade levels.
func (s *PlayerSystem) Spawn() types.EntityID {
	t := s.tuning
	fireRate := t.FireRateForLevel(s.res.Stats.WeaponUpgradeLevel)
	maxAmmo := t.MaxAmmoForLevel(s.res.Stats.MaxAmmoLevel)

	id := s.ecs.NewEntity()
	s.ecs.Positions.Add(id, &component.Position{X: 0, Y: 0})
	s.ecs.Velocities.Add(id, &component.Velocity{Speed: t.Player.Speed})
	s.ecs.Colliders.Add(id, &component.Collider{Size: geom.Vec2{X: t.Player.Size, Y: t.Player.Size}})
	s.ecs.Healths.Add(id, &component.Health{Current: t.Player.MaxHealth, Max: t.Player.MaxHealth})
	s.ecs.Players.Add(id, &component.Player{})
	s.ecs.Weapons.Add(id, &component.Weapon{
		Kind:        defs.WeaponPistol,
		FireRate:    fireRate,
		Cooldown:    utils.NewTimer(fireRate, utils.Once),
		CurrentAmmo: maxAmmo,
		MaxAmmo:     maxAmmo,
	})

	s.log.Debug().
		Str("entity", id.String()).
		Float64("fireRate", fireRate).
		Int("maxAmmo", maxAmmo).
		Msg("player spawned")
	return id
}

// Update applies the player's intents for this tick.
func (s *PlayerSystem) Update(deltaTime float64, frame input.Frame) {
	id, ok := s.ecs.Player()
	if !ok {
		return
	}
	pos, hasPos := s.ecs.Positions.Get(id)
	player, _ := s.ecs.Players.Get(id)
	weapon, hasWeapon := s.ecs.Weapons.Get(id)
	if !hasPos || !hasWeapon {
		return
	}

	if frame.HasAim {
		if diff := frame.Aim.Sub(pos.Vec()); diff != (geom.Vec2{}) {
			player.Facing = diff.Angle()
		}
	}

	if frame.WeaponSlot != 0 {
		s.switchWeapon(weapon, frame.WeaponSlot)
	}

	weapon.Cooldown.Tick(deltaTime)
	if frame.Fire && weapon.Ready() {
		s.fire(pos.Vec(), player.Facing, weapon)
	}
}

func (s *PlayerSystem) switchWeapon(weapon *component.Weapon, slot int) {
	kind, ok := defs.WeaponForSlot(slot)
	if !ok || kind == weapon.Kind {
		return
	}
	if !s.res.Stats.Unlocked(kind) {
		s.log.Debug().Stringer("weapon", kind).Msg("weapon is locked")
		return
	}
	weapon.Kind = kind
	weapon.Cooldown.Reset()
	s.log.Debug().Stringer("weapon", kind).Msg("weapon switched")
}

func (s *PlayerSystem) fire(origin geom.Vec2, facing float64, weapon *component.Weapon) {
	def := defs.WeaponLibrary[weapon.Kind]
	w := s.tuning.Weapon

	id := s.ecs.NewEntity()
	s.ecs.Positions.Add(id, &component.Position{X: origin.X, Y: origin.Y})
	s.ecs.Projectiles.Add(id, &component.Projectile{
		Velocity: geom.FromAngle(facing).Scale(w.ProjectileSpeed),
		Lifetime: utils.NewTimer(w.ProjectileLifetime, utils.Once),
		Damage:   def.Damage,
	})

	weapon.CurrentAmmo--
	weapon.Cooldown.Reset()
}
