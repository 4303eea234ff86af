package app

import (
	"zombie-terminate/internal/component"
	"zombie-terminate/internal/defs"
	"zombie-terminate/pkg/geom"
)

// Box is a drawable axis-aligned box in world units.
type Box struct {
	Center geom.Vec2
	Size   geom.Vec2
}

// PlayerView is what the frontends need to draw the player.
type PlayerView struct {
	Box
	Facing float64
}

// Snapshot is a flat, read-only copy of everything the frontends show.
type Snapshot struct {
	Session component.SessionState

	HasPlayer     bool
	Health        float64
	MaxHealth     float64
	Ammo          int
	MaxAmmo       int
	Weapon        defs.WeaponKind
	FireRate      float64
	FireRateCost  int
	Money         int
	Wave          int
	ZombiesToCome int

	TotalMoney         int
	Level              int
	WeaponUpgradeLevel int
	MaxAmmoLevel       int
	UnlockedShotgun    bool
	UnlockedRifle      bool
	Difficulty         defs.Difficulty

	WeaponUpgradeCost int
	AmmoUpgradeCost   int
	ShotgunCost       int
	RifleCost         int

	Arena       Box
	Player      PlayerView
	Zombies     []Box
	Projectiles []geom.Vec2
	Walls       []Box
}

// Snapshot copies the current simulation state. The session is filled in by
// the state machine.
func (g *Game) Snapshot() Snapshot {
	res := g.Resources
	t := g.Tuning
	s := Snapshot{
		FireRateCost:  res.Costs.FireRateUpgrade,
		Money:         res.Wallet.Money,
		Wave:          res.Wave.CurrentWave,
		ZombiesToCome: res.Wave.ZombiesRemaining,

		TotalMoney:         res.Stats.TotalMoney,
		Level:              res.Stats.Level,
		WeaponUpgradeLevel: res.Stats.WeaponUpgradeLevel,
		MaxAmmoLevel:       res.Stats.MaxAmmoLevel,
		UnlockedShotgun:    res.Stats.UnlockedShotgun,
		UnlockedRifle:      res.Stats.UnlockedRifle,
		Difficulty:         res.Settings.Difficulty,

		WeaponUpgradeCost: t.Shop.WeaponUpgradeCost,
		AmmoUpgradeCost:   t.Shop.AmmoUpgradeCost,
		ShotgunCost:       t.Shop.ShotgunCost,
		RifleCost:         t.Shop.RifleCost,

		Arena: Box{
			Center: geom.Vec2{X: (t.Arena.MinX + t.Arena.MaxX) / 2, Y: (t.Arena.MinY + t.Arena.MaxY) / 2},
			Size:   geom.Vec2{X: t.Arena.MaxX - t.Arena.MinX, Y: t.Arena.MaxY - t.Arena.MinY},
		},
	}

	ecs := g.ECS
	if id, ok := ecs.Player(); ok {
		s.HasPlayer = true
		if h, ok := ecs.Healths.Get(id); ok {
			s.Health, s.MaxHealth = h.Visible(), h.Max
		}
		if w, ok := ecs.Weapons.Get(id); ok {
			s.Ammo, s.MaxAmmo = w.CurrentAmmo, w.MaxAmmo
			s.Weapon, s.FireRate = w.Kind, w.FireRate
		}
		pos, _ := ecs.Positions.Get(id)
		col, _ := ecs.Colliders.Get(id)
		p, _ := ecs.Players.Get(id)
		if pos != nil && col != nil && p != nil {
			s.Player = PlayerView{Box: Box{Center: pos.Vec(), Size: col.Size}, Facing: p.Facing}
		}
	}

	for _, id := range ecs.Walls.IDs() {
		pos, hasPos := ecs.Positions.Get(id)
		col, hasCol := ecs.Colliders.Get(id)
		if hasPos && hasCol {
			s.Walls = append(s.Walls, Box{Center: pos.Vec(), Size: col.Size})
		}
	}
	for _, id := range ecs.Zombies.IDs() {
		z, _ := ecs.Zombies.Get(id)
		if pos, ok := ecs.Positions.Get(id); ok {
			size := z.Size
			if size <= 0 {
				size = t.Zombie.FallbackSize
			}
			s.Zombies = append(s.Zombies, Box{Center: pos.Vec(), Size: geom.Vec2{X: size, Y: size}})
		}
	}
	for _, id := range ecs.Projectiles.IDs() {
		if pos, ok := ecs.Positions.Get(id); ok {
			s.Projectiles = append(s.Projectiles, pos.Vec())
		}
	}
	return s
}
