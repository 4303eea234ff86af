package system

import (
	"github.com/rs/zerolog"

	"zombie-terminate/internal/component"
	"zombie-terminate/internal/config"
	"zombie-terminate/internal/defs"
	"zombie-terminate/internal/entity"
	"zombie-terminate/internal/event"
	"zombie-terminate/internal/resource"
	"zombie-terminate/internal/types"
	"zombie-terminate/internal/utils"
	"zombie-terminate/pkg/geom"
)

type fixture struct {
	ecs        *entity.ECS
	res        *resource.Context
	tuning     *config.Tuning
	dispatcher *event.Dispatcher
	events     []event.Event
}

func newFixture() *fixture {
	tuning := config.Default()
	f := &fixture{
		ecs:        entity.NewECS(),
		res:        resource.NewContext(tuning.Zombie.SpawnInterval, tuning.Shop.FireRateBaseCost),
		tuning:     &tuning,
		dispatcher: event.NewDispatcher(),
	}
	record := event.ListenerFunc(func(e event.Event) { f.events = append(f.events, e) })
	for _, t := range []event.EventType{
		event.ZombieKilled, event.PlayerDied, event.WaveStarted, event.WaveCleared,
		event.RunWon, event.PurchaseMade, event.PurchaseRefused, event.RunEnded,
	} {
		f.dispatcher.Subscribe(t, record)
	}
	return f
}

func (f *fixture) count(t event.EventType) int {
	n := 0
	for _, e := range f.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (f *fixture) playerSystem() *PlayerSystem {
	return NewPlayerSystem(f.ecs, f.res, f.tuning, zerolog.Nop())
}

func (f *fixture) combatSystem() *CombatSystem {
	return NewCombatSystem(f.ecs, f.res, f.tuning, f.dispatcher, zerolog.Nop())
}

func (f *fixture) waveSystem(seed int64) *WaveSystem {
	return NewWaveSystem(f.ecs, f.res, f.tuning, f.dispatcher, utils.NewPRNGService(seed), zerolog.Nop())
}

func (f *fixture) shopSystem() *ShopSystem {
	return NewShopSystem(f.ecs, f.res, f.tuning, f.dispatcher, zerolog.Nop())
}

func (f *fixture) spawnPlayerAt(x, y float64) types.EntityID {
	id := f.playerSystem().Spawn()
	pos, _ := f.ecs.Positions.Get(id)
	pos.Set(geom.Vec2{X: x, Y: y})
	return id
}

func (f *fixture) addWall(w defs.WallDefinition) types.EntityID {
	id := f.ecs.NewEntity()
	f.ecs.Positions.Add(id, &component.Position{X: w.X, Y: w.Y})
	f.ecs.Colliders.Add(id, &component.Collider{Size: geom.Vec2{X: w.Width, Y: w.Height}})
	f.ecs.Walls.Add(id, &component.Wall{})
	return id
}

func (f *fixture) addZombie(x, y float64, tier defs.ZombieTier) types.EntityID {
	id := f.ecs.NewEntity()
	f.ecs.Positions.Add(id, &component.Position{X: x, Y: y})
	f.ecs.Velocities.Add(id, &component.Velocity{Speed: f.tuning.Zombie.Speed})
	f.ecs.Healths.Add(id, &component.Health{Current: tier.Health, Max: tier.Health})
	f.ecs.Zombies.Add(id, &component.Zombie{Size: tier.Size, Reward: tier.Reward})
	return id
}

func (f *fixture) addProjectile(x, y float64, velocity geom.Vec2, damage float64) types.EntityID {
	id := f.ecs.NewEntity()
	f.ecs.Positions.Add(id, &component.Position{X: x, Y: y})
	f.ecs.Projectiles.Add(id, &component.Projectile{
		Velocity: velocity,
		Lifetime: utils.NewTimer(f.tuning.Weapon.ProjectileLifetime, utils.Once),
		Damage:   damage,
	})
	return id
}

func (f *fixture) position(id types.EntityID) geom.Vec2 {
	pos, _ := f.ecs.Positions.Get(id)
	return pos.Vec()
}
