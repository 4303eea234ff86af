// internal/app/game.go
package app

import (
	"github.com/rs/zerolog"

	"zombie-terminate/internal/component"
	"zombie-terminate/internal/config"
	"zombie-terminate/internal/entity"
	"zombie-terminate/internal/event"
	"zombie-terminate/internal/input"
	"zombie-terminate/internal/resource"
	"zombie-terminate/internal/system"
	"zombie-terminate/internal/types"
	"zombie-terminate/internal/utils"
	"zombie-terminate/pkg/geom"
)

// Game holds the simulation: entities, resources and the systems that run
// them in a fixed order.
type Game struct {
	ECS             *entity.ECS
	Resources       *resource.Context
	Tuning          config.Tuning
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Logger          zerolog.Logger

	PlayerSystem      *system.PlayerSystem
	MovementSystem    *system.MovementSystem
	ProjectileSystem  *system.ProjectileSystem
	CombatSystem      *system.CombatSystem
	WaveSystem        *system.WaveSystem
	ShopSystem        *system.ShopSystem
	ProgressionSystem *system.ProgressionSystem
	StateSystem       *system.StateSystem
}

// NewGame builds the simulation and loads the level walls. No run is active
// until BeginRun.
func NewGame(tuning config.Tuning, logger zerolog.Logger) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		Resources:       resource.NewContext(tuning.Zombie.SpawnInterval, tuning.Shop.FireRateBaseCost),
		Tuning:          tuning,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(tuning.Seed),
		Logger:          logger,
	}
	t := &g.Tuning
	res := g.Resources

	g.PlayerSystem = system.NewPlayerSystem(ecs, res, t, logger)
	g.MovementSystem = system.NewMovementSystem(ecs, t)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.CombatSystem = system.NewCombatSystem(ecs, res, t, eventDispatcher, logger)
	g.WaveSystem = system.NewWaveSystem(ecs, res, t, eventDispatcher, g.Rng, logger)
	g.ShopSystem = system.NewShopSystem(ecs, res, t, eventDispatcher, logger)
	g.ProgressionSystem = system.NewProgressionSystem(res, t, eventDispatcher, logger)
	g.StateSystem = system.NewStateSystem(eventDispatcher)

	g.loadLevel()
	return g
}

func (g *Game) loadLevel() {
	for _, w := range g.Tuning.Walls {
		id := g.ECS.NewEntity()
		g.ECS.Positions.Add(id, &component.Position{X: w.X, Y: w.Y})
		g.ECS.Colliders.Add(id, &component.Collider{Size: geom.Vec2{X: w.Width, Y: w.Height}})
		g.ECS.Walls.Add(id, &component.Wall{})
	}
	g.Logger.Debug().Int("walls", len(g.Tuning.Walls)).Msg("level loaded")
}

// Update runs one gameplay tick. Only called while a run is being played.
func (g *Game) Update(deltaTime float64, frame input.Frame) {
	// 1. Намерения игрока: прицел, оружие, выстрел, покупка.
	g.PlayerSystem.Update(deltaTime, frame)
	if frame.Has(input.BuyFireRate) {
		g.ShopSystem.BuyFireRate()
	}
	// 2. Движение.
	g.MovementSystem.Update(deltaTime, frame.Move)
	// 3. Полёт снарядов.
	g.ProjectileSystem.Update(deltaTime)
	// 4. Бой.
	g.CombatSystem.Update(deltaTime)
	// 5. Директор волн.
	g.WaveSystem.Update(deltaTime)
}

// BeginRun starts a fresh run: clears run entities, resets run resources and
// spawns the player.
func (g *Game) BeginRun() types.EntityID {
	g.ClearRun()
	g.ProgressionSystem.BeginRun()
	g.StateSystem.Clear()
	id := g.PlayerSystem.Spawn()
	g.Logger.Info().
		Stringer("difficulty", g.Resources.Settings.Difficulty).
		Msg("run started")
	return id
}

// ClearRun despawns the player, all zombies and all projectiles.
func (g *Game) ClearRun() {
	g.ECS.ClearRun()
}

// EndRun reconciles the run into persistent progress and clears the level.
func (g *Game) EndRun(outcome string) {
	g.ProgressionSystem.Reconcile(outcome)
	g.ClearRun()
	g.StateSystem.Clear()
}

// TakeOutcome returns the session change requested during the last Update.
func (g *Game) TakeOutcome() (component.SessionState, bool) {
	return g.StateSystem.Take()
}
