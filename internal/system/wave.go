// internal/system/wave.go
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

// WaveSystem - директор волн: проверяет зачистку, переключает волны и
// спавнит зомби по таймеру.
type WaveSystem struct {
	ecs             *entity.ECS
	res             *resource.Context
	tuning          *config.Tuning
	eventDispatcher *event.Dispatcher
	prng            *utils.PRNGService
	log             zerolog.Logger
}

func NewWaveSystem(ecs *entity.ECS, res *resource.Context, tuning *config.Tuning, eventDispatcher *event.Dispatcher, prng *utils.PRNGService, log zerolog.Logger) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		res:             res,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
		prng:            prng,
		log:             log,
	}
}

func (s *WaveSystem) Update(deltaTime float64) {
	difficulty := s.res.Settings.Difficulty
	if !difficulty.IsSet() {
		// Вход в Playing без сложности запрещён машиной состояний.
		s.log.Error().Msg("wave director ran without a difficulty")
		return
	}
	wave := &s.res.Wave

	if wave.ZombiesRemaining == 0 && s.ecs.Zombies.Len() == 0 {
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: event.WaveData{Wave: wave.CurrentWave}})

		if wave.CurrentWave >= difficulty.MaxWaves() {
			s.log.Info().Int("wave", wave.CurrentWave).Msg("all waves cleared")
			s.eventDispatcher.Dispatch(event.Event{Type: event.RunWon, Data: event.WaveData{Wave: wave.CurrentWave}})
			return
		}

		wave.CurrentWave++
		wave.ZombiesRemaining = defs.ZombiesForWave(wave.CurrentWave)
		s.log.Info().Int("wave", wave.CurrentWave).Int("zombies", wave.ZombiesRemaining).Msg("starting wave")
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Wave: wave.CurrentWave}})
	}

	wave.SpawnTimer.Tick(deltaTime)
	if !wave.SpawnTimer.JustFinished() || wave.ZombiesRemaining == 0 {
		return
	}
	for i := 0; i < difficulty.SpawnCount() && wave.ZombiesRemaining > 0; i++ {
		s.spawnZombie(wave.CurrentWave)
		wave.ZombiesRemaining--
	}
}

func (s *WaveSystem) spawnZombie(waveNumber int) types.EntityID {
	tier := defs.TierForWave(waveNumber)
	pos := s.placement(geom.Vec2{X: tier.Size, Y: tier.Size})

	id := s.ecs.NewEntity()
	s.ecs.Positions.Add(id, &component.Position{X: pos.X, Y: pos.Y})
	s.ecs.Velocities.Add(id, &component.Velocity{Speed: s.tuning.Zombie.Speed})
	s.ecs.Healths.Add(id, &component.Health{Current: tier.Health, Max: tier.Health})
	s.ecs.Zombies.Add(id, &component.Zombie{Size: tier.Size, Reward: tier.Reward})
	return id
}

// placement picks a uniform point inside the arena, re-rolling points that
// would put the zombie inside a wall. After SpawnAttempts failures the last
// roll is used as is.
func (s *WaveSystem) placement(size geom.Vec2) geom.Vec2 {
	a := s.tuning.Arena
	attempts := s.tuning.Zombie.SpawnAttempts
	if attempts < 1 {
		attempts = 1
	}

	var p geom.Vec2
	for i := 0; i < attempts; i++ {
		p = geom.Vec2{X: s.prng.Range(a.MinX, a.MaxX), Y: s.prng.Range(a.MinY, a.MaxY)}
		if !blockedByWall(s.ecs, p, size) {
			return p
		}
	}
	s.log.Debug().Float64("x", p.X).Float64("y", p.Y).Msg("no free spawn point found")
	return p
}
