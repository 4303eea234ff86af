package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zombie-terminate/internal/component"
	"zombie-terminate/internal/defs"
	"zombie-terminate/internal/event"
	"zombie-terminate/pkg/geom"
)

func TestWave_NoClearWhileZombiesAlive(t *testing.T) {
	f := newFixture()
	f.res.Settings.Difficulty = defs.DifficultyEasy
	f.res.Wave.ZombiesRemaining = 0
	f.addZombie(100, 100, defs.TierForWave(1))

	f.waveSystem(1).Update(0.016)

	assert.Zero(t, f.count(event.WaveCleared))
	assert.Zero(t, f.count(event.RunWon))
}

func TestWave_NoClearWhileSpawnsPending(t *testing.T) {
	f := newFixture()
	f.res.Settings.Difficulty = defs.DifficultyEasy
	f.res.Wave.ZombiesRemaining = 1

	f.waveSystem(1).Update(0.016)

	assert.Zero(t, f.count(event.WaveCleared))
}

func TestWave_EasyWinsAfterFirstWave(t *testing.T) {
	f := newFixture()
	f.res.Settings.Difficulty = defs.DifficultyEasy
	f.res.Wave.ZombiesRemaining = 0
	sink := NewStateSystem(f.dispatcher)

	f.waveSystem(1).Update(0.016)

	assert.Equal(t, 1, f.count(event.RunWon))
	next, ok := sink.Take()
	require.True(t, ok)
	assert.Equal(t, component.Win, next)
	assert.Equal(t, 1, f.res.Wave.CurrentWave)
}

func TestWave_HardAdvancesFromSecondWave(t *testing.T) {
	f := newFixture()
	f.res.Settings.Difficulty = defs.DifficultyHard
	f.res.Wave.CurrentWave = 2
	f.res.Wave.ZombiesRemaining = 0
	sink := NewStateSystem(f.dispatcher)

	f.waveSystem(1).Update(0.016)

	assert.Zero(t, f.count(event.RunWon))
	assert.Equal(t, 3, f.res.Wave.CurrentWave)
	assert.Equal(t, 11, f.res.Wave.ZombiesRemaining)
	assert.Equal(t, 1, f.count(event.WaveStarted))
	_, ok := sink.Take()
	assert.False(t, ok)
}

func TestWave_HardWinsAtThirdWave(t *testing.T) {
	f := newFixture()
	f.res.Settings.Difficulty = defs.DifficultyHard
	f.res.Wave.CurrentWave = 3
	f.res.Wave.ZombiesRemaining = 0

	f.waveSystem(1).Update(0.016)
	assert.Equal(t, 1, f.count(event.RunWon))
}

func TestWave_SpawnCountByDifficulty(t *testing.T) {
	for _, d := range []defs.Difficulty{defs.DifficultyEasy, defs.DifficultyMedium, defs.DifficultyHard} {
		t.Run(d.String(), func(t *testing.T) {
			f := newFixture()
			f.res.Settings.Difficulty = d
			ws := f.waveSystem(7)

			ws.Update(1.0)
			assert.Zero(t, f.ecs.Zombies.Len(), "timer has not fired yet")

			ws.Update(1.0)
			assert.Equal(t, d.SpawnCount(), f.ecs.Zombies.Len())
			assert.Equal(t, 10-d.SpawnCount(), f.res.Wave.ZombiesRemaining)
		})
	}
}

func TestWave_SpawnNeverExceedsRemaining(t *testing.T) {
	f := newFixture()
	f.res.Settings.Difficulty = defs.DifficultyHard
	f.res.Wave.ZombiesRemaining = 1
	ws := f.waveSystem(7)

	ws.Update(2.0)

	assert.Equal(t, 1, f.ecs.Zombies.Len())
	assert.Zero(t, f.res.Wave.ZombiesRemaining)

	for i := 0; i < 20; i++ {
		ws.Update(2.0)
	}
	assert.Equal(t, 1, f.ecs.Zombies.Len(), "nothing left to spawn in this wave")
}

func TestWave_SpawnedZombiesUseTierAndArena(t *testing.T) {
	f := newFixture()
	for _, w := range defs.DefaultWalls() {
		f.addWall(w)
	}
	f.res.Settings.Difficulty = defs.DifficultyHard
	f.res.Wave.CurrentWave = 3
	f.res.Wave.ZombiesRemaining = 11
	ws := f.waveSystem(99)

	for i := 0; i < 4; i++ {
		ws.Update(2.0)
	}

	require.Equal(t, 11, f.ecs.Zombies.Len())
	a := f.tuning.Arena
	for _, id := range f.ecs.Zombies.IDs() {
		z, _ := f.ecs.Zombies.Get(id)
		h, _ := f.ecs.Healths.Get(id)
		assert.Equal(t, defs.ZombieTier{Size: 30, Health: 40, Reward: 30}, defs.ZombieTier{Size: z.Size, Health: h.Max, Reward: z.Reward})

		p := f.position(id)
		assert.True(t, p.X >= a.MinX && p.X < a.MaxX && p.Y >= a.MinY && p.Y < a.MaxY, "spawn %v outside arena", p)
		assert.False(t, blockedByWall(f.ecs, p, geom.Vec2{X: z.Size, Y: z.Size}), "spawned inside a wall")
	}
}

func TestWave_SkipsWithoutDifficulty(t *testing.T) {
	f := newFixture()
	f.res.Wave.ZombiesRemaining = 0
	ws := f.waveSystem(1)

	ws.Update(5)

	assert.Empty(t, f.events)
	assert.Zero(t, f.ecs.Zombies.Len())
	assert.Equal(t, 1, f.res.Wave.CurrentWave)
}
