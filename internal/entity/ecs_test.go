package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zombie-terminate/internal/component"
	"zombie-terminate/internal/types"
)

func TestNewEntity_NeverReturnsZeroID(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	assert.False(t, id.IsZero())
	assert.Equal(t, uint32(1), id.Generation)
	assert.True(t, ecs.Alive(id))
}

func TestDestroy_StaleIDDoesNotResolve(t *testing.T) {
	ecs := NewECS()
	old := ecs.NewEntity()
	ecs.Healths.Add(old, &component.Health{Current: 10, Max: 10})

	require.True(t, ecs.Destroy(old))
	assert.False(t, ecs.Alive(old))
	assert.False(t, ecs.Healths.Has(old))

	reused := ecs.NewEntity()
	assert.Equal(t, old.Index, reused.Index, "slot is recycled")
	assert.NotEqual(t, old, reused)
	assert.False(t, ecs.Alive(old))
	assert.False(t, ecs.Destroy(old), "double destroy is a no-op")
	assert.True(t, ecs.Alive(reused))
}

func TestStoreIDs_Sorted(t *testing.T) {
	ecs := NewECS()
	var ids []types.EntityID
	for i := 0; i < 5; i++ {
		id := ecs.NewEntity()
		ids = append(ids, id)
		ecs.Zombies.Add(id, &component.Zombie{Reward: i})
	}
	ecs.Destroy(ids[1])
	again := ecs.NewEntity()
	ecs.Zombies.Add(again, &component.Zombie{})

	got := ecs.Zombies.IDs()
	require.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].Less(got[i]))
	}
	assert.Equal(t, again, got[1])
}

func TestPlayerAndClearRun(t *testing.T) {
	ecs := NewECS()
	_, ok := ecs.Player()
	assert.False(t, ok)

	wall := ecs.NewEntity()
	ecs.Walls.Add(wall, &component.Wall{})

	p := ecs.NewEntity()
	ecs.Players.Add(p, &component.Player{})
	z := ecs.NewEntity()
	ecs.Zombies.Add(z, &component.Zombie{})
	pr := ecs.NewEntity()
	ecs.Projectiles.Add(pr, &component.Projectile{})

	got, ok := ecs.Player()
	require.True(t, ok)
	assert.Equal(t, p, got)

	ecs.ClearRun()
	_, ok = ecs.Player()
	assert.False(t, ok)
	assert.Zero(t, ecs.Zombies.Len())
	assert.Zero(t, ecs.Projectiles.Len())
	assert.True(t, ecs.Alive(wall))
	assert.Equal(t, 1, ecs.Count())

	// очистка идёт через Destroy: старые ID не оживают в переиспользованных слотах
	assert.False(t, ecs.Alive(z))
	next := ecs.NewEntity()
	assert.NotEqual(t, z, next)
	assert.NotEqual(t, p, next)
	assert.NotEqual(t, pr, next)
	_, ok = ecs.Zombies.Get(z)
	assert.False(t, ok)
}
