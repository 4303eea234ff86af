package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zombie-terminate/pkg/geom"
)

func TestProjectile_Flies(t *testing.T) {
	f := newFixture()
	id := f.addProjectile(0, 0, geom.Vec2{X: 400}, 10)

	NewProjectileSystem(f.ecs).Update(0.25)
	assert.Equal(t, geom.Vec2{X: 100}, f.position(id))
}

func TestProjectile_RemovedExactlyAtLifetime(t *testing.T) {
	f := newFixture()
	id := f.addProjectile(0, 0, geom.Vec2{X: 1}, 10)
	ps := NewProjectileSystem(f.ecs)

	proj, _ := f.ecs.Projectiles.Get(id)
	last := proj.Lifetime.Remaining()
	for i := 0; i < 3; i++ {
		ps.Update(0.5)
		require.True(t, f.ecs.Alive(id), "removed early after tick %d", i+1)
		assert.Less(t, proj.Lifetime.Remaining(), last, "lifetime must decrease")
		last = proj.Lifetime.Remaining()
	}

	ps.Update(0.5)
	assert.False(t, f.ecs.Alive(id), "lifetime of 2s reached")
	assert.Zero(t, f.ecs.Projectiles.Len())
}
