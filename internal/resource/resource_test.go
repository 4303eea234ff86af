package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"zombie-terminate/internal/defs"
)

func TestWalletSpend(t *testing.T) {
	w := Wallet{Money: 50}
	assert.False(t, w.Spend(60))
	assert.Equal(t, 50, w.Money)
	assert.True(t, w.Spend(50))
	assert.Zero(t, w.Money)

	w.Credit(30)
	assert.Equal(t, 30, w.Money)
}

func TestNewWaveState(t *testing.T) {
	ws := NewWaveState(2)
	assert.Equal(t, 1, ws.CurrentWave)
	assert.Equal(t, 10, ws.ZombiesRemaining)
	assert.Equal(t, 2.0, ws.SpawnTimer.Duration)
	assert.Zero(t, ws.SpawnTimer.Elapsed)
}

func TestUnlocked(t *testing.T) {
	var s GlobalPlayerStats
	assert.True(t, s.Unlocked(defs.WeaponPistol))
	assert.False(t, s.Unlocked(defs.WeaponShotgun))
	assert.False(t, s.Unlocked(defs.WeaponRifle))

	s.UnlockedRifle = true
	assert.True(t, s.Unlocked(defs.WeaponRifle))
}
