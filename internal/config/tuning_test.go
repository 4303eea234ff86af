package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	d := Default()
	require.NoError(t, d.Validate())
	assert.Len(t, d.Walls, 4)
	assert.Equal(t, 0.5, d.Weapon.BaseFireRate)
	assert.Equal(t, 1000, d.Shop.RifleCost)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	tuning, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), tuning)
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	content := `{
		"logLevel": "debug",
		"zombie": {"speed": 120},
		"shop": {"rifleCost": 750},
		"walls": [{"x": 10, "y": 20, "width": 30, "height": 40}]
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))

	tuning, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", tuning.LogLevel)
	assert.Equal(t, 120.0, tuning.Zombie.Speed)
	assert.Equal(t, 750, tuning.Shop.RifleCost)
	assert.Equal(t, 500, tuning.Shop.ShotgunCost, "untouched keys keep defaults")
	require.Len(t, tuning.Walls, 1)
	assert.Equal(t, 30.0, tuning.Walls[0].Width)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ZOMBIE_SHOP_SHOTGUNCOST", "5")

	tuning, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 5, tuning.Shop.ShotgunCost)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{not json"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_InvalidTuning(t *testing.T) {
	dir := t.TempDir()
	content := `{"shop": {"fireRateFactor": 1.5}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))

	_, err := Load(dir)
	assert.ErrorContains(t, err, "fireRateFactor")
}

func TestStatScaling(t *testing.T) {
	d := Default()
	assert.Equal(t, 0.5, d.FireRateForLevel(0))
	assert.InDelta(t, 0.405, d.FireRateForLevel(2), 1e-9)
	assert.Equal(t, 30, d.MaxAmmoForLevel(0))
	assert.Equal(t, 50, d.MaxAmmoForLevel(2))
}
