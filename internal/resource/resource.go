// Package resource holds the process-wide state shared by the systems of a
// tick. Each resource has one writer per tick phase.
package resource

import (
	"zombie-terminate/internal/defs"
	"zombie-terminate/internal/utils"
)

// Wallet - деньги текущего забега.
type Wallet struct {
	Money int
}

// Credit adds amount to the wallet.
func (w *Wallet) Credit(amount int) {
	w.Money += amount
}

// Spend takes amount out of the wallet if it holds enough.
func (w *Wallet) Spend(amount int) bool {
	if w.Money < amount {
		return false
	}
	w.Money -= amount
	return true
}

// GlobalPlayerStats is progression that survives between runs. Unlock flags
// only ever go from false to true.
type GlobalPlayerStats struct {
	TotalMoney         int
	Level              int
	WeaponUpgradeLevel int
	MaxAmmoLevel       int
	UnlockedShotgun    bool
	UnlockedRifle      bool
}

// Unlocked reports whether kind can be selected.
func (s *GlobalPlayerStats) Unlocked(kind defs.WeaponKind) bool {
	switch kind {
	case defs.WeaponPistol:
		return true
	case defs.WeaponShotgun:
		return s.UnlockedShotgun
	case defs.WeaponRifle:
		return s.UnlockedRifle
	}
	return false
}

// WaveState - состояние директора волн.
type WaveState struct {
	CurrentWave      int
	ZombiesRemaining int // ещё не заспавнено в текущей волне
	SpawnTimer       *utils.Timer
}

// NewWaveState returns the state every run starts from.
func NewWaveState(spawnInterval float64) WaveState {
	return WaveState{
		CurrentWave:      1,
		ZombiesRemaining: defs.FirstWaveZombies,
		SpawnTimer:       utils.NewTimer(spawnInterval, utils.Repeating),
	}
}

// GameSettings holds what the player picked on the dashboard.
type GameSettings struct {
	Difficulty defs.Difficulty
}

// ShopCosts holds prices that change during a run.
type ShopCosts struct {
	FireRateUpgrade int
}

// Context bundles the resources passed into every tick phase.
type Context struct {
	Wallet   Wallet
	Stats    GlobalPlayerStats
	Wave     WaveState
	Settings GameSettings
	Costs    ShopCosts
}

// NewContext creates the resources as they are at process start.
func NewContext(spawnInterval float64, fireRateBaseCost int) *Context {
	return &Context{
		Wave:  NewWaveState(spawnInterval),
		Costs: ShopCosts{FireRateUpgrade: fireRateBaseCost},
	}
}
