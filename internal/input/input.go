// Package input describes one tick's worth of player intent, independent of
// any device.
package input

import "zombie-terminate/pkg/geom"

// Action is a discrete menu or shop selection.
type Action int

const (
	BuyFireRate Action = iota
	UpgradeWeapon
	UpgradeAmmo
	UnlockShotgun
	UnlockRifle
	DifficultyEasy
	DifficultyMedium
	DifficultyHard
	Start
	Quit
)

func (a Action) String() string {
	switch a {
	case BuyFireRate:
		return "BuyFireRate"
	case UpgradeWeapon:
		return "UpgradeWeapon"
	case UpgradeAmmo:
		return "UpgradeAmmo"
	case UnlockShotgun:
		return "UnlockShotgun"
	case UnlockRifle:
		return "UnlockRifle"
	case DifficultyEasy:
		return "DifficultyEasy"
	case DifficultyMedium:
		return "DifficultyMedium"
	case DifficultyHard:
		return "DifficultyHard"
	case Start:
		return "Start"
	case Quit:
		return "Quit"
	}
	return "Unknown"
}

// Frame is the input sampled for a single tick.
type Frame struct {
	Move   geom.Vec2 // направление движения, не обязательно единичное
	Aim    geom.Vec2 // точка прицеливания в мировых координатах
	HasAim bool
	Fire   bool

	WeaponSlot int // 1..3, 0 - без смены

	PauseToggle bool
	MenuReturn  bool
	Restart     bool

	Actions []Action
}

// Has reports whether a was selected this tick.
func (f Frame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}
