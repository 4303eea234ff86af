// internal/component/player.go
package component

import (
	"zombie-terminate/internal/defs"
	"zombie-terminate/internal/utils"
)

// Player marks the controlled entity and stores where it is looking.
type Player struct {
	Facing float64 // радианы
}

// Weapon is the player's weapon state.
type Weapon struct {
	Kind        defs.WeaponKind
	FireRate    float64 // секунд между выстрелами
	Cooldown    *utils.Timer
	CurrentAmmo int
	MaxAmmo     int
}

// Ready reports whether the cooldown has elapsed and a round is loaded.
func (w *Weapon) Ready() bool {
	return w.CurrentAmmo > 0 && w.Cooldown.Finished()
}

// SetFireRate changes the cooldown period and applies it to the running timer.
func (w *Weapon) SetFireRate(rate float64) {
	w.FireRate = rate
	w.Cooldown.SetDuration(rate)
}
