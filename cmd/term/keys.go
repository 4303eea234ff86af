package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"zombie-terminate/internal/app"
	"zombie-terminate/internal/component"
	"zombie-terminate/internal/input"
	"zombie-terminate/pkg/geom"
)

// holdFor is how long a keypress keeps acting. Terminals report no key-up,
// so movement and fire stay on until the auto-repeat stops refreshing them.
const holdFor = 150 * time.Millisecond

// aimReach is the distance of the aim point from the player.
const aimReach = 100.0

var dashboardKeys = map[rune]input.Action{
	'e': input.DifficultyEasy,
	'm': input.DifficultyMedium,
	'h': input.DifficultyHard,
	'u': input.UpgradeWeapon,
	'a': input.UpgradeAmmo,
	'g': input.UnlockShotgun,
	'r': input.UnlockRifle,
	'q': input.Quit,
}

var moveKeys = map[rune]geom.Vec2{
	'w': {Y: 1},
	's': {Y: -1},
	'a': {X: -1},
	'd': {X: 1},
}

var aimKeys = map[tcell.Key]geom.Vec2{
	tcell.KeyUp:    {Y: 1},
	tcell.KeyDown:  {Y: -1},
	tcell.KeyLeft:  {X: -1},
	tcell.KeyRight: {X: 1},
}

func dashboardMenu(s app.Snapshot) []string {
	owned := func(ok bool, cost int) string {
		if ok {
			return "owned"
		}
		return fmt.Sprintf("$%d", cost)
	}
	return []string{
		"[E]asy  [M]edium  [H]ard",
		fmt.Sprintf("[U]pgrade weapon ($%d) Lv %d", s.WeaponUpgradeCost, s.WeaponUpgradeLevel),
		fmt.Sprintf("Upgrade [A]mmo ($%d) Lv %d", s.AmmoUpgradeCost, s.MaxAmmoLevel),
		"Unlock [G] shotgun (" + owned(s.UnlockedShotgun, s.ShotgunCost) + ")",
		"Unlock [R] rifle (" + owned(s.UnlockedRifle, s.RifleCost) + ")",
		"[Enter] play   [Q]uit",
	}
}

// keyState turns discrete key events into the held input of a tick.
type keyState struct {
	move      map[rune]time.Time
	aim       geom.Vec2
	fireUntil time.Time

	pending input.Frame
}

func newKeyState() *keyState {
	return &keyState{move: make(map[rune]time.Time), aim: geom.Vec2{X: 1}}
}

// press records one key event. session decides how letter keys are read.
func (k *keyState) press(key tcell.Key, r rune, session component.SessionState, now time.Time) {
	if session == component.Dashboard {
		switch key {
		case tcell.KeyEnter:
			k.pending.Actions = append(k.pending.Actions, input.Start)
		case tcell.KeyRune:
			if a, ok := dashboardKeys[r]; ok {
				k.pending.Actions = append(k.pending.Actions, a)
			}
		}
		return
	}

	if dir, ok := aimKeys[key]; ok {
		k.aim = dir
		k.fireUntil = now.Add(holdFor)
		return
	}
	switch key {
	case tcell.KeyEscape:
		k.pending.MenuReturn = true
		return
	case tcell.KeyRune:
	default:
		return
	}

	if _, ok := moveKeys[r]; ok {
		k.move[r] = now.Add(holdFor)
		return
	}
	switch r {
	case '1', '2', '3':
		k.pending.WeaponSlot = int(r - '0')
	case 'p':
		k.pending.PauseToggle = true
	case ' ':
		k.pending.Restart = true
	case 'b':
		k.pending.Actions = append(k.pending.Actions, input.BuyFireRate)
	}
}

// frame returns the input for a tick and drops the one-shot part.
func (k *keyState) frame(player geom.Vec2, now time.Time) input.Frame {
	f := k.pending
	k.pending = input.Frame{}

	for r, until := range k.move {
		if now.After(until) {
			delete(k.move, r)
			continue
		}
		f.Move = f.Move.Add(moveKeys[r])
	}
	f.Aim, f.HasAim = player.Add(k.aim.Scale(aimReach)), true
	f.Fire = !now.After(k.fireUntil)
	return f
}

// reset drops every held key, e.g. when the session changes.
func (k *keyState) reset() {
	clear(k.move)
	k.fireUntil = time.Time{}
}
