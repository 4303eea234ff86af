// internal/state/dashboard_state.go
package state

import (
	"zombie-terminate/internal/component"
	"zombie-terminate/internal/defs"
	"zombie-terminate/internal/input"
)

// DashboardState - меню: выбор сложности, постоянные улучшения, старт.
type DashboardState struct {
	sm *StateMachine
}

func NewDashboardState(sm *StateMachine) *DashboardState {
	return &DashboardState{sm: sm}
}

func (d *DashboardState) Enter() {}

func (d *DashboardState) Exit() {}

func (d *DashboardState) Kind() component.SessionState { return component.Dashboard }

func (d *DashboardState) Update(deltaTime float64, frame input.Frame) {
	game := d.sm.game
	for _, action := range frame.Actions {
		switch action {
		case input.DifficultyEasy:
			d.setDifficulty(defs.DifficultyEasy)
		case input.DifficultyMedium:
			d.setDifficulty(defs.DifficultyMedium)
		case input.DifficultyHard:
			d.setDifficulty(defs.DifficultyHard)
		case input.UpgradeWeapon:
			game.ShopSystem.UpgradeWeapon()
		case input.UpgradeAmmo:
			game.ShopSystem.UpgradeAmmo()
		case input.UnlockShotgun:
			game.ShopSystem.UnlockShotgun()
		case input.UnlockRifle:
			game.ShopSystem.UnlockRifle()
		case input.Quit:
			d.sm.quit = true
			d.sm.log.Info().Msg("quit requested")
		case input.Start:
			if d.start() {
				return
			}
		}
	}
}

func (d *DashboardState) setDifficulty(difficulty defs.Difficulty) {
	d.sm.game.Resources.Settings.Difficulty = difficulty
	d.sm.log.Info().Stringer("difficulty", difficulty).Msg("difficulty selected")
}

// start begins a run if a difficulty was chosen. Без сложности - ничего не делаем.
func (d *DashboardState) start() bool {
	game := d.sm.game
	if !game.Resources.Settings.Difficulty.IsSet() {
		d.sm.log.Info().Msg("select a difficulty first")
		return false
	}
	game.BeginRun()
	d.sm.SetState(NewPlayingState(d.sm))
	return true
}
