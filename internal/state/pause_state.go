// internal/state/pause_state.go
package state

import (
	"zombie-terminate/internal/component"
	"zombie-terminate/internal/input"
)

// PausedState - забег заморожен, игровые системы не вызываются.
type PausedState struct {
	sm *StateMachine
}

func NewPausedState(sm *StateMachine) *PausedState {
	return &PausedState{sm: sm}
}

func (p *PausedState) Enter() {}

func (p *PausedState) Exit() {}

func (p *PausedState) Kind() component.SessionState { return component.Paused }

func (p *PausedState) Update(deltaTime float64, frame input.Frame) {
	switch {
	case frame.MenuReturn:
		p.sm.game.ClearRun()
		p.sm.SetState(NewDashboardState(p.sm))
	case frame.PauseToggle:
		p.sm.SetState(NewPlayingState(p.sm))
	}
}
