// internal/state/game_state.go
package state

import (
	"zombie-terminate/internal/component"
	"zombie-terminate/internal/input"
)

// PlayingState - идёт забег, все игровые системы работают.
type PlayingState struct {
	sm *StateMachine
}

func NewPlayingState(sm *StateMachine) *PlayingState {
	return &PlayingState{sm: sm}
}

func (p *PlayingState) Enter() {}

func (p *PlayingState) Exit() {}

func (p *PlayingState) Kind() component.SessionState { return component.Playing }

// Update runs the gameplay tick, then applies at most one transition. An
// outcome raised by the systems wins over pause or menu input of the same
// tick.
func (p *PlayingState) Update(deltaTime float64, frame input.Frame) {
	game := p.sm.game
	game.Update(deltaTime, frame)

	if next, ok := game.TakeOutcome(); ok {
		switch next {
		case component.GameOver:
			p.sm.SetState(NewOutcomeState(p.sm, component.GameOver))
		case component.Win:
			p.sm.SetState(NewOutcomeState(p.sm, component.Win))
		}
		return
	}

	switch {
	case frame.MenuReturn:
		game.ClearRun()
		p.sm.SetState(NewDashboardState(p.sm))
	case frame.PauseToggle:
		p.sm.SetState(NewPausedState(p.sm))
	}
}
