package state

import (
	"zombie-terminate/internal/component"
	"zombie-terminate/internal/input"
	"zombie-terminate/internal/system"
)

// OutcomeState covers GameOver and Win: the world is frozen until the
// player restarts, which reconciles the run and returns to the dashboard.
type OutcomeState struct {
	sm   *StateMachine
	kind component.SessionState
}

func NewOutcomeState(sm *StateMachine, kind component.SessionState) *OutcomeState {
	return &OutcomeState{sm: sm, kind: kind}
}

func (o *OutcomeState) Enter() {
	o.sm.log.Info().
		Stringer("state", o.kind).
		Int("money", o.sm.game.Resources.Wallet.Money).
		Msg("run over")
}

func (o *OutcomeState) Exit() {}

func (o *OutcomeState) Kind() component.SessionState { return o.kind }

func (o *OutcomeState) Update(deltaTime float64, frame input.Frame) {
	if !frame.Restart {
		return
	}
	outcome := system.OutcomeLost
	if o.kind == component.Win {
		outcome = system.OutcomeWon
	}
	o.sm.game.EndRun(outcome)
	o.sm.SetState(NewDashboardState(o.sm))
}
