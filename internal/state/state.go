// internal/state/state.go
package state

import (
	"github.com/rs/zerolog"

	"zombie-terminate/internal/app"
	"zombie-terminate/internal/component"
	"zombie-terminate/internal/input"
	"zombie-terminate/internal/utils"
)

// State - интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64, frame input.Frame)
	Exit()
	Kind() component.SessionState
}

// StateMachine - структура для управления состояниями. Tick is the only
// entry point of the simulation.
type StateMachine struct {
	current State
	game    *app.Game
	log     zerolog.Logger
	quit    bool
}

// NewStateMachine создаёт машину в состоянии Dashboard.
func NewStateMachine(game *app.Game) *StateMachine {
	sm := &StateMachine{game: game, log: game.Logger}
	sm.SetState(NewDashboardState(sm))
	return sm
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	from := component.SessionState(-1)
	if sm.current != nil {
		from = sm.current.Kind()
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.log.Debug().Stringer("from", from).Stringer("to", newState.Kind()).Msg("session state changed")
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Tick advances the session by deltaTime seconds, clamped to the configured
// maximum so a stalled frame cannot tunnel entities through walls.
func (sm *StateMachine) Tick(deltaTime float64, frame input.Frame) {
	deltaTime = utils.Clamp(deltaTime, 0, sm.game.Tuning.MaxDeltaTime)
	if sm.current != nil {
		sm.current.Update(deltaTime, frame)
	}
}

// Current returns the active session state.
func (sm *StateMachine) Current() component.SessionState {
	return sm.current.Kind()
}

// Game returns the simulation driven by the machine.
func (sm *StateMachine) Game() *app.Game {
	return sm.game
}

// Snapshot returns the simulation state together with the session.
func (sm *StateMachine) Snapshot() app.Snapshot {
	s := sm.game.Snapshot()
	s.Session = sm.Current()
	return s
}

// Quit reports whether the player asked to leave the game.
func (sm *StateMachine) Quit() bool {
	return sm.quit
}
