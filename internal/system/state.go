// internal/system/state.go
package system

import (
	"zombie-terminate/internal/component"
	"zombie-terminate/internal/event"
)

// StateSystem собирает запросы на смену состояния, поднятые системами во
// время тика. Машина состояний забирает их после всех фаз.
type StateSystem struct {
	pending    component.SessionState
	hasPending bool
}

func NewStateSystem(eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{}
	eventDispatcher.Subscribe(event.PlayerDied, ss)
	eventDispatcher.Subscribe(event.RunWon, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerDied:
		s.request(component.GameOver)
	case event.RunWon:
		s.request(component.Win)
	}
}

// request keeps the first outcome of the tick. Combat runs before the wave
// director, so a death beats a win raised in the same tick.
func (s *StateSystem) request(next component.SessionState) {
	if s.hasPending {
		return
	}
	s.pending = next
	s.hasPending = true
}

// Take returns the pending transition and clears it.
func (s *StateSystem) Take() (component.SessionState, bool) {
	next, ok := s.pending, s.hasPending
	s.Clear()
	return next, ok
}

func (s *StateSystem) Clear() {
	s.pending = component.Dashboard
	s.hasPending = false
}
