package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"zombie-terminate/internal/component"
	"zombie-terminate/internal/event"
)

func TestStateSystem_FirstOutcomeWins(t *testing.T) {
	d := event.NewDispatcher()
	s := NewStateSystem(d)

	_, ok := s.Take()
	assert.False(t, ok)

	d.Dispatch(event.Event{Type: event.PlayerDied})
	d.Dispatch(event.Event{Type: event.RunWon})

	next, ok := s.Take()
	assert.True(t, ok)
	assert.Equal(t, component.GameOver, next)

	_, ok = s.Take()
	assert.False(t, ok, "Take clears the request")
}
