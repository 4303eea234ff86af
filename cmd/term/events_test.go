package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// endlessSource never runs dry, like a terminal under key auto-repeat.
type endlessSource struct{}

func (endlessSource) PollEvent() tcell.Event { return tcell.NewEventInterrupt(nil) }

// finiteSource returns its events, then nil as a finalized screen does.
type finiteSource struct {
	events []tcell.Event
}

func (s *finiteSource) PollEvent() tcell.Event {
	if len(s.events) == 0 {
		return nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

// drain reads until the channel is closed and reports how many events came through.
func drain(t *testing.T, events <-chan tcell.Event) int {
	t.Helper()
	n := 0
	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return n
			}
			n++
		case <-timeout:
			require.FailNow(t, "event pump did not stop")
		}
	}
}

func TestPollEvents_StopsOnNilEvent(t *testing.T) {
	src := &finiteSource{events: []tcell.Event{tcell.NewEventInterrupt(1), tcell.NewEventInterrupt(2)}}
	events := pollEvents(src, make(chan struct{}))

	assert.Equal(t, 2, drain(t, events))
}

func TestPollEvents_StopsWhenDone(t *testing.T) {
	done := make(chan struct{})
	events := pollEvents(endlessSource{}, done)

	<-events
	close(done)

	// буфер может быть заполнен, но после него канал обязан закрыться
	drain(t, events)
}
