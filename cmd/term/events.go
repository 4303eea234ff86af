package main

import "github.com/gdamore/tcell/v2"

type eventSource interface {
	PollEvent() tcell.Event
}

// pollEvents pumps screen events into a channel until the screen is
// finalized (PollEvent returns nil) or done is closed. The channel is closed
// when the pump stops.
func pollEvents(src eventSource, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := src.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}
