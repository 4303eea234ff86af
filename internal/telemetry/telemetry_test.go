package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"zombie-terminate/internal/event"
)

func TestRecorder_HandlesEveryEvent(t *testing.T) {
	r, err := New(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	d := event.NewDispatcher()
	r.Register(d)

	assert.NotPanics(t, func() {
		d.Dispatch(event.Event{Type: event.ZombieKilled, Data: event.ZombieKilledData{Reward: 10, Wave: 1}})
		d.Dispatch(event.Event{Type: event.WaveCleared, Data: event.WaveData{Wave: 1}})
		d.Dispatch(event.Event{Type: event.RunEnded, Data: event.RunEndedData{Outcome: "won", Money: 100}})
		d.Dispatch(event.Event{Type: event.PurchaseMade, Data: event.PurchaseData{Item: "rifle", Result: "Bought"}})
		d.Dispatch(event.Event{Type: event.PurchaseRefused, Data: event.PurchaseData{Item: "rifle", Result: "InsufficientFunds"}})
		// Неизвестные данные игнорируются.
		d.Dispatch(event.Event{Type: event.ZombieKilled, Data: "garbage"})
	})
}

func TestNew_GlobalMeter(t *testing.T) {
	_, err := New(Meter())
	assert.NoError(t, err)
}
