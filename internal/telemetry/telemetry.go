// Package telemetry turns simulation events into OpenTelemetry counters.
// Without an installed SDK the global meter is a no-op.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"zombie-terminate/internal/event"
)

const instrumentationName = "zombie-terminate/internal/telemetry"

// Meter returns the meter from the global provider.
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Recorder is an event listener that counts gameplay outcomes.
type Recorder struct {
	zombiesKilled metric.Int64Counter
	wavesCleared  metric.Int64Counter
	runsEnded     metric.Int64Counter
	purchases     metric.Int64Counter
	moneyEarned   metric.Int64Counter
}

// New creates the counters on m.
func New(m metric.Meter) (*Recorder, error) {
	r := &Recorder{}
	var err error

	r.zombiesKilled, err = m.Int64Counter(
		"zombies.killed",
		metric.WithDescription("Zombies killed by projectiles"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating zombies counter: %w", err)
	}

	r.wavesCleared, err = m.Int64Counter(
		"waves.cleared",
		metric.WithDescription("Waves fully cleared"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating waves counter: %w", err)
	}

	r.runsEnded, err = m.Int64Counter(
		"runs.ended",
		metric.WithDescription("Runs reconciled, by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating runs counter: %w", err)
	}

	r.purchases, err = m.Int64Counter(
		"shop.purchases",
		metric.WithDescription("Shop purchase attempts, by item and result"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating purchases counter: %w", err)
	}

	r.moneyEarned, err = m.Int64Counter(
		"money.earned",
		metric.WithDescription("Money credited to the wallet from kills"),
		metric.WithUnit("{coin}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating money counter: %w", err)
	}

	return r, nil
}

// Register subscribes r to every event it counts.
func (r *Recorder) Register(d *event.Dispatcher) {
	for _, t := range []event.EventType{
		event.ZombieKilled,
		event.WaveCleared,
		event.RunEnded,
		event.PurchaseMade,
		event.PurchaseRefused,
	} {
		d.Subscribe(t, r)
	}
}

func (r *Recorder) OnEvent(e event.Event) {
	ctx := context.Background()

	switch data := e.Data.(type) {
	case event.ZombieKilledData:
		r.zombiesKilled.Add(ctx, 1)
		r.moneyEarned.Add(ctx, int64(data.Reward))
	case event.WaveData:
		if e.Type == event.WaveCleared {
			r.wavesCleared.Add(ctx, 1)
		}
	case event.RunEndedData:
		r.runsEnded.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", data.Outcome)))
	case event.PurchaseData:
		r.purchases.Add(ctx, 1, metric.WithAttributes(
			attribute.String("item", data.Item),
			attribute.String("result", data.Result),
		))
	}
}
