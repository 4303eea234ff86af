// internal/system/progression.go
package system

import (
	"github.com/rs/zerolog"

	"zombie-terminate/internal/config"
	"zombie-terminate/internal/event"
	"zombie-terminate/internal/resource"
)

// Исходы забега.
const (
	OutcomeLost = "lost"
	OutcomeWon  = "won"
)

// ProgressionSystem переносит результат забега в постоянную прогрессию.
type ProgressionSystem struct {
	res             *resource.Context
	tuning          *config.Tuning
	eventDispatcher *event.Dispatcher
	log             zerolog.Logger
}

func NewProgressionSystem(res *resource.Context, tuning *config.Tuning, eventDispatcher *event.Dispatcher, log zerolog.Logger) *ProgressionSystem {
	return &ProgressionSystem{res: res, tuning: tuning, eventDispatcher: eventDispatcher, log: log}
}

// BeginRun resets the run-scoped resources. Money left in the wallet by an
// abandoned run is lost here.
func (s *ProgressionSystem) BeginRun() {
	if s.res.Wallet.Money > 0 {
		s.log.Debug().Int("money", s.res.Wallet.Money).Msg("wallet of abandoned run forfeited")
	}
	s.res.Wallet = resource.Wallet{}
	s.res.Wave = resource.NewWaveState(s.tuning.Zombie.SpawnInterval)
	s.res.Costs = resource.ShopCosts{FireRateUpgrade: s.tuning.Shop.FireRateBaseCost}
}

// Reconcile folds the wallet into TotalMoney and resets the wave state. A
// won run also raises the player level.
func (s *ProgressionSystem) Reconcile(outcome string) {
	earned := s.res.Wallet.Money
	s.res.Stats.TotalMoney += earned
	if outcome == OutcomeWon {
		s.res.Stats.Level++
	}
	s.res.Wallet.Money = 0
	s.res.Wave = resource.NewWaveState(s.tuning.Zombie.SpawnInterval)

	s.log.Info().
		Str("outcome", outcome).
		Int("earned", earned).
		Int("total", s.res.Stats.TotalMoney).
		Int("level", s.res.Stats.Level).
		Msg("run reconciled")
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.RunEnded,
		Data: event.RunEndedData{Outcome: outcome, Money: earned},
	})
}
