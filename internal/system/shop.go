// internal/system/shop.go
package system

import (
	"github.com/rs/zerolog"

	"zombie-terminate/internal/config"
	"zombie-terminate/internal/entity"
	"zombie-terminate/internal/event"
	"zombie-terminate/internal/resource"
)

// PurchaseResult is the outcome of a shop action. Anything but Bought
// leaves every resource untouched.
type PurchaseResult int

const (
	Bought PurchaseResult = iota
	InsufficientFunds
	AlreadyOwned
	Unavailable
)

func (r PurchaseResult) String() string {
	switch r {
	case Bought:
		return "Bought"
	case InsufficientFunds:
		return "InsufficientFunds"
	case AlreadyOwned:
		return "AlreadyOwned"
	case Unavailable:
		return "Unavailable"
	}
	return "Unknown"
}

// Названия товаров для логов и метрик.
const (
	ItemFireRate      = "fire_rate"
	ItemWeaponUpgrade = "weapon_upgrade"
	ItemAmmoUpgrade   = "ammo_upgrade"
	ItemShotgun       = "shotgun"
	ItemRifle         = "rifle"
)

// ShopSystem проводит покупки: улучшение скорострельности во время забега
// (из Wallet) и постоянные улучшения в меню (из TotalMoney).
type ShopSystem struct {
	ecs             *entity.ECS
	res             *resource.Context
	tuning          *config.Tuning
	eventDispatcher *event.Dispatcher
	log             zerolog.Logger
}

func NewShopSystem(ecs *entity.ECS, res *resource.Context, tuning *config.Tuning, eventDispatcher *event.Dispatcher, log zerolog.Logger) *ShopSystem {
	return &ShopSystem{
		ecs:             ecs,
		res:             res,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
}

// BuyFireRate makes the current weapon fire faster. The new cooldown applies
// to the running timer at once and the price goes up.
func (s *ShopSystem) BuyFireRate() PurchaseResult {
	cost := s.res.Costs.FireRateUpgrade

	id, ok := s.ecs.Player()
	if !ok {
		return s.report(ItemFireRate, Unavailable, cost)
	}
	weapon, ok := s.ecs.Weapons.Get(id)
	if !ok {
		return s.report(ItemFireRate, Unavailable, cost)
	}
	if !s.res.Wallet.Spend(cost) {
		return s.report(ItemFireRate, InsufficientFunds, cost)
	}

	weapon.SetFireRate(weapon.FireRate * s.tuning.Shop.FireRateFactor)
	s.res.Costs.FireRateUpgrade += s.tuning.Shop.FireRateCostIncrement
	s.log.Info().Float64("fireRate", weapon.FireRate).Msg("weapon upgraded")
	return s.report(ItemFireRate, Bought, cost)
}

// UpgradeWeapon raises the level that lowers the cooldown of future runs.
func (s *ShopSystem) UpgradeWeapon() PurchaseResult {
	cost := s.tuning.Shop.WeaponUpgradeCost
	if !s.spendTotal(cost) {
		return s.report(ItemWeaponUpgrade, InsufficientFunds, cost)
	}
	s.res.Stats.WeaponUpgradeLevel++
	return s.report(ItemWeaponUpgrade, Bought, cost)
}

// UpgradeAmmo raises the level that enlarges the magazine of future runs.
func (s *ShopSystem) UpgradeAmmo() PurchaseResult {
	cost := s.tuning.Shop.AmmoUpgradeCost
	if !s.spendTotal(cost) {
		return s.report(ItemAmmoUpgrade, InsufficientFunds, cost)
	}
	s.res.Stats.MaxAmmoLevel++
	return s.report(ItemAmmoUpgrade, Bought, cost)
}

func (s *ShopSystem) UnlockShotgun() PurchaseResult {
	return s.unlock(ItemShotgun, s.tuning.Shop.ShotgunCost, &s.res.Stats.UnlockedShotgun)
}

func (s *ShopSystem) UnlockRifle() PurchaseResult {
	return s.unlock(ItemRifle, s.tuning.Shop.RifleCost, &s.res.Stats.UnlockedRifle)
}

func (s *ShopSystem) unlock(item string, cost int, flag *bool) PurchaseResult {
	if *flag {
		return s.report(item, AlreadyOwned, cost)
	}
	if !s.spendTotal(cost) {
		return s.report(item, InsufficientFunds, cost)
	}
	*flag = true
	return s.report(item, Bought, cost)
}

func (s *ShopSystem) spendTotal(cost int) bool {
	if s.res.Stats.TotalMoney < cost {
		return false
	}
	s.res.Stats.TotalMoney -= cost
	return true
}

func (s *ShopSystem) report(item string, result PurchaseResult, cost int) PurchaseResult {
	data := event.PurchaseData{Item: item, Result: result.String(), Cost: cost}
	if result == Bought {
		s.log.Info().Str("item", item).Int("cost", cost).Msg("purchase made")
		s.eventDispatcher.Dispatch(event.Event{Type: event.PurchaseMade, Data: data})
		return result
	}
	s.log.Info().Str("item", item).Int("cost", cost).Stringer("result", result).Msg("purchase refused")
	s.eventDispatcher.Dispatch(event.Event{Type: event.PurchaseRefused, Data: data})
	return result
}
