package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"zombie-terminate/internal/defs"
)

// FileName is the optional configuration file looked up by Load.
const FileName = "zombie_terminate.cfg.json"

// Arena bounds zombies are spawned in.
type Arena struct {
	MinX float64 `json:"minX" mapstructure:"minX"`
	MaxX float64 `json:"maxX" mapstructure:"maxX"`
	MinY float64 `json:"minY" mapstructure:"minY"`
	MaxY float64 `json:"maxY" mapstructure:"maxY"`
}

// PlayerTuning holds the player's base stats.
type PlayerTuning struct {
	Speed     float64 `json:"speed" mapstructure:"speed"`
	Size      float64 `json:"size" mapstructure:"size"`
	MaxHealth float64 `json:"maxHealth" mapstructure:"maxHealth"`
}

// WeaponTuning holds fire rate and ammo scaling.
type WeaponTuning struct {
	BaseFireRate       float64 `json:"baseFireRate" mapstructure:"baseFireRate"` // секунд между выстрелами
	UpgradeDecay       float64 `json:"upgradeDecay" mapstructure:"upgradeDecay"` // множитель за уровень улучшения
	BaseAmmo           int     `json:"baseAmmo" mapstructure:"baseAmmo"`
	AmmoPerLevel       int     `json:"ammoPerLevel" mapstructure:"ammoPerLevel"`
	ProjectileSpeed    float64 `json:"projectileSpeed" mapstructure:"projectileSpeed"`
	ProjectileLifetime float64 `json:"projectileLifetime" mapstructure:"projectileLifetime"`
	ProjectileRadius   float64 `json:"projectileRadius" mapstructure:"projectileRadius"`
}

// ZombieTuning holds the zombie movement and contact numbers.
type ZombieTuning struct {
	Speed          float64 `json:"speed" mapstructure:"speed"`
	FallbackSize   float64 `json:"fallbackSize" mapstructure:"fallbackSize"`
	FallbackRadius float64 `json:"fallbackRadius" mapstructure:"fallbackRadius"`
	ContactRadius  float64 `json:"contactRadius" mapstructure:"contactRadius"`
	ContactDPS     float64 `json:"contactDps" mapstructure:"contactDps"`
	SpawnInterval  float64 `json:"spawnInterval" mapstructure:"spawnInterval"`
	SpawnAttempts  int     `json:"spawnAttempts" mapstructure:"spawnAttempts"`
}

// ShopTuning holds every price in the game.
type ShopTuning struct {
	FireRateBaseCost      int     `json:"fireRateBaseCost" mapstructure:"fireRateBaseCost"`
	FireRateCostIncrement int     `json:"fireRateCostIncrement" mapstructure:"fireRateCostIncrement"`
	FireRateFactor        float64 `json:"fireRateFactor" mapstructure:"fireRateFactor"`
	WeaponUpgradeCost     int     `json:"weaponUpgradeCost" mapstructure:"weaponUpgradeCost"`
	AmmoUpgradeCost       int     `json:"ammoUpgradeCost" mapstructure:"ammoUpgradeCost"`
	ShotgunCost           int     `json:"shotgunCost" mapstructure:"shotgunCost"`
	RifleCost             int     `json:"rifleCost" mapstructure:"rifleCost"`
}

// Tuning is every gameplay number the simulation reads.
type Tuning struct {
	LogLevel     string                `json:"logLevel" mapstructure:"logLevel"`
	Seed         int64                 `json:"seed" mapstructure:"seed"`
	MaxDeltaTime float64               `json:"maxDeltaTime" mapstructure:"maxDeltaTime"`
	Arena        Arena                 `json:"arena" mapstructure:"arena"`
	Player       PlayerTuning          `json:"player" mapstructure:"player"`
	Weapon       WeaponTuning          `json:"weapon" mapstructure:"weapon"`
	Zombie       ZombieTuning          `json:"zombie" mapstructure:"zombie"`
	Shop         ShopTuning            `json:"shop" mapstructure:"shop"`
	Walls        []defs.WallDefinition `json:"walls" mapstructure:"walls"`
}

// Default returns the stock tuning.
func Default() Tuning {
	return Tuning{
		LogLevel:     "info",
		Seed:         0,
		MaxDeltaTime: MaxDeltaTime,
		Arena:        Arena{MinX: -400, MaxX: 400, MinY: -300, MaxY: 300},
		Player: PlayerTuning{
			Speed:     150,
			Size:      10,
			MaxHealth: 100,
		},
		Weapon: WeaponTuning{
			BaseFireRate:       0.5,
			UpgradeDecay:       0.9,
			BaseAmmo:           30,
			AmmoPerLevel:       10,
			ProjectileSpeed:    400,
			ProjectileLifetime: 2.0,
			ProjectileRadius:   2.5,
		},
		Zombie: ZombieTuning{
			Speed:          80,
			FallbackSize:   32,
			FallbackRadius: 10,
			ContactRadius:  32,
			ContactDPS:     10,
			SpawnInterval:  2.0,
			SpawnAttempts:  16,
		},
		Shop: ShopTuning{
			FireRateBaseCost:      10,
			FireRateCostIncrement: 50,
			FireRateFactor:        0.8,
			WeaponUpgradeCost:     100,
			AmmoUpgradeCost:       100,
			ShotgunCost:           500,
			RifleCost:             1000,
		},
		Walls: defs.DefaultWalls(),
	}
}

func setDefaults(v *viper.Viper, d Tuning) {
	v.SetDefault("logLevel", d.LogLevel)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("maxDeltaTime", d.MaxDeltaTime)

	v.SetDefault("arena.minX", d.Arena.MinX)
	v.SetDefault("arena.maxX", d.Arena.MaxX)
	v.SetDefault("arena.minY", d.Arena.MinY)
	v.SetDefault("arena.maxY", d.Arena.MaxY)

	v.SetDefault("player.speed", d.Player.Speed)
	v.SetDefault("player.size", d.Player.Size)
	v.SetDefault("player.maxHealth", d.Player.MaxHealth)

	v.SetDefault("weapon.baseFireRate", d.Weapon.BaseFireRate)
	v.SetDefault("weapon.upgradeDecay", d.Weapon.UpgradeDecay)
	v.SetDefault("weapon.baseAmmo", d.Weapon.BaseAmmo)
	v.SetDefault("weapon.ammoPerLevel", d.Weapon.AmmoPerLevel)
	v.SetDefault("weapon.projectileSpeed", d.Weapon.ProjectileSpeed)
	v.SetDefault("weapon.projectileLifetime", d.Weapon.ProjectileLifetime)
	v.SetDefault("weapon.projectileRadius", d.Weapon.ProjectileRadius)

	v.SetDefault("zombie.speed", d.Zombie.Speed)
	v.SetDefault("zombie.fallbackSize", d.Zombie.FallbackSize)
	v.SetDefault("zombie.fallbackRadius", d.Zombie.FallbackRadius)
	v.SetDefault("zombie.contactRadius", d.Zombie.ContactRadius)
	v.SetDefault("zombie.contactDps", d.Zombie.ContactDPS)
	v.SetDefault("zombie.spawnInterval", d.Zombie.SpawnInterval)
	v.SetDefault("zombie.spawnAttempts", d.Zombie.SpawnAttempts)

	v.SetDefault("shop.fireRateBaseCost", d.Shop.FireRateBaseCost)
	v.SetDefault("shop.fireRateCostIncrement", d.Shop.FireRateCostIncrement)
	v.SetDefault("shop.fireRateFactor", d.Shop.FireRateFactor)
	v.SetDefault("shop.weaponUpgradeCost", d.Shop.WeaponUpgradeCost)
	v.SetDefault("shop.ammoUpgradeCost", d.Shop.AmmoUpgradeCost)
	v.SetDefault("shop.shotgunCost", d.Shop.ShotgunCost)
	v.SetDefault("shop.rifleCost", d.Shop.RifleCost)
}

// Load reads configuration from an optional JSON file in configDir and from
// ZOMBIE_* environment variables, on top of Default. A missing file is not
// an error.
func Load(configDir string) (Tuning, error) {
	d := Default()
	v := viper.New()
	setDefaults(v, d)

	v.SetConfigName(FileName)
	v.SetConfigType("json")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}

	v.SetEnvPrefix("ZOMBIE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Tuning{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	t := d
	if err := v.Unmarshal(&t); err != nil {
		return Tuning{}, fmt.Errorf("error decoding config: %w", err)
	}
	if !v.IsSet("walls") {
		t.Walls = d.Walls
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate rejects tunings the simulation cannot run with.
func (t Tuning) Validate() error {
	switch {
	case t.Arena.MaxX <= t.Arena.MinX || t.Arena.MaxY <= t.Arena.MinY:
		return fmt.Errorf("invalid arena bounds: %+v", t.Arena)
	case t.Weapon.BaseFireRate <= 0:
		return fmt.Errorf("weapon.baseFireRate must be positive, got %v", t.Weapon.BaseFireRate)
	case t.Shop.FireRateFactor <= 0 || t.Shop.FireRateFactor >= 1:
		return fmt.Errorf("shop.fireRateFactor must be in (0, 1), got %v", t.Shop.FireRateFactor)
	case t.Zombie.SpawnInterval <= 0:
		return fmt.Errorf("zombie.spawnInterval must be positive, got %v", t.Zombie.SpawnInterval)
	case t.MaxDeltaTime <= 0:
		return fmt.Errorf("maxDeltaTime must be positive, got %v", t.MaxDeltaTime)
	}
	return nil
}

// FireRateForLevel returns the cooldown (seconds) for a dashboard weapon level.
func (t Tuning) FireRateForLevel(level int) float64 {
	rate := t.Weapon.BaseFireRate
	for i := 0; i < level; i++ {
		rate *= t.Weapon.UpgradeDecay
	}
	return rate
}

// MaxAmmoForLevel returns the magazine size for a dashboard ammo level.
func (t Tuning) MaxAmmoForLevel(level int) int {
	return t.Weapon.BaseAmmo + level*t.Weapon.AmmoPerLevel
}
