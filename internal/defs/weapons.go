// internal/defs/weapons.go
package defs

// WeaponDefinition holds the static data of a weapon.
type WeaponDefinition struct {
	Kind   WeaponKind
	Name   string
	Damage float64
	Slot   int // клавиша выбора (1..3)
}

// WeaponLibrary is keyed by weapon kind.
var WeaponLibrary = map[WeaponKind]WeaponDefinition{
	WeaponPistol:  {Kind: WeaponPistol, Name: "Pistol", Damage: 10, Slot: 1},
	WeaponShotgun: {Kind: WeaponShotgun, Name: "Shotgun", Damage: 25, Slot: 2},
	WeaponRifle:   {Kind: WeaponRifle, Name: "Rifle", Damage: 20, Slot: 3},
}

// WeaponForSlot maps a selection slot (1..3) to a weapon kind.
func WeaponForSlot(slot int) (WeaponKind, bool) {
	for kind, def := range WeaponLibrary {
		if def.Slot == slot {
			return kind, true
		}
	}
	return WeaponPistol, false
}
