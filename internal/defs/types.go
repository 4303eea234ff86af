// internal/defs/types.go
package defs

// WeaponKind identifies one of the three player weapons.
type WeaponKind int

const (
	WeaponPistol WeaponKind = iota
	WeaponShotgun
	WeaponRifle
)

func (k WeaponKind) String() string {
	switch k {
	case WeaponPistol:
		return "Pistol"
	case WeaponShotgun:
		return "Shotgun"
	case WeaponRifle:
		return "Rifle"
	default:
		return "Unknown"
	}
}

// Difficulty выбирается в меню перед началом забега.
type Difficulty int

const (
	DifficultyNone Difficulty = iota
	DifficultyEasy
	DifficultyMedium
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "None"
	}
}

// IsSet reports whether a difficulty has been chosen.
func (d Difficulty) IsSet() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// MaxWaves is the wave whose clearing wins the run.
func (d Difficulty) MaxWaves() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 0
	}
}

// SpawnCount is how many zombies appear each time the spawn timer fires.
func (d Difficulty) SpawnCount() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 0
	}
}
