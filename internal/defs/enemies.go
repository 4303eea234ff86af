// internal/defs/enemies.go
package defs

// ZombieTier holds the static stats of zombies spawned during a wave.
type ZombieTier struct {
	Size   float64
	Health float64
	Reward int
}

// ZombieTiers is indexed by wave number; waves past the end reuse the last entry.
var ZombieTiers = []ZombieTier{
	{Size: 10, Health: 10, Reward: 10},
	{Size: 20, Health: 20, Reward: 20},
	{Size: 30, Health: 40, Reward: 30},
}

// TierForWave returns the zombie stats for the given wave (1-based).
func TierForWave(wave int) ZombieTier {
	if wave < 1 {
		wave = 1
	}
	if wave > len(ZombieTiers) {
		return ZombieTiers[len(ZombieTiers)-1]
	}
	return ZombieTiers[wave-1]
}
