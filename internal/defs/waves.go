package defs

// FirstWaveZombies is the spawn budget of wave 1 for a freshly started run.
const FirstWaveZombies = 10

// ZombiesForWave returns the spawn budget of a wave reached by clearing the
// previous one.
func ZombiesForWave(wave int) int {
	return 5 + wave*2
}
