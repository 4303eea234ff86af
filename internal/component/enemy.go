package component

// Zombie представляет вражескую сущность.
type Zombie struct {
	Size   float64 // сторона спрайта; 0 - не задана
	Reward int     // деньги за убийство, фиксируются при спавне
}
