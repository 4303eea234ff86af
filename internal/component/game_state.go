package component

// SessionState - верхнеуровневый режим игры
type SessionState int

const (
	Dashboard SessionState = iota
	Playing
	Paused
	GameOver
	Win
)

func (s SessionState) String() string {
	switch s {
	case Dashboard:
		return "Dashboard"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case GameOver:
		return "GameOver"
	case Win:
		return "Win"
	default:
		return "Unknown"
	}
}
