// internal/event/types.go
package event

const (
	ZombieKilled    EventType = "ZombieKilled"    // Зомби убит
	PlayerDied      EventType = "PlayerDied"      // Игрок погиб
	WaveStarted     EventType = "WaveStarted"     // Началась новая волна
	WaveCleared     EventType = "WaveCleared"     // Волна зачищена
	RunWon          EventType = "RunWon"          // Пройдена последняя волна
	PurchaseMade    EventType = "PurchaseMade"    // Покупка совершена
	PurchaseRefused EventType = "PurchaseRefused" // Покупка отклонена
	RunEnded        EventType = "RunEnded"        // Забег закончен, деньги сведены
)

// ZombieKilledData is carried by ZombieKilled.
type ZombieKilledData struct {
	Reward int
	Wave   int
}

// WaveData is carried by WaveStarted, WaveCleared and RunWon.
type WaveData struct {
	Wave int
}

// PurchaseData is carried by PurchaseMade and PurchaseRefused.
type PurchaseData struct {
	Item   string
	Result string
	Cost   int
}

// RunEndedData is carried by RunEnded.
type RunEndedData struct {
	Outcome string // "lost" или "won"
	Money   int
}
