// internal/event/types.go
package event

import "orbit-defense/internal/types"

const (
	Shoot            EventType = "shoot"
	Explosion        EventType = "explosion"
	Hit              EventType = "hit"
	Build            EventType = "build"
	GameOver         EventType = "gameover"
	EnemyKilled      EventType = "EnemyKilled"      // Data: EnemyKilledData
	EnemyReachedBase EventType = "EnemyReachedBase" // Data: types.EntityID
	WaveStarted      EventType = "WaveStarted"      // Data: номер волны
	WaveCompleted    EventType = "WaveCompleted"    // Data: номер завершённой волны
)

// EnemyKilledData — данные события EnemyKilled
type EnemyKilledData struct {
	ID     types.EntityID
	Kind   string
	Reward int
	X, Y   float64
}
