// internal/defs/waves.go
package defs

import "math"

// Типы врагов, из которых собираются волны
const (
	EnemyBasic = "basic"
	EnemyFast  = "fast"
	EnemyTank  = "tank"
	EnemyBoss  = "boss"
)

const (
	baseSpawnCount    = 5
	spawnCountPerWave = 2.5
	baseSpawnInterval = 60
	intervalPerWave   = 2
	minSpawnInterval  = 20
	bossWaveEvery     = 5
	fastFromWave      = 3 // strictly greater than
	fastChance        = 0.2
	tankFromWave      = 5 // strictly greater than
	tankChance        = 0.1
)

// SpawnCount — сколько врагов выпускает волна n
func SpawnCount(wave int) int {
	return baseSpawnCount + int(math.Floor(float64(wave)*spawnCountPerWave))
}

// SpawnInterval — число тиков между выходами врагов в волне n
func SpawnInterval(wave int) int {
	return max(minSpawnInterval, baseSpawnInterval-wave*intervalPerWave)
}

// IsBossWave сообщает, будет ли последний враг волны боссом
func IsBossWave(wave int) bool {
	return wave%bossWaveEvery == 0
}

// ChooseEnemyKind выбирает тип следующего врага. remaining учитывает выбираемого,
// так что remaining == 1 — последний враг волны. Один бросок roll идёт и на проверку
// fast, и на проверку tank, поэтому roll < 0.1 при wave > 5 всегда даёт tank.
func ChooseEnemyKind(wave, remaining int, roll float64) string {
	kind := EnemyBasic
	if wave > fastFromWave && roll < fastChance {
		kind = EnemyFast
	}
	if wave > tankFromWave && roll < tankChance {
		kind = EnemyTank
	}
	if IsBossWave(wave) && remaining == 1 {
		kind = EnemyBoss
	}
	return kind
}
