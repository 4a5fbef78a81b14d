// internal/component/game_state.go
package component

// WavePhase — фаза волны
type WavePhase int

const (
	WaveIdle     WavePhase = iota // до первой волны или после сброса
	WaveSpawning                  // ещё есть кого выпускать
	WaveDraining                  // все вышли, ростер не пуст
	WaveComplete                  // ростер пуст, ждём следующую волну
)

func (p WavePhase) String() string {
	switch p {
	case WaveIdle:
		return "idle"
	case WaveSpawning:
		return "spawning"
	case WaveDraining:
		return "draining"
	case WaveComplete:
		return "complete"
	}
	return "unknown"
}

// Session — счётчики экономики и прогресса сессии
type Session struct {
	Money          int
	Lives          int
	Score          int
	Wave           int
	Phase          WavePhase
	EnemiesToSpawn int
	SpawnTimer     int
	Active         bool // тики обрабатываются
	Over           bool // жизни кончились
}

// WaveActive сообщает, идёт ли волна
func (s *Session) WaveActive() bool {
	return s.Phase == WaveSpawning || s.Phase == WaveDraining
}
