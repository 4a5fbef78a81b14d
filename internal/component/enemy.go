// internal/component/enemy.go
package component

// Enemy — живой враг на пути
type Enemy struct {
	DefID     string // ключ в таблице врагов
	Pos       Position
	HP        float64
	MaxHP     float64
	Speed     float64 // скорость до эффектов
	BaseSpeed float64
	Radius    float64
	Reward    int
	Segment   int // индекс последней пройденной точки, враг идёт к Segment+1
	Slow      SlowEffect
}
