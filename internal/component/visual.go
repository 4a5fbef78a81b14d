// internal/component/visual.go
package component

import "image/color"

// Beam — след мгновенного выстрела для рендера
type Beam struct {
	From, To Position
	Life     int // осталось тиков
}

// Particle — декоративная искра
type Particle struct {
	Pos    Position
	VX, VY float64
	Life   float64 // 1.0 при рождении, удаляется на 0
	Color  color.RGBA
}
