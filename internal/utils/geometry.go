// internal/utils/geometry.go
package utils

import "math"

// Distance возвращает евклидово расстояние между точками
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// DistToSegment возвращает расстояние от (px, py) до отрезка (x1,y1)-(x2,y2).
// Отрезок нулевой длины считается точкой.
func DistToSegment(px, py, x1, y1, x2, y2 float64) float64 {
	cx := x2 - x1
	cy := y2 - y1
	lenSq := cx*cx + cy*cy
	if lenSq == 0 {
		return Distance(px, py, x1, y1)
	}

	t := ((px-x1)*cx + (py-y1)*cy) / lenSq
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	return Distance(px, py, x1+t*cx, y1+t*cy)
}

// Step сдвигает (x, y) к (tx, ty) не больше чем на step. Возвращает true, если
// до цели оставалось меньше step и точка встала прямо на цель.
func Step(x, y, tx, ty, step float64) (nx, ny float64, arrived bool) {
	dx := tx - x
	dy := ty - y
	dist := math.Hypot(dx, dy)
	if dist < step {
		return tx, ty, true
	}
	return x + dx/dist*step, y + dy/dist*step, false
}
