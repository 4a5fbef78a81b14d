// internal/defs/path.go
package defs

// Point — точка в мировых координатах
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Path — фиксированный маршрут врагов от Waypoints[0] до последней точки
type Path struct {
	Waypoints []Point `json:"waypoints"`
}

// Start — точка появления врагов
func (p *Path) Start() Point {
	return p.Waypoints[0]
}

// End — база
func (p *Path) End() Point {
	return p.Waypoints[len(p.Waypoints)-1]
}

// Segments — число отрезков между соседними точками
func (p *Path) Segments() int {
	return len(p.Waypoints) - 1
}

// Next возвращает конец отрезка i или false за последним отрезком
func (p *Path) Next(segment int) (Point, bool) {
	if segment < 0 || segment+1 >= len(p.Waypoints) {
		return Point{}, false
	}
	return p.Waypoints[segment+1], true
}

func (p *Path) validate() error {
	if len(p.Waypoints) < 2 {
		return &ValidationError{Kind: "path", Field: "waypoints", Msg: "needs at least 2 points"}
	}
	return nil
}
