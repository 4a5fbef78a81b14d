// internal/component/movement.go
package component

// Position — позиция в мировых координатах
type Position struct {
	X, Y float64
}
