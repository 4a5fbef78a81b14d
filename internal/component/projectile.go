// internal/component/projectile.go
package component

import "orbit-defense/internal/types"

// Projectile — самонаводящийся снаряд. TargetID только ссылка: цель может
// покинуть ростер раньше, чем снаряд долетит.
type Projectile struct {
	DefID    string // определение башни, которая выстрелила
	Pos      Position
	TargetID types.EntityID
	Speed    float64
	Active   bool
}
