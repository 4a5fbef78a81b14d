// internal/system/status_effect.go
package system

import (
	"orbit-defense/internal/component"
	"orbit-defense/internal/config"
)

// effectiveSpeed возвращает скорость врага на этот тик и списывает один тик замедления
func effectiveSpeed(enemy *component.Enemy) float64 {
	speed := enemy.Speed
	if enemy.Slow.Active() {
		factor := enemy.Slow.Factor
		if factor <= 0 {
			factor = config.SlowSpeedFactor
		}
		speed *= factor
		enemy.Slow.Timer--
	}
	return speed
}
