// internal/defs/towers.go
package defs

import "image/color"

// SlowStats — замедление, которое снаряд накладывает на выжившую цель
type SlowStats struct {
	Factor   float64 `json:"factor"`   // множитель скорости под замедлением
	Duration int     `json:"duration"` // ticks
}

// TowerDefinition хранит статические данные типа башни
type TowerDefinition struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Cost            int        `json:"cost"`
	Range           float64    `json:"range"`
	Damage          float64    `json:"damage"`
	FireRate        int        `json:"fire_rate"` // тиков между выстрелами, 0 — стреляет каждый тик
	Behavior        Behavior   `json:"behavior"`
	AOE             float64    `json:"aoe,omitempty"`
	ProjectileSpeed float64    `json:"projectile_speed,omitempty"`
	Slow            *SlowStats `json:"slow,omitempty"`
	Color           color.RGBA `json:"color"`
}

// HasAOE сообщает, бьёт ли попадание по площади
func (d *TowerDefinition) HasAOE() bool {
	return d.AOE > 0
}

// ShotsPerSecond — темп стрельбы для отображения
func (d *TowerDefinition) ShotsPerSecond(ticksPerSecond int) float64 {
	if d.FireRate <= 0 {
		return float64(ticksPerSecond)
	}
	return float64(ticksPerSecond) / float64(d.FireRate)
}

func (d *TowerDefinition) validate() error {
	bad := func(field, msg string) error {
		return &ValidationError{Kind: "tower", ID: d.ID, Field: field, Msg: msg}
	}
	switch {
	case d.ID == "":
		return bad("id", "is empty")
	case !d.Behavior.Valid():
		return bad("behavior", "is unknown: "+string(d.Behavior))
	case d.Cost <= 0:
		return bad("cost", "must be positive")
	case d.Range <= 0:
		return bad("range", "must be positive")
	case d.Damage <= 0:
		return bad("damage", "must be positive")
	case d.FireRate < 0:
		return bad("fire_rate", "must not be negative")
	case d.Behavior == BehaviorProjectile && d.ProjectileSpeed <= 0:
		return bad("projectile_speed", "must be positive for projectile towers")
	case d.Behavior == BehaviorTrap && d.AOE <= 0:
		return bad("aoe", "must be positive for traps")
	case d.Slow != nil && (d.Slow.Duration <= 0 || d.Slow.Factor <= 0 || d.Slow.Factor > 1):
		return bad("slow", "needs a positive duration and a factor in (0, 1]")
	}
	return nil
}
