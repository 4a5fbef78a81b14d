// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition хранит статические данные типа врага
type EnemyDefinition struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Health      float64    `json:"health"`
	Speed       float64    `json:"speed"`
	Reward      int        `json:"reward"`
	Radius      float64    `json:"radius"`
	Color       color.RGBA `json:"color"`
}

func (d *EnemyDefinition) validate() error {
	bad := func(field, msg string) error {
		return &ValidationError{Kind: "enemy", ID: d.ID, Field: field, Msg: msg}
	}
	switch {
	case d.ID == "":
		return bad("id", "is empty")
	case d.Health <= 0:
		return bad("health", "must be positive")
	case d.Speed <= 0:
		return bad("speed", "must be positive")
	case d.Reward < 0:
		return bad("reward", "must not be negative")
	case d.Radius <= 0:
		return bad("radius", "must be positive")
	}
	return nil
}
