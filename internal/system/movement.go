// internal/system/movement.go
package system

import (
	"orbit-defense/internal/component"
	"orbit-defense/internal/entity"
	"orbit-defense/internal/utils"
)

// MovementSystem управляет движением врагов по пути
type MovementSystem struct {
	ecs    *entity.ECS
	damage *DamageSystem
}

func NewMovementSystem(ecs *entity.ECS, damage *DamageSystem) *MovementSystem {
	return &MovementSystem{ecs: ecs, damage: damage}
}

func (s *MovementSystem) Update() {
	for _, id := range s.ecs.EnemyIDs() {
		if !s.ecs.Session.Active {
			return
		}
		enemy, ok := s.ecs.Enemies[id]
		if !ok {
			continue
		}
		if s.advance(enemy) {
			s.damage.ReachBase(id)
		}
	}
}

// advance сдвигает врага на один тик и сообщает, дошёл ли он до базы
func (s *MovementSystem) advance(enemy *component.Enemy) bool {
	speed := effectiveSpeed(enemy)

	target, ok := s.ecs.Path.Next(enemy.Segment)
	if !ok {
		return false
	}

	x, y, reached := utils.Step(enemy.Pos.X, enemy.Pos.Y, target.X, target.Y, speed)
	enemy.Pos = component.Position{X: x, Y: y}
	if !reached {
		return false
	}
	enemy.Segment++
	return enemy.Segment >= s.ecs.Path.Segments()
}
