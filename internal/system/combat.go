package system

import (
	"log"
	"math"

	"orbit-defense/internal/component"
	"orbit-defense/internal/config"
	"orbit-defense/internal/defs"
	"orbit-defense/internal/entity"
	"orbit-defense/internal/event"
	"orbit-defense/internal/types"
	"orbit-defense/internal/utils"
)

// CombatSystem отвечает за перезарядку башен, выбор цели и ловушки
type CombatSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	damage          *DamageSystem
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, lib *defs.Library, damage *DamageSystem, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		lib:             lib,
		damage:          damage,
		eventDispatcher: eventDispatcher,
	}
}

func (s *CombatSystem) Update() {
	for _, id := range s.ecs.TowerIDs() {
		tower, ok := s.ecs.Towers[id]
		if !ok {
			continue
		}
		def, ok := s.lib.Towers[tower.DefID]
		if !ok {
			log.Printf("CombatSystem: no tower definition for %q", tower.DefID)
			continue
		}

		switch def.Behavior {
		case defs.BehaviorTrap:
			s.updateTrap(id, tower, &def)
		case defs.BehaviorProjectile, defs.BehaviorInstant:
			s.updateTurret(id, tower, &def)
		}
	}
}

func (s *CombatSystem) updateTurret(id types.EntityID, tower *component.Tower, def *defs.TowerDefinition) {
	if tower.Cooldown > 0 {
		tower.Cooldown--
		return
	}

	targetID, found := s.FindTarget(tower.Pos, tower.Range)
	if !found {
		return
	}
	s.fire(id, tower, def, targetID)
	tower.Cooldown = def.FireRate
}

// FindTarget выбирает врага в радиусе, который дальше всех прошёл по пути: сначала
// старший сегмент, затем ближайший к следующей точке. При равенстве — порядок ростера.
func (s *CombatSystem) FindTarget(from component.Position, rangeRadius float64) (types.EntityID, bool) {
	var best types.EntityID
	bestSegment := -1
	bestDistToNext := math.Inf(1)

	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		if utils.Distance(from.X, from.Y, enemy.Pos.X, enemy.Pos.Y) > rangeRadius {
			continue
		}

		distToNext := math.Inf(1)
		if next, ok := s.ecs.Path.Next(enemy.Segment); ok {
			distToNext = utils.Distance(enemy.Pos.X, enemy.Pos.Y, next.X, next.Y)
		}

		if enemy.Segment > bestSegment || (enemy.Segment == bestSegment && distToNext < bestDistToNext) {
			best = id
			bestSegment = enemy.Segment
			bestDistToNext = distToNext
		}
	}
	return best, bestSegment >= 0
}

func (s *CombatSystem) fire(towerID types.EntityID, tower *component.Tower, def *defs.TowerDefinition, targetID types.EntityID) {
	s.eventDispatcher.Publish(event.Shoot, towerID)

	switch def.Behavior {
	case defs.BehaviorInstant:
		target := s.ecs.Enemies[targetID].Pos
		s.damage.ApplyDamage(targetID, def.Damage)
		s.ecs.Beams[s.ecs.NewEntity()] = &component.Beam{
			From: tower.Pos,
			To:   target,
			Life: config.BeamLifetime,
		}
	case defs.BehaviorProjectile:
		s.ecs.Projectiles[s.ecs.NewEntity()] = &component.Projectile{
			DefID:    def.ID,
			Pos:      tower.Pos,
			TargetID: targetID,
			Speed:    def.ProjectileSpeed,
			Active:   true,
		}
	}
}

// updateTrap взрывает ловушку при первом касании радиуса срабатывания
func (s *CombatSystem) updateTrap(id types.EntityID, tower *component.Tower, def *defs.TowerDefinition) {
	for _, enemyID := range s.ecs.EnemyIDs() {
		enemy, ok := s.ecs.Enemies[enemyID]
		if !ok {
			continue
		}
		if utils.Distance(tower.Pos.X, tower.Pos.Y, enemy.Pos.X, enemy.Pos.Y) <= tower.Range+enemy.Radius {
			s.detonate(id, tower, def)
			return
		}
	}
}

func (s *CombatSystem) detonate(id types.EntityID, tower *component.Tower, def *defs.TowerDefinition) {
	s.eventDispatcher.Publish(event.Explosion, id)
	s.damage.ApplyAreaDamage(tower.Pos, def.AOE, def.Damage)
	s.damage.SpawnParticles(tower.Pos, config.TrapParticles, config.TrapBlastColor, config.TrapParticleSpeedMult)
	delete(s.ecs.Towers, id)
}
