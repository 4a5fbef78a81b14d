// internal/system/projectile.go
package system

import (
	"log"

	"orbit-defense/internal/component"
	"orbit-defense/internal/config"
	"orbit-defense/internal/defs"
	"orbit-defense/internal/entity"
	"orbit-defense/internal/event"
	"orbit-defense/internal/types"
	"orbit-defense/internal/utils"
)

// ProjectileSystem ведёт снаряды к целям и обрабатывает попадания
type ProjectileSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	damage          *DamageSystem
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, lib *defs.Library, damage *DamageSystem, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		lib:             lib,
		damage:          damage,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ProjectileSystem) Update() {
	for _, id := range s.ecs.ProjectileIDs() {
		proj, ok := s.ecs.Projectiles[id]
		if !ok {
			continue
		}
		s.step(proj)
		if !proj.Active {
			delete(s.ecs.Projectiles, id)
		}
	}
}

func (s *ProjectileSystem) step(proj *component.Projectile) {
	if !proj.Active {
		return
	}

	target, alive := s.ecs.Enemies[proj.TargetID]
	if !alive {
		// Цель погибла или дошла до базы раньше
		proj.Active = false
		return
	}

	x, y, reached := utils.Step(proj.Pos.X, proj.Pos.Y, target.Pos.X, target.Pos.Y, proj.Speed)
	proj.Pos = component.Position{X: x, Y: y}
	if reached {
		s.impact(proj)
	}
}

func (s *ProjectileSystem) impact(proj *component.Projectile) {
	proj.Active = false

	def, ok := s.lib.Towers[proj.DefID]
	if !ok {
		log.Printf("ProjectileSystem: no tower definition for %q", proj.DefID)
		return
	}

	if def.HasAOE() {
		s.eventDispatcher.Publish(event.Explosion, proj.TargetID)
		s.damage.ApplyAreaDamage(proj.Pos, def.AOE, def.Damage)
		s.damage.SpawnParticles(proj.Pos, config.ImpactParticles, config.ExplosionColor, 1)
		return
	}

	s.hit(proj.TargetID, &def)
}

func (s *ProjectileSystem) hit(targetID types.EntityID, def *defs.TowerDefinition) {
	if killed := s.damage.ApplyDamage(targetID, def.Damage); killed || def.Slow == nil {
		return
	}
	if enemy, ok := s.ecs.Enemies[targetID]; ok {
		enemy.Slow.Apply(def.Slow.Duration, def.Slow.Factor)
	}
}
