// internal/system/utils.go
package system

import (
	"image/color"
	"log"

	"orbit-defense/internal/component"
	"orbit-defense/internal/config"
	"orbit-defense/internal/defs"
	"orbit-defense/internal/entity"
	"orbit-defense/internal/event"
	"orbit-defense/internal/types"
	"orbit-defense/internal/utils"
)

// DamageSystem — два способа покинуть ростер: смерть и выход к базе.
type DamageSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	eventDispatcher *event.Dispatcher
	fx              *utils.PRNGService // только для эффектов, в симуляцию не попадает
}

func NewDamageSystem(ecs *entity.ECS, lib *defs.Library, eventDispatcher *event.Dispatcher, fx *utils.PRNGService) *DamageSystem {
	return &DamageSystem{ecs: ecs, lib: lib, eventDispatcher: eventDispatcher, fx: fx}
}

// ApplyDamage наносит урон врагу и сообщает, погиб ли он.
// Устаревший ID игнорируется.
func (s *DamageSystem) ApplyDamage(id types.EntityID, amount float64) bool {
	enemy, ok := s.ecs.Enemies[id]
	if !ok {
		return false
	}

	enemy.HP -= amount
	if enemy.HP > 0 {
		s.eventDispatcher.Publish(event.Hit, id)
		return false
	}

	enemy.HP = 0
	sess := s.ecs.Session
	sess.Money += enemy.Reward
	sess.Score += enemy.Reward * config.ScorePerReward
	delete(s.ecs.Enemies, id)

	s.SpawnParticles(enemy.Pos, config.DeathParticles, s.colorOf(enemy), 1)
	s.eventDispatcher.Publish(event.EnemyKilled, event.EnemyKilledData{
		ID:     id,
		Kind:   enemy.DefID,
		Reward: enemy.Reward,
		X:      enemy.Pos.X,
		Y:      enemy.Pos.Y,
	})
	return true
}

// ApplyAreaDamage бьёт всех врагов в радиусе и возвращает число попаданий.
func (s *DamageSystem) ApplyAreaDamage(center component.Position, radius, amount float64) int {
	hits := 0
	for _, id := range s.ecs.EnemyIDs() {
		enemy, ok := s.ecs.Enemies[id]
		if !ok {
			continue
		}
		if utils.Distance(center.X, center.Y, enemy.Pos.X, enemy.Pos.Y) <= radius {
			s.ApplyDamage(id, amount)
			hits++
		}
	}
	return hits
}

// ReachBase убирает дошедшего до базы врага и списывает жизнь.
func (s *DamageSystem) ReachBase(id types.EntityID) {
	if _, ok := s.ecs.Enemies[id]; !ok {
		return
	}
	delete(s.ecs.Enemies, id)

	sess := s.ecs.Session
	sess.Lives--
	s.eventDispatcher.Publish(event.EnemyReachedBase, id)

	if sess.Lives <= 0 && !sess.Over {
		sess.Over = true
		sess.Active = false
		log.Printf("Game over on wave %d with score %d", sess.Wave, sess.Score)
		s.eventDispatcher.Publish(event.GameOver, sess.Score)
	}
}

// SpawnParticles добавляет n искр в точке pos.
func (s *DamageSystem) SpawnParticles(pos component.Position, n int, c color.RGBA, speedMult float64) {
	for i := 0; i < n; i++ {
		id := s.ecs.NewEntity()
		s.ecs.Particles[id] = &component.Particle{
			Pos:   pos,
			VX:    s.fx.Spread(config.ParticleSpread * speedMult),
			VY:    s.fx.Spread(config.ParticleSpread * speedMult),
			Life:  1.0,
			Color: c,
		}
	}
}

func (s *DamageSystem) colorOf(enemy *component.Enemy) color.RGBA {
	if def, ok := s.lib.Enemies[enemy.DefID]; ok {
		return def.Color
	}
	return config.WarnColor
}
