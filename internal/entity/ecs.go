// internal/entity/ecs.go
package entity

import (
	"maps"
	"slices"

	"orbit-defense/internal/component"
	"orbit-defense/internal/config"
	"orbit-defense/internal/defs"
	"orbit-defense/internal/types"
)

// ECS хранит все ростеры и счётчики сессии. Сущность жива, только пока она в ростере;
// сохранённые где-то ID нужно каждый раз искать заново.
type ECS struct {
	NextID      types.EntityID
	Tick        uint64
	Path        *defs.Path
	Enemies     map[types.EntityID]*component.Enemy
	Towers      map[types.EntityID]*component.Tower
	Projectiles map[types.EntityID]*component.Projectile
	Beams       map[types.EntityID]*component.Beam
	Particles   map[types.EntityID]*component.Particle
	Session     *component.Session
}

func NewECS(path *defs.Path) *ECS {
	ecs := &ECS{Path: path}
	ecs.Reset()
	return ecs
}

// Reset очищает ростеры и возвращает стартовые значения счётчиков
func (ecs *ECS) Reset() {
	ecs.NextID = 1
	ecs.Tick = 0
	ecs.Enemies = make(map[types.EntityID]*component.Enemy)
	ecs.Towers = make(map[types.EntityID]*component.Tower)
	ecs.Projectiles = make(map[types.EntityID]*component.Projectile)
	ecs.Beams = make(map[types.EntityID]*component.Beam)
	ecs.Particles = make(map[types.EntityID]*component.Particle)
	ecs.Session = &component.Session{
		Money: config.StartingMoney,
		Lives: config.StartingLives,
		Wave:  config.StartingWave,
		Phase: component.WaveIdle,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// EnemyIDs возвращает ID врагов в порядке добавления. Срез — копия, поэтому
// при обходе сущности можно удалять.
func (ecs *ECS) EnemyIDs() []types.EntityID { return sortedIDs(ecs.Enemies) }

func (ecs *ECS) TowerIDs() []types.EntityID { return sortedIDs(ecs.Towers) }

func (ecs *ECS) ProjectileIDs() []types.EntityID { return sortedIDs(ecs.Projectiles) }

func (ecs *ECS) BeamIDs() []types.EntityID { return sortedIDs(ecs.Beams) }

func (ecs *ECS) ParticleIDs() []types.EntityID { return sortedIDs(ecs.Particles) }

// EnemiesLeft — враги на поле плюс те, кто ещё не вышел в этой волне
func (ecs *ECS) EnemiesLeft() int {
	return len(ecs.Enemies) + ecs.Session.EnemiesToSpawn
}

func sortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	return slices.Sorted(maps.Keys(m))
}
