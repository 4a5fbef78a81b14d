package system

import (
	"testing"

	"orbit-defense/internal/component"
	"orbit-defense/internal/defs"
	"orbit-defense/internal/entity"
	"orbit-defense/internal/event"
	"orbit-defense/internal/types"
	"orbit-defense/internal/utils"
)

type world struct {
	ecs        *entity.ECS
	lib        *defs.Library
	events     *event.Dispatcher
	damage     *DamageSystem
	movement   *MovementSystem
	combat     *CombatSystem
	projectile *ProjectileSystem
}

func newWorld(t *testing.T) *world {
	t.Helper()
	lib, err := defs.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	w := &world{
		ecs:    entity.NewECS(&lib.Path),
		lib:    lib,
		events: event.NewDispatcher(),
	}
	w.ecs.Session.Active = true
	w.damage = NewDamageSystem(w.ecs, lib, w.events, utils.NewPRNGService(1))
	w.movement = NewMovementSystem(w.ecs, w.damage)
	w.combat = NewCombatSystem(w.ecs, lib, w.damage, w.events)
	w.projectile = NewProjectileSystem(w.ecs, lib, w.damage, w.events)
	return w
}

func (w *world) enemy(kind string, segment int, x, y, hp float64) types.EntityID {
	def := w.lib.Enemies[kind]
	id := w.ecs.NewEntity()
	w.ecs.Enemies[id] = &component.Enemy{
		DefID:     kind,
		Pos:       component.Position{X: x, Y: y},
		HP:        hp,
		MaxHP:     hp,
		Speed:     def.Speed,
		BaseSpeed: def.Speed,
		Radius:    def.Radius,
		Reward:    def.Reward,
		Segment:   segment,
	}
	return id
}

func (w *world) tower(kind string, x, y float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Towers[id] = &component.Tower{
		DefID: kind,
		Pos:   component.Position{X: x, Y: y},
		Range: w.lib.Towers[kind].Range,
	}
	return id
}

func (w *world) count(t event.EventType) *int {
	n := new(int)
	w.events.Subscribe(t, event.ListenerFunc(func(event.Event) { *n++ }))
	return n
}
