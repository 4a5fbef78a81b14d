package system

import (
	"testing"

	"orbit-defense/internal/component"
	"orbit-defense/internal/defs"
	"orbit-defense/internal/types"
)

func (w *world) shot(kind string, x, y float64, target types.EntityID) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Projectiles[id] = &component.Projectile{
		DefID:    kind,
		Pos:      component.Position{X: x, Y: y},
		TargetID: target,
		Speed:    w.lib.Towers[kind].ProjectileSpeed,
		Active:   true,
	}
	return id
}

func TestProjectileMissesVanishedTarget(t *testing.T) {
	w := newWorld(t)
	target := w.enemy(defs.EnemyBasic, 2, 300, 400, 30)
	bystander := w.enemy(defs.EnemyBasic, 2, 305, 400, 30)
	p := w.shot("cannon", 300, 300, target)
	delete(w.ecs.Enemies, target)

	w.projectile.Update()

	if _, ok := w.ecs.Projectiles[p]; ok {
		t.Errorf("projectile with a dead target still in roster")
	}
	if w.ecs.Enemies[bystander].HP != 30 {
		t.Errorf("missed projectile dealt damage")
	}
}

func TestProjectileHomesOntoMovingTarget(t *testing.T) {
	w := newWorld(t)
	target := w.enemy(defs.EnemyBasic, 2, 300, 400, 30)
	p := w.shot("archer", 300, 300, target)

	w.projectile.Update()
	if pos := w.ecs.Projectiles[p].Pos; pos.X != 300 || pos.Y != 310 {
		t.Fatalf("projectile at (%v, %v), want (300, 310)", pos.X, pos.Y)
	}
	w.ecs.Enemies[target].Pos = component.Position{X: 400, Y: 310}
	w.projectile.Update()
	if pos := w.ecs.Projectiles[p].Pos; pos.X != 310 || pos.Y != 310 {
		t.Errorf("projectile did not turn towards the target: (%v, %v)", pos.X, pos.Y)
	}
}

func TestCannonSplashesAroundImpact(t *testing.T) {
	w := newWorld(t)
	target := w.enemy(defs.EnemyTank, 2, 300, 400, 100)
	inside := w.enemy(defs.EnemyTank, 2, 380, 400, 100)
	outside := w.enemy(defs.EnemyTank, 2, 381, 400, 100)
	p := w.shot("cannon", 300, 395, target)

	w.projectile.Update()

	if _, ok := w.ecs.Projectiles[p]; ok {
		t.Errorf("spent projectile still in roster")
	}
	for _, tt := range []struct {
		id   types.EntityID
		want float64
	}{{target, 60}, {inside, 60}, {outside, 100}} {
		if got := w.ecs.Enemies[tt.id].HP; got != tt.want {
			t.Errorf("enemy %d hp = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestMageSlowOverwritesTimer(t *testing.T) {
	w := newWorld(t)
	target := w.enemy(defs.EnemyTank, 2, 300, 400, 100)
	w.ecs.Enemies[target].Slow = component.SlowEffect{Timer: 5, Factor: 0.5}
	w.shot("mage", 300, 395, target)

	w.projectile.Update()

	e := w.ecs.Enemies[target]
	if e.HP != 85 {
		t.Errorf("hp = %v, want 85", e.HP)
	}
	if e.Slow.Timer != 120 || e.Slow.Factor != 0.5 {
		t.Errorf("slow = %+v, want 120 ticks at 0.5", e.Slow)
	}
}

func TestMageKillDoesNotSlow(t *testing.T) {
	w := newWorld(t)
	target := w.enemy(defs.EnemyFast, 2, 300, 400, 15)
	w.shot("mage", 300, 395, target)
	w.projectile.Update()
	if _, ok := w.ecs.Enemies[target]; ok {
		t.Errorf("15 damage did not kill a 15 hp enemy")
	}
}
