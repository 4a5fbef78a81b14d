package system

import (
	"slices"
	"testing"
	"time"

	"orbit-defense/internal/component"
	"orbit-defense/internal/defs"
	"orbit-defense/internal/utils"
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

func newWaveSystem(w *world) (*WaveSystem, *utils.Scheduler) {
	sched := utils.NewScheduler(&fixedClock{now: time.Unix(0, 0)})
	return NewWaveSystem(w.ecs, w.lib, w.events, utils.NewPRNGService(3), sched), sched
}

func TestWaveSpawnsOnInterval(t *testing.T) {
	w := newWorld(t)
	waves, sched := newWaveSystem(w)
	waves.StartWave()

	interval := defs.SpawnInterval(1)
	for i := 0; i < interval-1; i++ {
		waves.Update()
	}
	if len(w.ecs.Enemies) != 0 {
		t.Fatalf("enemy spawned before the interval elapsed")
	}
	waves.Update()
	if len(w.ecs.Enemies) != 1 {
		t.Fatalf("enemies = %d after one interval, want 1", len(w.ecs.Enemies))
	}
	for _, e := range w.ecs.Enemies {
		if e.Pos.X != 0 || e.Pos.Y != 100 || e.MaxHP != 36 || e.DefID != defs.EnemyBasic {
			t.Errorf("spawned enemy = %+v", e)
		}
	}

	for i := 0; i < interval*(defs.SpawnCount(1)-1); i++ {
		waves.Update()
	}
	if len(w.ecs.Enemies) != defs.SpawnCount(1) {
		t.Errorf("enemies = %d, want %d", len(w.ecs.Enemies), defs.SpawnCount(1))
	}
	if w.ecs.Session.Phase != component.WaveDraining {
		t.Errorf("phase = %v, want draining", w.ecs.Session.Phase)
	}

	clear(w.ecs.Enemies)
	waves.Update()
	if w.ecs.Session.Phase != component.WaveComplete || w.ecs.Session.Wave != 2 {
		t.Errorf("phase %v wave %d, want complete and 2", w.ecs.Session.Phase, w.ecs.Session.Wave)
	}
	if sched.Pending() != 1 {
		t.Errorf("next wave not scheduled")
	}
}

func TestBossClosesEveryFifthWave(t *testing.T) {
	w := newWorld(t)
	waves, _ := newWaveSystem(w)
	w.ecs.Session.Wave = 5
	waves.StartWave()

	for w.ecs.Session.Phase == component.WaveSpawning {
		waves.Update()
	}
	ids := w.ecs.EnemyIDs()
	if len(ids) != defs.SpawnCount(5) {
		t.Fatalf("spawned %d, want %d", len(ids), defs.SpawnCount(5))
	}
	last := w.ecs.Enemies[ids[len(ids)-1]]
	if last.DefID != defs.EnemyBoss {
		t.Errorf("last spawn = %q, want boss", last.DefID)
	}
	if want := 500 * 2.0; last.MaxHP != want {
		t.Errorf("boss hp = %v, want %v", last.MaxHP, want)
	}
	kinds := make([]string, 0, len(ids)-1)
	for _, id := range ids[:len(ids)-1] {
		kinds = append(kinds, w.ecs.Enemies[id].DefID)
	}
	if slices.Contains(kinds, defs.EnemyBoss) || slices.Contains(kinds, defs.EnemyTank) {
		t.Errorf("unexpected kinds before the boss: %v", kinds)
	}
}
