package app

import (
	"testing"
	"time"

	"orbit-defense/internal/component"
	"orbit-defense/internal/config"
	"orbit-defense/internal/defs"
	"orbit-defense/internal/event"
	"orbit-defense/internal/types"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestGame(t *testing.T) (*Game, *fakeClock) {
	t.Helper()
	lib, err := defs.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	return NewGame(lib, Options{Seed: 42, Clock: clock}), clock
}

// startQuiet starts a session but stops the wave scheduler so tests control the roster.
func startQuiet(g *Game) {
	g.Start()
	g.ECS.Session.Phase = component.WaveIdle
	g.ECS.Session.EnemiesToSpawn = 0
}

func addEnemy(g *Game, kind string, segment int, x, y float64) types.EntityID {
	def := g.Defs.Enemies[kind]
	hp := def.Health * (1 + float64(g.ECS.Session.Wave)*config.HPScalePerWave)
	id := g.ECS.NewEntity()
	g.ECS.Enemies[id] = &component.Enemy{
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

func TestArcherKillsBasicInFourHits(t *testing.T) {
	g, _ := newTestGame(t)
	startQuiet(g)

	var hits, kills int
	g.EventDispatcher.Subscribe(event.Hit, event.ListenerFunc(func(event.Event) { hits++ }))
	g.EventDispatcher.Subscribe(event.EnemyKilled, event.ListenerFunc(func(event.Event) { kills++ }))

	if !g.PlaceTower("archer", 350, 300) {
		t.Fatalf("archer placement rejected")
	}
	id := addEnemy(g, defs.EnemyBasic, 2, 200, 400)
	if hp := g.ECS.Enemies[id].MaxHP; hp != 36 {
		t.Fatalf("basic hp on wave 1 = %v, want 36", hp)
	}
	moneyBefore, scoreBefore := g.Money(), g.Score()

	for i := 0; i < 300 && kills == 0; i++ {
		g.Tick()
	}

	if kills != 1 {
		t.Fatalf("enemy not killed, hp left %v", g.ECS.Enemies[id].HP)
	}
	if hits != 3 {
		t.Errorf("non-lethal hits = %d, want 3 (fourth hit kills)", hits)
	}
	if _, alive := g.ECS.Enemies[id]; alive {
		t.Errorf("dead enemy still in roster")
	}
	if got := g.Money() - moneyBefore; got != 5 {
		t.Errorf("money delta = %d, want 5", got)
	}
	if got := g.Score() - scoreBefore; got != 50 {
		t.Errorf("score delta = %d, want 50", got)
	}
}

func TestPlaceTowerRejections(t *testing.T) {
	g, _ := newTestGame(t)

	if g.PlaceTower("archer", 350, 300) {
		t.Fatalf("placement accepted on an inactive session")
	}

	startQuiet(g)
	g.ECS.Session.Money = 40
	if g.PlaceTower("archer", 350, 300) {
		t.Errorf("placement accepted with money 40 for a tower costing 50")
	}
	if g.Money() != 40 || len(g.ECS.Towers) != 0 {
		t.Errorf("rejected placement changed state: money %d, towers %d", g.Money(), len(g.ECS.Towers))
	}

	g.ECS.Session.Money = 100000
	if g.PlaceTower("archer", 210, 250) {
		t.Errorf("placement accepted 10 units from the path")
	}
	if g.PlaceTower("laser", 350, 300) {
		t.Errorf("placement accepted for an unknown kind")
	}
	if len(g.ECS.Towers) != 0 || g.Money() != 100000 {
		t.Errorf("rejected placement changed state")
	}
}

func TestPlaceTowerDeductsAndPublishes(t *testing.T) {
	g, _ := newTestGame(t)
	startQuiet(g)

	built := 0
	g.EventDispatcher.Subscribe(event.Build, event.ListenerFunc(func(event.Event) { built++ }))

	if !g.PlaceTower("cannon", 350, 300) {
		t.Fatalf("cannon placement rejected")
	}
	if g.Money() != config.StartingMoney-150 {
		t.Errorf("money = %d, want %d", g.Money(), config.StartingMoney-150)
	}
	if built != 1 {
		t.Errorf("Build published %d times, want 1", built)
	}
	for _, tower := range g.ECS.Towers {
		if tower.Range != 120 || tower.DefID != "cannon" {
			t.Errorf("tower = %+v, want cannon with range 120", tower)
		}
	}
}

func TestIsValidPlacement(t *testing.T) {
	g, _ := newTestGame(t)
	startQuiet(g)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"on first segment", 100, 100, false},
		{"24 units off a vertical segment", 224, 250, false},
		{"25 units off a vertical segment", 225, 250, true},
		{"near the base", 1000, 460, false},
		{"open ground", 350, 300, true},
		{"bottom strip of the playfield", 300, 560, true},
	}
	for _, tt := range tests {
		if got := g.IsValidPlacement(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: IsValidPlacement(%v, %v) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}

	if !g.PlaceTower("archer", 350, 300) {
		t.Fatalf("archer placement rejected")
	}
	if g.IsValidPlacement(380, 300) {
		t.Errorf("spot 30 units from a tower accepted")
	}
	if !g.IsValidPlacement(391, 300) {
		t.Errorf("spot 41 units from a tower rejected")
	}
}

func TestGameOverStopsTheSession(t *testing.T) {
	g, _ := newTestGame(t)
	startQuiet(g)
	g.ECS.Session.Lives = 1

	overs := 0
	g.EventDispatcher.Subscribe(event.GameOver, event.ListenerFunc(func(event.Event) { overs++ }))

	last := g.ECS.Path.Segments() - 1
	addEnemy(g, defs.EnemyBasic, last, 1023, 450)
	addEnemy(g, defs.EnemyBasic, last, 1023, 450)
	g.Tick()

	if g.Lives() != 0 {
		t.Errorf("lives = %d, want 0", g.Lives())
	}
	if !g.IsOver() || g.IsActive() {
		t.Fatalf("session not over: over=%v active=%v", g.IsOver(), g.IsActive())
	}
	if overs != 1 {
		t.Errorf("GameOver published %d times, want 1", overs)
	}

	g.ECS.Session.Phase = component.WaveSpawning
	g.ECS.Session.EnemiesToSpawn = 5
	tick := g.ECS.Tick
	enemies := len(g.ECS.Enemies)
	g.Update(500)
	if g.ECS.Tick != tick || len(g.ECS.Enemies) != enemies {
		t.Errorf("ticks ran after game over")
	}

	g.Start()
	if g.IsActive() {
		t.Errorf("Start reactivated a finished session without a restart")
	}
	if g.PlaceTower("archer", 350, 300) {
		t.Errorf("placement accepted after game over")
	}
}

func TestRestartRestoresInitialState(t *testing.T) {
	g, clock := newTestGame(t)
	g.Start()
	g.PlaceTower("archer", 350, 300)
	g.PlaceTower("bomb", 600, 300)
	for i := 0; i < 400; i++ {
		g.Tick()
		clock.advance(time.Second / config.TicksPerSecond)
	}
	g.ECS.Session.Lives = 3

	g.Restart()

	fresh, _ := newTestGame(t)
	fresh.Start()
	if got, want := g.Session(), fresh.Session(); got != want {
		t.Errorf("session after restart = %+v, want %+v", got, want)
	}
	if g.Money() != 450 || g.Lives() != 20 || g.Wave() != 1 || g.Score() != 0 {
		t.Errorf("counters after restart: money %d lives %d wave %d score %d", g.Money(), g.Lives(), g.Wave(), g.Score())
	}
	if n := len(g.ECS.Enemies) + len(g.ECS.Towers) + len(g.ECS.Projectiles) + len(g.ECS.Beams) + len(g.ECS.Particles); n != 0 {
		t.Errorf("%d entities survived restart", n)
	}
	if g.ECS.Tick != 0 {
		t.Errorf("tick = %d after restart", g.ECS.Tick)
	}
}

func TestResetLeavesSessionInactive(t *testing.T) {
	g, _ := newTestGame(t)
	g.Start()
	g.Reset()
	if g.IsActive() {
		t.Fatalf("session active after Reset")
	}
	g.Tick()
	if g.ECS.Tick != 0 {
		t.Errorf("inactive tick advanced the clock to %d", g.ECS.Tick)
	}
}

// completeWave fast-forwards the current wave to the draining phase with an empty field.
func completeWave(g *Game) {
	g.ECS.Session.Phase = component.WaveDraining
	g.ECS.Session.EnemiesToSpawn = 0
	g.ECS.Enemies = make(map[types.EntityID]*component.Enemy)
	g.Tick()
}

func TestNextWaveStartsAfterWallClockDelay(t *testing.T) {
	g, clock := newTestGame(t)
	g.Start()

	var started []int
	g.EventDispatcher.Subscribe(event.WaveStarted, event.ListenerFunc(func(e event.Event) {
		started = append(started, e.Data.(int))
	}))

	completeWave(g)
	if g.ECS.Session.Phase != component.WaveComplete || g.Wave() != 2 {
		t.Fatalf("phase %v wave %d, want complete on wave 2", g.ECS.Session.Phase, g.Wave())
	}

	for i := 0; i < 200; i++ {
		g.Tick()
	}
	clock.advance(config.NextWaveDelay - time.Millisecond)
	g.Tick()
	if g.ECS.Session.Phase != component.WaveComplete || len(started) != 0 {
		t.Fatalf("next wave started before the delay elapsed")
	}

	clock.advance(time.Millisecond)
	g.Tick()
	if g.ECS.Session.Phase != component.WaveSpawning {
		t.Fatalf("phase = %v after the delay, want spawning", g.ECS.Session.Phase)
	}
	if len(started) != 1 || started[0] != 2 {
		t.Errorf("WaveStarted = %v, want [2]", started)
	}
	if g.ECS.Session.EnemiesToSpawn != defs.SpawnCount(2) {
		t.Errorf("EnemiesToSpawn = %d, want %d", g.ECS.Session.EnemiesToSpawn, defs.SpawnCount(2))
	}
}

func TestRestartCancelsPendingWave(t *testing.T) {
	g, clock := newTestGame(t)
	g.Start()
	completeWave(g)
	if g.Scheduler.Pending() != 1 {
		t.Fatalf("pending callbacks = %d, want 1", g.Scheduler.Pending())
	}

	g.Restart()
	clock.advance(config.NextWaveDelay)
	g.Tick()

	if g.Wave() != 1 {
		t.Errorf("stale timer moved the new session to wave %d", g.Wave())
	}
	if g.Scheduler.Pending() != 0 {
		t.Errorf("pending callbacks after restart = %d", g.Scheduler.Pending())
	}
}

func TestInspectAt(t *testing.T) {
	g, _ := newTestGame(t)
	startQuiet(g)
	g.PlaceTower("archer", 350, 300)

	got, ok := g.InspectAt(355, 305)
	if !ok || got.Kind != InspectTower {
		t.Fatalf("InspectAt near tower = %+v, %v", got, ok)
	}
	if want := "Tower Archer: Damage 10, Range 150"; got.Text != want {
		t.Errorf("tower text = %q, want %q", got.Text, want)
	}

	id := addEnemy(g, defs.EnemyBasic, 2, 352, 300)
	g.ECS.Enemies[id].HP = 20.7
	got, ok = g.InspectAt(355, 305)
	if !ok || got.Kind != InspectEnemy || got.ID != id {
		t.Fatalf("enemy not preferred over tower: %+v", got)
	}
	if want := "BASIC: HP 20/36"; got.Text != want {
		t.Errorf("enemy text = %q, want %q", got.Text, want)
	}

	if _, ok := g.InspectAt(700, 50); ok {
		t.Errorf("InspectAt on empty ground found something")
	}
}

func TestUpdateRunsMultipleTicks(t *testing.T) {
	g, _ := newTestGame(t)
	g.Start()
	g.Update(4)
	if g.ECS.Tick != 4 {
		t.Errorf("tick = %d after Update(4), want 4", g.ECS.Tick)
	}
}

func TestSeedReplaysTheSameSession(t *testing.T) {
	run := func() Snapshot {
		g, _ := newTestGame(t)
		g.Start()
		g.PlaceTower("archer", 350, 300)
		g.PlaceTower("mage", 300, 250)
		g.ECS.Session.Wave = 8
		g.WaveSystem.StartWave()
		g.Update(600)
		return g.Snapshot()
	}

	a, b := run(), run()
	if len(a.Enemies) != len(b.Enemies) || a.Money != b.Money || a.Score != b.Score {
		t.Fatalf("runs diverged: %d/%d enemies, money %d/%d", len(a.Enemies), len(b.Enemies), a.Money, b.Money)
	}
	for i := range a.Enemies {
		if a.Enemies[i] != b.Enemies[i] {
			t.Errorf("enemy %d differs: %+v vs %+v", i, a.Enemies[i], b.Enemies[i])
		}
	}
}
