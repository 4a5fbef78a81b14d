// internal/app/game.go
package app

import (
	"log"

	"orbit-defense/internal/component"
	"orbit-defense/internal/defs"
	"orbit-defense/internal/entity"
	"orbit-defense/internal/event"
	"orbit-defense/internal/system"
	"orbit-defense/internal/utils"
)

// Options настраивают Game. Нулевое значение: сид от времени, системные часы
// и собственный диспетчер.
type Options struct {
	Seed            int64
	Clock           utils.Clock
	EventDispatcher *event.Dispatcher
}

// Game — контекст симуляции одной сессии. Все системы работают с одним ECS,
// и вне тика его никто не меняет.
type Game struct {
	Defs               *defs.Library
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Scheduler          *utils.Scheduler
	Rng                *utils.PRNGService
	FxRng              *utils.PRNGService
	DamageSystem       *system.DamageSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	WaveSystem         *system.WaveSystem
	VisualEffectSystem *system.VisualEffectSystem
}

// NewGame создаёт сессию в сброшенном состоянии. Первую волну запускает Start.
func NewGame(lib *defs.Library, opts Options) *Game {
	if lib == nil {
		panic("definition library cannot be nil")
	}
	dispatcher := opts.EventDispatcher
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}

	rng := utils.NewPRNGService(opts.Seed)
	g := &Game{
		Defs:            lib,
		ECS:             entity.NewECS(&lib.Path),
		EventDispatcher: dispatcher,
		Scheduler:       utils.NewScheduler(opts.Clock),
		Rng:             rng,
		FxRng:           utils.NewPRNGService(rng.Seed() + 1),
	}
	g.DamageSystem = system.NewDamageSystem(g.ECS, lib, dispatcher, g.FxRng)
	g.MovementSystem = system.NewMovementSystem(g.ECS, g.DamageSystem)
	g.CombatSystem = system.NewCombatSystem(g.ECS, lib, g.DamageSystem, dispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(g.ECS, lib, g.DamageSystem, dispatcher)
	g.WaveSystem = system.NewWaveSystem(g.ECS, lib, dispatcher, rng, g.Scheduler)
	g.VisualEffectSystem = system.NewVisualEffectSystem(g.ECS)
	return g
}

// Reset очищает ростеры и счётчики и снимает отложенные таймеры.
// До Start сессия неактивна.
func (g *Game) Reset() {
	g.Scheduler.Cancel()
	g.ECS.Reset()
	g.Rng.Reset()
	g.FxRng.Reset()
}

// Start активирует сессию и запускает текущую волну
func (g *Game) Start() {
	sess := g.ECS.Session
	if sess.Active || sess.Over {
		return
	}
	sess.Active = true
	log.Printf("Session started (seed %d)", g.Rng.Seed())
	g.WaveSystem.StartWave()
}

// Restart — это Reset и затем Start
func (g *Game) Restart() {
	g.Reset()
	g.Start()
}

// Tick продвигает симуляцию на один шаг. На неактивной сессии ничего не делает.
func (g *Game) Tick() {
	sess := g.ECS.Session
	if !sess.Active {
		return
	}
	g.ECS.Tick++

	g.Scheduler.Poll()
	g.WaveSystem.Update()
	g.MovementSystem.Update()
	if !sess.Active {
		// Жизни кончились во время движения
		return
	}
	g.CombatSystem.Update()
	g.ProjectileSystem.Update()
	g.VisualEffectSystem.Update()
}

// Update выполняет n тиков и останавливается, если сессия закончилась
func (g *Game) Update(n int) {
	for i := 0; i < n && g.ECS.Session.Active; i++ {
		g.Tick()
	}
}

func (g *Game) Session() component.Session { return *g.ECS.Session }

func (g *Game) Money() int { return g.ECS.Session.Money }

func (g *Game) Lives() int { return g.ECS.Session.Lives }

func (g *Game) Score() int { return g.ECS.Session.Score }

func (g *Game) Wave() int { return g.ECS.Session.Wave }

func (g *Game) EnemiesLeft() int { return g.ECS.EnemiesLeft() }

func (g *Game) IsActive() bool { return g.ECS.Session.Active }

func (g *Game) IsOver() bool { return g.ECS.Session.Over }
