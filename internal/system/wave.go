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

// WaveSystem выпускает врагов по таймеру тиков и переключает волны.
//
// Фазы: idle -> spawning -> draining -> complete -> (через NextWaveDelay) spawning.
// Пауза между волнами — отложенный вызов планировщика, тики при этом идут.
type WaveSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	scheduler       *utils.Scheduler
}

func NewWaveSystem(ecs *entity.ECS, lib *defs.Library, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, scheduler *utils.Scheduler) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		lib:             lib,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		scheduler:       scheduler,
	}
}

// StartWave запускает текущую волну сессии.
func (s *WaveSystem) StartWave() {
	sess := s.ecs.Session
	sess.Phase = component.WaveSpawning
	sess.EnemiesToSpawn = defs.SpawnCount(sess.Wave)
	sess.SpawnTimer = 0
	log.Printf("Wave %d started: %d enemies, one every %d ticks", sess.Wave, sess.EnemiesToSpawn, defs.SpawnInterval(sess.Wave))
	s.eventDispatcher.Publish(event.WaveStarted, sess.Wave)
}

func (s *WaveSystem) Update() {
	sess := s.ecs.Session
	switch sess.Phase {
	case component.WaveSpawning:
		sess.SpawnTimer++
		if sess.SpawnTimer >= defs.SpawnInterval(sess.Wave) {
			s.spawnEnemy()
			sess.EnemiesToSpawn--
			sess.SpawnTimer = 0
		}
		if sess.EnemiesToSpawn <= 0 {
			sess.Phase = component.WaveDraining
		}
	case component.WaveDraining:
		if len(s.ecs.Enemies) == 0 {
			s.completeWave()
		}
	}
}

func (s *WaveSystem) completeWave() {
	sess := s.ecs.Session
	sess.Phase = component.WaveComplete
	finished := sess.Wave
	sess.Wave++
	log.Printf("Wave %d cleared, next wave in %s", finished, config.NextWaveDelay)
	s.eventDispatcher.Publish(event.WaveCompleted, finished)

	s.scheduler.After(config.NextWaveDelay, func() {
		// Сессию могли сбросить, пока таймер ждал
		if s.ecs.Session.Phase == component.WaveComplete {
			s.StartWave()
		}
	})
}

func (s *WaveSystem) spawnEnemy() types.EntityID {
	sess := s.ecs.Session
	kind := defs.ChooseEnemyKind(sess.Wave, sess.EnemiesToSpawn, s.rng.Float64())
	def, ok := s.lib.Enemies[kind]
	if !ok {
		log.Printf("Error: enemy definition not found for ID: %s", kind)
		return 0
	}

	hp := def.Health * (1 + float64(sess.Wave)*config.HPScalePerWave)
	start := s.ecs.Path.Start()

	id := s.ecs.NewEntity()
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:     def.ID,
		Pos:       component.Position{X: start.X, Y: start.Y},
		HP:        hp,
		MaxHP:     hp,
		Speed:     def.Speed,
		BaseSpeed: def.Speed,
		Radius:    def.Radius,
		Reward:    def.Reward,
	}
	return id
}
