// internal/system/visual_effect.go
package system

import (
	"orbit-defense/internal/config"
	"orbit-defense/internal/entity"
)

// VisualEffectSystem старит лучи и частицы. Симуляция их не читает.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

func (s *VisualEffectSystem) Update() {
	for _, id := range s.ecs.BeamIDs() {
		beam := s.ecs.Beams[id]
		beam.Life--
		if beam.Life <= 0 {
			delete(s.ecs.Beams, id)
		}
	}

	for _, id := range s.ecs.ParticleIDs() {
		p := s.ecs.Particles[id]
		p.Pos.X += p.VX
		p.Pos.Y += p.VY
		p.Life -= config.ParticleLifeDecay
		if p.Life <= 0 {
			delete(s.ecs.Particles, id)
		}
	}
}
