package app

import (
	"image/color"

	"orbit-defense/internal/defs"
	"orbit-defense/internal/types"
)

// Snapshot — копия сессии только для чтения, для рендера и зрителей.
// Срезы идут в порядке ростера.
type Snapshot struct {
	Tick        uint64           `json:"tick"`
	Money       int              `json:"money"`
	Lives       int              `json:"lives"`
	Score       int              `json:"score"`
	Wave        int              `json:"wave"`
	Phase       string           `json:"phase"`
	EnemiesLeft int              `json:"enemies_left"`
	Active      bool             `json:"active"`
	Over        bool             `json:"over"`
	Enemies     []EnemyView      `json:"enemies"`
	Towers      []TowerView      `json:"towers"`
	Projectiles []ProjectileView `json:"projectiles"`
	Beams       []BeamView       `json:"beams"`
	Particles   []ParticleView   `json:"particles"`
}

type EnemyView struct {
	ID     types.EntityID `json:"id"`
	Kind   string         `json:"kind"`
	X      float64        `json:"x"`
	Y      float64        `json:"y"`
	HP     float64        `json:"hp"`
	MaxHP  float64        `json:"max_hp"`
	Radius float64        `json:"radius"`
	Slowed bool           `json:"slowed"`
	Color  color.RGBA     `json:"color"`
}

type TowerView struct {
	ID       types.EntityID `json:"id"`
	Kind     string         `json:"kind"`
	X        float64        `json:"x"`
	Y        float64        `json:"y"`
	Range    float64        `json:"range"`
	Cooldown int            `json:"cooldown"`
	Trap     bool           `json:"trap"`
	Color    color.RGBA     `json:"color"`
}

type ProjectileView struct {
	ID    types.EntityID `json:"id"`
	Kind  string         `json:"kind"`
	X     float64        `json:"x"`
	Y     float64        `json:"y"`
	Color color.RGBA     `json:"color"`
}

type BeamView struct {
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
	X2   float64 `json:"x2"`
	Y2   float64 `json:"y2"`
	Life int     `json:"life"`
}

type ParticleView struct {
	X     float64    `json:"x"`
	Y     float64    `json:"y"`
	Life  float64    `json:"life"`
	Color color.RGBA `json:"color"`
}

// Snapshot копирует все ростеры и счётчики. Результат не делит память с игрой.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	sess := ecs.Session
	snap := Snapshot{
		Tick:        ecs.Tick,
		Money:       sess.Money,
		Lives:       sess.Lives,
		Score:       sess.Score,
		Wave:        sess.Wave,
		Phase:       sess.Phase.String(),
		EnemiesLeft: ecs.EnemiesLeft(),
		Active:      sess.Active,
		Over:        sess.Over,
		Enemies:     make([]EnemyView, 0, len(ecs.Enemies)),
		Towers:      make([]TowerView, 0, len(ecs.Towers)),
		Projectiles: make([]ProjectileView, 0, len(ecs.Projectiles)),
		Beams:       make([]BeamView, 0, len(ecs.Beams)),
		Particles:   make([]ParticleView, 0, len(ecs.Particles)),
	}

	for _, id := range ecs.EnemyIDs() {
		e := ecs.Enemies[id]
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:     id,
			Kind:   e.DefID,
			X:      e.Pos.X,
			Y:      e.Pos.Y,
			HP:     e.HP,
			MaxHP:  e.MaxHP,
			Radius: e.Radius,
			Slowed: e.Slow.Active(),
			Color:  g.Defs.Enemies[e.DefID].Color,
		})
	}
	for _, id := range ecs.TowerIDs() {
		t := ecs.Towers[id]
		def := g.Defs.Towers[t.DefID]
		snap.Towers = append(snap.Towers, TowerView{
			ID:       id,
			Kind:     t.DefID,
			X:        t.Pos.X,
			Y:        t.Pos.Y,
			Range:    t.Range,
			Cooldown: t.Cooldown,
			Trap:     def.Behavior == defs.BehaviorTrap,
			Color:    def.Color,
		})
	}
	for _, id := range ecs.ProjectileIDs() {
		p := ecs.Projectiles[id]
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			ID:    id,
			Kind:  p.DefID,
			X:     p.Pos.X,
			Y:     p.Pos.Y,
			Color: g.Defs.Towers[p.DefID].Color,
		})
	}
	for _, id := range ecs.BeamIDs() {
		b := ecs.Beams[id]
		snap.Beams = append(snap.Beams, BeamView{X1: b.From.X, Y1: b.From.Y, X2: b.To.X, Y2: b.To.Y, Life: b.Life})
	}
	for _, id := range ecs.ParticleIDs() {
		p := ecs.Particles[id]
		snap.Particles = append(snap.Particles, ParticleView{X: p.Pos.X, Y: p.Pos.Y, Life: p.Life, Color: p.Color})
	}
	return snap
}
