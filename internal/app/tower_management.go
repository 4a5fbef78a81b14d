// internal/app/tower_management.go
package app

import (
	"fmt"
	"strings"

	"orbit-defense/internal/component"
	"orbit-defense/internal/config"
	"orbit-defense/internal/event"
	"orbit-defense/internal/types"
	"orbit-defense/internal/utils"
)

// PlaceTower покупает башню kind в точке (x, y). Возвращает false и ничего не меняет,
// если сессия не идёт, тип неизвестен, денег не хватает или место занято.
func (g *Game) PlaceTower(kind string, x, y float64) bool {
	sess := g.ECS.Session
	if !sess.Active {
		return false
	}
	def, ok := g.Defs.Towers[kind]
	if !ok {
		return false
	}
	if sess.Money < def.Cost {
		return false
	}
	if !g.IsValidPlacement(x, y) {
		return false
	}

	sess.Money -= def.Cost
	id := g.createTowerEntity(kind, x, y)
	g.EventDispatcher.Publish(event.Build, id)
	return true
}

// IsValidPlacement отклоняет точки ближе config.PathMargin к отрезку пути
// или ближе config.MinTowerSpacing к другой башне.
func (g *Game) IsValidPlacement(x, y float64) bool {
	wp := g.ECS.Path.Waypoints
	for i := 0; i+1 < len(wp); i++ {
		if utils.DistToSegment(x, y, wp[i].X, wp[i].Y, wp[i+1].X, wp[i+1].Y) < config.PathMargin {
			return false
		}
	}
	for _, tower := range g.ECS.Towers {
		if utils.Distance(tower.Pos.X, tower.Pos.Y, x, y) < config.MinTowerSpacing {
			return false
		}
	}
	return true
}

func (g *Game) createTowerEntity(kind string, x, y float64) types.EntityID {
	def := g.Defs.Towers[kind]
	id := g.ECS.NewEntity()
	g.ECS.Towers[id] = &component.Tower{
		DefID: kind,
		Pos:   component.Position{X: x, Y: y},
		Range: def.Range,
	}
	return id
}

// InspectKind — что нашлось под курсором
type InspectKind int

const (
	InspectNone InspectKind = iota
	InspectEnemy
	InspectTower
)

// Inspection описывает сущность под точкой
type Inspection struct {
	Kind InspectKind
	ID   types.EntityID
	Text string
}

// InspectAt ищет врага рядом с (x, y), а если его нет — башню.
// Враг ловится в пределах радиуса плюс config.InspectEnemyPad,
// башня — в пределах config.InspectTowerDist.
func (g *Game) InspectAt(x, y float64) (Inspection, bool) {
	for _, id := range g.ECS.EnemyIDs() {
		enemy := g.ECS.Enemies[id]
		if utils.Distance(enemy.Pos.X, enemy.Pos.Y, x, y) < enemy.Radius+config.InspectEnemyPad {
			return Inspection{
				Kind: InspectEnemy,
				ID:   id,
				Text: fmt.Sprintf("%s: HP %d/%d", strings.ToUpper(enemy.DefID), int(enemy.HP), int(enemy.MaxHP)),
			}, true
		}
	}
	for _, id := range g.ECS.TowerIDs() {
		tower := g.ECS.Towers[id]
		if utils.Distance(tower.Pos.X, tower.Pos.Y, x, y) < config.InspectTowerDist {
			def := g.Defs.Towers[tower.DefID]
			return Inspection{
				Kind: InspectTower,
				ID:   id,
				Text: fmt.Sprintf("Tower %s: Damage %g, Range %g", def.Name, def.Damage, def.Range),
			}, true
		}
	}
	return Inspection{}, false
}
