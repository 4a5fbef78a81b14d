// internal/state/game_state.go
package state

import (
	"fmt"
	"time"

	"orbit-defense/internal/ui"
	"orbit-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// publishEvery — раз во сколько кадров снимок уходит зрителям
const publishEvery = 6

var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// GameState — состояние игры
type GameState struct {
	sm        *StateMachine
	frame     int
	showDebug bool
}

func NewGameState(sm *StateMachine) *GameState {
	return &GameState{sm: sm}
}

// Enter запускает сессию, если она ещё не идёт. Возврат из паузы ничего не меняет.
func (g *GameState) Enter() {
	game := g.sm.Services.Game
	if !game.IsActive() && !game.IsOver() {
		game.Start()
	}
}

func (g *GameState) Update() {
	s := g.sm.Services
	hud := s.HUD
	hud.Info.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showDebug = !g.showDebug
	}
	for i, key := range towerKeys {
		if inpututil.IsKeyJustPressed(key) {
			hud.Palette.Select(i)
			g.announceSelection()
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		// Проверяем клик по UI элементам в первую очередь
		if hud.Contains(x, y) {
			switch hud.Click(x, y, time.Now()) {
			case ui.ActionSelect:
				g.announceSelection()
			case ui.ActionPause:
				g.sm.SetState(NewPauseState(g.sm, g))
				return
			}
		} else {
			g.handleGameClick(x, y)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		hud.Palette.Deselect()
		hud.Info.Hide()
	}

	s.Game.Update(hud.Speed.Multiplier())
	if s.Audio != nil {
		s.Audio.Update(s.Game.IsActive())
	}

	g.frame++
	if g.frame%publishEvery == 0 {
		snap := s.Game.Snapshot()
		s.publish(&snap)
	}

	if s.Game.IsOver() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

// handleGameClick: с выбранной башней клик строит, без неё показывает сведения о сущности
func (g *GameState) handleGameClick(x, y int) {
	s := g.sm.Services
	wx, wy := float64(x), float64(y)

	if kind, ok := s.HUD.Palette.Selected(); ok {
		s.Game.PlaceTower(kind, wx, wy)
		return
	}
	if info, ok := s.Game.InspectAt(wx, wy); ok {
		s.HUD.Info.Show(info.Text)
		return
	}
	s.HUD.Info.Hide()
}

func (g *GameState) announceSelection() {
	s := g.sm.Services
	kind, ok := s.HUD.Palette.Selected()
	if !ok {
		s.HUD.Info.Hide()
		return
	}
	def := s.Game.Defs.Towers[kind]
	s.HUD.Info.Show(fmt.Sprintf("Selected: %s - click to place", def.Name))
}

// restart начинает новую сессию с теми же настройками
func (g *GameState) restart() {
	s := g.sm.Services
	s.Game.Restart()
	s.HUD.Reset()
	g.frame = 0
}

// tickEffects доигрывает частицы и лучи, пока симуляция стоит.
func (g *GameState) tickEffects() {
	g.sm.Services.Game.VisualEffectSystem.Update()
	g.sm.Services.HUD.Info.Update()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	s := g.sm.Services
	snap := s.Game.Snapshot()
	s.Renderer.Draw(screen, &snap)

	if kind, ok := s.HUD.Palette.Selected(); ok {
		x, y := ebiten.CursorPosition()
		if y < ui.HUDTop {
			wx, wy := float64(x), float64(y)
			render.DrawRange(screen, wx, wy, s.Game.Defs.Towers[kind].Range, s.Game.IsValidPlacement(wx, wy))
		}
	}

	s.HUD.Draw(screen, &snap)

	if g.showDebug {
		viewers := 0
		if s.Spectate != nil {
			viewers = s.Spectate.Viewers()
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %0.1f  FPS %0.1f  tick %d  x%d  viewers %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), snap.Tick, s.HUD.Speed.Multiplier(), viewers))
	}
}

func (g *GameState) Exit() {}
