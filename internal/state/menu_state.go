// internal/state/menu_state.go
package state

import (
	"image"

	"orbit-defense/internal/config"
	"orbit-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран
type MenuState struct {
	sm     *StateMachine
	start  *ui.Button
	cursor image.Point
}

func NewMenuState(sm *StateMachine) *MenuState {
	w, h := 220, 56
	x := (config.ScreenWidth - w) / 2
	y := config.ScreenHeight/2 + 20
	return &MenuState{
		sm:    sm,
		start: ui.NewButton(image.Rect(x, y, x+w, y+h), "START", sm.Services.Fonts.Title),
	}
}

func (m *MenuState) Enter() {
	m.sm.Services.Game.Reset()
}

func (m *MenuState) Update() {
	m.cursor = image.Pt(ebiten.CursorPosition())
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm))
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && m.start.Contains(m.cursor.X, m.cursor.Y) {
		m.sm.SetState(NewGameState(m.sm))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	s := m.sm.Services
	snap := s.Game.Snapshot()
	s.Renderer.Draw(screen, &snap)

	fonts := s.Fonts
	ui.DrawCentered(screen, config.WindowTitle, fonts.Large, config.ScreenHeight/2-60, config.TextLightColor)
	ui.DrawCentered(screen, "Place towers along the lane. Hold the line.", fonts.Regular, config.ScreenHeight/2-20, config.TextDimColor)
	m.start.Draw(screen, m.cursor.X, m.cursor.Y)
}

func (m *MenuState) Exit() {}
