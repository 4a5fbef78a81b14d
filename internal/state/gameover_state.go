// internal/state/gameover_state.go
package state

import (
	"fmt"
	"image"

	"orbit-defense/internal/config"
	"orbit-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameOverState показывает итог сессии и предлагает начать заново.
type GameOverState struct {
	sm      *StateMachine
	game    *GameState
	restart *ui.Button
	cursor  image.Point
}

func NewGameOverState(sm *StateMachine, gs *GameState) *GameOverState {
	w, h := 220, 56
	x := (config.ScreenWidth - w) / 2
	y := config.ScreenHeight/2 + 30
	return &GameOverState{
		sm:      sm,
		game:    gs,
		restart: ui.NewButton(image.Rect(x, y, x+w, y+h), "RESTART", sm.Services.Fonts.Title),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update() {
	s.cursor = image.Pt(ebiten.CursorPosition())
	// Эффекты ещё догорают после конца игры
	s.game.tickEffects()

	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && s.restart.Contains(s.cursor.X, s.cursor.Y)
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.game.restart()
		s.sm.SetState(s.game)
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, ui.HUDTop, config.OverlayColor, false)

	g := s.sm.Services.Game
	fonts := s.sm.Services.Fonts
	ui.DrawCentered(screen, "GAME OVER", fonts.Large, config.ScreenHeight/2-50, config.WarnColor)
	ui.DrawCentered(screen, fmt.Sprintf("Score %d   Wave %d", g.Score(), g.Wave()), fonts.Title, config.ScreenHeight/2, config.TextLightColor)
	s.restart.Draw(screen, s.cursor.X, s.cursor.Y)
}

func (s *GameOverState) Exit() {}
