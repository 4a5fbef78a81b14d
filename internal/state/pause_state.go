// internal/state/pause_state.go
package state

import (
	"time"

	"orbit-defense/internal/config"
	"orbit-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию и рисует поверх предыдущего экрана.
type PauseState struct {
	sm            *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{sm: sm, previousState: prevState}
}

func (s *PauseState) Enter() {
	s.sm.Services.HUD.Pause.SetPaused(true)
}

func (s *PauseState) Update() {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pause := s.sm.Services.HUD.Pause
		if pause.IsClicked(x, y) && time.Since(pause.LastToggleTime) >= config.ClickCooldown {
			unpause = true
		}
	}

	if unpause {
		s.sm.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, ui.HUDTop, config.OverlayColor, false)
	ui.DrawCentered(screen, "PAUSED", s.sm.Services.Fonts.Large, config.ScreenHeight/2-20, config.TextLightColor)
}

func (s *PauseState) Exit() {
	s.sm.Services.HUD.Pause.SetPaused(false)
}
