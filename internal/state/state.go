// internal/state/state.go
package state

import (
	"log"

	"orbit-defense/internal/app"
	"orbit-defense/internal/audio"
	"orbit-defense/internal/spectate"
	"orbit-defense/internal/ui"
	"orbit-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update()
	Draw(screen *ebiten.Image)
	Exit()
}

// Services — общие для всех экранов объекты. Audio и Spectate могут быть nil.
type Services struct {
	Game     *app.Game
	Renderer *render.LaneRenderer
	Fonts    *ui.Fonts
	HUD      *ui.HUD
	Audio    *audio.Engine
	Spectate *spectate.Hub
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current  State
	Services *Services
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(services *Services) *StateMachine {
	return &StateMachine{Services: services}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current возвращает активное состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update() {
	if sm.current != nil {
		sm.current.Update()
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// publish отправляет снимок зрителям, если трансляция включена.
func (s *Services) publish(snap *app.Snapshot) {
	if s.Spectate == nil {
		return
	}
	if err := s.Spectate.Publish(snap); err != nil {
		log.Printf("Spectator publish failed: %v", err)
	}
}
