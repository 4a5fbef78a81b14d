// internal/ui/hud.go
package ui

import (
	"fmt"
	"time"

	"orbit-defense/internal/app"
	"orbit-defense/internal/config"
	"orbit-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUDTop — верхняя граница нижней панели, сразу под игровым полем
const HUDTop = config.ScreenHeight

// HUD собирает все виджеты нижней панели.
type HUD struct {
	Palette   *TowerPalette
	Lives     *LivesIndicator
	Wave      *WaveIndicator
	Phase     *PhaseIndicator
	Speed     *SpeedButton
	Pause     *PauseButton
	Info      *InfoPanel
	fonts     *Fonts
	lastClick time.Time
}

func NewHUD(lib *defs.Library, fonts *Fonts) *HUD {
	return &HUD{
		Palette: NewTowerPalette(10, HUDTop+12, lib, fonts.Regular, fonts.Title),
		Lives:   NewLivesIndicator(660, HUDTop+30, fonts.Regular),
		Wave:    NewWaveIndicator(860, HUDTop+64, fonts.Large),
		Phase:   NewPhaseIndicator(config.ScreenWidth-20, 20, 8),
		Speed:   NewSpeedButton(945, HUDTop+48, 14, config.SpeedButtonColors, config.SpeedMultipliers),
		Pause:   NewPauseButton(995, HUDTop+48, 12, config.HUDBorderColor, config.HealthFillColor),
		Info:    NewInfoPanel(fonts.Title, HUDTop),
		fonts:   fonts,
	}
}

// Contains сообщает, попадает ли точка в нижнюю панель.
func (h *HUD) Contains(x, y int) bool {
	return y >= HUDTop
}

// HUDAction — что произошло после клика по панели.
type HUDAction int

const (
	ActionNone HUDAction = iota
	ActionSelect
	ActionSpeed
	ActionPause
)

// Click обрабатывает клик по панели с защитой от дребезга.
func (h *HUD) Click(x, y int, now time.Time) HUDAction {
	if now.Sub(h.lastClick) < config.ClickCooldown {
		return ActionNone
	}
	h.lastClick = now

	if i, ok := h.Palette.HitTest(x, y); ok {
		h.Palette.Select(i)
		return ActionSelect
	}
	if h.Speed.IsClicked(x, y) {
		h.Speed.ToggleState()
		return ActionSpeed
	}
	if h.Pause.IsClicked(x, y) {
		h.Pause.TogglePause()
		return ActionPause
	}
	return ActionNone
}

func (h *HUD) Reset() {
	h.Palette.Deselect()
	h.Speed.Reset()
	h.Pause.SetPaused(false)
	h.Info.Hide()
}

func (h *HUD) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	h.Info.Draw(screen)

	vector.DrawFilledRect(screen, 0, HUDTop, config.ScreenWidth, config.HUDHeight, config.HUDColor, false)
	vector.StrokeLine(screen, 0, HUDTop, config.ScreenWidth, HUDTop, 2, config.HUDBorderColor, true)

	h.Palette.Draw(screen, snap.Money)

	x := 525
	text.Draw(screen, fmt.Sprintf("$%d", snap.Money), h.fonts.Title, x, HUDTop+28, config.SelectedColor)
	text.Draw(screen, fmt.Sprintf("Enemies %d", snap.EnemiesLeft), h.fonts.Regular, x, HUDTop+52, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Score %d", snap.Score), h.fonts.Regular, x, HUDTop+74, config.TextLightColor)

	h.Lives.Draw(screen, snap.Lives, config.StartingLives)
	h.Wave.Draw(screen, snap.Wave)
	h.Phase.Draw(screen, snap.Phase)
	h.Speed.Draw(screen)
	h.Pause.Draw(screen)
}
