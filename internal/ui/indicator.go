// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"orbit-defense/internal/component"
	"orbit-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PhaseIndicator — кружок, цвет которого показывает фазу волны
type PhaseIndicator struct {
	X, Y       float32
	Radius     float32
	lastChange time.Time
	lastPhase  string
}

func NewPhaseIndicator(x, y, radius float32) *PhaseIndicator {
	return &PhaseIndicator{X: x, Y: y, Radius: radius}
}

// PhaseColor сопоставляет фазе планировщика цвет индикатора.
func PhaseColor(phase string) color.RGBA {
	switch phase {
	case component.WaveSpawning.String():
		return config.WarnColor
	case component.WaveDraining.String():
		return config.SelectedColor
	case component.WaveComplete.String():
		return config.HealthFillColor
	}
	return config.TextDimColor
}

// Draw отрисовывает индикатор; при смене фазы он коротко «пульсирует»
func (i *PhaseIndicator) Draw(screen *ebiten.Image, phase string) {
	if phase != i.lastPhase {
		i.lastPhase = phase
		i.lastChange = time.Now()
	}
	elapsed := time.Since(i.lastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, PhaseColor(phase), true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}
