// internal/ui/info_panel.go
package ui

import (
	"math"

	"orbit-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 36
	panelWidth     = 420
	panelMargin    = 5
	animationSpeed = 4.0
)

// InfoPanel выезжает над HUD и показывает описание выбранной сущности.
type InfoPanel struct {
	IsVisible bool
	Text      string
	fontFace  font.Face
	bottom    float64 // нижняя граница, откуда выезжает панель
	currentY  float64
	targetY   float64
}

// NewInfoPanel creates a new information panel that slides out above bottom.
func NewInfoPanel(face font.Face, bottom float64) *InfoPanel {
	return &InfoPanel{
		fontFace: face,
		bottom:   bottom,
		currentY: bottom,
		targetY:  bottom,
	}
}

func (p *InfoPanel) Show(s string) {
	p.Text = s
	p.IsVisible = true
	p.targetY = p.bottom - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = p.bottom
}

func (p *InfoPanel) Update() {
	// Анимация панели
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentY = p.targetY
	case diff > 0:
		p.currentY += animationSpeed
	default:
		p.currentY -= animationSpeed
	}
	if p.currentY >= p.bottom {
		p.IsVisible = false
		p.Text = ""
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible && p.currentY >= p.bottom {
		return
	}
	x := float32(panelMargin)
	y := float32(p.currentY)
	h := float32(math.Min(panelHeight, p.bottom-p.currentY))

	vector.DrawFilledRect(screen, x, y, panelWidth, h, config.HUDColor, true)
	vector.StrokeRect(screen, x, y, panelWidth, h, 2, config.HUDBorderColor, true)
	text.Draw(screen, p.Text, p.fontFace, int(x)+12, int(y)+titleFontSize+4, config.TextLightColor)
}
