// internal/ui/tower_palette.go
package ui

import (
	"fmt"
	"image"

	"orbit-defense/internal/config"
	"orbit-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	cardWidth   = 92
	cardHeight  = 72
	cardSpacing = 8
)

// TowerPalette — ряд карточек башен; выбранная башня остаётся выбранной после постройки
type TowerPalette struct {
	X, Y     int
	lib      *defs.Library
	selected int // -1 — ничего не выбрано
	font     font.Face
	title    font.Face
}

func NewTowerPalette(x, y int, lib *defs.Library, regular, title font.Face) *TowerPalette {
	return &TowerPalette{X: x, Y: y, lib: lib, selected: -1, font: regular, title: title}
}

// Select выбирает карточку по индексу; повторный выбор снимает выделение.
func (p *TowerPalette) Select(i int) {
	if i < 0 || i >= len(p.lib.TowerOrder) {
		return
	}
	if p.selected == i {
		p.selected = -1
		return
	}
	p.selected = i
}

func (p *TowerPalette) Deselect() {
	p.selected = -1
}

// Selected возвращает ID выбранной башни.
func (p *TowerPalette) Selected() (string, bool) {
	if p.selected < 0 || p.selected >= len(p.lib.TowerOrder) {
		return "", false
	}
	return p.lib.TowerOrder[p.selected], true
}

func (p *TowerPalette) cardRect(i int) image.Rectangle {
	x := p.X + i*(cardWidth+cardSpacing)
	return image.Rect(x, p.Y, x+cardWidth, p.Y+cardHeight)
}

// HitTest возвращает индекс карточки под курсором.
func (p *TowerPalette) HitTest(x, y int) (int, bool) {
	pt := image.Pt(x, y)
	for i := range p.lib.TowerOrder {
		if pt.In(p.cardRect(i)) {
			return i, true
		}
	}
	return -1, false
}

func (p *TowerPalette) Draw(screen *ebiten.Image, money int) {
	for i, id := range p.lib.TowerOrder {
		def := p.lib.Towers[id]
		r := p.cardRect(i)
		x, y := float32(r.Min.X), float32(r.Min.Y)

		vector.DrawFilledRect(screen, x, y, cardWidth, cardHeight, config.HUDColor, true)
		border := config.HUDBorderColor
		if i == p.selected {
			border = config.SelectedColor
		}
		vector.StrokeRect(screen, x, y, cardWidth, cardHeight, 2, border, true)
		vector.DrawFilledCircle(screen, x+16, y+18, 8, def.Color, true)

		text.Draw(screen, fmt.Sprintf("%d", i+1), p.font, r.Max.X-14, r.Min.Y+16, config.TextDimColor)
		text.Draw(screen, def.Name, p.title, r.Min.X+30, r.Min.Y+24, config.TextLightColor)

		costColor := config.TextLightColor
		if money < def.Cost {
			costColor = config.WarnColor
		}
		text.Draw(screen, fmt.Sprintf("$%d", def.Cost), p.font, r.Min.X+8, r.Min.Y+46, costColor)
		text.Draw(screen, fmt.Sprintf("DMG %g  RNG %g", def.Damage, def.Range), p.font, r.Min.X+8, r.Min.Y+64, config.TextDimColor)
	}
}
