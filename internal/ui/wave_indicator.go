package ui

import (
	"strings"

	"orbit-defense/internal/config"
	"orbit-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	OutlineThickness int
	font             font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, OutlineThickness: 1, font: face}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор, центрируя текст по X.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave int) {
	label := toRoman(wave)
	if label == "" {
		return
	}

	// Красный для волн с боссом
	textColor := config.TextLightColor
	if defs.IsBossWave(wave) {
		textColor = config.WarnColor
	}

	bounds := text.BoundString(i.font, label)
	x := i.X - bounds.Dx()/2
	y := i.Y

	// Обводка
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, i.font, x+dx, y+dy, config.HUDBorderColor)
		}
	}
	text.Draw(screen, label, i.font, x, y, textColor)
}
