// internal/ui/lives_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"orbit-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	LivesCols          = 10
	LivesCircleRadius  = 6.0
	LivesCircleSpacing = 3.0
)

// LivesIndicator отображает оставшиеся жизни сеткой кружков.
type LivesIndicator struct {
	X, Y float32
	font font.Face
}

func NewLivesIndicator(x, y float32, face font.Face) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y, font: face}
}

// Draw рисует сетку: синие кружки — запас сверх половины, красные — последняя половина.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	half := maxLives / 2
	step := float32(LivesCircleRadius*2 + LivesCircleSpacing)

	for j := 0; j < maxLives; j++ {
		x := i.X + float32(j%LivesCols)*step + LivesCircleRadius
		y := i.Y + float32(j/LivesCols)*step + LivesCircleRadius

		var clr color.RGBA
		switch {
		case j >= lives:
			clr = color.RGBA{0, 0, 0, 255}
		case lives > half && j < lives-half:
			clr = config.BaseColor
		default:
			clr = config.WarnColor
		}
		vector.DrawFilledCircle(screen, x, y, LivesCircleRadius, clr, true)
		vector.StrokeCircle(screen, x, y, LivesCircleRadius, 1, color.White, true)
	}

	label := "Lives " + strconv.Itoa(lives) + "/" + strconv.Itoa(maxLives)
	text.Draw(screen, label, i.font, int(i.X), int(i.Y)-6, config.TextLightColor)
}
